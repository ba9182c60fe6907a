// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// Package mask post-processes the probability masks output by a
// segmentation model, smoothing them and thresholding them to 0 or 1.
package mask

import (
	"image"
	"image/color"
)

// Mask is a grid of values between 0 and 1, stored row by row
type Mask struct {
	Width, Height int
	Pix           []float32
}

// New returns a Mask of the given size with every value 0
func New(width int, height int) Mask {
	return Mask{Width: width, Height: height, Pix: make([]float32, width*height)}
}

// At returns the value at x, y
func (m Mask) At(x int, y int) float32 {
	return m.Pix[y*m.Width+x]
}

// Set sets the value at x, y
func (m Mask) Set(x int, y int, v float32) {
	m.Pix[y*m.Width+x] = v
}

// FromImage converts the luminance of an image into a Mask, with black
// as 0 and white as 1
func FromImage(img image.Image) Mask {
	b := img.Bounds()
	m := New(b.Dx(), b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			g := color.Gray16Model.Convert(img.At(x, y)).(color.Gray16)
			m.Set(x-b.Min.X, y-b.Min.Y, float32(g.Y)/0xffff)
		}
	}
	return m
}

// Image renders the Mask as a greyscale image, clamping values to the
// range 0 to 1
func (m Mask) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, m.Width, m.Height))
	for i, v := range m.Pix {
		switch {
		case v <= 0:
			img.Pix[i] = 0
		case v >= 1:
			img.Pix[i] = 255
		default:
			img.Pix[i] = uint8(v*255 + 0.5)
		}
	}
	return img
}
