// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package trainprep

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// luma converts 8 bit rgb values to luminance using the ITU-R 601-2
// weights, 0.299 R + 0.587 G + 0.114 B
func luma(r, g, b uint8) uint8 {
	y := (19595*uint32(r) + 38470*uint32(g) + 7471*uint32(b) + 1<<15) >> 16
	return uint8(y)
}

// straight returns the non-premultiplied 8 bit form of a colour. Colour
// types which store straight values are used as is, so a fully
// transparent pixel keeps its colour.
func straight(c color.Color) color.NRGBA {
	switch c := c.(type) {
	case color.NRGBA:
		return c
	case color.NRGBA64:
		return color.NRGBA{uint8(c.R >> 8), uint8(c.G >> 8), uint8(c.B >> 8), uint8(c.A >> 8)}
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// Grey converts an image to a single channel of luminance. Images which
// are already greyscale are returned as is. The alpha channel is ignored
// wherever the image stores colours without premultiplying them, so a
// transparent pixel keeps the luminance of its colour rather than
// becoming black.
func Grey(img image.Image) *image.Gray {
	b := img.Bounds()
	switch i := img.(type) {
	case *image.Gray:
		return i
	case *image.NRGBA:
		gray := image.NewGray(b)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				o := i.PixOffset(x, y)
				gray.Pix[gray.PixOffset(x, y)] = luma(i.Pix[o], i.Pix[o+1], i.Pix[o+2])
			}
		}
		return gray
	}

	gray := image.NewGray(b)
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		draw.Draw(gray, b, img, b.Min, draw.Src)
		return gray
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := straight(img.At(x, y))
			gray.Pix[gray.PixOffset(x, y)] = luma(c.R, c.G, c.B)
		}
	}
	return gray
}

// decodeFile opens and decodes an image file
func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Could not open file %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("Could not decode image %s: %w", path, err)
	}
	return img, nil
}
