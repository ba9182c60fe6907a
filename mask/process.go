// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package mask

import (
	"errors"
	"fmt"
	"image"
	"math"

	"gocv.io/x/gocv"
)

var (
	// ErrSmoothing is returned for a blur kernel size which is not a
	// positive odd number
	ErrSmoothing = errors.New("smoothing must be a positive odd number")
	// ErrThreshold is returned for a threshold outside of 0 to 1
	ErrThreshold = errors.New("threshold must be between 0 and 1")
)

func checkParams(smoothing int, threshold float64) error {
	if smoothing <= 0 || smoothing%2 == 0 {
		return fmt.Errorf("%w, got %d", ErrSmoothing, smoothing)
	}
	if math.IsNaN(threshold) || threshold < 0 || threshold > 1 {
		return fmt.Errorf("%w, got %v", ErrThreshold, threshold)
	}
	return nil
}

// Process smooths a mask with a gaussian blur of smoothing x smoothing
// pixels, with the standard deviation derived from the kernel size, and
// then sets every value above threshold to 1 and every other value to 0.
// A new Mask of the same size is returned.
func Process(m Mask, smoothing int, threshold float64) (Mask, error) {
	if len(m.Pix) != m.Width*m.Height {
		return Mask{}, fmt.Errorf("mask is %dx%d but has %d values", m.Width, m.Height, len(m.Pix))
	}
	if err := checkParams(smoothing, threshold); err != nil {
		return Mask{}, err
	}
	if len(m.Pix) == 0 {
		return New(m.Width, m.Height), nil
	}

	src := gocv.NewMatWithSize(m.Height, m.Width, gocv.MatTypeCV32F)
	defer src.Close()
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			src.SetFloatAt(y, x, m.At(x, y))
		}
	}

	dst, err := ProcessMat(src, smoothing, threshold)
	defer dst.Close()
	if err != nil {
		return Mask{}, err
	}

	out := New(m.Width, m.Height)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			out.Set(x, y, dst.GetFloatAt(y, x))
		}
	}
	return out, nil
}

// ProcessMat does the same as Process on a single channel 32 bit float
// Mat. The caller must Close the returned Mat, even on error.
func ProcessMat(src gocv.Mat, smoothing int, threshold float64) (gocv.Mat, error) {
	if err := checkParams(smoothing, threshold); err != nil {
		return gocv.NewMat(), err
	}
	if src.Type() != gocv.MatTypeCV32F {
		return gocv.NewMat(), fmt.Errorf("mask Mat must be single channel float32, got %v", src.Type())
	}

	blur := gocv.NewMat()
	defer blur.Close()
	gocv.GaussianBlur(src, &blur, image.Point{X: smoothing, Y: smoothing}, 0, 0, gocv.BorderDefault)

	dst := gocv.NewMat()
	gocv.Threshold(blur, &dst, float32(threshold), 1, gocv.ThresholdBinary)
	return dst, nil
}
