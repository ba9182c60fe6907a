// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package trainprep

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrDestinationExists is returned when the destination for accepted
// images is already present. Nothing is copied in this case.
var ErrDestinationExists = errors.New("destination already exists")

// DestinationError records which destination was already present
type DestinationError struct {
	Dst string
}

func (e *DestinationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Dst, ErrDestinationExists)
}

func (e *DestinationError) Unwrap() error {
	return ErrDestinationExists
}

// Folder copies the images in src which match the filter's pattern and
// are accepted by the filter into a new directory dst. dst must not
// exist already. The outcome for every image evaluated is returned, in
// the order they were evaluated. If an image can't be read or copied
// the job stops there, leaving any images already copied in dst.
func (f *Filter) Folder(src string, dst string) ([]Outcome, error) {
	_, err := os.Stat(dst)
	if err == nil {
		f.log().Error().Str("dst", dst).Msg("Destination folder already exists, not filtering")
		return nil, &DestinationError{Dst: dst}
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("Could not check destination %s: %w", dst, err)
	}

	err = os.Mkdir(dst, 0755)
	if err != nil {
		return nil, fmt.Errorf("Could not create destination %s: %w", dst, err)
	}

	files, err := filepath.Glob(filepath.Join(src, f.pattern()+imageExt))
	if err != nil {
		return nil, fmt.Errorf("Bad pattern %s: %w", f.pattern(), err)
	}

	var outcomes []Outcome
	for _, path := range files {
		o, err := f.AcceptFile(path)
		if err != nil {
			return outcomes, err
		}
		if o.Accepted {
			err = copyFile(path, filepath.Join(dst, filepath.Base(path)))
			if err != nil {
				return append(outcomes, o), fmt.Errorf("Could not copy %s to %s: %w", path, dst, err)
			}
			o.Copied = true
		}
		outcomes = append(outcomes, o)
	}

	accepted := CountAccepted(outcomes)
	f.log().Info().Str("dst", dst).Int("accepted", accepted).Int("rejected", len(outcomes)-accepted).Msg("Accepted images copied")

	return outcomes, nil
}

// FilterFolder is a shortcut to run Folder with the given settings,
// logging to stdout
func FilterFolder(src string, dst string, threshold float64, whiteLevel uint8, pattern string) ([]Outcome, error) {
	f := NewFilter()
	f.Threshold = threshold
	f.WhiteLevel = whiteLevel
	f.Pattern = pattern
	return f.Folder(src, dst)
}

// CountAccepted returns the number of outcomes which were accepted
func CountAccepted(outcomes []Outcome) int {
	n := 0
	for _, o := range outcomes {
		if o.Accepted {
			n++
		}
	}
	return n
}

// copyFile copies the contents of src to a new file at dst
func copyFile(src string, dst string) error {
	fin, err := os.Open(src)
	if err != nil {
		return err
	}
	defer fin.Close()

	f, err := os.Create(dst)
	if err != nil {
		return err
	}

	_, err = io.Copy(f, fin)
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
