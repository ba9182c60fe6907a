// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package trainprep

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/rs/zerolog"
)

// bufLogger returns a logger which saves to a buffer, so it can be
// checked or printed out only when needed
func bufLogger() (*zerolog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := zerolog.New(&buf)
	return &l, &buf
}

// solid returns a greyscale image with every pixel set to v
func solid(w, h int, v uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = v
	}
	return img
}

// checker returns a greyscale image alternating between 0 and 255
func checker(w, h int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				img.SetGray(x, y, color.Gray{255})
			} else {
				img.SetGray(x, y, color.Gray{0})
			}
		}
	}
	return img
}

// whiteN returns a 10x10 greyscale image with the first n pixels white
// and the rest black
func whiteN(n int) *image.Gray {
	img := solid(10, 10, 0)
	for i := 0; i < n; i++ {
		img.Pix[i] = 255
	}
	return img
}

// writePNG encodes img to path
func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Could not create file %s: %v", path, err)
	}
	defer f.Close()
	err = png.Encode(f, img)
	if err != nil {
		t.Fatalf("Could not encode %s: %v", path, err)
	}
}

// writeFile writes raw contents to path
func writeFile(t *testing.T, path string, contents []byte) {
	t.Helper()
	err := os.WriteFile(path, contents, 0644)
	if err != nil {
		t.Fatalf("Could not write file %s: %v", path, err)
	}
}

// dirNames returns the sorted names of the files in a directory
func dirNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Could not read directory %s: %v", dir, err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

// sameFile reports whether two files have identical contents
func sameFile(t *testing.T, a, b string) bool {
	t.Helper()
	ac, err := os.ReadFile(a)
	if err != nil {
		t.Fatalf("Could not read %s: %v", a, err)
	}
	bc, err := os.ReadFile(b)
	if err != nil {
		t.Fatalf("Could not read %s: %v", b, err)
	}
	return bytes.Equal(ac, bc)
}

// srcDir creates a directory of test images:
//   blank.png   all white, rejected
//   checker.png half white, accepted
//   dark.png    all black, accepted
//   mostly.png  96 of 100 pixels white, rejected
//   notes.txt   not an image, ignored
func srcDir(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "src")
	err := os.Mkdir(dir, 0755)
	if err != nil {
		t.Fatalf("Could not create %s: %v", dir, err)
	}
	writePNG(t, filepath.Join(dir, "blank.png"), solid(10, 10, 255))
	writePNG(t, filepath.Join(dir, "checker.png"), checker(10, 10))
	writePNG(t, filepath.Join(dir, "dark.png"), solid(10, 10, 0))
	writePNG(t, filepath.Join(dir, "mostly.png"), whiteN(96))
	writeFile(t, filepath.Join(dir, "notes.txt"), []byte("not an image"))
	return dir
}
