// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package trainprep

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestFolder(t *testing.T) {
	cases := []struct {
		name     string
		pattern  string
		thresh   float64
		level    uint8
		copied   []string
		rejected []string
	}{
		{"defaults", "*", DefaultThreshold, DefaultWhiteLevel, []string{"checker.png", "dark.png"}, []string{"blank.png", "mostly.png"}},
		{"emptypattern", "", DefaultThreshold, DefaultWhiteLevel, []string{"checker.png", "dark.png"}, []string{"blank.png", "mostly.png"}},
		{"pattern", "c*", DefaultThreshold, DefaultWhiteLevel, []string{"checker.png"}, nil},
		{"lenient", "*", 1, DefaultWhiteLevel, []string{"blank.png", "checker.png", "dark.png", "mostly.png"}, nil},
		{"strict", "*", 0, DefaultWhiteLevel, []string{"dark.png"}, []string{"blank.png", "checker.png", "mostly.png"}},
		{"nomatch", "nothing", DefaultThreshold, DefaultWhiteLevel, nil, nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			src := srcDir(t)
			dst := filepath.Join(t.TempDir(), "dst")
			logger, buf := bufLogger()
			f := &Filter{Threshold: c.thresh, WhiteLevel: c.level, Pattern: c.pattern, Logger: logger}

			outcomes, err := f.Folder(src, dst)
			if err != nil {
				t.Fatalf("Unexpected error: %v\nLog: %s", err, buf.String())
			}

			var copied, rejected []string
			for _, o := range outcomes {
				if o.Copied != o.Accepted {
					t.Errorf("Outcome for %s accepted %v but copied %v", o.Path, o.Accepted, o.Copied)
				}
				if o.Counts.Total() != 100 {
					t.Errorf("Outcome for %s counted %d pixels", o.Path, o.Counts.Total())
				}
				if o.Accepted {
					copied = append(copied, filepath.Base(o.Path))
				} else {
					rejected = append(rejected, filepath.Base(o.Path))
				}
			}
			if !reflect.DeepEqual(copied, c.copied) {
				t.Errorf("Expected accepted %v, got %v", c.copied, copied)
			}
			if !reflect.DeepEqual(rejected, c.rejected) {
				t.Errorf("Expected rejected %v, got %v", c.rejected, rejected)
			}
			if !reflect.DeepEqual(dirNames(t, dst), c.copied) {
				t.Errorf("Expected %s to contain %v, got %v", dst, c.copied, dirNames(t, dst))
			}
			for _, n := range c.copied {
				if !sameFile(t, filepath.Join(src, n), filepath.Join(dst, n)) {
					t.Errorf("Copy of %s differs from original", n)
				}
			}
			for _, n := range c.rejected {
				if !strings.Contains(buf.String(), n) {
					t.Errorf("Expected rejection of %s to be logged\nLog: %s", n, buf.String())
				}
			}
			if !strings.Contains(buf.String(), "Accepted images copied") {
				t.Errorf("Expected summary to be logged\nLog: %s", buf.String())
			}
		})
	}
}

func TestFolderDestinationExists(t *testing.T) {
	src := srcDir(t)
	dst := filepath.Join(t.TempDir(), "dst")
	err := os.Mkdir(dst, 0755)
	if err != nil {
		t.Fatalf("Could not create %s: %v", dst, err)
	}
	writeFile(t, filepath.Join(dst, "existing.txt"), []byte("leave me alone"))

	logger, buf := bufLogger()
	f := &Filter{Threshold: DefaultThreshold, WhiteLevel: DefaultWhiteLevel, Pattern: DefaultPattern, Logger: logger}
	outcomes, err := f.Folder(src, dst)
	if !errors.Is(err, ErrDestinationExists) {
		t.Fatalf("Expected ErrDestinationExists, got %v", err)
	}
	var derr *DestinationError
	if !errors.As(err, &derr) || derr.Dst != dst {
		t.Errorf("Expected a DestinationError for %s, got %v", dst, err)
	}
	if len(outcomes) != 0 {
		t.Errorf("Expected no outcomes, got %v", outcomes)
	}
	if !reflect.DeepEqual(dirNames(t, dst), []string{"existing.txt"}) {
		t.Errorf("Destination was modified, now contains %v", dirNames(t, dst))
	}
	if !strings.Contains(buf.String(), "already exists") {
		t.Errorf("Expected diagnostic to be logged\nLog: %s", buf.String())
	}
}

func TestFolderTwice(t *testing.T) {
	src := srcDir(t)
	logger, _ := bufLogger()
	f := &Filter{Threshold: DefaultThreshold, WhiteLevel: DefaultWhiteLevel, Pattern: DefaultPattern, Logger: logger}

	dst1 := filepath.Join(t.TempDir(), "one")
	dst2 := filepath.Join(t.TempDir(), "two")
	_, err := f.Folder(src, dst1)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	_, err = f.Folder(src, dst2)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !reflect.DeepEqual(dirNames(t, dst1), dirNames(t, dst2)) {
		t.Errorf("Runs differ: %v and %v", dirNames(t, dst1), dirNames(t, dst2))
	}

	_, err = f.Folder(src, dst1)
	if !errors.Is(err, ErrDestinationExists) {
		t.Errorf("Expected rerun to the same destination to fail with ErrDestinationExists, got %v", err)
	}
}

func TestFolderBadImage(t *testing.T) {
	src := srcDir(t)
	writeFile(t, filepath.Join(src, "corrupt.png"), []byte("not really a png"))
	dst := filepath.Join(t.TempDir(), "dst")

	logger, _ := bufLogger()
	f := &Filter{Threshold: DefaultThreshold, WhiteLevel: DefaultWhiteLevel, Pattern: DefaultPattern, Logger: logger}
	outcomes, err := f.Folder(src, dst)
	if err == nil {
		t.Fatalf("Expected an error for corrupt.png")
	}
	if !strings.Contains(err.Error(), "corrupt.png") {
		t.Errorf("Expected error to name corrupt.png, got %v", err)
	}

	// images listed before the bad one have been processed, and not rolled back
	if len(outcomes) != 2 {
		t.Errorf("Expected 2 outcomes before the failure, got %d", len(outcomes))
	}
	if !reflect.DeepEqual(dirNames(t, dst), []string{"checker.png"}) {
		t.Errorf("Expected only checker.png to be copied, got %v", dirNames(t, dst))
	}
}

func TestFilterFolder(t *testing.T) {
	src := srcDir(t)
	dst := filepath.Join(t.TempDir(), "dst")
	outcomes, err := FilterFolder(src, dst, DefaultThreshold, DefaultWhiteLevel, DefaultPattern)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if CountAccepted(outcomes) != 2 || len(outcomes) != 4 {
		t.Errorf("Expected 2 of 4 accepted, got %d of %d", CountAccepted(outcomes), len(outcomes))
	}
}
