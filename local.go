// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package trainprep

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// LocalConn is a simple implementation of the Store interface that
// doesn't rely on any "cloud" services, instead keeping each bucket as
// a directory inside TempDir. This is particularly useful for testing.
type LocalConn struct {
	// these should be set before running Init(), or left to defaults
	TempDir string
	Logger  *zerolog.Logger
}

// Init creates TempDir if needed
func (a *LocalConn) Init() error {
	if a.TempDir == "" {
		a.TempDir = filepath.Join(os.TempDir(), "trainprep")
	}
	err := os.MkdirAll(a.TempDir, 0700)
	if err != nil {
		return fmt.Errorf("Error creating temporary directory: %w", err)
	}

	if a.Logger == nil {
		a.Logger = NewConsoleLogger()
	}
	a.Logger.Debug().Str("dir", a.TempDir).Msg("Using local storage")

	return nil
}

// ListObjects returns the keys of all files in the bucket directory
// starting with prefix. A missing bucket is treated as empty.
func (a *LocalConn) ListObjects(bucket string, prefix string) ([]string, error) {
	var names []string
	dir := filepath.Join(a.TempDir, bucket)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir && os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		key := filepath.ToSlash(rel)
		if strings.HasPrefix(key, prefix) {
			names = append(names, key)
		}
		return nil
	})
	return names, err
}

// Download just copies the file from TempDir/bucket/key to path
func (a *LocalConn) Download(bucket string, key string, path string) error {
	return copyFile(filepath.Join(a.TempDir, bucket, filepath.FromSlash(key)), path)
}

// Upload just copies the file from path to TempDir/bucket/key
func (a *LocalConn) Upload(bucket string, key string, path string) error {
	dst := filepath.Join(a.TempDir, bucket, filepath.FromSlash(key))
	err := os.MkdirAll(filepath.Dir(dst), 0700)
	if err != nil {
		return fmt.Errorf("Error creating directory for %s: %w", key, err)
	}
	return copyFile(path, dst)
}
