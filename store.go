// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package trainprep

// Store is an object store which images can be filtered from and to.
// It is implemented by AwsConn and LocalConn.
type Store interface {
	Init() error
	ListObjects(bucket string, prefix string) ([]string, error)
	Download(bucket string, key string, path string) error
	Upload(bucket string, key string, path string) error
}
