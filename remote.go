// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package trainprep

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// Location is a prefix inside a bucket of a Store
type Location struct {
	Bucket, Prefix string
}

// ParseLocation splits a string like "bucket/some/prefix" into a
// Location. The prefix may be empty.
func ParseLocation(s string) (Location, error) {
	s = strings.TrimPrefix(s, "s3://")
	bucket, prefix, _ := strings.Cut(s, "/")
	if bucket == "" {
		return Location{}, fmt.Errorf("No bucket in location %q", s)
	}
	return Location{Bucket: bucket, Prefix: strings.TrimSuffix(prefix, "/")}, nil
}

func (l Location) String() string {
	return path.Join(l.Bucket, l.Prefix)
}

// key returns the key for name inside the location
func (l Location) key(name string) string {
	if l.Prefix == "" {
		return name
	}
	return l.Prefix + "/" + name
}

// Remote does the same as Folder, but with images stored in conn. Images
// directly inside src which match the filter's pattern are downloaded
// to workdir, evaluated, and uploaded to dst if accepted. If workdir is
// empty a temporary directory is used and removed afterwards. dst must
// not contain any objects already.
func (f *Filter) Remote(conn Store, src Location, dst Location, workdir string) ([]Outcome, error) {
	existing, err := conn.ListObjects(dst.Bucket, dst.key(""))
	if err != nil {
		return nil, fmt.Errorf("Could not list destination %s: %w", dst, err)
	}
	if len(existing) > 0 {
		f.log().Error().Str("dst", dst.String()).Msg("Destination already exists, not filtering")
		return nil, &DestinationError{Dst: dst.String()}
	}

	keys, err := conn.ListObjects(src.Bucket, src.key(""))
	if err != nil {
		return nil, fmt.Errorf("Could not list source %s: %w", src, err)
	}
	keys, err = f.matchKeys(src, keys)
	if err != nil {
		return nil, err
	}

	if workdir == "" {
		workdir, err = os.MkdirTemp("", "trainprep")
		if err != nil {
			return nil, fmt.Errorf("Could not create temporary directory: %w", err)
		}
		defer os.RemoveAll(workdir)
	}

	var outcomes []Outcome
	for _, key := range keys {
		o, err := f.remoteOne(conn, src.Bucket, key, dst, workdir)
		if err != nil {
			if o.Path != "" {
				outcomes = append(outcomes, o)
			}
			return outcomes, err
		}
		outcomes = append(outcomes, o)
	}

	accepted := CountAccepted(outcomes)
	f.log().Info().Str("dst", dst.String()).Int("accepted", accepted).Int("rejected", len(outcomes)-accepted).Msg("Accepted images uploaded")

	return outcomes, nil
}

// remoteOne downloads a single key to workdir, evaluates it and uploads
// it to dst if accepted. The download is always removed afterwards. The
// outcome has an empty Path if the image could not be evaluated.
func (f *Filter) remoteOne(conn Store, bucket string, key string, dst Location, workdir string) (Outcome, error) {
	name := path.Base(key)
	local := filepath.Join(workdir, name)
	defer os.Remove(local)

	f.log().Debug().Str("key", key).Msg("Downloading")
	err := conn.Download(bucket, key, local)
	if err != nil {
		return Outcome{}, fmt.Errorf("Could not download %s: %w", key, err)
	}

	o, err := f.evaluate(local, key)
	if err != nil {
		return Outcome{}, err
	}
	if o.Accepted {
		f.log().Debug().Str("key", dst.key(name)).Msg("Uploading")
		err = conn.Upload(dst.Bucket, dst.key(name), local)
		if err != nil {
			return o, fmt.Errorf("Could not upload %s: %w", key, err)
		}
		o.Copied = true
	}
	return o, nil
}

// matchKeys returns the keys directly inside src matching the filter's
// pattern, sorted
func (f *Filter) matchKeys(src Location, keys []string) ([]string, error) {
	pattern := f.pattern() + imageExt
	var matched []string
	for _, k := range keys {
		rel := strings.TrimPrefix(k, src.key(""))
		if strings.Contains(rel, "/") {
			continue
		}
		ok, err := path.Match(pattern, rel)
		if err != nil {
			return nil, fmt.Errorf("Bad pattern %s: %w", f.pattern(), err)
		}
		if ok {
			matched = append(matched, k)
		}
	}
	sort.Strings(matched)
	return matched, nil
}
