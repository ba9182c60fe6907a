// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package trainprep

// This file contains the default settings for the filters; change these
// if your images need different defaults.

// Whitespace filter defaults
const (
	// DefaultThreshold is the highest proportion of white pixels an
	// image may have and still be accepted
	DefaultThreshold = 0.95

	// DefaultWhiteLevel is the luminance above which a pixel is white,
	// used when accepting or rejecting images
	DefaultWhiteLevel = 200

	// DefaultCountWhiteLevel is the luminance above which a pixel is
	// white, used when just counting pixels. It is intentionally
	// different to DefaultWhiteLevel.
	DefaultCountWhiteLevel = 225

	// DefaultPattern matches every image in a folder
	DefaultPattern = "*"
)

// imageExt is appended to the pattern when listing a folder
const imageExt = ".png"

// AWS details
const (
	defaultAwsRegion = `eu-west-2`
)
