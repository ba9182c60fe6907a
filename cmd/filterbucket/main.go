// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"rescribe.xyz/trainprep"
)

const usage = `Usage: filterbucket [-t thresh] [-w level] [-p pattern] [-r region] [-local dir] [-v] srcbucket/prefix dstbucket/prefix

Copies the PNG images in an S3 bucket prefix which have a low enough
proportion of white pixels into another prefix, which must be empty.

With -local, buckets are directories inside the given directory instead
of being on S3, which is useful for testing.

`

func main() {
	thresh := flag.Float64("t", trainprep.DefaultThreshold, "Proportion of white pixels above which an image is rejected")
	level := flag.Uint("w", trainprep.DefaultWhiteLevel, "Luminance (0-255) above which a pixel is white")
	pattern := flag.String("p", trainprep.DefaultPattern, "Glob pattern for images to consider, without the .png extension")
	region := flag.String("r", "", "AWS region (defaults to eu-west-2)")
	local := flag.String("local", "", "Use this local directory for storage instead of S3")
	verbose := flag.Bool("v", false, "Verbose")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(1)
	}
	if *level > 255 {
		fmt.Fprintln(os.Stderr, "White level must be between 0 and 255")
		os.Exit(1)
	}

	logger := trainprep.NewConsoleLogger()
	if *verbose {
		l := logger.Level(zerolog.DebugLevel)
		logger = &l
	}

	src, err := trainprep.ParseLocation(flag.Arg(0))
	if err != nil {
		logger.Fatal().Err(err).Msg("Bad source")
	}
	dst, err := trainprep.ParseLocation(flag.Arg(1))
	if err != nil {
		logger.Fatal().Err(err).Msg("Bad destination")
	}

	var conn trainprep.Store
	if *local != "" {
		conn = &trainprep.LocalConn{TempDir: *local, Logger: logger}
	} else {
		conn = &trainprep.AwsConn{Region: *region, Logger: logger}
	}
	err = conn.Init()
	if err != nil {
		logger.Fatal().Err(err).Msg("Error setting up storage connection")
	}

	f := &trainprep.Filter{
		Threshold:  *thresh,
		WhiteLevel: uint8(*level),
		Pattern:    *pattern,
		Logger:     logger,
	}

	_, err = f.Remote(conn, src, dst, "")
	if errors.Is(err, trainprep.ErrDestinationExists) {
		return
	}
	if err != nil {
		logger.Fatal().Err(err).Msg("Filtering failed")
	}
}
