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

const usage = `Usage: whitefilter [-t thresh] [-w level] [-p pattern] [-graph graph.png] [-sheet review.pdf] [-v] srcdir dstdir

Copies the PNG images in srcdir which have a low enough proportion of
white pixels into dstdir, which must not already exist.

A pixel is white if its luminance is above the white level. An image is
rejected if the proportion of white pixels is above the threshold.

`

func main() {
	thresh := flag.Float64("t", trainprep.DefaultThreshold, "Proportion of white pixels above which an image is rejected")
	level := flag.Uint("w", trainprep.DefaultWhiteLevel, "Luminance (0-255) above which a pixel is white")
	pattern := flag.String("p", trainprep.DefaultPattern, "Glob pattern for images to consider, without the .png extension")
	graph := flag.String("graph", "", "Save a graph of the white proportion of each image to this file")
	sheet := flag.String("sheet", "", "Save a PDF showing each image and its verdict to this file")
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

	f := &trainprep.Filter{
		Threshold:  *thresh,
		WhiteLevel: uint8(*level),
		Pattern:    *pattern,
		Logger:     logger,
	}

	src, dst := flag.Arg(0), flag.Arg(1)
	outcomes, err := f.Folder(src, dst)
	if errors.Is(err, trainprep.ErrDestinationExists) {
		// already reported by Folder, and nothing has been touched
		return
	}
	if err != nil {
		logger.Fatal().Err(err).Msg("Filtering failed")
	}

	if *graph != "" {
		fn, err := os.Create(*graph)
		if err != nil {
			logger.Fatal().Err(err).Str("path", *graph).Msg("Could not create graph file")
		}
		err = trainprep.Graph(outcomes, src, *thresh, fn)
		fn.Close()
		if err != nil {
			logger.Fatal().Err(err).Msg("Could not create graph")
		}
	}

	if *sheet != "" {
		pdf := new(trainprep.ReviewSheet)
		err = pdf.Setup()
		if err != nil {
			logger.Fatal().Err(err).Msg("Could not set up PDF")
		}
		for _, o := range outcomes {
			err = pdf.AddPage(o)
			if err != nil {
				logger.Fatal().Err(err).Msg("Could not add page to PDF")
			}
		}
		err = pdf.Save(*sheet)
		if err != nil {
			logger.Fatal().Err(err).Str("path", *sheet).Msg("Could not save PDF")
		}
	}
}
