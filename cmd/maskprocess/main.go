// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"os"

	"rescribe.xyz/trainprep"
	"rescribe.xyz/trainprep/mask"
)

const usage = `Usage: maskprocess [-s smoothing] [-t thresh] inmask outmask

Smooths a probability mask image with a gaussian blur and thresholds it,
saving a black and white mask. Black in the input is taken as 0 and
white as 1.

`

func main() {
	smoothing := flag.Int("s", 15, "Size of the blur kernel; must be odd, the larger the smoother")
	thresh := flag.Float64("t", 0.8, "Value (0-1) above which a smoothed pixel is set")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 2 {
		flag.Usage()
		os.Exit(1)
	}

	logger := trainprep.NewConsoleLogger()

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		logger.Fatal().Err(err).Msg("Could not open mask")
	}
	img, _, err := image.Decode(f)
	f.Close()
	if err != nil {
		logger.Fatal().Err(err).Msg("Could not decode mask")
	}

	done, err := mask.Process(mask.FromImage(img), *smoothing, *thresh)
	if err != nil {
		logger.Fatal().Err(err).Msg("Could not process mask")
	}

	f, err = os.Create(flag.Arg(1))
	if err != nil {
		logger.Fatal().Err(err).Msg("Could not create output file")
	}
	defer f.Close()
	err = png.Encode(f, done.Image())
	if err != nil {
		logger.Fatal().Err(err).Msg("Could not encode mask")
	}
}
