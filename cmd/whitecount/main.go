// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"os"

	"rescribe.xyz/trainprep"
)

const usage = `Usage: whitecount [-w level] img...

Prints the number of white and black pixels in each image, and the
proportion of pixels which are white.

Note that the default white level here is higher than the one used by
whitefilter.

`

func main() {
	level := flag.Uint("w", trainprep.DefaultCountWhiteLevel, "Luminance (0-255) above which a pixel is white")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}
	if *level > 255 {
		fmt.Fprintln(os.Stderr, "White level must be between 0 and 255")
		os.Exit(1)
	}

	logger := trainprep.NewConsoleLogger()

	for _, path := range flag.Args() {
		c, err := trainprep.CountWhiteBlackFile(path, uint8(*level))
		if err != nil {
			logger.Fatal().Err(err).Msg("Could not count pixels")
		}
		ratio, err := c.Ratio()
		if err != nil {
			logger.Error().Err(err).Str("path", path).Msg("Could not calculate white proportion")
			continue
		}
		fmt.Printf("%s\twhite %d\tblack %d\tproportion %.4f\n", path, c.White, c.Black, ratio)
	}
}
