// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

/*
The trainprep package contains small tools for preparing images to train
and evaluate segmentation models. It is split into two independent parts:
a whitespace filter which decides whether an image carries enough
information to be worth training on, and a mask post-processor (in the
mask subpackage) which smooths and binarises a model's output.

Whitespace filtering

Many crops taken from scanned pages are almost entirely blank paper.
These add little to a training set, so the whitespace filter counts the
proportion of "white" pixels in an image and rejects any image where
that proportion is too high. A pixel is white if its luminance is above
a white level (200 by default), and an image is rejected if more than a
threshold proportion (0.95 by default) of its pixels are white. An image
exactly at the threshold is kept.

The whitefilter command runs the filter over a directory of PNG files,
copying the accepted ones into a new directory:
  whitefilter -t 0.95 -w 200 crops/ crops-filtered/

The destination directory must not exist already; if it does nothing is
copied. The whitefilter command can also draw a graph of the whiteness
of every image (-graph) and write a PDF to review the decisions (-sheet).

The whitecount command just reports the white and black pixel counts of
some images, which is useful for choosing a threshold:
  whitecount page1.png page2.png

Note that whitecount uses a white level of 225 by default, rather than
the 200 used when filtering. This mirrors the defaults that the rest of
our tooling has always used, and is deliberately kept as two separate
constants, DefaultCountWhiteLevel and DefaultWhiteLevel.

Filtering in the cloud

The filterbucket command does the same as whitefilter, but reads images
from an S3 bucket prefix and uploads the accepted ones to another prefix.
You'll need to set up your ~/.aws/credentials appropriately. For testing,
the -local flag uses a directory on the local machine instead of S3.
  filterbucket trainingdata/crops trainingdata/crops-filtered

Mask post-processing

Segmentation models output a mask of probabilities between 0 and 1. The
maskprocess command smooths such a mask with a gaussian blur and then
thresholds it, so every pixel is either 0 or 1:
  maskprocess -s 15 -t 0.8 prediction.png mask.png

The smoothing value is the size of the blur kernel, and must be odd.
*/
package trainprep
