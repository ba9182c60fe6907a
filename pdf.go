// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package trainprep

import (
	"fmt"
	"image"
	"os"

	"github.com/jung-kurt/gofpdf"
)

const sheetWidth = 400   // page width in pt
const captionHeight = 24 // height of the caption below each image in pt

// ReviewSheet is a PDF with a page for each image evaluated, so the
// filter's decisions can be checked by eye
type ReviewSheet struct {
	fpdf *gofpdf.Fpdf
}

// Setup creates a new PDF with appropriate settings and fonts
func (p *ReviewSheet) Setup() error {
	p.fpdf = gofpdf.New("P", "pt", "A4", "")
	p.fpdf.SetFont("Helvetica", "", 10)
	p.fpdf.SetAutoPageBreak(false, float64(0))
	return p.fpdf.Error()
}

// AddPage adds a page to the pdf with the image from an outcome, and a
// caption giving its white proportion and whether it was accepted
func (p *ReviewSheet) AddPage(o Outcome) error {
	f, err := os.Open(o.Path)
	if err != nil {
		return fmt.Errorf("Could not open file %s: %w", o.Path, err)
	}
	cfg, _, err := image.DecodeConfig(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("Could not decode image %s: %w", o.Path, err)
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		return fmt.Errorf("Could not add %s: %w", o.Path, ErrEmptyImage)
	}

	w := float64(sheetWidth)
	h := w * float64(cfg.Height) / float64(cfg.Width)
	p.fpdf.AddPageFormat("P", gofpdf.SizeType{Wd: w, Ht: h + captionHeight})
	p.fpdf.ImageOptions(o.Path, 0, 0, w, h, false, gofpdf.ImageOptions{}, 0, "")

	verdict := "accepted"
	if !o.Accepted {
		verdict = "rejected"
	}
	p.fpdf.SetXY(0, h)
	p.fpdf.CellFormat(w, captionHeight, fmt.Sprintf("%s: %.4f %s", baseName(o.Path), o.Ratio, verdict), "", 0, "C", false, 0, "")

	return p.fpdf.Error()
}

// Save saves the PDF to the file at path
func (p *ReviewSheet) Save(path string) error {
	return p.fpdf.OutputFileAndClose(path)
}
