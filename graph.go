// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package trainprep

import (
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const maxticks = 40
const yticknum = 20

// ErrNotEnoughOutcomes is returned when too few images were evaluated
// to draw a graph
var ErrNotEnoughOutcomes = errors.New("Not enough outcomes to graph")

// createLine creates a horizontal line with a particular y value for
// a graph
func createLine(xvalues []float64, y float64, c drawing.Color) chart.ContinuousSeries {
	var yvalues []float64
	for range xvalues {
		yvalues = append(yvalues, y)
	}
	return chart.ContinuousSeries{
		XValues: xvalues,
		YValues: yvalues,
		Style: chart.Style{
			StrokeColor: c,
		},
	}
}

// Graph creates a graph of the white proportion of each image evaluated,
// in the order they were evaluated, with a line marking the threshold.
// Rejected images are labelled with their name.
func Graph(outcomes []Outcome, title string, threshold float64, w io.Writer) error {
	if len(outcomes) < 2 {
		return ErrNotEnoughOutcomes
	}

	var xvalues, yvalues []float64
	var ticks []chart.Tick
	var yticks []chart.Tick
	var annotations []chart.Value2
	tickevery := len(outcomes) / maxticks
	if tickevery < 1 {
		tickevery = 1
	}
	for i, o := range outcomes {
		x := float64(i + 1)
		xvalues = append(xvalues, x)
		yvalues = append(yvalues, o.Ratio)
		if i%tickevery == 0 {
			ticks = append(ticks, chart.Tick{Value: x, Label: fmt.Sprintf("%.0f", x)})
		}
		if !o.Accepted {
			annotations = append(annotations, chart.Value2{Label: baseName(o.Path), XValue: x, YValue: o.Ratio})
		}
	}
	// Make last tick the final image
	last := float64(len(outcomes))
	ticks[len(ticks)-1] = chart.Tick{Value: last, Label: fmt.Sprintf("%.0f", last)}
	for i := 0; i <= yticknum; i++ {
		n := float64(i) / yticknum
		yticks = append(yticks, chart.Tick{Value: n, Label: fmt.Sprintf("%.2f", n)})
	}

	mainSeries := chart.ContinuousSeries{
		Style: chart.Style{
			StrokeColor: chart.ColorBlue,
			FillColor:   chart.ColorAlternateBlue,
		},
		XValues: xvalues,
		YValues: yvalues,
	}

	graph := chart.Chart{
		Title:  title,
		Width:  3840,
		Height: 2160,
		XAxis: chart.XAxis{
			Name: "Image",
			Range: &chart.ContinuousRange{
				Min: 0.0,
			},
			Ticks: ticks,
		},
		YAxis: chart.YAxis{
			Name: "White proportion",
			Range: &chart.ContinuousRange{
				Min: 0.0,
				Max: 1.0,
			},
			Ticks: yticks,
		},
		Series: []chart.Series{
			mainSeries,
			createLine(xvalues, threshold, chart.ColorRed),
		},
	}
	if len(annotations) > 0 {
		graph.Series = append(graph.Series, chart.AnnotationSeries{Annotations: annotations})
	}
	return graph.Render(chart.PNG, w)
}

// baseName returns the last element of a file path or object key
func baseName(p string) string {
	return path.Base(filepath.ToSlash(p))
}
