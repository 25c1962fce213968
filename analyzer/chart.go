package analyzer

import (
	"fmt"
	"io"
	"sort"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/minminlittleshrimp/helix/symbol"
)

// RenderGCProfile draws the sliding-window GC ratio of q as an SVG line
// chart, with the ½ target as a second flat series.
func RenderGCProfile(w io.Writer, q []symbol.Symbol, window int) error {
	profile := GCProfile(q, window)
	if len(profile) == 0 {
		return fmt.Errorf("analyzer: nothing to chart for an empty sequence")
	}

	xvals := make([]float64, len(profile))
	target := make([]float64, len(profile))
	for i := range profile {
		xvals[i] = float64(i)
		target[i] = 0.5
	}

	graph := chart.Chart{
		Title: fmt.Sprintf("GC ratio, window %d", window),
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "GC ratio",
				XValues: xvals,
				YValues: profile,
			},
			chart.ContinuousSeries{
				Name: "target",
				Style: chart.Style{
					StrokeDashArray: []float64{4, 4},
				},
				XValues: xvals,
				YValues: target,
			},
		},
	}

	return graph.Render(chart.SVG, w)
}

// RenderRunHistogram draws the maximal-run length histogram of q as an
// SVG bar chart.
func RenderRunHistogram(w io.Writer, q []symbol.Symbol) error {
	hist := RunHistogram(q)
	if len(hist) == 0 {
		return fmt.Errorf("analyzer: nothing to chart for an empty sequence")
	}

	lengths := make([]int, 0, len(hist))
	for l := range hist {
		lengths = append(lengths, l)
	}
	sort.Ints(lengths)

	bars := make([]chart.Value, 0, len(lengths))
	for _, l := range lengths {
		bars = append(bars, chart.Value{
			Label: fmt.Sprintf("%d", l),
			Value: float64(hist[l]),
		})
	}

	graph := chart.BarChart{
		Title:    "Homopolymer run lengths",
		BarWidth: 40,
		Bars:     bars,
	}

	return graph.Render(chart.SVG, w)
}
