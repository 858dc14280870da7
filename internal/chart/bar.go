// Package chart draws the ranked totals as an SVG bar chart.
package chart

import (
	"math"
	"slices"

	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/gonum/floats"

	"github.com/KaramelBytes/medalreport/internal/analysis"
)

// Bar is one filled rectangle in data coordinates.
type Bar struct {
	Label  string
	X0, X1 float64
	Y0, Y1 float64
}

// Bars lays out one unit-wide bar per row of ranked: row i spans [i, i+1]
// on x and [0, value] on y. A null value draws a zero-height bar.
func Bars(ranked dataframe.DataFrame, labelCol, valueCol string) ([]Bar, error) {
	col, err := analysis.ColumnOf(ranked, valueCol)
	if err != nil {
		return nil, err
	}
	if names := ranked.Names(); !slices.Contains(names, labelCol) {
		return nil, &analysis.ColumnNotFoundError{Column: labelCol, Available: names}
	}
	labels := ranked.Col(labelCol)

	bars := make([]Bar, col.Len())
	for i := range bars {
		label := ""
		if e := labels.Elem(i); !e.IsNA() {
			label = e.String()
		}
		y := 0.0
		if col.Valid[i] {
			y = col.Values[i]
		}
		bars[i] = Bar{Label: label, X0: float64(i), X1: float64(i + 1), Y1: y}
	}
	return bars, nil
}

// YMax is the top of the y axis: the tallest finite bar, or 1 when there
// is no positive height to scale to.
func YMax(bars []Bar) float64 {
	heights := make([]float64, 0, len(bars))
	for _, b := range bars {
		if !math.IsInf(b.Y1, 0) && !math.IsNaN(b.Y1) {
			heights = append(heights, b.Y1)
		}
	}
	if len(heights) == 0 {
		return 1
	}
	m := floats.Max(heights)
	if !(m > 0) {
		return 1
	}
	return m
}
