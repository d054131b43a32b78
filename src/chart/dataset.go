// Package chart renders the four-dimension evaluation bar charts onto host surfaces and
// tracks pointer hover over the drawn bars.
//
// Control flow: the catalog calls Renderer.Render once per dataset; the first render of a
// surface installs the hover listeners; later pointer events read the geometry cached in the
// Registry by the most recent render.
package chart

import (
	"image/color"
	"math"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// NumBars is the fixed number of dimensions per chart.
const NumBars = 4

// Labels are the short axis labels in bar order. They double as tooltip text.
var Labels = [NumBars]string{"Score", "Acc", "Flu", "App"}

// Palette is keyed by bar index, not by value or label.
var Palette = [NumBars]drawing.Color{
	drawing.ColorFromHex("7BA7D4"),
	drawing.ColorFromHex("82C882"),
	drawing.ColorFromHex("F4B366"),
	drawing.ColorFromHex("E57373"),
}

var (
	valueTextColor color.Color = drawing.ColorFromHex("333333")
	axisTextColor  color.Color = drawing.ColorFromHex("555555")
)

// Dataset is one model's evaluation result. Values are expected to be non-negative.
type Dataset struct {
	Score           float64 `json:"score" yaml:"score"`
	Accuracy        float64 `json:"accuracy" yaml:"accuracy"`
	Fluency         float64 `json:"fluency" yaml:"fluency"`
	Appropriateness float64 `json:"appropriateness" yaml:"appropriateness"`
}

// Values returns the dataset in label order.
func (d Dataset) Values() [NumBars]float64 {
	return [NumBars]float64{d.Score, d.Accuracy, d.Fluency, d.Appropriateness}
}

// drawable reports whether v can be drawn as a bar; everything else is drawn flat.
func drawable(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// Max returns the largest drawable value, or 1 when there is none so callers never divide
// by 0. NaN and infinities are ignored.
func (d Dataset) Max() float64 {
	m := 0.0
	for _, v := range d.Values() {
		if drawable(v) && v > m {
			m = v
		}
	}
	if m <= 0 {
		return 1
	}
	return m
}
