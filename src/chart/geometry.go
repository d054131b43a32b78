package chart

// DefaultPadding is the pixel padding reserved on every side of a surface.
const DefaultPadding = 20.0

// barFill is the share of a slot taken by its bar.
const barFill = 0.8

// BarGeometry is one bar's rectangle in surface-local pixels.
type BarGeometry struct {
	X, Y          float64
	Width, Height float64
	Index         int
}

// Contains reports whether (x, y) lies inside the bar, bounds inclusive.
func (b BarGeometry) Contains(x, y float64) bool {
	return x >= b.X && x <= b.X+b.Width && y >= b.Y && y <= b.Y+b.Height
}

// CenterX is the horizontal centre of the bar, used for both label rows.
func (b BarGeometry) CenterX() float64 { return b.X + b.Width/2 }

// Layout computes bar rectangles for a w×h surface. It is a pure function of its inputs.
// The tallest bar spans the whole usable height; negative, NaN and infinite values become
// zero-height bars sitting on the baseline.
func Layout(w, h int, padding float64, d Dataset) []BarGeometry {
	chartW := float64(w) - 2*padding
	chartH := float64(h) - 2*padding
	if chartW < 0 {
		chartW = 0
	}
	if chartH < 0 {
		chartH = 0
	}
	slot := chartW / NumBars
	barW := slot * barFill
	maxV := d.Max()

	bars := make([]BarGeometry, 0, NumBars)
	for i, v := range d.Values() {
		if !drawable(v) {
			v = 0
		}
		barH := v / maxV * chartH
		bars = append(bars, BarGeometry{
			X:      padding + float64(i)*slot + (slot-barW)/2,
			Y:      padding + chartH - barH,
			Width:  barW,
			Height: barH,
			Index:  i,
		})
	}
	return bars
}

// HitTest scans bars in order and returns the last one containing (x, y).
// Bars built by Layout never overlap, so "last" only matters for hand-made input.
func HitTest(bars []BarGeometry, x, y float64) (BarGeometry, bool) {
	var hit BarGeometry
	found := false
	for _, b := range bars {
		if b.Contains(x, y) {
			hit = b
			found = true
		}
	}
	return hit, found
}
