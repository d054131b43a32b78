package chart

import (
	"image"
	"image/draw"
	"math"
	"strconv"

	"github.com/iafilius/EvalReportCharts/src/logging"
)

const (
	valueLabelOffset = 8  // value label baseline above the bar top
	axisLabelOffset  = 15 // axis label baseline below the chart baseline
)

// Renderer paints datasets onto the surfaces of one host. It owns the Registry used by its
// HoverTracker; use one Renderer per document.
type Renderer struct {
	host    Host
	reg     *Registry
	hover   *HoverTracker
	padding float64
}

func NewRenderer(host Host) *Renderer {
	reg := NewRegistry()
	return &Renderer{
		host:    host,
		reg:     reg,
		hover:   NewHoverTracker(host, reg),
		padding: DefaultPadding,
	}
}

// Registry exposes the cached chart states.
func (r *Renderer) Registry() *Registry { return r.reg }

// Render repaints surface id from scratch with d. A missing surface is logged and skipped.
func (r *Renderer) Render(id string, d Dataset) {
	defer logging.Track("render "+id)()
	s, ok := r.host.Surface(id)
	if !ok {
		logging.Errorf("chart: surface not found: %s", id)
		return
	}
	w, h := s.Size()
	bars := Layout(w, h, r.padding, d)
	logging.Debugf("chart: %s %dx%d values=%v", id, w, h, d.Values())

	paint(s.Canvas(), bars, d)
	r.reg.publish(id, bars)
	r.hover.Install(s)
}

func paint(dst draw.Image, bars []BarGeometry, d Dataset) {
	if dst == nil {
		return
	}
	draw.Draw(dst, dst.Bounds(), image.Transparent, image.Point{}, draw.Src)
	values := d.Values()
	for _, b := range bars {
		rect := image.Rect(
			round(b.X), round(b.Y),
			round(b.X+b.Width), round(b.Y+b.Height),
		)
		draw.Draw(dst, rect, image.NewUniform(Palette[b.Index]), image.Point{}, draw.Src)
		drawCenteredText(dst, FormatValue(values[b.Index]), b.CenterX(), b.Y-valueLabelOffset, valueTextColor)
	}
	for _, b := range bars {
		drawCenteredText(dst, Labels[b.Index], b.CenterX(), b.Y+b.Height+axisLabelOffset, axisTextColor)
	}
}

// FormatValue prints the shortest decimal form, e.g. 90, 0.5.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func round(v float64) int { return int(math.Round(v)) }
