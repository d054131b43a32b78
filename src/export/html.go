package export

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/iafilius/EvalReportCharts/src/catalog"
	"github.com/iafilius/EvalReportCharts/src/chart"
	"github.com/iafilius/EvalReportCharts/src/logging"
)

// hexColor formats a palette colour for CSS.
func hexColor(c drawing.Color) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// newEntryBar builds one chart whose item tooltip names the hovered dimension, matching the
// raster charts' hover behaviour.
func newEntryBar(e catalog.Entry, w, h int) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			ChartID: e.SurfaceID,
			Width:   fmt.Sprintf("%dpx", w),
			Height:  fmt.Sprintf("%dpx", h),
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    e.Model,
			Subtitle: fmt.Sprintf("Finding %d", e.Finding),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:      opts.Bool(true),
			Trigger:   "item",
			Formatter: "{b}",
		}),
	)
	values := e.Data.Values()
	items := make([]opts.BarData, 0, chart.NumBars)
	for i, label := range chart.Labels {
		items = append(items, opts.BarData{
			Name:      label,
			Value:     values[i],
			ItemStyle: &opts.ItemStyle{Color: hexColor(chart.Palette[i])},
		})
	}
	bar.SetXAxis(chart.Labels[:]).AddSeries(e.Model, items)
	return bar
}

// RenderHTML writes a page with one interactive bar chart per catalog entry.
func RenderHTML(out io.Writer, w, h int) error {
	p := components.NewPage()
	p.PageTitle = "Evaluation results"
	for _, e := range catalog.Entries {
		p.AddCharts(newEntryBar(e, w, h))
	}
	if err := p.Render(out); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}

// WriteHTML renders the HTML report to path.
func WriteHTML(path string, w, h int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := writeAndClose(f, w, h); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	logging.Infof("export: wrote %s", path)
	return nil
}

// writeAndClose renders into wc and closes it; a failed close is reported when rendering
// succeeded, since buffered output may be lost.
func writeAndClose(wc io.WriteCloser, w, h int) (err error) {
	defer func() {
		if cerr := wc.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close: %w", cerr)
		}
	}()
	return RenderHTML(wc, w, h)
}
