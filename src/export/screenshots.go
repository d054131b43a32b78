// Package export renders the report without a window: PNG screenshots of every chart
// surface, a cross-model score comparison, and a standalone HTML report.
package export

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"

	gochart "github.com/wcharczuk/go-chart/v2"

	"github.com/iafilius/EvalReportCharts/src/catalog"
	"github.com/iafilius/EvalReportCharts/src/chart"
	"github.com/iafilius/EvalReportCharts/src/logging"
	"github.com/iafilius/EvalReportCharts/src/page"
)

// ComparisonFile is the name of the cross-model chart written next to the surfaces.
const ComparisonFile = "score_comparison.png"

// NewReportDocument builds a document with one w×h surface per catalog entry, stacked
// vertically, and renders the catalog into it.
func NewReportDocument(w, h int) (*page.Document, *chart.Renderer) {
	doc := page.NewDocument()
	for i, e := range catalog.Entries {
		doc.AddSurface(e.SurfaceID, w, h, 0, float64(i*h))
	}
	r := chart.NewRenderer(doc)
	catalog.Init(doc, r)
	return doc, r
}

// WriteScreenshots renders every chart headlessly and writes <surfaceID>.png plus the
// comparison chart under outDir. It returns the written paths.
func WriteScreenshots(outDir string, w, h int) ([]string, error) {
	defer logging.Track("screenshots")()
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create out dir: %w", err)
	}
	doc, _ := NewReportDocument(w, h)
	var written []string
	for _, id := range doc.SurfaceIDs() {
		c, _ := doc.Canvas(id)
		p := filepath.Join(outDir, id+".png")
		if err := writePNG(p, onWhite(c.Image())); err != nil {
			return written, err
		}
		written = append(written, p)
	}
	p := filepath.Join(outDir, ComparisonFile)
	var buf bytes.Buffer
	if err := RenderComparison(&buf); err != nil {
		return written, err
	}
	if err := os.WriteFile(p, buf.Bytes(), 0o644); err != nil {
		return written, fmt.Errorf("write %s: %w", p, err)
	}
	written = append(written, p)
	logging.Infof("export: wrote %d images to %s", len(written), outDir)
	return written, nil
}

// onWhite flattens a transparent surface onto an opaque white background.
func onWhite(src image.Image) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(b)
	draw.Draw(dst, b, image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(dst, b, src, b.Min, draw.Over)
	return dst
}

func writePNG(path string, img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("png encode %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ComparisonBars returns one bar per catalog entry with its overall score.
func ComparisonBars() []gochart.Value {
	bars := make([]gochart.Value, 0, len(catalog.Entries))
	for _, e := range catalog.Entries {
		col := chart.Palette[0]
		bars = append(bars, gochart.Value{
			Label: fmt.Sprintf("%s (F%d)", e.Model, e.Finding),
			Value: e.Data.Score,
			Style: gochart.Style{FillColor: col, StrokeColor: col},
		})
	}
	return bars
}

// RenderComparison writes the score-by-model bar chart as PNG.
func RenderComparison(w io.Writer) error {
	graph := gochart.BarChart{
		Title:      "Score by model",
		Background: gochart.Style{Padding: gochart.Box{Top: 40}},
		Width:      1024,
		Height:     400,
		BarWidth:   80,
		BarSpacing: 60,
		Bars:       ComparisonBars(),
	}
	if err := graph.Render(gochart.PNG, w); err != nil {
		return fmt.Errorf("render comparison: %w", err)
	}
	return nil
}
