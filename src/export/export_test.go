package export

import (
	"bytes"
	"errors"
	"image"
	_ "image/png" // register PNG decoder
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iafilius/EvalReportCharts/src/catalog"
	"github.com/iafilius/EvalReportCharts/src/chart"
)

func TestWriteScreenshots(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "shots")
	paths, err := WriteScreenshots(outDir, 400, 200)
	if err != nil {
		t.Fatalf("screenshots: %v", err)
	}
	if len(paths) != len(catalog.Entries)+1 {
		t.Fatalf("wrote %d files want %d", len(paths), len(catalog.Entries)+1)
	}
	for _, e := range catalog.Entries {
		p := filepath.Join(outDir, e.SurfaceID+".png")
		f, err := os.Open(p)
		if err != nil {
			t.Fatalf("open %s: %v", p, err)
		}
		cfg, _, err := image.DecodeConfig(f)
		f.Close()
		if err != nil {
			t.Fatalf("decode %s: %v", p, err)
		}
		if cfg.Width != 400 || cfg.Height != 200 {
			t.Fatalf("%s is %dx%d", p, cfg.Width, cfg.Height)
		}
	}
	if _, err := os.Stat(filepath.Join(outDir, ComparisonFile)); err != nil {
		t.Fatalf("comparison chart missing: %v", err)
	}
}

func TestWriteScreenshots_BadDir(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := WriteScreenshots(filepath.Join(blocker, "sub"), 400, 200); err == nil {
		t.Fatalf("expected error when out dir cannot be created")
	}
}

func TestScreenshotsAreOpaque(t *testing.T) {
	doc, _ := NewReportDocument(400, 200)
	c, _ := doc.Canvas("gpt5Chart")
	img := onWhite(c.Image())
	if _, _, _, a := img.At(1, 1).RGBA(); a != 0xffff {
		t.Fatalf("background should be opaque, alpha=%d", a)
	}
}

func TestComparisonBars(t *testing.T) {
	bars := ComparisonBars()
	if len(bars) != len(catalog.Entries) {
		t.Fatalf("got %d bars", len(bars))
	}
	seen := map[string]bool{}
	for i, b := range bars {
		if b.Value != catalog.Entries[i].Data.Score {
			t.Fatalf("bar %d value %v", i, b.Value)
		}
		if seen[b.Label] {
			t.Fatalf("duplicate label %q", b.Label)
		}
		seen[b.Label] = true
	}
}

func TestRenderHTML(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderHTML(&buf, 400, 200); err != nil {
		t.Fatalf("render html: %v", err)
	}
	out := buf.String()
	for _, e := range catalog.Entries {
		if !strings.Contains(out, e.SurfaceID) {
			t.Fatalf("html missing chart %s", e.SurfaceID)
		}
	}
	for _, l := range chart.Labels {
		if !strings.Contains(out, l) {
			t.Fatalf("html missing label %s", l)
		}
	}
	if !strings.Contains(out, hexColor(chart.Palette[0])) {
		t.Fatalf("html missing palette colour %s", hexColor(chart.Palette[0]))
	}
}

func TestHexColor(t *testing.T) {
	if got := hexColor(chart.Palette[3]); got != "#E57373" {
		t.Fatalf("hex %s", got)
	}
}

func TestWriteHTML(t *testing.T) {
	p := filepath.Join(t.TempDir(), "report.html")
	if err := WriteHTML(p, 400, 200); err != nil {
		t.Fatalf("write html: %v", err)
	}
	b, err := os.ReadFile(p)
	if err != nil || len(b) == 0 {
		t.Fatalf("read back: %v (%d bytes)", err, len(b))
	}
}

type closeFailWriter struct {
	bytes.Buffer
	closed bool
}

var errDiskFull = errors.New("disk full")

func (c *closeFailWriter) Close() error {
	c.closed = true
	return errDiskFull
}

func TestWriteAndClose_ReportsCloseError(t *testing.T) {
	wc := &closeFailWriter{}
	err := writeAndClose(wc, 400, 200)
	if !errors.Is(err, errDiskFull) {
		t.Fatalf("expected close error, got %v", err)
	}
	if !wc.closed || wc.Len() == 0 {
		t.Fatalf("writer not rendered and closed (closed=%v, %d bytes)", wc.closed, wc.Len())
	}
}

func TestWriteHTML_BadPath(t *testing.T) {
	if err := WriteHTML(filepath.Join(t.TempDir(), "missing", "report.html"), 400, 200); err == nil {
		t.Fatalf("expected error for a path in a missing directory")
	}
}
