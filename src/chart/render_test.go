package chart

import (
	"bytes"
	"image/color"
	"os"
	"reflect"
	"strings"
	"testing"

	"github.com/iafilius/EvalReportCharts/src/logging"
)

var gpt5 = Dataset{Score: 90, Accuracy: 60, Fluency: 20, Appropriateness: 10}

func sameColor(a, b color.Color) bool {
	r1, g1, b1, a1 := a.RGBA()
	r2, g2, b2, a2 := b.RGBA()
	return r1 == r2 && g1 == g2 && b1 == b2 && a1 == a2
}

func TestRender_PaintsBarsInPalette(t *testing.T) {
	host := newFakeHost()
	s := host.add("gpt5Chart", 400, 200, 0, 0)
	r := NewRenderer(host)
	r.Render("gpt5Chart", gpt5)

	st, ok := r.Registry().Get("gpt5Chart")
	if !ok {
		t.Fatalf("no chart state after render")
	}
	for _, b := range st.Bars {
		// sample just above the baseline, inside every bar
		px := s.img.At(int(b.CenterX()), int(b.Y+b.Height)-2)
		if !sameColor(px, Palette[b.Index]) {
			t.Fatalf("bar %d pixel %v want %v", b.Index, px, Palette[b.Index])
		}
	}
	// padding corner stays cleared
	if _, _, _, a := s.img.At(2, 2).RGBA(); a != 0 {
		t.Fatalf("padding should be transparent, alpha=%d", a)
	}
}

func TestRender_RepaintClearsPreviousBars(t *testing.T) {
	host := newFakeHost()
	s := host.add("c", 400, 200, 0, 0)
	r := NewRenderer(host)
	r.Render("c", gpt5)
	// the Score bar is full height; after rendering a dataset where Score is tiny its top
	// must be cleared
	r.Render("c", Dataset{Score: 1, Accuracy: 100})
	st, _ := r.Registry().Get("c")
	top := st.Bars[0]
	if _, _, _, a := s.img.At(int(top.CenterX()), 40).RGBA(); a != 0 {
		t.Fatalf("stale pixels left from previous render")
	}
}

func TestRender_SameInputSameGeometry(t *testing.T) {
	host := newFakeHost()
	host.add("gpt5Chart", 400, 200, 0, 0)
	r := NewRenderer(host)
	r.Render("gpt5Chart", gpt5)
	first, _ := r.Registry().Get("gpt5Chart")
	r.Render("gpt5Chart", gpt5)
	second, _ := r.Registry().Get("gpt5Chart")
	if !reflect.DeepEqual(first.Bars, second.Bars) {
		t.Fatalf("geometry changed between identical renders")
	}
	if first == second {
		t.Fatalf("render should publish a new state, not mutate the old one")
	}
	if r.Registry().Len() != 1 {
		t.Fatalf("expected one chart state, got %d", r.Registry().Len())
	}
}

func TestRender_AllZeroDataset(t *testing.T) {
	host := newFakeHost()
	host.add("z", 400, 200, 0, 0)
	r := NewRenderer(host)
	r.Render("z", Dataset{})
	st, ok := r.Registry().Get("z")
	if !ok {
		t.Fatalf("all-zero dataset should still publish state")
	}
	for _, b := range st.Bars {
		if b.Height != 0 {
			t.Fatalf("bar %d height %v want 0", b.Index, b.Height)
		}
	}
}

func TestRender_MissingSurfaceLogsAndSkips(t *testing.T) {
	var buf bytes.Buffer
	logging.SetOutput(&buf)
	defer logging.SetOutput(os.Stderr)

	host := newFakeHost()
	r := NewRenderer(host)
	r.Render("nope", gpt5)

	if _, ok := r.Registry().Get("nope"); ok {
		t.Fatalf("missing surface must not create state")
	}
	if host.created != 0 {
		t.Fatalf("missing surface must not create a tooltip")
	}
	if !strings.Contains(buf.String(), "surface not found: nope") {
		t.Fatalf("expected missing-surface log, got %q", buf.String())
	}
}

func TestFormatValue(t *testing.T) {
	cases := map[float64]string{90: "90", 0: "0", 0.5: "0.5", 12.25: "12.25"}
	for in, want := range cases {
		if got := FormatValue(in); got != want {
			t.Errorf("FormatValue(%v) = %q want %q", in, got, want)
		}
	}
}
