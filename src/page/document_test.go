package page

import (
	"testing"

	"github.com/iafilius/EvalReportCharts/src/chart"
)

var _ chart.Host = (*Document)(nil)
var _ chart.Surface = (*Canvas)(nil)
var _ chart.Tooltip = (*Element)(nil)

func TestDocument_SurfaceLookup(t *testing.T) {
	doc := NewDocument()
	doc.AddSurface("gpt5Chart", 400, 200, 10, 20)
	s, ok := doc.Surface("gpt5Chart")
	if !ok {
		t.Fatalf("surface not found")
	}
	if w, h := s.Size(); w != 400 || h != 200 {
		t.Fatalf("size %dx%d", w, h)
	}
	if x, y := s.Origin(); x != 10 || y != 20 {
		t.Fatalf("origin %v,%v", x, y)
	}
	if s, ok := doc.Surface("missing"); ok || s != nil {
		t.Fatalf("missing surface should be (nil, false), got %v", s)
	}
}

func TestDocument_DispatchAndRenderWiring(t *testing.T) {
	doc := NewDocument()
	doc.AddSurface("gpt5Chart", 400, 200, 0, 0)
	r := chart.NewRenderer(doc)
	r.Render("gpt5Chart", chart.Dataset{Score: 90, Accuracy: 60, Fluency: 20, Appropriateness: 10})
	r.Render("gpt5Chart", chart.Dataset{Score: 90, Accuracy: 60, Fluency: 20, Appropriateness: 10})

	if n := doc.ListenerCount("gpt5Chart", chart.EventPointerMove); n != 1 {
		t.Fatalf("move listeners = %d want 1", n)
	}
	st, _ := r.Registry().Get("gpt5Chart")
	b := st.Bars[2]
	ran := doc.Dispatch("gpt5Chart", chart.EventPointerMove, chart.PointerEvent{ClientX: b.CenterX(), ClientY: b.Y + 1})
	if ran != 1 {
		t.Fatalf("dispatch ran %d handlers want 1", ran)
	}
	tip, ok := doc.Element(chart.TooltipName("gpt5Chart"))
	if !ok {
		t.Fatalf("tooltip element not attached")
	}
	if !tip.Visible() || tip.Text != "Flu" || tip.ShowCount() != 1 {
		t.Fatalf("tooltip visible=%v text=%q shows=%d", tip.Visible(), tip.Text, tip.ShowCount())
	}
	c, _ := doc.Canvas("gpt5Chart")
	if c.Cursor() != chart.CursorPointer {
		t.Fatalf("cursor %v want pointer", c.Cursor())
	}
	doc.Dispatch("gpt5Chart", chart.EventPointerLeave, chart.PointerEvent{})
	if tip.Visible() || c.Cursor() != chart.CursorDefault {
		t.Fatalf("leave did not reset")
	}
	if n := doc.Dispatch("nope", chart.EventPointerMove, chart.PointerEvent{}); n != 0 {
		t.Fatalf("dispatch to unknown surface ran %d handlers", n)
	}
}

func TestDocument_ResizeKeepsListeners(t *testing.T) {
	doc := NewDocument()
	doc.AddSurface("c", 400, 200, 0, 0)
	r := chart.NewRenderer(doc)
	r.Render("c", chart.Dataset{Score: 1})
	if !doc.ResizeSurface("c", 800, 300) {
		t.Fatalf("resize failed")
	}
	r.Render("c", chart.Dataset{Score: 1})
	if n := doc.ListenerCount("c", chart.EventPointerMove); n != 1 {
		t.Fatalf("listeners after resize = %d", n)
	}
	st, _ := r.Registry().Get("c")
	if st.Bars[0].Height != 300-2*chart.DefaultPadding {
		t.Fatalf("geometry not recomputed for new size: %+v", st.Bars[0])
	}
	if doc.ResizeSurface("missing", 1, 1) {
		t.Fatalf("resize of missing surface should fail")
	}
}

func TestDocument_CreateElementIsIdempotent(t *testing.T) {
	doc := NewDocument()
	a := doc.CreateElement("x", "box")
	b := doc.CreateElement("x", "section")
	if a != b {
		t.Fatalf("second create returned a different element")
	}
	if b.HasClass("section") {
		t.Fatalf("existing element should be returned untouched")
	}
	doc.CreateElement("y", "box")
	boxes := doc.ElementsByClass("box")
	if len(boxes) != 2 || boxes[0].ID != "x" || boxes[1].ID != "y" {
		t.Fatalf("elements by class out of creation order: %v", boxes)
	}
}

func TestScrollToAnchor(t *testing.T) {
	doc := NewDocument()
	e := doc.CreateElement("findings", "section")
	e.Rect = Rect{Y: 1200, W: 800, H: 400}
	if !doc.ScrollToAnchor("#findings") || doc.ScrollY() != 1200 {
		t.Fatalf("scroll to #findings: y=%v", doc.ScrollY())
	}
	for _, href := range []string{"#missing", "findings", "#", "https://example.com/#findings"} {
		if doc.ScrollToAnchor(href) {
			t.Fatalf("href %q should be ignored", href)
		}
	}
	if doc.ScrollY() != 1200 {
		t.Fatalf("ignored anchors moved scroll to %v", doc.ScrollY())
	}
}
