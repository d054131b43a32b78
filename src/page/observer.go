package page

import (
	"errors"

	"github.com/iafilius/EvalReportCharts/src/logging"
)

// Margin grows (positive) or shrinks (negative) the viewport before intersecting.
type Margin struct {
	Top, Right, Bottom, Left float64
}

func (m Margin) apply(r Rect) Rect {
	return Rect{
		X: r.X - m.Left,
		Y: r.Y - m.Top,
		W: r.W + m.Left + m.Right,
		H: r.H + m.Top + m.Bottom,
	}
}

// Observer reports elements entering the viewport. An element counts as entered when the
// visible share of its box reaches Threshold.
type Observer struct {
	Threshold float64
	Margin    Margin

	targets []*Element
	onEnter func(o *Observer, e *Element)
}

func NewObserver(threshold float64, margin Margin, onEnter func(o *Observer, e *Element)) *Observer {
	return &Observer{Threshold: threshold, Margin: margin, onEnter: onEnter}
}

func (o *Observer) Observe(e *Element) { o.targets = append(o.targets, e) }

func (o *Observer) Unobserve(e *Element) {
	for i, t := range o.targets {
		if t == e {
			o.targets = append(o.targets[:i], o.targets[i+1:]...)
			return
		}
	}
}

// Observed returns the number of elements still watched.
func (o *Observer) Observed() int { return len(o.targets) }

// Check evaluates every watched element against viewport. Callbacks may unobserve.
func (o *Observer) Check(viewport Rect) {
	root := o.Margin.apply(viewport)
	pending := append([]*Element(nil), o.targets...)
	for _, e := range pending {
		if visibleRatio(e.Rect, root) >= o.Threshold && intersects(e.Rect, root) {
			o.onEnter(o, e)
		}
	}
}

func intersects(r, root Rect) bool {
	i := r.Intersect(root)
	if r.Area() == 0 {
		return r.X >= root.X && r.X <= root.X+root.W && r.Y >= root.Y && r.Y <= root.Y+root.H
	}
	return i.Area() > 0
}

func visibleRatio(r, root Rect) float64 {
	a := r.Area()
	if a == 0 {
		if intersects(r, root) {
			return 1
		}
		return 0
	}
	return r.Intersect(root).Area() / a
}

// NewScrollReveal adds "fade-in-up" to every .section and .box element once it scrolls into
// view. Elements stay observed; adding the class again is harmless.
func NewScrollReveal(doc *Document) *Observer {
	o := NewObserver(0.1, Margin{Bottom: -50}, func(_ *Observer, e *Element) {
		e.AddClass("fade-in-up")
	})
	for _, e := range doc.ElementsByClass("section") {
		o.Observe(e)
	}
	for _, e := range doc.ElementsByClass("box") {
		if !e.HasClass("section") {
			o.Observe(e)
		}
	}
	return o
}

// ImageLoader fetches an image before it is swapped in.
type ImageLoader func(src string) error

// NewLazyImages swaps data-src into src for .lazy-image elements near the viewport.
// Each image is loaded once and then unobserved.
func NewLazyImages(doc *Document, load ImageLoader) *Observer {
	o := NewObserver(0.1, Margin{Top: 50, Bottom: 50}, func(o *Observer, e *Element) {
		o.Unobserve(e)
		loadLazyImage(e, load)
	})
	for _, e := range doc.ElementsByClass("lazy-image") {
		o.Observe(e)
	}
	return o
}

// LoadAllImages loads every .lazy-image at once, for hosts that cannot observe visibility.
func LoadAllImages(doc *Document, load ImageLoader) {
	for _, e := range doc.ElementsByClass("lazy-image") {
		loadLazyImage(e, load)
	}
}

func loadLazyImage(e *Element, load ImageLoader) {
	src, ok := e.Attr("data-src")
	if !ok {
		return
	}
	e.AddClass("loading")
	if load != nil {
		if err := load(src); err != nil {
			logging.Warnf("page: image %s: %v", src, err)
			return
		}
	}
	e.SetAttr("src", src)
	e.RemoveClass("loading")
	e.AddClass("loaded")
	e.RemoveAttr("data-src")
}

// ErrAlreadyMounted is returned by LazyMount.Mount after the first successful mount.
var ErrAlreadyMounted = errors.New("already mounted")

// LazyMount mounts an expensive view (the global leaderboard chart) the first time its
// container becomes visible, then hides the loading indicator.
type LazyMount struct {
	doc       *Document
	container *Element
	loadingID string
	mount     func() error
	mounted   bool
	observer  *Observer
}

func NewLazyMount(doc *Document, container *Element, loadingID string, mount func() error) *LazyMount {
	lm := &LazyMount{doc: doc, container: container, loadingID: loadingID, mount: mount}
	lm.observer = NewObserver(0.1, Margin{}, func(o *Observer, e *Element) {
		o.Unobserve(e)
		if err := lm.Mount(); err != nil {
			logging.Errorf("page: mount %s: %v", e.ID, err)
		}
	})
	lm.observer.Observe(container)
	return lm
}

// Check mounts when the container is visible in viewport.
func (lm *LazyMount) Check(viewport Rect) { lm.observer.Check(viewport) }

func (lm *LazyMount) Mounted() bool { return lm.mounted }

// Mount runs the mount function once.
func (lm *LazyMount) Mount() error {
	if lm.mounted {
		return ErrAlreadyMounted
	}
	if err := lm.mount(); err != nil {
		return err
	}
	lm.mounted = true
	if el, ok := lm.doc.Element(lm.loadingID); ok {
		el.SetVisible(false)
	}
	return nil
}
