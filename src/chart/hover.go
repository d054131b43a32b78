package chart

import "github.com/iafilius/EvalReportCharts/src/logging"

// Tooltip placement relative to the pointer, in client pixels.
const (
	TooltipOffsetX = 10
	TooltipOffsetY = -30
)

// HoverTracker shows the dimension name of the bar under the pointer. Handlers read the
// geometry published by the latest render, so re-rendering never needs to rebind them.
type HoverTracker struct {
	host Host
	reg  *Registry
}

func NewHoverTracker(host Host, reg *Registry) *HoverTracker {
	return &HoverTracker{host: host, reg: reg}
}

// Install binds the pointer handlers to s once. Later calls for the same surface are no-ops.
func (h *HoverTracker) Install(s Surface) {
	id := s.ID()
	if !h.reg.claimListeners(id) {
		logging.Debugf("chart: listeners already bound for %s", id)
		return
	}
	h.tooltip(id)
	s.AddEventListener(EventPointerMove, func(ev PointerEvent) { h.PointerMove(id, ev) })
	s.AddEventListener(EventPointerLeave, func(PointerEvent) { h.PointerLeave(id) })
	logging.Debugf("chart: listeners bound for %s", id)
}

// PointerMove hit-tests the pointer against the cached bars of surface id.
func (h *HoverTracker) PointerMove(id string, ev PointerEvent) {
	s, ok := h.host.Surface(id)
	if !ok {
		return
	}
	tip := h.tooltip(id)
	st, ok := h.reg.Get(id)
	if !ok {
		s.SetCursor(CursorDefault)
		tip.Hide()
		return
	}
	ox, oy := s.Origin()
	bar, hit := HitTest(st.Bars, ev.ClientX-ox, ev.ClientY-oy)
	if !hit {
		s.SetCursor(CursorDefault)
		tip.Hide()
		return
	}
	s.SetCursor(CursorPointer)
	tip.Show(st.Labels[bar.Index], ev.ClientX+TooltipOffsetX, ev.ClientY+TooltipOffsetY)
}

// PointerLeave resets the cursor and hides the tooltip.
func (h *HoverTracker) PointerLeave(id string) {
	s, ok := h.host.Surface(id)
	if !ok {
		return
	}
	s.SetCursor(CursorDefault)
	h.tooltip(id).Hide()
}

// tooltip returns the surface's tooltip, creating it on first use.
func (h *HoverTracker) tooltip(id string) Tooltip {
	name := TooltipName(id)
	if t, ok := h.host.Tooltip(name); ok {
		return t
	}
	logging.Debugf("chart: creating tooltip %s", name)
	return h.host.CreateTooltip(name)
}
