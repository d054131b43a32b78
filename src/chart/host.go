package chart

import "image/draw"

// Cursor is the pointer style shown over a surface.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorPointer
)

func (c Cursor) String() string {
	if c == CursorPointer {
		return "pointer"
	}
	return "default"
}

// EventType names a pointer event delivered to a surface.
type EventType string

const (
	EventPointerMove  EventType = "mousemove"
	EventPointerLeave EventType = "mouseleave"
)

// PointerEvent carries the pointer position in client (page) coordinates.
type PointerEvent struct {
	ClientX, ClientY float64
}

// Listener handles one pointer event.
type Listener func(PointerEvent)

// Surface is a drawable rectangle addressed by an id.
type Surface interface {
	ID() string
	Size() (w, h int)
	// Origin is the surface's top-left corner in client coordinates.
	Origin() (x, y float64)
	// Canvas is the 2D paint target, sized w×h.
	Canvas() draw.Image
	SetCursor(Cursor)
	AddEventListener(EventType, Listener)
}

// Tooltip is a floating text element positioned in client coordinates.
type Tooltip interface {
	Show(text string, x, y float64)
	Hide()
}

// Host is the document environment the charts live in.
type Host interface {
	Surface(id string) (Surface, bool)
	Tooltip(name string) (Tooltip, bool)
	CreateTooltip(name string) Tooltip
}

// TooltipName is the element name of a surface's tooltip.
func TooltipName(surfaceID string) string { return "chart-tooltip-" + surfaceID }
