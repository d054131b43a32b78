package uihelpers

// ComputeSurfaceSize derives a chart surface size from the window width so the per-finding
// charts share the row. Surfaces keep a 2:1 aspect and are clamped to readable bounds.
// perRow is the number of charts placed side by side (at least 1).
func ComputeSurfaceSize(winW float32, perRow int) (int, int) {
	if perRow < 1 {
		perRow = 1
	}
	// leave room for the scrollbar and inter-chart padding
	w := int((winW-24)/float32(perRow)) - 16
	if w < 240 {
		w = 240
	}
	if w > 640 {
		w = 640
	}
	h := w / 2
	if h < 160 {
		h = 160
	}
	return w, h
}

// ComputeChartsPerRow returns how many chart surfaces fit side by side.
// Order of breakpoints: narrow windows stack charts, wide ones show a full finding per row.
func ComputeChartsPerRow(winW float32) int {
	const compactBreakpoint = 900
	const ultraCompactBreakpoint = 560
	switch {
	case winW < ultraCompactBreakpoint:
		return 1
	case winW < compactBreakpoint:
		return 2
	}
	return 3
}

// ContainRect computes where an imgW×imgH image lands inside a viewW×viewH box when scaled to
// fit while keeping aspect (contain). It returns the drawn origin and the scale factor.
func ContainRect(imgW, imgH, viewW, viewH float32) (drawX, drawY, scale float32) {
	if imgW <= 0 || imgH <= 0 || viewW <= 0 || viewH <= 0 {
		return 0, 0, 1
	}
	sx := viewW / imgW
	sy := viewH / imgH
	scale = sx
	if sy < sx {
		scale = sy
	}
	drawX = (viewW - imgW*scale) / 2
	drawY = (viewH - imgH*scale) / 2
	return drawX, drawY, scale
}

// ViewToImage maps a point inside the view to image pixel coordinates under contain scaling.
func ViewToImage(x, y, imgW, imgH, viewW, viewH float32) (float32, float32) {
	dx, dy, s := ContainRect(imgW, imgH, viewW, viewH)
	return (x - dx) / s, (y - dy) / s
}
