package chart

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var labelFace font.Face = basicfont.Face7x13

// drawCenteredText draws text horizontally centred on cx with its baseline at y.
func drawCenteredText(dst draw.Image, text string, cx, y float64, col color.Color) {
	if dst == nil || text == "" {
		return
	}
	dr := &font.Drawer{Dst: dst, Src: image.NewUniform(col), Face: labelFace}
	tw := dr.MeasureString(text)
	x := fixed.Int26_6(cx*64) - tw/2
	dr.Dot = fixed.Point26_6{X: x, Y: fixed.Int26_6(y * 64)}
	dr.DrawString(text)
}
