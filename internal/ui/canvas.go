// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/wneessen/smart-dashboard/internal/widget"
)

// face is the bitmap face all dashboard text is drawn with.
var face = text.NewGoXFace(basicfont.Face7x13)

// canvas paints the matrix rain onto a persistent offscreen image.
type canvas struct {
	img *ebiten.Image
}

func (c *canvas) Fade(clr color.RGBA) {
	b := c.img.Bounds()
	vector.DrawFilledRect(c.img, 0, 0, float32(b.Dx()), float32(b.Dy()), clr, false)
}

// Glyph draws r with its baseline at y.
func (c *canvas) Glyph(x, y int, r rune, clr color.RGBA) {
	drawString(c.img, string(r), x, y, clr)
}

// drawString draws s with its baseline at y. text/v2 positions a line by its top edge.
func drawString(dst *ebiten.Image, s string, x, y int, clr color.RGBA) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y-widget.GlyphAscent))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, face, op)
}
