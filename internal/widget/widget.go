// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package widget provides the layout primitives of the dashboard screens.
package widget

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	// GlyphWidth and GlyphHeight are the cell metrics of the 7x13 bitmap face.
	GlyphWidth  = 7
	GlyphHeight = 13
	// GlyphAscent is the distance from the top of a line to its baseline.
	GlyphAscent = 11
	// LineHeight is the distance between two baselines.
	LineHeight = 16

	ellipsis = "..."
)

// cells measures text as the bitmap face renders it, with ambiguous runes one cell wide.
var cells = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// Rect is an axis aligned rectangle in screen pixels.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the point is inside r. The right and bottom edges are exclusive.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Inset returns r shrunk by n pixels on every side.
func (r Rect) Inset(n int) Rect {
	out := Rect{X: r.X + n, Y: r.Y + n, W: r.W - 2*n, H: r.H - 2*n}
	out.W, out.H = max(out.W, 0), max(out.H, 0)
	return out
}

// TextWidth returns the pixel width of the widest line of s.
func TextWidth(s string) int {
	width := 0
	for _, line := range strings.Split(s, "\n") {
		width = max(width, cells.StringWidth(line))
	}
	return width * GlyphWidth
}

// TextHeight returns the pixel height of s.
func TextHeight(s string) int {
	lines := strings.Count(s, "\n") + 1
	return (lines-1)*LineHeight + GlyphHeight
}

// Line is one line of text placed at its baseline.
type Line struct {
	Text string
	X, Y int
}

// CenterText places every line of s horizontally centered in r, with the block
// vertically centered. Y is the baseline of each line. Lines wider than r are
// truncated to fit.
func CenterText(r Rect, s string) []Line {
	parts := strings.Split(s, "\n")
	top := r.Y + (r.H-TextHeight(s))/2
	lines := make([]Line, 0, len(parts))
	for i, part := range parts {
		part = Truncate(part, r.W/GlyphWidth)
		lines = append(lines, Line{
			Text: part,
			X:    r.X + (r.W-TextWidth(part))/2,
			Y:    top + i*LineHeight + GlyphAscent,
		})
	}
	return lines
}

// Truncate shortens s to at most width cells, marking the cut with "..." when
// there is room for it.
func Truncate(s string, width int) string {
	if width < cells.StringWidth(ellipsis) {
		return cells.Truncate(s, max(width, 0), "")
	}
	return cells.Truncate(s, width, ellipsis)
}
