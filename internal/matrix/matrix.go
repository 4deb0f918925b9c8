// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package matrix implements the falling characters background effect.
package matrix

import (
	"image/color"
	"math/rand/v2"
)

const (
	// DefaultCellSize is the glyph cell size in pixels.
	DefaultCellSize = 12

	// fallbackWidth is used for the initial column layout until the first resize.
	fallbackWidth = 400
	// maxStartRow bounds the random starting row of a column.
	maxStartRow = 20
	// resetThreshold is the value a random draw must exceed for a column that left the
	// visible area to restart at the top.
	resetThreshold = 0.975

	firstGlyph = 33
	lastGlyph  = 126
)

var (
	// FadeColor is painted over the whole canvas on each tick so older glyphs trail off.
	FadeColor = color.RGBA{A: 200}
	// GlyphColor is the color of freshly drawn glyphs.
	GlyphColor = color.RGBA{G: 255, A: 255}
)

// Canvas is the drawing surface the rain is painted on. It must keep its content
// between ticks.
type Canvas interface {
	Fade(c color.RGBA)
	Glyph(x, y int, r rune, c color.RGBA)
}

// Rain holds the per-column scroll cursors of the effect.
type Rain struct {
	cellSize int
	height   int
	columns  []int
	active   bool
	rng      *rand.Rand
}

// New returns an active Rain laid out for a default width. A nil rng uses a randomly
// seeded source.
func New(cellSize int, rng *rand.Rand) *Rain {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	r := &Rain{cellSize: cellSize, active: true, rng: rng}
	r.Resize(fallbackWidth, 0)
	return r
}

// Resize lays out one column per cell of width and restarts every column at a random
// row near the top.
func (r *Rain) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	r.height = height
	r.columns = make([]int, width/r.cellSize)
	for i := range r.columns {
		r.columns[i] = r.rng.IntN(maxStartRow + 1)
	}
}

// Tick paints one frame and advances every column. It does nothing while inactive, which
// leaves the last frame on the canvas.
func (r *Rain) Tick(c Canvas) {
	if !r.active {
		return
	}
	c.Fade(FadeColor)
	for i, row := range r.columns {
		glyph := rune(firstGlyph + r.rng.IntN(lastGlyph-firstGlyph+1))
		c.Glyph(i*r.cellSize, row*r.cellSize, glyph, GlyphColor)
		r.columns[i] = r.advance(row)
	}
}

func (r *Rain) advance(row int) int {
	if row*r.cellSize > r.height && r.rng.Float64() > resetThreshold {
		return 0
	}
	return row + 1
}

// Toggle flips the active flag and returns the new value.
func (r *Rain) Toggle() bool {
	r.active = !r.active
	return r.active
}

// SetActive sets the active flag.
func (r *Rain) SetActive(active bool) {
	r.active = active
}

// Active reports whether the effect is running.
func (r *Rain) Active() bool {
	return r.active
}

// Columns returns a copy of the current column rows.
func (r *Rain) Columns() []int {
	out := make([]int, len(r.columns))
	copy(out, r.columns)
	return out
}
