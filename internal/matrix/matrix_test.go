// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package matrix

import (
	"image/color"
	"math/rand/v2"
	"slices"
	"testing"
)

type glyph struct {
	x, y int
	r    rune
}

type testCanvas struct {
	fades  int
	glyphs []glyph
}

func (c *testCanvas) Fade(color.RGBA) { c.fades++ }

func (c *testCanvas) Glyph(x, y int, r rune, _ color.RGBA) {
	c.glyphs = append(c.glyphs, glyph{x, y, r})
}

func testRain(width, height int) *Rain {
	r := New(12, rand.New(rand.NewPCG(1, 2)))
	r.Resize(width, height)
	return r
}

func TestNew(t *testing.T) {
	t.Run("new rain is active with default layout", func(t *testing.T) {
		r := New(12, nil)
		if !r.Active() {
			t.Error("expected rain to be active")
		}
		if len(r.Columns()) != fallbackWidth/12 {
			t.Errorf("expected %d columns, got %d", fallbackWidth/12, len(r.Columns()))
		}
	})
	t.Run("invalid cell size falls back to the default", func(t *testing.T) {
		if r := New(0, nil); r.cellSize != DefaultCellSize {
			t.Errorf("expected cell size %d, got %d", DefaultCellSize, r.cellSize)
		}
	})
}

func TestRain_Resize(t *testing.T) {
	tests := []struct {
		width, height int
		want          int
	}{
		{1920, 1080, 160},
		{1000, 600, 83},
		{11, 600, 0},
		{-5, -5, 0},
	}
	for _, tc := range tests {
		r := testRain(tc.width, tc.height)
		cols := r.Columns()
		if len(cols) != tc.want {
			t.Errorf("width %d: expected %d columns, got %d", tc.width, tc.want, len(cols))
		}
		for i, row := range cols {
			if row < 0 || row > maxStartRow {
				t.Errorf("column %d: expected start row in [0, %d], got %d", i, maxStartRow, row)
			}
		}
	}
}

func TestRain_Tick(t *testing.T) {
	t.Run("each tick paints one glyph per column at its cursor", func(t *testing.T) {
		r := testRain(120, 240)
		before := r.Columns()
		c := &testCanvas{}
		r.Tick(c)

		if c.fades != 1 {
			t.Errorf("expected one fade per tick, got %d", c.fades)
		}
		if len(c.glyphs) != len(before) {
			t.Fatalf("expected %d glyphs, got %d", len(before), len(c.glyphs))
		}
		for i, g := range c.glyphs {
			if g.x != i*12 || g.y != before[i]*12 {
				t.Errorf("column %d: expected glyph at (%d,%d), got (%d,%d)", i, i*12, before[i]*12, g.x, g.y)
			}
			if g.r < firstGlyph || g.r > lastGlyph {
				t.Errorf("column %d: glyph %q is not printable ASCII", i, g.r)
			}
		}
		for i, row := range r.Columns() {
			if row != before[i]+1 {
				t.Errorf("column %d: expected row %d, got %d", i, before[i]+1, row)
			}
		}
	})
	t.Run("columns stay non-negative and only reset below the visible area", func(t *testing.T) {
		const height = 120
		r := testRain(240, height)
		c := &testCanvas{}
		resets := 0
		for n := 0; n < 5000; n++ {
			before := r.Columns()
			r.Tick(c)
			for i, row := range r.Columns() {
				if row < 0 {
					t.Fatalf("tick %d column %d: negative row %d", n, i, row)
				}
				if row == before[i]+1 {
					continue
				}
				if row != 0 {
					t.Fatalf("tick %d column %d: row jumped from %d to %d", n, i, before[i], row)
				}
				if before[i]*12 <= height {
					t.Fatalf("tick %d column %d: reset at row %d which is still visible", n, i, before[i])
				}
				resets++
			}
			c.glyphs = c.glyphs[:0]
		}
		if resets == 0 {
			t.Error("expected columns to reset eventually")
		}
	})
	t.Run("column starting at row 0 never goes negative", func(t *testing.T) {
		r := testRain(12, 60)
		r.columns[0] = 0
		c := &testCanvas{}
		for n := 0; n < 1000; n++ {
			r.Tick(c)
			if r.columns[0] < 0 {
				t.Fatalf("tick %d: negative row %d", n, r.columns[0])
			}
		}
	})
}

func TestRain_Toggle(t *testing.T) {
	t.Run("inactive rain does not paint or advance", func(t *testing.T) {
		r := testRain(120, 240)
		if r.Toggle() {
			t.Fatal("expected toggle to deactivate the rain")
		}
		before := r.Columns()
		c := &testCanvas{}
		r.Tick(c)
		if c.fades != 0 || len(c.glyphs) != 0 {
			t.Errorf("expected no painting while inactive, got %d fades and %d glyphs", c.fades, len(c.glyphs))
		}
		if !slices.Equal(before, r.Columns()) {
			t.Error("expected columns to be unchanged while inactive")
		}
	})
	t.Run("toggling twice restores the flag and resumes from the prior state", func(t *testing.T) {
		r := testRain(120, 240)
		c := &testCanvas{}
		r.Tick(c)
		r.Tick(c)
		before := r.Columns()
		initial := r.Active()

		r.Toggle()
		r.Tick(c)
		r.Toggle()
		if r.Active() != initial {
			t.Fatalf("expected active to be %t, got %t", initial, r.Active())
		}
		if !slices.Equal(before, r.Columns()) {
			t.Fatal("expected columns to be preserved across toggles")
		}
		r.Tick(c)
		for i, row := range r.Columns() {
			if row != before[i]+1 {
				t.Errorf("column %d: expected row %d, got %d", i, before[i]+1, row)
			}
		}
	})
	t.Run("set active", func(t *testing.T) {
		r := testRain(120, 240)
		r.SetActive(false)
		if r.Active() {
			t.Error("expected rain to be inactive")
		}
	})
}
