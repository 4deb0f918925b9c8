// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package widget

import "testing"

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 100, H: 50}
	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"top left corner", 10, 20, true},
		{"inside", 60, 45, true},
		{"right edge is exclusive", 110, 45, false},
		{"bottom edge is exclusive", 60, 70, false},
		{"left of rect", 9, 45, false},
		{"above rect", 60, 19, false},
		{"last pixel", 109, 69, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.want {
				t.Errorf("expected %t, got %t", tc.want, got)
			}
		})
	}
}

func TestRect_Inset(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 100, H: 10}
	got := r.Inset(4)
	if got != (Rect{X: 4, Y: 4, W: 92, H: 2}) {
		t.Errorf("unexpected inset rect: %+v", got)
	}
	if got = r.Inset(20); got.W < 0 || got.H != 0 {
		t.Errorf("expected non-negative size, got %+v", got)
	}
}

func TestTextMetrics(t *testing.T) {
	tests := []struct {
		text   string
		width  int
		height int
	}{
		{"", 0, GlyphHeight},
		{"72.5°F", 6 * GlyphWidth, GlyphHeight},
		{"Voice Assistant\n(Coming Soon)", 15 * GlyphWidth, LineHeight + GlyphHeight},
	}
	for _, tc := range tests {
		if got := TextWidth(tc.text); got != tc.width {
			t.Errorf("%q: expected width %d, got %d", tc.text, tc.width, got)
		}
		if got := TextHeight(tc.text); got != tc.height {
			t.Errorf("%q: expected height %d, got %d", tc.text, tc.height, got)
		}
	}
}

func TestCenterText(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 140, H: 100}
	lines := CenterText(r, "Matrix ON")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].X != (140-9*GlyphWidth)/2 {
		t.Errorf("unexpected x: %d", lines[0].X)
	}
	if lines[0].Y != (100-GlyphHeight)/2+GlyphAscent {
		t.Errorf("unexpected baseline: %d", lines[0].Y)
	}

	lines = CenterText(r, "a\nbbb")
	if len(lines) != 2 || lines[1].Y-lines[0].Y != LineHeight {
		t.Errorf("expected two lines one line height apart, got %+v", lines)
	}
	if lines[0].X <= lines[1].X {
		t.Errorf("expected shorter line to be indented further, got %+v", lines)
	}
}

func TestCenterText_clipsWideLines(t *testing.T) {
	// 140 pixels fit 20 glyphs
	r := Rect{X: 864, Y: 10, W: 140, H: 40}
	tests := []struct {
		name string
		text string
		want string
	}{
		{"short summary is kept", "72.5°F", "72.5°F"},
		{"exact fit is kept", "12345678901234567890", "12345678901234567890"},
		{"long summary is cut", "72.5°F Patchy rain nearby", "72.5°F Patchy rai..."},
		{"each line is cut", "ok\nLlanfairpwllgwyngyllgogerychwyrndrobwll", "Llanfairpwllgwyng..."},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lines := CenterText(r, tc.text)
			last := lines[len(lines)-1]
			if last.Text != tc.want {
				t.Errorf("expected %q, got %q", tc.want, last.Text)
			}
			for _, line := range lines {
				if line.X < r.X || line.X+TextWidth(line.Text) > r.X+r.W {
					t.Errorf("line %q at x=%d leaves the rect %+v", line.Text, line.X, r)
				}
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("Partly cloudy", 10); got != "Partly ..." {
		t.Errorf("expected %q, got %q", "Partly ...", got)
	}
	if got := Truncate("Sunny", 10); got != "Sunny" {
		t.Errorf("expected %q, got %q", "Sunny", got)
	}
	if got := Truncate("Sunny", 2); got != "Su" {
		t.Errorf("expected no ellipsis without room for it, got %q", got)
	}
	if got := Truncate("Sunny", -1); got != "" {
		t.Errorf("expected empty string for negative width, got %q", got)
	}
}
