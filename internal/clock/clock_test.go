// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package clock

import (
	"math"
	"testing"
	"time"
)

const epsilon = 1e-3

func at(h, m, s int) time.Time {
	return time.Date(2026, 1, 18, h, m, s, 0, time.UTC)
}

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < epsilon
}

func TestAngles(t *testing.T) {
	tests := []struct {
		name string
		time time.Time
		want Hands
	}{
		{"midnight", at(0, 0, 0), Hands{0, 0, 0}},
		{"three o'clock", at(3, 0, 0), Hands{90, 0, 0}},
		{"half past midnight with seconds", at(0, 30, 30), Hands{15, 183, 180}},
		{"quarter past twelve", at(12, 15, 45), Hands{7.5, 94.5, 270}},
		{"afternoon wraps to twelve hour dial", at(15, 0, 0), Hands{90, 0, 0}},
		{"one second before midnight", at(23, 59, 59), Hands{359.5, 359.9, 354}},
		{"six thirty", at(18, 30, 0), Hands{195, 180, 0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Angles(tc.time)
			if math.Abs(got.Hour-tc.want.Hour) > epsilon {
				t.Errorf("hour: expected %f, got %f", tc.want.Hour, got.Hour)
			}
			if math.Abs(got.Minute-tc.want.Minute) > epsilon {
				t.Errorf("minute: expected %f, got %f", tc.want.Minute, got.Minute)
			}
			if math.Abs(got.Second-tc.want.Second) > epsilon {
				t.Errorf("second: expected %f, got %f", tc.want.Second, got.Second)
			}
		})
	}
	t.Run("sub-second precision is ignored", func(t *testing.T) {
		a := Angles(at(3, 0, 0).Add(999 * time.Millisecond))
		if a.Second != 0 {
			t.Errorf("expected second hand at 0, got %f", a.Second)
		}
	})
}

func TestClock_Frame(t *testing.T) {
	t.Run("logical size frame at three o'clock", func(t *testing.T) {
		c := &Clock{}
		c.Tick(at(3, 0, 0))
		f := c.Frame(LogicalSize, LogicalSize)

		if !near(f.Scale, 1) {
			t.Fatalf("expected scale 1, got %f", f.Scale)
		}
		if f.Face.CX != 150 || f.Face.CY != 150 || f.Face.R != faceRadius {
			t.Errorf("unexpected face disc: %+v", f.Face)
		}
		if f.Face.Color != FaceColor {
			t.Errorf("unexpected face color: %v", f.Face.Color)
		}

		hour := f.Hands[0]
		if !near(hour.X0, 150) || !near(hour.Y0, 150) {
			t.Errorf("expected hour hand to start at center, got (%f,%f)", hour.X0, hour.Y0)
		}
		if !near(hour.X1, 150+hourLength) || !near(hour.Y1, 150) {
			t.Errorf("expected hour hand to point right, got (%f,%f)", hour.X1, hour.Y1)
		}
		if hour.Color != HourColor || hour.Width != hourWidth {
			t.Errorf("unexpected hour hand style: %+v", hour)
		}

		minute := f.Hands[1]
		if !near(minute.X1, 150) || !near(minute.Y1, 150-minuteLength) {
			t.Errorf("expected minute hand to point up, got (%f,%f)", minute.X1, minute.Y1)
		}

		second := f.Hands[2]
		if !near(second.Y0, 150+secondOverhang) || !near(second.Y1, 150-secondLength) {
			t.Errorf("expected second hand to overhang the center, got (%f,%f)-(%f,%f)",
				second.X0, second.Y0, second.X1, second.Y1)
		}
		if second.Color != SecondColor {
			t.Errorf("unexpected second hand color: %v", second.Color)
		}
	})
	t.Run("tick marks are evenly spaced on the rim", func(t *testing.T) {
		c := &Clock{}
		f := c.Frame(LogicalSize, LogicalSize)
		for i, tick := range f.Ticks {
			inner := math.Hypot(float64(tick.X0-150), float64(tick.Y0-150))
			outer := math.Hypot(float64(tick.X1-150), float64(tick.Y1-150))
			if math.Abs(inner-tickInner) > epsilon || math.Abs(outer-tickOuter) > epsilon {
				t.Errorf("tick %d: expected radii %d..%d, got %f..%f", i, tickInner, tickOuter, inner, outer)
			}
		}
		if !near(f.Ticks[3].X1, 150+tickOuter) || !near(f.Ticks[3].Y1, 150) {
			t.Errorf("expected tick 3 at three o'clock, got (%f,%f)", f.Ticks[3].X1, f.Ticks[3].Y1)
		}
	})
	t.Run("frame scales to the smaller side and stays centered", func(t *testing.T) {
		c := &Clock{}
		f := c.Frame(600, 300)
		if !near(f.Scale, 1) {
			t.Errorf("expected scale 1, got %f", f.Scale)
		}
		if f.Face.CX != 300 || f.Face.CY != 150 {
			t.Errorf("expected centered face, got (%f,%f)", f.Face.CX, f.Face.CY)
		}

		f = c.Frame(600, 600)
		if !near(f.Scale, 2) || !near(f.Face.R, 2*faceRadius) {
			t.Errorf("expected scale 2 and radius %d, got %f and %f", 2*faceRadius, f.Scale, f.Face.R)
		}
		if !near(f.Hands[0].Width, 2*hourWidth) {
			t.Errorf("expected scaled hour hand width, got %f", f.Hands[0].Width)
		}
	})
	t.Run("all hands come from the same sample", func(t *testing.T) {
		c := &Clock{}
		sample := at(9, 41, 7)
		c.Tick(sample)
		want := Angles(sample)
		f := c.Frame(LogicalSize, LogicalSize)
		for i, angle := range []float64{want.Hour, want.Minute, want.Second} {
			x, y := polar(f.Face.CX, f.Face.CY, 1, angle)
			dx, dy := f.Hands[i].X1-f.Face.CX, f.Hands[i].Y1-f.Face.CY
			// the hand tip lies on the ray of its angle
			if !near(dx*(y-f.Face.CY), dy*(x-f.Face.CX)) || dx*(x-f.Face.CX)+dy*(y-f.Face.CY) <= 0 {
				t.Errorf("hand %d does not point at %f degrees", i, angle)
			}
		}
	})
}
