// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package clock computes the geometry of an analog clock face.
package clock

import (
	"image/color"
	"math"
	"time"
)

// LogicalSize is the side length of the square all geometry is defined in.
const LogicalSize = 300

const (
	faceRadius     = 140
	tickInner      = 120
	tickOuter      = 135
	tickWidth      = 3
	hourLength     = 70
	hourWidth      = 6
	minuteLength   = 100
	minuteWidth    = 4
	secondLength   = 120
	secondOverhang = 10
	secondWidth    = 2
)

var (
	FaceColor   = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}
	TickColor   = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	HourColor   = color.RGBA{R: 0x00, G: 0xaa, B: 0xff, A: 0xff}
	MinuteColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	SecondColor = color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}
)

// Hands holds the hand angles in degrees, clockwise from twelve o'clock.
type Hands struct {
	Hour   float64
	Minute float64
	Second float64
}

// Angles returns the hand angles for t. Sub-second precision is ignored.
func Angles(t time.Time) Hands {
	h, m, s := float64(t.Hour()%12), float64(t.Minute()), float64(t.Second())
	return Hands{
		Hour:   30 * (h + m/60),
		Minute: 6 * (m + s/60),
		Second: 6 * s,
	}
}

// Segment is a straight stroke in screen coordinates.
type Segment struct {
	X0, Y0, X1, Y1 float32
	Width          float32
	Color          color.RGBA
}

// Disc is a filled circle in screen coordinates.
type Disc struct {
	CX, CY, R float32
	Color     color.RGBA
}

// Frame is everything needed to paint one clock frame, in painting order: the face,
// then the tick marks, then the hour, minute and second hands.
type Frame struct {
	Face  Disc
	Ticks [12]Segment
	Hands [3]Segment
	Scale float32
}

// Clock keeps the time sample a frame is computed from.
type Clock struct {
	sample time.Time
}

// Tick stores now as the current sample.
func (c *Clock) Tick(now time.Time) {
	c.sample = now
}

// Frame computes the clock geometry for a widget of the given size. The logical square
// is centered and scaled uniformly to the smaller side.
func (c *Clock) Frame(width, height float32) Frame {
	scale := min(width, height) / LogicalSize
	if scale < 0 {
		scale = 0
	}
	cx, cy := width/2, height/2
	f := Frame{
		Face:  Disc{CX: cx, CY: cy, R: faceRadius * scale, Color: FaceColor},
		Scale: scale,
	}

	for i := range f.Ticks {
		angle := float64(i * 30)
		x0, y0 := polar(cx, cy, tickInner*scale, angle)
		x1, y1 := polar(cx, cy, tickOuter*scale, angle)
		f.Ticks[i] = Segment{X0: x0, Y0: y0, X1: x1, Y1: y1, Width: tickWidth * scale, Color: TickColor}
	}

	hands := Angles(c.sample)
	f.Hands[0] = hand(cx, cy, 0, hourLength, hourWidth, hands.Hour, scale, HourColor)
	f.Hands[1] = hand(cx, cy, 0, minuteLength, minuteWidth, hands.Minute, scale, MinuteColor)
	f.Hands[2] = hand(cx, cy, secondOverhang, secondLength, secondWidth, hands.Second, scale, SecondColor)
	return f
}

func hand(cx, cy, back, length, width float32, angle float64, scale float32, clr color.RGBA) Segment {
	x0, y0 := polar(cx, cy, -back*scale, angle)
	x1, y1 := polar(cx, cy, length*scale, angle)
	return Segment{X0: x0, Y0: y0, X1: x1, Y1: y1, Width: width * scale, Color: clr}
}

// polar returns the point at distance r from the center along angle, measured in degrees
// clockwise from the top. Screen y grows downwards.
func polar(cx, cy, r float32, angle float64) (float32, float32) {
	rad := angle * math.Pi / 180
	return cx + r*float32(math.Sin(rad)), cy - r*float32(math.Cos(rad))
}
