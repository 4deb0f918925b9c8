// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package dashboard

import (
	"github.com/wneessen/smart-dashboard/internal/calendar"
	"github.com/wneessen/smart-dashboard/internal/widget"
)

const (
	margin       = 10
	buttonWidth  = 150
	buttonHeight = 40
	toggleWidth  = 100
	toggleHeight = 30
	backWidth    = 120
	titleHeight  = 40
	headerHeight = 30
	weekdayRow   = 20
	footerHeight = 24
)

// Layout holds the screen regions for one window size.
type Layout struct {
	Width, Height int

	// Main screen
	MatrixToggle widget.Rect
	Weather      widget.Rect
	Clock        widget.Rect
	Date         widget.Rect
	Voice        widget.Rect

	// Weather and calendar screens
	Title widget.Rect
	Body  widget.Rect
	Back  widget.Rect

	// Calendar screen
	PrevMonth  widget.Rect
	NextMonth  widget.Rect
	MonthTitle widget.Rect
	Weekdays   [calendar.Days]widget.Rect
	Days       [calendar.Weeks][calendar.Days]widget.Rect
	Footer     widget.Rect
}

// NewLayout computes the regions for a window of the given size.
func NewLayout(width, height int) Layout {
	width, height = max(width, 0), max(height, 0)
	l := Layout{Width: width, Height: height}

	l.MatrixToggle = widget.Rect{X: margin, Y: margin, W: toggleWidth, H: toggleHeight}
	l.Weather = widget.Rect{X: width - margin - buttonWidth, Y: margin, W: buttonWidth, H: buttonHeight}
	l.Date = widget.Rect{X: margin, Y: height - margin - buttonHeight, W: buttonWidth, H: buttonHeight}
	l.Voice = widget.Rect{X: width - margin - buttonWidth, Y: height - margin - buttonHeight, W: buttonWidth, H: buttonHeight}

	top := margin + buttonHeight + margin
	side := max(min(width-2*margin, height-2*top), 0)
	l.Clock = widget.Rect{X: (width - side) / 2, Y: (height - side) / 2, W: side, H: side}

	l.Title = widget.Rect{X: 0, Y: margin, W: width, H: titleHeight}
	l.Back = widget.Rect{X: (width - backWidth) / 2, Y: height - margin - buttonHeight, W: backWidth, H: buttonHeight}
	bodyTop := l.Title.Y + l.Title.H + margin
	l.Body = widget.Rect{
		X: 2 * margin, Y: bodyTop,
		W: max(width-4*margin, 0), H: max(l.Back.Y-margin-bodyTop, 0),
	}

	b := l.Body
	l.PrevMonth = widget.Rect{X: b.X, Y: b.Y, W: buttonHeight, H: headerHeight}
	l.NextMonth = widget.Rect{X: b.X + b.W - buttonHeight, Y: b.Y, W: buttonHeight, H: headerHeight}
	l.MonthTitle = widget.Rect{X: b.X + buttonHeight, Y: b.Y, W: max(b.W-2*buttonHeight, 0), H: headerHeight}

	cellW := b.W / calendar.Days
	gridTop := b.Y + headerHeight + weekdayRow
	cellH := max((b.H-headerHeight-weekdayRow-footerHeight)/calendar.Weeks, 0)
	for d := 0; d < calendar.Days; d++ {
		l.Weekdays[d] = widget.Rect{X: b.X + d*cellW, Y: b.Y + headerHeight, W: cellW, H: weekdayRow}
		for w := 0; w < calendar.Weeks; w++ {
			l.Days[w][d] = widget.Rect{X: b.X + d*cellW, Y: gridTop + w*cellH, W: cellW, H: cellH}
		}
	}
	l.Footer = widget.Rect{X: b.X, Y: gridTop + calendar.Weeks*cellH, W: b.W, H: footerHeight}

	return l
}

// DayAt returns the grid position of the day cell at the given point.
func (l Layout) DayAt(x, y int) (week, day int, ok bool) {
	for w := range l.Days {
		for d := range l.Days[w] {
			if l.Days[w][d].Contains(x, y) {
				return w, d, true
			}
		}
	}
	return 0, 0, false
}
