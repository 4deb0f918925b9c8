// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package calendar implements the month view model of the calendar screen.
package calendar

import (
	"time"

	"github.com/wneessen/go-moonphase"
)

const (
	// Weeks is the number of rows of a month grid.
	Weeks = 6
	// Days is the number of columns of a month grid.
	Days = 7
)

// Cell is one day of the month grid.
type Cell struct {
	Date     time.Time
	Day      int
	InMonth  bool
	Today    bool
	Selected bool
}

// Grid is a month laid out in weeks starting on Sunday.
type Grid [Weeks][Days]Cell

// Calendar holds the displayed month and the selected date.
type Calendar struct {
	year     int
	month    time.Month
	selected time.Time
	loc      *time.Location
}

// New returns a Calendar showing the month of now with now selected.
func New(now time.Time) *Calendar {
	c := &Calendar{loc: now.Location()}
	c.selected = c.date(now.Year(), now.Month(), now.Day())
	c.year, c.month = now.Year(), now.Month()
	return c
}

// Month returns the displayed year and month.
func (c *Calendar) Month() (int, time.Month) {
	return c.year, c.month
}

// Title returns the displayed month as e.g. "January 2026".
func (c *Calendar) Title() string {
	return c.date(c.year, c.month, 1).Format("January 2006")
}

// Next moves the view to the following month. The selection is kept.
func (c *Calendar) Next() {
	c.shift(1)
}

// Prev moves the view to the previous month. The selection is kept.
func (c *Calendar) Prev() {
	c.shift(-1)
}

func (c *Calendar) shift(months int) {
	first := c.date(c.year, c.month+time.Month(months), 1)
	c.year, c.month = first.Year(), first.Month()
}

// Today moves the view back to the month of now and selects now.
func (c *Calendar) Today(now time.Time) {
	c.SelectDate(now)
}

// SelectDate moves the view to the month of t and selects t.
func (c *Calendar) SelectDate(t time.Time) {
	c.year, c.month = t.Year(), t.Month()
	c.selected = c.date(t.Year(), t.Month(), t.Day())
}

// Select selects the given day of the displayed month. It reports false for days the
// month does not have.
func (c *Calendar) Select(day int) bool {
	if day < 1 || day > daysIn(c.year, c.month) {
		return false
	}
	c.selected = c.date(c.year, c.month, day)
	return true
}

// Selected returns the selected date at midnight.
func (c *Calendar) Selected() time.Time {
	return c.selected
}

// MoonPhase returns the moon phase name of the selected date.
func (c *Calendar) MoonPhase() string {
	return moonphase.New(c.selected.Add(12 * time.Hour)).PhaseName()
}

// Grid lays out the displayed month. Days of the neighbouring months fill the leading
// and trailing cells.
func (c *Calendar) Grid(now time.Time) Grid {
	var grid Grid
	first := c.date(c.year, c.month, 1)
	start := first.AddDate(0, 0, -int(first.Weekday()))
	today := c.date(now.Year(), now.Month(), now.Day())

	for w := 0; w < Weeks; w++ {
		for d := 0; d < Days; d++ {
			date := start.AddDate(0, 0, w*Days+d)
			grid[w][d] = Cell{
				Date:     date,
				Day:      date.Day(),
				InMonth:  date.Month() == c.month,
				Today:    date.Equal(today),
				Selected: date.Equal(c.selected),
			}
		}
	}
	return grid
}

func (c *Calendar) date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, c.loc)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
