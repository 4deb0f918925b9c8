// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/wneessen/smart-dashboard/internal/calendar"
	"github.com/wneessen/smart-dashboard/internal/clock"
	"github.com/wneessen/smart-dashboard/internal/dashboard"
	"github.com/wneessen/smart-dashboard/internal/widget"
)

const (
	titleScale    = 2
	buttonPadding = 5
)

var (
	backgroundColor = color.RGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xff}
	buttonColor     = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}
	borderColor     = color.RGBA{R: 0x44, G: 0x44, B: 0x44, A: 0xff}
	checkedColor    = color.RGBA{R: 0x00, G: 0xaa, B: 0x00, A: 0xff}
	textColor       = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	dimTextColor    = color.RGBA{R: 0x77, G: 0x77, B: 0x77, A: 0xff}
	calendarColor   = color.RGBA{R: 0x00, G: 0x11, B: 0x22, A: 0xff}
	headerColor     = color.RGBA{R: 0x00, G: 0x22, B: 0x44, A: 0xff}
	selectedColor   = color.RGBA{R: 0x00, G: 0x33, B: 0x66, A: 0xff}
	todayColor      = color.RGBA{R: 0x00, G: 0xaa, B: 0xff, A: 0xff}
)

var weekdays = [calendar.Days]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

func (g *Game) drawMain(dst *ebiten.Image) {
	if g.layer != nil {
		dst.DrawImage(g.layer, nil)
	}
	l := g.dash.Layout()

	fill := buttonColor
	if g.dash.MatrixActive() {
		fill = checkedColor
	}
	drawButton(dst, l.MatrixToggle, g.dash.MatrixLabel(), fill)
	drawButton(dst, l.Weather, g.dash.Summary(), buttonColor)
	drawClock(dst, g.dash.ClockFrame())
	drawButton(dst, l.Date, g.dash.Date(), buttonColor)
	drawText(dst, l.Voice, dashboard.VoiceLabel, textColor)
}

func (g *Game) drawWeather(dst *ebiten.Image) {
	l := g.dash.Layout()
	drawTitle(dst, l.Title, dashboard.WeatherTitle)
	drawText(dst, l.Body, g.dash.Detail(), textColor)
	drawButton(dst, l.Back, dashboard.BackLabel, buttonColor)
}

func (g *Game) drawCalendar(dst *ebiten.Image) {
	l := g.dash.Layout()
	grid, title, moon := g.dash.Calendar()

	drawTitle(dst, l.Title, dashboard.CalendarTitle)
	fillRect(dst, l.Body, calendarColor)
	drawButton(dst, l.PrevMonth, "<", headerColor)
	drawButton(dst, l.NextMonth, ">", headerColor)
	fillRect(dst, l.MonthTitle, headerColor)
	drawText(dst, l.MonthTitle, title, textColor)

	for d, name := range weekdays {
		drawText(dst, l.Weekdays[d], name, dimTextColor)
	}
	for w := range grid {
		for d, cell := range grid[w] {
			r := l.Days[w][d]
			if cell.Selected {
				fillRect(dst, r.Inset(1), selectedColor)
			}
			if cell.Today {
				strokeRect(dst, r.Inset(2), todayColor)
			}
			clr := textColor
			if !cell.InMonth {
				clr = dimTextColor
			}
			drawText(dst, r, fmt.Sprint(cell.Day), clr)
		}
	}

	footer := fmt.Sprintf("Selected: %s  Moon: %s", g.dash.SelectedDate().Format("01/02/2006"), moon)
	drawText(dst, l.Footer, footer, textColor)
	drawButton(dst, l.Back, dashboard.BackLabel, buttonColor)
}

func drawClock(dst *ebiten.Image, f clock.Frame) {
	vector.DrawFilledCircle(dst, f.Face.CX, f.Face.CY, f.Face.R, f.Face.Color, true)
	for _, s := range f.Ticks {
		vector.StrokeLine(dst, s.X0, s.Y0, s.X1, s.Y1, s.Width, s.Color, true)
	}
	for _, s := range f.Hands {
		vector.StrokeLine(dst, s.X0, s.Y0, s.X1, s.Y1, s.Width, s.Color, true)
	}
}

func drawButton(dst *ebiten.Image, r widget.Rect, label string, fill color.RGBA) {
	fillRect(dst, r, fill)
	strokeRect(dst, r, borderColor)
	drawText(dst, r.Inset(buttonPadding), label, textColor)
}

func fillRect(dst *ebiten.Image, r widget.Rect, clr color.RGBA) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

func strokeRect(dst *ebiten.Image, r widget.Rect, clr color.RGBA) {
	vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, clr, false)
}

// drawText draws s centered in r with the bitmap face, cutting lines that do not fit.
func drawText(dst *ebiten.Image, r widget.Rect, s string, clr color.RGBA) {
	for _, line := range widget.CenterText(r, s) {
		drawString(dst, line.Text, line.X, line.Y, clr)
	}
}

// drawTitle draws s centered in r at twice the glyph size.
func drawTitle(dst *ebiten.Image, r widget.Rect, s string) {
	w, h := widget.TextWidth(s)*titleScale, widget.GlyphHeight*titleScale
	op := &text.DrawOptions{}
	op.GeoM.Scale(titleScale, titleScale)
	op.GeoM.Translate(float64(r.X+(r.W-w)/2), float64(r.Y+(r.H-h)/2))
	op.ColorScale.ScaleWithColor(textColor)
	text.Draw(dst, s, face, op)
}
