// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package dashboard implements the controller that owns all dashboard state. Apart
// from Publish, its methods must be called from the UI loop only.
package dashboard

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/wneessen/smart-dashboard/internal/calendar"
	"github.com/wneessen/smart-dashboard/internal/clock"
	"github.com/wneessen/smart-dashboard/internal/config"
	"github.com/wneessen/smart-dashboard/internal/job"
	"github.com/wneessen/smart-dashboard/internal/logger"
	"github.com/wneessen/smart-dashboard/internal/matrix"
	"github.com/wneessen/smart-dashboard/internal/presenter"
	"github.com/wneessen/smart-dashboard/internal/screen"
	"github.com/wneessen/smart-dashboard/internal/weather"
)

const (
	JobClockDate  = "clock_date"
	JobClockFace  = "clock_face"
	JobMatrixRain = "matrix_rain"

	MatrixOnLabel  = "Matrix ON"
	MatrixOffLabel = "Matrix OFF"
	VoiceLabel     = "Voice Assistant\n(Coming Soon)"
	WeatherTitle   = "Weather Details"
	CalendarTitle  = "Calendar"
	BackLabel      = "Back"
)

// Dashboard is the single owner of the dashboard state.
type Dashboard struct {
	log       *logger.Logger
	presenter *presenter.Presenter
	router    screen.Router
	rain      *matrix.Rain
	canvas    matrix.Canvas
	clock     clock.Clock
	calendar  *calendar.Calendar
	scheduler *job.Scheduler
	layout    Layout
	inbox     chan weather.Snapshot

	snapshot weather.Snapshot
	summary  string
	detail   string
	date     string
	now      time.Time
}

// New returns a Dashboard with its loop tasks registered. now initializes the calendar.
func New(conf *config.Config, pres *presenter.Presenter, log *logger.Logger, now time.Time,
	rng *rand.Rand,
) *Dashboard {
	d := &Dashboard{
		log:       log,
		presenter: pres,
		rain:      matrix.New(conf.Display.CellSize, rng),
		calendar:  calendar.New(now),
		scheduler: job.NewScheduler(),
		inbox:     make(chan weather.Snapshot, 1),
		snapshot:  weather.Pending(),
		now:       now,
	}
	d.rain.SetActive(!conf.Display.DisableMatrix)
	d.Resize(conf.Display.Width, conf.Display.Height)
	d.republish()

	loop := []struct {
		name     string
		interval time.Duration
		task     func(time.Time)
	}{
		{JobClockDate, conf.Intervals.Clock, d.updateDate},
		{JobClockFace, conf.Intervals.Clock, d.clock.Tick},
		{JobMatrixRain, conf.Intervals.Matrix, d.tickRain},
	}
	for _, task := range loop {
		j := d.scheduler.Every(task.name, task.interval, task.task)
		log.Debug("loop job registered", slog.String("job", j.Name()), slog.Duration("interval", task.interval))
	}

	return d
}

// Step applies a pending weather snapshot and runs the due loop tasks.
func (d *Dashboard) Step(now time.Time) {
	d.now = now
	select {
	case snap := <-d.inbox:
		d.apply(snap)
	default:
	}
	d.scheduler.Step(now)
}

// Publish hands a snapshot to the UI loop. It blocks until the UI has room for it or
// ctx is done, in which case the snapshot is dropped and false is returned. It is safe
// to call from any goroutine.
func (d *Dashboard) Publish(ctx context.Context, snap weather.Snapshot) bool {
	if ctx.Err() != nil {
		return false
	}
	select {
	case d.inbox <- snap:
		return true
	case <-ctx.Done():
		return false
	}
}

func (d *Dashboard) apply(snap weather.Snapshot) {
	d.snapshot = snap
	d.republish()
	d.log.Debug("weather snapshot applied", slog.String("state", snap.State().String()),
		slog.String("summary", d.summary))
}

func (d *Dashboard) republish() {
	d.summary = d.presenter.Summary(d.snapshot)
	d.detail = d.presenter.Detail(d.snapshot)
}

func (d *Dashboard) updateDate(now time.Time) {
	d.date = d.presenter.Date(now)
	// keeps relative times like "2 minutes ago" current
	if d.router.Is(screen.WeatherDetail) {
		d.detail = d.presenter.Detail(d.snapshot)
	}
}

func (d *Dashboard) tickRain(time.Time) {
	if d.canvas == nil {
		return
	}
	d.rain.Tick(d.canvas)
}

// Resize recomputes the layout and the matrix columns.
func (d *Dashboard) Resize(width, height int) {
	if d.layout.Width == width && d.layout.Height == height && len(d.rain.Columns()) > 0 {
		return
	}
	d.layout = NewLayout(width, height)
	d.rain.Resize(width, height)
}

// SetCanvas sets the surface the matrix rain is painted on.
func (d *Dashboard) SetCanvas(c matrix.Canvas) {
	d.canvas = c
}

// Do performs a. Day selection is done with SelectDay instead.
func (d *Dashboard) Do(a Action) {
	switch a {
	case ActionOpenWeather:
		d.OpenWeather()
	case ActionOpenCalendar:
		d.OpenCalendar()
	case ActionShowMain:
		d.ShowMain()
	case ActionToggleMatrix:
		d.ToggleMatrix()
	case ActionPrevMonth:
		d.PrevMonth()
	case ActionNextMonth:
		d.NextMonth()
	case ActionToday:
		d.calendar.Today(d.now)
	default:
		return
	}
	d.log.Debug("dashboard action", slog.String("action", a.String()),
		slog.String("screen", d.router.Current().String()))
}

func (d *Dashboard) OpenWeather() {
	d.detail = d.presenter.Detail(d.snapshot)
	d.router.Show(screen.WeatherDetail)
}

func (d *Dashboard) OpenCalendar() {
	d.router.Show(screen.Calendar)
}

func (d *Dashboard) ShowMain() {
	d.router.Show(screen.Main)
}

// ToggleMatrix flips the background effect and returns whether it is now running.
func (d *Dashboard) ToggleMatrix() bool {
	return d.rain.Toggle()
}

func (d *Dashboard) PrevMonth() {
	d.calendar.Prev()
}

func (d *Dashboard) NextMonth() {
	d.calendar.Next()
}

// SelectDay selects a day of the displayed month.
func (d *Dashboard) SelectDay(day int) bool {
	return d.calendar.Select(day)
}

// Click performs the action of the control at the given point on the current screen
// and returns it.
func (d *Dashboard) Click(x, y int) Action {
	l := d.layout
	var action Action
	switch d.router.Current() {
	case screen.Main:
		switch {
		case l.MatrixToggle.Contains(x, y):
			action = ActionToggleMatrix
		case l.Weather.Contains(x, y):
			action = ActionOpenWeather
		case l.Date.Contains(x, y):
			action = ActionOpenCalendar
		}
	case screen.WeatherDetail:
		if l.Back.Contains(x, y) {
			action = ActionShowMain
		}
	case screen.Calendar:
		switch {
		case l.Back.Contains(x, y):
			action = ActionShowMain
		case l.PrevMonth.Contains(x, y):
			action = ActionPrevMonth
		case l.NextMonth.Contains(x, y):
			action = ActionNextMonth
		case l.MonthTitle.Contains(x, y):
			action = ActionToday
		default:
			if week, day, ok := l.DayAt(x, y); ok {
				cell := d.calendar.Grid(d.now)[week][day]
				if !cell.InMonth || !d.SelectDay(cell.Day) {
					d.calendar.SelectDate(cell.Date)
				}
				d.log.Debug("dashboard action", slog.String("action", ActionSelectDay.String()),
					slog.Time("date", cell.Date))
				return ActionSelectDay
			}
		}
	}
	d.Do(action)
	return action
}

// Screen returns the active screen.
func (d *Dashboard) Screen() screen.Screen {
	return d.router.Current()
}

// Layout returns the current screen regions.
func (d *Dashboard) Layout() Layout {
	return d.layout
}

// Summary returns the weather button text.
func (d *Dashboard) Summary() string {
	return d.summary
}

// Detail returns the weather detail text.
func (d *Dashboard) Detail() string {
	return d.detail
}

// Date returns the date button text.
func (d *Dashboard) Date() string {
	return d.date
}

// Snapshot returns the weather snapshot currently shown.
func (d *Dashboard) Snapshot() weather.Snapshot {
	return d.snapshot
}

// MatrixActive reports whether the background effect is running.
func (d *Dashboard) MatrixActive() bool {
	return d.rain.Active()
}

// MatrixLabel returns the toggle button text.
func (d *Dashboard) MatrixLabel() string {
	if d.rain.Active() {
		return MatrixOnLabel
	}
	return MatrixOffLabel
}

// ClockFrame returns the clock geometry of the last clock tick, positioned in the
// clock region of the layout.
func (d *Dashboard) ClockFrame() clock.Frame {
	r := d.layout.Clock
	f := d.clock.Frame(float32(r.W), float32(r.H))
	ox, oy := float32(r.X), float32(r.Y)
	f.Face.CX += ox
	f.Face.CY += oy
	for i := range f.Ticks {
		f.Ticks[i] = offset(f.Ticks[i], ox, oy)
	}
	for i := range f.Hands {
		f.Hands[i] = offset(f.Hands[i], ox, oy)
	}
	return f
}

func offset(s clock.Segment, dx, dy float32) clock.Segment {
	s.X0, s.X1 = s.X0+dx, s.X1+dx
	s.Y0, s.Y1 = s.Y0+dy, s.Y1+dy
	return s
}

// Calendar returns the month grid, its title and the moon phase of the selected day.
func (d *Dashboard) Calendar() (calendar.Grid, string, string) {
	return d.calendar.Grid(d.now), d.calendar.Title(), d.calendar.MoonPhase()
}

// SelectedDate returns the date selected in the calendar.
func (d *Dashboard) SelectedDate() time.Time {
	return d.calendar.Selected()
}

// Now returns the time of the last step.
func (d *Dashboard) Now() time.Time {
	return d.now
}
