// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package presenter renders weather snapshots and dates into the strings shown on
// the dashboard.
package presenter

import (
	"bytes"
	"fmt"
	"text/template"
	"time"

	"github.com/nathan-osman/go-sunrise"
	"github.com/vorlif/humanize"
	"github.com/wneessen/go-moonphase"
	"golang.org/x/text/language"

	"github.com/wneessen/smart-dashboard/internal/config"
	"github.com/wneessen/smart-dashboard/internal/weather"
)

const (
	SummaryLoading  = "Loading..."
	SummaryDisabled = "No API"
	SummaryError    = "Err"

	DetailLoading  = "Loading..."
	DetailDisabled = "Weather disabled\nAdd api_key and location to the key file to enable it"
	DetailError    = "Weather load error"

	DateLayout = "01/02/2006"
)

// DetailContext is the data available to the detail template.
type DetailContext struct {
	Temperature   float64
	Condition     string
	Location      string
	HasSun        bool
	Sunrise       time.Time
	Sunset        time.Time
	MoonPhase     string
	MoonPhaseIcon string
	UpdatedAt     time.Time
}

type Presenter struct {
	summary   *template.Template
	detail    *template.Template
	humanizer *humanize.Humanizer
	now       func() time.Time
}

func New(conf *config.Config) (*Presenter, error) {
	pres := &Presenter{
		humanizer: humanize.MustNew().CreateHumanizer(language.English),
		now:       time.Now,
	}

	tpl, err := template.New("summary").Funcs(pres.templateFuncMap()).Parse(conf.Templates.Summary)
	if err != nil {
		return nil, fmt.Errorf("failed to parse summary template: %w", err)
	}
	pres.summary = tpl

	tpl, err = template.New("detail").Funcs(pres.templateFuncMap()).Parse(conf.Templates.Detail)
	if err != nil {
		return nil, fmt.Errorf("failed to parse detail template: %w", err)
	}
	pres.detail = tpl

	// Templates are only executed on the UI loop, so catch execution errors up front
	sample := DetailContext{Temperature: 72.5, Condition: "Sunny", UpdatedAt: time.Now()}
	if _, err = pres.render(pres.summary, sample); err != nil {
		return nil, fmt.Errorf("failed to execute summary template: %w", err)
	}
	if _, err = pres.render(pres.detail, sample); err != nil {
		return nil, fmt.Errorf("failed to execute detail template: %w", err)
	}

	return pres, nil
}

// Summary returns the text of the weather button on the main screen.
func (p *Presenter) Summary(snap weather.Snapshot) string {
	switch snap.State() {
	case weather.StatePending:
		return SummaryLoading
	case weather.StateDisabled:
		return SummaryDisabled
	case weather.StateReady:
		cond, _ := snap.Conditions()
		out, err := p.render(p.summary, p.BuildContext(cond, snap.FetchedAt()))
		if err != nil {
			return SummaryError
		}
		return out
	default:
		return SummaryError
	}
}

// Detail returns the text of the weather detail screen.
func (p *Presenter) Detail(snap weather.Snapshot) string {
	switch snap.State() {
	case weather.StatePending:
		return DetailLoading
	case weather.StateDisabled:
		return DetailDisabled
	case weather.StateReady:
		cond, _ := snap.Conditions()
		out, err := p.render(p.detail, p.BuildContext(cond, snap.FetchedAt()))
		if err != nil {
			return DetailError + "\n" + err.Error()
		}
		return out
	default:
		if snap.Message() == "" {
			return DetailError
		}
		return DetailError + "\n" + snap.Message()
	}
}

// Date returns the date label for t.
func (p *Presenter) Date(t time.Time) string {
	return t.Format(DateLayout)
}

// MoonPhase returns the icon and name of the moon phase at t.
func (p *Presenter) MoonPhase(t time.Time) (string, string) {
	name := moonphase.New(t).PhaseName()
	return MoonPhaseIcon[name], name
}

// BuildContext derives the template data for a set of conditions.
func (p *Presenter) BuildContext(cond weather.Conditions, fetchedAt time.Time) DetailContext {
	now := p.now()
	ctx := DetailContext{
		Temperature: cond.Temperature,
		Condition:   cond.Condition,
		Location:    cond.Location,
		UpdatedAt:   fetchedAt,
	}
	ctx.MoonPhaseIcon, ctx.MoonPhase = p.MoonPhase(now)
	if cond.HasCoordinates() {
		rise, set := sunrise.SunriseSunset(cond.Latitude.Value(), cond.Longitude.Value(),
			now.Year(), now.Month(), now.Day())
		if !rise.IsZero() && !set.IsZero() {
			ctx.HasSun = true
			ctx.Sunrise = rise.In(now.Location())
			ctx.Sunset = set.In(now.Location())
		}
	}
	return ctx
}

func (p *Presenter) render(tpl *template.Template, data DetailContext) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := tpl.Execute(buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
