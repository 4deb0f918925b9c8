// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package weatherapi implements a weather provider for the weatherapi.com current
// conditions endpoint.
package weatherapi

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/wneessen/smart-dashboard/internal/config"
	"github.com/wneessen/smart-dashboard/internal/http"
	"github.com/wneessen/smart-dashboard/internal/logger"
	"github.com/wneessen/smart-dashboard/internal/vartype"
	"github.com/wneessen/smart-dashboard/internal/weather"
)

const (
	name        = "weatherapi"
	apiEndpoint = "https://api.weatherapi.com/v1/current.json"

	// localTimeLayout is the layout of location.localtime, e.g. "2026-01-18 09:30"
	localTimeLayout = "2006-01-02 15:04"
)

type WeatherAPI struct {
	apiKey   string
	location string
	endpoint string
	log      *logger.Logger
	http     *http.Client
}

// response mirrors the parts of the current.json response we use. Mandatory fields are
// pointers so that their absence can be told from a zero value.
type response struct {
	Location *struct {
		Name      string  `json:"name"`
		Region    string  `json:"region"`
		Country   string  `json:"country"`
		Lat       float64 `json:"lat"`
		Lon       float64 `json:"lon"`
		LocalTime string  `json:"localtime"`
	} `json:"location"`
	Current *struct {
		TempF     *float64 `json:"temp_f"`
		Condition *struct {
			Text *string `json:"text"`
		} `json:"condition"`
	} `json:"current"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func New(http *http.Client, log *logger.Logger, creds config.Credentials) (*WeatherAPI, error) {
	if http == nil {
		return nil, fmt.Errorf("http client is required")
	}
	if log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if err := creds.RequireAPIKey(); err != nil {
		return nil, err
	}
	if creds.Location == "" {
		return nil, fmt.Errorf("%w: location is empty", weather.ErrInvalidLocation)
	}

	return &WeatherAPI{
		apiKey:   creds.APIKey,
		location: creds.Location,
		endpoint: apiEndpoint,
		http:     http,
		log:      log,
	}, nil
}

func (w *WeatherAPI) Name() string {
	return name
}

func (w *WeatherAPI) Current(ctx context.Context) (*weather.Conditions, error) {
	res := new(response)
	query := url.Values{}
	query.Set("key", w.apiKey)
	query.Set("q", w.location)

	// bounded by the refresh deadline of the weather client
	code, err := w.http.Get(ctx, w.endpoint, res, query)
	if err != nil && code == 0 {
		return nil, fmt.Errorf("failed to retrieve weather data from weatherapi.com: %w", err)
	}
	if !http.IsSuccess(code) {
		if res.Error != nil && res.Error.Message != "" {
			return nil, fmt.Errorf("weatherapi.com returned %d: %s", code, res.Error.Message)
		}
		return nil, fmt.Errorf("weatherapi.com returned non-positive response code: %d", code)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode weatherapi.com response: %w", err)
	}

	return res.conditions()
}

func (r *response) conditions() (*weather.Conditions, error) {
	switch {
	case r.Current == nil:
		return nil, fmt.Errorf("current: %w", weather.ErrMissingField)
	case r.Current.TempF == nil:
		return nil, fmt.Errorf("current.temp_f: %w", weather.ErrMissingField)
	case r.Current.Condition == nil || r.Current.Condition.Text == nil:
		return nil, fmt.Errorf("current.condition.text: %w", weather.ErrMissingField)
	}

	cond := &weather.Conditions{
		Temperature: *r.Current.TempF,
		Condition:   strings.TrimSpace(*r.Current.Condition.Text),
		ObservedAt:  time.Now(),
	}
	if loc := r.Location; loc != nil {
		parts := make([]string, 0, 3)
		for _, p := range []string{loc.Name, loc.Region, loc.Country} {
			if p != "" {
				parts = append(parts, p)
			}
		}
		cond.Location = strings.Join(parts, ", ")
		cond.Latitude = vartype.NewVariable(loc.Lat)
		cond.Longitude = vartype.NewVariable(loc.Lon)
		if t, err := time.Parse(localTimeLayout, loc.LocalTime); err == nil {
			cond.ObservedAt = t
		}
	}

	return cond, nil
}
