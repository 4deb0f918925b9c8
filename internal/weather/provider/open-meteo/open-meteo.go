// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package openmeteo implements a keyless weather provider backed by the Open-Meteo API.
package openmeteo

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/hectormalot/omgo"

	"github.com/wneessen/smart-dashboard/internal/config"
	"github.com/wneessen/smart-dashboard/internal/geocode"
	"github.com/wneessen/smart-dashboard/internal/logger"
	"github.com/wneessen/smart-dashboard/internal/vartype"
	"github.com/wneessen/smart-dashboard/internal/weather"
)

const name = "open-meteo"

// currentFetcher is the part of omgo.Client the provider uses.
type currentFetcher interface {
	CurrentWeather(ctx context.Context, loc omgo.Location, opts *omgo.Options) (omgo.CurrentWeather, error)
}

type OpenMeteo struct {
	client currentFetcher
	coder  geocode.Geocoder
	query  string
	fixed  *geocode.Place
	log    *logger.Logger
}

// New returns an Open-Meteo provider; the API key is not used. A location given as
// "latitude,longitude" is used as is. Any other location is treated as a place name and
// resolved with coder on each update, so coder should cache its results.
func New(log *logger.Logger, creds config.Credentials, coder geocode.Geocoder) (*OpenMeteo, error) {
	if log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	provider := &OpenMeteo{coder: coder, query: creds.Location, log: log}

	lat, lon, err := ParseCoordinates(creds.Location)
	switch {
	case err == nil:
		provider.fixed = &geocode.Place{
			Latitude: lat, Longitude: lon,
			DisplayName: fmt.Sprintf("%.2f, %.2f", lat, lon),
		}
	case coder == nil || strings.TrimSpace(creds.Location) == "":
		return nil, err
	}

	client, err := omgo.NewClient()
	if err != nil {
		return nil, fmt.Errorf("failed to create Open-Meteo client: %w", err)
	}
	provider.client = client

	return provider, nil
}

// place returns the coordinates to query the weather for.
func (o *OpenMeteo) place(ctx context.Context) (geocode.Place, error) {
	if o.fixed != nil {
		return *o.fixed, nil
	}
	place, err := o.coder.Search(ctx, o.query)
	if err != nil {
		return place, fmt.Errorf("failed to resolve location %q: %w", o.query, err)
	}
	o.log.Debug("location resolved", slog.String("query", o.query), slog.String("geocoder", o.coder.Name()),
		slog.Float64("lat", place.Latitude), slog.Float64("lon", place.Longitude),
		slog.Bool("cache_hit", place.CacheHit))
	return place, nil
}

func (o *OpenMeteo) Name() string {
	return name
}

func (o *OpenMeteo) Current(ctx context.Context) (*weather.Conditions, error) {
	opts := &omgo.Options{
		TemperatureUnit:   "fahrenheit",
		WindspeedUnit:     "mph",
		PrecipitationUnit: "inch",
		Timezone:          "auto",
	}
	place, err := o.place(ctx)
	if err != nil {
		return nil, err
	}
	location, err := omgo.NewLocation(place.Latitude, place.Longitude)
	if err != nil {
		return nil, fmt.Errorf("failed create Open-Meteo location from coordinates: %w", err)
	}
	current, err := o.client.CurrentWeather(ctx, location, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve weather data from Open-Meteo API: %w", err)
	}

	code := int(current.WeatherCode)
	condition, ok := WMOWeatherCodes[code]
	if !ok {
		return nil, fmt.Errorf("unknown WMO weather code %d: %w", code, weather.ErrMissingField)
	}

	return &weather.Conditions{
		Temperature: current.Temperature,
		Condition:   condition,
		Location:    place.DisplayName,
		ObservedAt:  current.Time.Time,
		Latitude:    vartype.NewVariable(place.Latitude),
		Longitude:   vartype.NewVariable(place.Longitude),
	}, nil
}

// ParseCoordinates parses a "latitude,longitude" pair.
func ParseCoordinates(location string) (float64, float64, error) {
	latStr, lonStr, ok := strings.Cut(location, ",")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q is not a latitude,longitude pair", weather.ErrInvalidLocation, location)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: invalid latitude: %w", weather.ErrInvalidLocation, err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(lonStr), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: invalid longitude: %w", weather.ErrInvalidLocation, err)
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return 0, 0, fmt.Errorf("%w: coordinates out of range: %f,%f", weather.ErrInvalidLocation, lat, lon)
	}
	return lat, lon, nil
}
