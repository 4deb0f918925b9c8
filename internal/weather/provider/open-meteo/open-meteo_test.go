// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package openmeteo

import (
	"context"
	"errors"
	"testing"

	"github.com/hectormalot/omgo"

	"github.com/wneessen/smart-dashboard/internal/config"
	"github.com/wneessen/smart-dashboard/internal/geocode"
	"github.com/wneessen/smart-dashboard/internal/logger"
	"github.com/wneessen/smart-dashboard/internal/weather"
)

type fakeFetcher struct {
	current omgo.CurrentWeather
	err     error
	opts    *omgo.Options
}

func (f *fakeFetcher) CurrentWeather(_ context.Context, _ omgo.Location, opts *omgo.Options) (omgo.CurrentWeather, error) {
	f.opts = opts
	return f.current, f.err
}

type fakeCoder struct {
	place   geocode.Place
	err     error
	queries []string
}

func (f *fakeCoder) Name() string { return "fake" }

func (f *fakeCoder) Search(_ context.Context, query string) (geocode.Place, error) {
	f.queries = append(f.queries, query)
	return f.place, f.err
}

func testProvider(t *testing.T, fetcher *fakeFetcher) *OpenMeteo {
	t.Helper()
	provider, err := New(logger.Discard(), config.Credentials{Location: "50.95, 6.93"}, nil)
	if err != nil {
		t.Fatalf("failed to create provider: %s", err)
	}
	provider.client = fetcher
	return provider
}

func TestNew(t *testing.T) {
	t.Run("new provider succeeds", func(t *testing.T) {
		var provider weather.Provider
		provider, err := New(logger.Discard(), config.Credentials{Location: "50.95,6.93"}, nil)
		if err != nil {
			t.Fatalf("failed to create provider: %s", err)
		}
		if provider.Name() != name {
			t.Errorf("expected provider name %q, got %q", name, provider.Name())
		}
	})
	t.Run("place names without geocoder are rejected", func(t *testing.T) {
		_, err := New(logger.Discard(), config.Credentials{Location: "Cologne"}, nil)
		if !errors.Is(err, weather.ErrInvalidLocation) {
			t.Errorf("expected error to be %s, got %v", weather.ErrInvalidLocation, err)
		}
	})
	t.Run("place names with geocoder are accepted", func(t *testing.T) {
		coder := &fakeCoder{}
		if _, err := New(logger.Discard(), config.Credentials{Location: "Cologne"}, coder); err != nil {
			t.Errorf("failed to create provider: %s", err)
		}
		if len(coder.queries) != 0 {
			t.Errorf("expected place name to be resolved lazily, got %d searches", len(coder.queries))
		}
	})
	t.Run("empty location is rejected", func(t *testing.T) {
		_, err := New(logger.Discard(), config.Credentials{Location: " "}, &fakeCoder{})
		if !errors.Is(err, weather.ErrInvalidLocation) {
			t.Errorf("expected error to be %s, got %v", weather.ErrInvalidLocation, err)
		}
	})
	t.Run("missing logger fails", func(t *testing.T) {
		if _, err := New(nil, config.Credentials{Location: "50.95,6.93"}, nil); err == nil {
			t.Error("expected missing logger to fail")
		}
	})
}

func TestOpenMeteo_Current(t *testing.T) {
	t.Run("current weather is converted", func(t *testing.T) {
		fetcher := &fakeFetcher{current: omgo.CurrentWeather{Temperature: 72.5, WeatherCode: 0}}
		cond, err := testProvider(t, fetcher).Current(t.Context())
		if err != nil {
			t.Fatalf("failed to get current conditions: %s", err)
		}
		if cond.Temperature != 72.5 {
			t.Errorf("expected temperature 72.5, got %f", cond.Temperature)
		}
		if cond.Condition != "Clear sky" {
			t.Errorf("expected condition %q, got %q", "Clear sky", cond.Condition)
		}
		if cond.Location != "50.95, 6.93" {
			t.Errorf("expected location %q, got %q", "50.95, 6.93", cond.Location)
		}
		if !cond.HasCoordinates() {
			t.Error("expected coordinates to be set")
		}
		if fetcher.opts == nil || fetcher.opts.TemperatureUnit != "fahrenheit" {
			t.Error("expected temperatures to be requested in fahrenheit")
		}
	})
	t.Run("unknown weather code fails", func(t *testing.T) {
		fetcher := &fakeFetcher{current: omgo.CurrentWeather{Temperature: 50, WeatherCode: 42}}
		_, err := testProvider(t, fetcher).Current(t.Context())
		if !errors.Is(err, weather.ErrMissingField) {
			t.Errorf("expected error to be %s, got %v", weather.ErrMissingField, err)
		}
	})
	t.Run("place names are resolved on every update", func(t *testing.T) {
		coder := &fakeCoder{place: geocode.Place{Latitude: 50.938, Longitude: 6.96, DisplayName: "Köln"}}
		provider, err := New(logger.Discard(), config.Credentials{Location: "Cologne"}, coder)
		if err != nil {
			t.Fatalf("failed to create provider: %s", err)
		}
		provider.client = &fakeFetcher{current: omgo.CurrentWeather{Temperature: 60, WeatherCode: 3}}
		for range 2 {
			cond, err := provider.Current(t.Context())
			if err != nil {
				t.Fatalf("failed to get current conditions: %s", err)
			}
			if cond.Location != "Köln" {
				t.Errorf("expected location %q, got %q", "Köln", cond.Location)
			}
			if cond.Latitude.Value() != 50.938 {
				t.Errorf("expected latitude 50.938, got %f", cond.Latitude.Value())
			}
		}
		if len(coder.queries) != 2 || coder.queries[0] != "Cologne" {
			t.Errorf("expected two searches for %q, got %v", "Cologne", coder.queries)
		}
	})
	t.Run("geocoder errors fail the update", func(t *testing.T) {
		coder := &fakeCoder{err: geocode.ErrNotFound}
		provider, err := New(logger.Discard(), config.Credentials{Location: "Nowhere"}, coder)
		if err != nil {
			t.Fatalf("failed to create provider: %s", err)
		}
		fetcher := &fakeFetcher{}
		provider.client = fetcher
		if _, err = provider.Current(t.Context()); !errors.Is(err, geocode.ErrNotFound) {
			t.Errorf("expected error to be %s, got %v", geocode.ErrNotFound, err)
		}
		if fetcher.opts != nil {
			t.Error("expected no weather request without a location")
		}
	})
	t.Run("api errors are wrapped", func(t *testing.T) {
		fetcher := &fakeFetcher{err: errors.New("intentionally failing")}
		if _, err := testProvider(t, fetcher).Current(t.Context()); err == nil {
			t.Fatal("expected current conditions to fail")
		}
	})
}

func TestParseCoordinates(t *testing.T) {
	tests := []struct {
		in       string
		lat, lon float64
		fail     bool
	}{
		{"50.95,6.93", 50.95, 6.93, false},
		{" -33.86 , 151.21 ", -33.86, 151.21, false},
		{"London", 0, 0, true},
		{"abc,6.93", 0, 0, true},
		{"50.95,abc", 0, 0, true},
		{"91,0", 0, 0, true},
		{"0,181", 0, 0, true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			lat, lon, err := ParseCoordinates(tc.in)
			if tc.fail {
				if !errors.Is(err, weather.ErrInvalidLocation) {
					t.Errorf("expected error to be %s, got %v", weather.ErrInvalidLocation, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("failed to parse coordinates: %s", err)
			}
			if lat != tc.lat || lon != tc.lon {
				t.Errorf("expected %f,%f, got %f,%f", tc.lat, tc.lon, lat, lon)
			}
		})
	}
}
