// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package service

import (
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/text/language"

	"github.com/wneessen/smart-dashboard/internal/config"
	"github.com/wneessen/smart-dashboard/internal/geocode"
	nominatim "github.com/wneessen/smart-dashboard/internal/geocode/provider/osm-nominatim"
	"github.com/wneessen/smart-dashboard/internal/logger"
	"github.com/wneessen/smart-dashboard/internal/weather"
	openmeteo "github.com/wneessen/smart-dashboard/internal/weather/provider/open-meteo"
	"github.com/wneessen/smart-dashboard/internal/weather/provider/weatherapi"
)

const (
	geocodeHitTTL  = time.Hour * 24
	geocodeMissTTL = time.Minute * 5
)

// selectWeatherProvider returns the configured provider, or nil if weather is not
// configured. A missing or incomplete key file is not an error.
func (s *Service) selectWeatherProvider() weather.Provider {
	creds, err := config.LoadCredentials(s.config.Weather.KeyFile)
	if err != nil {
		s.logger.Info("weather disabled, no usable key file", slog.String("file", s.config.Weather.KeyFile),
			logger.Err(err))
		return nil
	}

	provider, err := s.newWeatherProvider(creds)
	if err != nil {
		s.logger.Info("weather disabled", slog.String("provider", s.config.Weather.Provider), logger.Err(err))
		return nil
	}
	s.logger.Debug("weather provider selected", slog.String("provider", provider.Name()))
	return provider
}

func (s *Service) newWeatherProvider(creds config.Credentials) (weather.Provider, error) {
	switch s.config.Weather.Provider {
	case config.ProviderWeatherAPI:
		provider, err := weatherapi.New(s.http, s.logger, creds)
		if err != nil {
			return nil, fmt.Errorf("failed to create weatherapi provider: %w", err)
		}
		return provider, nil
	case config.ProviderOpenMeteo:
		coder := geocode.NewCachedGeocoder(nominatim.New(s.http, language.English), geocodeHitTTL, geocodeMissTTL)
		provider, err := openmeteo.New(s.logger, creds, coder)
		if err != nil {
			return nil, fmt.Errorf("failed to create Open-Meteo provider: %w", err)
		}
		return provider, nil
	default:
		return nil, fmt.Errorf("unsupported weather provider: %s", s.config.Weather.Provider)
	}
}
