// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kkyr/fig"
)

const (
	configEnv = "SMARTDASHBOARD"

	ProviderWeatherAPI = "weatherapi"
	ProviderOpenMeteo  = "open-meteo"

	DefaultKeyFile    = "Wapi.json"
	DefaultSummaryTpl = "{{temp .Temperature}}°F"
	DefaultDetailTpl  = "Temperature: {{temp .Temperature}}°F\nCondition: {{.Condition}}\n" +
		"{{if .Location}}Location: {{.Location}}\n{{end}}" +
		"{{if .HasSun}}Sunrise: {{timeFormat .Sunrise \"15:04\"}}  Sunset: {{timeFormat .Sunset \"15:04\"}}\n{{end}}" +
		"Moon: {{.MoonPhase}}\nUpdated: {{natural .UpdatedAt}}"

	minCellSize = 4
)

// ErrNoAPIKey is returned when the key file does not carry an API key.
var ErrNoAPIKey = errors.New("no API key configured")

// Config represents the application's configuration structure.
type Config struct {
	LogLevel slog.Level `fig:"loglevel" default:"0"`

	Display struct {
		Title             string `fig:"title" default:"Smart Dashboard"`
		Width             int    `fig:"width" default:"1024"`
		Height            int    `fig:"height" default:"600"`
		CellSize          int    `fig:"cell_size" default:"12"`
		DisableFullscreen bool   `fig:"disable_fullscreen"`
		DisableMatrix     bool   `fig:"disable_matrix"`
	} `fig:"display"`

	Intervals struct {
		Clock         time.Duration `fig:"clock" default:"1s"`
		Matrix        time.Duration `fig:"matrix" default:"50ms"`
		WeatherUpdate time.Duration `fig:"weather_update" default:"10m"`
	} `fig:"intervals"`

	Weather struct {
		// Allowed values: weatherapi, open-meteo
		Provider string        `fig:"provider" default:"weatherapi"`
		KeyFile  string        `fig:"key_file"`
		Timeout  time.Duration `fig:"timeout" default:"10s"`
	} `fig:"weather"`

	Templates struct {
		Summary string `fig:"summary"`
		Detail  string `fig:"detail"`
	} `fig:"templates"`
}

// Credentials holds the content of the weather key file.
type Credentials struct {
	APIKey   string `fig:"api_key"`
	Location string `fig:"location" validate:"required"`
}

func NewFromFile(path, file string) (*Config, error) {
	conf := new(Config)
	_, err := os.Stat(filepath.Join(path, file))
	if err != nil {
		return conf, fmt.Errorf("failed to read Config: %w", err)
	}
	if err = fig.Load(conf, fig.Dirs(path), fig.File(file), fig.UseEnv(configEnv)); err != nil {
		return conf, fmt.Errorf("failed to load Config: %w", err)
	}

	return conf, conf.Validate()
}

func New() (*Config, error) {
	conf := new(Config)
	if err := fig.Load(conf, fig.AllowNoFile(), fig.UseEnv(configEnv)); err != nil {
		return conf, fmt.Errorf("failed to load Config: %w", err)
	}

	return conf, conf.Validate()
}

func (c *Config) Validate() error {
	c.Weather.Provider = strings.ToLower(c.Weather.Provider)
	if c.Weather.Provider != ProviderWeatherAPI && c.Weather.Provider != ProviderOpenMeteo {
		return fmt.Errorf("invalid weather provider: %s", c.Weather.Provider)
	}
	if c.Weather.KeyFile == "" {
		c.Weather.KeyFile = DefaultKeyFile
	}
	if c.Weather.Timeout <= 0 {
		return fmt.Errorf("invalid weather timeout: %s", c.Weather.Timeout)
	}
	if c.Intervals.Clock <= 0 || c.Intervals.Matrix <= 0 || c.Intervals.WeatherUpdate <= 0 {
		return fmt.Errorf("intervals must be positive: clock=%s matrix=%s weather_update=%s",
			c.Intervals.Clock, c.Intervals.Matrix, c.Intervals.WeatherUpdate)
	}
	if c.Display.CellSize < minCellSize {
		return fmt.Errorf("invalid cell size: %d", c.Display.CellSize)
	}
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		return fmt.Errorf("invalid window size: %dx%d", c.Display.Width, c.Display.Height)
	}
	if c.Templates.Summary == "" {
		c.Templates.Summary = DefaultSummaryTpl
	}
	if c.Templates.Detail == "" {
		c.Templates.Detail = DefaultDetailTpl
	}

	return nil
}

// LoadCredentials reads the weather key file at path. Any error means that weather
// is not configured; callers are expected to degrade instead of failing.
func LoadCredentials(path string) (Credentials, error) {
	var creds Credentials
	if _, err := os.Stat(path); err != nil {
		return creds, fmt.Errorf("failed to read key file: %w", err)
	}
	if err := fig.Load(&creds, fig.Dirs(filepath.Dir(path)), fig.File(filepath.Base(path))); err != nil {
		return Credentials{}, fmt.Errorf("failed to load key file: %w", err)
	}
	creds.APIKey = strings.TrimSpace(creds.APIKey)
	creds.Location = strings.TrimSpace(creds.Location)
	if creds.Location == "" {
		return Credentials{}, fmt.Errorf("key file %s carries no location", path)
	}

	return creds, nil
}

// RequireAPIKey returns ErrNoAPIKey if the credentials do not carry an API key.
func (c Credentials) RequireAPIKey() error {
	if c.APIKey == "" {
		return ErrNoAPIKey
	}
	return nil
}
