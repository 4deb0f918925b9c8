// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package weather defines the weather provider contract and the snapshot the
// dashboard displays.
package weather

import (
	"context"
	"errors"
	"time"

	"github.com/wneessen/smart-dashboard/internal/vartype"
)

var (
	// ErrMissingField is returned by providers when a mandatory response field is absent.
	ErrMissingField = errors.New("response is missing a mandatory field")

	// ErrInvalidLocation is returned by providers that cannot use the configured location.
	ErrInvalidLocation = errors.New("invalid location")
)

// Provider is implemented by each weather API backend.
type Provider interface {
	Name() string
	Current(ctx context.Context) (*Conditions, error)
}

// Conditions are the current conditions as reported by a provider. Temperature is
// always in degrees Fahrenheit.
type Conditions struct {
	Temperature float64
	Condition   string
	Location    string
	ObservedAt  time.Time
	Latitude    vartype.VarFloat64
	Longitude   vartype.VarFloat64
}

// HasCoordinates reports whether the provider returned the position of the observation.
func (c Conditions) HasCoordinates() bool {
	return c.Latitude.IsSet() && c.Longitude.IsSet()
}
