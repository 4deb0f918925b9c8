// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package geocode resolves place names into coordinates.
package geocode

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a geocoder has no result for a query.
var ErrNotFound = errors.New("no coordinates found")

// Place is the result of a place name lookup.
type Place struct {
	Latitude    float64
	Longitude   float64
	DisplayName string
	CacheHit    bool
}

// Valid checks if the coordinates are within the EPSG:4326 bounds.
func (p Place) Valid() bool {
	return p.Latitude >= -90 && p.Latitude <= 90 && p.Longitude >= -180 && p.Longitude <= 180
}

type Geocoder interface {
	Name() string
	Search(ctx context.Context, query string) (Place, error)
}
