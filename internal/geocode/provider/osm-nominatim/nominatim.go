// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package nominatim

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/text/language"

	"github.com/wneessen/smart-dashboard/internal/geocode"
	"github.com/wneessen/smart-dashboard/internal/http"
)

const (
	APISearchEndpoint = "https://nominatim.openstreetmap.org/search"
	APITimeout        = time.Second * 10
	name              = "osm-nominatim"
)

type Nominatim struct {
	http     *http.Client
	lang     language.Tag
	endpoint string
}

type SearchResult struct {
	APILat      string `json:"lat"`
	APILon      string `json:"lon"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
}

func New(client *http.Client, lang language.Tag) *Nominatim {
	return &Nominatim{
		lang:     lang,
		http:     client,
		endpoint: APISearchEndpoint,
	}
}

func (n *Nominatim) Name() string {
	return name
}

func (n *Nominatim) Search(ctx context.Context, query string) (geocode.Place, error) {
	var result []SearchResult
	var err error

	values := url.Values{}
	values.Set("format", "jsonv2")
	values.Set("limit", "1")
	values.Set("q", query)
	values.Set("accept-language", n.lang.String())

	code, err := n.http.GetWithTimeout(ctx, n.endpoint, &result, values, APITimeout)
	if err != nil {
		return geocode.Place{}, fmt.Errorf("failed to fetch coordinates from Nominatim API: %w", err)
	}
	if !http.IsSuccess(code) {
		return geocode.Place{}, fmt.Errorf("non-positive response code from Nominatim API: %d", code)
	}

	// Fill the geocode.Place struct
	if len(result) < 1 {
		return geocode.Place{}, fmt.Errorf("%w for %q", geocode.ErrNotFound, query)
	}
	place := geocode.Place{DisplayName: result[0].Name}
	if place.DisplayName == "" {
		place.DisplayName = result[0].DisplayName
	}
	place.Latitude, err = strconv.ParseFloat(result[0].APILat, 64)
	if err != nil {
		return geocode.Place{}, fmt.Errorf("failed to parse latitude from Nominatim API response: %w", err)
	}
	place.Longitude, err = strconv.ParseFloat(result[0].APILon, 64)
	if err != nil {
		return geocode.Place{}, fmt.Errorf("failed to parse longitude from Nominatim API response: %w", err)
	}
	if !place.Valid() {
		return geocode.Place{}, fmt.Errorf("invalid coordinates in Nominatim API response: %f,%f",
			place.Latitude, place.Longitude)
	}

	return place, nil
}
