// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package geocode

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
)

type cacheKey struct {
	Provider string
	Query    string
}

type cacheEntry struct {
	Place  Place
	Found  bool
	Expiry time.Time
}

// CachedGeocoder remembers lookups of the wrapped Geocoder. Places that were not found
// are remembered for the miss TTL so a misspelled location is not queried on every
// weather update.
type CachedGeocoder struct {
	coder   Geocoder
	ttlHit  time.Duration
	ttlMiss time.Duration
	now     func() time.Time

	mu    sync.RWMutex
	cache map[cacheKey]cacheEntry
}

func NewCachedGeocoder(coder Geocoder, ttlHit, ttlMiss time.Duration) *CachedGeocoder {
	return &CachedGeocoder{
		coder:   coder,
		ttlHit:  ttlHit,
		ttlMiss: ttlMiss,
		now:     time.Now,
		cache:   make(map[cacheKey]cacheEntry),
	}
}

func (c *CachedGeocoder) Name() string {
	return "geocoder cache using " + c.coder.Name()
}

func (c *CachedGeocoder) Search(ctx context.Context, query string) (Place, error) {
	key := newKey(c.coder.Name(), query)

	c.mu.RLock()
	entry, ok := c.cache[key]
	if ok && c.now().Before(entry.Expiry) {
		c.mu.RUnlock()
		if !entry.Found {
			return Place{}, ErrNotFound
		}
		place := entry.Place
		place.CacheHit = true
		return place, nil
	}
	c.mu.RUnlock()

	place, err := c.coder.Search(ctx, query)
	found := err == nil
	if err != nil && !errors.Is(err, ErrNotFound) {
		return place, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	ttl := c.ttlHit
	if !found {
		ttl = c.ttlMiss
	}
	c.cache[key] = cacheEntry{
		Place:  place,
		Found:  found,
		Expiry: c.now().Add(ttl),
	}

	return place, err
}

func newKey(provider, query string) cacheKey {
	return cacheKey{
		Provider: provider,
		Query:    strings.ToLower(strings.Join(strings.Fields(query), " ")),
	}
}
