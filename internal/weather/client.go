// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package weather

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/wneessen/smart-dashboard/internal/logger"
)

const (
	// DefaultTimeout bounds a single refresh.
	DefaultTimeout = time.Second * 10

	maxMessageLen = 96
)

// Client refreshes weather snapshots from a provider.
type Client struct {
	provider Provider
	timeout  time.Duration
	logger   *logger.Logger
	now      func() time.Time
}

// NewClient returns a Client for provider. A nil provider yields a disabled client
// whose Refresh never performs any request.
func NewClient(provider Provider, timeout time.Duration, log *logger.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		provider: provider,
		timeout:  timeout,
		logger:   log,
		now:      time.Now,
	}
}

// Enabled reports whether the client has a provider to query.
func (c *Client) Enabled() bool {
	return c.provider != nil
}

// Refresh queries the provider once. Failures never leave the client: they are logged
// and returned as an error snapshot.
func (c *Client) Refresh(ctx context.Context) (snap Snapshot) {
	if c.provider == nil {
		return Disabled()
	}

	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("weather provider panicked", slog.String("provider", c.provider.Name()),
				slog.Any("panic", r))
			snap = Failed("internal provider error", c.now())
		}
	}()

	ctxFetch, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	cond, err := c.provider.Current(ctxFetch)
	if err == nil && cond == nil {
		err = fmt.Errorf("provider %s returned no conditions", c.provider.Name())
	}
	if err != nil {
		c.logger.Error("failed to refresh weather data", slog.String("provider", c.provider.Name()),
			logger.Err(err))
		return Failed(shortMessage(err), c.now())
	}

	c.logger.Debug("weather data refreshed", slog.String("provider", c.provider.Name()),
		slog.Float64("temp_f", cond.Temperature), slog.String("condition", cond.Condition))
	return Ready(*cond, c.now())
}

func shortMessage(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "request timed out"
	case errors.Is(err, context.Canceled):
		return "request cancelled"
	case errors.Is(err, ErrMissingField):
		return "incomplete weather data"
	}
	msg := []rune(err.Error())
	if len(msg) > maxMessageLen {
		return string(msg[:maxMessageLen-3]) + "..."
	}
	return string(msg)
}
