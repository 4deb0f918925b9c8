// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package http

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"runtime"
	"time"

	"github.com/wneessen/smart-dashboard/internal/logger"
)

// maxBodySize limits how much of a response body is decoded
const maxBodySize = 1 << 20

var (
	// version is the version of the application (will be set at build time)
	version = "dev"
	// UserAgent is the User-Agent that the HTTP client sends with API requests
	UserAgent = fmt.Sprintf("Mozilla/5.0 (%s; %s) smart-dashboard/%s", runtime.GOOS, runtime.GOARCH, version)

	ErrNonPointerTarget = errors.New("target must be a non-nil pointer")
	ErrEmptyBody        = errors.New("empty response body")
)

// Client wraps the Go stdlib http.Client with JSON helpers
type Client struct {
	*http.Client
	logger *logger.Logger
}

// New returns a new HTTP client. It sets no client-wide timeout; requests are bounded
// by the deadline of the context they are made with.
func New(log *logger.Logger) *Client {
	tlsConfig := &tls.Config{
		MinVersion: tls.VersionTLS12,
	}
	httpTransport := &http.Transport{TLSClientConfig: tlsConfig, Proxy: http.ProxyFromEnvironment}
	httpClient := &http.Client{Transport: httpTransport}
	return &Client{httpClient, log}
}

// GetWithTimeout is Get bounded by timeout in addition to the deadline of ctx.
func (h *Client) GetWithTimeout(ctx context.Context, endpoint string, target any, query url.Values,
	timeout time.Duration,
) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return h.Get(ctx, endpoint, target, query)
}

// Get performs a HTTP GET request for the given URL and JSON-decodes the response into
// target. The status code is returned even if decoding fails, so callers can tell API
// errors from transport errors. The body is decoded regardless of the status code since
// most APIs describe their errors in JSON.
func (h *Client) Get(ctx context.Context, endpoint string, target any, query url.Values) (int, error) {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return 0, ErrNonPointerTarget
	}

	reqURL, err := url.Parse(endpoint)
	if err != nil {
		return 0, fmt.Errorf("failed to parse URL: %w", err)
	}
	if len(query) > 0 {
		reqURL.RawQuery = query.Encode()
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return 0, fmt.Errorf("failed create new HTTP request with context: %w", err)
	}
	request.Header.Set("User-Agent", UserAgent)
	request.Header.Set("Accept", "application/json")

	response, err := h.Do(request)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return 0, err
		}
		return 0, fmt.Errorf("failed to perform HTTP request: %w", err)
	}
	if response == nil {
		return 0, errors.New("nil response received")
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			h.logger.Error("failed to close HTTP response body", logger.Err(err))
		}
	}(response.Body)

	if err = json.NewDecoder(io.LimitReader(response.Body, maxBodySize)).Decode(target); err != nil {
		if errors.Is(err, io.EOF) {
			return response.StatusCode, ErrEmptyBody
		}
		return response.StatusCode, fmt.Errorf("failed to decode JSON: %w", err)
	}

	return response.StatusCode, nil
}

// IsSuccess reports whether code is a 2xx HTTP status code.
func IsSuccess(code int) bool {
	return code >= http.StatusOK && code < http.StatusMultipleChoices
}
