// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package testhelper contains helpers shared by the package tests.
package testhelper

import (
	"bytes"
	"io"
	"net/http"
	"os"
	"sync/atomic"
	"testing"
)

// MockRoundTripper is a http.RoundTripper that hands each request to Fn.
type MockRoundTripper struct {
	Fn func(*http.Request) (*http.Response, error)
}

func (m MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.Fn(req)
}

// CountingRoundTripper counts the requests it sees and answers each with Fn.
type CountingRoundTripper struct {
	Fn    func(*http.Request) (*http.Response, error)
	calls atomic.Int64
}

func (c *CountingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	c.calls.Add(1)
	if c.Fn == nil {
		return JSONResponse(http.StatusOK, "{}"), nil
	}
	return c.Fn(req)
}

// Calls returns the number of requests handled so far.
func (c *CountingRoundTripper) Calls() int64 {
	return c.calls.Load()
}

// JSONResponse builds a response with the given status code and JSON body.
func JSONResponse(code int, body string) *http.Response {
	header := make(http.Header)
	header.Set("Content-Type", "application/json")
	return &http.Response{
		StatusCode: code,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     header,
	}
}

// FileResponse builds a response with the given status code and the content of file as body.
func FileResponse(t *testing.T, code int, file string) *http.Response {
	t.Helper()
	data, err := os.Open(file)
	if err != nil {
		t.Fatalf("failed to open JSON response file: %s", err)
	}
	return &http.Response{
		StatusCode: code,
		Body:       data,
		Header:     make(http.Header),
	}
}
