// © 2026 Meridian Labs Inc.
//
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"context"
	"os"
	"sync"

	"github.com/meridianml/meridian-go/pkg/config"
	"github.com/meridianml/meridian-go/pkg/transport/rest"
)

// Environment variables consulted for live-API tests.
const (
	EnvUsername = "MERIDIAN_USERNAME"
	EnvAPIKey   = "MERIDIAN_API_KEY"
	EnvEndpoint = "MERIDIAN_ENDPOINT"
)

var (
	// Meridian API configuration - read from environment variables
	Username = os.Getenv(EnvUsername)
	APIKey   = os.Getenv(EnvAPIKey)
	Endpoint = getEnvOrDefault(EnvEndpoint, config.DefaultEndpoint)
)

// getEnvOrDefault returns the environment variable value or the default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// IsConfigured returns true if live-API credentials are set
func IsConfigured() bool {
	return Username != "" && APIKey != ""
}

// SkipIfNotConfigured skips the test if live-API credentials are not set
func SkipIfNotConfigured(t interface{ Skip(...any) }) {
	if !IsConfigured() {
		t.Skip("Skipping test: Meridian credentials not configured. Set " + EnvUsername + " and " + EnvAPIKey + " environment variables.")
	}
}

// TestConfig returns a config pointed at the given endpoint with dummy
// credentials, bypassing the environment.
func TestConfig(endpoint string) *config.Config {
	return &config.Config{
		Endpoint:    endpoint,
		HTTPTimeout: config.DefaultHTTPTimeout,
		Username:    "tester",
		APIKey:      "0123456789abcdef",
	}
}

// FakeTransport records every request and replays scripted responses.
// Responses are consumed in order; the final one is repeated once the
// script runs out. A non-nil Err is returned for every call instead.
type FakeTransport struct {
	mu        sync.Mutex
	Calls     []rest.RequestOptions
	Responses []*rest.Response
	Err       error
}

// Do implements the transport interface consumed by resource bindings.
func (f *FakeTransport) Do(_ context.Context, opts rest.RequestOptions) (*rest.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Calls = append(f.Calls, opts)
	if f.Err != nil {
		return nil, f.Err
	}
	if len(f.Responses) == 0 {
		return &rest.Response{StatusCode: 200, Body: map[string]any{}}, nil
	}
	resp := f.Responses[0]
	if len(f.Responses) > 1 {
		f.Responses = f.Responses[1:]
	}
	return resp, nil
}

// CallCount returns how many requests the fake has served.
func (f *FakeTransport) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Calls)
}

// CallsTo returns the recorded requests whose path starts with prefix.
func (f *FakeTransport) CallsTo(prefix string) []rest.RequestOptions {
	f.mu.Lock()
	defer f.mu.Unlock()

	var matched []rest.RequestOptions
	for _, call := range f.Calls {
		if len(call.Path) >= len(prefix) && call.Path[:len(prefix)] == prefix {
			matched = append(matched, call)
		}
	}
	return matched
}

// StatusEnvelope builds a resource envelope carrying the given identifier
// and status code, in the shape the API returns.
func StatusEnvelope(id string, code int) map[string]any {
	return map[string]any{
		"resource": id,
		"status":   map[string]any{"code": float64(code)},
	}
}

// EnvelopeResponse wraps an envelope as a successful transport response.
func EnvelopeResponse(body map[string]any) *rest.Response {
	return &rest.Response{StatusCode: 200, Body: body}
}
