// © 2026 Meridian Labs Inc.
//
// SPDX-License-Identifier: Apache-2.0

package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianml/meridian-go/pkg/config"
)

func testConfig(endpoint string) *config.Config {
	return &config.Config{
		Endpoint:    endpoint,
		HTTPTimeout: 5 * time.Second,
		Username:    "tester",
		APIKey:      "secret",
	}
}

func TestDoAppendsCredentials(t *testing.T) {
	var gotURL string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotURL = r.URL.String()
		_, _ = w.Write([]byte(`{"resource": "centroid/aaaaaaaaaaaaaaaaaaaaaaaa"}`))
	}))
	defer server.Close()

	client, err := NewClient(testConfig(server.URL))
	require.NoError(t, err)

	resp, err := client.Do(context.Background(), RequestOptions{
		Method: http.MethodGet,
		Path:   "/centroid/aaaaaaaaaaaaaaaaaaaaaaaa",
		Query:  "fields=resource;",
	})
	require.NoError(t, err)

	assert.Equal(t, "/centroid/aaaaaaaaaaaaaaaaaaaaaaaa?username=tester;api_key=secret;fields=resource;", gotURL)
	assert.Equal(t, "centroid/aaaaaaaaaaaaaaaaaaaaaaaa", resp.Body["resource"])
}

func TestDoPostsJSONBody(t *testing.T) {
	var (
		gotMethod      string
		gotContentType string
		gotRequestID   string
		gotBody        map[string]any
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		gotRequestID = r.Header.Get("X-Request-Id")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"resource": "centroid/bbbbbbbbbbbbbbbbbbbbbbbb"}`))
	}))
	defer server.Close()

	client, err := NewClient(testConfig(server.URL))
	require.NoError(t, err)

	resp, err := client.Do(context.Background(), RequestOptions{
		Method: http.MethodPost,
		Path:   "/centroid",
		Body:   map[string]any{"cluster": "cluster/aaaaaaaaaaaaaaaaaaaaaaaa"},
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "application/json", gotContentType)
	assert.NotEmpty(t, gotRequestID)
	assert.Equal(t, map[string]any{"cluster": "cluster/aaaaaaaaaaaaaaaaaaaaaaaa"}, gotBody)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestDoDecodesArrayBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[1, 2, 3]`))
	}))
	defer server.Close()

	client, err := NewClient(testConfig(server.URL))
	require.NoError(t, err)

	resp, err := client.Do(context.Background(), RequestOptions{Method: http.MethodGet, Path: "/centroid"})
	require.NoError(t, err)

	assert.Nil(t, resp.Body)
	assert.Len(t, resp.BodyArray, 3)
}

func TestDoClassifiesHTTPErrors(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		payload    string
		wantCode   ErrorCode
		wantMsg    string
	}{
		{
			name:       "not found with service message",
			statusCode: 404,
			payload:    `{"status": {"code": -1, "message": "id does not exist"}}`,
			wantCode:   ErrorCodeResourceNotFound,
			wantMsg:    "id does not exist",
		},
		{
			name:       "internal error without payload",
			statusCode: 500,
			payload:    ``,
			wantCode:   ErrorCodeInternalError,
			wantMsg:    "Internal Server Error",
		},
		{
			name:       "throttled",
			statusCode: 429,
			payload:    `{}`,
			wantCode:   ErrorCodeThrottling,
			wantMsg:    "Too Many Requests",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.payload))
			}))
			defer server.Close()

			client, err := NewClient(testConfig(server.URL))
			require.NoError(t, err)

			_, err = client.Do(context.Background(), RequestOptions{Method: http.MethodGet, Path: "/centroid"})
			require.Error(t, err)

			var transportErr *Error
			require.True(t, errors.As(err, &transportErr))
			assert.Equal(t, tt.wantCode, transportErr.Code)
			assert.Equal(t, tt.statusCode, transportErr.HTTPCode)
			assert.Equal(t, tt.wantMsg, transportErr.Message)
		})
	}
}

func TestNewClientRejectsInvalidConfig(t *testing.T) {
	_, err := NewClient(&config.Config{Endpoint: "https://example.com"})
	require.Error(t, err)
}
