// © 2026 Meridian Labs Inc.
//
// SPDX-License-Identifier: Apache-2.0

package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/juju/errors"
	"github.com/juju/loggo/v2"

	"github.com/meridianml/meridian-go/pkg/config"
)

var logger = loggo.GetLogger("meridian.transport.rest")

const maxResponseBodySize = 1 << 20 // 1MB

// Connection pooling limits to prevent resource exhaustion when many
// resource bindings share one client.
const (
	defaultMaxIdleConns        = 100
	defaultMaxIdleConnsPerHost = 10
	defaultMaxConnsPerHost     = 10
	defaultIdleConnTimeout     = 60 * time.Second
)

// Client issues authenticated JSON requests against the Meridian API.
// Credentials are appended to every URL as a query fragment; the API does
// not use auth headers.
type Client struct {
	httpClient *http.Client
	endpoint   string
	authQuery  string
}

// RequestOptions defines options for an API request.
type RequestOptions struct {
	Method string
	Path   string // resource path relative to the endpoint, e.g. "/centroid"
	Query  string // extra query fragment appended after the credentials
	Body   any    // marshaled to JSON when non-nil
}

// Response represents a decoded API response.
type Response struct {
	StatusCode int
	Body       map[string]any
	BodyArray  []any
}

// NewClient creates a new API client from config.
func NewClient(cfg *config.Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Trace(err)
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        defaultMaxIdleConns,
				MaxIdleConnsPerHost: defaultMaxIdleConnsPerHost,
				MaxConnsPerHost:     defaultMaxConnsPerHost,
				IdleConnTimeout:     defaultIdleConnTimeout,
			},
		},
		endpoint:  strings.TrimRight(cfg.Endpoint, "/"),
		authQuery: cfg.AuthQuery(),
	}, nil
}

// NewClientWithHTTP creates a client backed by a caller-supplied HTTP
// client. Used by tests and callers that need custom transports.
func NewClientWithHTTP(cfg *config.Config, httpClient *http.Client) (*Client, error) {
	c, err := NewClient(cfg)
	if err != nil {
		return nil, errors.Trace(err)
	}
	if httpClient != nil {
		c.httpClient = httpClient
	}
	return c, nil
}

// Do executes a single API request and decodes the JSON response.
func (c *Client) Do(ctx context.Context, opts RequestOptions) (*Response, error) {
	url := c.buildURL(opts.Path, opts.Query)

	var body io.Reader
	if opts.Body != nil {
		data, err := json.Marshal(opts.Body)
		if err != nil {
			return nil, NewError(ErrorCodeInvalidInput, "encoding request body", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, opts.Method, url, body)
	if err != nil {
		return nil, NewError(ErrorCodeInvalidInput, "building request", err)
	}
	if opts.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	logger.Tracef("%s %s%s", opts.Method, c.endpoint, opts.Path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, NewError(ErrorCodeUnknown, "request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		return nil, NewError(ErrorCodeUnknown, "reading response body", err)
	}

	if code := ClassifyHTTPStatus(resp.StatusCode); code != ErrorCodeNone {
		return nil, &Error{
			Code:     code,
			Message:  errorMessage(raw, resp.StatusCode),
			HTTPCode: resp.StatusCode,
		}
	}

	return parseResponse(resp.StatusCode, raw)
}

// buildURL assembles endpoint + path + credentials + optional caller query.
// The credential fragment uses semicolon delimiters, so fragments are
// concatenated rather than encoded through url.Values.
func (c *Client) buildURL(path, query string) string {
	url := c.endpoint + path + "?" + c.authQuery
	if query != "" {
		url += query
	}
	return url
}

// parseResponse converts a raw JSON payload to a Response. The API returns
// an object for single resources and an object-or-array for listings.
func parseResponse(statusCode int, raw []byte) (*Response, error) {
	resp := &Response{StatusCode: statusCode}
	if len(raw) == 0 {
		return resp, nil
	}

	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err == nil {
		resp.Body = obj
		return resp, nil
	}

	var arr []any
	if err := json.Unmarshal(raw, &arr); err == nil {
		resp.BodyArray = arr
		return resp, nil
	}

	return nil, NewError(ErrorCodeUnknown, "undecodable response body", nil)
}

// errorMessage extracts a human-readable message from an error payload,
// falling back to the HTTP status text.
func errorMessage(raw []byte, statusCode int) string {
	var payload struct {
		Status struct {
			Message string `json:"message"`
		} `json:"status"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Status.Message != "" {
		return payload.Status.Message
	}
	return http.StatusText(statusCode)
}
