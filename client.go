// © 2026 Meridian Labs Inc.
//
// SPDX-License-Identifier: Apache-2.0

// Package meridian is a client library for the Meridian machine-learning
// platform's REST API. Resource bindings validate identifiers locally,
// issue JSON requests over HTTPS, and return the service's envelopes
// unchanged.
package meridian

import (
	"net/http"

	"github.com/juju/clock"
	"github.com/juju/errors"

	"github.com/meridianml/meridian-go/pkg/config"
	"github.com/meridianml/meridian-go/pkg/resources/centroids"
	"github.com/meridianml/meridian-go/pkg/resources/clusters"
	"github.com/meridianml/meridian-go/pkg/transport/rest"
)

// Client bundles the per-kind resource bindings behind one authenticated
// transport. Bindings hold no local state, so a Client is safe for use
// from multiple goroutines.
type Client struct {
	Clusters  *clusters.Service
	Centroids *centroids.Service
}

// Option adjusts client construction.
type Option func(*options)

type options struct {
	httpClient *http.Client
	clock      clock.Clock
}

// WithHTTPClient substitutes the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *options) {
		o.httpClient = httpClient
	}
}

// WithClock substitutes the clock used for readiness waits. Tests use
// this to avoid real sleeps.
func WithClock(clk clock.Clock) Option {
	return func(o *options) {
		o.clock = clk
	}
}

// New creates a client from explicit configuration.
func New(cfg *config.Config, opts ...Option) (*Client, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	transport, err := rest.NewClientWithHTTP(cfg, o.httpClient)
	if err != nil {
		return nil, errors.Trace(err)
	}

	clusterSvc := clusters.New(transport, o.clock)
	return &Client{
		Clusters:  clusterSvc,
		Centroids: centroids.New(transport, clusterSvc, o.clock),
	}, nil
}

// NewFromEnv creates a client from MERIDIAN_* environment variables.
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, errors.Trace(err)
	}
	return New(cfg, opts...)
}
