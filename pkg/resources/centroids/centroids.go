// © 2026 Meridian Labs Inc.
//
// SPDX-License-Identifier: Apache-2.0

// Package centroids binds the centroid resource: the cluster center
// computed from a trained cluster and one input data point.
package centroids

import (
	"context"

	"github.com/juju/clock"
	"github.com/juju/errors"
	"github.com/juju/loggo/v2"

	"github.com/meridianml/meridian-go/pkg/resources"
	"github.com/meridianml/meridian-go/pkg/resources/base"
)

var logger = loggo.GetLogger("meridian.resources.centroids")

// Service exposes CRUD operations for centroids. A centroid is created
// from a cluster, so creation can first wait for the cluster to finish
// processing; the clusters binding acts as the readiness collaborator.
type Service struct {
	api   *base.Resource
	deps  base.ReadinessChecker
	clock clock.Clock
}

// New creates the centroid binding. deps checks cluster readiness before
// creation; pass nil to skip the pre-create wait. A nil clk uses the wall
// clock.
func New(client base.TransportClient, deps base.ReadinessChecker, clk clock.Clock) *Service {
	if clk == nil {
		clk = clock.WallClock
	}
	return &Service{
		api:   &base.Resource{Kind: resources.KindCentroid, Client: client},
		deps:  deps,
		clock: clk,
	}
}

// CreateOption adjusts a single Create call.
type CreateOption func(*createOptions)

type createOptions struct {
	policy base.WaitPolicy
}

// WithWaitPolicy overrides the default pre-create wait on the cluster
// (3s interval, 10 attempts). A zero-interval policy disables waiting.
func WithWaitPolicy(policy base.WaitPolicy) CreateOption {
	return func(o *createOptions) {
		o.policy = policy
	}
}

// Create requests a new centroid for the given cluster and input data.
// The cluster reference is validated before any network call. If a wait
// policy applies, the cluster's readiness is polled best-effort first;
// an unready cluster does not abort the creation, the service delivers
// the final verdict. args are forwarded to the API, except that the
// "cluster" and "input_data" keys are always owned by this call.
func (s *Service) Create(ctx context.Context, cluster resources.Ref, inputData, args map[string]any, opts ...CreateOption) (resources.Envelope, error) {
	options := createOptions{policy: base.DefaultWaitPolicy()}
	for _, opt := range opts {
		opt(&options)
	}

	id, err := resolveKind(cluster, resources.KindCluster)
	if err != nil {
		return nil, errors.Trace(err)
	}

	if err := base.Wait(ctx, s.clock, options.policy, s.deps, id); err != nil {
		return nil, errors.Trace(err)
	}

	body := make(map[string]any, len(args)+2)
	for key, value := range args {
		body[key] = value
	}
	if inputData == nil {
		inputData = map[string]any{}
	}
	body["cluster"] = id.String()
	body["input_data"] = inputData

	envelope, err := s.api.CreateResource(ctx, body)
	if err != nil {
		logger.Errorf("error creating centroid: %v", err)
		return nil, errors.Trace(err)
	}
	return envelope, nil
}

// Get retrieves a centroid. Centroids evolve until they reach a terminal
// state; the envelope reflects whatever state was current at call time.
func (s *Service) Get(ctx context.Context, ref resources.Ref) (resources.Envelope, error) {
	return s.api.GetResource(ctx, ref)
}

// List retrieves the caller's centroids, optionally filtered by a query
// fragment such as "limit=10;order_by=created".
func (s *Service) List(ctx context.Context, query string) (resources.Envelope, error) {
	return s.api.ListResources(ctx, query)
}

// Update applies changes to a centroid.
func (s *Service) Update(ctx context.Context, ref resources.Ref, changes map[string]any) (resources.Envelope, error) {
	return s.api.UpdateResource(ctx, ref, changes)
}

// Delete removes a centroid.
func (s *Service) Delete(ctx context.Context, ref resources.Ref) (resources.Envelope, error) {
	return s.api.DeleteResource(ctx, ref)
}

// IsReady re-fetches the centroid and reports whether its status is
// finished.
func (s *Service) IsReady(ctx context.Context, ref resources.Ref) (bool, error) {
	return s.api.IsReady(ctx, ref)
}

// resolveKind normalizes a dependency reference and pins its kind.
func resolveKind(ref resources.Ref, kind resources.Kind) (resources.ID, error) {
	if ref == nil {
		return resources.ID{}, errors.NotValidf("nil %s reference", kind)
	}
	id, err := ref.ResourceID()
	if err != nil {
		logger.Infof("wrong %s id: %v", kind, err)
		return resources.ID{}, errors.Trace(err)
	}
	if id.Kind != kind {
		logger.Infof("wrong %s id %q", kind, id)
		return resources.ID{}, errors.NotValidf("%s id %q", kind, id)
	}
	return id, nil
}
