// © 2026 Meridian Labs Inc.
//
// SPDX-License-Identifier: Apache-2.0

// Package clusters binds the cluster resource, the trained model that
// centroids are computed from. It doubles as the readiness collaborator
// consulted before centroid creation.
package clusters

import (
	"context"

	"github.com/juju/clock"
	"github.com/juju/errors"
	"github.com/juju/loggo/v2"

	"github.com/meridianml/meridian-go/pkg/resources"
	"github.com/meridianml/meridian-go/pkg/resources/base"
)

var logger = loggo.GetLogger("meridian.resources.clusters")

// Service exposes CRUD operations for clusters. Clusters are trained
// from datasets, so creation can first wait for the dataset to finish.
type Service struct {
	api   *base.Resource
	deps  base.ReadinessChecker
	clock clock.Clock
}

// New creates the cluster binding. The dataset readiness collaborator is
// derived from the same transport; a nil clk uses the wall clock.
func New(client base.TransportClient, clk clock.Clock) *Service {
	if clk == nil {
		clk = clock.WallClock
	}
	return &Service{
		api:   &base.Resource{Kind: resources.KindCluster, Client: client},
		deps:  &base.Resource{Kind: resources.KindDataset, Client: client},
		clock: clk,
	}
}

// CreateOption adjusts a single Create call.
type CreateOption func(*createOptions)

type createOptions struct {
	policy base.WaitPolicy
}

// WithWaitPolicy overrides the default pre-create wait on the dataset.
func WithWaitPolicy(policy base.WaitPolicy) CreateOption {
	return func(o *createOptions) {
		o.policy = policy
	}
}

// Create requests a new cluster trained from the given dataset. The wait
// on dataset readiness is best effort, mirroring centroid creation.
func (s *Service) Create(ctx context.Context, dataset resources.Ref, args map[string]any, opts ...CreateOption) (resources.Envelope, error) {
	options := createOptions{policy: base.DefaultWaitPolicy()}
	for _, opt := range opts {
		opt(&options)
	}

	id, err := resolveDataset(dataset)
	if err != nil {
		return nil, errors.Trace(err)
	}

	if err := base.Wait(ctx, s.clock, options.policy, s.deps, id); err != nil {
		return nil, errors.Trace(err)
	}

	body := make(map[string]any, len(args)+1)
	for key, value := range args {
		body[key] = value
	}
	body["dataset"] = id.String()

	envelope, err := s.api.CreateResource(ctx, body)
	if err != nil {
		logger.Errorf("error creating cluster: %v", err)
		return nil, errors.Trace(err)
	}
	return envelope, nil
}

// Get retrieves a cluster.
func (s *Service) Get(ctx context.Context, ref resources.Ref) (resources.Envelope, error) {
	return s.api.GetResource(ctx, ref)
}

// List retrieves the caller's clusters.
func (s *Service) List(ctx context.Context, query string) (resources.Envelope, error) {
	return s.api.ListResources(ctx, query)
}

// Update applies changes to a cluster.
func (s *Service) Update(ctx context.Context, ref resources.Ref, changes map[string]any) (resources.Envelope, error) {
	return s.api.UpdateResource(ctx, ref, changes)
}

// Delete removes a cluster.
func (s *Service) Delete(ctx context.Context, ref resources.Ref) (resources.Envelope, error) {
	return s.api.DeleteResource(ctx, ref)
}

// IsReady re-fetches the cluster and reports whether training finished.
// Centroid creation polls this before submitting.
func (s *Service) IsReady(ctx context.Context, ref resources.Ref) (bool, error) {
	return s.api.IsReady(ctx, ref)
}

func resolveDataset(ref resources.Ref) (resources.ID, error) {
	if ref == nil {
		return resources.ID{}, errors.NotValidf("nil dataset reference")
	}
	id, err := ref.ResourceID()
	if err != nil {
		logger.Infof("wrong dataset id: %v", err)
		return resources.ID{}, errors.Trace(err)
	}
	if id.Kind != resources.KindDataset {
		logger.Infof("wrong dataset id %q", id)
		return resources.ID{}, errors.NotValidf("dataset id %q", id)
	}
	return id, nil
}
