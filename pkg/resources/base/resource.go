// © 2026 Meridian Labs Inc.
//
// SPDX-License-Identifier: Apache-2.0

package base

import (
	"context"
	"net/http"

	"github.com/juju/errors"
	"github.com/juju/loggo/v2"

	"github.com/meridianml/meridian-go/pkg/resources"
	"github.com/meridianml/meridian-go/pkg/transport/rest"
)

var logger = loggo.GetLogger("meridian.resources.base")

// TransportClient issues one REST call per invocation.
type TransportClient interface {
	Do(ctx context.Context, opts rest.RequestOptions) (*rest.Response, error)
}

// ReadinessChecker reports whether a resource finished processing.
type ReadinessChecker interface {
	IsReady(ctx context.Context, ref resources.Ref) (bool, error)
}

// Resource provides the shared CRUD operations every binding delegates to.
// Each method validates identifiers locally, issues exactly one transport
// call, and returns the decoded envelope. No state is kept between calls.
type Resource struct {
	Kind   resources.Kind
	Client TransportClient
}

// CreateResource POSTs a creation request to the kind's collection
// endpoint.
func (r *Resource) CreateResource(ctx context.Context, body map[string]any) (resources.Envelope, error) {
	resp, err := r.Client.Do(ctx, rest.RequestOptions{
		Method: http.MethodPost,
		Path:   r.Kind.Endpoint(),
		Body:   body,
	})
	if err != nil {
		return nil, errors.Annotatef(err, "creating %s", r.Kind)
	}
	return resources.Envelope(resp.Body), nil
}

// GetResource fetches the current envelope for the referenced resource.
func (r *Resource) GetResource(ctx context.Context, ref resources.Ref) (resources.Envelope, error) {
	id, err := r.resolve(ref)
	if err != nil {
		return nil, errors.Trace(err)
	}

	resp, err := r.Client.Do(ctx, rest.RequestOptions{
		Method: http.MethodGet,
		Path:   id.Path(),
	})
	if err != nil {
		return nil, errors.Annotatef(err, "getting %s", id)
	}
	return resources.Envelope(resp.Body), nil
}

// ListResources fetches the kind's collection, optionally filtered by a
// query fragment.
func (r *Resource) ListResources(ctx context.Context, query string) (resources.Envelope, error) {
	resp, err := r.Client.Do(ctx, rest.RequestOptions{
		Method: http.MethodGet,
		Path:   r.Kind.Endpoint(),
		Query:  query,
	})
	if err != nil {
		return nil, errors.Annotatef(err, "listing %s", r.Kind)
	}
	return resources.Envelope(resp.Body), nil
}

// UpdateResource PUTs a partial update to the referenced resource.
func (r *Resource) UpdateResource(ctx context.Context, ref resources.Ref, changes map[string]any) (resources.Envelope, error) {
	id, err := r.resolve(ref)
	if err != nil {
		return nil, errors.Trace(err)
	}

	resp, err := r.Client.Do(ctx, rest.RequestOptions{
		Method: http.MethodPut,
		Path:   id.Path(),
		Body:   changes,
	})
	if err != nil {
		return nil, errors.Annotatef(err, "updating %s", id)
	}
	return resources.Envelope(resp.Body), nil
}

// DeleteResource deletes the referenced resource. The creation call is
// not idempotent remotely, but delete is: a NotFound response still
// reports the typed transport error for the caller to inspect.
func (r *Resource) DeleteResource(ctx context.Context, ref resources.Ref) (resources.Envelope, error) {
	id, err := r.resolve(ref)
	if err != nil {
		return nil, errors.Trace(err)
	}

	resp, err := r.Client.Do(ctx, rest.RequestOptions{
		Method: http.MethodDelete,
		Path:   id.Path(),
	})
	if err != nil {
		return nil, errors.Annotatef(err, "deleting %s", id)
	}
	return resources.Envelope(resp.Body), nil
}

// IsReady re-fetches the envelope and applies the readiness predicate.
// Every call hits the API; readiness is never cached.
func (r *Resource) IsReady(ctx context.Context, ref resources.Ref) (bool, error) {
	envelope, err := r.GetResource(ctx, ref)
	if err != nil {
		return false, errors.Trace(err)
	}
	return envelope.Ready(), nil
}

// resolve normalizes a Ref to an ID of this resource's kind, rejecting
// malformed or wrong-kind identifiers before any network call.
func (r *Resource) resolve(ref resources.Ref) (resources.ID, error) {
	if ref == nil {
		return resources.ID{}, errors.NotValidf("nil %s reference", r.Kind)
	}
	id, err := ref.ResourceID()
	if err != nil {
		logger.Infof("wrong %s id: %v", r.Kind, err)
		return resources.ID{}, errors.Trace(err)
	}
	if id.Kind != r.Kind {
		logger.Infof("wrong %s id %q", r.Kind, id)
		return resources.ID{}, errors.NotValidf("%s id %q", r.Kind, id)
	}
	return id, nil
}
