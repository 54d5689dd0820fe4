// © 2026 Meridian Labs Inc.
//
// SPDX-License-Identifier: Apache-2.0

package resources

import (
	"github.com/juju/errors"
)

// Ref is anything that can name a resource: a bare ID or a previously
// fetched Envelope. Operations normalize a Ref to an ID before dispatch.
type Ref interface {
	ResourceID() (ID, error)
}

// Envelope is the JSON object the API returns for a resource. It carries
// at minimum a "resource" field (the resource's own identifier) and a
// "status" field consulted for readiness. Envelopes are transient: they
// describe the resource at the time of the call and are never cached.
type Envelope map[string]any

// ResourceID implements Ref by extracting the "resource" field.
func (e Envelope) ResourceID() (ID, error) {
	raw, ok := e["resource"].(string)
	if !ok || raw == "" {
		return ID{}, errors.NotValidf("envelope without resource field")
	}
	id, err := ParseID(raw)
	if err != nil {
		return ID{}, errors.Trace(err)
	}
	return id, nil
}

// StatusCode returns the resource's processing status, or StatusUnknown
// when the envelope has none. The API nests the code under "status", but
// partial envelopes with a bare numeric status are tolerated.
func (e Envelope) StatusCode() Status {
	switch status := e["status"].(type) {
	case map[string]any:
		if code, ok := status["code"].(float64); ok {
			return Status(code)
		}
	case float64:
		return Status(status)
	}
	return StatusUnknown
}

// Ready reports whether processing reached the terminal success state.
func (e Envelope) Ready() bool {
	return e.StatusCode() == StatusFinished
}
