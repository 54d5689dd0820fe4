// © 2026 Meridian Labs Inc.
//
// SPDX-License-Identifier: Apache-2.0

package resources

import (
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelopeResourceID(t *testing.T) {
	envelope := Envelope{"resource": "centroid/" + validName}
	id, err := envelope.ResourceID()
	require.NoError(t, err)
	assert.Equal(t, KindCentroid, id.Kind)
	assert.Equal(t, validName, id.Name)
}

func TestEnvelopeResourceIDMissing(t *testing.T) {
	for _, envelope := range []Envelope{
		{},
		{"resource": 42},
		{"resource": ""},
		{"resource": "not-an-id"},
	} {
		_, err := envelope.ResourceID()
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.NotValid))
	}
}

func TestEnvelopeStatusCode(t *testing.T) {
	tests := []struct {
		name     string
		envelope Envelope
		want     Status
	}{
		{"nested code", Envelope{"status": map[string]any{"code": float64(5)}}, StatusFinished},
		{"nested in progress", Envelope{"status": map[string]any{"code": float64(3)}}, StatusInProgress},
		{"bare number", Envelope{"status": float64(-1)}, StatusFaulty},
		{"absent", Envelope{}, StatusUnknown},
		{"malformed", Envelope{"status": "finished"}, StatusUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.envelope.StatusCode())
		})
	}
}

func TestEnvelopeReady(t *testing.T) {
	assert.True(t, Envelope{"status": map[string]any{"code": float64(5)}}.Ready())
	assert.False(t, Envelope{"status": map[string]any{"code": float64(-1)}}.Ready())
	assert.False(t, Envelope{}.Ready())
}

func TestStatusTerminal(t *testing.T) {
	assert.True(t, StatusFinished.Terminal())
	assert.True(t, StatusFaulty.Terminal())
	assert.False(t, StatusInProgress.Terminal())
	assert.False(t, StatusUnknown.Terminal())
}
