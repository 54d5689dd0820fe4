// © 2026 Meridian Labs Inc.
//
// SPDX-License-Identifier: Apache-2.0

package resources

import (
	"regexp"
	"strings"

	"github.com/juju/errors"
)

// Kind names a resource type exposed by the API.
type Kind string

const (
	KindSource     Kind = "source"
	KindDataset    Kind = "dataset"
	KindModel      Kind = "model"
	KindEnsemble   Kind = "ensemble"
	KindCluster    Kind = "cluster"
	KindCentroid   Kind = "centroid"
	KindPrediction Kind = "prediction"
	KindEvaluation Kind = "evaluation"
)

// Kinds lists every resource kind the API serves, in dependency order.
var Kinds = []Kind{
	KindSource,
	KindDataset,
	KindModel,
	KindEnsemble,
	KindCluster,
	KindCentroid,
	KindPrediction,
	KindEvaluation,
}

// Identifiers are "<kind>/<24 alphanumeric chars>".
var idPatterns = func() map[Kind]*regexp.Regexp {
	patterns := make(map[Kind]*regexp.Regexp, len(Kinds))
	for _, kind := range Kinds {
		patterns[kind] = regexp.MustCompile("^" + string(kind) + "/[a-zA-Z0-9]{24}$")
	}
	return patterns
}()

// Endpoint returns the collection path for the kind, e.g. "/centroid".
func (k Kind) Endpoint() string {
	return "/" + string(k)
}

// Known reports whether the kind is served by the API.
func (k Kind) Known() bool {
	_, ok := idPatterns[k]
	return ok
}

// ID is a validated resource identifier.
type ID struct {
	Kind Kind
	Name string
}

// ParseID splits and validates a raw identifier of any known kind.
func ParseID(raw string) (ID, error) {
	kind, name, ok := strings.Cut(raw, "/")
	if !ok {
		return ID{}, errors.NotValidf("resource id %q", raw)
	}
	id := ID{Kind: Kind(kind), Name: name}
	if err := id.Validate(); err != nil {
		return ID{}, errors.Trace(err)
	}
	return id, nil
}

// ParseKindID parses a raw identifier and requires it to be of the given
// kind. Malformed or wrong-kind identifiers are rejected before any
// network call is made.
func ParseKindID(kind Kind, raw string) (ID, error) {
	id, err := ParseID(raw)
	if err != nil {
		return ID{}, errors.Trace(err)
	}
	if id.Kind != kind {
		return ID{}, errors.NotValidf("%s id %q", kind, raw)
	}
	return id, nil
}

// Validate checks the identifier against its kind's pattern.
func (id ID) Validate() error {
	pattern, ok := idPatterns[id.Kind]
	if !ok {
		return errors.NotValidf("resource kind %q", id.Kind)
	}
	if !pattern.MatchString(id.String()) {
		return errors.NotValidf("%s id %q", id.Kind, id.String())
	}
	return nil
}

// String renders the wire form "<kind>/<name>".
func (id ID) String() string {
	return string(id.Kind) + "/" + id.Name
}

// Path returns the URL path for the single resource, e.g. "/centroid/abc".
func (id ID) Path() string {
	return "/" + id.String()
}

// ResourceID implements Ref.
func (id ID) ResourceID() (ID, error) {
	if err := id.Validate(); err != nil {
		return ID{}, errors.Trace(err)
	}
	return id, nil
}
