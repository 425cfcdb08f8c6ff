// Package validation holds the shape of validation outcomes shared by every validator:
// a set of violations keyed by the source they concern.
//
// A Result is a value: validators build one, merge collaborator results into it and
// hand it to the caller. An empty Result means success.
//
// Overlapping sources: a source holds exactly one kind. When two checks report the
// same source, the check that runs last wins (Add overwrites). Validators order their
// checks accordingly and test the precedence explicitly.
package validation

import (
	"maps"
	"slices"
)

// Source names the logical field or rule a violation concerns (e.g. "applicant-email").
type Source string

// Kind is the machine-readable reason a source failed validation.
type Kind string

// Kinds shared across validators. Validators define their domain-specific kinds next
// to their sources.
const (
	KindMissing     Kind = "missing"
	KindWrongLength Kind = "wrong-length"
)

// Violation is a single (source, kind) pair.
type Violation struct {
	Source Source
	Kind   Kind
}

// Result is the set of violations produced by one validation run.
// The zero value is a successful result and is ready to use.
type Result struct {
	violations map[Source]Kind
}

// NewResult builds a result from violations; later entries for the same source win.
func NewResult(violations ...Violation) Result {
	var r Result
	for _, v := range violations {
		r.Add(v.Source, v.Kind)
	}
	return r
}

// FromMap builds a result from a source→kind map.
func FromMap(m map[Source]Kind) Result {
	var r Result
	for source, kind := range m {
		r.Add(source, kind)
	}
	return r
}

// Add records kind for source, replacing any kind already stored for it.
func (r *Result) Add(source Source, kind Kind) {
	if r.violations == nil {
		r.violations = make(map[Source]Kind)
	}
	r.violations[source] = kind
}

// Merge copies every violation of other into r; other's kinds win on overlap.
func (r *Result) Merge(other Result) {
	for source, kind := range other.violations {
		r.Add(source, kind)
	}
}

// IsSuccessful reports whether no violation was recorded.
func (r Result) IsSuccessful() bool {
	return len(r.violations) == 0
}

// Kind returns the kind stored for source.
func (r Result) Kind(source Source) (Kind, bool) {
	kind, ok := r.violations[source]
	return kind, ok
}

// Has reports whether source has a violation.
func (r Result) Has(source Source) bool {
	_, ok := r.violations[source]
	return ok
}

// Violations returns a copy of the source→kind map. Never nil.
func (r Result) Violations() map[Source]Kind {
	out := make(map[Source]Kind, len(r.violations))
	maps.Copy(out, r.violations)
	return out
}

// Sources returns the violated sources in sorted order.
func (r Result) Sources() []Source {
	return slices.Sorted(maps.Keys(r.violations))
}

// Len returns the number of violated sources.
func (r Result) Len() int {
	return len(r.violations)
}

// Equal reports whether both results hold the same source→kind mapping.
// Insertion order never matters.
func (r Result) Equal(other Result) bool {
	return maps.Equal(r.violations, other.violations)
}
