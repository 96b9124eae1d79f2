package filtering

import (
	"github.com/aakanksha-arun/backstage/pkg/catalog"
)

// Predicate is a client-side entity test. Predicates are pure functions of
// their arguments: no side effects, no mutation of the entity or the
// environment.
type Predicate func(entity catalog.Entity, env Environment) bool

// EntityFilter is the contract implemented by every filter variant.
//
// The two methods are independently optional capabilities, signalled by a
// nil return. A filter returning a nil parameter map contributes no remote
// narrowing and must be evaluated entirely client-side; a filter returning a
// nil predicate declares its remote contribution exact, needing no
// client-side re-check. Every variant supplies at least one of the two.
type EntityFilter interface {
	// CatalogFilters returns the filter's contribution to the remote catalog
	// query, or nil. The result is a pure function of the filter's stored
	// value and never depends on the evaluation environment.
	CatalogFilters() QueryParams

	// Predicate returns the filter's client-side test, or nil.
	Predicate() Predicate
}

// Environment is the per-evaluation context for client-side predicates. The
// caller constructs one per filtering pass; filters only ever read it, so a
// single Environment may be shared across many concurrent evaluations.
type Environment struct {
	// User is the entity of the viewer on whose behalf filtering runs.
	// Nil means anonymous.
	User *catalog.Entity

	// IsStarred reports whether the viewer has starred the entity. A nil
	// function means nothing is starred.
	IsStarred func(catalog.Entity) bool

	// IsOwner reports whether the given user owns the entity. When nil,
	// catalog.IsOwnedBy is consulted instead.
	IsOwner func(user, entity catalog.Entity) bool
}

func (env Environment) starred(entity catalog.Entity) bool {
	if env.IsStarred == nil {
		return false
	}
	return env.IsStarred(entity)
}

func (env Environment) ownedByUser(entity catalog.Entity) bool {
	if env.User == nil {
		return false
	}
	if env.IsOwner != nil {
		return env.IsOwner(*env.User, entity)
	}
	return catalog.IsOwnedBy(*env.User, entity)
}
