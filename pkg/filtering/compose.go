package filtering

import (
	"github.com/aakanksha-arun/backstage/pkg/catalog"
)

// Composite combines any number of filters into one remote request fragment
// and one client-side predicate chain. It satisfies EntityFilter itself, so
// composites nest.
type Composite struct {
	params     QueryParams
	predicates []Predicate
}

var _ EntityFilter = Composite{}

// Compose merges the catalog parameters of all given filters (colliding
// fields union their values) and collects their predicates for AND-chained
// client-side evaluation. Filters lacking a capability simply contribute
// nothing to that side. Nil filters are ignored.
func Compose(filters ...EntityFilter) Composite {
	var composite Composite
	fragments := make([]QueryParams, 0, len(filters))
	for _, filter := range filters {
		if filter == nil {
			continue
		}
		if params := filter.CatalogFilters(); params != nil {
			fragments = append(fragments, params)
		}
		if predicate := filter.Predicate(); predicate != nil {
			composite.predicates = append(composite.predicates, predicate)
		}
	}
	composite.params = QueryParams{}.Merge(fragments...)
	return composite
}

// CatalogFilters returns the merged remote fragment, or nil when no composed
// filter narrows server-side.
func (c Composite) CatalogFilters() QueryParams {
	return c.params
}

// Predicate returns the AND chain over all composed predicates, or nil when
// no composed filter needs a client-side check.
func (c Composite) Predicate() Predicate {
	if len(c.predicates) == 0 {
		return nil
	}
	predicates := c.predicates
	return func(entity catalog.Entity, env Environment) bool {
		for _, predicate := range predicates {
			if !predicate(entity, env) {
				return false
			}
		}
		return true
	}
}

// FilterEntity reports whether the entity passes every composed predicate.
// Entities are only ever read, never mutated.
func (c Composite) FilterEntity(entity catalog.Entity, env Environment) bool {
	for _, predicate := range c.predicates {
		if !predicate(entity, env) {
			return false
		}
	}
	return true
}

// Apply runs the client-side predicate chain over already-fetched entities
// and returns the ones that pass. The input slice is not modified.
func (c Composite) Apply(entities []catalog.Entity, env Environment) []catalog.Entity {
	if len(c.predicates) == 0 {
		return entities
	}
	kept := make([]catalog.Entity, 0, len(entities))
	for _, entity := range entities {
		if c.FilterEntity(entity, env) {
			kept = append(kept, entity)
		}
	}
	return kept
}
