package filtering

import (
	"github.com/aakanksha-arun/backstage/pkg/catalog"
)

// TagFilter keeps only entities carrying every required tag. Tags are not
// narrowed server-side, so the filter contributes no catalog parameters and
// is evaluated entirely client-side.
//
// Matching is exact string equality. An entity without tags fails any
// non-empty requirement; an empty requirement passes every entity. Order and
// duplicates in the requirement list do not affect the result.
type TagFilter struct {
	tags []string
}

var _ EntityFilter = TagFilter{}

// NewTagFilter creates a filter requiring every given tag to be present.
func NewTagFilter(tags ...string) TagFilter {
	required := make([]string, len(tags))
	copy(required, tags)
	return TagFilter{tags: required}
}

// Tags returns a copy of the required tag list.
func (f TagFilter) Tags() []string {
	tags := make([]string, len(f.tags))
	copy(tags, f.tags)
	return tags
}

// CatalogFilters returns nil: tag filtering is purely client-side.
func (TagFilter) CatalogFilters() QueryParams {
	return nil
}

// Predicate requires every tag in the filter to be present on the entity.
func (f TagFilter) Predicate() Predicate {
	return f.filterEntity
}

func (f TagFilter) filterEntity(entity catalog.Entity, _ Environment) bool {
	for _, tag := range f.tags {
		if !entity.HasTag(tag) {
			return false
		}
	}
	return true
}
