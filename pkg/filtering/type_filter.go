package filtering

// FieldSpecType is the catalog query field constrained by TypeFilter.
const FieldSpecType = "spec.type"

// TypeFilter narrows the catalog query to entities of a single spec.type,
// e.g. "service" or "website". The remote contribution is exact, so the type
// is never re-checked client-side.
//
// Unlike the other variants, TypeFilter is mutable: SetValue updates the
// filtered type in place so a caller can retarget an active filter without
// constructing a new one. Callers that memoize on filter identity must
// invalidate after an update.
type TypeFilter struct {
	value string
}

var _ EntityFilter = (*TypeFilter)(nil)

// NewTypeFilter creates a filter for the given spec.type.
func NewTypeFilter(value string) *TypeFilter {
	return &TypeFilter{value: value}
}

// Value returns the currently filtered type. It reflects SetValue updates.
func (f *TypeFilter) Value() string {
	return f.value
}

// SetValue replaces the filtered type. Subsequent CatalogFilters calls
// reflect the new value; nothing is cached.
func (f *TypeFilter) SetValue(value string) {
	f.value = value
}

// CatalogFilters constrains the "spec.type" field to the current value.
func (f *TypeFilter) CatalogFilters() QueryParams {
	return QueryParams{FieldSpecType: {f.value}}
}

// Predicate returns nil: the remote contribution is exact.
func (*TypeFilter) Predicate() Predicate {
	return nil
}
