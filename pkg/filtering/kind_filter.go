package filtering

// FieldKind is the catalog query field constrained by KindFilter.
const FieldKind = "kind"

// KindFilter narrows the catalog query to entities of a single kind. The
// remote contribution is exact, so the kind is never re-checked client-side.
// The filter is immutable: its behavior is fully determined at construction.
type KindFilter struct {
	kind string
}

var _ EntityFilter = KindFilter{}

// NewKindFilter creates a filter for the given entity kind, e.g.
// "component" or "api".
func NewKindFilter(kind string) KindFilter {
	return KindFilter{kind: kind}
}

// Kind returns the kind the filter was constructed with.
func (f KindFilter) Kind() string {
	return f.kind
}

// CatalogFilters constrains the "kind" field to the stored kind.
func (f KindFilter) CatalogFilters() QueryParams {
	return QueryParams{FieldKind: {f.kind}}
}

// Predicate returns nil: the remote contribution is exact.
func (KindFilter) Predicate() Predicate {
	return nil
}
