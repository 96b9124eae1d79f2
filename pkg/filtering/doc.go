// Package filtering narrows a set of catalog entities through two
// complementary mechanisms: catalog filter parameters that reduce a remote
// query's result set before transfer, and client-side predicates applied to
// entities already fetched, for conditions the backend cannot evaluate
// (per-viewer state such as "starred", or computed relationships such as
// ownership).
//
// # Filter contract
//
// Every filter implements EntityFilter, which exposes two independently
// optional capabilities:
//
//   - CatalogFilters returns the filter's contribution to the remote query,
//     or nil when the filter narrows nothing server-side and must be
//     evaluated entirely client-side.
//   - Predicate returns the filter's client-side test, or nil when the
//     remote contribution is exact and nothing needs re-checking.
//
// Every variant supplies at least one of the two.
//
// # Variants
//
//   - KindFilter: narrows by entity kind, server-side only.
//   - TypeFilter: narrows by spec.type, server-side only; its value may be
//     updated in place.
//   - TagFilter: client-side only; requires every listed tag to be present.
//   - UserListFilter: client-side only; narrows by viewer relationship
//     (owned, starred, or all).
//
// # Composition
//
// Compose merges any number of filters into a single Composite carrying one
// merged parameter map and one AND-chained predicate. Composite itself
// satisfies EntityFilter.
//
// All operations are pure and total: filters hold no mutable shared state
// (TypeFilter.SetValue excepted), never log, and are safe to evaluate
// concurrently over the same or different entities.
package filtering
