package filtering

import (
	"fmt"
	"strings"

	"github.com/aakanksha-arun/backstage/pkg/catalog"
)

// UserListKind selects which viewer relationship a UserListFilter tests.
// The three kinds are mutually exclusive and fixed at construction.
type UserListKind string

const (
	// UserListOwned keeps entities owned by the current viewer.
	UserListOwned UserListKind = "owned"
	// UserListStarred keeps entities the current viewer has starred.
	UserListStarred UserListKind = "starred"
	// UserListAll keeps every entity. It is the identity filter, letting a
	// composition layer always carry an active user-list filter without
	// special-casing "no filter".
	UserListAll UserListKind = "all"
)

// ParseUserListKind parses a user-list kind string, case-insensitively.
func ParseUserListKind(s string) (UserListKind, error) {
	switch kind := UserListKind(strings.ToLower(s)); kind {
	case UserListOwned, UserListStarred, UserListAll:
		return kind, nil
	default:
		return "", fmt.Errorf("invalid user list kind %q (want owned, starred or all)", s)
	}
}

// UserListFilter keeps entities by their relationship to the current viewer.
// The relationship depends on per-viewer state unavailable to the catalog
// backend, so the filter contributes no catalog parameters and is always
// evaluated client-side.
type UserListFilter struct {
	kind UserListKind
}

var _ EntityFilter = UserListFilter{}

// NewUserListFilter creates a filter for the given relationship kind.
func NewUserListFilter(kind UserListKind) UserListFilter {
	return UserListFilter{kind: kind}
}

// Value returns the relationship kind the filter was constructed with.
func (f UserListFilter) Value() UserListKind {
	return f.kind
}

// CatalogFilters returns nil: viewer relationships cannot be narrowed
// server-side.
func (UserListFilter) CatalogFilters() QueryParams {
	return nil
}

// Predicate tests the entity's relationship to the viewer in the
// environment:
//
//   - owned: the environment has a viewer and the ownership test reports
//     the viewer as an owner. An anonymous environment never owns anything;
//     that is a defined false result, not an error.
//   - starred: the environment's starred test reports the entity starred.
//   - all: every entity passes.
//
// An unrecognized kind behaves like "all", matching the lenient default of
// the closed enumeration.
func (f UserListFilter) Predicate() Predicate {
	return f.filterEntity
}

func (f UserListFilter) filterEntity(entity catalog.Entity, env Environment) bool {
	switch f.kind {
	case UserListOwned:
		return env.ownedByUser(entity)
	case UserListStarred:
		return env.starred(entity)
	default:
		return true
	}
}
