package filtering

import (
	"encoding/json"
	"slices"
	"sort"

	"github.com/tidwall/gjson"

	"github.com/aakanksha-arun/backstage/pkg/catalog"
)

// QueryParams maps a dot-delimited field path (e.g. "kind", "spec.type") to
// the values the field must equal. A single-element slice is a single-value
// constraint; multiple values mean "one of these". Values are matched by
// exact string equality.
type QueryParams map[string][]string

// Fields returns the parameter field paths in sorted order.
func (p QueryParams) Fields() []string {
	fields := make([]string, 0, len(p))
	for field := range p {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Merge combines parameter maps into one, as a query-building collaborator
// would before issuing a narrowed catalog request. When two maps constrain
// the same field, the values are unioned in first-seen order with duplicates
// removed. Nil maps contribute nothing; the receiver is not modified.
func (p QueryParams) Merge(others ...QueryParams) QueryParams {
	merged := make(QueryParams)
	for _, params := range append([]QueryParams{p}, others...) {
		for field, values := range params {
			for _, value := range values {
				if !slices.Contains(merged[field], value) {
					merged[field] = append(merged[field], value)
				}
			}
		}
	}
	if len(merged) == 0 {
		return nil
	}
	return merged
}

// Matches evaluates the parameter map against a single entity, resolving
// each field path against the entity's JSON form. It mirrors the narrowing a
// catalog backend applies server-side, so callers without a remote backend
// (tests, local tooling) can run the same reduction over already-loaded
// entities.
//
// A field constraint is satisfied when the resolved value equals one of the
// allowed values; for array fields, when any element does. Entities missing
// a constrained field do not match.
func (p QueryParams) Matches(entity catalog.Entity) bool {
	if len(p) == 0 {
		return true
	}

	doc, err := json.Marshal(entity)
	if err != nil {
		return false
	}

	for field, values := range p {
		result := gjson.GetBytes(doc, field)
		if !result.Exists() || !resultMatches(result, values) {
			return false
		}
	}
	return true
}

func resultMatches(result gjson.Result, values []string) bool {
	if result.IsArray() {
		for _, element := range result.Array() {
			if slices.Contains(values, element.String()) {
				return true
			}
		}
		return false
	}
	return slices.Contains(values, result.String())
}
