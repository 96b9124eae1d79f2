package filtering

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aakanksha-arun/backstage/pkg/catalog"
)

func serviceComponent(name, specType string, tags ...string) catalog.Entity {
	return catalog.Entity{
		Kind: catalog.KindComponent,
		Metadata: catalog.Metadata{
			Name: name,
			Tags: tags,
		},
		Spec: map[string]any{"type": specType},
	}
}

func TestQueryParamsMerge(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		base     QueryParams
		others   []QueryParams
		expected QueryParams
	}{
		{
			name:     "all empty yields nil",
			base:     nil,
			others:   []QueryParams{nil, {}},
			expected: nil,
		},
		{
			name:     "disjoint fields",
			base:     QueryParams{"kind": {"component"}},
			others:   []QueryParams{{"spec.type": {"service"}}},
			expected: QueryParams{"kind": {"component"}, "spec.type": {"service"}},
		},
		{
			name:     "colliding field unions values in first-seen order",
			base:     QueryParams{"kind": {"component"}},
			others:   []QueryParams{{"kind": {"api"}}, {"kind": {"component"}}},
			expected: QueryParams{"kind": {"component", "api"}},
		},
		{
			name:     "duplicate values removed",
			base:     QueryParams{"kind": {"api", "api"}},
			others:   nil,
			expected: QueryParams{"kind": {"api"}},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.base.Merge(tt.others...))
		})
	}
}

func TestQueryParamsMergeDoesNotModifyReceiver(t *testing.T) {
	t.Parallel()

	base := QueryParams{"kind": {"component"}}
	_ = base.Merge(QueryParams{"kind": {"api"}})
	assert.Equal(t, QueryParams{"kind": {"component"}}, base)
}

func TestQueryParamsMatches(t *testing.T) {
	t.Parallel()

	entity := serviceComponent("payments", "service", "java", "payments")

	tests := []struct {
		name     string
		params   QueryParams
		expected bool
	}{
		{
			name:     "empty params match everything",
			params:   nil,
			expected: true,
		},
		{
			name:     "kind equals",
			params:   QueryParams{"kind": {"component"}},
			expected: true,
		},
		{
			name:     "kind differs",
			params:   QueryParams{"kind": {"api"}},
			expected: false,
		},
		{
			name:     "kind one of several",
			params:   QueryParams{"kind": {"api", "component"}},
			expected: true,
		},
		{
			name:     "spec.type equals",
			params:   QueryParams{"spec.type": {"service"}},
			expected: true,
		},
		{
			name:     "spec.type differs",
			params:   QueryParams{"spec.type": {"website"}},
			expected: false,
		},
		{
			name:     "all fields must match",
			params:   QueryParams{"kind": {"component"}, "spec.type": {"website"}},
			expected: false,
		},
		{
			name:     "array field matches any element",
			params:   QueryParams{"metadata.tags": {"java"}},
			expected: true,
		},
		{
			name:     "array field without matching element",
			params:   QueryParams{"metadata.tags": {"go"}},
			expected: false,
		},
		{
			name:     "missing field does not match",
			params:   QueryParams{"spec.lifecycle": {"production"}},
			expected: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.params.Matches(entity))
		})
	}
}

func TestQueryParamsFields(t *testing.T) {
	t.Parallel()

	params := QueryParams{"spec.type": {"service"}, "kind": {"component"}}
	assert.Equal(t, []string{"kind", "spec.type"}, params.Fields())
}
