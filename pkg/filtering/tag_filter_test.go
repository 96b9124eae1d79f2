package filtering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aakanksha-arun/backstage/pkg/catalog"
)

func entityWithTags(tags ...string) catalog.Entity {
	return catalog.Entity{
		Kind: catalog.KindComponent,
		Metadata: catalog.Metadata{
			Name: "sample",
			Tags: tags,
		},
	}
}

func TestTagFilterHasNoCatalogFilters(t *testing.T) {
	t.Parallel()

	// Tag filtering is purely client-side.
	assert.Nil(t, NewTagFilter("java").CatalogFilters())
}

func TestTagFilterPredicate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		required []string
		tags     []string
		expected bool
	}{
		{
			name:     "no required tags passes untagged entity",
			required: nil,
			tags:     nil,
			expected: true,
		},
		{
			name:     "no required tags passes tagged entity",
			required: nil,
			tags:     []string{"java", "data"},
			expected: true,
		},
		{
			name:     "single required tag present",
			required: []string{"java"},
			tags:     []string{"java", "data"},
			expected: true,
		},
		{
			name:     "single required tag absent",
			required: []string{"go"},
			tags:     []string{"java", "data"},
			expected: false,
		},
		{
			name:     "all required tags present",
			required: []string{"x", "y"},
			tags:     []string{"x", "y", "z"},
			expected: true,
		},
		{
			name:     "one required tag missing",
			required: []string{"x", "y"},
			tags:     []string{"x"},
			expected: false,
		},
		{
			name:     "untagged entity fails non-empty requirement",
			required: []string{"x"},
			tags:     nil,
			expected: false,
		},
		{
			name:     "duplicate requirements only need one occurrence",
			required: []string{"x", "x"},
			tags:     []string{"x"},
			expected: true,
		},
		{
			name:     "matching is exact, not substring",
			required: []string{"jav"},
			tags:     []string{"java"},
			expected: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			predicate := NewTagFilter(tt.required...).Predicate()
			require.NotNil(t, predicate)
			assert.Equal(t, tt.expected, predicate(entityWithTags(tt.tags...), Environment{}))
		})
	}
}

func TestTagFilterTagsReturnsCopy(t *testing.T) {
	t.Parallel()

	filter := NewTagFilter("x", "y")
	tags := filter.Tags()
	tags[0] = "mutated"
	assert.Equal(t, []string{"x", "y"}, filter.Tags())
}

func TestTagFilterPredicateIsIdempotent(t *testing.T) {
	t.Parallel()

	predicate := NewTagFilter("x").Predicate()
	entity := entityWithTags("x", "y")
	first := predicate(entity, Environment{})
	second := predicate(entity, Environment{})
	assert.Equal(t, first, second)
	assert.True(t, first)
}
