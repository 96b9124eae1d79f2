package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntityRef(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		entity   Entity
		expected string
	}{
		{
			name: "with namespace",
			entity: Entity{
				Kind:     KindComponent,
				Metadata: Metadata{Name: "payments", Namespace: "team-a"},
			},
			expected: "component:team-a/payments",
		},
		{
			name: "namespace defaults",
			entity: Entity{
				Kind:     KindAPI,
				Metadata: Metadata{Name: "billing"},
			},
			expected: "api:default/billing",
		},
		{
			name: "kind is lowercased",
			entity: Entity{
				Kind:     "Component",
				Metadata: Metadata{Name: "payments"},
			},
			expected: "component:default/payments",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.entity.Ref().String())
		})
	}
}

func TestEntityHasTag(t *testing.T) {
	t.Parallel()

	entity := Entity{
		Kind:     KindComponent,
		Metadata: Metadata{Name: "payments", Tags: []string{"java", "payments"}},
	}

	assert.True(t, entity.HasTag("java"))
	assert.False(t, entity.HasTag("go"))
	assert.False(t, entity.HasTag("jav"), "matching is exact, not substring")
	assert.False(t, Entity{}.HasTag("java"))
}

func TestEntitySpecType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		spec     map[string]any
		expected string
	}{
		{name: "string type", spec: map[string]any{"type": "service"}, expected: "service"},
		{name: "missing type", spec: map[string]any{"owner": "alice"}, expected: ""},
		{name: "non-string type", spec: map[string]any{"type": 7}, expected: ""},
		{name: "nil spec", spec: nil, expected: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			entity := Entity{Kind: KindComponent, Spec: tt.spec}
			assert.Equal(t, tt.expected, entity.SpecType())
		})
	}
}

func TestEntityRelationTargets(t *testing.T) {
	t.Parallel()

	entity := Entity{
		Kind: KindComponent,
		Relations: []Relation{
			{Type: RelationOwnedBy, TargetRef: "group:default/platform"},
			{Type: RelationOwnedBy, TargetRef: "User:alice"},
			{Type: RelationMemberOf, TargetRef: "group:default/engineering"},
		},
	}

	assert.Equal(t,
		[]string{"group:default/platform", "user:default/alice"},
		entity.RelationTargets(RelationOwnedBy))
	assert.Nil(t, entity.RelationTargets("dependsOn"))
}
