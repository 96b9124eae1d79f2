package catalog

// Well-known entity kinds. Kinds are compared case-insensitively; these
// constants use the lowercase canonical form.
const (
	KindComponent = "component"
	KindAPI       = "api"
	KindResource  = "resource"
	KindUser      = "user"
	KindGroup     = "group"
)

// Well-known relation types.
const (
	RelationOwnedBy  = "ownedBy"
	RelationOwnerOf  = "ownerOf"
	RelationMemberOf = "memberOf"
)

// Entity is a catalog-managed record. The filtering packages only ever read
// entities; they never mutate them.
type Entity struct {
	APIVersion string         `json:"apiVersion,omitempty"`
	Kind       string         `json:"kind"`
	Metadata   Metadata       `json:"metadata"`
	Spec       map[string]any `json:"spec,omitempty"`
	Relations  []Relation     `json:"relations,omitempty"`
}

// Metadata holds the identifying metadata of an entity.
type Metadata struct {
	Name        string            `json:"name"`
	Namespace   string            `json:"namespace,omitempty"`
	UID         string            `json:"uid,omitempty"`
	Title       string            `json:"title,omitempty"`
	Description string            `json:"description,omitempty"`
	Tags        []string          `json:"tags,omitempty"`
	Labels      map[string]string `json:"labels,omitempty"`
	Annotations map[string]string `json:"annotations,omitempty"`
}

// Relation links an entity to another entity, identified by its reference.
type Relation struct {
	Type      string `json:"type"`
	TargetRef string `json:"targetRef"`
}

// Ref returns the entity's reference. The namespace defaults to "default"
// when the entity carries none.
func (e Entity) Ref() Ref {
	return newRef(e.Kind, e.Metadata.Namespace, e.Metadata.Name)
}

// HasTag reports whether the entity carries the given tag. Comparison is
// exact string equality.
func (e Entity) HasTag(tag string) bool {
	for _, t := range e.Metadata.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// SpecType returns the entity's spec.type, or "" when the spec has no type
// or the type is not a string.
func (e Entity) SpecType() string {
	if e.Spec == nil {
		return ""
	}
	t, _ := e.Spec["type"].(string)
	return t
}

// RelationTargets returns the target references of all relations of the
// given type, normalized for comparison.
func (e Entity) RelationTargets(relationType string) []string {
	var targets []string
	for _, rel := range e.Relations {
		if rel.Type == relationType {
			targets = append(targets, normalizeRef(rel.TargetRef))
		}
	}
	return targets
}
