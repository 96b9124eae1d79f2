package catalog

import (
	"fmt"
	"strings"
)

// DefaultNamespace is assumed for references and entities without an
// explicit namespace.
const DefaultNamespace = "default"

// Ref identifies an entity as "kind:namespace/name". Kind and namespace are
// case-insensitive and stored lowercased; the name keeps its case.
type Ref struct {
	Kind      string
	Namespace string
	Name      string
}

func newRef(kind, namespace, name string) Ref {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return Ref{
		Kind:      strings.ToLower(kind),
		Namespace: strings.ToLower(namespace),
		Name:      name,
	}
}

// ParseRef parses an entity reference of the form "kind:namespace/name".
// The namespace may be omitted ("kind:name"), in which case it defaults to
// "default".
func ParseRef(s string) (Ref, error) {
	kind, rest, ok := strings.Cut(s, ":")
	if !ok || kind == "" {
		return Ref{}, fmt.Errorf("invalid entity reference %q: missing kind", s)
	}

	namespace, name, ok := strings.Cut(rest, "/")
	if !ok {
		namespace, name = "", rest
	}
	if name == "" {
		return Ref{}, fmt.Errorf("invalid entity reference %q: missing name", s)
	}

	return newRef(kind, namespace, name), nil
}

// String renders the reference as "kind:namespace/name".
func (r Ref) String() string {
	namespace := r.Namespace
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return fmt.Sprintf("%s:%s/%s", r.Kind, namespace, r.Name)
}

// normalizeRef brings a reference string to canonical form so that
// "User:alice" and "user:default/alice" compare equal. Unparseable strings
// are returned lowercased as-is.
func normalizeRef(s string) string {
	ref, err := ParseRef(s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(ref.String())
}
