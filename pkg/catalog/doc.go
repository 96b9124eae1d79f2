// Package catalog defines the entity model shared by the filtering packages.
//
// An entity is a catalog-managed record identified by a kind (e.g.
// "component"), a free-form spec (including an optional spec.type), a set of
// tags, and relations to other entities. Entities are addressed by references
// of the form "kind:namespace/name"; the namespace defaults to "default" when
// omitted.
//
// The package also provides the reference ownership test used when filtering
// by viewer relationship: an entity is owned by a user when one of its
// "ownedBy" relations targets the user directly or a group the user is a
// member of.
//
// Entities are treated as immutable by everything in this module: helpers
// never mutate their receiver or arguments.
package catalog
