package catalog

// IsOwnedBy reports whether the user owns the entity.
//
// An entity is owned by a user when one of its "ownedBy" relations targets
// the user's own reference, or targets a group the user is a member of
// (via the user's "memberOf" relations). References are compared in
// normalized form, so namespace defaulting and case differences do not
// affect the result.
func IsOwnedBy(user, entity Entity) bool {
	owners := entity.RelationTargets(RelationOwnedBy)
	if len(owners) == 0 {
		return false
	}

	ownerSet := make(map[string]struct{}, len(owners))
	for _, owner := range owners {
		ownerSet[owner] = struct{}{}
	}

	if _, ok := ownerSet[normalizeRef(user.Ref().String())]; ok {
		return true
	}
	for _, group := range user.RelationTargets(RelationMemberOf) {
		if _, ok := ownerSet[group]; ok {
			return true
		}
	}
	return false
}
