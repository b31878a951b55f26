package model

// Identity is the authenticated caller as the authorization engine sees it:
// the stable user id plus the derived role/permission/menu sets. It is
// populated exclusively by the permission resolver, never assembled by
// callers.
type Identity struct {
	UserID      uint     `json:"user_id"`
	Roles       []string `json:"roles"`
	Permissions []string `json:"permissions"`
	MenuAccess  []string `json:"menu_access"`
}

// HasAnyRole reports whether the identity holds at least one of the given
// roles.
func (id Identity) HasAnyRole(roles []string) bool {
	return intersects(id.Roles, roles)
}

// HasAnyPermission reports whether the identity holds at least one of the
// given "Module:action" permissions.
func (id Identity) HasAnyPermission(permissions []string) bool {
	return intersects(id.Permissions, permissions)
}

func intersects(have, want []string) bool {
	if len(have) == 0 || len(want) == 0 {
		return false
	}
	set := make(map[string]struct{}, len(have))
	for _, h := range have {
		set[h] = struct{}{}
	}
	for _, w := range want {
		if _, ok := set[w]; ok {
			return true
		}
	}
	return false
}
