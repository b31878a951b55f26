package engine

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	authz_model "github.com/atlas-hrms/atlas/api/authz/model"
	logger "github.com/atlas-hrms/atlas/api/logging"
)

// Store is the read-only persistence surface the resolver needs. The
// gorm-backed implementation lives in authz/dao; tests use fakes.
type Store interface {
	RolesForUser(ctx context.Context, userID uint) ([]string, error)
	PermissionsForRoles(ctx context.Context, roles []string) ([]string, error)
	MenusForAccess(ctx context.Context, roles []string, permissions []string) ([]string, error)
}

// PermissionResolver derives an Identity from persisted role and permission
// grants. Every lookup runs under an internal deadline so a hung data layer
// cannot stall the request pipeline; the caller maps any error to deny.
type PermissionResolver struct {
	store   Store
	timeout time.Duration
}

func NewPermissionResolver(store Store, timeout time.Duration) *PermissionResolver {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &PermissionResolver{store: store, timeout: timeout}
}

// Resolve loads the user's roles, the union of permissions across those
// roles, and the menu sections that union unlocks. Access is additive across
// roles; no role subtracts another's grant.
func (r *PermissionResolver) Resolve(ctx context.Context, userID uint) (authz_model.Identity, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	roles, err := r.store.RolesForUser(ctx, userID)
	if err != nil {
		logger.Warn("Failed to load roles for user", zap.Uint("userID", userID), zap.Error(err))
		return authz_model.Identity{}, err
	}

	permissions, err := r.store.PermissionsForRoles(ctx, roles)
	if err != nil {
		logger.Warn("Failed to load permissions for roles", zap.Uint("userID", userID), zap.Error(err))
		return authz_model.Identity{}, err
	}
	permissions = dedupe(permissions)

	menus, err := r.store.MenusForAccess(ctx, roles, permissions)
	if err != nil {
		logger.Warn("Failed to load menu access", zap.Uint("userID", userID), zap.Error(err))
		return authz_model.Identity{}, err
	}

	return authz_model.Identity{
		UserID:      userID,
		Roles:       roles,
		Permissions: permissions,
		MenuAccess:  menus,
	}, nil
}

func dedupe(values []string) []string {
	if len(values) < 2 {
		return values
	}
	seen := make(map[string]struct{}, len(values))
	out := values[:0]
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
