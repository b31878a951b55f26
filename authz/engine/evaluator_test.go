package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	authz_model "github.com/atlas-hrms/atlas/api/authz/model"
)

func newTestEvaluator(t *testing.T, store *fakeStore, owners *fakeOwnershipStore) *Evaluator {
	t.Helper()
	registry := NewRegistry()
	RegisterDefaultRoutes(registry)

	cache := NewResolutionCache(time.Minute)
	t.Cleanup(cache.Stop)

	return NewEvaluator(
		registry,
		NewPermissionResolver(store, time.Second),
		cache,
		NewOwnershipResolver(owners),
	)
}

func rolesStore(roles ...string) *fakeStore {
	return &fakeStore{
		rolesFn: func(_ context.Context, _ uint) ([]string, error) {
			return roles, nil
		},
	}
}

func TestAuthorizeUnconfiguredRouteDenied(t *testing.T) {
	e := newTestEvaluator(t, rolesStore(RoleAdmin), &fakeOwnershipStore{})

	decision := e.Authorize(context.Background(), "GET", "/api/v1/nonexistent", 1, true)
	assert.False(t, decision.Allowed)
	assert.Equal(t, authz_model.ReasonUnconfiguredRoute, decision.Reason)

	// Even a fully privileged caller is denied on an unmapped path.
	decision = e.Authorize(context.Background(), "DELETE", "/api/v1/leaves/17", 1, true)
	assert.False(t, decision.Allowed)
	assert.Equal(t, authz_model.ReasonUnconfiguredRoute, decision.Reason)
}

func TestAuthorizePublicBypassesEverything(t *testing.T) {
	store := rolesStore()
	e := newTestEvaluator(t, store, &fakeOwnershipStore{})

	decision := e.Authorize(context.Background(), "POST", "/api/v1/auth/login", 0, false)
	assert.True(t, decision.Allowed)
	assert.Zero(t, store.rolesCalls, "public routes never resolve identity")
}

func TestAuthorizeAnonymousDenied(t *testing.T) {
	e := newTestEvaluator(t, rolesStore(RoleAdmin), &fakeOwnershipStore{})

	decision := e.Authorize(context.Background(), "GET", "/api/v1/users", 0, false)
	assert.False(t, decision.Allowed)
	assert.Equal(t, authz_model.ReasonUnauthenticated, decision.Reason)
}

func TestAuthorizeAuthenticatedOnlyRoute(t *testing.T) {
	store := rolesStore()
	e := newTestEvaluator(t, store, &fakeOwnershipStore{})

	decision := e.Authorize(context.Background(), "POST", "/api/v1/leaves", 7, true)
	assert.True(t, decision.Allowed)
	assert.Zero(t, store.rolesCalls, "authenticated-only routes skip resolution")
}

func TestAuthorizeRoleCheck(t *testing.T) {
	t.Run("AnyRoleSuffices", func(t *testing.T) {
		e := newTestEvaluator(t, rolesStore(RoleHRManager), &fakeOwnershipStore{})
		decision := e.Authorize(context.Background(), "GET", "/api/v1/users", 7, true)
		assert.True(t, decision.Allowed)
	})

	t.Run("NoMatchingRole", func(t *testing.T) {
		e := newTestEvaluator(t, rolesStore(RoleEmployee), &fakeOwnershipStore{})
		decision := e.Authorize(context.Background(), "GET", "/api/v1/users", 7, true)
		assert.False(t, decision.Allowed)
		assert.Equal(t, authz_model.ReasonInsufficientRole, decision.Reason)
	})

	t.Run("AddingRolesNeverRevokes", func(t *testing.T) {
		// A caller allowed with one role stays allowed with that role
		// plus any others.
		e := newTestEvaluator(t, rolesStore(RoleHRManager, RoleEmployee, RoleDepartmentHead), &fakeOwnershipStore{})
		decision := e.Authorize(context.Background(), "GET", "/api/v1/users", 7, true)
		assert.True(t, decision.Allowed)
	})
}

func TestAuthorizeOwnershipFallback(t *testing.T) {
	t.Run("OwnUserRecord", func(t *testing.T) {
		// An Employee reading their own user record passes through the
		// ownership fallback despite lacking the role.
		e := newTestEvaluator(t, rolesStore(RoleEmployee), &fakeOwnershipStore{})
		decision := e.Authorize(context.Background(), "GET", "/api/v1/users/42", 42, true)
		assert.True(t, decision.Allowed)
	})

	t.Run("OtherUserRecord", func(t *testing.T) {
		e := newTestEvaluator(t, rolesStore(RoleEmployee), &fakeOwnershipStore{})
		decision := e.Authorize(context.Background(), "GET", "/api/v1/users/43", 42, true)
		assert.False(t, decision.Allowed)
		assert.Equal(t, authz_model.ReasonInsufficientRole, decision.Reason)
	})

	t.Run("OwnLeave", func(t *testing.T) {
		e := newTestEvaluator(t, rolesStore(RoleEmployee), &fakeOwnershipStore{owner: 42})
		decision := e.Authorize(context.Background(), "GET", "/api/v1/leaves/17", 42, true)
		assert.True(t, decision.Allowed)
	})

	t.Run("NoFallbackWithoutAllowOwn", func(t *testing.T) {
		// DELETE /users/:id has no ownership fallback; owning the record
		// does not help.
		e := newTestEvaluator(t, rolesStore(RoleEmployee), &fakeOwnershipStore{})
		decision := e.Authorize(context.Background(), "DELETE", "/api/v1/users/42", 42, true)
		assert.False(t, decision.Allowed)
		assert.Equal(t, authz_model.ReasonInsufficientRole, decision.Reason)
	})
}

func TestAuthorizePermissionGate(t *testing.T) {
	t.Run("RoleWithoutPermission", func(t *testing.T) {
		e := newTestEvaluator(t, rolesStore(RoleHRManager), &fakeOwnershipStore{})
		decision := e.Authorize(context.Background(), "PUT", "/api/v1/leaves/17/status", 7, true)
		assert.False(t, decision.Allowed)
		assert.Equal(t, authz_model.ReasonInsufficientPermission, decision.Reason)
	})

	t.Run("RoleAndPermission", func(t *testing.T) {
		store := rolesStore(RoleHRManager)
		store.permsFn = func(_ context.Context, _ []string) ([]string, error) {
			return []string{"Leaves:update"}, nil
		}
		e := newTestEvaluator(t, store, &fakeOwnershipStore{})
		decision := e.Authorize(context.Background(), "PUT", "/api/v1/leaves/17/status", 7, true)
		assert.True(t, decision.Allowed)
	})

	t.Run("OwnershipDoesNotBypassPermissionRoutes", func(t *testing.T) {
		// The review route has no AllowOwn; an Employee owning the leave
		// is still denied on role.
		e := newTestEvaluator(t, rolesStore(RoleEmployee), &fakeOwnershipStore{owner: 42})
		decision := e.Authorize(context.Background(), "PUT", "/api/v1/leaves/17/status", 42, true)
		assert.False(t, decision.Allowed)
		assert.Equal(t, authz_model.ReasonInsufficientRole, decision.Reason)
	})
}

func TestAuthorizeResolverErrorDenies(t *testing.T) {
	store := &fakeStore{
		rolesFn: func(_ context.Context, _ uint) ([]string, error) {
			return nil, errors.New("store down")
		},
	}
	e := newTestEvaluator(t, store, &fakeOwnershipStore{})

	decision := e.Authorize(context.Background(), "GET", "/api/v1/users", 7, true)
	assert.False(t, decision.Allowed)
	assert.Equal(t, authz_model.ReasonInsufficientRole, decision.Reason)
}

func TestAuthorizeUsesCachedResolution(t *testing.T) {
	store := rolesStore(RoleAdmin)
	e := newTestEvaluator(t, store, &fakeOwnershipStore{})

	for i := 0; i < 5; i++ {
		decision := e.Authorize(context.Background(), "GET", "/api/v1/users", 7, true)
		assert.True(t, decision.Allowed)
	}
	assert.Equal(t, 1, store.rolesCalls, "repeat requests hit the cache")
}

func TestInvalidateForcesReresolution(t *testing.T) {
	roles := []string{RoleAdmin}
	store := &fakeStore{}
	store.rolesFn = func(_ context.Context, _ uint) ([]string, error) {
		return roles, nil
	}
	e := newTestEvaluator(t, store, &fakeOwnershipStore{})

	decision := e.Authorize(context.Background(), "GET", "/api/v1/users", 7, true)
	assert.True(t, decision.Allowed)

	// Revoke the role and invalidate; the very next request sees the new
	// grants.
	roles = []string{RoleEmployee}
	e.Invalidate(7)

	decision = e.Authorize(context.Background(), "GET", "/api/v1/users", 7, true)
	assert.False(t, decision.Allowed)
	assert.Equal(t, 2, store.rolesCalls)
}

func TestInvalidateAllAffectsEveryUser(t *testing.T) {
	store := rolesStore(RoleAdmin)
	e := newTestEvaluator(t, store, &fakeOwnershipStore{})

	assert.True(t, e.Authorize(context.Background(), "GET", "/api/v1/users", 7, true).Allowed)
	assert.True(t, e.Authorize(context.Background(), "GET", "/api/v1/users", 8, true).Allowed)
	assert.Equal(t, 2, store.rolesCalls)

	e.InvalidateAll()

	assert.True(t, e.Authorize(context.Background(), "GET", "/api/v1/users", 7, true).Allowed)
	assert.True(t, e.Authorize(context.Background(), "GET", "/api/v1/users", 8, true).Allowed)
	assert.Equal(t, 4, store.rolesCalls)
}

func TestIdentityExposesResolvedSets(t *testing.T) {
	store := rolesStore(RoleEmployee)
	store.menusFn = func(_ context.Context, _, _ []string) ([]string, error) {
		return []string{"My Leaves"}, nil
	}
	e := newTestEvaluator(t, store, &fakeOwnershipStore{})

	identity, err := e.Identity(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, []string{RoleEmployee}, identity.Roles)
	assert.Equal(t, []string{"My Leaves"}, identity.MenuAccess)
	assert.Equal(t, 1, store.rolesCalls)

	// Identity reads share the evaluator's cache.
	_, _ = e.Identity(context.Background(), 7)
	assert.Equal(t, 1, store.rolesCalls)
}
