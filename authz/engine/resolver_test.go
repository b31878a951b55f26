package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeStore implements Store with overridable lookups. Zero-value fields
// fall back to empty results.
type fakeStore struct {
	rolesFn func(ctx context.Context, userID uint) ([]string, error)
	permsFn func(ctx context.Context, roles []string) ([]string, error)
	menusFn func(ctx context.Context, roles, permissions []string) ([]string, error)

	rolesCalls int
}

func (f *fakeStore) RolesForUser(ctx context.Context, userID uint) ([]string, error) {
	f.rolesCalls++
	if f.rolesFn != nil {
		return f.rolesFn(ctx, userID)
	}
	return nil, nil
}

func (f *fakeStore) PermissionsForRoles(ctx context.Context, roles []string) ([]string, error) {
	if f.permsFn != nil {
		return f.permsFn(ctx, roles)
	}
	return nil, nil
}

func (f *fakeStore) MenusForAccess(ctx context.Context, roles, permissions []string) ([]string, error) {
	if f.menusFn != nil {
		return f.menusFn(ctx, roles, permissions)
	}
	return nil, nil
}

func TestResolveBuildsIdentity(t *testing.T) {
	store := &fakeStore{
		rolesFn: func(_ context.Context, userID uint) ([]string, error) {
			return []string{RoleHRManager, RoleEmployee}, nil
		},
		permsFn: func(_ context.Context, roles []string) ([]string, error) {
			return []string{"Leaves:update", "Users:read"}, nil
		},
		menusFn: func(_ context.Context, _, _ []string) ([]string, error) {
			return []string{"Leaves", "People"}, nil
		},
	}
	resolver := NewPermissionResolver(store, time.Second)

	identity, err := resolver.Resolve(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), identity.UserID)
	assert.Equal(t, []string{RoleHRManager, RoleEmployee}, identity.Roles)
	assert.Equal(t, []string{"Leaves:update", "Users:read"}, identity.Permissions)
	assert.Equal(t, []string{"Leaves", "People"}, identity.MenuAccess)
}

func TestResolveUnionsPermissionsAcrossRoles(t *testing.T) {
	store := &fakeStore{
		rolesFn: func(_ context.Context, _ uint) ([]string, error) {
			return []string{RoleHRManager, RoleDepartmentHead}, nil
		},
		permsFn: func(_ context.Context, _ []string) ([]string, error) {
			// Overlapping grants from two roles come back with duplicates.
			return []string{"Leaves:update", "Leaves:read", "Leaves:update"}, nil
		},
	}
	resolver := NewPermissionResolver(store, time.Second)

	identity, err := resolver.Resolve(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, []string{"Leaves:read", "Leaves:update"}, identity.Permissions)
}

func TestResolveUserWithNoRoles(t *testing.T) {
	resolver := NewPermissionResolver(&fakeStore{}, time.Second)

	identity, err := resolver.Resolve(context.Background(), 7)
	assert.NoError(t, err)
	assert.Empty(t, identity.Roles)
	assert.Empty(t, identity.Permissions)
}

func TestResolvePropagatesStoreError(t *testing.T) {
	storeErr := errors.New("connection refused")
	store := &fakeStore{
		rolesFn: func(_ context.Context, _ uint) ([]string, error) {
			return nil, storeErr
		},
	}
	resolver := NewPermissionResolver(store, time.Second)

	_, err := resolver.Resolve(context.Background(), 7)
	assert.ErrorIs(t, err, storeErr)
}

func TestResolveHonorsDeadline(t *testing.T) {
	store := &fakeStore{
		rolesFn: func(ctx context.Context, _ uint) ([]string, error) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Second):
				return []string{RoleEmployee}, nil
			}
		},
	}
	resolver := NewPermissionResolver(store, 20*time.Millisecond)

	start := time.Now()
	_, err := resolver.Resolve(context.Background(), 7)
	assert.Error(t, err)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}
