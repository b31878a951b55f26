package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	authz_model "github.com/atlas-hrms/atlas/api/authz/model"
)

// fakeOwnershipStore returns a fixed owner for every entity type, or a
// configured error.
type fakeOwnershipStore struct {
	owner uint
	err   error

	leaveCalls int
}

func (f *fakeOwnershipStore) LeaveOwner(ctx context.Context, id uint) (uint, error) {
	f.leaveCalls++
	return f.owner, f.err
}

func (f *fakeOwnershipStore) DocumentUploader(ctx context.Context, id uint) (uint, error) {
	return f.owner, f.err
}

func (f *fakeOwnershipStore) AttendanceSubject(ctx context.Context, id uint) (uint, error) {
	return f.owner, f.err
}

func (f *fakeOwnershipStore) PayslipEmployee(ctx context.Context, id uint) (uint, error) {
	return f.owner, f.err
}

func (f *fakeOwnershipStore) RequisitionRequester(ctx context.Context, id uint) (uint, error) {
	return f.owner, f.err
}

func TestOwnsUserResourceComparesDirectly(t *testing.T) {
	store := &fakeOwnershipStore{}
	resolver := NewOwnershipResolver(store)
	identity := authz_model.Identity{UserID: 42}

	assert.True(t, resolver.Owns(context.Background(), identity, authz_model.ResourceUser, "42"))
	assert.False(t, resolver.Owns(context.Background(), identity, authz_model.ResourceUser, "43"))
	assert.Zero(t, store.leaveCalls, "user resource checks never hit the store")
}

func TestOwnsDispatchesByResource(t *testing.T) {
	store := &fakeOwnershipStore{owner: 42}
	resolver := NewOwnershipResolver(store)
	identity := authz_model.Identity{UserID: 42}
	other := authz_model.Identity{UserID: 9}

	for _, resource := range []authz_model.Resource{
		authz_model.ResourceLeave,
		authz_model.ResourceDocument,
		authz_model.ResourceAttendance,
		authz_model.ResourcePayslip,
		authz_model.ResourceRequisition,
	} {
		assert.True(t, resolver.Owns(context.Background(), identity, resource, "17"), string(resource))
		assert.False(t, resolver.Owns(context.Background(), other, resource, "17"), string(resource))
	}
}

func TestOwnsFailsClosed(t *testing.T) {
	identity := authz_model.Identity{UserID: 42}

	t.Run("UnknownResource", func(t *testing.T) {
		resolver := NewOwnershipResolver(&fakeOwnershipStore{owner: 42})
		assert.False(t, resolver.Owns(context.Background(), identity, authz_model.Resource("unknown"), "17"))
	})

	t.Run("NonNumericID", func(t *testing.T) {
		resolver := NewOwnershipResolver(&fakeOwnershipStore{owner: 42})
		assert.False(t, resolver.Owns(context.Background(), identity, authz_model.ResourceLeave, "abc"))
	})

	t.Run("StoreError", func(t *testing.T) {
		resolver := NewOwnershipResolver(&fakeOwnershipStore{owner: 42, err: errors.New("not found")})
		assert.False(t, resolver.Owns(context.Background(), identity, authz_model.ResourceLeave, "17"))
	})
}
