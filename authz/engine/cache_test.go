package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	authz_model "github.com/atlas-hrms/atlas/api/authz/model"
)

func TestCachePutGet(t *testing.T) {
	cache := NewResolutionCache(time.Minute)
	defer cache.Stop()

	identity := authz_model.Identity{UserID: 7, Roles: []string{RoleEmployee}}
	cache.Put(7, identity)

	got, ok := cache.Get(7)
	assert.True(t, ok)
	assert.Equal(t, identity, got)

	_, ok = cache.Get(8)
	assert.False(t, ok)
}

func TestCacheExpiredEntryIsMiss(t *testing.T) {
	cache := NewResolutionCache(20 * time.Millisecond)
	defer cache.Stop()

	cache.Put(7, authz_model.Identity{UserID: 7})
	time.Sleep(40 * time.Millisecond)

	// Regardless of whether the sweep has run yet, a stale entry never
	// reads as a hit.
	_, ok := cache.Get(7)
	assert.False(t, ok)
}

func TestCacheSweepRemovesExpired(t *testing.T) {
	cache := NewResolutionCache(20 * time.Millisecond)
	defer cache.Stop()

	cache.Put(1, authz_model.Identity{UserID: 1})
	cache.Put(2, authz_model.Identity{UserID: 2})
	assert.Equal(t, 2, cache.Len())

	assert.Eventually(t, func() bool {
		return cache.Len() == 0
	}, time.Second, 10*time.Millisecond)
}

func TestCacheInvalidate(t *testing.T) {
	cache := NewResolutionCache(time.Minute)
	defer cache.Stop()

	cache.Put(7, authz_model.Identity{UserID: 7})
	cache.Put(8, authz_model.Identity{UserID: 8})

	cache.Invalidate(7)

	_, ok := cache.Get(7)
	assert.False(t, ok)
	_, ok = cache.Get(8)
	assert.True(t, ok)
}

func TestCacheInvalidateAll(t *testing.T) {
	cache := NewResolutionCache(time.Minute)
	defer cache.Stop()

	cache.Put(7, authz_model.Identity{UserID: 7})
	cache.Put(8, authz_model.Identity{UserID: 8})

	cache.InvalidateAll()
	assert.Equal(t, 0, cache.Len())
}

func TestCacheStopIsIdempotent(t *testing.T) {
	cache := NewResolutionCache(time.Minute)
	cache.Stop()
	cache.Stop()
}
