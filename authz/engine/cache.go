package engine

import (
	"sync"
	"time"

	authz_model "github.com/atlas-hrms/atlas/api/authz/model"
)

// ResolutionCache holds resolved identities per user with a TTL. It is the
// only shared mutable state in the engine: request goroutines read and write
// it concurrently while mutation collaborators invalidate entries after
// their writes commit. A background sweep removes entries past TTL on a
// fixed interval equal to the TTL; an expired entry that the sweep has not
// reached yet still reads as a miss.
type ResolutionCache struct {
	mu      sync.RWMutex
	entries map[uint]authz_model.CacheEntry
	ttl     time.Duration
	done    chan struct{}
	once    sync.Once
}

func NewResolutionCache(ttl time.Duration) *ResolutionCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	c := &ResolutionCache{
		entries: make(map[uint]authz_model.CacheEntry),
		ttl:     ttl,
		done:    make(chan struct{}),
	}
	go c.sweep()
	return c
}

// Get returns the cached identity for userID, or false on a miss. Entries
// older than TTL are never trusted.
func (c *ResolutionCache) Get(userID uint) (authz_model.Identity, bool) {
	c.mu.RLock()
	entry, ok := c.entries[userID]
	c.mu.RUnlock()
	if !ok {
		return authz_model.Identity{}, false
	}
	if time.Since(entry.ComputedAt) > c.ttl {
		return authz_model.Identity{}, false
	}
	return entry.Identity, true
}

func (c *ResolutionCache) Put(userID uint, identity authz_model.Identity) {
	c.mu.Lock()
	c.entries[userID] = authz_model.CacheEntry{Identity: identity, ComputedAt: time.Now()}
	c.mu.Unlock()
}

// Invalidate drops the entry for one user. Role-assignment collaborators
// call this synchronously after their write commits so no stale grant
// survives past the user's next request.
func (c *ResolutionCache) Invalidate(userID uint) {
	c.mu.Lock()
	delete(c.entries, userID)
	c.mu.Unlock()
}

// InvalidateAll drops every entry. Used when a role's permission set
// changes, since the affected user set is unknown.
func (c *ResolutionCache) InvalidateAll() {
	c.mu.Lock()
	c.entries = make(map[uint]authz_model.CacheEntry)
	c.mu.Unlock()
}

// Len reports the number of cached entries, expired or not.
func (c *ResolutionCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stop terminates the background sweep.
func (c *ResolutionCache) Stop() {
	c.once.Do(func() { close(c.done) })
}

func (c *ResolutionCache) sweep() {
	ticker := time.NewTicker(c.ttl)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			c.removeExpired()
		case <-c.done:
			return
		}
	}
}

func (c *ResolutionCache) removeExpired() {
	now := time.Now()
	c.mu.Lock()
	for userID, entry := range c.entries {
		if now.Sub(entry.ComputedAt) > c.ttl {
			delete(c.entries, userID)
		}
	}
	c.mu.Unlock()
}
