package model

import "time"

// CacheEntry is one resolved identity with its computation time. Entries
// older than the cache TTL are treated as misses even before the sweeper
// removes them.
type CacheEntry struct {
	Identity   Identity
	ComputedAt time.Time
}
