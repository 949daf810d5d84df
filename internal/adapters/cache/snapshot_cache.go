package cache

import (
	"fmt"
	"time"

	"vesrates/internal/domain"

	"github.com/dgraph-io/ristretto"
)

const snapshotKey = "usd:ves"

// RistrettoSnapshotCache keeps the last successfully read rate for a short
// TTL so a consumer can ride out a brief repository outage without ever
// fabricating a value.
type RistrettoSnapshotCache struct {
	cache *ristretto.Cache
}

func NewSnapshotCache() (*RistrettoSnapshotCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 64,
		MaxCost:     8,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create snapshot cache failed: %w", err)
	}
	return &RistrettoSnapshotCache{cache: c}, nil
}

func (c *RistrettoSnapshotCache) Put(s domain.Snapshot) {
	ttl := time.Until(s.ExpiresAt)
	if ttl <= 0 {
		return
	}
	c.cache.SetWithTTL(snapshotKey, s, 1, ttl)
}

// Get re-checks ExpiresAt on top of ristretto's own TTL so an expired
// snapshot is never served, regardless of eviction timing.
func (c *RistrettoSnapshotCache) Get(now time.Time) (domain.Snapshot, bool) {
	v, ok := c.cache.Get(snapshotKey)
	if !ok {
		return domain.Snapshot{}, false
	}
	s, ok := v.(domain.Snapshot)
	if !ok || s.Expired(now) {
		c.cache.Del(snapshotKey)
		return domain.Snapshot{}, false
	}
	return s, true
}

func (c *RistrettoSnapshotCache) Close() { c.cache.Close() }
