package cache

import (
	"testing"
	"time"

	"vesrates/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestSnapshotCache_PutAndGet(t *testing.T) {
	c, err := NewSnapshotCache()
	require.NoError(t, err)
	defer c.Close()

	now := time.Now()
	snap := domain.Snapshot{Rate: 36.42, UpdatedAt: now, ExpiresAt: now.Add(2 * time.Minute)}

	c.Put(snap)
	c.cache.Wait()

	got, ok := c.Get(now)
	require.True(t, ok)
	require.InDelta(t, 36.42, got.Rate, 1e-9)
}

func TestSnapshotCache_MissWhenEmpty(t *testing.T) {
	c, err := NewSnapshotCache()
	require.NoError(t, err)
	defer c.Close()

	_, ok := c.Get(time.Now())
	require.False(t, ok)
}

func TestSnapshotCache_NeverServedPastExpiry(t *testing.T) {
	c, err := NewSnapshotCache()
	require.NoError(t, err)
	defer c.Close()

	now := time.Now()
	c.Put(domain.Snapshot{Rate: 36.42, UpdatedAt: now, ExpiresAt: now.Add(2 * time.Minute)})
	c.cache.Wait()

	// Fresh just before the boundary, gone at and after it.
	_, ok := c.Get(now.Add(2*time.Minute - time.Second))
	require.True(t, ok)

	_, ok = c.Get(now.Add(2 * time.Minute))
	require.False(t, ok)

	_, ok = c.Get(now.Add(3 * time.Minute))
	require.False(t, ok)
}

func TestSnapshotCache_PutAlreadyExpiredIsDropped(t *testing.T) {
	c, err := NewSnapshotCache()
	require.NoError(t, err)
	defer c.Close()

	now := time.Now()
	c.Put(domain.Snapshot{Rate: 36.42, UpdatedAt: now.Add(-time.Hour), ExpiresAt: now.Add(-time.Minute)})
	c.cache.Wait()

	_, ok := c.Get(now)
	require.False(t, ok)
}
