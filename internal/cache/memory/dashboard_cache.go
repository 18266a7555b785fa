package memory

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/restodash/restodash/internal/domain"
	"github.com/restodash/restodash/internal/ports"
	"github.com/restodash/restodash/pkg/metrics"
)

var _ ports.DashboardCache = (*SnapshotCache)(nil)

type entry struct {
	key       string
	snap      *domain.DashboardSnapshot
	expiresAt time.Time // zero = no expiry
}

// SnapshotCache is an in-process snapshot cache with per-entry TTL and LRU
// eviction above capacity. It backs tests and single-node deployments where
// a shared Redis would be overkill; the service treats it exactly like the
// shared store.
type SnapshotCache struct {
	capacity int

	ll    *list.List
	index map[string]*list.Element

	mu sync.Mutex
}

func NewSnapshotCache(capacity int) *SnapshotCache {
	if capacity <= 0 {
		capacity = 1
	}
	return &SnapshotCache{
		capacity: capacity,
		ll:       list.New(),
		index:    make(map[string]*list.Element),
	}
}

func (c *SnapshotCache) Get(_ context.Context, key string) (*domain.DashboardSnapshot, bool, error) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.index[key]
	if !ok {
		metrics.DashboardCacheOps.WithLabelValues("miss").Inc()
		return nil, false, nil
	}
	ent := elem.Value.(*entry)
	if isExpired(ent, now) {
		metrics.DashboardCacheOps.WithLabelValues("expired").Inc()
		c.removeElement(elem)
		metrics.DashboardCacheSize.Set(float64(len(c.index)))
		return nil, false, nil
	}
	c.ll.MoveToFront(elem)

	metrics.DashboardCacheOps.WithLabelValues("hit").Inc()
	return cloneSnapshot(ent.snap), true, nil
}

func (c *SnapshotCache) Set(_ context.Context, key string, snap *domain.DashboardSnapshot, ttl time.Duration) error {
	if key == "" || snap == nil {
		return nil
	}
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[key]; ok {
		ent := elem.Value.(*entry)
		ent.snap = cloneSnapshot(snap)
		ent.expiresAt = expiryFrom(now, ttl)
		c.ll.MoveToFront(elem)
		return nil
	}

	c.pruneExpiredFromBack(now)

	elem := c.ll.PushFront(&entry{
		key:       key,
		snap:      cloneSnapshot(snap),
		expiresAt: expiryFrom(now, ttl),
	})
	c.index[key] = elem

	if c.ll.Len() > c.capacity {
		c.evictLRU()
	}
	metrics.DashboardCacheSize.Set(float64(len(c.index)))
	return nil
}

func (c *SnapshotCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, key := range keys {
		if elem, ok := c.index[key]; ok {
			c.removeElement(elem)
		}
	}
	metrics.DashboardCacheSize.Set(float64(len(c.index)))
	return nil
}

// Len reports the number of live entries (expired ones may still count until
// the next touch).
func (c *SnapshotCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.index)
}
