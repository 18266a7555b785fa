package memory

import (
	"container/list"
	"time"

	"github.com/restodash/restodash/internal/domain"
	"github.com/restodash/restodash/pkg/metrics"
)

// evictLRU drops the least recently used entry.
func (c *SnapshotCache) evictLRU() {
	if back := c.ll.Back(); back != nil {
		c.removeElement(back)
		metrics.DashboardCacheOps.WithLabelValues("evicted").Inc()
	}
}

// removeElement drops the element from both the list and the index.
func (c *SnapshotCache) removeElement(elem *list.Element) {
	if elem == nil {
		return
	}
	if ent, ok := elem.Value.(*entry); ok {
		delete(c.index, ent.key)
	}
	c.ll.Remove(elem)
}

// isExpired checks the entry's own deadline; zero means no expiry.
func isExpired(ent *entry, now time.Time) bool {
	if ent.expiresAt.IsZero() {
		return false
	}
	return now.After(ent.expiresAt)
}

// expiryFrom computes the deadline for a ttl; ttl <= 0 means no expiry.
func expiryFrom(now time.Time, ttl time.Duration) time.Time {
	if ttl <= 0 {
		return time.Time{}
	}
	return now.Add(ttl)
}

// pruneExpiredFromBack removes expired entries from the tail up to the first
// live one.
func (c *SnapshotCache) pruneExpiredFromBack(now time.Time) {
	for {
		back := c.ll.Back()
		if back == nil {
			return
		}
		ent, ok := back.Value.(*entry)
		if !ok {
			c.removeElement(back)
			continue
		}
		if isExpired(ent, now) {
			c.removeElement(back)
			metrics.DashboardCacheOps.WithLabelValues("expired").Inc()
			continue
		}
		return
	}
}

// cloneSnapshot copies the snapshot so callers cannot mutate cached data.
func cloneSnapshot(snap *domain.DashboardSnapshot) *domain.DashboardSnapshot {
	if snap == nil {
		return nil
	}
	cloned := *snap
	if snap.TopCustomers != nil {
		cloned.TopCustomers = append([]domain.TopCustomer(nil), snap.TopCustomers...)
	}
	return &cloned
}
