package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/restodash/restodash/internal/domain"
	"github.com/restodash/restodash/internal/ports"
	"github.com/restodash/restodash/pkg/metrics"
)

var _ ports.DashboardService = (*DashboardService)(nil)

// SnapshotKey builds the cache key for one (restaurant, window) pair. The
// format is stable: external tooling relies on it to inspect and purge
// entries.
func SnapshotKey(restaurantID int64, windowDays int) string {
	return fmt.Sprintf("dashboard:restaurant:%d:days:%d", restaurantID, windowDays)
}

// DashboardService computes dashboard snapshots and caches them with a TTL.
//
// Concurrency policy: no single-flight de-duplication. Simultaneous misses
// for the same key each recompute and overwrite the entry; the computation
// is idempotent and cheap relative to the TTL, so the last writer winning is
// acceptable.
type DashboardService struct {
	restaurants ports.RestaurantRepository
	orders      ports.OrderRepository
	cache       ports.DashboardCache
	log         ports.Logger

	ttl time.Duration
	// window sizes evicted proactively on new orders; all other window
	// sizes age out via TTL only
	invalidateWindows []int
}

func NewDashboardService(
	restaurants ports.RestaurantRepository,
	orders ports.OrderRepository,
	cache ports.DashboardCache,
	log ports.Logger,
	ttl time.Duration,
	invalidateWindows []int,
) *DashboardService {
	if ttl <= 0 {
		ttl = 60 * time.Second
	}
	if len(invalidateWindows) == 0 {
		invalidateWindows = []int{7, 30, 90}
	}
	return &DashboardService{
		restaurants:       restaurants,
		orders:            orders,
		cache:             cache,
		log:               log,
		ttl:               ttl,
		invalidateWindows: invalidateWindows,
	}
}

// GetOrCompute serves the snapshot from cache, or computes and stores it.
// A failing cache read degrades to a live computation; a failing cache write
// only costs the next request a recompute.
func (s *DashboardService) GetOrCompute(ctx context.Context, restaurantID int64, windowDays int) (*domain.DashboardSnapshot, error) {
	if windowDays < domain.MinWindowDays || windowDays > domain.MaxWindowDays {
		return nil, domain.ErrInvalidWindowDays
	}
	key := SnapshotKey(restaurantID, windowDays)

	snap, found, err := s.cache.Get(ctx, key)
	if err != nil {
		s.log.Warnf(ctx, "cache.Get failed key=%s err=%v (treating as miss)", key, err)
	}
	if found {
		s.log.Infof(ctx, "cache hit key=%s", key)
		return snap, nil
	}
	s.log.Infof(ctx, "cache miss key=%s", key)

	snap, err = s.compute(ctx, restaurantID, windowDays)
	if err != nil {
		return nil, err
	}

	if setErr := s.cache.Set(ctx, key, snap, s.ttl); setErr != nil {
		s.log.Warnf(ctx, "cache.Set failed key=%s err=%v", key, setErr)
	}
	return snap, nil
}

// Refresh recomputes the snapshot unconditionally and overwrites the cache
// entry, resetting its TTL.
func (s *DashboardService) Refresh(ctx context.Context, restaurantID int64, windowDays int) (*domain.DashboardSnapshot, error) {
	if windowDays < domain.MinWindowDays || windowDays > domain.MaxWindowDays {
		return nil, domain.ErrInvalidWindowDays
	}

	snap, err := s.compute(ctx, restaurantID, windowDays)
	if err != nil {
		return nil, err
	}

	key := SnapshotKey(restaurantID, windowDays)
	if setErr := s.cache.Set(ctx, key, snap, s.ttl); setErr != nil {
		s.log.Warnf(ctx, "cache.Set failed key=%s err=%v", key, setErr)
	}
	return snap, nil
}

// compute is the read-and-aggregate path: restaurant lookup, one bounded
// order query, pure aggregation. Store failures abort the request; there is
// no partial snapshot.
func (s *DashboardService) compute(ctx context.Context, restaurantID int64, windowDays int) (*domain.DashboardSnapshot, error) {
	start := time.Now()

	rest, err := s.restaurants.GetByID(ctx, restaurantID)
	if err != nil {
		s.log.Errorf(ctx, "restaurants.GetByID failed id=%d err=%v", restaurantID, err)
		return nil, err
	}
	if rest == nil {
		return nil, domain.ErrRestaurantNotFound
	}

	asOf := time.Now().UTC()
	since := asOf.AddDate(0, 0, -windowDays)

	orders, err := s.orders.ListSince(ctx, restaurantID, since)
	if err != nil {
		s.log.Errorf(ctx, "orders.ListSince failed restaurant=%d err=%v", restaurantID, err)
		return nil, err
	}

	snap := BuildSnapshot(rest, windowDays, since, orders)

	metrics.DashboardComputeDuration.Observe(time.Since(start).Seconds())
	s.log.Infof(ctx, "dashboard computed restaurant=%d days=%d orders=%d took=%s",
		restaurantID, windowDays, snap.Totals.OrdersCount, time.Since(start))
	return snap, nil
}

// Invalidate evicts a single (restaurant, window) entry. Cache failures are
// logged and swallowed: the entry still dies by TTL.
func (s *DashboardService) Invalidate(ctx context.Context, restaurantID int64, windowDays int) {
	key := SnapshotKey(restaurantID, windowDays)
	if err := s.cache.Delete(ctx, key); err != nil {
		metrics.DashboardInvalidations.WithLabelValues("error").Inc()
		s.log.Warnf(ctx, "cache invalidate failed key=%s err=%v", key, err)
		return
	}
	metrics.DashboardInvalidations.WithLabelValues("ok").Inc()
}

// InvalidateAll evicts the configured window sizes for one restaurant in a
// single round trip. Snapshots for other window sizes stay cached and can
// be stale for at most the TTL.
func (s *DashboardService) InvalidateAll(ctx context.Context, restaurantID int64) {
	keys := make([]string, 0, len(s.invalidateWindows))
	for _, days := range s.invalidateWindows {
		keys = append(keys, SnapshotKey(restaurantID, days))
	}
	if err := s.cache.Delete(ctx, keys...); err != nil {
		metrics.DashboardInvalidations.WithLabelValues("error").Inc()
		s.log.Warnf(ctx, "cache invalidate-all failed restaurant=%d err=%v", restaurantID, err)
		return
	}
	metrics.DashboardInvalidations.WithLabelValues("ok").Inc()
	s.log.Infof(ctx, "dashboards invalidated restaurant=%d windows=%v", restaurantID, s.invalidateWindows)
}
