package ports

import (
	"context"

	"github.com/restodash/restodash/internal/domain"
)

// DashboardService serves dashboard snapshots with a get-or-compute-and-store
// policy and exposes the invalidation triggers used by order mutations.
type DashboardService interface {
	// GetOrCompute returns the cached snapshot for (restaurantID, windowDays)
	// or computes, stores and returns a fresh one. Fails with
	// domain.ErrInvalidWindowDays or domain.ErrRestaurantNotFound before any
	// order query.
	GetOrCompute(ctx context.Context, restaurantID int64, windowDays int) (*domain.DashboardSnapshot, error)

	// Refresh recomputes unconditionally and overwrites the cache entry.
	Refresh(ctx context.Context, restaurantID int64, windowDays int) (*domain.DashboardSnapshot, error)

	// Invalidate evicts one (restaurant, window) entry; no-op if absent.
	Invalidate(ctx context.Context, restaurantID int64, windowDays int)

	// InvalidateAll evicts the entries for the configured set of
	// commonly-requested window sizes. Best effort: other window sizes stay
	// cached until TTL expiry.
	InvalidateAll(ctx context.Context, restaurantID int64)
}
