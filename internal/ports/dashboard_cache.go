package ports

import (
	"context"
	"time"

	"github.com/restodash/restodash/internal/domain"
)

// DashboardCache is the shared snapshot store with per-key expiry.
// Implementations must be safe for concurrent use; entries for the same key
// may be overwritten by concurrent writers (last write wins).
//
// Errors signal cache unavailability, not absence: callers treat a Get error
// as a forced miss and a Set/Delete error as non-fatal.
type DashboardCache interface {
	// Get returns (snapshot, true, nil) on a hit and (nil, false, nil) on a
	// miss or an expired entry.
	Get(ctx context.Context, key string) (*domain.DashboardSnapshot, bool, error)

	// Set stores the snapshot under key for ttl. ttl <= 0 means no expiry.
	Set(ctx context.Context, key string, snap *domain.DashboardSnapshot, ttl time.Duration) error

	// Delete removes the given keys; missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error
}
