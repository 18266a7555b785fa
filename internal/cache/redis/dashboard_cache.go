package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/restodash/restodash/internal/domain"
	"github.com/restodash/restodash/internal/ports"
	"github.com/restodash/restodash/pkg/metrics"
)

var _ ports.DashboardCache = (*SnapshotCache)(nil)

// SnapshotCache stores dashboard snapshots in a shared Redis, one JSON value
// per key with Redis-side TTL expiry. Errors are reported to the caller; the
// service decides whether to degrade (reads) or swallow (invalidation).
type SnapshotCache struct {
	client *redis.Client
}

func NewSnapshotCache(client *redis.Client) *SnapshotCache {
	return &SnapshotCache{client: client}
}

// NewClient builds a go-redis client and pings it for fail-fast startup.
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

func (c *SnapshotCache) Get(ctx context.Context, key string) (*domain.DashboardSnapshot, bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.DashboardCacheOps.WithLabelValues("miss").Inc()
		return nil, false, nil
	}
	if err != nil {
		metrics.DashboardCacheOps.WithLabelValues("error").Inc()
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}

	var snap domain.DashboardSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		// a corrupt entry is as good as absent, recompute will overwrite it
		metrics.DashboardCacheOps.WithLabelValues("error").Inc()
		return nil, false, fmt.Errorf("decode cached snapshot %s: %w", key, err)
	}

	metrics.DashboardCacheOps.WithLabelValues("hit").Inc()
	return &snap, true, nil
}

func (c *SnapshotCache) Set(ctx context.Context, key string, snap *domain.DashboardSnapshot, ttl time.Duration) error {
	if key == "" || snap == nil {
		return nil
	}
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot %s: %w", key, err)
	}
	if err := c.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		metrics.DashboardCacheOps.WithLabelValues("error").Inc()
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (c *SnapshotCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		metrics.DashboardCacheOps.WithLabelValues("error").Inc()
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
