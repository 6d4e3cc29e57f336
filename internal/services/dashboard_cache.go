package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"finance-dashboard/internal/models"

	"github.com/redis/go-redis/v9"
)

const dashboardCacheKey = "finance:dashboard"

// RedisDashboardCache keeps the dashboard as JSON in Redis with a TTL
type RedisDashboardCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisDashboardCache creates a cache over an existing Redis client
func NewRedisDashboardCache(client *redis.Client, ttl time.Duration) *RedisDashboardCache {
	return &RedisDashboardCache{client: client, ttl: ttl}
}

func (c *RedisDashboardCache) Get(ctx context.Context) (*models.Dashboard, error) {
	cached, err := c.client.Get(ctx, dashboardCacheKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read dashboard cache: %w", err)
	}

	var dashboard models.Dashboard
	if err := json.Unmarshal([]byte(cached), &dashboard); err != nil {
		return nil, fmt.Errorf("failed to decode cached dashboard: %w", err)
	}
	return &dashboard, nil
}

func (c *RedisDashboardCache) Set(ctx context.Context, dashboard *models.Dashboard) error {
	data, err := json.Marshal(dashboard)
	if err != nil {
		return fmt.Errorf("failed to encode dashboard: %w", err)
	}
	if err := c.client.SetEx(ctx, dashboardCacheKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write dashboard cache: %w", err)
	}
	return nil
}

func (c *RedisDashboardCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, dashboardCacheKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate dashboard cache: %w", err)
	}
	return nil
}

// MemoryDashboardCache is the in-process cache used when Redis is not configured
type MemoryDashboardCache struct {
	mu        sync.RWMutex
	ttl       time.Duration
	now       func() time.Time
	dashboard *models.Dashboard
	expiresAt time.Time
}

// NewMemoryDashboardCache creates an in-process cache. A zero ttl disables caching.
func NewMemoryDashboardCache(ttl time.Duration) *MemoryDashboardCache {
	return &MemoryDashboardCache{ttl: ttl, now: time.Now}
}

func (c *MemoryDashboardCache) Get(_ context.Context) (*models.Dashboard, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.dashboard == nil || !c.now().Before(c.expiresAt) {
		return nil, nil
	}
	copied := *c.dashboard
	return &copied, nil
}

func (c *MemoryDashboardCache) Set(_ context.Context, dashboard *models.Dashboard) error {
	if c.ttl <= 0 || dashboard == nil {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	copied := *dashboard
	c.dashboard = &copied
	c.expiresAt = c.now().Add(c.ttl)
	return nil
}

func (c *MemoryDashboardCache) Invalidate(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.dashboard = nil
	return nil
}

// VersionedDashboardCache counts invalidations so a dashboard built from reads
// that raced a write is not stored after that write invalidated the cache.
// Every service must share the same instance for the count to be complete.
type VersionedDashboardCache struct {
	mu      sync.Mutex
	next    DashboardCache
	version uint64
}

func NewVersionedDashboardCache(next DashboardCache) *VersionedDashboardCache {
	return &VersionedDashboardCache{next: next}
}

// Version returns the current invalidation count. Capture it before reading
// the data a dashboard is built from.
func (c *VersionedDashboardCache) Version() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.version
}

func (c *VersionedDashboardCache) Get(ctx context.Context) (*models.Dashboard, error) {
	return c.next.Get(ctx)
}

func (c *VersionedDashboardCache) Set(ctx context.Context, dashboard *models.Dashboard) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.next.Set(ctx, dashboard)
}

// SetIfVersion stores dashboard only if no invalidation happened since version
// was captured. It reports whether the dashboard was stored.
func (c *VersionedDashboardCache) SetIfVersion(ctx context.Context, version uint64, dashboard *models.Dashboard) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.version != version {
		return false, nil
	}
	if err := c.next.Set(ctx, dashboard); err != nil {
		return false, err
	}
	return true, nil
}

func (c *VersionedDashboardCache) Invalidate(ctx context.Context) error {
	c.mu.Lock()
	c.version++
	c.mu.Unlock()
	return c.next.Invalidate(ctx)
}
