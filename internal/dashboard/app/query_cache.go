package app

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"youtube_stats_dashboard/internal/dashboard/domain"
	"youtube_stats_dashboard/pkg/database"
	"youtube_stats_dashboard/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// QueryCache memoizes whole result tables: L1 in process memory, L2 in redis when configured.
// Failed computations are never stored.
type QueryCache struct {
	l1    sync.Map // key -> *cacheEntry
	ttl   time.Duration
	l2    database.RedisRepository[domain.ResultTable]
	l2TTL time.Duration

	now func() time.Time

	group  singleflight.Group
	hits   atomic.Int64
	misses atomic.Int64
}

type cacheEntry struct {
	table domain.ResultTable
	// zero means the entry lives as long as the process
	expiresAt time.Time
}

func (e *cacheEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// NewQueryCache ttl 0 keeps L1 entries for the process lifetime, l2 may be nil
func NewQueryCache(ttl time.Duration, l2 database.RedisRepository[domain.ResultTable], l2TTL time.Duration) *QueryCache {
	return &QueryCache{ttl: ttl, l2: l2, l2TTL: l2TTL, now: time.Now}
}

// CacheKey deterministic key of a function name and its argument values
func CacheKey(parts ...string) string {
	joined := strings.Join(parts, "|")
	hash := sha256.Sum256([]byte(joined))
	return fmt.Sprintf("ytdash:%x", hash[:12])
}

// Do returns the cached table for key or computes it with fn.
// Concurrent callers of the same missing key share one fn call.
func (c *QueryCache) Do(ctx context.Context, key string, fn func(ctx context.Context) (domain.ResultTable, error)) (domain.ResultTable, error) {
	if table, ok := c.get(ctx, key); ok {
		c.hits.Add(1)
		return table, nil
	}

	v, err, shared := c.group.Do(key, func() (interface{}, error) {
		// a caller that lost the race may find the table already stored
		if table, ok := c.get(ctx, key); ok {
			return table, nil
		}
		c.misses.Add(1)
		table, err := fn(ctx)
		if err != nil {
			return nil, err
		}
		c.set(ctx, key, table)
		return table, nil
	})
	if err != nil {
		return domain.ResultTable{}, err
	}
	if shared {
		logger.Log.Debug("cache: shared in-flight result", zap.String("key", key))
	}
	return v.(domain.ResultTable), nil
}

// Stats hit and miss counters since start
func (c *QueryCache) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

func (c *QueryCache) get(ctx context.Context, key string) (domain.ResultTable, bool) {
	if val, ok := c.l1.Load(key); ok {
		entry := val.(*cacheEntry)
		if !entry.expired(c.now()) {
			logger.Log.Debug("cache: L1 hit", zap.String("key", key))
			return entry.table, true
		}
		c.l1.Delete(key)
	}

	if c.l2 == nil {
		return domain.ResultTable{}, false
	}
	table, err := c.l2.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, database.ErrNotFound) {
			logger.Log.Warn("cache: L2 read failed", zap.String("key", key), zap.Error(err))
		}
		return domain.ResultTable{}, false
	}
	logger.Log.Debug("cache: L2 hit", zap.String("key", key))
	c.storeL1(key, table)
	return table, true
}

func (c *QueryCache) set(ctx context.Context, key string, table domain.ResultTable) {
	c.storeL1(key, table)
	if c.l2 == nil {
		return
	}
	if err := c.l2.Set(ctx, key, table, c.l2TTL); err != nil {
		logger.Log.Warn("cache: L2 write failed", zap.String("key", key), zap.Error(err))
	}
}

func (c *QueryCache) storeL1(key string, table domain.ResultTable) {
	entry := &cacheEntry{table: table}
	if c.ttl > 0 {
		entry.expiresAt = c.now().Add(c.ttl)
	}
	c.l1.Store(key, entry)
}
