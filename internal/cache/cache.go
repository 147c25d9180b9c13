package cache

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kineticKshitij/MajorProject-V1-sub000/pkg/logger"
)

// Cache is a redis-backed read cache for query responses. Keys carry the
// resource kind, the owning id and the request filters, so a response cached
// for one entity can never be served for another. All methods are safe on a
// nil receiver and degrade to cache misses, which keeps redis optional.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

type NewCacheParams struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

func New(ctx context.Context, params NewCacheParams) *Cache {
	if params.Addr == "" {
		return nil
	}
	if params.TTL == 0 {
		params.TTL = 5 * time.Minute
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     params.Addr,
		Password: params.Password,
		DB:       params.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Warn("Redis unreachable, running without cache", "err", err)
		return nil
	}
	return &Cache{rdb: rdb, ttl: params.TTL}
}

func (c *Cache) Close() {
	if c == nil {
		return
	}
	c.rdb.Close()
}

// Key builds a deterministic cache key. Filters are sorted by name so the
// same request always maps to the same key.
func Key(resource, id string, filters map[string]string) string {
	parts := []string{resource, id}

	names := make([]string, 0, len(filters))
	for name, value := range filters {
		if value != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	for _, name := range names {
		parts = append(parts, name+"="+filters[name])
	}
	return strings.Join(parts, ":")
}

// Get unmarshals the cached value into dest and reports whether it was found.
func (c *Cache) Get(ctx context.Context, key string, dest any) (bool, error) {
	if c == nil {
		return false, nil
	}
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *Cache) Set(ctx context.Context, key string, value any) error {
	if c == nil {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, raw, c.ttl).Err()
}

// Invalidate drops every cached response for the given resource and id,
// regardless of filters.
func (c *Cache) Invalidate(ctx context.Context, resource, id string) {
	if c == nil {
		return
	}
	pattern := resource + ":" + id + "*"
	iter := c.rdb.Scan(ctx, 0, pattern, 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		logger.Warn("Cache invalidation scan failed", "pattern", pattern, "err", err)
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		logger.Warn("Cache invalidation delete failed", "pattern", pattern, "err", err)
	}
}
