// util/cache_service.go

package util

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/quill/logging"
)

// CacheService is a cache-aside store over Redis with versioned namespaces.
// Store failures never reach callers: reads degrade to a miss, writes and
// invalidations to a logged no-op.
type CacheService struct {
	client redis.Cmdable
	ttls   map[string]time.Duration
}

const defaultCacheTTL = 60 * time.Second

// NewCacheService builds the store. ttlSeconds maps namespace to TTL.
func NewCacheService(client redis.Cmdable, ttlSeconds map[string]int) *CacheService {
	ttls := make(map[string]time.Duration, len(ttlSeconds))
	for ns, s := range ttlSeconds {
		ttls[ns] = time.Duration(s) * time.Second
	}
	return &CacheService{client: client, ttls: ttls}
}

// TTL returns the configured lifetime for a namespace.
func (c *CacheService) TTL(namespace string) time.Duration {
	if ttl, ok := c.ttls[namespace]; ok && ttl > 0 {
		return ttl
	}
	return defaultCacheTTL
}

// GetVersion reads the namespace counter; a missing counter is version 0.
func (c *CacheService) GetVersion(ctx context.Context, namespace string) (int64, error) {
	v, err := c.client.Get(ctx, VersionKey(namespace)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return v, nil
}

// Get returns the cached value for params under the namespace's current version.
func (c *CacheService) Get(ctx context.Context, namespace string, params map[string]any) (string, bool) {
	version, err := c.GetVersion(ctx, namespace)
	if err != nil {
		logger.Warn("Cache get failed", zap.String("namespace", namespace), zap.Error(err))
		return "", false
	}
	val, err := c.client.Get(ctx, BuildKey(namespace, version, params)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Warn("Cache get failed", zap.String("namespace", namespace), zap.Error(err))
		}
		return "", false
	}
	return val, true
}

// Set stores value with the given ttl under the namespace's current version.
func (c *CacheService) Set(ctx context.Context, namespace, value string, ttl time.Duration, params map[string]any) {
	version, err := c.GetVersion(ctx, namespace)
	if err != nil {
		logger.Warn("Cache set failed", zap.String("namespace", namespace), zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, BuildKey(namespace, version, params), value, ttl).Err(); err != nil {
		logger.Warn("Cache set failed", zap.String("namespace", namespace), zap.Error(err))
	}
}

// Invalidate bumps the version of every namespace. Each bump is independent;
// a failure is logged and the remaining namespaces are still processed.
func (c *CacheService) Invalidate(ctx context.Context, namespaces ...string) {
	for _, ns := range namespaces {
		if err := c.client.Incr(ctx, VersionKey(ns)).Err(); err != nil {
			logger.Warn("Cache invalidate failed", zap.String("namespace", ns), zap.Error(err))
		}
	}
}

// GetJSON decodes a cached entry into dst. Undecodable entries count as a miss.
func (c *CacheService) GetJSON(ctx context.Context, namespace string, params map[string]any, dst any) bool {
	raw, ok := c.Get(ctx, namespace, params)
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		logger.Warn("Discarding undecodable cache entry", zap.String("namespace", namespace), zap.Error(err))
		return false
	}
	return true
}

// SetJSON encodes v and stores it with the namespace TTL.
func (c *CacheService) SetJSON(ctx context.Context, namespace string, v any, params map[string]any) {
	raw, err := json.Marshal(v)
	if err != nil {
		logger.Warn("Cache encode failed", zap.String("namespace", namespace), zap.Error(err))
		return
	}
	c.Set(ctx, namespace, string(raw), c.TTL(namespace), params)
}
