// Package cache adds a Redis read-through layer over the rarely-changing
// content repositories. Every failure degrades to a database read; a missing
// Redis client degrades to no caching at all.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	profileCachePrefix = "profile:"
	dictCachePrefix    = "dict:"
	cacheTTL           = 10 * time.Minute
)

// Store is the minimal JSON cache used by the decorators. Get reports a
// cache miss as ok=false; errors are swallowed after logging.
type Store interface {
	Get(ctx context.Context, key string, dest any) (ok bool)
	Set(ctx context.Context, key string, value any)
	Invalidate(ctx context.Context, key string)
}

var (
	_ Store = (*redisStore)(nil)
	_ Store = (*noopStore)(nil)
)

// NewStore creates a Redis-backed store, or a no-op store when rdb is nil.
func NewStore(rdb *redis.Client, logger *zap.Logger) Store {
	if rdb == nil {
		return &noopStore{}
	}
	return &redisStore{rdb: rdb, logger: logger}
}

type redisStore struct {
	rdb    *redis.Client
	logger *zap.Logger
}

func (s *redisStore) Get(ctx context.Context, key string, dest any) bool {
	data, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		s.logger.Warn("cache entry corrupt", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (s *redisStore) Set(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn("cache marshal failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.rdb.Set(ctx, key, data, cacheTTL).Err(); err != nil {
		s.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *redisStore) Invalidate(ctx context.Context, key string) {
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		s.logger.Warn("cache invalidate failed", zap.String("key", key), zap.Error(err))
	}
}

type noopStore struct{}

func (noopStore) Get(context.Context, string, any) bool { return false }
func (noopStore) Set(context.Context, string, any)      {}
func (noopStore) Invalidate(context.Context, string)    {}
