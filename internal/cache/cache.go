package cache

import (
	"context"
	"time"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

// PayloadCache stores encoded response payloads keyed by the helpers in
// keys.go. A nil *PayloadCache is a valid no-op cache.
type PayloadCache struct {
	rdb *redis.Redis
}

// NewPayloadCache wraps a go-zero redis client.
func NewPayloadCache(rdb *redis.Redis) *PayloadCache {
	if rdb == nil {
		return nil
	}
	return &PayloadCache{rdb: rdb}
}

// Get decodes the cached payload for key into v. A miss, a decode failure
// or a redis error all report false; cache problems never fail a request.
func (c *PayloadCache) Get(ctx context.Context, key string, v interface{}) bool {
	if c == nil || c.rdb == nil {
		return false
	}
	raw, err := c.rdb.GetCtx(ctx, key)
	if err != nil {
		logx.WithContext(ctx).Errorf("cache get %s: %v", key, err)
		return false
	}
	if raw == "" {
		return false
	}
	if err := msgpack.Unmarshal([]byte(raw), v); err != nil {
		logx.WithContext(ctx).Errorf("cache decode %s: %v", key, err)
		return false
	}
	return true
}

// Set encodes v with msgpack and stores it under key for ttl.
func (c *PayloadCache) Set(ctx context.Context, key string, v interface{}, ttl time.Duration) {
	if c == nil || c.rdb == nil || ttl <= 0 {
		return
	}
	raw, err := msgpack.Marshal(v)
	if err != nil {
		logx.WithContext(ctx).Errorf("cache encode %s: %v", key, err)
		return
	}
	if err := c.rdb.SetexCtx(ctx, key, string(raw), int(ttl/time.Second)); err != nil {
		logx.WithContext(ctx).Errorf("cache set %s: %v", key, err)
	}
}
