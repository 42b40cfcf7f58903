package store

import (
	"context"
	"path"
	"time"

	"github.com/effective-security/xlog"
	"github.com/redis/go-redis/v9"
)

var logger = xlog.NewPackageLogger("github.com/effective-security/gentools", "store")

// The redis cache shares tool results across process replicas.
// The keys namespace is organized as follows:
// - `/<prefix>/toolstore/<tool>/<args-hash>` for storing tool call results
// Entries expire after the configured TTL; a zero TTL keeps them until
// evicted by Redis itself.
type redisCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, prefix string, ttl time.Duration) ResultCache {
	return &redisCache{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (m *redisCache) getRedisKey(tool, args string) string {
	return path.Join(m.prefix, "toolstore", Key(tool, args))
}

func (m *redisCache) Get(ctx context.Context, tool, args string) (string, bool) {
	key := m.getRedisKey(tool, args)
	res, err := m.client.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			logger.ContextKV(ctx, xlog.ERROR, "reason", "GetRedisResult", "key", key, "err", err.Error())
		}
		return "", false
	}
	return res, true
}

func (m *redisCache) Set(ctx context.Context, tool, args, result string) error {
	key := m.getRedisKey(tool, args)
	err := m.client.Set(ctx, key, result, m.ttl).Err()
	if err != nil {
		logger.ContextKV(ctx, xlog.ERROR, "reason", "SetRedisResult", "key", key, "err", err.Error())
		return err
	}
	return nil
}
