package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const defaultRedisPrefix = "burnfit:"

type redisBackend struct {
	rdb    *goredis.Client
	prefix string
}

// NewRedis connects to the redis URL (redis://[:password@]host:port/db) and
// verifies the connection before returning.
func NewRedis(ctx context.Context, url string) (*KVStore, error) {
	opts, err := goredis.ParseURL(strings.TrimSpace(url))
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	if opts.DialTimeout == 0 {
		opts.DialTimeout = 5 * time.Second
	}
	rdb := goredis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return NewRedisWithClient(rdb, defaultRedisPrefix), nil
}

// NewRedisWithClient uses an existing client. Keys are namespaced by prefix.
func NewRedisWithClient(rdb *goredis.Client, prefix string) *KVStore {
	return &KVStore{kv: &redisBackend{rdb: rdb, prefix: prefix}}
}

func (b *redisBackend) get(ctx context.Context, key string) (string, bool, error) {
	v, err := b.rdb.Get(ctx, b.prefix+key).Result()
	if err == goredis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get %q: %w", key, err)
	}
	return v, true, nil
}

func (b *redisBackend) set(ctx context.Context, key, value string) error {
	if err := b.rdb.Set(ctx, b.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", key, err)
	}
	return nil
}

func (b *redisBackend) del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, 0, len(keys))
	for _, k := range keys {
		full = append(full, b.prefix+k)
	}
	if err := b.rdb.Del(ctx, full...).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

func (b *redisBackend) close() error {
	return b.rdb.Close()
}
