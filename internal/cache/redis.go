// Package cache provides the optional Redis read cache for hot listing
// pages. Absence of Redis, and any Redis failure, is never an error.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// NewClient connects and verifies connectivity. Returns nil when addr is
// empty (cache disabled).
func NewClient(ctx context.Context, addr string) (*redis.Client, error) {
	if addr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return client, nil
}

// Cache wraps a client that may be nil.
type Cache struct {
	Client *redis.Client
}

func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c == nil || c.Client == nil {
		return nil, false
	}
	b, err := c.Client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logrus.WithError(err).WithField("key", key).Warn("cache read failed")
		}
		return nil, false
	}
	return b, true
}

func (c *Cache) Set(ctx context.Context, key string, val []byte, ttl time.Duration) {
	if c == nil || c.Client == nil {
		return
	}
	if err := c.Client.Set(ctx, key, val, ttl).Err(); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("cache write failed")
	}
}
