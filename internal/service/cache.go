package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"starwars-api/internal/cache"
)

// readCache wraps an optional cache. A nil client turns every call into a
// miss or a no-op; cache failures never fail a request.
type readCache struct {
	client cache.Cache
	ttl    time.Duration
}

func newReadCache(client cache.Cache, ttl time.Duration) readCache {
	return readCache{client: client, ttl: ttl}
}

func (rc readCache) load(ctx context.Context, key string, dest interface{}) bool {
	if rc.client == nil {
		return false
	}
	err := rc.client.GetJSON(ctx, key, dest)
	if err != nil && !errors.Is(err, cache.ErrCacheMiss) {
		logrus.WithError(err).WithField("key", key).Warn("Cache read failed")
	}
	return err == nil
}

func (rc readCache) store(ctx context.Context, key string, value interface{}) {
	if rc.client == nil {
		return
	}
	if err := rc.client.SetJSON(ctx, key, value, rc.ttl); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("Cache write failed")
	}
}

func (rc readCache) invalidate(ctx context.Context, keys ...string) {
	if rc.client == nil {
		return
	}
	if err := rc.client.Delete(ctx, keys...); err != nil {
		logrus.WithError(err).WithField("keys", keys).Warn("Cache invalidation failed")
	}
}

const (
	usersListKey      = "users:all"
	planetsListKey    = "planets:all"
	charactersListKey = "characters:all"
)

func userKey(id uint) string      { return fmt.Sprintf("user:%d", id) }
func planetKey(id uint) string    { return fmt.Sprintf("planet:%d", id) }
func characterKey(id uint) string { return fmt.Sprintf("character:%d", id) }
