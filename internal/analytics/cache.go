package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

const (
	cacheVersionKey     = "dashboard:version"
	cacheFingerprintKey = "dashboard:fingerprint"
)

// Cache memoizes dashboard view data in Redis under versioned keys. A nil
// Cache or one without a client calls the loader every time.
type Cache struct {
	client   *redis.Client
	ttl      time.Duration
	group    singleflight.Group
	observer CacheObserver
}

// CacheObserver is told about every Redis lookup.
type CacheObserver interface {
	CacheLookup(view string, hit bool)
}

// SetObserver installs o to receive lookup results.
func (c *Cache) SetObserver(o CacheObserver) {
	if c != nil {
		c.observer = o
	}
}

func (c *Cache) observe(key string, hit bool) {
	if c.observer == nil {
		return
	}
	view := key
	if parts := strings.Split(key, ":"); len(parts) > 1 {
		view = parts[1]
	}
	c.observer.CacheLookup(view, hit)
}

// NewCache instantiates the cache helper.
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// Enabled reports whether values are stored in Redis.
func (c *Cache) Enabled() bool {
	return c != nil && c.client != nil
}

// Version returns the current cache version, initialising when missing.
func (c *Cache) Version(ctx context.Context) (int64, error) {
	if !c.Enabled() {
		return 0, nil
	}
	ver, err := c.client.Get(ctx, cacheVersionKey).Int64()
	if errors.Is(err, redis.Nil) {
		if err := c.client.SetNX(ctx, cacheVersionKey, 1, 0).Err(); err != nil {
			return 0, err
		}
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	if ver <= 0 {
		ver = 1
		if err := c.client.Set(ctx, cacheVersionKey, ver, 0).Err(); err != nil {
			return 0, err
		}
	}
	return ver, nil
}

// BuildKey composes the cache key with the current version.
func (c *Cache) BuildKey(ctx context.Context, parts ...string) (string, error) {
	joined := strings.Join(parts, ":")
	if !c.Enabled() {
		return joined, nil
	}
	ver, err := c.Version(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:v%d", joined, ver), nil
}

// FetchJSON loads a cached value or populates it using the loader.
// Concurrent misses on the same key share one loader call.
func (c *Cache) FetchJSON(ctx context.Context, key string, dest any, loader func(context.Context) (any, error)) error {
	if loader == nil {
		return errors.New("cache: loader required")
	}
	if !c.Enabled() {
		value, err := loader(ctx)
		if err != nil {
			return err
		}
		return roundTrip(value, dest)
	}
	payload, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		c.observe(key, true)
		return json.Unmarshal(payload, dest)
	}
	if !errors.Is(err, redis.Nil) {
		return err
	}
	c.observe(key, false)
	raw, err, _ := c.group.Do(key, func() (any, error) {
		value, err := loader(ctx)
		if err != nil {
			return nil, err
		}
		raw, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
			return nil, err
		}
		return raw, nil
	})
	if err != nil {
		return err
	}
	return json.Unmarshal(raw.([]byte), dest)
}

// Bump invalidates every cached view by incrementing the version.
func (c *Cache) Bump(ctx context.Context) error {
	if !c.Enabled() {
		return nil
	}
	return c.client.Incr(ctx, cacheVersionKey).Err()
}

// Sync bumps the version when the stored dataset fingerprint differs from
// fingerprint, so a deploy with new data never serves stale views.
func (c *Cache) Sync(ctx context.Context, fingerprint string) (bool, error) {
	if !c.Enabled() {
		return false, nil
	}
	prev, err := c.client.GetSet(ctx, cacheFingerprintKey, fingerprint).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return false, err
	}
	if prev == fingerprint {
		return false, nil
	}
	return true, c.Bump(ctx)
}

func roundTrip(value, dest any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dest)
}

func keyView(page, filterKey string) []string {
	return []string{"dashboard", page, filterKey}
}
