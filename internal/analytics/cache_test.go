package analytics

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewCache(client, time.Minute), mr
}

func TestCacheBuildKeyIsVersioned(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	key, err := cache.BuildKey(ctx, "dashboard", "founder", "all")
	require.NoError(t, err)
	assert.Equal(t, "dashboard:founder:all:v1", key)

	require.NoError(t, cache.Bump(ctx))
	key, err = cache.BuildKey(ctx, "dashboard", "founder", "all")
	require.NoError(t, err)
	assert.Equal(t, "dashboard:founder:all:v2", key)

	var nilCache *Cache
	key, err = nilCache.BuildKey(ctx, "a", "b")
	require.NoError(t, err)
	assert.Equal(t, "a:b", key)
}

func TestCacheFetchJSONStoresWithTTL(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	var calls int
	loader := func(context.Context) (any, error) {
		calls++
		return Bucket{Key: "Fintech", Count: 2, Value: 1.5}, nil
	}
	var got Bucket
	require.NoError(t, cache.FetchJSON(ctx, "k", &got, loader))
	require.NoError(t, cache.FetchJSON(ctx, "k", &got, loader))

	assert.Equal(t, 1, calls)
	assert.Equal(t, Bucket{Key: "Fintech", Count: 2, Value: 1.5}, got)
	assert.Equal(t, time.Minute, mr.TTL("k"))
}

func TestCacheFetchJSONLoaderError(t *testing.T) {
	cache, mr := newTestCache(t)
	boom := errors.New("boom")
	var got Bucket
	err := cache.FetchJSON(context.Background(), "k", &got, func(context.Context) (any, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
	assert.False(t, mr.Exists("k"))
	assert.Error(t, cache.FetchJSON(context.Background(), "k", &got, nil))
}

func TestCacheFetchJSONCollapsesConcurrentMisses(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	var calls atomic.Int32
	release := make(chan struct{})
	loader := func(context.Context) (any, error) {
		calls.Add(1)
		<-release
		return Bucket{Key: "x"}, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var b Bucket
			assert.NoError(t, cache.FetchJSON(ctx, "shared", &b, loader))
			assert.Equal(t, "x", b.Key)
		}()
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.LessOrEqual(t, calls.Load(), int32(5))
	assert.GreaterOrEqual(t, calls.Load(), int32(1))
}

func TestCacheSyncBumpsOnNewFingerprint(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	changed, err := cache.Sync(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, changed)
	ver, err := cache.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), ver)

	changed, err = cache.Sync(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, changed)

	changed, err = cache.Sync(ctx, "def")
	require.NoError(t, err)
	assert.True(t, changed)
	ver, err = cache.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), ver)
}

func TestDisabledCacheCallsLoader(t *testing.T) {
	cache := NewCache(nil, time.Minute)
	assert.False(t, cache.Enabled())
	var calls int
	var got Bucket
	for i := 0; i < 2; i++ {
		require.NoError(t, cache.FetchJSON(context.Background(), "k", &got, func(context.Context) (any, error) {
			calls++
			return Bucket{Key: "y"}, nil
		}))
	}
	assert.Equal(t, 2, calls)
	changed, err := cache.Sync(context.Background(), "x")
	require.NoError(t, err)
	assert.False(t, changed)
}

type lookupRecorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *lookupRecorder) CacheLookup(view string, hit bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	state := "miss"
	if hit {
		state = "hit"
	}
	r.calls = append(r.calls, view+"/"+state)
}

func TestCacheReportsLookups(t *testing.T) {
	cache, _ := newTestCache(t)
	rec := &lookupRecorder{}
	cache.SetObserver(rec)
	ctx := context.Background()

	key, err := cache.BuildKey(ctx, keyView("partners", "all")...)
	require.NoError(t, err)
	loader := func(context.Context) (any, error) { return 3, nil }
	var out int
	require.NoError(t, cache.FetchJSON(ctx, key, &out, loader))
	require.NoError(t, cache.FetchJSON(ctx, key, &out, loader))

	assert.Equal(t, 3, out)
	assert.Equal(t, []string{"partners/miss", "partners/hit"}, rec.calls)
}
