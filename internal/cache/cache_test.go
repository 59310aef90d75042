package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedGig struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

func setupTestRedis(t *testing.T) *miniredis.Miniredis {
	mr := miniredis.RunT(t)
	InitRedis(mr.Addr())
	t.Cleanup(func() { client = nil })
	require.NotNil(t, GetClient(), "miniredis should be reachable")
	return mr
}

func TestAside_MissThenHit(t *testing.T) {
	setupTestRedis(t)
	ctx := context.Background()

	fetches := 0
	fetch := func(dest *cachedGig) func() error {
		return func() error {
			fetches++
			dest.ID = 7
			dest.Title = "Build a React Website"
			return nil
		}
	}

	var first cachedGig
	err := Aside(ctx, GigKey(7), &first, GigTTL, fetch(&first))
	require.NoError(t, err)
	assert.Equal(t, 1, fetches)
	assert.Equal(t, "Build a React Website", first.Title)

	// Second read is served from Redis without touching the source.
	var second cachedGig
	err = Aside(ctx, GigKey(7), &second, GigTTL, fetch(&second))
	require.NoError(t, err)
	assert.Equal(t, 1, fetches)
	assert.Equal(t, first, second)
}

func TestAside_FetchErrorNotCached(t *testing.T) {
	setupTestRedis(t)
	ctx := context.Background()

	boom := errors.New("db down")
	var dest cachedGig
	err := Aside(ctx, GigKey(1), &dest, GigTTL, func() error { return boom })
	assert.ErrorIs(t, err, boom)

	found, err := GetJSON(ctx, GigKey(1), &dest)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestInvalidateGig_DropsDetailAndListing(t *testing.T) {
	setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, GigKey(3), cachedGig{ID: 3}, GigTTL))
	require.NoError(t, SetJSON(ctx, OpenGigsListKey, []cachedGig{{ID: 3}}, GigListTTL))

	InvalidateGig(ctx, 3)

	var dest cachedGig
	found, err := GetJSON(ctx, GigKey(3), &dest)
	require.NoError(t, err)
	assert.False(t, found)

	var list []cachedGig
	found, err = GetJSON(ctx, OpenGigsListKey, &list)
	require.NoError(t, err)
	assert.False(t, found)
}

// Servers built with injected dependencies point the package client at the
// injected one; cache operations must go through it, and a nil injection
// turns caching off.
func TestSetClient_RoutesCacheOps(t *testing.T) {
	mr := miniredis.RunT(t)
	injected := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		client = nil
		_ = injected.Close()
	})

	SetClient(injected)
	require.Same(t, injected, GetClient())

	ctx := context.Background()
	require.NoError(t, SetJSON(ctx, GigKey(9), cachedGig{ID: 9}, GigTTL))
	assert.True(t, mr.Exists(GigKey(9)))

	SetClient(nil)
	var dest cachedGig
	found, err := GetJSON(ctx, GigKey(9), &dest)
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestGetJSON_NilClientIsMiss(t *testing.T) {
	client = nil

	var dest cachedGig
	found, err := GetJSON(context.Background(), GigKey(1), &dest)
	assert.NoError(t, err)
	assert.False(t, found)

	// Writes are silently skipped as well.
	assert.NoError(t, SetJSON(context.Background(), GigKey(1), dest, time.Minute))
}
