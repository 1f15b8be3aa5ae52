package store

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestKV(t *testing.T) (*Redis, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedis(client), mr
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRedisReadMissingKey(t *testing.T) {
	kv, _ := newTestKV(t)

	_, err := kv.Read(context.Background(), "cart:u-1")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestRedisWriteReadRoundTrip(t *testing.T) {
	kv, _ := newTestKV(t)
	ctx := context.Background()

	require.NoError(t, kv.Write(ctx, "language:u-1", `"ar"`))

	text, err := kv.Read(ctx, "language:u-1")
	require.NoError(t, err)
	assert.Equal(t, `"ar"`, text)
}

func TestRedisDeleteAbsentKeyIsNoop(t *testing.T) {
	kv, _ := newTestKV(t)
	assert.NoError(t, kv.Delete(context.Background(), "cart:nobody"))
}

func TestGetMissingKeyReturnsDefault(t *testing.T) {
	kv, _ := newTestKV(t)

	got := Get(context.Background(), kv, testLogger(), "cart:u-1", []int{1, 2})
	assert.Equal(t, []int{1, 2}, got)
}

func TestGetMalformedValueReturnsDefault(t *testing.T) {
	kv, mr := newTestKV(t)
	mr.Set("cart:u-1", "{not json")

	got := Get(context.Background(), kv, testLogger(), "cart:u-1", 42)
	assert.Equal(t, 42, got)
}

func TestSetGetRoundTrip(t *testing.T) {
	kv, _ := newTestKV(t)
	ctx := context.Background()

	type slice struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	require.NoError(t, Set(ctx, kv, testLogger(), "favorites:u-1", slice{Name: "a", Count: 3}))

	got := Get(ctx, kv, testLogger(), "favorites:u-1", slice{})
	assert.Equal(t, slice{Name: "a", Count: 3}, got)
}

func TestSetUnserializableValueIsSwallowed(t *testing.T) {
	kv, mr := newTestKV(t)

	err := Set(context.Background(), kv, testLogger(), "cart:u-1", make(chan int))

	assert.NoError(t, err)
	assert.False(t, mr.Exists("cart:u-1"))
}

func TestWipeRemovesEveryUserSlice(t *testing.T) {
	kv, mr := newTestKV(t)
	ctx := context.Background()

	for _, key := range UserKeys("u-1") {
		require.NoError(t, kv.Write(ctx, key, "[]"))
	}
	require.NoError(t, kv.Write(ctx, CartKey("u-2"), "[]"))
	require.NoError(t, kv.Write(ctx, KeyCustomProducts, "[]"))

	require.NoError(t, Wipe(ctx, kv, "u-1"))

	for _, key := range UserKeys("u-1") {
		assert.False(t, mr.Exists(key), key)
	}
	assert.True(t, mr.Exists(CartKey("u-2")), "other users' state survives a wipe")
	assert.True(t, mr.Exists(KeyCustomProducts), "customProducts is not per-user state")
}
