package redis_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"

	"github.com/cdfmlr/goflowchart/internal/adapters/redis"
)

func newTestCache(t *testing.T, opts ...redis.Option) (*redis.Cache, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	return redis.NewFromClient(client, opts...), mr
}

func TestCache_RoundTrip(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	key := redis.Key("a()\nb()", "inner", "simplify")
	if err := cache.Set(ctx, key, "sub0=>subroutine: a()\n"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	got, err := cache.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got != "sub0=>subroutine: a()\n" {
		t.Errorf("Get() = %q", got)
	}
}

func TestCache_MissIsTyped(t *testing.T) {
	cache, _ := newTestCache(t)

	_, err := cache.Get(context.Background(), redis.Key("never stored"))
	if !errors.Is(err, redis.ErrCacheMiss) {
		t.Errorf("Get() error = %v, want ErrCacheMiss", err)
	}
}

func TestCache_EntriesExpire(t *testing.T) {
	cache, mr := newTestCache(t, redis.WithTTL(time.Minute))
	ctx := context.Background()

	key := redis.Key("x = 1")
	if err := cache.Set(ctx, key, "op0=>operation: x = 1\n"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	if _, err := cache.Get(ctx, key); !errors.Is(err, redis.ErrCacheMiss) {
		t.Errorf("entry survived its TTL, err = %v", err)
	}
}

func TestKey_OptionsChangeKey(t *testing.T) {
	code := "if a {\n\tb()\n}"
	if redis.Key(code, "simplify") == redis.Key(code, "no-simplify") {
		t.Error("different options must produce different keys")
	}
	if redis.Key(code) != redis.Key(code) {
		t.Error("key must be deterministic")
	}
}
