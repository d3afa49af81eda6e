package cache

import (
	"context"
	"errors"
	"io"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// redisCache connects to TILESTITCH_REDIS_ADDR or skips the test.
func redisCache(t *testing.T) *RedisCache {
	t.Helper()
	addr := os.Getenv("TILESTITCH_REDIS_ADDR")
	if addr == "" {
		t.Skip("TILESTITCH_REDIS_ADDR not set")
	}
	c, err := NewRedisCache(context.Background(), RedisOptions{Addr: addr})
	if err != nil {
		t.Fatalf("NewRedisCache: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestRedisCache(t *testing.T) {
	c := redisCache(t)
	ctx := context.Background()
	key := "tilestitch-test:" + uuid.NewString()

	if _, hit, err := c.Get(ctx, key); err != nil || hit {
		t.Fatalf("Get on missing key = hit %v, err %v", hit, err)
	}
	if err := c.Set(ctx, key, []byte("grid"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, hit, err := c.Get(ctx, key)
	if err != nil || !hit || string(data) != "grid" {
		t.Fatalf("Get = %q, %v, %v", data, hit, err)
	}
	if err := c.Delete(ctx, key); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, key); hit {
		t.Error("entry still present after Delete")
	}
}

func TestClassify(t *testing.T) {
	if classify(nil) != nil {
		t.Error("classify(nil) should be nil")
	}
	if err := classify(redis.Nil); err != redis.Nil || IsRetryable(err) {
		t.Errorf("redis.Nil should pass through unchanged, got %v", err)
	}
	if err := classify(io.EOF); !IsRetryable(err) || !errors.Is(err, ErrNetwork) {
		t.Errorf("io.EOF should be a retryable network error, got %v", err)
	}
	if err := classify(errors.New("WRONGTYPE")); IsRetryable(err) {
		t.Errorf("server errors should not be retried, got %v", err)
	}
}
