package redis

import (
	"context"
	"testing"
	"time"
)

func TestCacheSetAndGet(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewCache(client, nil)
	ctx := context.Background()

	if err := cache.Set(ctx, "foo", "bar", time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	val, err := cache.Get(ctx, "foo")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}

	if val != "bar" {
		t.Fatalf("expected bar, got %s", val)
	}
}

func TestCacheMissIsNotAnError(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewCache(client, nil)

	val, err := cache.Get(context.Background(), "absent")
	if err != nil {
		t.Fatalf("miss should not error, got %v", err)
	}
	if val != "" {
		t.Fatalf("expected empty value, got %s", val)
	}
}

func TestCacheTTLExpiry(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewCache(client, nil)
	ctx := context.Background()

	if err := cache.Set(ctx, "foo", "bar", 30*time.Second); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	mr.FastForward(time.Minute)

	val, err := cache.Get(ctx, "foo")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if val != "" {
		t.Fatalf("expected expired key to read empty, got %s", val)
	}
}

func TestCacheDelete(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewCache(client, nil)
	ctx := context.Background()

	if err := cache.Set(ctx, "foo", "bar", time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	if err := cache.Delete(ctx, "foo"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	val, err := cache.Get(ctx, "foo")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if val != "" {
		t.Fatalf("expected deleted key to read empty, got %s", val)
	}
}
