package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func newTestRedisCache(t *testing.T) *RedisCache {
	t.Helper()

	mr := miniredis.RunT(t)
	r, err := NewRedisCache("redis://" + mr.Addr())
	if err != nil {
		t.Fatalf("new redis cache: %v", err)
	}
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestRedisCacheRoundTrip(t *testing.T) {
	r := newTestRedisCache(t)
	ctx := context.Background()

	value := map[string]int{"x": 1}
	if err := r.Set(ctx, "app:books:author_name=", value, time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}

	var got map[string]int
	found, err := r.Get(ctx, "app:books:author_name=", &got)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !found {
		t.Fatal("expected a hit")
	}
	if got["x"] != 1 {
		t.Fatalf("unexpected value: %v", got)
	}
}

func TestRedisCacheMissIsNotAnError(t *testing.T) {
	r := newTestRedisCache(t)

	var got string
	found, err := r.Get(context.Background(), "absent", &got)
	if err != nil {
		t.Fatalf("a miss must not be an error: %v", err)
	}
	if found {
		t.Fatal("expected a miss")
	}
}

func TestRedisCacheInvalidateNamespace(t *testing.T) {
	r := newTestRedisCache(t)
	ctx := context.Background()

	_ = r.Set(ctx, "app:books:author_name=smith", "a", time.Minute)
	_ = r.Set(ctx, "app:books:author_name=", "b", time.Minute)
	_ = r.Set(ctx, "app:authors:name=smith", "c", time.Minute)

	if err := r.InvalidateNamespace(ctx, "app:books"); err != nil {
		t.Fatalf("invalidate: %v", err)
	}

	var got string
	if found, _ := r.Get(ctx, "app:books:author_name=smith", &got); found {
		t.Fatal("book listing survived namespace invalidation")
	}
	if found, _ := r.Get(ctx, "app:books:author_name=", &got); found {
		t.Fatal("book listing survived namespace invalidation")
	}
	if found, _ := r.Get(ctx, "app:authors:name=smith", &got); !found {
		t.Fatal("other namespaces must be untouched")
	}
}

func TestRedisCacheInvalidateEmptyNamespace(t *testing.T) {
	r := newTestRedisCache(t)

	if err := r.InvalidateNamespace(context.Background(), "app:books"); err != nil {
		t.Fatalf("invalidating an empty namespace must succeed: %v", err)
	}
}

func TestNewRedisCacheRejectsInvalidURL(t *testing.T) {
	if _, err := NewRedisCache("not-a-url"); err == nil {
		t.Fatal("expected an error for a malformed connection string")
	}
}
