package cache

import (
	"context"
	"testing"
	"time"
)

func newTestMemoryCache(t *testing.T) *MemoryCache {
	t.Helper()
	m := NewMemoryCache()
	t.Cleanup(func() { _ = m.Close() })
	return m
}

func TestMemoryCacheRoundTrip(t *testing.T) {
	m := newTestMemoryCache(t)
	ctx := context.Background()

	if err := m.Set(ctx, "app:books:author_name=", []string{"a", "b"}, time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}

	var got []string
	found, err := m.Get(ctx, "app:books:author_name=", &got)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !found {
		t.Fatal("expected a hit")
	}
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("unexpected value: %v", got)
	}
}

func TestMemoryCacheMiss(t *testing.T) {
	m := newTestMemoryCache(t)

	var got string
	found, err := m.Get(context.Background(), "absent", &got)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if found {
		t.Fatal("expected a miss")
	}
	if got != "" {
		t.Fatalf("dest must be untouched on miss, got %q", got)
	}
}

func TestMemoryCacheExpiry(t *testing.T) {
	m := newTestMemoryCache(t)
	ctx := context.Background()

	if err := m.Set(ctx, "k", "v", 10*time.Millisecond); err != nil {
		t.Fatalf("set: %v", err)
	}
	time.Sleep(20 * time.Millisecond)

	var got string
	found, err := m.Get(ctx, "k", &got)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if found {
		t.Fatal("expected the entry to have expired")
	}
	if m.Len() != 0 {
		t.Fatalf("expired entry must be removed on read, have %d entries", m.Len())
	}
}

func TestMemoryCacheNoTTLNeverExpires(t *testing.T) {
	m := newTestMemoryCache(t)
	ctx := context.Background()

	if err := m.Set(ctx, "k", "v", 0); err != nil {
		t.Fatalf("set: %v", err)
	}

	var got string
	found, err := m.Get(ctx, "k", &got)
	if err != nil || !found {
		t.Fatalf("expected a hit, found=%v err=%v", found, err)
	}
}

func TestMemoryCacheInvalidateNamespace(t *testing.T) {
	m := newTestMemoryCache(t)
	ctx := context.Background()

	_ = m.Set(ctx, "app:books:author_name=smith", "a", time.Minute)
	_ = m.Set(ctx, "app:books:author_name=jones", "b", time.Minute)
	_ = m.Set(ctx, "app:authors:name=smith", "c", time.Minute)

	if err := m.InvalidateNamespace(ctx, "app:books"); err != nil {
		t.Fatalf("invalidate: %v", err)
	}

	var got string
	if found, _ := m.Get(ctx, "app:books:author_name=smith", &got); found {
		t.Fatal("book listing survived namespace invalidation")
	}
	if found, _ := m.Get(ctx, "app:books:author_name=jones", &got); found {
		t.Fatal("book listing survived namespace invalidation")
	}
	if found, _ := m.Get(ctx, "app:authors:name=smith", &got); !found {
		t.Fatal("other namespaces must be untouched")
	}
}

func TestMemoryCacheCloseIdempotent(t *testing.T) {
	m := NewMemoryCache()

	if err := m.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := m.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
}
