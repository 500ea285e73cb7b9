package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

// stubCache records calls and can be forced to fail.
type stubCache struct {
	store   map[string][]byte
	getErr  error
	setErr  error
	getCnt  int
	setCnt  int
	lastTTL time.Duration
}

func newStubCache() *stubCache {
	return &stubCache{store: map[string][]byte{}}
}

func (s *stubCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	s.getCnt++
	if s.getErr != nil {
		return false, s.getErr
	}
	data, ok := s.store[key]
	if !ok {
		return false, nil
	}
	*(dest.(*string)) = string(data)
	return true, nil
}

func (s *stubCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	s.setCnt++
	s.lastTTL = ttl
	if s.setErr != nil {
		return s.setErr
	}
	s.store[key] = []byte(value.(string))
	return nil
}

func (s *stubCache) InvalidateNamespace(ctx context.Context, namespace string) error { return nil }
func (s *stubCache) Ping(ctx context.Context) error                                  { return nil }
func (s *stubCache) Close() error                                                    { return nil }

func TestKeyDeterministicAcrossParamOrder(t *testing.T) {
	a := Key("app", "books", map[string]string{"author_name": "smith", "genre": "horror"})
	b := Key("app", "books", map[string]string{"genre": "horror", "author_name": "smith"})

	if a != b {
		t.Fatalf("equivalent params produced different keys: %q vs %q", a, b)
	}
	if a != "app:books:author_name=smith&genre=horror" {
		t.Fatalf("unexpected key: %q", a)
	}
}

func TestKeyWithoutParamsIsNamespace(t *testing.T) {
	if got := Key("app", "books", nil); got != "app:books" {
		t.Fatalf("expected bare namespace, got %q", got)
	}
}

func TestKeyDistinguishesParamValues(t *testing.T) {
	a := Key("app", "books", map[string]string{"author_name": "smith"})
	b := Key("app", "books", map[string]string{"author_name": "jones"})

	if a == b {
		t.Fatalf("different filters mapped to the same key %q", a)
	}
}

func TestGetOrComputeHitSkipsCompute(t *testing.T) {
	c := newStubCache()
	c.store["k"] = []byte("cached")

	computed := false
	got, err := GetOrCompute(context.Background(), c, "k", time.Minute, func() (string, error) {
		computed = true
		return "fresh", nil
	})
	if err != nil {
		t.Fatalf("get or compute: %v", err)
	}
	if got != "cached" {
		t.Fatalf("expected cached value, got %q", got)
	}
	if computed {
		t.Fatal("compute ran despite a cache hit")
	}
}

func TestGetOrComputeMissComputesAndStores(t *testing.T) {
	c := newStubCache()

	got, err := GetOrCompute(context.Background(), c, "k", time.Minute, func() (string, error) {
		return "fresh", nil
	})
	if err != nil {
		t.Fatalf("get or compute: %v", err)
	}
	if got != "fresh" {
		t.Fatalf("expected computed value, got %q", got)
	}
	if c.setCnt != 1 {
		t.Fatalf("expected one cache write, got %d", c.setCnt)
	}
	if c.lastTTL != time.Minute {
		t.Fatalf("expected ttl to be passed through, got %v", c.lastTTL)
	}
}

func TestGetOrComputeAbsorbsCacheErrors(t *testing.T) {
	c := newStubCache()
	c.getErr = errors.New("backend down")
	c.setErr = errors.New("backend down")

	got, err := GetOrCompute(context.Background(), c, "k", time.Minute, func() (string, error) {
		return "fresh", nil
	})
	if err != nil {
		t.Fatalf("cache errors must not fail the read: %v", err)
	}
	if got != "fresh" {
		t.Fatalf("expected computed value, got %q", got)
	}
}

func TestGetOrComputeNilCache(t *testing.T) {
	got, err := GetOrCompute(context.Background(), nil, "k", time.Minute, func() (string, error) {
		return "fresh", nil
	})
	if err != nil {
		t.Fatalf("nil cache must degrade to compute: %v", err)
	}
	if got != "fresh" {
		t.Fatalf("expected computed value, got %q", got)
	}
}

func TestGetOrComputePropagatesComputeError(t *testing.T) {
	c := newStubCache()
	wantErr := errors.New("query failed")

	_, err := GetOrCompute(context.Background(), c, "k", time.Minute, func() (string, error) {
		return "", wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected compute error, got %v", err)
	}
	if c.setCnt != 0 {
		t.Fatal("failed compute must not be cached")
	}
}
