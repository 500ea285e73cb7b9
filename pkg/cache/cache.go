package cache

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Cache is the contract for the read-through cache layer. Implementations
// (Redis, in-memory) store JSON-encoded values.
type Cache interface {
	// Get reads key into dest. found=false means a miss; dest is untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value under key with a TTL. ttl <= 0 means no expiration.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// InvalidateNamespace removes every key under the given namespace.
	InvalidateNamespace(ctx context.Context, namespace string) error

	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error

	Close() error
}

// Namespace joins the configured key prefix with a logical namespace,
// e.g. ("library-cache", "books") -> "library-cache:books".
func Namespace(prefix, namespace string) string {
	return prefix + ":" + namespace
}

// Key derives a deterministic cache key from the full set of request
// parameters. Parameter names are sorted so equivalent filters always map
// to the same key.
func Key(prefix, namespace string, params map[string]string) string {
	var b strings.Builder
	b.WriteString(Namespace(prefix, namespace))

	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	for i, name := range names {
		if i == 0 {
			b.WriteString(":")
		} else {
			b.WriteString("&")
		}
		b.WriteString(name)
		b.WriteString("=")
		b.WriteString(params[name])
	}

	return b.String()
}

// GetOrCompute is the read-through path: return the cached value when
// present and unexpired, otherwise compute, store with ttl, and return.
//
// Cache failures never fail the read. A backend error on Get falls
// through to compute; an error on Set is logged and the computed value is
// still returned. A nil cache degrades to a plain compute call.
func GetOrCompute[T any](ctx context.Context, c Cache, key string, ttl time.Duration, compute func() (T, error)) (T, error) {
	if c != nil {
		var cached T
		found, err := c.Get(ctx, key, &cached)
		if err != nil {
			log.Debug().Err(err).Str("key", key).Msg("cache read failed")
		} else if found {
			return cached, nil
		}
	}

	value, err := compute()
	if err != nil {
		return value, err
	}

	if c != nil {
		if err := c.Set(ctx, key, value, ttl); err != nil {
			log.Debug().Err(err).Str("key", key).Msg("cache write failed")
		}
	}

	return value, nil
}
