// Package cache provides pluggable result caching for graph analysis.
//
// Analysis results are pure functions of their input, which makes them ideal
// cache entries: the key is a hash of the input graph plus the operation and
// its arguments, and entries never go stale (TTLs exist only to bound
// storage). Three backends are provided:
//
//   - [FileCache]: directory-backed, used by the CLI
//   - [RedisCache]: Redis-backed, used by the server in multi-instance setups
//   - [NullCache]: no-op, for tests or --no-cache runs
package cache

import (
	"context"
	"time"
)

// Cache is the storage interface shared by all backends.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The second return is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A zero TTL means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer generates cache keys for analysis results.
type Keyer interface {
	// AnalysisKey generates a key for a cached analysis result from the
	// input hash, the operation name and any operation arguments (e.g.
	// path endpoints).
	AnalysisKey(inputHash, op string, args ...string) string
}

// DefaultKeyer hashes all key components into fixed-length keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// AnalysisKey generates a key for analysis result caching.
func (k *DefaultKeyer) AnalysisKey(inputHash, op string, args ...string) string {
	parts := append([]any{inputHash, op}, toAny(args)...)
	return hashKey("analysis", parts...)
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
