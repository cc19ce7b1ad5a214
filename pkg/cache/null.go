package cache

import (
	"context"
	"time"
)

// NullCache discards every write and reports every read as a miss, so the
// pipeline recomputes each analysis. It backs the CLI's --no-cache flag and
// the "none" backend in the server config.
type NullCache struct{}

// NewNullCache creates a cache that never stores analysis results.
func NewNullCache() Cache {
	return &NullCache{}
}

// Get always reports a miss.
func (c *NullCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

// Set discards the value.
func (c *NullCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return nil
}

// Delete is a no-op; there is nothing to remove.
func (c *NullCache) Delete(ctx context.Context, key string) error {
	return nil
}

// Close is a no-op.
func (c *NullCache) Close() error {
	return nil
}

// Ensure NullCache implements Cache.
var _ Cache = (*NullCache)(nil)
