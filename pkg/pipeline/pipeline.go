// Package pipeline provides the shared analysis execution layer for grapple.
//
// This package sits between the pure algorithms in pkg/graph and the hosts
// that invoke them (CLI commands, HTTP handlers). By centralizing caching,
// logging and observability hooks in one Runner, both entry points behave
// identically: the same input graph produces the same cache key, the same
// hook events and the same log shape no matter where the request came from.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, cached, err := runner.Sort(ctx, g)
//
// Analysis results are pure functions of their input, so cached entries are
// never stale; the TTL only bounds storage growth.
package pipeline

import (
	"time"
)

// Operation names used for cache keys, hook events and log fields.
const (
	OpSort   = "sort"
	OpCycles = "cycles"
	OpPath   = "path"
	OpBuild  = "build"
)

// DefaultTTL bounds how long cached analysis results are kept.
const DefaultTTL = 24 * time.Hour
