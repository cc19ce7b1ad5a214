package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/dkreuer/grapple/pkg/cache"
	"github.com/dkreuer/grapple/pkg/graph"
	"github.com/dkreuer/grapple/pkg/observability"
)

// Runner executes graph analysis operations with result caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store analysis results. Multiple goroutines can safely share one Runner.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
	TTL    time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If c is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
		TTL:    DefaultTTL,
	}
}

// Close releases the underlying cache.
func (r *Runner) Close() error {
	return r.Cache.Close()
}

// Sort runs a topological sort with caching.
// The second return is true when the result came from cache.
func (r *Runner) Sort(ctx context.Context, g graph.Graph) (graph.TopologicalSortResult, bool, error) {
	var result graph.TopologicalSortResult
	cached, err := r.run(ctx, OpSort, g, nil, &result, func() any {
		return graph.TopologicalSort(g)
	})
	return result, cached, err
}

// Cycles runs cycle detection with caching.
func (r *Runner) Cycles(ctx context.Context, g graph.Graph) (graph.CycleDetectionResult, bool, error) {
	var result graph.CycleDetectionResult
	cached, err := r.run(ctx, OpCycles, g, nil, &result, func() any {
		return graph.DetectCycles(g)
	})
	return result, cached, err
}

// Path runs a path search with caching. The endpoints are part of the
// cache key.
func (r *Runner) Path(ctx context.Context, g graph.Graph, from, to string) (graph.PathResult, bool, error) {
	var result graph.PathResult
	cached, err := r.run(ctx, OpPath, g, []string{from, to}, &result, func() any {
		return graph.FindPath(g, from, to)
	})
	return result, cached, err
}

// Build assembles a graph from relationships. Assembly is a single linear
// pass, cheaper than the cache round-trip, so it is never cached.
func (r *Runner) Build(ctx context.Context, rels []graph.Relationship) graph.Graph {
	start := time.Now()
	observability.Analysis().OnAnalyzeStart(ctx, OpBuild, len(rels))

	g := graph.BuildDAG(rels)

	duration := time.Since(start)
	observability.Analysis().OnAnalyzeComplete(ctx, OpBuild, len(g.Nodes), duration, false)
	r.Logger.Debug("built graph",
		"relationships", len(rels),
		"nodes", len(g.Nodes),
		"edges", len(g.Edges),
		"duration", duration)
	return g
}

// run is the shared cache-or-compute path. result must be a pointer to the
// operation's result type; compute must return a value of that same type.
func (r *Runner) run(ctx context.Context, op string, g graph.Graph, args []string, result any, compute func() any) (bool, error) {
	start := time.Now()
	observability.Analysis().OnAnalyzeStart(ctx, op, len(g.Nodes))

	key, keyed := r.key(op, g, args)
	if keyed {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			if err := json.Unmarshal(data, result); err == nil {
				observability.Cache().OnCacheHit(ctx, op)
				observability.Analysis().OnAnalyzeComplete(ctx, op, len(g.Nodes), time.Since(start), true)
				r.Logger.Debug("analysis cache hit", "op", op, "nodes", len(g.Nodes))
				return true, nil
			}
			// Undecodable entry: drop it and recompute.
			_ = r.Cache.Delete(ctx, key)
		} else if err != nil {
			// Cache trouble never fails an analysis; recompute instead.
			r.Logger.Warn("cache read failed", "op", op, "err", err)
		} else {
			observability.Cache().OnCacheMiss(ctx, op)
		}
	}

	value := compute()
	data, err := json.Marshal(value)
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, result); err != nil {
		return false, err
	}

	if keyed {
		if err := r.Cache.Set(ctx, key, data, r.TTL); err != nil {
			r.Logger.Warn("cache write failed", "op", op, "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, op, len(data))
		}
	}

	duration := time.Since(start)
	observability.Analysis().OnAnalyzeComplete(ctx, op, len(g.Nodes), duration, false)
	r.Logger.Debug("analysis complete",
		"op", op,
		"nodes", len(g.Nodes),
		"edges", len(g.Edges),
		"duration", duration)
	return false, nil
}

// key computes the cache key for an operation over g. The boolean is false
// when the input cannot be hashed, which disables caching for that call.
func (r *Runner) key(op string, g graph.Graph, args []string) (string, bool) {
	data, err := json.Marshal(g)
	if err != nil {
		return "", false
	}
	return r.Keyer.AnalysisKey(cache.Hash(data), op, args...), true
}
