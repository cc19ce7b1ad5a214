package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/dkreuer/grapple/pkg/graph"
)

// memCache is a minimal in-memory Cache that counts operations.
type memCache struct {
	data map[string][]byte
	gets int
	sets int
}

func newMemCache() *memCache {
	return &memCache{data: make(map[string][]byte)}
}

func (c *memCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.gets++
	data, ok := c.data[key]
	return data, ok, nil
}

func (c *memCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	c.sets++
	c.data[key] = data
	return nil
}

func (c *memCache) Delete(ctx context.Context, key string) error {
	delete(c.data, key)
	return nil
}

func (c *memCache) Close() error { return nil }

func testGraph() graph.Graph {
	return graph.Graph{
		Nodes: []string{"a", "b", "c"},
		Edges: []graph.Edge{{From: "a", To: "b"}, {From: "b", To: "c"}},
	}
}

func TestRunner_SortCachesResults(t *testing.T) {
	ctx := context.Background()
	mc := newMemCache()
	r := NewRunner(mc, nil, nil)

	first, cached, err := r.Sort(ctx, testGraph())
	if err != nil {
		t.Fatalf("Sort error: %v", err)
	}
	if cached {
		t.Error("first run should not be cached")
	}
	if mc.sets != 1 {
		t.Errorf("sets = %d, want 1", mc.sets)
	}

	second, cached, err := r.Sort(ctx, testGraph())
	if err != nil {
		t.Fatalf("Sort error: %v", err)
	}
	if !cached {
		t.Error("second run should hit the cache")
	}
	if len(second.Sorted) != len(first.Sorted) || second.HasCycle != first.HasCycle {
		t.Errorf("cached result %+v differs from computed %+v", second, first)
	}
}

func TestRunner_PathEndpointsAreKeyed(t *testing.T) {
	ctx := context.Background()
	mc := newMemCache()
	r := NewRunner(mc, nil, nil)

	ab, _, err := r.Path(ctx, testGraph(), "a", "b")
	if err != nil {
		t.Fatalf("Path error: %v", err)
	}
	ac, cached, err := r.Path(ctx, testGraph(), "a", "c")
	if err != nil {
		t.Fatalf("Path error: %v", err)
	}
	if cached {
		t.Error("different endpoints must not share cache entries")
	}
	if len(ab.Path) == len(ac.Path) {
		t.Errorf("paths a->b and a->c should differ: %v vs %v", ab.Path, ac.Path)
	}
}

func TestRunner_CyclesRoundTripThroughCache(t *testing.T) {
	ctx := context.Background()
	mc := newMemCache()
	r := NewRunner(mc, nil, nil)

	g := graph.Graph{
		Nodes: []string{"a", "b"},
		Edges: []graph.Edge{{From: "a", To: "b"}, {From: "b", To: "a"}},
	}

	first, _, err := r.Cycles(ctx, g)
	if err != nil {
		t.Fatalf("Cycles error: %v", err)
	}
	second, cached, err := r.Cycles(ctx, g)
	if err != nil {
		t.Fatalf("Cycles error: %v", err)
	}
	if !cached {
		t.Error("second run should hit the cache")
	}
	if !second.HasCycle || len(second.Cycles) != len(first.Cycles) {
		t.Errorf("cached result %+v differs from computed %+v", second, first)
	}
}

func TestRunner_NilCacheDisablesCaching(t *testing.T) {
	ctx := context.Background()
	r := NewRunner(nil, nil, nil)

	if _, cached, err := r.Sort(ctx, testGraph()); err != nil || cached {
		t.Errorf("Sort = (cached=%v, err=%v), want uncached success", cached, err)
	}
	if _, cached, err := r.Sort(ctx, testGraph()); err != nil || cached {
		t.Errorf("NullCache must never report a hit: cached=%v err=%v", cached, err)
	}
}

func TestRunner_BuildIsNotCached(t *testing.T) {
	ctx := context.Background()
	mc := newMemCache()
	r := NewRunner(mc, nil, nil)

	g := r.Build(ctx, []graph.Relationship{{From: "a", To: "b"}})
	if len(g.Nodes) != 2 || len(g.Edges) != 1 {
		t.Errorf("Build returned %+v", g)
	}
	if mc.gets != 0 || mc.sets != 0 {
		t.Errorf("Build touched the cache: gets=%d sets=%d", mc.gets, mc.sets)
	}
}
