package store

import (
	"context"
	"testing"

	"github.com/dkreuer/grapple/pkg/errors"
	"github.com/dkreuer/grapple/pkg/graph"
)

func TestMemoryStore_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	defer s.Close(ctx)

	g := graph.Graph{
		Nodes: []string{"a", "b"},
		Edges: []graph.Edge{{From: "a", To: "b"}},
	}

	rec, err := s.Save(ctx, "deps", g)
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if rec.ID == "" {
		t.Error("Save should assign an ID")
	}
	if rec.Name != "deps" {
		t.Errorf("Name = %q, want deps", rec.Name)
	}
	if rec.CreatedAt.IsZero() {
		t.Error("Save should set CreatedAt")
	}

	got, err := s.Get(ctx, rec.ID)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if len(got.Graph.Nodes) != 2 || len(got.Graph.Edges) != 1 {
		t.Errorf("Get returned graph %+v, want the saved one", got.Graph)
	}
}

func TestMemoryStore_GetMissing(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Get(ctx, "nope")
	if !errors.Is(err, errors.ErrCodeGraphNotFound) {
		t.Errorf("Get(missing) = %v, want GRAPH_NOT_FOUND", err)
	}
}

func TestMemoryStore_List(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	for _, name := range []string{"one", "two", "three"} {
		if _, err := s.Save(ctx, name, graph.Graph{}); err != nil {
			t.Fatalf("Save error: %v", err)
		}
	}

	records, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(records) != 3 {
		t.Errorf("len(List) = %d, want 3", len(records))
	}
	for i := 1; i < len(records); i++ {
		if records[i].CreatedAt.After(records[i-1].CreatedAt) {
			t.Error("List should be ordered newest first")
		}
	}
}

func TestMemoryStore_Delete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	rec, _ := s.Save(ctx, "gone", graph.Graph{})
	if err := s.Delete(ctx, rec.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := s.Get(ctx, rec.ID); !errors.Is(err, errors.ErrCodeGraphNotFound) {
		t.Errorf("Get after Delete = %v, want GRAPH_NOT_FOUND", err)
	}
	if err := s.Delete(ctx, rec.ID); !errors.Is(err, errors.ErrCodeGraphNotFound) {
		t.Errorf("double Delete = %v, want GRAPH_NOT_FOUND", err)
	}
}
