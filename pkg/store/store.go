// Package store persists named graphs so they can be analyzed repeatedly
// without resubmitting the full payload.
//
// Two backends are provided: [MemoryStore] for tests and single-process
// development, and [MongoStore] for durable server deployments. Both assign
// opaque record IDs on save; names are user-supplied labels and need not be
// unique.
package store

import (
	"context"
	"time"

	"github.com/dkreuer/grapple/pkg/errors"
	"github.com/dkreuer/grapple/pkg/graph"
)

// Record is a stored graph with identity and bookkeeping fields.
type Record struct {
	ID        string      `json:"id" bson:"_id"`
	Name      string      `json:"name" bson:"name"`
	Graph     graph.Graph `json:"graph" bson:"graph"`
	CreatedAt time.Time   `json:"createdAt" bson:"created_at"`
}

// Store is the persistence interface for named graphs.
// Implementations must be safe for concurrent use.
type Store interface {
	// Save stores a graph under a name and returns the full record with
	// its assigned ID.
	Save(ctx context.Context, name string, g graph.Graph) (Record, error)

	// Get returns the record with the given ID, or an error carrying
	// errors.ErrCodeGraphNotFound.
	Get(ctx context.Context, id string) (Record, error)

	// List returns all records, newest first.
	List(ctx context.Context) ([]Record, error)

	// Delete removes a record. Deleting a missing ID returns the same
	// not-found error as Get.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}

// notFound builds the canonical not-found error for a record ID.
func notFound(id string) error {
	return errors.New(errors.ErrCodeGraphNotFound, "graph %s not found", id)
}
