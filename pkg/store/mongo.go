package store

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dkreuer/grapple/pkg/errors"
	"github.com/dkreuer/grapple/pkg/graph"
)

const collectionName = "graphs"

// MongoStore persists records in a MongoDB collection.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// MongoOptions configures the MongoDB connection.
type MongoOptions struct {
	URI      string // e.g. "mongodb://localhost:27017"
	Database string // e.g. "grapple"
}

// NewMongoStore connects to MongoDB and verifies the connection with a ping.
func NewMongoStore(ctx context.Context, opts MongoOptions) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(opts.URI))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "connect to %s", opts.URI)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeStore, err, "ping %s", opts.URI)
	}
	return &MongoStore{
		client: client,
		coll:   client.Database(opts.Database).Collection(collectionName),
	}, nil
}

// Save stores a graph under a fresh ID.
func (s *MongoStore) Save(ctx context.Context, name string, g graph.Graph) (Record, error) {
	rec := Record{
		ID:        uuid.NewString(),
		Name:      name,
		Graph:     g,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.coll.InsertOne(ctx, rec); err != nil {
		return Record{}, errors.Wrap(errors.ErrCodeStore, err, "save graph %q", name)
	}
	return rec, nil
}

// Get returns the record with the given ID.
func (s *MongoStore) Get(ctx context.Context, id string) (Record, error) {
	var rec Record
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&rec)
	if stderrors.Is(err, mongo.ErrNoDocuments) {
		return Record{}, notFound(id)
	}
	if err != nil {
		return Record{}, errors.Wrap(errors.ErrCodeStore, err, "load graph %s", id)
	}
	return rec, nil
}

// List returns all records, newest first.
func (s *MongoStore) List(ctx context.Context) ([]Record, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "list graphs")
	}
	defer cursor.Close(ctx)

	var records []Record
	if err := cursor.All(ctx, &records); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "decode graph records")
	}
	return records, nil
}

// Delete removes a record.
func (s *MongoStore) Delete(ctx context.Context, id string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "delete graph %s", id)
	}
	if res.DeletedCount == 0 {
		return notFound(id)
	}
	return nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Ensure MongoStore implements Store.
var _ Store = (*MongoStore)(nil)
