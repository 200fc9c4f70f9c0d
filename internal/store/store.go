package store

import (
	"context"
)

// FindOptions narrows a Find call. A zero Limit means "no limit"; Sort is a
// bson sort document (e.g. bson.D{{Key: "created_at", Value: -1}}) and may be
// nil for the store's natural order.
type FindOptions struct {
	Limit int64
	Sort  interface{}
}

// DocumentStore is the narrow pass-through contract the backend needs from a
// document database: single-document inserts, total counts, limited finds and
// collection-name introspection. Every call is an independent store operation
// with no cross-call ordering guarantee or transaction.
type DocumentStore interface {
	// InsertOne writes a single document and returns its store-assigned id.
	InsertOne(ctx context.Context, collection string, document interface{}) (string, error)

	// Count returns the number of documents matching filter. An empty filter
	// counts the whole collection.
	Count(ctx context.Context, collection string, filter interface{}) (int64, error)

	// Find decodes matching documents into out, which must be a pointer to a
	// slice of a bson-decodable type.
	Find(ctx context.Context, collection string, filter interface{}, opts FindOptions, out interface{}) error

	// ListCollectionNames returns the names of all collections in the database.
	ListCollectionNames(ctx context.Context) ([]string, error)

	// DatabaseName returns the name of the backing database.
	DatabaseName() string

	Ping(ctx context.Context) error
	Disconnect(ctx context.Context) error
}
