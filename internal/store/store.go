// Package store defines the document store gateway the services persist
// through, keyed by entity name, filter, projection and find options. Two
// backends exist: mongo for deployments and an in-memory one for tests and
// local development. Both enforce the declared unique indexes, which are the
// authoritative duplicate signal for slug and email uniqueness.
package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ErrNotFound reports that no document matched a FindOne, Get or Update.
var ErrNotFound = errors.New("store: document not found")

// DuplicateKeyError reports a unique index violation on a write.
type DuplicateKeyError struct {
	Entity string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("store: duplicate key on %s", e.Entity)
}

// IsDuplicate reports whether err is a unique index violation.
func IsDuplicate(err error) bool {
	var de *DuplicateKeyError
	return errors.As(err, &de)
}

// Query bundles the find options a list operation needs.
type Query struct {
	Filter     bson.M
	Projection bson.M
	Sort       bson.D
	Skip       int64
	Limit      int64
}

// UniqueIndex declares a single-field unique constraint, optionally partial
// so soft-deleted documents do not hold their slug forever.
type UniqueIndex struct {
	Entity  string
	Field   string
	Partial bson.M
}

// Gateway is the document store collaborator. All methods are a single round
// trip; callers wrap failures in typed errors before they reach the
// dispatcher.
type Gateway interface {
	// Create inserts doc into entity. Returns DuplicateKeyError when a
	// unique index is violated.
	Create(ctx context.Context, entity string, doc any) error
	// Find decodes matching documents into results, which must be a
	// pointer to a slice.
	Find(ctx context.Context, entity string, q Query, results any) error
	// FindOne decodes the first match into result or returns ErrNotFound.
	FindOne(ctx context.Context, entity string, filter, projection bson.M, result any) error
	// Get loads a document by id.
	Get(ctx context.Context, entity, id string, result any) error
	// Update applies a field-set update to the document with the given id
	// and decodes the post-update document into result.
	Update(ctx context.Context, entity, id string, update bson.M, result any) error
	// Count returns the number of documents matching filter.
	Count(ctx context.Context, entity string, filter bson.M) (int64, error)
}

// NewID mints a document id.
func NewID() string {
	return bson.NewObjectID().Hex()
}

// UniqueSlugIndexes declares the per-entity slug constraints. The partial
// filter scopes uniqueness to non-deleted documents.
func UniqueSlugIndexes(entities ...string) []UniqueIndex {
	indexes := make([]UniqueIndex, 0, len(entities))
	for _, entity := range entities {
		indexes = append(indexes, UniqueIndex{
			Entity:  entity,
			Field:   "slug",
			Partial: bson.M{"deleted": false},
		})
	}
	return indexes
}
