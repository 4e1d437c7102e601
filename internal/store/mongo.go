package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Mongo is the production Gateway backed by a mongo database.
type Mongo struct {
	db *mongo.Database
}

// NewMongo wraps the given database.
func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{db: db}
}

// EnsureIndexes creates the declared unique indexes. Safe to call on every
// startup; existing identical indexes are a no-op.
func (m *Mongo) EnsureIndexes(ctx context.Context, indexes []UniqueIndex) error {
	for _, idx := range indexes {
		opts := options.Index().SetUnique(true)
		if idx.Partial != nil {
			opts.SetPartialFilterExpression(idx.Partial)
		}
		model := mongo.IndexModel{
			Keys:    bson.D{{Key: idx.Field, Value: 1}},
			Options: opts,
		}
		if _, err := m.db.Collection(idx.Entity).Indexes().CreateOne(ctx, model); err != nil {
			return err
		}
	}
	return nil
}

func (m *Mongo) Create(ctx context.Context, entity string, doc any) error {
	_, err := m.db.Collection(entity).InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return &DuplicateKeyError{Entity: entity}
		}
		return err
	}
	return nil
}

func (m *Mongo) Find(ctx context.Context, entity string, q Query, results any) error {
	filter := q.Filter
	if filter == nil {
		filter = bson.M{}
	}
	opts := options.Find().SetSkip(q.Skip)
	if q.Limit > 0 {
		opts.SetLimit(q.Limit)
	}
	if q.Projection != nil {
		opts.SetProjection(q.Projection)
	}
	if q.Sort != nil {
		opts.SetSort(q.Sort)
	}
	cursor, err := m.db.Collection(entity).Find(ctx, filter, opts)
	if err != nil {
		return err
	}
	return cursor.All(ctx, results)
}

func (m *Mongo) FindOne(ctx context.Context, entity string, filter, projection bson.M, result any) error {
	if filter == nil {
		filter = bson.M{}
	}
	opts := options.FindOne()
	if projection != nil {
		opts.SetProjection(projection)
	}
	err := m.db.Collection(entity).FindOne(ctx, filter, opts).Decode(result)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

func (m *Mongo) Get(ctx context.Context, entity, id string, result any) error {
	return m.FindOne(ctx, entity, bson.M{"_id": id}, nil, result)
}

func (m *Mongo) Update(ctx context.Context, entity, id string, update bson.M, result any) error {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := m.db.Collection(entity).
		FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": update}, opts).
		Decode(result)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if err != nil && mongo.IsDuplicateKeyError(err) {
		return &DuplicateKeyError{Entity: entity}
	}
	return err
}

func (m *Mongo) Count(ctx context.Context, entity string, filter bson.M) (int64, error) {
	if filter == nil {
		filter = bson.M{}
	}
	return m.db.Collection(entity).CountDocuments(ctx, filter)
}
