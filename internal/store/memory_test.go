package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type widget struct {
	ID      string  `bson:"_id,omitempty"`
	Name    string  `bson:"name"`
	Slug    string  `bson:"slug"`
	Price   float64 `bson:"price"`
	Deleted bool    `bson:"deleted"`
}

func TestMemoryCreateEnforcesPartialUniqueIndex(t *testing.T) {
	t.Parallel()

	m := NewMemory(UniqueSlugIndexes("widgets")...)
	ctx := context.Background()

	require.NoError(t, m.Create(ctx, "widgets", &widget{ID: "a", Name: "Blue Widget", Slug: "blue-widget"}))

	err := m.Create(ctx, "widgets", &widget{ID: "b", Name: "blue widget!", Slug: "blue-widget"})
	require.True(t, IsDuplicate(err))

	// soft-deleted documents do not hold their slug
	var updated widget
	require.NoError(t, m.Update(ctx, "widgets", "a", bson.M{"deleted": true}, &updated))
	require.NoError(t, m.Create(ctx, "widgets", &widget{ID: "c", Slug: "blue-widget"}))
}

func TestMemoryUpdateEnforcesUniqueIndex(t *testing.T) {
	t.Parallel()

	m := NewMemory(UniqueSlugIndexes("widgets")...)
	ctx := context.Background()

	require.NoError(t, m.Create(ctx, "widgets", &widget{ID: "a", Slug: "alpha"}))
	require.NoError(t, m.Create(ctx, "widgets", &widget{ID: "b", Slug: "beta"}))

	err := m.Update(ctx, "widgets", "b", bson.M{"slug": "alpha"}, nil)
	require.True(t, IsDuplicate(err))

	// updating a document to its own slug is not a collision
	require.NoError(t, m.Update(ctx, "widgets", "a", bson.M{"slug": "alpha", "price": 2.5}, nil))
}

func TestMemoryUpdateNotFound(t *testing.T) {
	t.Parallel()

	m := NewMemory()
	err := m.Update(context.Background(), "widgets", "missing", bson.M{"price": 1.0}, nil)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryFindFilterSortWindow(t *testing.T) {
	t.Parallel()

	m := NewMemory()
	ctx := context.Background()
	seed := []widget{
		{ID: "1", Name: "Gamma", Slug: "gamma"},
		{ID: "2", Name: "Alpha", Slug: "alpha"},
		{ID: "3", Name: "Beta", Slug: "beta"},
		{ID: "4", Name: "Gone", Slug: "gone", Deleted: true},
	}
	for i := range seed {
		require.NoError(t, m.Create(ctx, "widgets", &seed[i]))
	}

	filter := bson.M{"deleted": false}
	sort := bson.D{{Key: "slug", Value: 1}}

	var all []widget
	require.NoError(t, m.Find(ctx, "widgets", Query{Filter: filter, Sort: sort}, &all))
	require.Len(t, all, 3)
	require.Equal(t, []string{"alpha", "beta", "gamma"}, []string{all[0].Slug, all[1].Slug, all[2].Slug})

	var page []widget
	require.NoError(t, m.Find(ctx, "widgets", Query{Filter: filter, Sort: sort, Skip: 1, Limit: 1}, &page))
	require.Len(t, page, 1)
	require.Equal(t, "beta", page[0].Slug)

	total, err := m.Count(ctx, "widgets", filter)
	require.NoError(t, err)
	require.EqualValues(t, 3, total)
}

func TestMemoryFindRegexCaseInsensitive(t *testing.T) {
	t.Parallel()

	m := NewMemory()
	ctx := context.Background()
	require.NoError(t, m.Create(ctx, "widgets", &widget{ID: "1", Slug: "blue-widget"}))
	require.NoError(t, m.Create(ctx, "widgets", &widget{ID: "2", Slug: "red-widget"}))

	filter := bson.M{"$and": []bson.M{
		{"deleted": false},
		{"$or": []bson.M{
			{"slug": bson.M{"$regex": "BLUE", "$options": "i"}},
		}},
	}}
	var hits []widget
	require.NoError(t, m.Find(ctx, "widgets", Query{Filter: filter}, &hits))
	require.Len(t, hits, 1)
	require.Equal(t, "blue-widget", hits[0].Slug)
}

func TestMemoryProjectionModes(t *testing.T) {
	t.Parallel()

	m := NewMemory()
	ctx := context.Background()
	require.NoError(t, m.Create(ctx, "widgets", &widget{ID: "1", Name: "Alpha", Slug: "alpha", Price: 9.5}))

	var included widget
	require.NoError(t, m.FindOne(ctx, "widgets", bson.M{"_id": "1"}, bson.M{"name": 1}, &included))
	require.Equal(t, "1", included.ID)
	require.Equal(t, "Alpha", included.Name)
	require.Empty(t, included.Slug)

	var excluded widget
	require.NoError(t, m.FindOne(ctx, "widgets", bson.M{"_id": "1"}, bson.M{"name": 0}, &excluded))
	require.Empty(t, excluded.Name)
	require.Equal(t, "alpha", excluded.Slug)
}

func TestMemoryGetMissing(t *testing.T) {
	t.Parallel()

	m := NewMemory()
	var w widget
	require.ErrorIs(t, m.Get(context.Background(), "widgets", "nope", &w), ErrNotFound)
}
