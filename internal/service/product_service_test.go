package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/spec-kit/catalog-admin/internal/api/dto"
	"github.com/spec-kit/catalog-admin/internal/domain"
	"github.com/spec-kit/catalog-admin/internal/store"
	"github.com/spec-kit/catalog-admin/pkg/util"
)

func newProductFixture() (*ProductService, *store.Memory) {
	gateway := store.NewMemory(store.UniqueSlugIndexes(domain.EntityProduct)...)
	return NewProductService(gateway), gateway
}

func TestProductCreateDerivesSlug(t *testing.T) {
	t.Parallel()

	svc, _ := newProductFixture()
	product, err := svc.Create(context.Background(), &dto.ProductPayload{
		Name:      "Blue Widget",
		Price:     9.5,
		Activated: true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, product.ID)
	require.Equal(t, "blue-widget", product.Slug)
	require.False(t, product.Deleted)
	require.False(t, product.CreatedAt.IsZero())
}

func TestProductCreateRequiresName(t *testing.T) {
	t.Parallel()

	svc, _ := newProductFixture()
	_, err := svc.Create(context.Background(), &dto.ProductPayload{})
	requireDomainError(t, err, util.NameValidationFailed)
}

func TestProductCreateDuplicateSlug(t *testing.T) {
	t.Parallel()

	svc, _ := newProductFixture()
	ctx := context.Background()

	_, err := svc.Create(ctx, &dto.ProductPayload{Name: "Blue Widget"})
	require.NoError(t, err)

	// names differing only in case and punctuation collide on the slug
	_, err = svc.Create(ctx, &dto.ProductPayload{Name: "blue widget!"})
	requireDomainError(t, err, util.NameDuplicateSlugProduct)
}

func TestProductSoftDeleteFreesSlug(t *testing.T) {
	t.Parallel()

	svc, gateway := newProductFixture()
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.ProductPayload{Name: "Blue Widget"})
	require.NoError(t, err)

	require.NoError(t, gateway.Update(ctx, domain.EntityProduct, created.ID, bson.M{"deleted": true}, nil))

	_, err = svc.Create(ctx, &dto.ProductPayload{Name: "Blue Widget"})
	require.NoError(t, err)
}

func TestProductListWindowAndSearch(t *testing.T) {
	t.Parallel()

	svc, _ := newProductFixture()
	ctx := context.Background()
	for _, name := range []string{"Gamma", "Alpha", "Beta"} {
		_, err := svc.Create(ctx, &dto.ProductPayload{Name: name, Activated: name != "Beta"})
		require.NoError(t, err)
	}

	result, err := svc.List(ctx, ListParams{Limit: 25})
	require.NoError(t, err)
	require.EqualValues(t, 3, result.Total)
	products := result.Data.([]domain.Product)
	require.Len(t, products, 3)
	require.Equal(t, "alpha", products[0].Slug)
	require.Equal(t, "gamma", products[2].Slug)
	// audit fields are projected out of list responses
	require.True(t, products[0].CreatedAt.IsZero())
	require.NotEmpty(t, products[0].ID)

	page, err := svc.List(ctx, ListParams{Skip: 1, Limit: 1})
	require.NoError(t, err)
	require.EqualValues(t, 3, page.Total)
	require.Equal(t, "beta", page.Data.([]domain.Product)[0].Slug)

	desc, err := svc.List(ctx, ListParams{Limit: 25, Order: "DESC"})
	require.NoError(t, err)
	require.Equal(t, "gamma", desc.Data.([]domain.Product)[0].Slug)

	search, err := svc.List(ctx, ListParams{Limit: 25, Q: "ALP"})
	require.NoError(t, err)
	require.EqualValues(t, 1, search.Total)
	require.Equal(t, "alpha", search.Data.([]domain.Product)[0].Slug)

	activated := true
	active, err := svc.List(ctx, ListParams{Limit: 25, Activated: &activated})
	require.NoError(t, err)
	require.EqualValues(t, 2, active.Total)
}

func TestProductGetByID(t *testing.T) {
	t.Parallel()

	svc, _ := newProductFixture()
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.ProductPayload{Name: "Blue Widget"})
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)
	require.Equal(t, "Blue Widget", got.Name)

	_, err = svc.GetByID(ctx, "missing")
	requireDomainError(t, err, util.NameNotFoundDocument)
}

func TestProductUpdate(t *testing.T) {
	t.Parallel()

	svc, _ := newProductFixture()
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.ProductPayload{Name: "Blue Widget", Price: 9.5})
	require.NoError(t, err)
	other, err := svc.Create(ctx, &dto.ProductPayload{Name: "Red Widget"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, &dto.ProductPayload{Name: "Green Widget", Price: 11})
	require.NoError(t, err)
	require.Equal(t, "green-widget", updated.Slug)
	require.EqualValues(t, 11, updated.Price)

	_, err = svc.Update(ctx, other.ID, &dto.ProductPayload{Name: "Green Widget"})
	requireDomainError(t, err, util.NameDuplicateSlugProduct)

	_, err = svc.Update(ctx, "missing", &dto.ProductPayload{Name: "Whatever"})
	requireDomainError(t, err, util.NameNotFoundDocument)
}
