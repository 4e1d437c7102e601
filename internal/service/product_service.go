package service

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/spec-kit/catalog-admin/internal/api/dto"
	"github.com/spec-kit/catalog-admin/internal/domain"
	"github.com/spec-kit/catalog-admin/internal/slug"
	"github.com/spec-kit/catalog-admin/internal/store"
	"github.com/spec-kit/catalog-admin/pkg/util"
)

// systemActor is recorded in audit fields for writes made through the admin
// API, which has no per-user attribution requirement.
const systemActor = "SYSTEMS"

// ProductService owns CRUD for the products collection. Slug uniqueness is
// enforced by the store's unique index; a duplicate-key result is the
// authoritative signal, there is no pre-read.
type ProductService struct {
	store store.Gateway
	now   func() time.Time
}

// NewProductService wires the service to the document store gateway.
func NewProductService(gateway store.Gateway) *ProductService {
	return &ProductService{store: gateway, now: time.Now}
}

// Create inserts a new product under a slug derived from its name.
func (s *ProductService) Create(ctx context.Context, payload *dto.ProductPayload) (*domain.Product, error) {
	if payload.Name == "" {
		return nil, util.NewValidation("name is required")
	}
	now := s.now().UTC()
	product := &domain.Product{
		ID:          store.NewID(),
		Name:        payload.Name,
		Slug:        slug.Make(payload.Name),
		Weight:      payload.Weight,
		Smells:      payload.Smells,
		Gifts:       payload.Gifts,
		Price:       payload.Price,
		ProductType: payload.ProductType,
		Quantity:    payload.Quantity,
		Skin:        payload.Skin,
		Status:      payload.Status,
		Activated:   payload.Activated,
		Audit: domain.Audit{
			CreatedAt: now,
			CreatedBy: systemActor,
			UpdatedAt: now,
			UpdatedBy: systemActor,
		},
	}
	if err := s.store.Create(ctx, domain.EntityProduct, product); err != nil {
		if store.IsDuplicate(err) {
			return nil, util.New(util.NameDuplicateSlugProduct)
		}
		return nil, util.Wrap(util.NameStoreFailure, err)
	}
	return product, nil
}

// List returns a page of non-deleted products plus the total match count.
func (s *ProductService) List(ctx context.Context, params ListParams) (*ListResult, error) {
	query := store.Query{
		Filter:     buildListFilter(params),
		Projection: listProjection,
		Sort:       buildSort(params),
		Skip:       params.Skip,
		Limit:      params.Limit,
	}
	var products []domain.Product
	if err := s.store.Find(ctx, domain.EntityProduct, query, &products); err != nil {
		return nil, util.Wrap(util.NameStoreFailure, err)
	}
	total, err := s.store.Count(ctx, domain.EntityProduct, query.Filter)
	if err != nil {
		return nil, util.Wrap(util.NameStoreFailure, err)
	}
	return &ListResult{Data: products, Total: total}, nil
}

// GetByID loads a single product.
func (s *ProductService) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	var product domain.Product
	if err := s.store.Get(ctx, domain.EntityProduct, id, &product); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, util.New(util.NameNotFoundDocument)
		}
		return nil, util.Wrap(util.NameStoreFailure, err)
	}
	return &product, nil
}

// Update rewrites the mutable product fields, rederiving the slug.
func (s *ProductService) Update(ctx context.Context, id string, payload *dto.ProductPayload) (*domain.Product, error) {
	if payload.Name == "" {
		return nil, util.NewValidation("name is required")
	}
	fields := bson.M{
		"name":        payload.Name,
		"slug":        slug.Make(payload.Name),
		"weight":      payload.Weight,
		"smells":      payload.Smells,
		"gifts":       payload.Gifts,
		"price":       payload.Price,
		"productType": payload.ProductType,
		"quantity":    payload.Quantity,
		"skin":        payload.Skin,
		"status":      payload.Status,
		"activated":   payload.Activated,
		"updatedAt":   s.now().UTC(),
		"updatedBy":   systemActor,
	}
	var product domain.Product
	if err := s.store.Update(ctx, domain.EntityProduct, id, fields, &product); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return nil, util.New(util.NameNotFoundDocument)
		case store.IsDuplicate(err):
			return nil, util.New(util.NameDuplicateSlugProduct)
		}
		return nil, util.Wrap(util.NameStoreFailure, err)
	}
	return &product, nil
}
