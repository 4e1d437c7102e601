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

// CatalogItemService owns CRUD for the name-keyed side collections. One
// implementation serves product types, smells and gifts; the entity name and
// the duplicate error it raises are fixed at construction.
type CatalogItemService struct {
	entity        string
	duplicateName string
	store         store.Gateway
	now           func() time.Time
}

// NewProductTypeService builds the service for the productTypes collection.
func NewProductTypeService(gateway store.Gateway) *CatalogItemService {
	return newCatalogItemService(domain.EntityProductType, util.NameDuplicateSlugProductType, gateway)
}

// NewSmellService builds the service for the smells collection.
func NewSmellService(gateway store.Gateway) *CatalogItemService {
	return newCatalogItemService(domain.EntitySmell, util.NameDuplicateSlugSmell, gateway)
}

// NewGiftService builds the service for the gifts collection.
func NewGiftService(gateway store.Gateway) *CatalogItemService {
	return newCatalogItemService(domain.EntityGift, util.NameDuplicateSlugGift, gateway)
}

func newCatalogItemService(entity, duplicateName string, gateway store.Gateway) *CatalogItemService {
	return &CatalogItemService{
		entity:        entity,
		duplicateName: duplicateName,
		store:         gateway,
		now:           time.Now,
	}
}

// Create inserts a new item under a slug derived from its name.
func (s *CatalogItemService) Create(ctx context.Context, payload *dto.CatalogItemPayload) (*domain.CatalogItem, error) {
	if payload.Name == "" {
		return nil, util.NewValidation("name is required")
	}
	now := s.now().UTC()
	item := &domain.CatalogItem{
		ID:        store.NewID(),
		Name:      payload.Name,
		Slug:      slug.Make(payload.Name),
		Status:    payload.Status,
		Activated: payload.Activated,
		Audit: domain.Audit{
			CreatedAt: now,
			CreatedBy: systemActor,
			UpdatedAt: now,
			UpdatedBy: systemActor,
		},
	}
	if err := s.store.Create(ctx, s.entity, item); err != nil {
		if store.IsDuplicate(err) {
			return nil, util.New(s.duplicateName)
		}
		return nil, util.Wrap(util.NameStoreFailure, err)
	}
	return item, nil
}

// List returns a page of non-deleted items plus the total match count.
func (s *CatalogItemService) List(ctx context.Context, params ListParams) (*ListResult, error) {
	query := store.Query{
		Filter:     buildListFilter(params),
		Projection: listProjection,
		Sort:       buildSort(params),
		Skip:       params.Skip,
		Limit:      params.Limit,
	}
	var items []domain.CatalogItem
	if err := s.store.Find(ctx, s.entity, query, &items); err != nil {
		return nil, util.Wrap(util.NameStoreFailure, err)
	}
	total, err := s.store.Count(ctx, s.entity, query.Filter)
	if err != nil {
		return nil, util.Wrap(util.NameStoreFailure, err)
	}
	return &ListResult{Data: items, Total: total}, nil
}

// GetByID loads a single item.
func (s *CatalogItemService) GetByID(ctx context.Context, id string) (*domain.CatalogItem, error) {
	var item domain.CatalogItem
	if err := s.store.Get(ctx, s.entity, id, &item); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, util.New(util.NameNotFoundDocument)
		}
		return nil, util.Wrap(util.NameStoreFailure, err)
	}
	return &item, nil
}

// Update rewrites the mutable fields, rederiving the slug.
func (s *CatalogItemService) Update(ctx context.Context, id string, payload *dto.CatalogItemPayload) (*domain.CatalogItem, error) {
	if payload.Name == "" {
		return nil, util.NewValidation("name is required")
	}
	fields := bson.M{
		"name":      payload.Name,
		"slug":      slug.Make(payload.Name),
		"status":    payload.Status,
		"activated": payload.Activated,
		"updatedAt": s.now().UTC(),
		"updatedBy": systemActor,
	}
	var item domain.CatalogItem
	if err := s.store.Update(ctx, s.entity, id, fields, &item); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return nil, util.New(util.NameNotFoundDocument)
		case store.IsDuplicate(err):
			return nil, util.New(s.duplicateName)
		}
		return nil, util.Wrap(util.NameStoreFailure, err)
	}
	return &item, nil
}
