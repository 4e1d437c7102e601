package service

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/spec-kit/catalog-admin/internal/api/dto"
	"github.com/spec-kit/catalog-admin/internal/auth"
	"github.com/spec-kit/catalog-admin/internal/domain"
	"github.com/spec-kit/catalog-admin/internal/slug"
	"github.com/spec-kit/catalog-admin/internal/store"
	"github.com/spec-kit/catalog-admin/pkg/util"
)

// AccountService owns CRUD for game account listings. The listed account's
// own password is catalog data but is still stored hashed.
type AccountService struct {
	store      store.Gateway
	bcryptCost int
	now        func() time.Time
}

// NewAccountService wires the service to the document store gateway.
func NewAccountService(gateway store.Gateway, bcryptCost int) *AccountService {
	return &AccountService{store: gateway, bcryptCost: bcryptCost, now: time.Now}
}

// Create inserts a new account listing under a slug derived from its
// user name.
func (s *AccountService) Create(ctx context.Context, payload *dto.AccountPayload) (*domain.Account, error) {
	if payload.UserName == "" {
		return nil, util.NewValidation("userName is required")
	}
	if payload.Password == "" {
		return nil, util.NewValidation("password is required")
	}
	hash, err := auth.HashPassword(payload.Password, s.bcryptCost)
	if err != nil {
		return nil, util.Wrap(util.NameInternalError, err)
	}

	now := s.now().UTC()
	account := &domain.Account{
		ID:           store.NewID(),
		UserName:     payload.UserName,
		Slug:         slug.Make(payload.UserName),
		PasswordHash: hash,
		Rank:         payload.Rank,
		Price:        payload.Price,
		Hero:         payload.Hero,
		Gold:         payload.Gold,
		Skin:         payload.Skin,
		PearlPoints:  payload.PearlPoints,
		Status:       payload.Status,
		Activated:    payload.Activated,
		Audit: domain.Audit{
			CreatedAt: now,
			CreatedBy: systemActor,
			UpdatedAt: now,
			UpdatedBy: systemActor,
		},
	}
	if payload.Thumbnail != nil {
		account.Thumbnail = payload.Thumbnail.Src
	}
	if err := s.store.Create(ctx, domain.EntityAccount, account); err != nil {
		if store.IsDuplicate(err) {
			return nil, util.New(util.NameDuplicateSlugAccount)
		}
		return nil, util.Wrap(util.NameStoreFailure, err)
	}
	return account, nil
}

// List returns a page of non-deleted account listings plus the total match
// count.
func (s *AccountService) List(ctx context.Context, params ListParams) (*ListResult, error) {
	query := store.Query{
		Filter:     buildListFilter(params),
		Projection: listProjection,
		Sort:       buildSort(params),
		Skip:       params.Skip,
		Limit:      params.Limit,
	}
	var accounts []domain.Account
	if err := s.store.Find(ctx, domain.EntityAccount, query, &accounts); err != nil {
		return nil, util.Wrap(util.NameStoreFailure, err)
	}
	total, err := s.store.Count(ctx, domain.EntityAccount, query.Filter)
	if err != nil {
		return nil, util.Wrap(util.NameStoreFailure, err)
	}
	return &ListResult{Data: accounts, Total: total}, nil
}

// GetByID loads a single account listing.
func (s *AccountService) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	var account domain.Account
	if err := s.store.Get(ctx, domain.EntityAccount, id, &account); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, util.New(util.NameNotFoundDocument)
		}
		return nil, util.Wrap(util.NameStoreFailure, err)
	}
	return &account, nil
}

// Update rewrites the mutable fields, rederiving the slug and rehashing the
// password when a new one is supplied.
func (s *AccountService) Update(ctx context.Context, id string, payload *dto.AccountPayload) (*domain.Account, error) {
	if payload.UserName == "" {
		return nil, util.NewValidation("userName is required")
	}
	fields := bson.M{
		"userName":     payload.UserName,
		"slug":         slug.Make(payload.UserName),
		"rank":         payload.Rank,
		"price":        payload.Price,
		"hero":         payload.Hero,
		"gold":         payload.Gold,
		"skin":         payload.Skin,
		"pearl_points": payload.PearlPoints,
		"status":       payload.Status,
		"activated":    payload.Activated,
		"updatedAt":    s.now().UTC(),
		"updatedBy":    systemActor,
	}
	if payload.Password != "" {
		hash, err := auth.HashPassword(payload.Password, s.bcryptCost)
		if err != nil {
			return nil, util.Wrap(util.NameInternalError, err)
		}
		fields["password"] = hash
	}
	if payload.Thumbnail != nil {
		fields["thumbnail"] = payload.Thumbnail.Src
	}
	var account domain.Account
	if err := s.store.Update(ctx, domain.EntityAccount, id, fields, &account); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return nil, util.New(util.NameNotFoundDocument)
		case store.IsDuplicate(err):
			return nil, util.New(util.NameDuplicateSlugAccount)
		}
		return nil, util.Wrap(util.NameStoreFailure, err)
	}
	return &account, nil
}
