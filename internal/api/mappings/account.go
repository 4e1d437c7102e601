package mappings

import (
	"context"
	"net/http"

	"github.com/spec-kit/catalog-admin/internal/api/dto"
	"github.com/spec-kit/catalog-admin/internal/config"
	"github.com/spec-kit/catalog-admin/internal/dispatch"
	"github.com/spec-kit/catalog-admin/internal/service"
)

func accountInput(dctx *dispatch.Context) (any, error) {
	var payload dto.AccountPayload
	if err := dctx.Request.DecodeBody(&payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// AccountMappings declares the accounts CRUD quadruple.
func AccountMappings(accounts *service.AccountService, pagination config.PaginationConfig) []dispatch.Descriptor {
	return []dispatch.Descriptor{
		{
			Path:      "/accounts",
			Method:    http.MethodPost,
			Service:   "accountService",
			Operation: "create",
			Protected: true,
			Input:     accountInput,
			Handle: func(ctx context.Context, _ *dispatch.Context, args any) (any, error) {
				return accounts.Create(ctx, args.(*dto.AccountPayload))
			},
		},
		{
			Path:      "/accounts",
			Method:    http.MethodGet,
			Service:   "accountService",
			Operation: "list",
			Input:     listInput(pagination),
			Handle: func(ctx context.Context, _ *dispatch.Context, args any) (any, error) {
				return accounts.List(ctx, args.(service.ListParams))
			},
			Output: listOutput,
		},
		{
			Path:      "/accounts/:id",
			Method:    http.MethodGet,
			Service:   "accountService",
			Operation: "getById",
			Protected: true,
			Handle: func(ctx context.Context, dctx *dispatch.Context, _ any) (any, error) {
				return accounts.GetByID(ctx, dctx.Request.Params["id"])
			},
		},
		{
			Path:      "/accounts/:id",
			Method:    http.MethodPut,
			Service:   "accountService",
			Operation: "update",
			Protected: true,
			Input:     accountInput,
			Handle: func(ctx context.Context, dctx *dispatch.Context, args any) (any, error) {
				return accounts.Update(ctx, dctx.Request.Params["id"], args.(*dto.AccountPayload))
			},
		},
	}
}
