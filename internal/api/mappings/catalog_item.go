package mappings

import (
	"context"
	"net/http"

	"github.com/spec-kit/catalog-admin/internal/api/dto"
	"github.com/spec-kit/catalog-admin/internal/config"
	"github.com/spec-kit/catalog-admin/internal/dispatch"
	"github.com/spec-kit/catalog-admin/internal/service"
)

func catalogItemInput(dctx *dispatch.Context) (any, error) {
	var payload dto.CatalogItemPayload
	if err := dctx.Request.DecodeBody(&payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// catalogItemMappings declares the CRUD quadruple shared by the name-keyed
// side collections; base is the path prefix, serviceName the table label.
func catalogItemMappings(base, serviceName string, items *service.CatalogItemService, pagination config.PaginationConfig) []dispatch.Descriptor {
	return []dispatch.Descriptor{
		{
			Path:      base,
			Method:    http.MethodPost,
			Service:   serviceName,
			Operation: "create",
			Protected: true,
			Input:     catalogItemInput,
			Handle: func(ctx context.Context, _ *dispatch.Context, args any) (any, error) {
				return items.Create(ctx, args.(*dto.CatalogItemPayload))
			},
		},
		{
			Path:      base,
			Method:    http.MethodGet,
			Service:   serviceName,
			Operation: "list",
			Input:     listInput(pagination),
			Handle: func(ctx context.Context, _ *dispatch.Context, args any) (any, error) {
				return items.List(ctx, args.(service.ListParams))
			},
			Output: listOutput,
		},
		{
			Path:      base + "/:id",
			Method:    http.MethodGet,
			Service:   serviceName,
			Operation: "getById",
			Protected: true,
			Handle: func(ctx context.Context, dctx *dispatch.Context, _ any) (any, error) {
				return items.GetByID(ctx, dctx.Request.Params["id"])
			},
		},
		{
			Path:      base + "/:id",
			Method:    http.MethodPut,
			Service:   serviceName,
			Operation: "update",
			Protected: true,
			Input:     catalogItemInput,
			Handle: func(ctx context.Context, dctx *dispatch.Context, args any) (any, error) {
				return items.Update(ctx, dctx.Request.Params["id"], args.(*dto.CatalogItemPayload))
			},
		},
	}
}
