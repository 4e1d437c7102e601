package mappings

import (
	"context"
	"net/http"

	"github.com/spec-kit/catalog-admin/internal/api/dto"
	"github.com/spec-kit/catalog-admin/internal/config"
	"github.com/spec-kit/catalog-admin/internal/dispatch"
	"github.com/spec-kit/catalog-admin/internal/service"
)

func productInput(dctx *dispatch.Context) (any, error) {
	var payload dto.ProductPayload
	if err := dctx.Request.DecodeBody(&payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// ProductMappings declares the products CRUD quadruple. The list is public;
// reads by id and writes require a valid access token.
func ProductMappings(products *service.ProductService, pagination config.PaginationConfig) []dispatch.Descriptor {
	return []dispatch.Descriptor{
		{
			Path:      "/products",
			Method:    http.MethodPost,
			Service:   "productService",
			Operation: "create",
			Protected: true,
			Input:     productInput,
			Handle: func(ctx context.Context, _ *dispatch.Context, args any) (any, error) {
				return products.Create(ctx, args.(*dto.ProductPayload))
			},
		},
		{
			Path:      "/products",
			Method:    http.MethodGet,
			Service:   "productService",
			Operation: "list",
			Input:     listInput(pagination),
			Handle: func(ctx context.Context, _ *dispatch.Context, args any) (any, error) {
				return products.List(ctx, args.(service.ListParams))
			},
			Output: listOutput,
		},
		{
			Path:      "/products/:id",
			Method:    http.MethodGet,
			Service:   "productService",
			Operation: "getById",
			Protected: true,
			Handle: func(ctx context.Context, dctx *dispatch.Context, _ any) (any, error) {
				return products.GetByID(ctx, dctx.Request.Params["id"])
			},
		},
		{
			Path:      "/products/:id",
			Method:    http.MethodPut,
			Service:   "productService",
			Operation: "update",
			Protected: true,
			Input:     productInput,
			Handle: func(ctx context.Context, dctx *dispatch.Context, args any) (any, error) {
				return products.Update(ctx, dctx.Request.Params["id"], args.(*dto.ProductPayload))
			},
		},
	}
}
