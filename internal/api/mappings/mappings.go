// Package mappings declares the route descriptor tables binding HTTP paths
// to service operations. Each entity keeps its table in its own file; the
// dispatcher consumes the merged set and nothing here touches the transport.
package mappings

import (
	"github.com/spec-kit/catalog-admin/internal/config"
	"github.com/spec-kit/catalog-admin/internal/dispatch"
	"github.com/spec-kit/catalog-admin/internal/service"
)

// Services bundles the operation providers the tables bind to.
type Services struct {
	Auth         *service.AuthService
	Products     *service.ProductService
	ProductTypes *service.CatalogItemService
	Smells       *service.CatalogItemService
	Gifts        *service.CatalogItemService
	Accounts     *service.AccountService
}

// BuildAll merges every entity's descriptor table.
func BuildAll(pagination config.PaginationConfig, svcs Services) []dispatch.Descriptor {
	var all []dispatch.Descriptor
	all = append(all, UserMappings(svcs.Auth)...)
	all = append(all, ProductMappings(svcs.Products, pagination)...)
	all = append(all, ProductTypeMappings(svcs.ProductTypes, pagination)...)
	all = append(all, SmellMappings(svcs.Smells, pagination)...)
	all = append(all, GiftMappings(svcs.Gifts, pagination)...)
	all = append(all, AccountMappings(svcs.Accounts, pagination)...)
	return all
}
