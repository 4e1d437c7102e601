package mappings

import (
	"github.com/spec-kit/catalog-admin/internal/config"
	"github.com/spec-kit/catalog-admin/internal/dispatch"
	"github.com/spec-kit/catalog-admin/internal/service"
)

// ProductTypeMappings declares the productTypes CRUD quadruple.
func ProductTypeMappings(productTypes *service.CatalogItemService, pagination config.PaginationConfig) []dispatch.Descriptor {
	return catalogItemMappings("/productTypes", "productTypeService", productTypes, pagination)
}
