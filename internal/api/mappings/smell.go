package mappings

import (
	"github.com/spec-kit/catalog-admin/internal/config"
	"github.com/spec-kit/catalog-admin/internal/dispatch"
	"github.com/spec-kit/catalog-admin/internal/service"
)

// SmellMappings declares the smells CRUD quadruple.
func SmellMappings(smells *service.CatalogItemService, pagination config.PaginationConfig) []dispatch.Descriptor {
	return catalogItemMappings("/smells", "smellService", smells, pagination)
}
