package mappings

import (
	"github.com/spec-kit/catalog-admin/internal/config"
	"github.com/spec-kit/catalog-admin/internal/dispatch"
	"github.com/spec-kit/catalog-admin/internal/service"
)

// GiftMappings declares the gifts CRUD quadruple.
func GiftMappings(gifts *service.CatalogItemService, pagination config.PaginationConfig) []dispatch.Descriptor {
	return catalogItemMappings("/gifts", "giftService", gifts, pagination)
}
