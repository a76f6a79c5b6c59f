package ports

import (
	"context"

	"github.com/shopnexus/storefront/internal/core/domain"
)

// ProductCatalog reads the catalog from the external product service.
type ProductCatalog interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
}
