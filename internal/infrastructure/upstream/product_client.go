package upstream

import (
	"context"
	"net/http"
	"time"

	"github.com/shopnexus/storefront/internal/core/domain"
)

// ProductClient reads the catalog from the product service.
type ProductClient struct {
	client
}

// NewProductClient creates a ProductClient for the given base URL
// (e.g. http://localhost:5002). A timeout <= 0 falls back to 10s.
func NewProductClient(baseURL string, timeout time.Duration) *ProductClient {
	return &ProductClient{client: newClient("product", baseURL, timeout)}
}

// ListProducts fetches the full product list. The service returns a bare
// JSON array of products.
func (c *ProductClient) ListProducts(ctx context.Context) ([]domain.Product, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/products", nil)
	if err != nil {
		return nil, err
	}

	var products []domain.Product
	if err := c.do(req, &products); err != nil {
		return nil, err
	}
	return products, nil
}
