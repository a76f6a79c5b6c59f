package domain

// Product is an immutable catalog snapshot returned by the product service.
// Field names follow the upstream JSON contract exactly; the gateway never
// mutates a product.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Category    string  `json:"category"`
}

// InStock reports whether the product can currently be purchased.
func (p Product) InStock() bool {
	return p.Stock > 0
}
