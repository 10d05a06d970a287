package catalog

import (
	"context"

	"github.com/go-faster/errors"
)

// ErrNotFound is returned when a requested product does not exist.
var ErrNotFound = errors.New("product not found")

// CategoryAll is the filter sentinel matching every category. It is never a
// category of an actual product.
const CategoryAll = "All"

// Product represents a catalog item available for purchase. Prices are in
// minor currency units (cents); display formatting happens at the render
// boundary, never here.
type Product struct {
	ID             string
	Name           string
	Category       string
	Price          int64
	Brand          string
	Description    string
	Image          string
	Specifications []Specification
}

// Specification is a single display attribute of a product (e.g. "RAM: 16 GB").
// Order is preserved for display.
type Specification struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Repository defines read operations for the product catalog.
type Repository interface {
	List(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	Categories(ctx context.Context) ([]string, error)
}
