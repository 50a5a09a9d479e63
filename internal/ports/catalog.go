package ports

import (
	"context"

	"github.com/techstore/techstore-cli/internal/domain"
)

// Catalog is the read-only product data source. Implementations return
// products in a stable order.
type Catalog interface {
	GetAll(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id domain.ProductID) (domain.Product, error)
	GetCategories(ctx context.Context) ([]domain.CategoryInfo, error)
	GetPriceBounds(ctx context.Context) (domain.PriceBounds, error)
	GetReviews(ctx context.Context, id domain.ProductID) ([]domain.Review, error)

	// Version identifies the current catalog snapshot. It changes whenever
	// the product collection changes, making it safe to memoize derived
	// results on (version, filter).
	Version() uint64
}
