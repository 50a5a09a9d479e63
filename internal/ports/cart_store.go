package ports

import (
	"context"

	"github.com/techstore/techstore-cli/internal/domain"
)

// StoredCartLine is the persisted shape of a cart line. Only the product id
// and quantity are stored; product details are rehydrated from the catalog
// so they never go stale against current catalog data.
type StoredCartLine struct {
	ProductID domain.ProductID
	Quantity  int
}

// CartStore persists the full cart snapshot under a single fixed location.
// Load reports no lines (nil, nil) when nothing has been persisted yet.
type CartStore interface {
	Load(ctx context.Context) ([]StoredCartLine, error)
	Save(ctx context.Context, lines []StoredCartLine) error
}
