package application

import (
	"context"
	"sync"

	"github.com/techstore/techstore-cli/internal/domain"
	"github.com/techstore/techstore-cli/internal/ports"
)

// CartService owns the authoritative cart for the session. All mutation goes
// through the action dispatch point; UI code never touches the lines
// directly.
//
// Persistence follows the hydration gate: the saved cart is loaded
// asynchronously at startup while the rest of the app is already
// interactive, so writes are suppressed until Hydrate settles. Without the
// gate, a settled action on a fresh load would overwrite the saved cart with
// near-empty state before the load finished. Actions dispatched before
// hydration are recorded and replayed on top of the persisted lines when
// they arrive, so neither side is lost.
type CartService struct {
	store   ports.CartStore
	catalog ports.Catalog

	mu       sync.Mutex
	cart     domain.Cart
	open     bool
	hydrated bool
	pending  []domain.CartAction
}

func NewCartService(store ports.CartStore, catalog ports.Catalog) *CartService {
	return &CartService{
		store:   store,
		catalog: catalog,
	}
}

// Hydrate loads the persisted cart exactly once. A missing, unreadable, or
// corrupt payload degrades to an empty cart; hydration itself never fails.
// Stored lines whose product id is no longer in the catalog are dropped.
func (s *CartService) Hydrate(ctx context.Context) {
	stored, err := s.store.Load(ctx)
	if err != nil {
		stored = nil
	}
	lines := s.resolveLines(ctx, stored)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hydrated {
		return
	}

	s.cart = domain.ReduceCart(s.cart, domain.HydrateCart{Lines: lines})
	for _, action := range s.pending {
		s.cart = domain.ReduceCart(s.cart, action)
	}
	replayed := len(s.pending) > 0
	s.pending = nil
	s.hydrated = true

	// One flush reconciles the store with the replayed actions. The plain
	// hydrate path writes nothing: state and store already agree.
	if replayed {
		s.persistLocked(ctx)
	}
}

// Add puts one unit of the product in the cart and marks the cart UI open.
func (s *CartService) Add(ctx context.Context, product domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = true
	s.dispatchLocked(ctx, domain.AddItem{Product: product})
}

func (s *CartService) Remove(ctx context.Context, id domain.ProductID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dispatchLocked(ctx, domain.RemoveItem{ProductID: id})
}

func (s *CartService) SetQuantity(ctx context.Context, id domain.ProductID, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dispatchLocked(ctx, domain.SetQuantity{ProductID: id, Quantity: quantity})
}

func (s *CartService) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dispatchLocked(ctx, domain.ClearCart{})
}

func (s *CartService) Lines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := make([]domain.CartLine, len(s.cart.Lines))
	copy(lines, s.cart.Lines)
	return lines
}

func (s *CartService) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.TotalItems()
}

func (s *CartService) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.TotalPrice()
}

func (s *CartService) IsHydrated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hydrated
}

func (s *CartService) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

func (s *CartService) OpenCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = true
}

func (s *CartService) CloseCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = false
}

func (s *CartService) dispatchLocked(ctx context.Context, action domain.CartAction) {
	s.cart = domain.ReduceCart(s.cart, action)
	if !s.hydrated {
		s.pending = append(s.pending, action)
		return
	}
	s.persistLocked(ctx)
}

// persistLocked writes the full snapshot after a settled action. A write
// failure is transient: in-memory state stays authoritative and the next
// settled action writes the full snapshot again.
func (s *CartService) persistLocked(ctx context.Context) {
	stored := make([]ports.StoredCartLine, 0, len(s.cart.Lines))
	for _, line := range s.cart.Lines {
		stored = append(stored, ports.StoredCartLine{
			ProductID: line.Product.ID,
			Quantity:  line.Quantity,
		})
	}
	_ = s.store.Save(ctx, stored)
}

func (s *CartService) resolveLines(ctx context.Context, stored []ports.StoredCartLine) []domain.CartLine {
	lines := make([]domain.CartLine, 0, len(stored))
	for _, entry := range stored {
		product, err := s.catalog.GetByID(ctx, entry.ProductID)
		if err != nil {
			// Dropped from the catalog or unreadable; the line cannot
			// be rehydrated.
			continue
		}
		lines = append(lines, domain.CartLine{Product: product, Quantity: entry.Quantity})
	}
	return lines
}
