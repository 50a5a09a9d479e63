package application

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/techstore/techstore-cli/internal/domain"
	"github.com/techstore/techstore-cli/internal/ports"
)

const (
	queryKeySearch   = "search"
	queryKeyCategory = "category"
	queryKeyMinPrice = "minPrice"
	queryKeyMaxPrice = "maxPrice"

	// DefaultSearchDebounce is the quiet window a burst of keystrokes must
	// outlast before a search commit happens.
	DefaultSearchDebounce = 300 * time.Millisecond
)

// FilterService owns the session's filter selection and keeps it in sync
// with the shareable address. The address query is decoded exactly once, at
// construction; afterwards filter state is the source of truth and every
// settled mutation re-encodes the full query one way into the address bar.
// Query keys the filter machine does not own pass through untouched.
type FilterService struct {
	catalog ports.Catalog
	addr    ports.AddressBar
	bounds  domain.PriceBounds
	search  *debouncer

	mu    sync.Mutex
	state domain.FilterState

	memo memoSelector
}

func NewFilterService(ctx context.Context, catalog ports.Catalog, addr ports.AddressBar, searchDebounce time.Duration) (*FilterService, error) {
	bounds, err := catalog.GetPriceBounds(ctx)
	if err != nil {
		return nil, fmt.Errorf("get catalog price bounds: %w", err)
	}

	s := &FilterService{
		catalog: catalog,
		addr:    addr,
		bounds:  bounds,
		search:  newDebouncer(searchDebounce),
		state:   decodeQuery(addr.Query(), bounds),
	}

	return s, nil
}

func (s *FilterService) State() domain.FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SetSearch commits a search query immediately.
func (s *FilterService) SetSearch(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SearchQuery = query
	s.encodeLocked()
}

// SearchInput feeds one keystroke's worth of input. Commits are debounced:
// only the value still current when the quiet window elapses is committed,
// and every new keystroke cancels the previously armed commit.
func (s *FilterService) SearchInput(query string) {
	s.search.Trigger(func() {
		s.SetSearch(query)
	})
}

// SetCategory selects a category; the empty category selects all.
func (s *FilterService) SetCategory(category domain.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SelectedCategory = category
	s.encodeLocked()
}

// SetPriceRange sets the price window, clamped into the catalog bounds. An
// inverted range falls back to the full default range.
func (s *FilterService) SetPriceRange(min, max float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.PriceRange = domain.PriceRange{Min: min, Max: max}
	s.state = s.state.Clamp(s.bounds)
	s.encodeLocked()
}

// Reset restores every filter dimension to its default and clears the
// filter-owned query keys, leaving foreign keys in place.
func (s *FilterService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = domain.DefaultFilter(s.bounds)
	s.encodeLocked()
}

// Visible returns the products passing the current filter, in catalog
// order. The result is memoized on (catalog version, filter state); the
// returned slice is shared and must not be mutated.
func (s *FilterService) Visible(ctx context.Context) ([]domain.Product, error) {
	key := selectorKey{version: s.catalog.Version(), filter: s.State()}

	if result, ok := s.memo.get(key); ok {
		return result, nil
	}

	products, err := s.catalog.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get catalog products: %w", err)
	}

	result := domain.SelectProducts(products, key.filter)
	s.memo.put(key, result)
	return result, nil
}

// Stop cancels any pending debounced search commit.
func (s *FilterService) Stop() {
	s.search.Stop()
}

// encodeLocked pushes the full filter state into the address query. Keys are
// present only for non-default values, so a default state round-trips to a
// bare address.
func (s *FilterService) encodeLocked() {
	values := s.addr.Query()

	values.Del(queryKeySearch)
	values.Del(queryKeyCategory)
	values.Del(queryKeyMinPrice)
	values.Del(queryKeyMaxPrice)

	if s.state.SearchQuery != "" {
		values.Set(queryKeySearch, s.state.SearchQuery)
	}
	if s.state.SelectedCategory != "" {
		values.Set(queryKeyCategory, string(s.state.SelectedCategory))
	}
	if s.state.PriceRange != (domain.PriceRange{Min: s.bounds.Min, Max: s.bounds.Max}) {
		values.Set(queryKeyMinPrice, formatPrice(s.state.PriceRange.Min))
		values.Set(queryKeyMaxPrice, formatPrice(s.state.PriceRange.Max))
	}

	s.addr.Replace(values)
}

// decodeQuery parses the address query into a filter state. Malformed or
// out-of-domain values fall back to the default for that dimension; decoding
// never fails.
func decodeQuery(values url.Values, bounds domain.PriceBounds) domain.FilterState {
	state := domain.DefaultFilter(bounds)

	state.SearchQuery = values.Get(queryKeySearch)

	if category, ok := domain.ParseCategory(values.Get(queryKeyCategory)); ok {
		state.SelectedCategory = category
	}

	if raw := values.Get(queryKeyMinPrice); raw != "" {
		if min, err := strconv.ParseFloat(raw, 64); err == nil {
			state.PriceRange.Min = min
		}
	}
	if raw := values.Get(queryKeyMaxPrice); raw != "" {
		if max, err := strconv.ParseFloat(raw, 64); err == nil {
			state.PriceRange.Max = max
		}
	}

	return state.Clamp(bounds)
}

func formatPrice(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

type selectorKey struct {
	version uint64
	filter  domain.FilterState
}

// memoSelector caches the last selection. Selection is pure over its key, so
// a single entry is enough for the bursty recompute pattern the UI produces.
type memoSelector struct {
	mu     sync.Mutex
	valid  bool
	key    selectorKey
	result []domain.Product
}

func (m *memoSelector) get(key selectorKey) ([]domain.Product, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.valid && m.key == key {
		return m.result, true
	}
	return nil, false
}

func (m *memoSelector) put(key selectorKey, result []domain.Product) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.valid = true
	m.key = key
	m.result = result
}
