package domain

import "strings"

type PriceRange struct {
	Min float64
	Max float64
}

// FilterState holds the active product filter selection. The zero value for
// SelectedCategory means "all categories".
type FilterState struct {
	SearchQuery      string
	SelectedCategory Category
	PriceRange       PriceRange
}

func DefaultFilter(bounds PriceBounds) FilterState {
	return FilterState{
		PriceRange: PriceRange{Min: bounds.Min, Max: bounds.Max},
	}
}

// Clamp forces the price range back inside the catalog bounds. An inverted
// range is replaced with the full default range rather than rejected.
func (f FilterState) Clamp(bounds PriceBounds) FilterState {
	r := f.PriceRange
	if r.Min > r.Max {
		r = PriceRange{Min: bounds.Min, Max: bounds.Max}
	}
	if r.Min < bounds.Min {
		r.Min = bounds.Min
	}
	if r.Max > bounds.Max {
		r.Max = bounds.Max
	}
	f.PriceRange = r
	return f
}

// Matches reports whether a product passes all three filter dimensions: the
// search query as a case-insensitive substring of name or description, the
// selected category, and the inclusive price range.
func (f FilterState) Matches(p Product) bool {
	if f.SearchQuery != "" {
		query := strings.ToLower(f.SearchQuery)
		name := strings.ToLower(p.Name)
		description := strings.ToLower(p.Description)
		if !strings.Contains(name, query) && !strings.Contains(description, query) {
			return false
		}
	}

	if f.SelectedCategory != "" && p.Category != f.SelectedCategory {
		return false
	}

	return p.Price >= f.PriceRange.Min && p.Price <= f.PriceRange.Max
}

// SelectProducts returns the subsequence of products matching the filter,
// preserving input order. An empty result is a valid outcome.
func SelectProducts(products []Product, f FilterState) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if f.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}
