package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techstore/techstore-cli/internal/domain"
)

func newTestFilterService(t *testing.T, rawQuery string) (*FilterService, *memoryCatalog, *memoryAddressBar) {
	t.Helper()

	catalog := testCatalog()
	bar := newMemoryAddressBar(rawQuery)
	svc, err := NewFilterService(context.Background(), catalog, bar, 0)
	require.NoError(t, err)
	t.Cleanup(svc.Stop)
	return svc, catalog, bar
}

func TestFilterServiceDecodesQueryOnLoad(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestFilterService(t, "search=iphone&category=phones&minPrice=100&maxPrice=2000")

	state := svc.State()
	assert.Equal(t, "iphone", state.SearchQuery)
	assert.Equal(t, domain.CategoryPhones, state.SelectedCategory)
	assert.Equal(t, domain.PriceRange{Min: 100, Max: 2000}, state.PriceRange)
}

func TestFilterServiceDecodeTreatsMalformedValuesAsDefaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
		want  domain.FilterState
	}{
		{
			name:  "unknown category token",
			query: "category=tablets",
			want:  domain.FilterState{PriceRange: domain.PriceRange{Min: 0, Max: 6000}},
		},
		{
			name:  "non-numeric prices",
			query: "minPrice=cheap&maxPrice=expensive",
			want:  domain.FilterState{PriceRange: domain.PriceRange{Min: 0, Max: 6000}},
		},
		{
			name:  "inverted range",
			query: "minPrice=2000&maxPrice=100",
			want:  domain.FilterState{PriceRange: domain.PriceRange{Min: 0, Max: 6000}},
		},
		{
			name:  "out-of-bounds range clamped",
			query: "minPrice=-500&maxPrice=999999",
			want:  domain.FilterState{PriceRange: domain.PriceRange{Min: 0, Max: 6000}},
		},
		{
			name:  "missing max keeps default ceiling",
			query: "minPrice=250",
			want:  domain.FilterState{PriceRange: domain.PriceRange{Min: 250, Max: 6000}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newTestFilterService(t, tt.query)
			assert.Equal(t, tt.want, svc.State())
		})
	}
}

func TestFilterServiceEncodesOnlyNonDefaultKeys(t *testing.T) {
	t.Parallel()

	svc, _, bar := newTestFilterService(t, "")

	svc.SetSearch("macbook")
	values := bar.Query()
	assert.Equal(t, "macbook", values.Get("search"))
	assert.False(t, values.Has("category"))
	assert.False(t, values.Has("minPrice"))
	assert.False(t, values.Has("maxPrice"))

	svc.SetCategory(domain.CategoryLaptops)
	svc.SetPriceRange(500, 3000)
	values = bar.Query()
	assert.Equal(t, "laptops", values.Get("category"))
	assert.Equal(t, "500", values.Get("minPrice"))
	assert.Equal(t, "3000", values.Get("maxPrice"))

	svc.SetSearch("")
	assert.False(t, bar.Query().Has("search"))
}

func TestFilterServicePreservesForeignQueryKeys(t *testing.T) {
	t.Parallel()

	svc, _, bar := newTestFilterService(t, "utm_source=newsletter&search=iphone")

	svc.SetCategory(domain.CategoryPhones)
	values := bar.Query()
	assert.Equal(t, "newsletter", values.Get("utm_source"))
	assert.Equal(t, "iphone", values.Get("search"))

	svc.Reset()
	values = bar.Query()
	assert.Equal(t, "newsletter", values.Get("utm_source"))
	assert.False(t, values.Has("search"))
	assert.False(t, values.Has("category"))
	assert.False(t, values.Has("minPrice"))
	assert.False(t, values.Has("maxPrice"))
}

func TestFilterServiceResetRestoresDefaults(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestFilterService(t, "search=iphone&category=phones&minPrice=100&maxPrice=2000")

	svc.Reset()
	assert.Equal(t, domain.FilterState{
		PriceRange: domain.PriceRange{Min: 0, Max: 6000},
	}, svc.State())
}

func TestFilterServiceRoundTrip(t *testing.T) {
	t.Parallel()

	states := []domain.FilterState{
		{PriceRange: domain.PriceRange{Min: 0, Max: 6000}},
		{SearchQuery: "pro max", PriceRange: domain.PriceRange{Min: 0, Max: 6000}},
		{SelectedCategory: domain.CategoryCameras, PriceRange: domain.PriceRange{Min: 0, Max: 6000}},
		{SearchQuery: "air", SelectedCategory: domain.CategoryLaptops, PriceRange: domain.PriceRange{Min: 250.5, Max: 4000}},
	}

	for _, want := range states {
		svc, _, bar := newTestFilterService(t, "")
		svc.SetSearch(want.SearchQuery)
		svc.SetCategory(want.SelectedCategory)
		svc.SetPriceRange(want.PriceRange.Min, want.PriceRange.Max)

		reloaded, _, _ := newTestFilterService(t, bar.Query().Encode())
		assert.Equal(t, want, reloaded.State())
	}
}

func TestFilterServiceSetPriceRangeClamps(t *testing.T) {
	t.Parallel()

	svc, _, bar := newTestFilterService(t, "")

	svc.SetPriceRange(-100, 9000)
	assert.Equal(t, domain.PriceRange{Min: 0, Max: 6000}, svc.State().PriceRange)
	// Back at the default range, so the keys disappear from the address.
	assert.False(t, bar.Query().Has("minPrice"))

	svc.SetPriceRange(3000, 100)
	assert.Equal(t, domain.PriceRange{Min: 0, Max: 6000}, svc.State().PriceRange)
}

func TestFilterServiceVisible(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestFilterService(t, "search=iphone")

	visible, err := svc.Visible(context.Background())
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, domain.ProductID("p1"), visible[0].ID)
}

func TestFilterServiceVisibleIsMemoized(t *testing.T) {
	t.Parallel()

	svc, catalog, _ := newTestFilterService(t, "")

	_, err := svc.Visible(context.Background())
	require.NoError(t, err)
	_, err = svc.Visible(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, catalog.getAllCount(), "identical state must hit the memo")

	svc.SetSearch("macbook")
	_, err = svc.Visible(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, catalog.getAllCount(), "filter change must recompute")

	catalog.bumpVersion()
	_, err = svc.Visible(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, catalog.getAllCount(), "catalog change must recompute")
}

func TestFilterServiceDebouncedSearchCommitsLastValueOnly(t *testing.T) {
	t.Parallel()

	catalog := testCatalog()
	bar := newMemoryAddressBar("")
	svc, err := NewFilterService(context.Background(), catalog, bar, 30*time.Millisecond)
	require.NoError(t, err)
	t.Cleanup(svc.Stop)

	svc.SearchInput("i")
	svc.SearchInput("ip")
	svc.SearchInput("iph")
	svc.SearchInput("iphone")

	assert.Equal(t, "", svc.State().SearchQuery, "no commit inside the quiet window")

	assert.Eventually(t, func() bool {
		return svc.State().SearchQuery == "iphone"
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, "iphone", bar.Query().Get("search"))
}

func TestFilterServiceStopCancelsPendingSearch(t *testing.T) {
	t.Parallel()

	catalog := testCatalog()
	bar := newMemoryAddressBar("")
	svc, err := NewFilterService(context.Background(), catalog, bar, 20*time.Millisecond)
	require.NoError(t, err)

	svc.SearchInput("iphone")
	svc.Stop()

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, "", svc.State().SearchQuery)
	assert.False(t, bar.Query().Has("search"))
}
