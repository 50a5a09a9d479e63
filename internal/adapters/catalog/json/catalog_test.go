package json

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techstore/techstore-cli/internal/domain"
)

func TestNewEmbeddedCatalog(t *testing.T) {
	t.Parallel()

	catalog, err := New("")
	require.NoError(t, err)

	products, err := catalog.GetAll(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, products)

	categories, err := catalog.GetCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 4)

	bounds, err := catalog.GetPriceBounds(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.PriceBounds{Min: 0, Max: 6000}, bounds)
}

func TestGetByID(t *testing.T) {
	t.Parallel()

	catalog, err := New("")
	require.NoError(t, err)

	product, err := catalog.GetByID(context.Background(), "iphone-15-pro")
	require.NoError(t, err)
	assert.Equal(t, "iPhone 15 Pro", product.Name)
	assert.Equal(t, domain.CategoryPhones, product.Category)

	_, err = catalog.GetByID(context.Background(), "no-such-product")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestGetReviews(t *testing.T) {
	t.Parallel()

	catalog, err := New("")
	require.NoError(t, err)

	reviews, err := catalog.GetReviews(context.Background(), "iphone-15-pro")
	require.NoError(t, err)
	require.Len(t, reviews, 3)
	assert.Equal(t, "Maya K.", reviews[0].UserName)
	assert.False(t, reviews[0].Date.IsZero())

	none, err := catalog.GetReviews(context.Background(), "galaxy-s24-ultra")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestNewFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "catalog.json")
	doc := `{
		"products": [
			{"id": "x1", "name": "Thing", "category": "cameras", "price": 42, "inStock": true},
			{"id": "x2", "name": "Other", "category": "unknown-category", "price": 10}
		]
	}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	catalog, err := New(path)
	require.NoError(t, err)

	products, err := catalog.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1, "unknown categories are dropped")
	assert.Equal(t, domain.ProductID("x1"), products[0].ID)

	// No explicit priceRange: bounds derive from the products.
	bounds, err := catalog.GetPriceBounds(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.PriceBounds{Min: 42, Max: 42}, bounds)
}

func TestNewRejectsBadInput(t *testing.T) {
	t.Parallel()

	_, err := New(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
	_, err = New(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode catalog document")
}

func TestGetAllReturnsACopy(t *testing.T) {
	t.Parallel()

	catalog, err := New("")
	require.NoError(t, err)

	first, err := catalog.GetAll(context.Background())
	require.NoError(t, err)
	first[0].Name = "mutated"

	second, err := catalog.GetAll(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", second[0].Name)
}
