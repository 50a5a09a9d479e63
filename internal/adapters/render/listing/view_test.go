package listing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/techstore/techstore-cli/internal/domain"
)

func TestRenderProducts(t *testing.T) {
	t.Parallel()

	out := RenderProducts([]domain.Product{
		{ID: "p1", Name: "iPhone 15 Pro", Category: domain.CategoryPhones, Price: 999, InStock: true, Rating: 4.8, ReviewCount: 3},
		{ID: "p2", Name: "Dell XPS 13", Category: domain.CategoryLaptops, Price: 1299, InStock: false},
	}, ProductsOptions{ShareLink: "https://store.example/products?search=pro"})

	assert.Contains(t, out, "matching: 2")
	assert.Contains(t, out, "iPhone 15 Pro")
	assert.Contains(t, out, "$999.00")
	assert.Contains(t, out, "out of stock")
	assert.Contains(t, out, "search=pro")
}

func TestRenderProductsEmpty(t *testing.T) {
	t.Parallel()

	out := RenderProducts(nil, ProductsOptions{})
	assert.Contains(t, out, "No products match")
}

func TestRenderProductDetail(t *testing.T) {
	t.Parallel()

	product := domain.Product{
		ID:          "p1",
		Name:        "Sony WH-1000XM5",
		Category:    domain.CategoryHeadphones,
		Price:       399,
		Description: "Industry-leading noise canceling.",
		Specs:       map[string]string{"Battery": "30 hours", "Weight": "250g"},
		InStock:     true,
	}
	reviews := []domain.Review{
		{UserName: "Chris L.", Rating: 5, Comment: "Unmatched on flights.", Date: time.Date(2024, 2, 11, 0, 0, 0, 0, time.UTC), VerifiedPurchase: true},
	}

	out := RenderProductDetail(product, reviews)
	assert.Contains(t, out, "Sony WH-1000XM5")
	assert.Contains(t, out, "Battery: 30 hours")
	assert.Contains(t, out, "Reviews (1)")
	assert.Contains(t, out, "Chris L.")
	assert.Contains(t, out, "verified")
}

func TestRenderProductDetailWithoutReviews(t *testing.T) {
	t.Parallel()

	out := RenderProductDetail(domain.Product{Name: "AirPods Max", Price: 549}, nil)
	assert.Contains(t, out, "No reviews yet.")
}

func TestRenderCart(t *testing.T) {
	t.Parallel()

	out := RenderCart([]domain.CartLine{
		{Product: domain.Product{ID: "p1", Name: "iPhone 15 Pro", Price: 999}, Quantity: 2},
	}, 2, 1998)

	assert.Contains(t, out, "iPhone 15 Pro")
	assert.Contains(t, out, "2 ×")
	assert.Contains(t, out, "2 items")
	assert.Contains(t, out, "$1998.00")
}

func TestRenderCartEmpty(t *testing.T) {
	t.Parallel()

	out := RenderCart(nil, 0, 0)
	assert.Contains(t, out, "Your cart is empty.")
}

func TestRenderCategories(t *testing.T) {
	t.Parallel()

	out := RenderCategories([]domain.CategoryInfo{
		{ID: domain.CategoryPhones, Name: "Phones", Icon: "smartphone"},
		{ID: domain.CategoryCameras, Name: "Cameras", Icon: "camera"},
	}, map[domain.Category]int{domain.CategoryPhones: 2, domain.CategoryCameras: 1})

	assert.Contains(t, out, "Phones")
	assert.Contains(t, out, "2 products")
	assert.Contains(t, out, "Cameras")
}
