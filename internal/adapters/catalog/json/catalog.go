// Package json serves the product catalog from a JSON document, either the
// embedded default or a file supplied through configuration.
package json

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/techstore/techstore-cli/internal/domain"
	"github.com/techstore/techstore-cli/internal/ports"
)

//go:embed products.json
var defaultDocument []byte

// Catalog is an immutable snapshot of the product collection. The snapshot
// is decoded once at construction; Version identifies it for memoization.
type Catalog struct {
	products   []domain.Product
	categories []domain.CategoryInfo
	bounds     domain.PriceBounds
	reviews    map[domain.ProductID][]domain.Review
	version    uint64
}

var _ ports.Catalog = (*Catalog)(nil)

// New builds a catalog from the document at path, or from the embedded
// default document when path is empty.
func New(path string) (*Catalog, error) {
	data := defaultDocument
	if path != "" {
		fileData, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalog file: %w", err)
		}
		data = fileData
	}

	var doc documentSchema
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog document: %w", err)
	}

	return fromDocument(doc), nil
}

func fromDocument(doc documentSchema) *Catalog {
	c := &Catalog{
		reviews: make(map[domain.ProductID][]domain.Review, len(doc.Reviews)),
		version: 1,
	}

	for _, entry := range doc.Products {
		category, ok := domain.ParseCategory(entry.Category)
		if !ok {
			continue
		}
		c.products = append(c.products, domain.Product{
			ID:          domain.ProductID(entry.ID),
			Name:        entry.Name,
			Category:    category,
			Price:       entry.Price,
			Description: entry.Description,
			Image:       entry.Image,
			Images:      entry.Images,
			Model3D:     entry.Model3D,
			Specs:       entry.Specs,
			InStock:     entry.InStock,
			Featured:    entry.Featured,
			Rating:      entry.Rating,
			ReviewCount: entry.ReviewCount,
		})
	}

	for _, entry := range doc.Categories {
		category, ok := domain.ParseCategory(entry.ID)
		if !ok {
			continue
		}
		c.categories = append(c.categories, domain.CategoryInfo{
			ID:   category,
			Name: entry.Name,
			Icon: entry.Icon,
		})
	}

	for id, entries := range doc.Reviews {
		reviews := make([]domain.Review, 0, len(entries))
		for _, entry := range entries {
			reviews = append(reviews, domain.Review{
				ID:               entry.ID,
				UserName:         entry.UserName,
				Rating:           entry.Rating,
				Comment:          entry.Comment,
				Date:             parseDate(entry.Date),
				VerifiedPurchase: entry.VerifiedPurchase,
				Helpful:          entry.Helpful,
			})
		}
		c.reviews[domain.ProductID(id)] = reviews
	}

	c.bounds = doc.bounds()
	if doc.PriceRange == nil {
		c.bounds = computeBounds(c.products)
	}

	return c
}

func (c *Catalog) GetAll(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	products := make([]domain.Product, len(c.products))
	copy(products, c.products)
	return products, nil
}

func (c *Catalog) GetByID(ctx context.Context, id domain.ProductID) (domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return domain.Product{}, err
	}

	for _, p := range c.products {
		if p.ID == id {
			return p, nil
		}
	}

	return domain.Product{}, domain.ErrProductNotFound
}

func (c *Catalog) GetCategories(ctx context.Context) ([]domain.CategoryInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	categories := make([]domain.CategoryInfo, len(c.categories))
	copy(categories, c.categories)
	return categories, nil
}

func (c *Catalog) GetPriceBounds(ctx context.Context) (domain.PriceBounds, error) {
	if err := ctx.Err(); err != nil {
		return domain.PriceBounds{}, err
	}

	return c.bounds, nil
}

func (c *Catalog) GetReviews(ctx context.Context, id domain.ProductID) ([]domain.Review, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reviews := make([]domain.Review, len(c.reviews[id]))
	copy(reviews, c.reviews[id])
	return reviews, nil
}

func (c *Catalog) Version() uint64 {
	return c.version
}

func computeBounds(products []domain.Product) domain.PriceBounds {
	if len(products) == 0 {
		return domain.PriceBounds{}
	}

	bounds := domain.PriceBounds{Min: products[0].Price, Max: products[0].Price}
	for _, p := range products[1:] {
		if p.Price < bounds.Min {
			bounds.Min = p.Price
		}
		if p.Price > bounds.Max {
			bounds.Max = p.Price
		}
	}
	return bounds
}

func parseDate(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}
