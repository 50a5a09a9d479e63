package json

import "github.com/techstore/techstore-cli/internal/domain"

type documentSchema struct {
	Products   []productSchema           `json:"products"`
	Categories []categorySchema          `json:"categories"`
	PriceRange *priceRangeSchema         `json:"priceRange"`
	Reviews    map[string][]reviewSchema `json:"reviews"`
}

func (d documentSchema) bounds() domain.PriceBounds {
	if d.PriceRange == nil {
		return domain.PriceBounds{}
	}
	return domain.PriceBounds{Min: d.PriceRange.Min, Max: d.PriceRange.Max}
}

type productSchema struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Category    string            `json:"category"`
	Price       float64           `json:"price"`
	Description string            `json:"description"`
	Image       string            `json:"image"`
	Images      []string          `json:"images"`
	Model3D     string            `json:"model3d"`
	Specs       map[string]string `json:"specs"`
	InStock     bool              `json:"inStock"`
	Featured    bool              `json:"featured"`
	Rating      float64           `json:"rating"`
	ReviewCount int               `json:"reviewCount"`
}

type categorySchema struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type priceRangeSchema struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type reviewSchema struct {
	ID               string `json:"id"`
	UserName         string `json:"userName"`
	Rating           int    `json:"rating"`
	Comment          string `json:"comment"`
	Date             string `json:"date"`
	VerifiedPurchase bool   `json:"verifiedPurchase"`
	Helpful          int    `json:"helpful"`
}
