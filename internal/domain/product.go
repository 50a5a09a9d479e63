package domain

import "time"

type ProductID string
type Category string

const (
	CategoryPhones     Category = "phones"
	CategoryLaptops    Category = "laptops"
	CategoryHeadphones Category = "headphones"
	CategoryCameras    Category = "cameras"
)

// ParseCategory maps a raw token to a known category. Unknown or empty
// tokens report ok=false so callers can fall back to "no category".
func ParseCategory(raw string) (Category, bool) {
	switch Category(raw) {
	case CategoryPhones, CategoryLaptops, CategoryHeadphones, CategoryCameras:
		return Category(raw), true
	default:
		return "", false
	}
}

type Product struct {
	ID          ProductID
	Name        string
	Category    Category
	Price       float64
	Description string
	Image       string
	Images      []string
	Model3D     string
	Specs       map[string]string
	InStock     bool
	Featured    bool
	Rating      float64
	ReviewCount int
}

type Review struct {
	ID               string
	UserName         string
	Rating           int
	Comment          string
	Date             time.Time
	VerifiedPurchase bool
	Helpful          int
}

type CategoryInfo struct {
	ID   Category
	Name string
	Icon string
}

type PriceBounds struct {
	Min float64
	Max float64
}
