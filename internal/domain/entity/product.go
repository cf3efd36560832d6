package entity

import (
	"errors"
	"time"
)

// PlaceholderImageURL is assigned to products created without any image.
const PlaceholderImageURL = "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=400&h=400&fit=crop"

// ProductImage is a single image reference on a product.
type ProductImage struct {
	URL string `json:"url"`
}

// Product is a catalog record exposed to shoppers and managed by admins.
// Prices are integers in minor currency units.
type Product struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Price       int64          `json:"price"`
	Category    Category       `json:"category"`
	Images      []ProductImage `json:"images"`
	Stock       int            `json:"stock"`
	IsActive    bool           `json:"isActive"`
	Featured    bool           `json:"featured"`
	Rating      float64        `json:"rating"`
	Reviews     int            `json:"reviews"`
	Discount    int64          `json:"discount,omitempty"` // percent off, 0 = none
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// Validate checks the product invariants: required fields are present,
// price and stock are non-negative, the rating stays on the 0-5 scale and
// the category is a known value.
func (p *Product) Validate() error {
	switch {
	case p.Name == "":
		return errors.New("name is required")
	case p.Description == "":
		return errors.New("description is required")
	case p.Price < 0:
		return errors.New("price must not be negative")
	case p.Stock < 0:
		return errors.New("stock must not be negative")
	case p.Rating < 0 || p.Rating > 5:
		return errors.New("rating must be between 0 and 5")
	case !p.Category.IsValid():
		return errors.New("unknown category: " + p.Category.String())
	}

	return nil
}

// FirstImageURL returns the first image reference, or the placeholder when
// the product has no images.
func (p *Product) FirstImageURL() string {
	if len(p.Images) == 0 {
		return PlaceholderImageURL
	}

	return p.Images[0].URL
}
