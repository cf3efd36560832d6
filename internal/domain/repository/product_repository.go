// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// PageSize is the fixed number of products per listing page.
const PageSize = 8

// ProductFilter selects a subset of the catalog. Zero values disable the
// corresponding filter; all active filters combine with AND semantics.
type ProductFilter struct {
	// Keyword matches case-insensitively against name and description.
	Keyword string
	// Category is an exact match; empty or "All" disables it.
	Category entity.Category
	// MinPrice and MaxPrice are inclusive bounds in minor units. Nil
	// disables the bound.
	MinPrice *int64
	MaxPrice *int64
	// MinRating is an inclusive lower bound on the product rating.
	MinRating float64
	// ActiveOnly restricts the listing to active products.
	ActiveOnly bool
	// Page is the 1-based page index; zero means the first page.
	Page int
}

// ProductRepository defines the standard operations for catalog persistence.
type ProductRepository interface {
	// List returns the filtered page of products and the count of all
	// matches before pagination.
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, int, error)

	// All returns every product regardless of filters, in catalog order.
	All(ctx context.Context) ([]*entity.Product, error)

	// FindByID retrieves a single product by its unique ID.
	FindByID(ctx context.Context, id string) (*entity.Product, error)

	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// Update replaces an existing product record.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product and returns the removed record.
	Delete(ctx context.Context, id string) (*entity.Product, error)
}
