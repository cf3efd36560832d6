// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// --- Input DTOs ---

// ListProductsInput carries the catalog filters requested by a shopper.
// Zero values disable the corresponding filter.
type ListProductsInput struct {
	Keyword   string
	Category  string
	MinPrice  *int64
	MaxPrice  *int64
	MinRating float64
	Page      int
}

// --- Output DTOs ---

// ProductListOutput is one page of the filtered catalog.
type ProductListOutput struct {
	Products   []*entity.Product
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

// CatalogUsecase defines the shopper-facing catalog operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type CatalogUsecase interface {
	// ListProducts returns one page of active products matching the
	// filters. Filtering happens server-side over the whole catalog.
	ListProducts(ctx context.Context, input ListProductsInput) (*ProductListOutput, error)

	// GetProduct returns a single product visible to shoppers.
	GetProduct(ctx context.Context, id string) (*entity.Product, error)

	// FeaturedProducts returns the active products flagged as featured.
	FeaturedProducts(ctx context.Context) ([]*entity.Product, error)

	// Categories lists the fixed catalog taxonomy.
	Categories(ctx context.Context) []entity.Category
}
