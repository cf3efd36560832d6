package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// WishlistOutput is the wishlist with its product records resolved, so
// the client does not have to fetch them one by one. Products that have
// been removed from the catalog are silently skipped.
type WishlistOutput struct {
	ProductIDs []string
	Products   []*entity.Product
}

// ToggleWishlistOutput reports the effect of a toggle.
type ToggleWishlistOutput struct {
	ProductID string
	Added     bool
}

// WishlistUsecase defines the wishlist operations available to a
// signed-in user.
type WishlistUsecase interface {
	// Get returns the user's wishlist with resolved products.
	Get(ctx context.Context, userID string) (*WishlistOutput, error)

	// Toggle adds the product when absent and removes it when present.
	// Toggling twice always restores the original state.
	Toggle(ctx context.Context, userID, productID string) (*ToggleWishlistOutput, error)

	// Clear removes every entry.
	Clear(ctx context.Context, userID string) error
}
