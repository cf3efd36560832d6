package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// WishlistRepository defines the operations for per-user wishlist
// persistence, stored the same way carts are.
type WishlistRepository interface {
	// FindByUser returns the user's wishlist, empty when none is stored.
	FindByUser(ctx context.Context, userID string) (*entity.Wishlist, error)

	// Save persists the wishlist, replacing any previous state for the
	// user. An empty wishlist removes the stored record.
	Save(ctx context.Context, wishlist *entity.Wishlist) error
}
