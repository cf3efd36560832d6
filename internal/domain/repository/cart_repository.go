package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// CartRepository defines the operations for per-user cart persistence.
// Carts are durable: they are read back on startup and survive sessions.
type CartRepository interface {
	// FindByUser returns the user's cart. A user without a stored cart
	// gets an empty one; this is not an error.
	FindByUser(ctx context.Context, userID string) (*entity.Cart, error)

	// Save persists the cart, replacing any previous state for the user.
	// An empty cart removes the stored record.
	Save(ctx context.Context, cart *entity.Cart) error
}
