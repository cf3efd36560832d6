package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// --- Input DTOs ---

// AddToCartInput adds a product to the calling user's cart.
type AddToCartInput struct {
	UserID    string
	ProductID string
	Quantity  int
}

// UpdateCartItemInput sets the quantity of a line already in the cart.
// A quantity of zero removes the line.
type UpdateCartItemInput struct {
	UserID    string
	ProductID string
	Quantity  int
}

// --- Output DTOs ---

// CartOutput is the cart together with its derived pricing breakdown.
// The amounts are always recomputed server-side from the line items.
type CartOutput struct {
	Cart     *entity.Cart
	Count    int
	Subtotal int64
	Tax      int64
	Shipping int64
	Total    int64
}

// CartUsecase defines the cart operations available to a signed-in user.
type CartUsecase interface {
	// Get returns the user's cart with its pricing breakdown. Users
	// without a stored cart get an empty one.
	Get(ctx context.Context, userID string) (*CartOutput, error)

	// AddItem snapshots the product into the cart, or bumps the
	// quantity when it is already there.
	AddItem(ctx context.Context, input AddToCartInput) (*CartOutput, error)

	// UpdateItem sets a line's quantity; zero removes the line.
	UpdateItem(ctx context.Context, input UpdateCartItemInput) (*CartOutput, error)

	// RemoveItem drops a line from the cart.
	RemoveItem(ctx context.Context, userID, productID string) (*CartOutput, error)

	// Clear empties the cart.
	Clear(ctx context.Context, userID string) (*CartOutput, error)
}
