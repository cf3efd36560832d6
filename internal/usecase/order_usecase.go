package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// --- Input DTOs ---

// CheckoutInput turns the user's cart into an order.
type CheckoutInput struct {
	UserID          string
	ShippingAddress entity.ShippingAddress
	PaymentMethod   string
	Notes           string
	IsGift          bool
	GiftMessage     string
}

// ReturnOrderInput requests a return for a delivered order.
type ReturnOrderInput struct {
	UserID  string
	OrderID string
	Reason  string
}

// OrderUsecase defines the order operations available to a signed-in user.
// Checkout snapshots the cart; everything after that works on the
// snapshot, never on the live catalog.
type OrderUsecase interface {
	// Checkout assembles an order from the user's cart, recomputing all
	// amounts server-side, persists it and clears the cart.
	Checkout(ctx context.Context, input CheckoutInput) (*entity.Order, error)

	// ListMine returns the user's orders, newest first.
	ListMine(ctx context.Context, userID string) ([]*entity.Order, error)

	// Get returns one of the user's orders. Admins may fetch any order.
	Get(ctx context.Context, userID, orderID string, isAdmin bool) (*entity.Order, error)

	// Cancel cancels an order that has not shipped yet.
	Cancel(ctx context.Context, userID, orderID string) (*entity.Order, error)

	// RequestReturn flags a delivered order for return while the return
	// window is still open.
	RequestReturn(ctx context.Context, input ReturnOrderInput) (*entity.Order, error)

	// Delete removes one of the user's orders while it is still pending
	// or already cancelled.
	Delete(ctx context.Context, userID, orderID string) error

	// TrackingQR renders a PNG QR code linking to the order's tracking
	// page. The same ownership rules as Get apply.
	TrackingQR(ctx context.Context, userID, orderID string, isAdmin bool) ([]byte, error)
}
