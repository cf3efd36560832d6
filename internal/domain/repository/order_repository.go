package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrOrderNotFound is a domain-specific error returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the standard operations for order persistence.
type OrderRepository interface {
	// FindByID retrieves a single order by its unique ID.
	FindByID(ctx context.Context, id string) (*entity.Order, error)

	// FindByUser retrieves all orders placed by the given user, newest first.
	FindByUser(ctx context.Context, userID string) ([]*entity.Order, error)

	// All retrieves every order, newest first.
	All(ctx context.Context) ([]*entity.Order, error)

	// Create persists a new order.
	Create(ctx context.Context, order *entity.Order) error

	// Update replaces an existing order record.
	Update(ctx context.Context, order *entity.Order) error

	// Delete removes an order.
	Delete(ctx context.Context, id string) error
}
