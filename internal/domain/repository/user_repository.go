package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// All retrieves every user.
	All(ctx context.Context) ([]*entity.User, error)

	// Create persists a new user entity and assigns its ID.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user.
	Delete(ctx context.Context, id string) error
}
