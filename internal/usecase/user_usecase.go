package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateProfileInput carries the self-service editable account fields.
// Empty fields keep their current value.
type UpdateProfileInput struct {
	UserID string
	Name   string
	Phone  string
}

// ChangePasswordInput rotates the user's password after checking the
// current one.
type ChangePasswordInput struct {
	UserID          string
	CurrentPassword string
	NewPassword     string
}

// --- Output DTOs ---

// AuthOutput returns the signed access token and the account it belongs
// to after a successful registration or login.
type AuthOutput struct {
	AccessToken string
	User        *entity.User
}

// UserUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)

	// Me returns the account behind a validated token.
	Me(ctx context.Context, userID string) (*entity.User, error)

	// UpdateProfile changes the account's name and phone.
	UpdateProfile(ctx context.Context, input UpdateProfileInput) (*entity.User, error)

	ChangePassword(ctx context.Context, input ChangePasswordInput) error
}
