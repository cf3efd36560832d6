package usecase

import (
	"context"
	"io"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

// --- Input DTOs ---

// ProductInput carries the admin-editable fields of a product. IsActive
// is a pointer so an input that leaves it unset defaults to active
// instead of silently creating a hidden product.
type ProductInput struct {
	Name        string
	Description string
	Price       int64
	Category    string
	Stock       int
	IsActive    *bool
	Featured    bool
	Discount    int64
	ImageURLs   []string
}

// UpdateProductInput carries a partial product update. Nil fields keep
// their current value; a non-nil image list replaces the existing one
// wholesale.
type UpdateProductInput struct {
	Name        *string
	Description *string
	Price       *int64
	Category    *string
	Stock       *int
	IsActive    *bool
	Featured    *bool
	Discount    *int64
	ImageURLs   []string
}

// ImageUploadInput is one file of an admin image upload.
type ImageUploadInput struct {
	Filename string
	Size     int64
	Content  io.Reader
	Preset   service.CompressionPreset
}

// UpdateOrderStatusInput advances an order along the fulfillment chain.
type UpdateOrderStatusInput struct {
	OrderID        string
	Status         string
	TrackingNumber string
}

// UpdateUserRoleInput changes an account's role.
type UpdateUserRoleInput struct {
	UserID string
	Role   string
}

// --- Output DTOs ---

// UploadedImage reports one stored file of a bulk upload.
type UploadedImage struct {
	URL  string `json:"url"`
	Size int64  `json:"size"`
}

// StatsOutput aggregates the dashboard numbers for the admin surface.
type StatsOutput struct {
	TotalProducts    int   `json:"totalProducts"`
	ActiveProducts   int   `json:"activeProducts"`
	FeaturedProducts int   `json:"featuredProducts"`
	LowStock         int   `json:"lowStock"`
	TotalOrders      int   `json:"totalOrders"`
	PendingOrders    int   `json:"pendingOrders"`
	DeliveredOrders  int   `json:"deliveredOrders"`
	TotalUsers       int   `json:"totalUsers"`
	Revenue          int64 `json:"totalRevenue"`
}

// AdminUsecase defines the privileged catalog, order and account
// management operations.
type AdminUsecase interface {
	// ListProducts returns the whole catalog, inactive products included.
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// GetProduct returns one product, active or not.
	GetProduct(ctx context.Context, id string) (*entity.Product, error)

	// CreateProduct adds a catalog record. A product created without
	// images gets the placeholder image.
	CreateProduct(ctx context.Context, input ProductInput) (*entity.Product, error)

	// UpdateProduct merges a partial update into a product.
	UpdateProduct(ctx context.Context, id string, input UpdateProductInput) (*entity.Product, error)

	// DeleteProduct removes a product and returns the removed record.
	DeleteProduct(ctx context.Context, id string) (*entity.Product, error)

	// SetFeatured flips the featured flag on a product.
	SetFeatured(ctx context.Context, id string, featured bool) (*entity.Product, error)

	// SetImages replaces the product's image list wholesale. An empty list
	// falls back to the placeholder image.
	SetImages(ctx context.Context, id string, urls []string) (*entity.Product, error)

	// UploadImages stores uploaded files and attaches them to the product.
	UploadImages(ctx context.Context, productID string, uploads []ImageUploadInput) ([]UploadedImage, error)

	// RemoveImage drops the image at the given index from the product.
	RemoveImage(ctx context.Context, productID string, index int) (*entity.Product, error)

	// ListOrders returns every order, newest first.
	ListOrders(ctx context.Context) ([]*entity.Order, error)

	// UpdateOrderStatus moves an order one step along
	// pending -> processing -> shipped -> delivered. Shipping an order
	// decrements the stock of its products, best effort.
	UpdateOrderStatus(ctx context.Context, input UpdateOrderStatusInput) (*entity.Order, error)

	// DeleteOrder removes a pending or cancelled order.
	DeleteOrder(ctx context.Context, orderID string) error

	// ListUsers returns every account.
	ListUsers(ctx context.Context) ([]*entity.User, error)

	// GetUser returns one account.
	GetUser(ctx context.Context, id string) (*entity.User, error)

	// UpdateUserRole changes an account's role.
	UpdateUserRole(ctx context.Context, input UpdateUserRoleInput) (*entity.User, error)

	// DeleteUser removes an account.
	DeleteUser(ctx context.Context, actorID, userID string) error

	// Stats aggregates the dashboard numbers.
	Stats(ctx context.Context) (*StatsOutput, error)
}
