package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// lowStockThreshold flags products running out on the admin dashboard.
const lowStockThreshold = 5

// adminService implements the AdminUsecase interface.
type adminService struct {
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	userRepo    repository.UserRepository
	imageStore  service.ImageStore
	logger      *slog.Logger
}

// AdminServiceParams holds dependencies for adminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	OrderRepo   repository.OrderRepository
	UserRepo    repository.UserRepository
	ImageStore  service.ImageStore
	Logger      *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		productRepo: params.ProductRepo,
		orderRepo:   params.OrderRepo,
		userRepo:    params.UserRepo,
		imageStore:  params.ImageStore,
		logger:      params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts returns the whole catalog, inactive products included.
func (srv *adminService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.All(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// GetProduct returns one product, active or not.
func (srv *adminService) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	return srv.findProduct(ctx, id)
}

// CreateProduct adds a catalog record.
func (srv *adminService) CreateProduct(ctx context.Context, input usecase.ProductInput) (*entity.Product, error) {
	product := productFromInput(input)
	if len(product.Images) == 0 {
		product.Images = []entity.ProductImage{{URL: entity.PlaceholderImageURL}}
	}

	if err := product.Validate(); err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.String("productID", product.ID), slog.String("name", product.Name))

	return product, nil
}

// UpdateProduct merges a partial update into a product. Nil input fields
// keep their current value; a non-nil image list replaces the existing
// one wholesale.
func (srv *adminService) UpdateProduct(ctx context.Context, id string, input usecase.UpdateProductInput) (*entity.Product, error) {
	product, err := srv.findProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Category != nil {
		product.Category = entity.Category(*input.Category)
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	if input.Featured != nil {
		product.Featured = *input.Featured
	}
	if input.Discount != nil {
		product.Discount = *input.Discount
	}
	if input.ImageURLs != nil {
		images := make([]entity.ProductImage, 0, len(input.ImageURLs))
		for _, url := range input.ImageURLs {
			if url != "" {
				images = append(images, entity.ProductImage{URL: url})
			}
		}
		if len(images) == 0 {
			images = []entity.ProductImage{{URL: entity.PlaceholderImageURL}}
		}
		product.Images = images
	}

	if err := product.Validate(); err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

// DeleteProduct removes a product and returns the removed record.
func (srv *adminService) DeleteProduct(ctx context.Context, id string) (*entity.Product, error) {
	removed, err := srv.productRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.String("productID", id))

	return removed, nil
}

// SetFeatured flips the featured flag on a product.
func (srv *adminService) SetFeatured(ctx context.Context, id string, featured bool) (*entity.Product, error) {
	product, err := srv.findProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Featured = featured
	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	srv.log(ctx).Info("Product featured flag set",
		slog.String("productID", id), slog.Bool("featured", featured))

	return product, nil
}

// SetImages replaces the product's image list wholesale. An empty list
// falls back to the placeholder image.
func (srv *adminService) SetImages(ctx context.Context, id string, urls []string) (*entity.Product, error) {
	product, err := srv.findProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	images := make([]entity.ProductImage, 0, len(urls))
	for _, url := range urls {
		if url != "" {
			images = append(images, entity.ProductImage{URL: url})
		}
	}
	if len(images) == 0 {
		images = []entity.ProductImage{{URL: entity.PlaceholderImageURL}}
	}

	product.Images = images
	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

// UploadImages stores uploaded files and attaches them to the product.
func (srv *adminService) UploadImages(ctx context.Context, productID string, uploads []usecase.ImageUploadInput) ([]usecase.UploadedImage, error) {
	product, err := srv.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if len(uploads) == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("no files in upload")
	}

	stored := make([]usecase.UploadedImage, 0, len(uploads))
	for _, up := range uploads {
		img, err := srv.imageStore.Save(up.Filename, up.Size, up.Content, up.Preset)
		if err != nil {
			return nil, domainerrors.ErrValidationFailed.WrapMessage(err.Error())
		}
		stored = append(stored, usecase.UploadedImage{URL: img.URL, Size: img.Size})
		product.Images = append(product.Images, entity.ProductImage{URL: img.URL})
	}

	// A product that only carried the placeholder drops it once real
	// images arrive.
	if len(product.Images) > 1 && product.Images[0].URL == entity.PlaceholderImageURL {
		product.Images = product.Images[1:]
	}

	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	srv.log(ctx).Info("Images uploaded",
		slog.String("productID", productID), slog.Int("count", len(stored)))

	return stored, nil
}

// RemoveImage drops the image at the given index from the product.
func (srv *adminService) RemoveImage(ctx context.Context, productID string, index int) (*entity.Product, error) {
	product, err := srv.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	if index < 0 || index >= len(product.Images) {
		return nil, domainerrors.ErrInvalidImageIndex
	}

	product.Images = append(product.Images[:index], product.Images[index+1:]...)
	if len(product.Images) == 0 {
		product.Images = []entity.ProductImage{{URL: entity.PlaceholderImageURL}}
	}

	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

// ListOrders returns every order, newest first.
func (srv *adminService) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.All(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// UpdateOrderStatus moves an order one step along the fulfillment chain.
func (srv *adminService) UpdateOrderStatus(ctx context.Context, input usecase.UpdateOrderStatusInput) (*entity.Order, error) {
	next := entity.OrderStatus(input.Status)
	if !next.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown order status")
	}

	order, err := srv.orderRepo.FindByID(ctx, input.OrderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	if !order.Status.CanAdvanceTo(next) {
		return nil, domainerrors.ErrInvalidStatusTransition.WrapMessage(
			"cannot move from " + order.Status.String() + " to " + next.String())
	}

	order.Status = next
	if input.TrackingNumber != "" {
		order.TrackingNumber = input.TrackingNumber
	}
	if next == entity.OrderDelivered {
		now := time.Now()
		order.DeliveredAt = &now
	}

	if err := srv.orderRepo.Update(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to update order")
	}

	if next == entity.OrderShipped {
		srv.decrementStock(ctx, order)
	}

	srv.log(ctx).Info("Order status updated",
		slog.String("orderID", order.ID), slog.String("status", next.String()))

	return order, nil
}

// decrementStock reduces the stock of every product on a shipped order.
// Products that have since disappeared from the catalog are skipped; a
// shipment never fails over bookkeeping.
func (srv *adminService) decrementStock(ctx context.Context, order *entity.Order) {
	for _, item := range order.Items {
		product, err := srv.productRepo.FindByID(ctx, item.ProductID)
		if err != nil {
			continue
		}

		product.Stock -= item.Quantity
		if product.Stock < 0 {
			product.Stock = 0
		}
		if err := srv.productRepo.Update(ctx, product); err != nil {
			srv.log(ctx).Warn("Failed to decrement stock",
				slog.String("productID", item.ProductID), slog.Any("error", err))
		}
	}
}

// DeleteOrder removes a pending or cancelled order.
func (srv *adminService) DeleteOrder(ctx context.Context, orderID string) error {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound
		}

		return errors.Wrap(err, "failed to find order")
	}

	if !order.CanBeDeleted() {
		return domainerrors.ErrOrderNotDeletable
	}

	if err := srv.orderRepo.Delete(ctx, orderID); err != nil {
		return errors.Wrap(err, "failed to delete order")
	}

	srv.log(ctx).Info("Order deleted", slog.String("orderID", orderID))

	return nil
}

// ListUsers returns every account.
func (srv *adminService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.All(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// GetUser returns one account.
func (srv *adminService) GetUser(ctx context.Context, id string) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// UpdateUserRole changes an account's role.
func (srv *adminService) UpdateUserRole(ctx context.Context, input usecase.UpdateUserRoleInput) (*entity.User, error) {
	role := entity.Role(input.Role)
	if !role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown role")
	}

	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	user.Role = role
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update user")
	}

	srv.log(ctx).Info("User role updated",
		slog.String("userID", user.ID), slog.String("role", role.String()))

	return user, nil
}

// DeleteUser removes an account. Admins cannot delete themselves.
func (srv *adminService) DeleteUser(ctx context.Context, actorID, userID string) error {
	if actorID == userID {
		return domainerrors.ErrValidationFailed.WrapMessage("cannot delete your own account")
	}

	if err := srv.userRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to delete user")
	}

	srv.log(ctx).Info("User deleted", slog.String("userID", userID))

	return nil
}

// Stats aggregates the dashboard numbers.
func (srv *adminService) Stats(ctx context.Context) (*usecase.StatsOutput, error) {
	products, err := srv.productRepo.All(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}
	orders, err := srv.orderRepo.All(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}
	users, err := srv.userRepo.All(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	out := &usecase.StatsOutput{
		TotalProducts: len(products),
		TotalOrders:   len(orders),
		TotalUsers:    len(users),
	}
	for _, p := range products {
		if p.IsActive {
			out.ActiveProducts++
		}
		if p.Featured {
			out.FeaturedProducts++
		}
		if p.Stock <= lowStockThreshold {
			out.LowStock++
		}
	}
	for _, o := range orders {
		switch o.Status {
		case entity.OrderPending:
			out.PendingOrders++
		case entity.OrderDelivered:
			out.DeliveredOrders++
		}
		// Cancelled and returned orders do not count as revenue.
		if o.Status != entity.OrderCancelled && o.Status != entity.OrderReturned {
			out.Revenue += o.TotalPrice
		}
	}

	return out, nil
}

// productFromInput maps the admin DTO onto a fresh entity. A product is
// active unless the input says otherwise.
func productFromInput(input usecase.ProductInput) *entity.Product {
	images := make([]entity.ProductImage, 0, len(input.ImageURLs))
	for _, url := range input.ImageURLs {
		if url != "" {
			images = append(images, entity.ProductImage{URL: url})
		}
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	return &entity.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    entity.Category(input.Category),
		Images:      images,
		Stock:       input.Stock,
		IsActive:    isActive,
		Featured:    input.Featured,
		Discount:    input.Discount,
	}
}

// findProduct loads a product for an admin operation, mapping the
// repository sentinel onto the application error.
func (srv *adminService) findProduct(ctx context.Context, id string) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}
