package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for cartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Get returns the user's cart with its pricing breakdown.
func (srv *cartService) Get(ctx context.Context, userID string) (*usecase.CartOutput, error) {
	cart, err := srv.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	return cartOutput(cart), nil
}

// AddItem snapshots the product into the cart, or bumps the quantity when
// it is already there.
func (srv *cartService) AddItem(ctx context.Context, input usecase.AddToCartInput) (*usecase.CartOutput, error) {
	product, err := srv.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}
	if !product.IsActive {
		return nil, domainerrors.ErrProductNotFound
	}
	if product.Stock < 1 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("product is out of stock")
	}

	cart, err := srv.cartRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	cart.AddItem(product, input.Quantity)
	if err := srv.cartRepo.Save(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "failed to save cart")
	}

	srv.log(ctx).Debug("Cart item added",
		slog.String("userID", input.UserID), slog.String("productID", input.ProductID))

	return cartOutput(cart), nil
}

// UpdateItem sets a line's quantity; zero removes the line.
func (srv *cartService) UpdateItem(ctx context.Context, input usecase.UpdateCartItemInput) (*usecase.CartOutput, error) {
	cart, err := srv.cartRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	if input.Quantity > 0 && !cart.Contains(input.ProductID) {
		return nil, domainerrors.ErrProductNotFound.WrapMessage("product is not in the cart")
	}

	cart.SetQuantity(input.ProductID, input.Quantity)
	if err := srv.cartRepo.Save(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "failed to save cart")
	}

	return cartOutput(cart), nil
}

// RemoveItem drops a line from the cart.
func (srv *cartService) RemoveItem(ctx context.Context, userID, productID string) (*usecase.CartOutput, error) {
	cart, err := srv.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	cart.RemoveItem(productID)
	if err := srv.cartRepo.Save(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "failed to save cart")
	}

	return cartOutput(cart), nil
}

// Clear empties the cart.
func (srv *cartService) Clear(ctx context.Context, userID string) (*usecase.CartOutput, error) {
	cart, err := srv.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	cart.Clear()
	if err := srv.cartRepo.Save(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "failed to save cart")
	}

	return cartOutput(cart), nil
}

// cartOutput derives the pricing breakdown from the cart lines.
func cartOutput(cart *entity.Cart) *usecase.CartOutput {
	return &usecase.CartOutput{
		Cart:     cart,
		Count:    cart.Count(),
		Subtotal: cart.Subtotal(),
		Tax:      cart.Tax(),
		Shipping: cart.Shipping(),
		Total:    cart.Total(),
	}
}
