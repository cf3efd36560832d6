package impl

import (
	"context"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// wishlistService implements the WishlistUsecase interface.
type wishlistService struct {
	wishlistRepo repository.WishlistRepository
	productRepo  repository.ProductRepository
}

// WishlistServiceParams holds dependencies for wishlistService, injected by Fx.
type WishlistServiceParams struct {
	fx.In

	WishlistRepo repository.WishlistRepository
	ProductRepo  repository.ProductRepository
}

// NewWishlistService is the constructor for wishlistService.
func NewWishlistService(params WishlistServiceParams) usecase.WishlistUsecase {
	return &wishlistService{
		wishlistRepo: params.WishlistRepo,
		productRepo:  params.ProductRepo,
	}
}

// Get returns the user's wishlist with resolved products. Entries whose
// product has since been removed from the catalog are skipped.
func (srv *wishlistService) Get(ctx context.Context, userID string) (*usecase.WishlistOutput, error) {
	wishlist, err := srv.wishlistRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load wishlist")
	}

	out := &usecase.WishlistOutput{ProductIDs: wishlist.ProductIDs}
	for _, id := range wishlist.ProductIDs {
		product, err := srv.productRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				continue
			}

			return nil, errors.Wrap(err, "failed to resolve wishlist product")
		}
		out.Products = append(out.Products, product)
	}

	return out, nil
}

// Toggle adds the product when absent and removes it when present.
func (srv *wishlistService) Toggle(ctx context.Context, userID, productID string) (*usecase.ToggleWishlistOutput, error) {
	if _, err := srv.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	wishlist, err := srv.wishlistRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load wishlist")
	}

	added := wishlist.Toggle(productID)
	if err := srv.wishlistRepo.Save(ctx, wishlist); err != nil {
		return nil, errors.Wrap(err, "failed to save wishlist")
	}

	return &usecase.ToggleWishlistOutput{ProductID: productID, Added: added}, nil
}

// Clear removes every entry.
func (srv *wishlistService) Clear(ctx context.Context, userID string) error {
	wishlist, err := srv.wishlistRepo.FindByUser(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to load wishlist")
	}

	wishlist.Clear()
	if err := srv.wishlistRepo.Save(ctx, wishlist); err != nil {
		return errors.Wrap(err, "failed to save wishlist")
	}

	return nil
}
