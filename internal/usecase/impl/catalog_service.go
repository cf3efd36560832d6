package impl

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo repository.ProductRepository
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{productRepo: params.ProductRepo}
}

// ListProducts returns one page of active products matching the filters.
func (srv *catalogService) ListProducts(ctx context.Context, input usecase.ListProductsInput) (*usecase.ProductListOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}

	filter := repository.ProductFilter{
		Keyword:    input.Keyword,
		Category:   entity.Category(input.Category),
		MinPrice:   input.MinPrice,
		MaxPrice:   input.MaxPrice,
		MinRating:  input.MinRating,
		ActiveOnly: true,
		Page:       page,
	}

	products, total, err := srv.productRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	totalPages := total / repository.PageSize
	if total%repository.PageSize != 0 {
		totalPages++
	}

	return &usecase.ProductListOutput{
		Products:   products,
		Total:      total,
		Page:       page,
		PageSize:   repository.PageSize,
		TotalPages: totalPages,
	}, nil
}

// GetProduct returns a single product visible to shoppers.
func (srv *catalogService) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}
	if !product.IsActive {
		// Shoppers never see deactivated products.
		return nil, domainerrors.ErrProductNotFound
	}

	return product, nil
}

// FeaturedProducts returns the active products flagged as featured.
func (srv *catalogService) FeaturedProducts(ctx context.Context) ([]*entity.Product, error) {
	all, err := srv.productRepo.All(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	featured := make([]*entity.Product, 0)
	for _, p := range all {
		if p.IsActive && p.Featured {
			featured = append(featured, p)
		}
	}

	return featured, nil
}

// Categories lists the fixed catalog taxonomy.
func (srv *catalogService) Categories(ctx context.Context) []entity.Category {
	return entity.Categories
}
