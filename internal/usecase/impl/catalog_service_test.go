package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_ListProducts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	out, err := env.Catalog.ListProducts(ctx, usecase.ListProductsInput{})
	require.NoError(t, err)
	assert.Equal(t, 8, out.Total)
	assert.Equal(t, 1, out.Page)
	assert.Equal(t, 1, out.TotalPages)
	assert.Len(t, out.Products, 8)
}

func TestCatalogService_ListHidesInactive(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p, err := env.ProductRepo.FindByID(ctx, "2")
	require.NoError(t, err)
	p.IsActive = false
	require.NoError(t, env.ProductRepo.Update(ctx, p))

	out, err := env.Catalog.ListProducts(ctx, usecase.ListProductsInput{})
	require.NoError(t, err)
	assert.Equal(t, 7, out.Total)
	for _, got := range out.Products {
		assert.NotEqual(t, "2", got.ID)
	}
}

func TestCatalogService_ListFilterPassthrough(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	out, err := env.Catalog.ListProducts(ctx, usecase.ListProductsInput{
		Keyword:  "mug",
		Category: "Pottery",
	})
	require.NoError(t, err)
	require.Len(t, out.Products, 1)
	assert.Equal(t, "1", out.Products[0].ID)
}

func TestCatalogService_TotalPagesRoundsUp(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.Admin.CreateProduct(ctx, usecase.ProductInput{
		Name:        "Ninth Product",
		Description: "Tips the catalog onto a second page.",
		Price:       500,
		Category:    "Art",
	})
	require.NoError(t, err)

	out, err := env.Catalog.ListProducts(ctx, usecase.ListProductsInput{Page: 2})
	require.NoError(t, err)
	assert.Equal(t, 9, out.Total)
	assert.Equal(t, 2, out.TotalPages)
	assert.Len(t, out.Products, 1)
}

func TestCatalogService_GetProduct(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p, err := env.Catalog.GetProduct(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Hand-Thrown Ceramic Mug", p.Name)

	_, err = env.Catalog.GetProduct(ctx, "999")
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)

	// Deactivated products are invisible to shoppers.
	stored, err := env.ProductRepo.FindByID(ctx, "1")
	require.NoError(t, err)
	stored.IsActive = false
	require.NoError(t, env.ProductRepo.Update(ctx, stored))

	_, err = env.Catalog.GetProduct(ctx, "1")
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_FeaturedProducts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	featured, err := env.Catalog.FeaturedProducts(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, featured)
	for _, p := range featured {
		assert.True(t, p.Featured)
		assert.True(t, p.IsActive)
	}
}

func TestCatalogService_Categories(t *testing.T) {
	env := newTestEnv(t)

	categories := env.Catalog.Categories(context.Background())
	assert.Equal(t, entity.Categories, categories)
}
