package jsonfile

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }

func TestProductRepository_List_Filters(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(openTestStore(t, t.TempDir()))

	t.Run("keyword matches name and description", func(t *testing.T) {
		items, total, err := repo.List(ctx, repository.ProductFilter{Keyword: "walnut"})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, items, 1)
		assert.Equal(t, "Turned Walnut Bowl", items[0].Name)
	})

	t.Run("category exact match", func(t *testing.T) {
		items, total, err := repo.List(ctx, repository.ProductFilter{Category: entity.CategoryPottery})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, items, 1)
		assert.Equal(t, entity.CategoryPottery, items[0].Category)
	})

	t.Run("category All disables the filter", func(t *testing.T) {
		_, total, err := repo.List(ctx, repository.ProductFilter{Category: entity.CategoryAll})
		require.NoError(t, err)
		assert.Equal(t, 8, total)
	})

	t.Run("price bounds are inclusive", func(t *testing.T) {
		items, total, err := repo.List(ctx, repository.ProductFilter{
			MinPrice: int64Ptr(1299),
			MaxPrice: int64Ptr(1899),
		})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		for _, p := range items {
			assert.GreaterOrEqual(t, p.Price, int64(1299))
			assert.LessOrEqual(t, p.Price, int64(1899))
		}
	})

	t.Run("minimum rating", func(t *testing.T) {
		items, _, err := repo.List(ctx, repository.ProductFilter{MinRating: 4.8})
		require.NoError(t, err)
		require.NotEmpty(t, items)
		for _, p := range items {
			assert.GreaterOrEqual(t, p.Rating, 4.8)
		}
	})

	t.Run("filters combine with AND semantics", func(t *testing.T) {
		// "hand" alone matches several products; adding a category
		// narrows the result to their intersection.
		_, broad, err := repo.List(ctx, repository.ProductFilter{Keyword: "hand"})
		require.NoError(t, err)
		items, narrow, err := repo.List(ctx, repository.ProductFilter{
			Keyword:  "hand",
			Category: entity.CategoryTextiles,
		})
		require.NoError(t, err)
		assert.Less(t, narrow, broad)
		for _, p := range items {
			assert.Equal(t, entity.CategoryTextiles, p.Category)
		}
	})

	t.Run("active only hides inactive products", func(t *testing.T) {
		p, err := repo.FindByID(ctx, "4")
		require.NoError(t, err)
		p.IsActive = false
		require.NoError(t, repo.Update(ctx, p))

		_, total, err := repo.List(ctx, repository.ProductFilter{ActiveOnly: true})
		require.NoError(t, err)
		assert.Equal(t, 7, total)

		p.IsActive = true
		require.NoError(t, repo.Update(ctx, p))
	})
}

func TestProductRepository_List_Pagination(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(openTestStore(t, t.TempDir()))

	// Grow the catalog past one page.
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(ctx, &entity.Product{
			Name:        "Filler Product",
			Description: "Padding for pagination.",
			Price:       100,
			Category:    entity.CategoryArt,
			IsActive:    true,
		}))
	}

	first, total, err := repo.List(ctx, repository.ProductFilter{Page: 1})
	require.NoError(t, err)
	assert.Equal(t, 13, total)
	assert.Len(t, first, repository.PageSize)

	second, total, err := repo.List(ctx, repository.ProductFilter{Page: 2})
	require.NoError(t, err)
	assert.Equal(t, 13, total)
	assert.Len(t, second, 5)

	// No overlap between pages.
	seen := map[string]bool{}
	for _, p := range first {
		seen[p.ID] = true
	}
	for _, p := range second {
		assert.False(t, seen[p.ID], "product %s appears on both pages", p.ID)
	}

	// Page zero behaves as page one; a page past the end is empty.
	zero, _, err := repo.List(ctx, repository.ProductFilter{})
	require.NoError(t, err)
	assert.Equal(t, first, zero)

	empty, total, err := repo.List(ctx, repository.ProductFilter{Page: 5})
	require.NoError(t, err)
	assert.Equal(t, 13, total)
	assert.Empty(t, empty)
}

func TestProductRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(openTestStore(t, t.TempDir()))

	created := &entity.Product{
		Name:        "Raku Fired Vase",
		Description: "Small raku vase with a crackle glaze.",
		Price:       3299,
		Category:    entity.CategoryPottery,
		Stock:       3,
		IsActive:    true,
	}
	require.NoError(t, repo.Create(ctx, created))
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	created.Price = 2999
	require.NoError(t, repo.Update(ctx, created))

	got, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2999), got.Price)

	removed, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, removed.ID)

	_, err = repo.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)

	_, err = repo.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}
