package impl

import (
	"context"
	"testing"

	domainerrors "storefront/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWishlistService_ToggleRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	out, err := env.Wishlist.Toggle(ctx, "7", "3")
	require.NoError(t, err)
	assert.True(t, out.Added)

	// Toggling again removes it; the wishlist is back where it started.
	out, err = env.Wishlist.Toggle(ctx, "7", "3")
	require.NoError(t, err)
	assert.False(t, out.Added)

	got, err := env.Wishlist.Get(ctx, "7")
	require.NoError(t, err)
	assert.Empty(t, got.ProductIDs)
}

func TestWishlistService_ToggleUnknownProduct(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.Wishlist.Toggle(context.Background(), "7", "999")
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestWishlistService_GetResolvesProducts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.Wishlist.Toggle(ctx, "7", "3")
	require.NoError(t, err)
	_, err = env.Wishlist.Toggle(ctx, "7", "8")
	require.NoError(t, err)

	got, err := env.Wishlist.Get(ctx, "7")
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "8"}, got.ProductIDs)
	require.Len(t, got.Products, 2)
	assert.Equal(t, "Silver Leaf Pendant", got.Products[0].Name)
}

func TestWishlistService_GetSkipsDeletedProducts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.Wishlist.Toggle(ctx, "7", "3")
	require.NoError(t, err)
	_, err = env.Wishlist.Toggle(ctx, "7", "8")
	require.NoError(t, err)

	_, err = env.ProductRepo.Delete(ctx, "3")
	require.NoError(t, err)

	got, err := env.Wishlist.Get(ctx, "7")
	require.NoError(t, err)
	require.Len(t, got.Products, 1)
	assert.Equal(t, "8", got.Products[0].ID)
}

func TestWishlistService_Clear(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.Wishlist.Toggle(ctx, "7", "3")
	require.NoError(t, err)

	require.NoError(t, env.Wishlist.Clear(ctx, "7"))

	got, err := env.Wishlist.Get(ctx, "7")
	require.NoError(t, err)
	assert.Empty(t, got.ProductIDs)
}
