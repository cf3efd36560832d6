package jsonfile

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T, dir string) *Store {
	t.Helper()

	cfg := &config.Config{}
	cfg.Storage.DataDir = dir

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	store, err := Open(cfg, logger)
	require.NoError(t, err)

	return store
}

func TestStore_SeedsOnFirstOpen(t *testing.T) {
	dir := t.TempDir()
	store := openTestStore(t, dir)

	// Both documents exist on disk after the first open.
	assert.FileExists(t, filepath.Join(dir, catalogFile))
	assert.FileExists(t, filepath.Join(dir, usersFile))

	products, err := NewProductRepository(store).All(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 8)

	admin, err := NewUserRepository(store).FindByEmail(context.Background(), seedAdminEmail)
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin())
	assert.NotEmpty(t, admin.PasswordHash)
}

func TestStore_ReloadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store := openTestStore(t, dir)
	repo := NewProductRepository(store)

	created := &entity.Product{
		Name:        "Indigo Dyed Scarf",
		Description: "Silk scarf dip-dyed in natural indigo.",
		Price:       1599,
		Category:    entity.CategoryTextiles,
		Stock:       5,
		IsActive:    true,
	}
	require.NoError(t, repo.Create(ctx, created))
	assert.Equal(t, "9", created.ID)

	// A fresh store reading the same directory sees the new product.
	reopened := openTestStore(t, dir)
	got, err := NewProductRepository(reopened).FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Indigo Dyed Scarf", got.Name)
	assert.Equal(t, int64(1599), got.Price)
}

func TestStore_RollbackOnFailedPersist(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store := openTestStore(t, dir)
	repo := NewProductRepository(store)

	// Replace catalog.json with a directory so the rename must fail.
	require.NoError(t, os.Remove(filepath.Join(dir, catalogFile)))
	require.NoError(t, os.Mkdir(filepath.Join(dir, catalogFile), 0o755))

	err := repo.Create(ctx, &entity.Product{
		Name:        "Doomed Product",
		Description: "Never makes it to disk.",
		Price:       100,
		Category:    entity.CategoryArt,
		IsActive:    true,
	})
	require.Error(t, err)

	var pErr *domainerrors.PersistenceError
	assert.True(t, errors.As(err, &pErr))

	// The in-memory state stayed at the last persisted snapshot.
	products, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 8)
}

func TestStore_MutationsDoNotLeakReferences(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t, t.TempDir())
	repo := NewProductRepository(store)

	got, err := repo.FindByID(ctx, "1")
	require.NoError(t, err)

	// Mutating the returned record must not change the stored one.
	got.Name = "Scribbled Over"
	again, err := repo.FindByID(ctx, "1")
	require.NoError(t, err)
	assert.NotEqual(t, "Scribbled Over", again.Name)
}
