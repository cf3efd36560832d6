package jsonfile

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAssignsID(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(openTestStore(t, t.TempDir()))

	user := &entity.User{
		Name:         "Asha Rao",
		Email:        "asha@example.com",
		PasswordHash: "$2a$10$fakehashfakehashfakehash",
		Role:         entity.RoleUser,
	}
	require.NoError(t, repo.Create(ctx, user))
	// The seeded admin holds ID 1.
	assert.Equal(t, "2", user.ID)

	got, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", got.Email)
	// The hash survives the persistence round trip even though the
	// entity never serializes it.
	assert.Equal(t, user.PasswordHash, got.PasswordHash)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(openTestStore(t, t.TempDir()))

	require.NoError(t, repo.Create(ctx, &entity.User{
		Name: "Asha", Email: "asha@example.com", PasswordHash: "x", Role: entity.RoleUser,
	}))

	err := repo.Create(ctx, &entity.User{
		Name: "Imposter", Email: "ASHA@Example.COM", PasswordHash: "y", Role: entity.RoleUser,
	})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserRepository_FindByEmailCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(openTestStore(t, t.TempDir()))

	got, err := repo.FindByEmail(ctx, "Admin@Storefront.Local")
	require.NoError(t, err)
	assert.True(t, got.IsAdmin())

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(openTestStore(t, t.TempDir()))

	user := &entity.User{
		Name: "Asha", Email: "asha@example.com", PasswordHash: "x", Role: entity.RoleUser,
	}
	require.NoError(t, repo.Create(ctx, user))

	user.Phone = "9876543210"
	require.NoError(t, repo.Update(ctx, user))

	got, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "9876543210", got.Phone)

	require.NoError(t, repo.Delete(ctx, user.ID))
	_, err = repo.FindByID(ctx, user.ID)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	all, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1) // the seeded admin remains
}
