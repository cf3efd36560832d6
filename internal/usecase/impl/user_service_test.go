package impl

import (
	"context"
	"testing"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_RegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	out, err := env.User.Register(ctx, usecase.RegisterInput{
		Name:     "Asha Rao",
		Email:    "Asha@Example.com",
		Password: "secret-pass",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
	assert.Equal(t, "asha@example.com", out.User.Email)
	assert.False(t, out.User.IsAdmin())

	// Login works regardless of the email's casing.
	logged, err := env.User.Login(ctx, usecase.LoginInput{
		Email:    "ASHA@EXAMPLE.COM",
		Password: "secret-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, logged.User.ID)
	assert.NotEmpty(t, logged.AccessToken)
}

func TestUserService_RegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.User.Register(ctx, usecase.RegisterInput{
		Name: "Asha", Email: "asha@example.com", Password: "secret-pass",
	})
	require.NoError(t, err)

	_, err = env.User.Register(ctx, usecase.RegisterInput{
		Name: "Imposter", Email: "asha@example.com", Password: "other-pass",
	})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_RegisterValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.User.Register(ctx, usecase.RegisterInput{
		Email: "asha@example.com", Password: "secret-pass",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = env.User.Register(ctx, usecase.RegisterInput{
		Name: "Asha", Email: "asha@example.com", Password: "tiny",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUserService_LoginRejectsBadCredentials(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.User.Register(ctx, usecase.RegisterInput{
		Name: "Asha", Email: "asha@example.com", Password: "secret-pass",
	})
	require.NoError(t, err)

	// Wrong password and unknown account produce the same error.
	_, err = env.User.Login(ctx, usecase.LoginInput{Email: "asha@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	_, err = env.User.Login(ctx, usecase.LoginInput{Email: "ghost@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Me(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	out, err := env.User.Register(ctx, usecase.RegisterInput{
		Name: "Asha", Email: "asha@example.com", Password: "secret-pass",
	})
	require.NoError(t, err)

	me, err := env.User.Me(ctx, out.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", me.Email)

	_, err = env.User.Me(ctx, "999")
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_ChangePassword(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	out, err := env.User.Register(ctx, usecase.RegisterInput{
		Name: "Asha", Email: "asha@example.com", Password: "secret-pass",
	})
	require.NoError(t, err)

	// The current password must match.
	err = env.User.ChangePassword(ctx, usecase.ChangePasswordInput{
		UserID: out.User.ID, CurrentPassword: "wrong", NewPassword: "next-secret",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	require.NoError(t, env.User.ChangePassword(ctx, usecase.ChangePasswordInput{
		UserID: out.User.ID, CurrentPassword: "secret-pass", NewPassword: "next-secret",
	}))

	_, err = env.User.Login(ctx, usecase.LoginInput{Email: "asha@example.com", Password: "secret-pass"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	_, err = env.User.Login(ctx, usecase.LoginInput{Email: "asha@example.com", Password: "next-secret"})
	assert.NoError(t, err)
}

func TestUserService_UpdateProfile(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	out, err := env.User.Register(ctx, usecase.RegisterInput{
		Name:     "Asha Rao",
		Email:    "asha@example.com",
		Password: "secret1",
		Phone:    "9876543210",
	})
	require.NoError(t, err)

	updated, err := env.User.UpdateProfile(ctx, usecase.UpdateProfileInput{
		UserID: out.User.ID,
		Name:   "Asha R.",
	})
	require.NoError(t, err)
	assert.Equal(t, "Asha R.", updated.Name)
	// Empty fields keep their current value.
	assert.Equal(t, "9876543210", updated.Phone)

	me, err := env.User.Me(ctx, out.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "Asha R.", me.Name)

	_, err = env.User.UpdateProfile(ctx, usecase.UpdateProfileInput{UserID: "missing", Name: "x"})
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
