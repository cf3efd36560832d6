package jsonfile

import (
	"context"
	"strconv"
	"strings"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
)

// userRepository implements the domain.UserRepository interface on top of
// the JSON store.
type userRepository struct {
	store *Store
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{store: store}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	var out *entity.User

	err := repo.store.viewUsers(func(doc *usersDocument) error {
		for _, rec := range doc.Users {
			if rec.ID == id {
				out = toUserDomain(rec)

				return nil
			}
		}

		return repository.ErrUserNotFound
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// FindByEmail retrieves a single user by their email address. The match is
// case-insensitive so signups and logins agree on identity.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var out *entity.User

	err := repo.store.viewUsers(func(doc *usersDocument) error {
		for _, rec := range doc.Users {
			if strings.EqualFold(rec.Email, email) {
				out = toUserDomain(rec)

				return nil
			}
		}

		return repository.ErrUserNotFound
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// All retrieves every user.
func (repo *userRepository) All(ctx context.Context) ([]*entity.User, error) {
	var out []*entity.User

	err := repo.store.viewUsers(func(doc *usersDocument) error {
		out = make([]*entity.User, len(doc.Users))
		for i, rec := range doc.Users {
			out[i] = toUserDomain(rec)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Create persists a new user and assigns its ID. The email must not be in
// use by another account.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	return repo.store.updateUsers(func(doc *usersDocument) error {
		for _, rec := range doc.Users {
			if strings.EqualFold(rec.Email, user.Email) {
				return domainerrors.ErrUserAlreadyExists
			}
		}

		doc.LastUserID++
		user.ID = strconv.Itoa(doc.LastUserID)
		doc.Users = append(doc.Users, toUserRecord(user))

		return nil
	})
}

// Update modifies an existing user record.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	return repo.store.updateUsers(func(doc *usersDocument) error {
		for i, rec := range doc.Users {
			if rec.ID == user.ID {
				doc.Users[i] = toUserRecord(user)

				return nil
			}
		}

		return repository.ErrUserNotFound
	})
}

// Delete removes a user.
func (repo *userRepository) Delete(ctx context.Context, id string) error {
	return repo.store.updateUsers(func(doc *usersDocument) error {
		for i, rec := range doc.Users {
			if rec.ID == id {
				doc.Users = append(doc.Users[:i], doc.Users[i+1:]...)

				return nil
			}
		}

		return repository.ErrUserNotFound
	})
}
