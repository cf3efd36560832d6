package jsonfile

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

// cartRepository implements the domain.CartRepository interface on top of
// the JSON store.
type cartRepository struct {
	store *Store
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(store *Store) repository.CartRepository {
	return &cartRepository{store: store}
}

// FindByUser returns the user's cart, or an empty cart when none is
// stored.
func (repo *cartRepository) FindByUser(ctx context.Context, userID string) (*entity.Cart, error) {
	out := &entity.Cart{UserID: userID}

	err := repo.store.viewCatalog(func(doc *catalogDocument) error {
		for _, c := range doc.Carts {
			if c.UserID == userID {
				out.Items = append([]entity.LineItem(nil), c.Items...)

				return nil
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Save persists the cart, replacing any previous state for the user. An
// empty cart removes the stored record.
func (repo *cartRepository) Save(ctx context.Context, cart *entity.Cart) error {
	return repo.store.updateCatalog(func(doc *catalogDocument) error {
		for i, c := range doc.Carts {
			if c.UserID == cart.UserID {
				if len(cart.Items) == 0 {
					doc.Carts = append(doc.Carts[:i], doc.Carts[i+1:]...)

					return nil
				}
				doc.Carts[i] = cloneCart(cart)

				return nil
			}
		}

		if len(cart.Items) != 0 {
			doc.Carts = append(doc.Carts, cloneCart(cart))
		}

		return nil
	})
}

func cloneCart(c *entity.Cart) *entity.Cart {
	return &entity.Cart{
		UserID: c.UserID,
		Items:  append([]entity.LineItem(nil), c.Items...),
	}
}
