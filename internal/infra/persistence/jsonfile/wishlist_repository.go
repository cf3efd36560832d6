package jsonfile

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

// wishlistRepository implements the domain.WishlistRepository interface on
// top of the JSON store.
type wishlistRepository struct {
	store *Store
}

// NewWishlistRepository is the constructor for wishlistRepository.
func NewWishlistRepository(store *Store) repository.WishlistRepository {
	return &wishlistRepository{store: store}
}

// FindByUser returns the user's wishlist, empty when none is stored.
func (repo *wishlistRepository) FindByUser(ctx context.Context, userID string) (*entity.Wishlist, error) {
	out := &entity.Wishlist{UserID: userID}

	err := repo.store.viewCatalog(func(doc *catalogDocument) error {
		for _, w := range doc.Wishlists {
			if w.UserID == userID {
				out.ProductIDs = append([]string(nil), w.ProductIDs...)

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

// Save persists the wishlist, replacing any previous state for the user.
// An empty wishlist removes the stored record.
func (repo *wishlistRepository) Save(ctx context.Context, wishlist *entity.Wishlist) error {
	return repo.store.updateCatalog(func(doc *catalogDocument) error {
		for i, w := range doc.Wishlists {
			if w.UserID == wishlist.UserID {
				if len(wishlist.ProductIDs) == 0 {
					doc.Wishlists = append(doc.Wishlists[:i], doc.Wishlists[i+1:]...)

					return nil
				}
				doc.Wishlists[i] = cloneWishlist(wishlist)

				return nil
			}
		}

		if len(wishlist.ProductIDs) != 0 {
			doc.Wishlists = append(doc.Wishlists, cloneWishlist(wishlist))
		}

		return nil
	})
}

func cloneWishlist(w *entity.Wishlist) *entity.Wishlist {
	return &entity.Wishlist{
		UserID:     w.UserID,
		ProductIDs: append([]string(nil), w.ProductIDs...),
	}
}
