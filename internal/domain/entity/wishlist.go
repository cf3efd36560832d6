package entity

import "slices"

// Wishlist is a user's set of saved product references. Entries are
// product IDs only, deduplicated by strict string comparison, and carry no
// further attributes.
type Wishlist struct {
	UserID     string   `json:"userId"`
	ProductIDs []string `json:"productIds"`
}

// Toggle adds the product if absent and removes it if present. It returns
// true when the product ended up in the wishlist.
func (w *Wishlist) Toggle(productID string) bool {
	if i := slices.Index(w.ProductIDs, productID); i >= 0 {
		w.ProductIDs = slices.Delete(w.ProductIDs, i, i+1)

		return false
	}

	w.ProductIDs = append(w.ProductIDs, productID)

	return true
}

// Contains reports whether the product is in the wishlist.
func (w *Wishlist) Contains(productID string) bool {
	return slices.Contains(w.ProductIDs, productID)
}

// Clear removes every entry.
func (w *Wishlist) Clear() {
	w.ProductIDs = nil
}
