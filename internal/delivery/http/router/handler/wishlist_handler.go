package handler

import (
	"net/http"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// WishlistHandler holds dependencies for the wishlist handlers.
type WishlistHandler struct {
	uc usecase.WishlistUsecase
}

// NewWishlistHandler is the constructor for WishlistHandler, injected by Fx.
func NewWishlistHandler(uc usecase.WishlistUsecase) *WishlistHandler {
	return &WishlistHandler{uc: uc}
}

// Get returns the caller's wishlist with resolved products.
func (h *WishlistHandler) Get(c echo.Context) error {
	out, err := h.uc.Get(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"productIds": out.ProductIDs,
		"products":   out.Products,
	}, "")
}

// Toggle flips a product's membership in the caller's wishlist.
func (h *WishlistHandler) Toggle(c echo.Context) error {
	out, err := h.uc.Toggle(c.Request().Context(), middleware.UserID(c), c.Param("productId"))
	if err != nil {
		return errors.WithStack(err)
	}

	message := "Removed from wishlist"
	if out.Added {
		message = "Added to wishlist"
	}

	return response.Success(c, http.StatusOK, out, message)
}

// Clear removes every entry of the caller's wishlist.
func (h *WishlistHandler) Clear(c echo.Context) error {
	if err := h.uc.Clear(c.Request().Context(), middleware.UserID(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Wishlist cleared")
}
