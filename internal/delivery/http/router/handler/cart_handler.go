package handler

import (
	"net/http"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler holds dependencies for the cart handlers.
type CartHandler struct {
	uc usecase.CartUsecase
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

type addToCartRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity"`
}

type updateCartRequest struct {
	Quantity int `json:"quantity" validate:"min=0"`
}

// cartPayload is the cart with its derived pricing breakdown.
type cartPayload struct {
	Items    any   `json:"items"`
	Count    int   `json:"count"`
	Subtotal int64 `json:"subtotal"`
	Tax      int64 `json:"tax"`
	Shipping int64 `json:"shipping"`
	Total    int64 `json:"total"`
}

func cartBody(out *usecase.CartOutput) cartPayload {
	return cartPayload{
		Items:    out.Cart.Items,
		Count:    out.Count,
		Subtotal: out.Subtotal,
		Tax:      out.Tax,
		Shipping: out.Shipping,
		Total:    out.Total,
	}
}

// Get returns the caller's cart.
func (h *CartHandler) Get(c echo.Context) error {
	out, err := h.uc.Get(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cartBody(out), "")
}

// AddItem adds a product to the caller's cart.
func (h *CartHandler) AddItem(c echo.Context) error {
	var req addToCartRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	out, err := h.uc.AddItem(c.Request().Context(), usecase.AddToCartInput{
		UserID:    middleware.UserID(c),
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cartBody(out), "Item added to cart")
}

// UpdateItem sets the quantity of a line in the caller's cart.
func (h *CartHandler) UpdateItem(c echo.Context) error {
	var req updateCartRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	out, err := h.uc.UpdateItem(c.Request().Context(), usecase.UpdateCartItemInput{
		UserID:    middleware.UserID(c),
		ProductID: c.Param("productId"),
		Quantity:  req.Quantity,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cartBody(out), "Cart updated")
}

// RemoveItem drops a line from the caller's cart.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	out, err := h.uc.RemoveItem(c.Request().Context(), middleware.UserID(c), c.Param("productId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cartBody(out), "Item removed from cart")
}

// Clear empties the caller's cart.
func (h *CartHandler) Clear(c echo.Context) error {
	out, err := h.uc.Clear(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cartBody(out), "Cart cleared")
}
