package handler

import (
	"net/http"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for the order handlers.
type OrderHandler struct {
	uc usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type checkoutRequest struct {
	ShippingAddress struct {
		Name    string `json:"name" validate:"required"`
		Phone   string `json:"phone"`
		Street  string `json:"street" validate:"required"`
		City    string `json:"city" validate:"required"`
		State   string `json:"state"`
		Pincode string `json:"pincode" validate:"required"`
	} `json:"shippingAddress"`
	PaymentMethod string `json:"paymentMethod" validate:"required"`
	Notes         string `json:"notes" validate:"max=500"`
	IsGift        bool   `json:"isGift"`
	GiftMessage   string `json:"giftMessage" validate:"max=200"`
}

type returnRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// Checkout assembles an order from the caller's cart.
func (h *OrderHandler) Checkout(c echo.Context) error {
	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	order, err := h.uc.Checkout(c.Request().Context(), usecase.CheckoutInput{
		UserID: middleware.UserID(c),
		ShippingAddress: entity.ShippingAddress{
			Name:    req.ShippingAddress.Name,
			Phone:   req.ShippingAddress.Phone,
			Street:  req.ShippingAddress.Street,
			City:    req.ShippingAddress.City,
			State:   req.ShippingAddress.State,
			Pincode: req.ShippingAddress.Pincode,
		},
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
		IsGift:        req.IsGift,
		GiftMessage:   req.GiftMessage,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order placed")
}

// ListMine returns the caller's orders, newest first.
func (h *OrderHandler) ListMine(c echo.Context) error {
	orders, err := h.uc.ListMine(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// Get returns one of the caller's orders.
func (h *OrderHandler) Get(c echo.Context) error {
	order, err := h.uc.Get(c.Request().Context(), middleware.UserID(c), c.Param("id"), middleware.IsAdmin(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "")
}

// Cancel cancels one of the caller's orders.
func (h *OrderHandler) Cancel(c echo.Context) error {
	order, err := h.uc.Cancel(c.Request().Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order cancelled")
}

// Return requests a return for one of the caller's delivered orders.
func (h *OrderHandler) Return(c echo.Context) error {
	var req returnRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid return input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	order, err := h.uc.RequestReturn(c.Request().Context(), usecase.ReturnOrderInput{
		UserID:  middleware.UserID(c),
		OrderID: c.Param("id"),
		Reason:  req.Reason,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Return requested")
}

// Delete removes the user's own order while it is still pending or
// already cancelled.
func (h *OrderHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), middleware.UserID(c), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Order deleted")
}

// TrackingQR streams the order's tracking QR code as a PNG.
func (h *OrderHandler) TrackingQR(c echo.Context) error {
	png, err := h.uc.TrackingQR(c.Request().Context(), middleware.UserID(c), c.Param("id"), middleware.IsAdmin(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
