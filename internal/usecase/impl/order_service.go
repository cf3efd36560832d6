package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	maxNotesLength       = 500
	maxGiftMessageLength = 200
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	orderRepo repository.OrderRepository
	cartRepo  repository.CartRepository
	qrService service.QRCodeService
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo repository.OrderRepository
	CartRepo  repository.CartRepository
	QRService service.QRCodeService
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo: params.OrderRepo,
		cartRepo:  params.CartRepo,
		qrService: params.QRService,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Checkout assembles an order from the user's cart, recomputing all
// amounts server-side, persists it and clears the cart.
func (srv *orderService) Checkout(ctx context.Context, input usecase.CheckoutInput) (*entity.Order, error) {
	if err := validateCheckout(input); err != nil {
		return nil, err
	}

	cart, err := srv.cartRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}
	if len(cart.Items) == 0 {
		return nil, domainerrors.ErrEmptyCart
	}

	order := &entity.Order{
		UserID:          input.UserID,
		Items:           append([]entity.LineItem(nil), cart.Items...),
		ShippingAddress: input.ShippingAddress,
		PaymentInfo: entity.PaymentInfo{
			Method: entity.PaymentMethod(input.PaymentMethod),
			Status: "pending",
		},
		Status:      entity.OrderPending,
		Notes:       input.Notes,
		IsGift:      input.IsGift,
		GiftMessage: input.GiftMessage,
	}
	order.ComputeTotals()

	if err := srv.orderRepo.Create(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to create order")
	}

	cart.Clear()
	if err := srv.cartRepo.Save(ctx, cart); err != nil {
		// The order exists; a cart left behind is an inconvenience, not
		// a failed checkout.
		srv.log(ctx).Warn("Failed to clear cart after checkout",
			slog.String("userID", input.UserID), slog.Any("error", err))
	}

	srv.log(ctx).Info("Order placed",
		slog.String("orderID", order.ID),
		slog.String("userID", order.UserID),
		slog.Int64("total", order.TotalPrice))

	return order, nil
}

func validateCheckout(input usecase.CheckoutInput) error {
	addr := input.ShippingAddress
	if addr.Name == "" || addr.Street == "" || addr.City == "" || addr.Pincode == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("shipping address is incomplete")
	}
	if !entity.PaymentMethod(input.PaymentMethod).IsValid() {
		return domainerrors.ErrValidationFailed.WrapMessage("unknown payment method")
	}
	if len(input.Notes) > maxNotesLength {
		return domainerrors.ErrValidationFailed.WrapMessage("notes are limited to 500 characters")
	}
	if len(input.GiftMessage) > maxGiftMessageLength {
		return domainerrors.ErrValidationFailed.WrapMessage("gift message is limited to 200 characters")
	}

	return nil
}

// ListMine returns the user's orders, newest first.
func (srv *orderService) ListMine(ctx context.Context, userID string) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// Get returns one of the user's orders. Admins may fetch any order.
func (srv *orderService) Get(ctx context.Context, userID, orderID string, isAdmin bool) (*entity.Order, error) {
	order, err := srv.findOwned(ctx, userID, orderID, isAdmin)
	if err != nil {
		return nil, err
	}

	return order, nil
}

// Cancel cancels an order that has not shipped yet.
func (srv *orderService) Cancel(ctx context.Context, userID, orderID string) (*entity.Order, error) {
	order, err := srv.findOwned(ctx, userID, orderID, false)
	if err != nil {
		return nil, err
	}

	if !order.CanBeCancelled() {
		return nil, domainerrors.ErrOrderNotCancellable
	}

	now := time.Now()
	order.Status = entity.OrderCancelled
	order.CancelledAt = &now
	if order.PaymentInfo.Status == "completed" {
		order.PaymentInfo.Status = "refunded"
	}

	if err := srv.orderRepo.Update(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to update order")
	}

	srv.log(ctx).Info("Order cancelled", slog.String("orderID", order.ID), slog.String("userID", userID))

	return order, nil
}

// RequestReturn flags a delivered order for return while the return
// window is still open.
func (srv *orderService) RequestReturn(ctx context.Context, input usecase.ReturnOrderInput) (*entity.Order, error) {
	order, err := srv.findOwned(ctx, input.UserID, input.OrderID, false)
	if err != nil {
		return nil, err
	}

	if !order.CanBeReturned(time.Now()) {
		return nil, domainerrors.ErrOrderNotReturnable
	}

	now := time.Now()
	order.Status = entity.OrderReturned
	order.ReturnRequestedAt = &now
	order.ReturnReason = input.Reason

	if err := srv.orderRepo.Update(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to update order")
	}

	srv.log(ctx).Info("Return requested", slog.String("orderID", order.ID), slog.String("userID", input.UserID))

	return order, nil
}

// Delete removes one of the user's orders while it is still pending or
// already cancelled.
func (srv *orderService) Delete(ctx context.Context, userID, orderID string) error {
	order, err := srv.findOwned(ctx, userID, orderID, false)
	if err != nil {
		return err
	}

	if !order.CanBeDeleted() {
		return domainerrors.ErrOrderNotDeletable
	}

	if err := srv.orderRepo.Delete(ctx, order.ID); err != nil {
		return errors.Wrap(err, "failed to delete order")
	}

	srv.log(ctx).Info("Order deleted", slog.String("orderID", order.ID), slog.String("userID", userID))

	return nil
}

// TrackingQR renders a PNG QR code linking to the order's tracking page.
func (srv *orderService) TrackingQR(ctx context.Context, userID, orderID string, isAdmin bool) ([]byte, error) {
	order, err := srv.findOwned(ctx, userID, orderID, isAdmin)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateTrackingQR(order.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tracking QR")
	}

	return png, nil
}

// findOwned loads an order and enforces ownership. Non-admins asking for
// someone else's order get a not-found, never a hint that it exists.
func (srv *orderService) findOwned(ctx context.Context, userID, orderID string, isAdmin bool) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	if !isAdmin && order.UserID != userID {
		return nil, domainerrors.ErrOrderNotFound
	}

	return order, nil
}
