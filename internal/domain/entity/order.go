package entity

import "time"

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
	OrderReturned   OrderStatus = "returned"
)

// ReturnWindow is how long after delivery a return may be requested.
const ReturnWindow = 7 * 24 * time.Hour

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled, OrderReturned:
		return true
	default:
		return false
	}
}

// fulfillmentRank orders the forward fulfillment chain. Cancelled and
// returned are side branches and rank as unreachable.
func (s OrderStatus) fulfillmentRank() int {
	switch s {
	case OrderPending:
		return 0
	case OrderProcessing:
		return 1
	case OrderShipped:
		return 2
	case OrderDelivered:
		return 3
	default:
		return -1
	}
}

// CanAdvanceTo reports whether the privileged status update may move an
// order from s to next. Only single forward steps along
// pending -> processing -> shipped -> delivered are allowed; cancellation
// and returns go through their dedicated operations.
func (s OrderStatus) CanAdvanceTo(next OrderStatus) bool {
	from, to := s.fulfillmentRank(), next.fulfillmentRank()

	return from >= 0 && to >= 0 && to == from+1
}

// ShippingAddress is where an order is delivered.
type ShippingAddress struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

// PaymentMethod enumerates the accepted payment methods.
type PaymentMethod string

const (
	PaymentCOD    PaymentMethod = "cod"
	PaymentOnline PaymentMethod = "online"
	PaymentUPI    PaymentMethod = "upi"
	PaymentCard   PaymentMethod = "card"
)

// IsValid checks if the PaymentMethod is a valid value.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCOD, PaymentOnline, PaymentUPI, PaymentCard:
		return true
	default:
		return false
	}
}

// PaymentInfo describes how an order was (or will be) paid.
type PaymentInfo struct {
	ID     string        `json:"id"`
	Method PaymentMethod `json:"method"`
	Status string        `json:"status"` // pending, completed, failed, refunded
}

// Order is a checkout snapshot of a cart plus shipping and payment
// details. Line items are point-in-time copies, decoupled from later
// product edits. The price fields are always recomputed from the items
// and never edited directly.
type Order struct {
	ID                string          `json:"id"`
	UserID            string          `json:"userId"`
	Items             []LineItem      `json:"orderItems"`
	ShippingAddress   ShippingAddress `json:"shippingAddress"`
	PaymentInfo       PaymentInfo     `json:"paymentInfo"`
	ItemsPrice        int64           `json:"itemsPrice"`
	TaxPrice          int64           `json:"taxPrice"`
	ShippingPrice     int64           `json:"shippingPrice"`
	TotalPrice        int64           `json:"totalPrice"`
	Status            OrderStatus     `json:"orderStatus"`
	TrackingNumber    string          `json:"trackingNumber,omitempty"`
	Notes             string          `json:"notes,omitempty"`
	IsGift            bool            `json:"isGift,omitempty"`
	GiftMessage       string          `json:"giftMessage,omitempty"`
	DeliveredAt       *time.Time      `json:"deliveredAt,omitempty"`
	CancelledAt       *time.Time      `json:"cancelledAt,omitempty"`
	ReturnRequestedAt *time.Time      `json:"returnRequestedAt,omitempty"`
	ReturnReason      string          `json:"returnReason,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

// ComputeTotals recomputes itemsPrice, taxPrice, shippingPrice and
// totalPrice from the line items, using the same formulas as the cart.
func (o *Order) ComputeTotals() {
	var items int64
	for _, item := range o.Items {
		items += item.UnitPrice() * int64(item.Quantity)
	}

	o.ItemsPrice = items
	o.TaxPrice = TaxOn(items)
	o.ShippingPrice = ShippingOn(items)
	o.TotalPrice = o.ItemsPrice + o.TaxPrice + o.ShippingPrice
}

// CanBeCancelled reports whether the order is still in an early enough
// stage to cancel.
func (o *Order) CanBeCancelled() bool {
	return o.Status == OrderPending || o.Status == OrderProcessing
}

// CanBeReturned reports whether a return may still be requested: the order
// is delivered and now is within the return window, counted from the
// delivery time or, if that was never recorded, the creation time.
func (o *Order) CanBeReturned(now time.Time) bool {
	if o.Status != OrderDelivered {
		return false
	}

	deliveredAt := o.CreatedAt
	if o.DeliveredAt != nil {
		deliveredAt = *o.DeliveredAt
	}

	return now.Sub(deliveredAt) <= ReturnWindow
}

// CanBeDeleted reports whether the order may be removed entirely.
func (o *Order) CanBeDeleted() bool {
	return o.Status == OrderPending || o.Status == OrderCancelled
}
