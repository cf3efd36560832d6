package entity

// Pricing constants shared by the cart and order assembly. All amounts are
// minor currency units.
const (
	// TaxRatePercent is the flat tax rate applied to the cart subtotal.
	TaxRatePercent = 18

	// FreeShippingThreshold is the subtotal at or above which shipping is
	// waived.
	FreeShippingThreshold = 5000

	// FlatShippingFee is charged below the free-shipping threshold.
	FlatShippingFee = 200
)

// LineItem is a point-in-time copy of a product inside a cart or an order.
// It deliberately does not reference the live Product record, so later
// catalog edits do not affect it.
type LineItem struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Discount  int64  `json:"discount,omitempty"` // percent off, 0 = none
	Image     string `json:"image"`
	Quantity  int    `json:"quantity"`
}

// UnitPrice returns the effective price of one unit after the discount,
// rounded half up to the nearest minor unit.
func (li LineItem) UnitPrice() int64 {
	if li.Discount <= 0 {
		return li.Price
	}

	return li.Price - roundedPercent(li.Price, li.Discount)
}

// Cart aggregates a user's selected products. Quantity zero never appears
// as a line; setting a quantity to zero removes the line instead.
type Cart struct {
	UserID string     `json:"userId"`
	Items  []LineItem `json:"items"`
}

// AddItem appends a snapshot of the product, or increments the quantity
// when the product is already in the cart.
func (c *Cart) AddItem(p *Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	for i := range c.Items {
		if c.Items[i].ProductID == p.ID {
			c.Items[i].Quantity += quantity

			return
		}
	}

	c.Items = append(c.Items, LineItem{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Discount:  p.Discount,
		Image:     p.FirstImageURL(),
		Quantity:  quantity,
	})
}

// RemoveItem drops the line for the given product, if present.
func (c *Cart) RemoveItem(productID string) {
	items := c.Items[:0]
	for _, item := range c.Items {
		if item.ProductID != productID {
			items = append(items, item)
		}
	}
	c.Items = items
}

// SetQuantity updates the quantity for the given product. A quantity of
// zero or less removes the line.
func (c *Cart) SetQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)

		return
	}

	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = quantity

			return
		}
	}
}

// Contains reports whether the cart holds a line for the given product.
func (c *Cart) Contains(productID string) bool {
	for _, item := range c.Items {
		if item.ProductID == productID {
			return true
		}
	}

	return false
}

// Count returns the total number of units across all lines.
func (c *Cart) Count() int {
	var count int
	for _, item := range c.Items {
		count += item.Quantity
	}

	return count
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = nil
}

// Subtotal sums the discounted unit price times quantity over all lines.
func (c *Cart) Subtotal() int64 {
	var subtotal int64
	for _, item := range c.Items {
		subtotal += item.UnitPrice() * int64(item.Quantity)
	}

	return subtotal
}

// Tax returns the flat-rate tax on the subtotal.
func (c *Cart) Tax() int64 {
	return TaxOn(c.Subtotal())
}

// Shipping returns the shipping fee for the current subtotal.
func (c *Cart) Shipping() int64 {
	return ShippingOn(c.Subtotal())
}

// Total returns subtotal + tax + shipping.
func (c *Cart) Total() int64 {
	subtotal := c.Subtotal()

	return subtotal + TaxOn(subtotal) + ShippingOn(subtotal)
}

// TaxOn computes the flat-rate tax for a subtotal, rounded half up to the
// nearest minor unit so that totals always add up exactly.
func TaxOn(subtotal int64) int64 {
	return roundedPercent(subtotal, TaxRatePercent)
}

// ShippingOn returns zero at or above the free-shipping threshold, the
// flat fee otherwise. An empty cart still prices shipping by the same
// rule; callers guard against checking out empty carts.
func ShippingOn(subtotal int64) int64 {
	if subtotal >= FreeShippingThreshold {
		return 0
	}

	return FlatShippingFee
}

func roundedPercent(amount, percent int64) int64 {
	return (amount*percent + 50) / 100
}
