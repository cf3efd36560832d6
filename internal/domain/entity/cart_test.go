package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testProduct(id string, price int64, discount int64) *Product {
	return &Product{
		ID:          id,
		Name:        "Product " + id,
		Description: "A product",
		Price:       price,
		Discount:    discount,
		Category:    CategoryPottery,
		Stock:       10,
		IsActive:    true,
	}
}

func TestLineItem_UnitPrice(t *testing.T) {
	tests := []struct {
		name     string
		price    int64
		discount int64
		want     int64
	}{
		{name: "no discount", price: 1299, discount: 0, want: 1299},
		{name: "ten percent", price: 3499, discount: 10, want: 3149},
		{name: "fifteen percent", price: 899, discount: 15, want: 764},
		{name: "rounds half up", price: 50, discount: 25, want: 37}, // 12.5 rounds to 13 off
		{name: "full discount", price: 1000, discount: 100, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			li := LineItem{Price: tt.price, Discount: tt.discount}
			assert.Equal(t, tt.want, li.UnitPrice())
		})
	}
}

func TestCart_Pricing(t *testing.T) {
	t.Run("above free shipping threshold", func(t *testing.T) {
		cart := &Cart{UserID: "1"}
		cart.AddItem(testProduct("1", 3000, 0), 2)

		assert.Equal(t, int64(6000), cart.Subtotal())
		assert.Equal(t, int64(1080), cart.Tax())
		assert.Equal(t, int64(0), cart.Shipping())
		assert.Equal(t, int64(7080), cart.Total())
	})

	t.Run("below free shipping threshold", func(t *testing.T) {
		cart := &Cart{UserID: "1"}
		cart.AddItem(testProduct("1", 1000, 0), 1)

		assert.Equal(t, int64(1000), cart.Subtotal())
		assert.Equal(t, int64(180), cart.Tax())
		assert.Equal(t, int64(200), cart.Shipping())
		assert.Equal(t, int64(1380), cart.Total())
	})

	t.Run("exactly at threshold ships free", func(t *testing.T) {
		cart := &Cart{UserID: "1"}
		cart.AddItem(testProduct("1", 5000, 0), 1)

		assert.Equal(t, int64(0), cart.Shipping())
	})

	t.Run("discount applies before tax and shipping", func(t *testing.T) {
		cart := &Cart{UserID: "1"}
		cart.AddItem(testProduct("1", 3499, 10), 1)

		assert.Equal(t, int64(3149), cart.Subtotal())
		assert.Equal(t, TaxOn(3149), cart.Tax())
		assert.Equal(t, int64(200), cart.Shipping())
	})

	t.Run("empty cart", func(t *testing.T) {
		cart := &Cart{UserID: "1"}

		assert.Equal(t, int64(0), cart.Subtotal())
		assert.Equal(t, int64(0), cart.Tax())
		assert.Equal(t, int64(200), cart.Shipping())
	})
}

func TestCart_AddItem(t *testing.T) {
	cart := &Cart{UserID: "1"}

	cart.AddItem(testProduct("1", 1299, 0), 2)
	cart.AddItem(testProduct("2", 899, 0), 1)
	assert.Len(t, cart.Items, 2)
	assert.Equal(t, 3, cart.Count())

	// Adding the same product merges into the existing line.
	cart.AddItem(testProduct("1", 1299, 0), 1)
	assert.Len(t, cart.Items, 2)
	assert.Equal(t, 3, cart.Items[0].Quantity)

	// Quantities below one are clamped to one.
	cart.AddItem(testProduct("3", 500, 0), 0)
	assert.Equal(t, 1, cart.Items[2].Quantity)
}

func TestCart_SetQuantity(t *testing.T) {
	cart := &Cart{UserID: "1"}
	cart.AddItem(testProduct("1", 1299, 0), 2)
	cart.AddItem(testProduct("2", 899, 0), 1)

	cart.SetQuantity("1", 5)
	assert.Equal(t, 5, cart.Items[0].Quantity)

	// Zero removes the line entirely.
	cart.SetQuantity("1", 0)
	assert.False(t, cart.Contains("1"))
	assert.Len(t, cart.Items, 1)

	// Unknown products are ignored.
	cart.SetQuantity("missing", 3)
	assert.Len(t, cart.Items, 1)
}

func TestCart_RemoveAndClear(t *testing.T) {
	cart := &Cart{UserID: "1"}
	cart.AddItem(testProduct("1", 1299, 0), 1)
	cart.AddItem(testProduct("2", 899, 0), 1)

	cart.RemoveItem("1")
	assert.False(t, cart.Contains("1"))
	assert.True(t, cart.Contains("2"))

	cart.Clear()
	assert.Empty(t, cart.Items)
	assert.Equal(t, 0, cart.Count())
}
