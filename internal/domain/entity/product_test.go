package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validProduct() *Product {
	return &Product{
		Name:        "Hand-Thrown Ceramic Mug",
		Description: "Wheel-thrown stoneware mug",
		Price:       1299,
		Category:    CategoryPottery,
		Stock:       10,
	}
}

func TestProduct_Validate(t *testing.T) {
	assert.NoError(t, validProduct().Validate())

	tests := []struct {
		name   string
		mutate func(*Product)
	}{
		{name: "missing name", mutate: func(p *Product) { p.Name = "" }},
		{name: "missing description", mutate: func(p *Product) { p.Description = "" }},
		{name: "negative price", mutate: func(p *Product) { p.Price = -1 }},
		{name: "negative stock", mutate: func(p *Product) { p.Stock = -1 }},
		{name: "rating too high", mutate: func(p *Product) { p.Rating = 5.1 }},
		{name: "rating negative", mutate: func(p *Product) { p.Rating = -0.1 }},
		{name: "unknown category", mutate: func(p *Product) { p.Category = "Gadgets" }},
		{name: "filter value is not a category", mutate: func(p *Product) { p.Category = CategoryAll }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProduct()
			tt.mutate(p)
			assert.Error(t, p.Validate())
		})
	}
}

func TestProduct_FirstImageURL(t *testing.T) {
	p := validProduct()
	assert.Equal(t, PlaceholderImageURL, p.FirstImageURL())

	p.Images = []ProductImage{{URL: "/uploads/a.jpg"}, {URL: "/uploads/b.jpg"}}
	assert.Equal(t, "/uploads/a.jpg", p.FirstImageURL())
}

func TestCategory_IsValid(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, c.IsValid(), c.String())
	}
	assert.False(t, CategoryAll.IsValid())
	assert.False(t, Category("Gadgets").IsValid())
}
