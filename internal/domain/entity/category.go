// Package entity contains the core business objects of the project.
package entity

import "slices"

// Category classifies a product within the fixed catalog taxonomy.
type Category string

const (
	CategoryPottery    Category = "Pottery"
	CategoryTextiles   Category = "Textiles"
	CategoryJewelry    Category = "Jewelry"
	CategoryKitchen    Category = "Kitchen"
	CategoryArt        Category = "Art"
	CategoryStationery Category = "Stationery"
	CategoryHomeDecor  Category = "Home Decor"
	CategoryWoodwork   Category = "Woodwork"
)

// CategoryAll is the filter value that disables category filtering.
// It is never a valid category on a product itself.
const CategoryAll Category = "All"

// Categories lists every valid product category.
var Categories = []Category{
	CategoryPottery,
	CategoryTextiles,
	CategoryJewelry,
	CategoryKitchen,
	CategoryArt,
	CategoryStationery,
	CategoryHomeDecor,
	CategoryWoodwork,
}

// String returns the string representation of the Category.
func (c Category) String() string {
	return string(c)
}

// IsValid checks if the Category is a valid value.
func (c Category) IsValid() bool {
	return slices.Contains(Categories, c)
}
