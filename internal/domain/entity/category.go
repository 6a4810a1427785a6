// Package entity defines the core business entities for the domain layer.
package entity

import (
	"github.com/google/uuid"
)

// Category represents a product category used to group shopping list rows.
type Category struct {
	ID           uuid.UUID
	Name         string
	DisplayOrder int
}

// NewCategory creates a new Category entity.
// The display order is assigned by the application layer before saving.
func NewCategory(name string, displayOrder int) *Category {
	return &Category{
		ID:           uuid.New(),
		Name:         name,
		DisplayOrder: displayOrder,
	}
}

// CategoryWithCount represents a category with the number of products assigned to it.
type CategoryWithCount struct {
	Category     *Category
	ProductCount int
}

// DefaultCategories are seeded into an empty catalog at startup, in display order.
var DefaultCategories = []string{
	"Vegetables",
	"Fruits",
	"Sauces and Spices",
	"Canned Goods",
	"Grocery",
	"Bread and Bakery",
	"Frozen",
	"Deli",
	"Meat",
	"Dairy",
	"Beverages",
	"Household",
}
