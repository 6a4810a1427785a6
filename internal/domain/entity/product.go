package entity

import (
	"github.com/google/uuid"
)

// Product represents a catalog product. Product names are unique across
// the whole catalog and every product belongs to exactly one category.
type Product struct {
	ID         uuid.UUID
	Name       string
	CategoryID uuid.UUID
}

// NewProduct creates a new Product entity.
func NewProduct(name string, categoryID uuid.UUID) *Product {
	return &Product{
		ID:         uuid.New(),
		Name:       name,
		CategoryID: categoryID,
	}
}

// ProductWithCategory represents a product together with its resolved category.
type ProductWithCategory struct {
	Product  *Product
	Category *Category
}
