package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShoppingItem is one row of a user's persisted shopping list. The
// quantity is the sum of every contributing ingredient line at the same
// (product, unit) key.
type ShoppingItem struct {
	ID        uuid.UUID
	UserID    string
	ProductID uuid.UUID
	Quantity  decimal.Decimal
	Unit      string
	IsBought  bool
}

// NewShoppingItem creates a new unbought shopping list row.
func NewShoppingItem(userID string, productID uuid.UUID, quantity decimal.Decimal, unit string) *ShoppingItem {
	return &ShoppingItem{
		ID:        uuid.New(),
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
		Unit:      unit,
	}
}

// ShoppingItemWithProduct is a shopping row joined with its product and category.
type ShoppingItemWithProduct struct {
	Item     *ShoppingItem
	Product  *Product
	Category *Category
}
