package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AdHocItem is a shopping entry typed in by the user directly, not
// derived from any recipe. It lives in process memory only: the category
// is a free-text label (chosen from existing category names at entry
// time, but not a foreign key) and nothing survives a restart.
type AdHocItem struct {
	ID       uuid.UUID
	Name     string
	Quantity decimal.Decimal
	Unit     string
	Category string
	IsBought bool
}

// NewAdHocItem creates a new unbought ad-hoc entry.
func NewAdHocItem(name string, quantity decimal.Decimal, unit, category string) *AdHocItem {
	return &AdHocItem{
		ID:       uuid.New(),
		Name:     name,
		Quantity: quantity,
		Unit:     unit,
		Category: category,
	}
}
