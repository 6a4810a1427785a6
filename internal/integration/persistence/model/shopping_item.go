package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pantry-bot/backend/internal/domain/entity"
)

// ShoppingItemModel represents the shopping_items table in the database.
type ShoppingItemModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    string          `gorm:"type:varchar(64);not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity  decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	Unit      string          `gorm:"type:varchar(16);not null"`
	IsBought  bool            `gorm:"not null;default:false"`

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName returns the table name for the ShoppingItemModel.
func (ShoppingItemModel) TableName() string {
	return "shopping_items"
}

// ToEntity converts a ShoppingItemModel to a domain ShoppingItem entity.
func (m *ShoppingItemModel) ToEntity() *entity.ShoppingItem {
	return &entity.ShoppingItem{
		ID:        m.ID,
		UserID:    m.UserID,
		ProductID: m.ProductID,
		Quantity:  m.Quantity,
		Unit:      m.Unit,
		IsBought:  m.IsBought,
	}
}

// ShoppingItemFromEntity creates a ShoppingItemModel from a domain entity.
func ShoppingItemFromEntity(item *entity.ShoppingItem) *ShoppingItemModel {
	return &ShoppingItemModel{
		ID:        item.ID,
		UserID:    item.UserID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		Unit:      item.Unit,
		IsBought:  item.IsBought,
	}
}
