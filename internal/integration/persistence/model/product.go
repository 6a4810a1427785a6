package model

import (
	"github.com/google/uuid"

	"github.com/pantry-bot/backend/internal/domain/entity"
)

// ProductModel represents the products table in the database.
type ProductModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"type:varchar(200);not null;uniqueIndex"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null;index"`

	Category *CategoryModel `gorm:"foreignKey:CategoryID"`
}

// TableName returns the table name for the ProductModel.
func (ProductModel) TableName() string {
	return "products"
}

// ToEntity converts a ProductModel to a domain Product entity.
func (m *ProductModel) ToEntity() *entity.Product {
	return &entity.Product{
		ID:         m.ID,
		Name:       m.Name,
		CategoryID: m.CategoryID,
	}
}

// ToEntityWithCategory converts the model with its preloaded category.
func (m *ProductModel) ToEntityWithCategory() *entity.ProductWithCategory {
	out := &entity.ProductWithCategory{Product: m.ToEntity()}
	if m.Category != nil {
		out.Category = m.Category.ToEntity()
	}
	return out
}

// ProductFromEntity creates a ProductModel from a domain Product entity.
func ProductFromEntity(product *entity.Product) *ProductModel {
	return &ProductModel{
		ID:         product.ID,
		Name:       product.Name,
		CategoryID: product.CategoryID,
	}
}
