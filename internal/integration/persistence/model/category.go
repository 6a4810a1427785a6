// Package model defines database models for persistence layer.
package model

import (
	"github.com/google/uuid"

	"github.com/pantry-bot/backend/internal/domain/entity"
)

// CategoryModel represents the categories table in the database.
type CategoryModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	DisplayOrder int       `gorm:"not null;default:0"`
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity converts a CategoryModel to a domain Category entity.
func (m *CategoryModel) ToEntity() *entity.Category {
	return &entity.Category{
		ID:           m.ID,
		Name:         m.Name,
		DisplayOrder: m.DisplayOrder,
	}
}

// CategoryFromEntity creates a CategoryModel from a domain Category entity.
func CategoryFromEntity(category *entity.Category) *CategoryModel {
	return &CategoryModel{
		ID:           category.ID,
		Name:         category.Name,
		DisplayOrder: category.DisplayOrder,
	}
}
