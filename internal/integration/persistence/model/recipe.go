package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pantry-bot/backend/internal/domain/entity"
)

// RecipeModel represents the recipes table in the database.
type RecipeModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(200);not null"`
	UserID    string    `gorm:"type:varchar(64);not null;index"`
	CreatedAt time.Time `gorm:"not null"`

	Lines []IngredientLineModel `gorm:"foreignKey:RecipeID"`
}

// TableName returns the table name for the RecipeModel.
func (RecipeModel) TableName() string {
	return "recipes"
}

// ToEntity converts a RecipeModel to a domain Recipe entity.
func (m *RecipeModel) ToEntity() *entity.Recipe {
	return &entity.Recipe{
		ID:        m.ID,
		Name:      m.Name,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
	}
}

// RecipeFromEntity creates a RecipeModel from a domain Recipe entity.
func RecipeFromEntity(recipe *entity.Recipe) *RecipeModel {
	return &RecipeModel{
		ID:        recipe.ID,
		Name:      recipe.Name,
		UserID:    recipe.UserID,
		CreatedAt: recipe.CreatedAt,
	}
}

// IngredientLineModel represents the ingredient_lines table in the database.
type IngredientLineModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	RecipeID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity  decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	Unit      string          `gorm:"type:varchar(16);not null"`
	Position  int             `gorm:"not null;default:0"`

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName returns the table name for the IngredientLineModel.
func (IngredientLineModel) TableName() string {
	return "ingredient_lines"
}

// ToEntity converts an IngredientLineModel to a domain IngredientLine entity.
func (m *IngredientLineModel) ToEntity() *entity.IngredientLine {
	return &entity.IngredientLine{
		ID:        m.ID,
		RecipeID:  m.RecipeID,
		ProductID: m.ProductID,
		Quantity:  m.Quantity,
		Unit:      m.Unit,
		Position:  m.Position,
	}
}

// IngredientLineFromEntity creates an IngredientLineModel from a domain entity.
func IngredientLineFromEntity(line *entity.IngredientLine) *IngredientLineModel {
	return &IngredientLineModel{
		ID:        line.ID,
		RecipeID:  line.RecipeID,
		ProductID: line.ProductID,
		Quantity:  line.Quantity,
		Unit:      line.Unit,
		Position:  line.Position,
	}
}
