package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Recipe represents a named recipe owned by a user. A recipe exclusively
// owns its ingredient lines; editing replaces the lines wholesale.
type Recipe struct {
	ID        uuid.UUID
	Name      string
	UserID    string
	CreatedAt time.Time
}

// NewRecipe creates a new Recipe entity.
func NewRecipe(name, userID string) *Recipe {
	return &Recipe{
		ID:        uuid.New(),
		Name:      name,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
}

// IngredientLine is one line of a recipe: a product reference with a
// positive quantity and a free-text unit token. Quantities in different
// units are never converted into each other.
type IngredientLine struct {
	ID        uuid.UUID
	RecipeID  uuid.UUID
	ProductID uuid.UUID
	Quantity  decimal.Decimal
	Unit      string
	Position  int
}

// NewIngredientLine creates a new IngredientLine entity. The recipe id is
// assigned when the line is attached to a recipe.
func NewIngredientLine(productID uuid.UUID, quantity decimal.Decimal, unit string, position int) *IngredientLine {
	return &IngredientLine{
		ID:        uuid.New(),
		ProductID: productID,
		Quantity:  quantity,
		Unit:      unit,
		Position:  position,
	}
}

// RecipeWithLines represents a recipe with its ingredient lines resolved
// down to products and categories.
type RecipeWithLines struct {
	Recipe *Recipe
	Lines  []*ResolvedLine
}

// ResolvedLine is an ingredient line joined with its product and category.
type ResolvedLine struct {
	Line     *IngredientLine
	Product  *Product
	Category *Category
}
