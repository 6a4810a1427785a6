package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Step identifies where a user currently is inside a conversation wizard.
// Wizards are linear: each step waits for exactly one text or button
// input and either advances or stays put.
type Step string

const (
	// StepIdle means no wizard is in progress.
	StepIdle Step = ""

	// Recipe creation/editing wizard.
	StepRecipeName         Step = "recipe_name"
	StepRecipeEditName     Step = "recipe_edit_name"
	StepIngredientName     Step = "ingredient_name"
	StepIngredientQuantity Step = "ingredient_quantity"
	StepIngredientUnit     Step = "ingredient_unit"
	StepIngredientCategory Step = "ingredient_category"

	// Standalone category creation (also reachable from inside the
	// recipe wizard via the "new category" button).
	StepCategoryName Step = "category_name"

	// Ad-hoc product wizard.
	StepAdHocName     Step = "adhoc_name"
	StepAdHocQuantity Step = "adhoc_quantity"
	StepAdHocUnit     Step = "adhoc_unit"
	StepAdHocCategory Step = "adhoc_category"

	// Product rename flow.
	StepProductRename Step = "product_rename"

	// Menu composition (recipe selection) screen.
	StepSelectingRecipes Step = "selecting_recipes"
)

// IngredientDraft is one ingredient accumulated by the recipe wizard
// before the recipe is committed to storage.
type IngredientDraft struct {
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	Category    string          `json:"category"`
}

// Session is the per-user conversation state. It survives across turns
// in the session store and is discarded on cancel, completion, or a
// failure mid-save.
type Session struct {
	Step Step `json:"step"`

	// Recipe wizard draft.
	RecipeName  string            `json:"recipe_name,omitempty"`
	Ingredients []IngredientDraft `json:"ingredients,omitempty"`

	// Current ingredient line being collected.
	CurrentName     string          `json:"current_name,omitempty"`
	CurrentQuantity decimal.Decimal `json:"current_quantity,omitempty"`
	CurrentUnit     string          `json:"current_unit,omitempty"`

	// Set when the wizard edits an existing recipe instead of creating one.
	EditingRecipeID *uuid.UUID `json:"editing_recipe_id,omitempty"`

	// Ad-hoc product wizard draft.
	AdHocName     string          `json:"adhoc_name,omitempty"`
	AdHocQuantity decimal.Decimal `json:"adhoc_quantity,omitempty"`
	AdHocUnit     string          `json:"adhoc_unit,omitempty"`

	// Set when the product rename flow is active.
	EditingProductID *uuid.UUID `json:"editing_product_id,omitempty"`
}

// NewSession returns an idle session.
func NewSession() *Session {
	return &Session{Step: StepIdle}
}

// InRecipeWizard reports whether the session carries a pending ingredient
// draft, which is how the category-name step tells "new category for an
// ingredient" apart from standalone category creation.
func (s *Session) InRecipeWizard() bool {
	return s.CurrentUnit != "" && s.CurrentName != ""
}
