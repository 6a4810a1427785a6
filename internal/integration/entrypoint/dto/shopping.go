package dto

import (
	"github.com/shopspring/decimal"

	"github.com/pantry-bot/backend/internal/domain/entity"
)

// AppendRecipeRequest represents the request body for appending a recipe
// to an existing shopping list.
type AppendRecipeRequest struct {
	RecipeID string `json:"recipe_id" binding:"required,uuid"`
}

// AddAdHocItemRequest represents the request body for adding an ad-hoc entry.
type AddAdHocItemRequest struct {
	Name     string          `json:"name" binding:"required,min=2,max=200"`
	Quantity decimal.Decimal `json:"quantity" binding:"required"`
	Unit     string          `json:"unit" binding:"required,max=16"`
	Category string          `json:"category" binding:"required,max=100"`
}

// ShoppingItemResponse represents one persisted shopping row.
type ShoppingItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Category    string          `json:"category"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	IsBought    bool            `json:"is_bought"`
}

// AdHocItemResponse represents one ad-hoc entry.
type AdHocItemResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	Unit     string          `json:"unit"`
	Category string          `json:"category"`
	IsBought bool            `json:"is_bought"`
}

// ShoppingListResponse represents the full shopping list.
type ShoppingListResponse struct {
	Items      []ShoppingItemResponse `json:"items"`
	AdHocItems []AdHocItemResponse    `json:"adhoc_items"`
}

// GenerateListResponse represents the outcome of generating a list.
type GenerateListResponse struct {
	ItemCount   int `json:"item_count"`
	RecipeCount int `json:"recipe_count"`
}

// AppendRecipeResponse represents the outcome of appending a recipe.
type AppendRecipeResponse struct {
	MergedLines int `json:"merged_lines"`
	NewLines    int `json:"new_lines"`
}

// ToggleItemResponse represents the new bought state after a toggle.
type ToggleItemResponse struct {
	IsBought bool `json:"is_bought"`
}

// ToShoppingItemResponse converts a shopping row to a ShoppingItemResponse.
func ToShoppingItemResponse(item *entity.ShoppingItemWithProduct) ShoppingItemResponse {
	response := ShoppingItemResponse{
		ID:       item.Item.ID.String(),
		Quantity: item.Item.Quantity,
		Unit:     item.Item.Unit,
		IsBought: item.Item.IsBought,
	}
	if item.Product != nil {
		response.ProductID = item.Product.ID.String()
		response.ProductName = item.Product.Name
	}
	if item.Category != nil {
		response.Category = item.Category.Name
	}
	return response
}

// ToAdHocItemResponse converts an ad-hoc entry to an AdHocItemResponse.
func ToAdHocItemResponse(item *entity.AdHocItem) AdHocItemResponse {
	return AdHocItemResponse{
		ID:       item.ID.String(),
		Name:     item.Name,
		Quantity: item.Quantity,
		Unit:     item.Unit,
		Category: item.Category,
		IsBought: item.IsBought,
	}
}

// ToShoppingListResponse converts rows and ad-hoc entries to a list response.
func ToShoppingListResponse(items []*entity.ShoppingItemWithProduct, adhoc []*entity.AdHocItem) ShoppingListResponse {
	rows := make([]ShoppingItemResponse, len(items))
	for i, item := range items {
		rows[i] = ToShoppingItemResponse(item)
	}
	extras := make([]AdHocItemResponse, len(adhoc))
	for i, item := range adhoc {
		extras[i] = ToAdHocItemResponse(item)
	}
	return ShoppingListResponse{
		Items:      rows,
		AdHocItems: extras,
	}
}
