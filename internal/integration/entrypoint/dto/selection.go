package dto

import (
	"github.com/pantry-bot/backend/internal/domain/entity"
)

// SelectRecipeRequest represents the request body for adding a recipe to
// the selection set.
type SelectRecipeRequest struct {
	RecipeID string `json:"recipe_id" binding:"required,uuid"`
}

// SelectionEntryResponse represents one selected recipe with its repeat count.
type SelectionEntryResponse struct {
	RecipeID   string `json:"recipe_id"`
	RecipeName string `json:"recipe_name"`
	Count      int    `json:"count"`
}

// SelectionListResponse represents the response for listing the selection set.
type SelectionListResponse struct {
	Entries []SelectionEntryResponse `json:"entries"`
}

// SelectionCountResponse represents the repeat count after an add or remove.
type SelectionCountResponse struct {
	RecipeID string `json:"recipe_id"`
	Count    int    `json:"count"`
}

// ToSelectionListResponse converts selection entries to a SelectionListResponse.
func ToSelectionListResponse(entries []*entity.SelectionWithRecipe) SelectionListResponse {
	out := make([]SelectionEntryResponse, len(entries))
	for i, e := range entries {
		response := SelectionEntryResponse{
			RecipeID: e.Entry.RecipeID.String(),
			Count:    e.Entry.Count,
		}
		if e.Recipe != nil {
			response.RecipeName = e.Recipe.Name
		}
		out[i] = response
	}
	return SelectionListResponse{
		Entries: out,
	}
}
