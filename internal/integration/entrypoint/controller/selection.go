package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pantry-bot/backend/internal/application/usecase/selection"
	"github.com/pantry-bot/backend/internal/integration/entrypoint/dto"
	"github.com/pantry-bot/backend/internal/integration/entrypoint/middleware"
)

// SelectionController handles selection set endpoints.
type SelectionController struct {
	listUseCase   *selection.ListSelectionUseCase
	addUseCase    *selection.AddRecipeUseCase
	removeUseCase *selection.RemoveRecipeUseCase
	clearUseCase  *selection.ClearSelectionUseCase
}

// NewSelectionController creates a new selection controller instance.
func NewSelectionController(
	listUseCase *selection.ListSelectionUseCase,
	addUseCase *selection.AddRecipeUseCase,
	removeUseCase *selection.RemoveRecipeUseCase,
	clearUseCase *selection.ClearSelectionUseCase,
) *SelectionController {
	return &SelectionController{
		listUseCase:   listUseCase,
		addUseCase:    addUseCase,
		removeUseCase: removeUseCase,
		clearUseCase:  clearUseCase,
	}
}

// List handles GET /selection requests.
func (c *SelectionController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not identified",
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), selection.ListSelectionInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve selection",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSelectionListResponse(output.Entries))
}

// Add handles POST /selection requests. Selecting an already selected
// recipe bumps its repeat count.
func (c *SelectionController) Add(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not identified",
		})
		return
	}

	var req dto.SelectRecipeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}
	recipeID, err := uuid.Parse(req.RecipeID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid recipe ID format",
		})
		return
	}

	output, err := c.addUseCase.Execute(ctx.Request.Context(), selection.AddRecipeInput{
		UserID:   userID,
		RecipeID: recipeID,
	})
	if err != nil {
		handleShoppingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SelectionCountResponse{
		RecipeID: recipeID.String(),
		Count:    output.Count,
	})
}

// Remove handles DELETE /selection/:recipeId requests. The repeat count
// is decremented; the entry disappears at zero.
func (c *SelectionController) Remove(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not identified",
		})
		return
	}

	recipeID, err := uuid.Parse(ctx.Param("recipeId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid recipe ID format",
		})
		return
	}

	output, err := c.removeUseCase.Execute(ctx.Request.Context(), selection.RemoveRecipeInput{
		UserID:   userID,
		RecipeID: recipeID,
	})
	if err != nil {
		handleShoppingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SelectionCountResponse{
		RecipeID: recipeID.String(),
		Count:    output.Count,
	})
}

// Clear handles DELETE /selection requests.
func (c *SelectionController) Clear(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not identified",
		})
		return
	}

	if err := c.clearUseCase.Execute(ctx.Request.Context(), selection.ClearSelectionInput{
		UserID: userID,
	}); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to clear selection",
		})
		return
	}

	ctx.Status(http.StatusNoContent)
}
