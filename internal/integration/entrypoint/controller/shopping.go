package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pantry-bot/backend/internal/application/usecase/shopping"
	"github.com/pantry-bot/backend/internal/integration/entrypoint/dto"
	"github.com/pantry-bot/backend/internal/integration/entrypoint/middleware"
)

// ShoppingController handles shopping list and ad-hoc endpoints.
type ShoppingController struct {
	getUseCase      *shopping.GetListUseCase
	generateUseCase *shopping.GenerateListUseCase
	appendUseCase   *shopping.AddRecipeToListUseCase
	toggleUseCase   *shopping.ToggleItemUseCase
	deleteUseCase   *shopping.DeleteItemUseCase
	finishUseCase   *shopping.FinishShoppingUseCase

	addAdHocUseCase    *shopping.AddAdHocItemUseCase
	toggleAdHocUseCase *shopping.ToggleAdHocItemUseCase
	deleteAdHocUseCase *shopping.DeleteAdHocItemUseCase
	clearAdHocUseCase  *shopping.ClearAdHocItemsUseCase
}

// NewShoppingController creates a new shopping controller instance.
func NewShoppingController(
	getUseCase *shopping.GetListUseCase,
	generateUseCase *shopping.GenerateListUseCase,
	appendUseCase *shopping.AddRecipeToListUseCase,
	toggleUseCase *shopping.ToggleItemUseCase,
	deleteUseCase *shopping.DeleteItemUseCase,
	finishUseCase *shopping.FinishShoppingUseCase,
	addAdHocUseCase *shopping.AddAdHocItemUseCase,
	toggleAdHocUseCase *shopping.ToggleAdHocItemUseCase,
	deleteAdHocUseCase *shopping.DeleteAdHocItemUseCase,
	clearAdHocUseCase *shopping.ClearAdHocItemsUseCase,
) *ShoppingController {
	return &ShoppingController{
		getUseCase:         getUseCase,
		generateUseCase:    generateUseCase,
		appendUseCase:      appendUseCase,
		toggleUseCase:      toggleUseCase,
		deleteUseCase:      deleteUseCase,
		finishUseCase:      finishUseCase,
		addAdHocUseCase:    addAdHocUseCase,
		toggleAdHocUseCase: toggleAdHocUseCase,
		deleteAdHocUseCase: deleteAdHocUseCase,
		clearAdHocUseCase:  clearAdHocUseCase,
	}
}

// requireUserID resolves the user ID from the request context.
func requireUserID(ctx *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not identified",
		})
		return "", false
	}
	return userID, true
}

// Get handles GET /shopping-list requests.
func (c *ShoppingController) Get(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), shopping.GetListInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve shopping list",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToShoppingListResponse(output.Items, output.AdHocItems))
}

// Generate handles POST /shopping-list/generate requests. The selection
// set is aggregated into a fresh list and consumed.
func (c *ShoppingController) Generate(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.generateUseCase.Execute(ctx.Request.Context(), shopping.GenerateListInput{
		UserID: userID,
	})
	if err != nil {
		handleShoppingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.GenerateListResponse{
		ItemCount:   len(output.Items),
		RecipeCount: output.RecipeCount,
	})
}

// Append handles POST /shopping-list/recipes requests. The recipe's
// lines are merged into the existing list by product name.
func (c *ShoppingController) Append(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.AppendRecipeRequest
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

	output, err := c.appendUseCase.Execute(ctx.Request.Context(), shopping.AddRecipeToListInput{
		UserID:   userID,
		RecipeID: recipeID,
	})
	if err != nil {
		handleShoppingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AppendRecipeResponse{
		MergedLines: output.MergedLines,
		NewLines:    output.NewLines,
	})
}

// Toggle handles PATCH /shopping-list/items/:id/toggle requests.
func (c *ShoppingController) Toggle(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	itemID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid item ID format",
		})
		return
	}

	output, err := c.toggleUseCase.Execute(ctx.Request.Context(), shopping.ToggleItemInput{
		UserID: userID,
		ItemID: itemID,
	})
	if err != nil {
		handleShoppingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToggleItemResponse{
		IsBought: output.IsBought,
	})
}

// Delete handles DELETE /shopping-list/items/:id requests.
func (c *ShoppingController) Delete(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	itemID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid item ID format",
		})
		return
	}

	_, err = c.deleteUseCase.Execute(ctx.Request.Context(), shopping.DeleteItemInput{
		UserID: userID,
		ItemID: itemID,
	})
	if err != nil {
		handleShoppingError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Finish handles POST /shopping-list/finish requests. The persisted rows
// and the ad-hoc entries are discarded together.
func (c *ShoppingController) Finish(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	if err := c.finishUseCase.Execute(ctx.Request.Context(), shopping.FinishShoppingInput{
		UserID: userID,
	}); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to finish shopping",
		})
		return
	}

	ctx.Status(http.StatusNoContent)
}

// AddAdHoc handles POST /shopping-list/adhoc requests.
func (c *ShoppingController) AddAdHoc(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.AddAdHocItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.addAdHocUseCase.Execute(ctx.Request.Context(), shopping.AddAdHocItemInput{
		UserID:   userID,
		Name:     req.Name,
		Quantity: req.Quantity,
		Unit:     req.Unit,
		Category: req.Category,
	})
	if err != nil {
		handleShoppingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToAdHocItemResponse(output.Item))
}

// ToggleAdHoc handles PATCH /shopping-list/adhoc/:id/toggle requests.
func (c *ShoppingController) ToggleAdHoc(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	itemID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid item ID format",
		})
		return
	}

	if err := c.toggleAdHocUseCase.Execute(ctx.Request.Context(), shopping.ToggleAdHocItemInput{
		UserID: userID,
		ItemID: itemID,
	}); err != nil {
		handleShoppingError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// DeleteAdHoc handles DELETE /shopping-list/adhoc/:id requests.
func (c *ShoppingController) DeleteAdHoc(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	itemID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid item ID format",
		})
		return
	}

	if err := c.deleteAdHocUseCase.Execute(ctx.Request.Context(), shopping.DeleteAdHocItemInput{
		UserID: userID,
		ItemID: itemID,
	}); err != nil {
		handleShoppingError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ClearAdHoc handles DELETE /shopping-list/adhoc requests.
func (c *ShoppingController) ClearAdHoc(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	if err := c.clearAdHocUseCase.Execute(ctx.Request.Context(), shopping.ClearAdHocItemsInput{
		UserID: userID,
	}); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to clear ad-hoc items",
		})
		return
	}

	ctx.Status(http.StatusNoContent)
}
