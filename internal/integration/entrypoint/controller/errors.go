package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/pantry-bot/backend/internal/domain/error"
	"github.com/pantry-bot/backend/internal/integration/entrypoint/dto"
)

// handleCatalogError maps catalog errors to HTTP responses.
func handleCatalogError(ctx *gin.Context, err error) {
	var catErr *domainerror.CatalogError
	if errors.As(err, &catErr) {
		ctx.JSON(catalogErrorStatus(catErr.Code), dto.ErrorResponse{
			Error: catErr.Message,
			Code:  string(catErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// catalogErrorStatus maps catalog error codes to HTTP status codes.
func catalogErrorStatus(code domainerror.CatalogErrorCode) int {
	switch code {
	case domainerror.ErrCodeCategoryNotFound,
		domainerror.ErrCodeProductNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeCategoryNameExists,
		domainerror.ErrCodeProductNameExists,
		domainerror.ErrCodeCategoryNotEmpty:
		return http.StatusConflict
	case domainerror.ErrCodeCategoryNameTooShort,
		domainerror.ErrCodeProductNameTooShort:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// handleRecipeError maps recipe errors to HTTP responses. Recipe
// operations resolve products through the catalog, so catalog errors can
// surface here too.
func handleRecipeError(ctx *gin.Context, err error) {
	var recErr *domainerror.RecipeError
	if errors.As(err, &recErr) {
		ctx.JSON(recipeErrorStatus(recErr.Code), dto.ErrorResponse{
			Error: recErr.Message,
			Code:  string(recErr.Code),
		})
		return
	}

	handleCatalogError(ctx, err)
}

// recipeErrorStatus maps recipe error codes to HTTP status codes.
func recipeErrorStatus(code domainerror.RecipeErrorCode) int {
	switch code {
	case domainerror.ErrCodeRecipeNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeRecipeNameTooShort,
		domainerror.ErrCodeRecipeNoIngredients,
		domainerror.ErrCodeInvalidQuantity:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// handleShoppingError maps shopping errors to HTTP responses. The ad-hoc
// add path validates names and quantities with catalog and recipe codes.
func handleShoppingError(ctx *gin.Context, err error) {
	var shopErr *domainerror.ShoppingError
	if errors.As(err, &shopErr) {
		ctx.JSON(shoppingErrorStatus(shopErr.Code), dto.ErrorResponse{
			Error: shopErr.Message,
			Code:  string(shopErr.Code),
		})
		return
	}

	handleRecipeError(ctx, err)
}

// shoppingErrorStatus maps shopping error codes to HTTP status codes.
func shoppingErrorStatus(code domainerror.ShoppingErrorCode) int {
	switch code {
	case domainerror.ErrCodeShoppingItemNotFound,
		domainerror.ErrCodeAdHocItemNotFound,
		domainerror.ErrCodeSelectionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNoRecipesSelected:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
