package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pantry-bot/backend/internal/application/usecase/recipe"
	"github.com/pantry-bot/backend/internal/integration/entrypoint/dto"
	"github.com/pantry-bot/backend/internal/integration/entrypoint/middleware"
)

// RecipeController handles recipe endpoints.
type RecipeController struct {
	listUseCase   *recipe.ListRecipesUseCase
	getUseCase    *recipe.GetRecipeUseCase
	createUseCase *recipe.CreateRecipeUseCase
	updateUseCase *recipe.UpdateRecipeUseCase
	deleteUseCase *recipe.DeleteRecipeUseCase
}

// NewRecipeController creates a new recipe controller instance.
func NewRecipeController(
	listUseCase *recipe.ListRecipesUseCase,
	getUseCase *recipe.GetRecipeUseCase,
	createUseCase *recipe.CreateRecipeUseCase,
	updateUseCase *recipe.UpdateRecipeUseCase,
	deleteUseCase *recipe.DeleteRecipeUseCase,
) *RecipeController {
	return &RecipeController{
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /recipes requests.
func (c *RecipeController) List(ctx *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(ctx)

	output, err := c.listUseCase.Execute(ctx.Request.Context(), recipe.ListRecipesInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve recipes",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecipeListResponse(output.Recipes))
}

// Get handles GET /recipes/:id requests.
func (c *RecipeController) Get(ctx *gin.Context) {
	recipeID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid recipe ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), recipe.GetRecipeInput{
		RecipeID: recipeID,
	})
	if err != nil {
		handleRecipeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecipeDetailResponse(output.Recipe))
}

// Create handles POST /recipes requests.
func (c *RecipeController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not identified",
		})
		return
	}

	var req dto.CreateRecipeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), recipe.CreateRecipeInput{
		Name:   req.Name,
		UserID: userID,
		Lines:  dto.ToLineInputs(req.Lines),
	})
	if err != nil {
		handleRecipeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToRecipeResponse(output.Recipe))
}

// Update handles PUT /recipes/:id requests. The ingredient lines are
// replaced wholesale.
func (c *RecipeController) Update(ctx *gin.Context) {
	recipeID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid recipe ID format",
		})
		return
	}

	var req dto.UpdateRecipeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), recipe.UpdateRecipeInput{
		RecipeID: recipeID,
		Name:     req.Name,
		Lines:    dto.ToLineInputs(req.Lines),
	})
	if err != nil {
		handleRecipeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecipeResponse(output.Recipe))
}

// Delete handles DELETE /recipes/:id requests.
func (c *RecipeController) Delete(ctx *gin.Context) {
	recipeID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid recipe ID format",
		})
		return
	}

	_, err = c.deleteUseCase.Execute(ctx.Request.Context(), recipe.DeleteRecipeInput{
		RecipeID: recipeID,
	})
	if err != nil {
		handleRecipeError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
