package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pantry-bot/backend/internal/application/usecase/catalog"
	"github.com/pantry-bot/backend/internal/integration/entrypoint/dto"
)

// CategoryController handles category endpoints.
type CategoryController struct {
	listUseCase    *catalog.ListCategoriesUseCase
	createUseCase  *catalog.CreateCategoryUseCase
	reorderUseCase *catalog.ReorderCategoryUseCase
	deleteUseCase  *catalog.DeleteCategoryUseCase
}

// NewCategoryController creates a new category controller instance.
func NewCategoryController(
	listUseCase *catalog.ListCategoriesUseCase,
	createUseCase *catalog.CreateCategoryUseCase,
	reorderUseCase *catalog.ReorderCategoryUseCase,
	deleteUseCase *catalog.DeleteCategoryUseCase,
) *CategoryController {
	return &CategoryController{
		listUseCase:    listUseCase,
		createUseCase:  createUseCase,
		reorderUseCase: reorderUseCase,
		deleteUseCase:  deleteUseCase,
	}
}

// List handles GET /categories requests.
func (c *CategoryController) List(ctx *gin.Context) {
	input := catalog.ListCategoriesInput{
		WithCounts: ctx.Query("with_counts") == "true",
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve categories",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryListResponse(output.Categories))
}

// Create handles POST /categories requests.
func (c *CategoryController) Create(ctx *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), catalog.CreateCategoryInput{
		Name: req.Name,
	})
	if err != nil {
		handleCatalogError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCategoryResponse(output.Category))
}

// Reorder handles PATCH /categories/:id/order requests.
func (c *CategoryController) Reorder(ctx *gin.Context) {
	categoryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return
	}

	var req dto.ReorderCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.reorderUseCase.Execute(ctx.Request.Context(), catalog.ReorderCategoryInput{
		CategoryID: categoryID,
		NewOrder:   req.DisplayOrder,
	})
	if err != nil {
		handleCatalogError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryResponse(output.Category))
}

// Delete handles DELETE /categories/:id requests.
func (c *CategoryController) Delete(ctx *gin.Context) {
	categoryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return
	}

	_, err = c.deleteUseCase.Execute(ctx.Request.Context(), catalog.DeleteCategoryInput{
		CategoryID: categoryID,
	})
	if err != nil {
		handleCatalogError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
