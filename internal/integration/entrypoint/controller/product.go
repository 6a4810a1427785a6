package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pantry-bot/backend/internal/application/usecase/catalog"
	"github.com/pantry-bot/backend/internal/integration/entrypoint/dto"
)

// ProductController handles product endpoints.
type ProductController struct {
	listUseCase   *catalog.ListProductsUseCase
	getUseCase    *catalog.GetProductUseCase
	renameUseCase *catalog.RenameProductUseCase
	deleteUseCase *catalog.DeleteProductUseCase
}

// NewProductController creates a new product controller instance.
func NewProductController(
	listUseCase *catalog.ListProductsUseCase,
	getUseCase *catalog.GetProductUseCase,
	renameUseCase *catalog.RenameProductUseCase,
	deleteUseCase *catalog.DeleteProductUseCase,
) *ProductController {
	return &ProductController{
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		renameUseCase: renameUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /products requests.
func (c *ProductController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve products",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductListResponse(output.Products))
}

// Get handles GET /products/:id requests.
func (c *ProductController) Get(ctx *gin.Context) {
	productID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid product ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), catalog.GetProductInput{
		ProductID: productID,
	})
	if err != nil {
		handleCatalogError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductDetailResponse(output.Product, output.RecipeCount, output.Recipes))
}

// Rename handles PATCH /products/:id requests.
func (c *ProductController) Rename(ctx *gin.Context) {
	productID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid product ID format",
		})
		return
	}

	var req dto.RenameProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	_, err = c.renameUseCase.Execute(ctx.Request.Context(), catalog.RenameProductInput{
		ProductID: productID,
		NewName:   req.Name,
	})
	if err != nil {
		handleCatalogError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Delete handles DELETE /products/:id requests.
// Deleting a product also removes its recipe lines and shopping rows.
func (c *ProductController) Delete(ctx *gin.Context) {
	productID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid product ID format",
		})
		return
	}

	_, err = c.deleteUseCase.Execute(ctx.Request.Context(), catalog.DeleteProductInput{
		ProductID: productID,
	})
	if err != nil {
		handleCatalogError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
