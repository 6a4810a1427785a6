// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/pantry-bot/backend/internal/integration/entrypoint/controller"
	"github.com/pantry-bot/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	chatController      *controller.ChatController
	categoryController  *controller.CategoryController
	productController   *controller.ProductController
	recipeController    *controller.RecipeController
	selectionController *controller.SelectionController
	shoppingController  *controller.ShoppingController
	accessGate          *middleware.AccessGate
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	chatController *controller.ChatController,
	categoryController *controller.CategoryController,
	productController *controller.ProductController,
	recipeController *controller.RecipeController,
	selectionController *controller.SelectionController,
	shoppingController *controller.ShoppingController,
	accessGate *middleware.AccessGate,
) *Router {
	return &Router{
		healthController:    healthController,
		chatController:      chatController,
		categoryController:  categoryController,
		productController:   productController,
		recipeController:    recipeController,
		selectionController: selectionController,
		shoppingController:  shoppingController,
		accessGate:          accessGate,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		// Chat events carry the user ID in the body; the controller
		// applies the allow-list itself.
		if r.chatController != nil {
			v1.POST("/chat/events", r.chatController.HandleEvent)
		}

		// Category routes
		if r.categoryController != nil && r.accessGate != nil {
			categories := v1.Group("/categories")
			categories.Use(r.accessGate.Handler())
			{
				categories.GET("", r.categoryController.List)
				categories.POST("", r.categoryController.Create)
				categories.PATCH("/:id/order", r.categoryController.Reorder)
				categories.DELETE("/:id", r.categoryController.Delete)
			}
		}

		// Product routes
		if r.productController != nil && r.accessGate != nil {
			products := v1.Group("/products")
			products.Use(r.accessGate.Handler())
			{
				products.GET("", r.productController.List)
				products.GET("/:id", r.productController.Get)
				products.PATCH("/:id", r.productController.Rename)
				products.DELETE("/:id", r.productController.Delete)
			}
		}

		// Recipe routes
		if r.recipeController != nil && r.accessGate != nil {
			recipes := v1.Group("/recipes")
			recipes.Use(r.accessGate.Handler())
			{
				recipes.GET("", r.recipeController.List)
				recipes.POST("", r.recipeController.Create)
				recipes.GET("/:id", r.recipeController.Get)
				recipes.PUT("/:id", r.recipeController.Update)
				recipes.DELETE("/:id", r.recipeController.Delete)
			}
		}

		// Selection set routes
		if r.selectionController != nil && r.accessGate != nil {
			sel := v1.Group("/selection")
			sel.Use(r.accessGate.Handler())
			{
				sel.GET("", r.selectionController.List)
				sel.POST("", r.selectionController.Add)
				sel.DELETE("", r.selectionController.Clear)
				sel.DELETE("/:recipeId", r.selectionController.Remove)
			}
		}

		// Shopping list routes
		if r.shoppingController != nil && r.accessGate != nil {
			list := v1.Group("/shopping-list")
			list.Use(r.accessGate.Handler())
			{
				list.GET("", r.shoppingController.Get)
				list.POST("/generate", r.shoppingController.Generate)
				list.POST("/recipes", r.shoppingController.Append)
				list.POST("/finish", r.shoppingController.Finish)
				list.PATCH("/items/:id/toggle", r.shoppingController.Toggle)
				list.DELETE("/items/:id", r.shoppingController.Delete)

				list.POST("/adhoc", r.shoppingController.AddAdHoc)
				list.PATCH("/adhoc/:id/toggle", r.shoppingController.ToggleAdHoc)
				list.DELETE("/adhoc/:id", r.shoppingController.DeleteAdHoc)
				list.DELETE("/adhoc", r.shoppingController.ClearAdHoc)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
