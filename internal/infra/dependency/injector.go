// Package dependency provides dependency injection for the application.
package dependency

import (
	"log/slog"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/pantry-bot/backend/config"
	"github.com/pantry-bot/backend/internal/application/usecase/catalog"
	"github.com/pantry-bot/backend/internal/application/usecase/conversation"
	"github.com/pantry-bot/backend/internal/application/usecase/recipe"
	"github.com/pantry-bot/backend/internal/application/usecase/selection"
	"github.com/pantry-bot/backend/internal/application/usecase/shopping"
	"github.com/pantry-bot/backend/internal/infra/cache"
	"github.com/pantry-bot/backend/internal/infra/server/router"
	"github.com/pantry-bot/backend/internal/integration/adhoc"
	"github.com/pantry-bot/backend/internal/integration/entrypoint/controller"
	"github.com/pantry-bot/backend/internal/integration/entrypoint/middleware"
	"github.com/pantry-bot/backend/internal/integration/persistence"
	"github.com/pantry-bot/backend/internal/integration/session"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, dbHealthChecker func() bool, logger *slog.Logger) *Injector {
	// Create repositories and stores
	categoryRepo := persistence.NewCategoryRepository(db)
	productRepo := persistence.NewProductRepository(db)
	recipeRepo := persistence.NewRecipeRepository(db)
	selectionRepo := persistence.NewSelectionRepository(db)
	shoppingRepo := persistence.NewShoppingListRepository(db)
	adHocRegistry := adhoc.NewRegistry()
	sessionStore := session.NewRedisStore(redisClient, cfg.Bot.SessionTTL)

	// Create catalog use cases
	listCategoriesUseCase := catalog.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := catalog.NewCreateCategoryUseCase(categoryRepo)
	reorderCategoryUseCase := catalog.NewReorderCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := catalog.NewDeleteCategoryUseCase(categoryRepo)
	listProductsUseCase := catalog.NewListProductsUseCase(productRepo)
	getProductUseCase := catalog.NewGetProductUseCase(productRepo, recipeRepo)
	renameProductUseCase := catalog.NewRenameProductUseCase(productRepo)
	deleteProductUseCase := catalog.NewDeleteProductUseCase(productRepo, recipeRepo)
	getStatsUseCase := catalog.NewGetStatsUseCase(categoryRepo, productRepo, recipeRepo)
	findOrCreateProductUseCase := catalog.NewFindOrCreateProductUseCase(categoryRepo, productRepo)

	// Create recipe use cases
	createRecipeUseCase := recipe.NewCreateRecipeUseCase(recipeRepo, findOrCreateProductUseCase)
	updateRecipeUseCase := recipe.NewUpdateRecipeUseCase(recipeRepo, findOrCreateProductUseCase)
	deleteRecipeUseCase := recipe.NewDeleteRecipeUseCase(recipeRepo)
	listRecipesUseCase := recipe.NewListRecipesUseCase(recipeRepo)
	getRecipeUseCase := recipe.NewGetRecipeUseCase(recipeRepo)

	// Create selection use cases
	addSelectedUseCase := selection.NewAddRecipeUseCase(selectionRepo, recipeRepo)
	removeSelectedUseCase := selection.NewRemoveRecipeUseCase(selectionRepo)
	clearSelectionUseCase := selection.NewClearSelectionUseCase(selectionRepo)
	listSelectionUseCase := selection.NewListSelectionUseCase(selectionRepo)

	// Create shopping use cases
	generateListUseCase := shopping.NewGenerateListUseCase(selectionRepo, recipeRepo, shoppingRepo)
	addRecipeToListUseCase := shopping.NewAddRecipeToListUseCase(recipeRepo, shoppingRepo)
	toggleItemUseCase := shopping.NewToggleItemUseCase(shoppingRepo)
	deleteItemUseCase := shopping.NewDeleteItemUseCase(shoppingRepo)
	finishShoppingUseCase := shopping.NewFinishShoppingUseCase(shoppingRepo, adHocRegistry)
	getListUseCase := shopping.NewGetListUseCase(shoppingRepo, adHocRegistry)
	addAdHocUseCase := shopping.NewAddAdHocItemUseCase(adHocRegistry)
	toggleAdHocUseCase := shopping.NewToggleAdHocItemUseCase(adHocRegistry)
	deleteAdHocUseCase := shopping.NewDeleteAdHocItemUseCase(adHocRegistry)
	clearAdHocUseCase := shopping.NewClearAdHocItemsUseCase(adHocRegistry)

	// Create the conversation handler
	conversationHandler := conversation.NewHandler(
		sessionStore,
		productRepo,
		adHocRegistry,
		conversation.UseCases{
			CreateCategory:  createCategoryUseCase,
			ListCategories:  listCategoriesUseCase,
			DeleteCategory:  deleteCategoryUseCase,
			ReorderCategory: reorderCategoryUseCase,
			ListProducts:    listProductsUseCase,
			GetProduct:      getProductUseCase,
			RenameProduct:   renameProductUseCase,
			DeleteProduct:   deleteProductUseCase,
			GetStats:        getStatsUseCase,

			CreateRecipe: createRecipeUseCase,
			UpdateRecipe: updateRecipeUseCase,
			DeleteRecipe: deleteRecipeUseCase,
			ListRecipes:  listRecipesUseCase,
			GetRecipe:    getRecipeUseCase,

			AddSelected:    addSelectedUseCase,
			RemoveSelected: removeSelectedUseCase,
			ClearSelection: clearSelectionUseCase,
			ListSelection:  listSelectionUseCase,

			GenerateList:    generateListUseCase,
			AddRecipeToList: addRecipeToListUseCase,
			ToggleItem:      toggleItemUseCase,
			DeleteItem:      deleteItemUseCase,
			FinishShopping:  finishShoppingUseCase,
			GetList:         getListUseCase,
			AddAdHoc:        addAdHocUseCase,
			ToggleAdHoc:     toggleAdHocUseCase,
			DeleteAdHoc:     deleteAdHocUseCase,
		},
		logger,
	)

	// Create middleware
	accessGate := middleware.NewAccessGate(cfg.Bot.AllowedUsers)

	// Create controllers
	healthController := controller.NewHealthController(dbHealthChecker, cache.HealthChecker(redisClient))
	chatController := controller.NewChatController(conversationHandler, accessGate)
	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		reorderCategoryUseCase,
		deleteCategoryUseCase,
	)
	productController := controller.NewProductController(
		listProductsUseCase,
		getProductUseCase,
		renameProductUseCase,
		deleteProductUseCase,
	)
	recipeController := controller.NewRecipeController(
		listRecipesUseCase,
		getRecipeUseCase,
		createRecipeUseCase,
		updateRecipeUseCase,
		deleteRecipeUseCase,
	)
	selectionController := controller.NewSelectionController(
		listSelectionUseCase,
		addSelectedUseCase,
		removeSelectedUseCase,
		clearSelectionUseCase,
	)
	shoppingController := controller.NewShoppingController(
		getListUseCase,
		generateListUseCase,
		addRecipeToListUseCase,
		toggleItemUseCase,
		deleteItemUseCase,
		finishShoppingUseCase,
		addAdHocUseCase,
		toggleAdHocUseCase,
		deleteAdHocUseCase,
		clearAdHocUseCase,
	)

	// Create the router
	r := router.NewRouter(
		healthController,
		chatController,
		categoryController,
		productController,
		recipeController,
		selectionController,
		shoppingController,
		accessGate,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
