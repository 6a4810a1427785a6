package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pantry-bot/backend/internal/domain/entity"
	domainerror "github.com/pantry-bot/backend/internal/domain/error"
	"github.com/pantry-bot/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	err = db.AutoMigrate(
		&model.CategoryModel{},
		&model.ProductModel{},
		&model.RecipeModel{},
		&model.IngredientLineModel{},
		&model.SelectionEntryModel{},
		&model.ShoppingItemModel{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func mustCreateCategory(t *testing.T, db *gorm.DB, name string, order int) *entity.Category {
	t.Helper()
	category := entity.NewCategory(name, order)
	if err := NewCategoryRepository(db).Create(context.Background(), category); err != nil {
		t.Fatalf("failed to create category %q: %v", name, err)
	}
	return category
}

func mustCreateProduct(t *testing.T, db *gorm.DB, name string, category *entity.Category) *entity.Product {
	t.Helper()
	product := entity.NewProduct(name, category.ID)
	if err := NewProductRepository(db).Create(context.Background(), product); err != nil {
		t.Fatalf("failed to create product %q: %v", name, err)
	}
	return product
}

func mustCreateRecipe(t *testing.T, db *gorm.DB, name, userID string, lines []*entity.IngredientLine) *entity.Recipe {
	t.Helper()
	recipe := entity.NewRecipe(name, userID)
	for _, line := range lines {
		line.RecipeID = recipe.ID
	}
	if err := NewRecipeRepository(db).Create(context.Background(), recipe, lines); err != nil {
		t.Fatalf("failed to create recipe %q: %v", name, err)
	}
	return recipe
}

func TestSeedDefaultCategories(t *testing.T) {
	t.Run("should seed an empty catalog in display order", func(t *testing.T) {
		db := newTestDB(t)
		ctx := context.Background()

		if err := SeedDefaultCategories(ctx, db); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		categories, err := NewCategoryRepository(db).FindAll(ctx)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(categories) != len(entity.DefaultCategories) {
			t.Fatalf("expected %d categories, got %d", len(entity.DefaultCategories), len(categories))
		}
		for i, category := range categories {
			if category.Name != entity.DefaultCategories[i] {
				t.Errorf("expected %q at position %d, got %q", entity.DefaultCategories[i], i, category.Name)
			}
			if category.DisplayOrder != i+1 {
				t.Errorf("expected display order %d for %q, got %d", i+1, category.Name, category.DisplayOrder)
			}
		}
	})

	t.Run("should leave a populated catalog alone", func(t *testing.T) {
		db := newTestDB(t)
		ctx := context.Background()
		mustCreateCategory(t, db, "Custom", 1)

		if err := SeedDefaultCategories(ctx, db); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		count, err := NewCategoryRepository(db).Count(ctx)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if count != 1 {
			t.Errorf("expected the existing catalog to be untouched, got %d categories", count)
		}
	})
}

func TestCategoryRepository(t *testing.T) {
	t.Run("should return nil for an unknown name", func(t *testing.T) {
		db := newTestDB(t)

		category, err := NewCategoryRepository(db).FindByName(context.Background(), "Nope")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if category != nil {
			t.Errorf("expected nil, got %+v", category)
		}
	})

	t.Run("should return a domain error for an unknown id", func(t *testing.T) {
		db := newTestDB(t)
		other := mustCreateCategory(t, db, "Dairy", 1)

		_, err := NewCategoryRepository(db).FindByID(context.Background(), entity.NewCategory("x", 2).ID)
		if !errors.Is(err, domainerror.ErrCategoryNotFound) {
			t.Errorf("expected ErrCategoryNotFound, got %v", err)
		}

		found, err := NewCategoryRepository(db).FindByID(context.Background(), other.ID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if found.Name != "Dairy" {
			t.Errorf("expected Dairy, got %q", found.Name)
		}
	})

	t.Run("should count products per category", func(t *testing.T) {
		db := newTestDB(t)
		ctx := context.Background()
		dairy := mustCreateCategory(t, db, "Dairy", 1)
		grocery := mustCreateCategory(t, db, "Grocery", 2)
		mustCreateProduct(t, db, "Milk", dairy)
		mustCreateProduct(t, db, "Butter", dairy)

		repo := NewCategoryRepository(db)
		count, err := repo.CountProducts(ctx, dairy.ID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if count != 2 {
			t.Errorf("expected 2 products in Dairy, got %d", count)
		}
		count, err = repo.CountProducts(ctx, grocery.ID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if count != 0 {
			t.Errorf("expected an empty Grocery, got %d", count)
		}
	})
}

func TestProductRepository_Delete(t *testing.T) {
	t.Run("should remove the product and every row referencing it", func(t *testing.T) {
		db := newTestDB(t)
		ctx := context.Background()
		dairy := mustCreateCategory(t, db, "Dairy", 1)
		milk := mustCreateProduct(t, db, "Milk", dairy)
		butter := mustCreateProduct(t, db, "Butter", dairy)

		recipe := mustCreateRecipe(t, db, "Pancakes", "42", []*entity.IngredientLine{
			entity.NewIngredientLine(milk.ID, decimal.RequireFromString("0.5"), "l", 1),
			entity.NewIngredientLine(butter.ID, decimal.NewFromInt(50), "g", 2),
		})

		shoppingRepo := NewShoppingListRepository(db)
		if err := shoppingRepo.Create(ctx, entity.NewShoppingItem("42", milk.ID, decimal.NewFromInt(1), "l")); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if err := NewProductRepository(db).Delete(ctx, milk.ID); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		recipeOut, err := NewRecipeRepository(db).FindByID(ctx, recipe.ID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(recipeOut.Lines) != 1 || recipeOut.Lines[0].Product.Name != "Butter" {
			t.Errorf("expected only the butter line to survive, got %d lines", len(recipeOut.Lines))
		}

		items, err := shoppingRepo.FindByUser(ctx, "42")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(items) != 0 {
			t.Errorf("expected the shopping row to be removed, got %d rows", len(items))
		}
	})
}

func TestRecipeRepository(t *testing.T) {
	t.Run("should resolve lines in position order", func(t *testing.T) {
		db := newTestDB(t)
		ctx := context.Background()
		dairy := mustCreateCategory(t, db, "Dairy", 1)
		grocery := mustCreateCategory(t, db, "Grocery", 2)
		milk := mustCreateProduct(t, db, "Milk", dairy)
		flour := mustCreateProduct(t, db, "Flour", grocery)

		recipe := mustCreateRecipe(t, db, "Pancakes", "42", []*entity.IngredientLine{
			entity.NewIngredientLine(flour.ID, decimal.NewFromInt(300), "g", 2),
			entity.NewIngredientLine(milk.ID, decimal.RequireFromString("0.5"), "l", 1),
		})

		out, err := NewRecipeRepository(db).FindByID(ctx, recipe.ID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(out.Lines) != 2 {
			t.Fatalf("expected 2 lines, got %d", len(out.Lines))
		}
		if out.Lines[0].Product.Name != "Milk" || out.Lines[1].Product.Name != "Flour" {
			t.Errorf("expected lines ordered by position, got %q then %q",
				out.Lines[0].Product.Name, out.Lines[1].Product.Name)
		}
		if out.Lines[0].Category.Name != "Dairy" {
			t.Errorf("expected category resolved, got %q", out.Lines[0].Category.Name)
		}
	})

	t.Run("should replace lines wholesale", func(t *testing.T) {
		db := newTestDB(t)
		ctx := context.Background()
		dairy := mustCreateCategory(t, db, "Dairy", 1)
		milk := mustCreateProduct(t, db, "Milk", dairy)
		butter := mustCreateProduct(t, db, "Butter", dairy)

		recipe := mustCreateRecipe(t, db, "Pancakes", "42", []*entity.IngredientLine{
			entity.NewIngredientLine(milk.ID, decimal.RequireFromString("0.5"), "l", 1),
		})

		repo := NewRecipeRepository(db)
		recipe.Name = "Crepes"
		newLine := entity.NewIngredientLine(butter.ID, decimal.NewFromInt(50), "g", 1)
		newLine.RecipeID = recipe.ID
		if err := repo.Replace(ctx, recipe, []*entity.IngredientLine{newLine}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		out, err := repo.FindByID(ctx, recipe.ID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if out.Recipe.Name != "Crepes" {
			t.Errorf("expected renamed recipe, got %q", out.Recipe.Name)
		}
		if len(out.Lines) != 1 || out.Lines[0].Product.Name != "Butter" {
			t.Errorf("expected the old lines to be gone, got %d lines", len(out.Lines))
		}
	})

	t.Run("should delete the recipe with its lines and selection entries", func(t *testing.T) {
		db := newTestDB(t)
		ctx := context.Background()
		dairy := mustCreateCategory(t, db, "Dairy", 1)
		milk := mustCreateProduct(t, db, "Milk", dairy)

		recipe := mustCreateRecipe(t, db, "Pancakes", "42", []*entity.IngredientLine{
			entity.NewIngredientLine(milk.ID, decimal.RequireFromString("0.5"), "l", 1),
		})

		selectionRepo := NewSelectionRepository(db)
		if err := selectionRepo.Create(ctx, entity.NewSelectionEntry("42", recipe.ID)); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		repo := NewRecipeRepository(db)
		if err := repo.Delete(ctx, recipe.ID); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if _, err := repo.FindByID(ctx, recipe.ID); !errors.Is(err, domainerror.ErrRecipeNotFound) {
			t.Errorf("expected ErrRecipeNotFound, got %v", err)
		}
		entries, err := selectionRepo.FindByUser(ctx, "42")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(entries) != 0 {
			t.Errorf("expected selection entries to be removed, got %d", len(entries))
		}
		count, err := NewProductRepository(db).Count(ctx)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if count != 1 {
			t.Errorf("expected the product to be untouched, got %d products", count)
		}
	})

	t.Run("should count and list recipes using a product", func(t *testing.T) {
		db := newTestDB(t)
		ctx := context.Background()
		dairy := mustCreateCategory(t, db, "Dairy", 1)
		milk := mustCreateProduct(t, db, "Milk", dairy)
		butter := mustCreateProduct(t, db, "Butter", dairy)

		mustCreateRecipe(t, db, "Pancakes", "42", []*entity.IngredientLine{
			entity.NewIngredientLine(milk.ID, decimal.RequireFromString("0.5"), "l", 1),
			entity.NewIngredientLine(butter.ID, decimal.NewFromInt(50), "g", 2),
		})
		mustCreateRecipe(t, db, "Omelette", "42", []*entity.IngredientLine{
			entity.NewIngredientLine(butter.ID, decimal.NewFromInt(20), "g", 1),
		})

		repo := NewRecipeRepository(db)
		count, err := repo.CountUsingProduct(ctx, butter.ID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if count != 2 {
			t.Errorf("expected 2 lines using butter, got %d", count)
		}

		recipes, err := repo.FindUsingProduct(ctx, butter.ID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(recipes) != 2 || recipes[0].Name != "Omelette" || recipes[1].Name != "Pancakes" {
			t.Errorf("expected both recipes ordered by name, got %+v", recipes)
		}
	})
}

func TestShoppingListRepository(t *testing.T) {
	t.Run("should match rows by product name regardless of unit", func(t *testing.T) {
		db := newTestDB(t)
		ctx := context.Background()
		dairy := mustCreateCategory(t, db, "Dairy", 1)
		milk := mustCreateProduct(t, db, "Milk", dairy)

		repo := NewShoppingListRepository(db)
		if err := repo.Create(ctx, entity.NewShoppingItem("42", milk.ID, decimal.NewFromInt(200), "ml")); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		item, err := repo.FindByUserAndProductName(ctx, "42", "Milk")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if item == nil || item.Unit != "ml" {
			t.Fatalf("expected the ml row, got %+v", item)
		}

		item, err = repo.FindByUserAndProductName(ctx, "42", "Butter")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if item != nil {
			t.Errorf("expected nil for an unknown product name, got %+v", item)
		}
	})

	t.Run("should order rows by category display order then product name", func(t *testing.T) {
		db := newTestDB(t)
		ctx := context.Background()
		dairy := mustCreateCategory(t, db, "Dairy", 2)
		vegetables := mustCreateCategory(t, db, "Vegetables", 1)
		milk := mustCreateProduct(t, db, "Milk", dairy)
		carrot := mustCreateProduct(t, db, "Carrot", vegetables)
		onion := mustCreateProduct(t, db, "Onion", vegetables)

		repo := NewShoppingListRepository(db)
		for _, item := range []*entity.ShoppingItem{
			entity.NewShoppingItem("42", milk.ID, decimal.NewFromInt(1), "l"),
			entity.NewShoppingItem("42", onion.ID, decimal.NewFromInt(2), "pcs"),
			entity.NewShoppingItem("42", carrot.ID, decimal.NewFromInt(3), "pcs"),
		} {
			if err := repo.Create(ctx, item); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		}

		items, err := repo.FindByUser(ctx, "42")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(items) != 3 {
			t.Fatalf("expected 3 rows, got %d", len(items))
		}
		got := []string{items[0].Product.Name, items[1].Product.Name, items[2].Product.Name}
		want := []string{"Carrot", "Onion", "Milk"}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("expected %v, got %v", want, got)
				break
			}
		}
	})

	t.Run("should commit aggregation atomically", func(t *testing.T) {
		db := newTestDB(t)
		ctx := context.Background()
		dairy := mustCreateCategory(t, db, "Dairy", 1)
		milk := mustCreateProduct(t, db, "Milk", dairy)
		butter := mustCreateProduct(t, db, "Butter", dairy)

		recipe := mustCreateRecipe(t, db, "Pancakes", "42", []*entity.IngredientLine{
			entity.NewIngredientLine(milk.ID, decimal.RequireFromString("0.5"), "l", 1),
		})
		selectionRepo := NewSelectionRepository(db)
		if err := selectionRepo.Create(ctx, entity.NewSelectionEntry("42", recipe.ID)); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		repo := NewShoppingListRepository(db)
		stale := entity.NewShoppingItem("42", butter.ID, decimal.NewFromInt(50), "g")
		if err := repo.Create(ctx, stale); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		fresh := entity.NewShoppingItem("42", milk.ID, decimal.RequireFromString("0.5"), "l")
		if err := repo.CommitAggregation(ctx, "42", []*entity.ShoppingItem{fresh}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		items, err := repo.FindByUser(ctx, "42")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(items) != 1 || items[0].Product.Name != "Milk" {
			t.Errorf("expected the old list to be replaced, got %d rows", len(items))
		}
		entries, err := selectionRepo.FindByUser(ctx, "42")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(entries) != 0 {
			t.Errorf("expected the selection to be consumed, got %d entries", len(entries))
		}
	})
}
