package shopping

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pantry-bot/backend/internal/domain/entity"
	domainerror "github.com/pantry-bot/backend/internal/domain/error"
)

func TestAddRecipeToListUseCase_Execute(t *testing.T) {
	const userID = "user-1"

	t.Run("appends new rows for unknown products", func(t *testing.T) {
		selections := &fakeSelectionRepo{}
		recipes := newFakeRecipeRepo()
		shoppingRepo := newFakeShoppingRepo(selections)

		tomato := entity.NewProduct("Tomato", uuid.New())
		salad := registerRecipe(recipes, shoppingRepo, "Salad",
			resolvedLine(tomato, "2", "pcs"),
		)

		uc := NewAddRecipeToListUseCase(recipes, shoppingRepo)
		out, err := uc.Execute(context.Background(), AddRecipeToListInput{UserID: userID, RecipeID: salad.ID})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if out.NewLines != 1 || out.MergedLines != 0 {
			t.Errorf("expected 1 new line and 0 merged, got %d new %d merged", out.NewLines, out.MergedLines)
		}
		if len(shoppingRepo.items) != 1 {
			t.Fatalf("expected 1 row, got %d", len(shoppingRepo.items))
		}
		if shoppingRepo.items[0].IsBought {
			t.Error("expected the appended row to be unbought")
		}
	})

	t.Run("merges onto an existing row by product name even across units", func(t *testing.T) {
		selections := &fakeSelectionRepo{}
		recipes := newFakeRecipeRepo()
		shoppingRepo := newFakeShoppingRepo(selections)

		milk := entity.NewProduct("Milk", uuid.New())
		porridge := registerRecipe(recipes, shoppingRepo, "Porridge",
			resolvedLine(milk, "1", "l"),
		)

		existing := entity.NewShoppingItem(userID, milk.ID, decimal.NewFromInt(200), "ml")
		shoppingRepo.items = append(shoppingRepo.items, existing)

		uc := NewAddRecipeToListUseCase(recipes, shoppingRepo)
		out, err := uc.Execute(context.Background(), AddRecipeToListInput{UserID: userID, RecipeID: porridge.ID})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if out.MergedLines != 1 || out.NewLines != 0 {
			t.Errorf("expected 1 merged line and 0 new, got %d merged %d new", out.MergedLines, out.NewLines)
		}
		if len(shoppingRepo.items) != 1 {
			t.Fatalf("expected a single row after the merge, got %d", len(shoppingRepo.items))
		}
		row := shoppingRepo.items[0]
		if !row.Quantity.Equal(decimal.NewFromInt(201)) {
			t.Errorf("expected quantity 201, got %s", row.Quantity)
		}
		if row.Unit != "ml" {
			t.Errorf("expected the existing row's unit to stay ml, got %s", row.Unit)
		}
	})

	t.Run("leaves the selection alone", func(t *testing.T) {
		selections := &fakeSelectionRepo{}
		recipes := newFakeRecipeRepo()
		shoppingRepo := newFakeShoppingRepo(selections)

		onion := entity.NewProduct("Onion", uuid.New())
		soup := registerRecipe(recipes, shoppingRepo, "Soup",
			resolvedLine(onion, "1", "pcs"),
		)
		selectRecipe(selections, userID, soup, 2)

		uc := NewAddRecipeToListUseCase(recipes, shoppingRepo)
		if _, err := uc.Execute(context.Background(), AddRecipeToListInput{UserID: userID, RecipeID: soup.ID}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if len(selections.entries) != 1 || selections.entries[0].Entry.Count != 2 {
			t.Error("expected the selection to be untouched by the append path")
		}
	})

	t.Run("returns a recipe error for an unknown recipe", func(t *testing.T) {
		selections := &fakeSelectionRepo{}
		recipes := newFakeRecipeRepo()
		shoppingRepo := newFakeShoppingRepo(selections)

		uc := NewAddRecipeToListUseCase(recipes, shoppingRepo)
		_, err := uc.Execute(context.Background(), AddRecipeToListInput{UserID: userID, RecipeID: uuid.New()})
		if !errors.Is(err, domainerror.ErrRecipeNotFound) {
			t.Fatalf("expected ErrRecipeNotFound, got %v", err)
		}
	})
}
