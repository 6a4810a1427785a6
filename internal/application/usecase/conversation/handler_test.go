package conversation

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/pantry-bot/backend/internal/application/usecase/catalog"
	"github.com/pantry-bot/backend/internal/application/usecase/recipe"
	"github.com/pantry-bot/backend/internal/application/usecase/selection"
	"github.com/pantry-bot/backend/internal/application/usecase/shopping"
	"github.com/pantry-bot/backend/internal/domain/entity"
)

type testEnv struct {
	handler  *Handler
	store    *memStore
	sessions *memSessionStore
	adhoc    *memAdHocRegistry
}

func newTestEnv() *testEnv {
	store := newMemStore()
	sessions := newMemSessionStore()
	adhoc := newMemAdHocRegistry()

	categories := memCategoryRepo{store}
	products := memProductRepo{store}
	recipes := memRecipeRepo{store}
	selections := memSelectionRepo{store}
	shoppingRepo := memShoppingRepo{store}

	finder := catalog.NewFindOrCreateProductUseCase(categories, products)

	uc := UseCases{
		CreateCategory:  catalog.NewCreateCategoryUseCase(categories),
		ListCategories:  catalog.NewListCategoriesUseCase(categories),
		DeleteCategory:  catalog.NewDeleteCategoryUseCase(categories),
		ReorderCategory: catalog.NewReorderCategoryUseCase(categories),
		ListProducts:    catalog.NewListProductsUseCase(products),
		GetProduct:      catalog.NewGetProductUseCase(products, recipes),
		RenameProduct:   catalog.NewRenameProductUseCase(products),
		DeleteProduct:   catalog.NewDeleteProductUseCase(products, recipes),
		GetStats:        catalog.NewGetStatsUseCase(categories, products, recipes),

		CreateRecipe: recipe.NewCreateRecipeUseCase(recipes, finder),
		UpdateRecipe: recipe.NewUpdateRecipeUseCase(recipes, finder),
		DeleteRecipe: recipe.NewDeleteRecipeUseCase(recipes),
		ListRecipes:  recipe.NewListRecipesUseCase(recipes),
		GetRecipe:    recipe.NewGetRecipeUseCase(recipes),

		AddSelected:    selection.NewAddRecipeUseCase(selections, recipes),
		RemoveSelected: selection.NewRemoveRecipeUseCase(selections),
		ClearSelection: selection.NewClearSelectionUseCase(selections),
		ListSelection:  selection.NewListSelectionUseCase(selections),

		GenerateList:    shopping.NewGenerateListUseCase(selections, recipes, shoppingRepo),
		AddRecipeToList: shopping.NewAddRecipeToListUseCase(recipes, shoppingRepo),
		ToggleItem:      shopping.NewToggleItemUseCase(shoppingRepo),
		DeleteItem:      shopping.NewDeleteItemUseCase(shoppingRepo),
		FinishShopping:  shopping.NewFinishShoppingUseCase(shoppingRepo, adhoc),
		GetList:         shopping.NewGetListUseCase(shoppingRepo, adhoc),
		AddAdHoc:        shopping.NewAddAdHocItemUseCase(adhoc),
		ToggleAdHoc:     shopping.NewToggleAdHocItemUseCase(adhoc),
		DeleteAdHoc:     shopping.NewDeleteAdHocItemUseCase(adhoc),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewHandler(sessions, products, adhoc, uc, logger)
	return &testEnv{handler: handler, store: store, sessions: sessions, adhoc: adhoc}
}

func (e *testEnv) text(t *testing.T, userID, text string) *Reply {
	t.Helper()
	return e.handler.HandleEvent(context.Background(), Event{UserID: userID, Text: text})
}

func (e *testEnv) token(t *testing.T, userID, token string) *Reply {
	t.Helper()
	return e.handler.HandleEvent(context.Background(), Event{UserID: userID, Token: token})
}

func (e *testEnv) session(t *testing.T, userID string) *entity.Session {
	t.Helper()
	s, err := e.sessions.Load(context.Background(), userID)
	if err != nil {
		t.Fatalf("failed to load session: %v", err)
	}
	return s
}

func TestHandler_RecipeWizard(t *testing.T) {
	const userID = "42"

	t.Run("full happy path creates recipe and catalog rows", func(t *testing.T) {
		env := newTestEnv()

		env.token(t, userID, "add_recipe")
		env.text(t, userID, "Pancakes")
		env.text(t, userID, "Flour")
		env.text(t, userID, "300")
		env.token(t, userID, "unit:g")

		if s := env.session(t, userID); s.Step != entity.StepIngredientCategory {
			t.Fatalf("expected category step for an unknown product, got %q", s.Step)
		}
		env.token(t, userID, "new_category")
		env.text(t, userID, "Grocery")

		if s := env.session(t, userID); len(s.Ingredients) != 1 {
			t.Fatalf("expected 1 drafted ingredient, got %d", len(s.Ingredients))
		}

		reply := env.token(t, userID, "finish_recipe")
		if !strings.Contains(reply.Text, "Pancakes") {
			t.Errorf("expected a confirmation naming the recipe, got %q", reply.Text)
		}

		if len(env.store.recipes) != 1 {
			t.Fatalf("expected 1 stored recipe, got %d", len(env.store.recipes))
		}
		if len(env.store.products) != 1 {
			t.Errorf("expected the product to be created, got %d products", len(env.store.products))
		}
		if len(env.store.categories) != 1 {
			t.Errorf("expected the category to be created, got %d categories", len(env.store.categories))
		}
		if s := env.session(t, userID); s.Step != entity.StepIdle || s.RecipeName != "" {
			t.Error("expected the session to be reset after finishing")
		}
	})

	t.Run("invalid quantity input is a no-op", func(t *testing.T) {
		env := newTestEnv()

		env.token(t, userID, "add_recipe")
		env.text(t, userID, "Soup")
		env.text(t, userID, "Carrot")

		for _, bad := range []string{"abc", "-5", "0"} {
			env.text(t, userID, bad)
			s := env.session(t, userID)
			if s.Step != entity.StepIngredientQuantity {
				t.Fatalf("expected quantity step to hold after %q, got %q", bad, s.Step)
			}
			if len(s.Ingredients) != 0 {
				t.Fatalf("expected no ingredient recorded after %q", bad)
			}
		}
	})

	t.Run("comma is accepted as the decimal separator", func(t *testing.T) {
		env := newTestEnv()

		env.token(t, userID, "add_recipe")
		env.text(t, userID, "Dough")
		env.text(t, userID, "Milk")
		env.text(t, userID, "1,5")

		s := env.session(t, userID)
		if s.Step != entity.StepIngredientUnit {
			t.Fatalf("expected unit step after a comma decimal, got %q", s.Step)
		}
		if s.CurrentQuantity.String() != "1.5" {
			t.Errorf("expected quantity 1.5, got %s", s.CurrentQuantity)
		}
	})

	t.Run("too-short names are a no-op", func(t *testing.T) {
		env := newTestEnv()

		env.token(t, userID, "add_recipe")
		env.text(t, userID, " x ")

		if s := env.session(t, userID); s.Step != entity.StepRecipeName || s.RecipeName != "" {
			t.Error("expected the name step to hold on a too-short name")
		}
	})

	t.Run("existing product skips the category step", func(t *testing.T) {
		env := newTestEnv()

		grocery := entity.NewCategory("Grocery", 1)
		env.store.categories[grocery.ID] = grocery
		flour := entity.NewProduct("Flour", grocery.ID)
		env.store.products[flour.ID] = flour

		env.token(t, userID, "add_recipe")
		env.text(t, userID, "Bread")
		env.text(t, userID, "Flour")
		env.text(t, userID, "500")
		env.token(t, userID, "unit:g")

		s := env.session(t, userID)
		if len(s.Ingredients) != 1 {
			t.Fatalf("expected the ingredient to complete without a category step, got %d drafts", len(s.Ingredients))
		}
		if s.Ingredients[0].Category != "Grocery" {
			t.Errorf("expected the existing category to be reused, got %q", s.Ingredients[0].Category)
		}

		env.token(t, userID, "finish_recipe")
		if len(env.store.products) != 1 {
			t.Errorf("expected no duplicate product, got %d", len(env.store.products))
		}
	})

	t.Run("cancel clears the session", func(t *testing.T) {
		env := newTestEnv()

		env.token(t, userID, "add_recipe")
		env.text(t, userID, "Pasta")
		env.token(t, userID, "cancel")

		s := env.session(t, userID)
		if s.Step != entity.StepIdle || s.RecipeName != "" {
			t.Error("expected an idle session after cancel")
		}
	})

	t.Run("finish with a lost session resets to the menu", func(t *testing.T) {
		env := newTestEnv()

		reply := env.token(t, userID, "finish_recipe")
		if !strings.Contains(reply.Text, "lost") {
			t.Errorf("expected a lost-data reply, got %q", reply.Text)
		}
		if len(env.store.recipes) != 0 {
			t.Error("expected no recipe to be created")
		}
	})

	t.Run("finish without ingredients is refused", func(t *testing.T) {
		env := newTestEnv()

		env.token(t, userID, "add_recipe")
		env.text(t, userID, "Empty dish")
		reply := env.token(t, userID, "finish_recipe")

		if !reply.Alert {
			t.Error("expected an alert reply")
		}
		if len(env.store.recipes) != 0 {
			t.Error("expected no recipe to be created")
		}
	})
}

func TestHandler_AdHocWizard(t *testing.T) {
	const userID = "42"

	env := newTestEnv()
	grocery := entity.NewCategory("Household", 1)
	env.store.categories[grocery.ID] = grocery

	env.token(t, userID, "add_adhoc")
	env.text(t, userID, "Batteries")
	env.text(t, userID, "4")
	env.token(t, userID, "unit:pcs")
	env.token(t, userID, "adhoc_category:Household")

	items := env.adhoc.List(userID)
	if len(items) != 1 {
		t.Fatalf("expected 1 ad-hoc entry, got %d", len(items))
	}
	if items[0].Name != "Batteries" || items[0].Category != "Household" {
		t.Errorf("unexpected entry: %+v", items[0])
	}
	if len(env.store.products) != 0 {
		t.Error("expected the catalog to stay untouched by ad-hoc entries")
	}
}

func TestHandler_UnknownToken(t *testing.T) {
	env := newTestEnv()

	reply := env.token(t, "42", "warp_drive:9")
	if !reply.Alert {
		t.Error("expected an alert for an unknown token")
	}

	if s := env.session(t, "42"); s.Step != entity.StepIdle {
		t.Error("expected no state change on an unknown token")
	}
}

func TestHandler_ComposeAndGenerate(t *testing.T) {
	const userID = "42"

	env := newTestEnv()

	// Seed a recipe through the wizard.
	grocery := entity.NewCategory("Grocery", 1)
	env.store.categories[grocery.ID] = grocery
	flour := entity.NewProduct("Flour", grocery.ID)
	env.store.products[flour.ID] = flour

	env.token(t, userID, "add_recipe")
	env.text(t, userID, "Bread")
	env.text(t, userID, "Flour")
	env.text(t, userID, "500")
	env.token(t, userID, "unit:g")
	env.token(t, userID, "finish_recipe")

	var recipeID string
	for id := range env.store.recipes {
		recipeID = id.String()
	}

	env.token(t, userID, "select_recipe:"+recipeID)
	if len(env.store.selections) != 1 {
		t.Fatalf("expected 1 selection entry, got %d", len(env.store.selections))
	}

	env.token(t, userID, "create_shopping_list")
	if len(env.store.shopping) != 1 {
		t.Fatalf("expected 1 shopping row, got %d", len(env.store.shopping))
	}
	if len(env.store.selections) != 0 {
		t.Error("expected the selection to be consumed")
	}

	// The compose menu is now guarded by the active list.
	reply := env.token(t, userID, "compose_menu")
	if !strings.Contains(reply.Text, "active shopping list") {
		t.Errorf("expected the compose guard, got %q", reply.Text)
	}
}

func TestHandler_TextOnButtonStep(t *testing.T) {
	const userID = "42"

	env := newTestEnv()

	env.token(t, userID, "add_recipe")
	env.text(t, userID, "Pancakes")
	env.text(t, userID, "Flour")
	env.text(t, userID, "300")

	// The unit step only accepts buttons; typed text shows it again.
	reply := env.text(t, userID, "grams please")
	if s := env.session(t, userID); s.Step != entity.StepIngredientUnit {
		t.Fatalf("expected the wizard to stay on the unit step, got %q", s.Step)
	}
	if !strings.Contains(reply.Text, "unit") {
		t.Errorf("expected the unit prompt again, got %q", reply.Text)
	}
	hasUnits := false
	for _, r := range reply.Buttons {
		for _, b := range r {
			if b.Label == "g" {
				hasUnits = true
			}
		}
	}
	if !hasUnits {
		t.Error("expected the units keyboard to be offered again")
	}
}

func TestHandler_ShoppingItemTokens(t *testing.T) {
	const userID = "42"

	t.Run("toggle falls through to the ad-hoc registry", func(t *testing.T) {
		env := newTestEnv()

		item := entity.NewAdHocItem("Batteries", decimal.RequireFromString("4"), "pcs", "Household")
		env.adhoc.Add(userID, item)

		env.token(t, userID, "toggle_item:"+item.ID.String())
		if !env.adhoc.List(userID)[0].IsBought {
			t.Error("expected the ad-hoc item to be toggled")
		}
	})

	t.Run("garbage item id alerts", func(t *testing.T) {
		env := newTestEnv()

		reply := env.token(t, userID, "toggle_item:not-a-uuid")
		if !reply.Alert {
			t.Error("expected an alert for an unparseable item id")
		}
		reply = env.token(t, userID, "delete_item:not-a-uuid")
		if !reply.Alert {
			t.Error("expected an alert for an unparseable item id")
		}
	})
}

func TestParseToken(t *testing.T) {
	tok := ParseToken("unit:pcs")
	if tok.Action != "unit" || tok.Arg != "pcs" {
		t.Errorf("unexpected parse: %+v", tok)
	}

	tok = ParseToken("main_menu")
	if tok.Action != "main_menu" || tok.Arg != "" {
		t.Errorf("unexpected parse: %+v", tok)
	}

	if got := (Token{Action: "view_recipe", Arg: "abc"}).String(); got != "view_recipe:abc" {
		t.Errorf("unexpected round trip: %q", got)
	}
}
