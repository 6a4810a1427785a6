package conversation

import (
	"context"
	"fmt"
	"strings"

	"github.com/pantry-bot/backend/internal/application/usecase/catalog"
	"github.com/pantry-bot/backend/internal/application/usecase/recipe"
	"github.com/pantry-bot/backend/internal/domain/entity"
)

// draftSummary renders the recipe wizard's accumulated state for the
// add-another/finish screen.
func draftSummary(session *entity.Session) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Recipe: %s\n", session.RecipeName)
	if len(session.Ingredients) == 0 {
		b.WriteString("No ingredients yet")
		return b.String()
	}
	b.WriteString("Ingredients:\n")
	for _, d := range session.Ingredients {
		fmt.Fprintf(&b, "• %s — %s %s\n", d.ProductName, d.Quantity.String(), d.Unit)
	}
	return strings.TrimRight(b.String(), "\n")
}

// savedScreen is the saved-data menu with catalog counters.
func (h *Handler) savedScreen(ctx context.Context) *Reply {
	stats, err := h.uc.GetStats.Execute(ctx)
	if err != nil {
		h.logger.Error("failed to load catalog stats", "error", err)
		return savedMenu("Saved data")
	}
	text := fmt.Sprintf("Saved data\n\nRecipes: %d\nProducts: %d\nCategories: %d",
		stats.RecipeCount, stats.ProductCount, stats.CategoryCount)
	return savedMenu(text)
}

func (h *Handler) savedRecipes(ctx context.Context) *Reply {
	out, err := h.uc.ListRecipes.Execute(ctx, recipe.ListRecipesInput{})
	if err != nil {
		h.logger.Error("failed to list recipes", "error", err)
		return alert("Could not load recipes")
	}
	if len(out.Recipes) == 0 {
		return &Reply{
			Text: "No recipes saved yet",
			Buttons: [][]Button{
				row(btn("➕ Add recipe", ActionAddRecipe, "")),
				row(btn("🏠 Main menu", ActionMainMenu, "")),
			},
		}
	}
	return recipeList("Saved recipes", ActionViewRecipe, out.Recipes)
}

func (h *Handler) viewRecipe(ctx context.Context, arg string) *Reply {
	id, ok := parseID(arg)
	if !ok {
		return alert("This recipe is no longer available")
	}
	out, err := h.uc.GetRecipe.Execute(ctx, recipe.GetRecipeInput{RecipeID: id})
	if err != nil {
		return alert("This recipe is no longer available")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🍽️ %s\n\n", out.Recipe.Recipe.Name)
	for _, line := range out.Recipe.Lines {
		fmt.Fprintf(&b, "• %s — %s %s\n", line.Product.Name, line.Line.Quantity.String(), line.Line.Unit)
	}

	return &Reply{
		Text: strings.TrimRight(b.String(), "\n"),
		Buttons: [][]Button{
			row(btn("✏️ Edit recipe", ActionEditRecipe, arg)),
			row(btn("🗑 Delete recipe", ActionDeleteRecipe, arg)),
			row(btn("◀️ Back to list", ActionSavedRecipes, "")),
			row(btn("🏠 Main menu", ActionMainMenu, "")),
		},
	}
}

func (h *Handler) savedProducts(ctx context.Context) *Reply {
	out, err := h.uc.ListProducts.Execute(ctx)
	if err != nil {
		h.logger.Error("failed to list products", "error", err)
		return alert("Could not load products")
	}
	if len(out.Products) == 0 {
		return &Reply{
			Text: "No products saved yet",
			Buttons: [][]Button{
				row(btn("◀️ Back", ActionSavedMenu, "")),
				row(btn("🏠 Main menu", ActionMainMenu, "")),
			},
		}
	}
	return productList("Saved products", out.Products)
}

func (h *Handler) viewProduct(ctx context.Context, arg string) *Reply {
	id, ok := parseID(arg)
	if !ok {
		return alert("This product is no longer available")
	}
	out, err := h.uc.GetProduct.Execute(ctx, catalog.GetProductInput{ProductID: id})
	if err != nil {
		return alert("This product is no longer available")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🥕 %s\n", out.Product.Product.Name)
	if out.Product.Category != nil {
		fmt.Fprintf(&b, "Category: %s\n", out.Product.Category.Name)
	}
	fmt.Fprintf(&b, "Used in %d recipe(s)", out.RecipeCount)
	if len(out.Recipes) > 0 {
		b.WriteString(":\n")
		for _, r := range out.Recipes {
			fmt.Fprintf(&b, "• %s\n", r.Name)
		}
	}

	return &Reply{
		Text: strings.TrimRight(b.String(), "\n"),
		Buttons: [][]Button{
			row(btn("✏️ Rename", ActionRenameProduct, arg)),
			row(btn("🗑 Delete", ActionDeleteProduct, arg)),
			row(btn("◀️ Back to list", ActionSavedProducts, "")),
			row(btn("🏠 Main menu", ActionMainMenu, "")),
		},
	}
}
