package conversation

import (
	"fmt"
	"strings"

	"github.com/pantry-bot/backend/internal/domain/entity"
)

// Units is the fixed measurement unit menu, in display order.
var Units = []string{"g", "kg", "ml", "l", "pcs", "tbsp", "tsp", "cup"}

// IsKnownUnit reports whether the unit comes from the fixed menu.
func IsKnownUnit(unit string) bool {
	for _, u := range Units {
		if u == unit {
			return true
		}
	}
	return false
}

func mainMenu(hasShoppingList bool) *Reply {
	rows := [][]Button{
		row(btn("🛒 Shopping menu", ActionShoppingMenu, "")),
	}
	if !hasShoppingList {
		rows = append(rows, row(btn("🧾 Compose menu", ActionComposeMenu, "")))
	}
	rows = append(rows,
		row(btn("🍽️ Recipes", ActionRecipesMenu, "")),
		row(btn("📚 Saved", ActionSavedMenu, "")),
	)
	return &Reply{Text: "Main menu", Buttons: rows}
}

func recipesMenu() *Reply {
	return &Reply{
		Text: "Recipes",
		Buttons: [][]Button{
			row(btn("➕ Add recipe", ActionAddRecipe, "")),
			row(btn("✏️ Edit recipe", ActionEditRecipe, "")),
			row(btn("❌ Delete recipe", ActionDeleteRecipe, "")),
			row(btn("🏠 Main menu", ActionMainMenu, "")),
		},
	}
}

func categoriesMenu() *Reply {
	return &Reply{
		Text: "Categories",
		Buttons: [][]Button{
			row(btn("➕ Add category", ActionAddCategory, "")),
			row(btn("📋 Categories list", ActionListCategories, "")),
			row(btn("🔄 Change order", ActionReorderCategories, "")),
			row(btn("🏠 Main menu", ActionMainMenu, "")),
		},
	}
}

func savedMenu(text string) *Reply {
	return &Reply{
		Text: text,
		Buttons: [][]Button{
			row(btn("🍽️ Recipes", ActionSavedRecipes, "")),
			row(btn("🥕 Products", ActionSavedProducts, "")),
			row(btn("📦 Categories", ActionSavedCategories, "")),
			row(btn("🏠 Main menu", ActionMainMenu, "")),
		},
	}
}

// recipeList renders one button per recipe, tokens carrying the recipe id
// under the given action.
func recipeList(text, action string, recipes []*entity.Recipe) *Reply {
	rows := make([][]Button, 0, len(recipes)+1)
	for _, r := range recipes {
		rows = append(rows, row(btn(r.Name, action, r.ID.String())))
	}
	rows = append(rows, row(btn("🏠 Main menu", ActionMainMenu, "")))
	return &Reply{Text: text, Buttons: rows}
}

func unitsKeyboard(text string) *Reply {
	rows := make([][]Button, 0, len(Units)/2+1)
	for i := 0; i < len(Units); i += 2 {
		r := row(btn(Units[i], ActionUnit, Units[i]))
		if i+1 < len(Units) {
			r = append(r, btn(Units[i+1], ActionUnit, Units[i+1]))
		}
		rows = append(rows, r)
	}
	rows = append(rows, row(btn("❌ Cancel", ActionCancel, "")))
	return &Reply{Text: text, Buttons: rows}
}

// categoryPicker renders existing categories plus the "new category"
// escape hatch used inside the recipe wizard.
func categoryPicker(text string, categories []*entity.Category, withNew bool) *Reply {
	rows := make([][]Button, 0, len(categories)+2)
	for _, c := range categories {
		rows = append(rows, row(btn(c.Name, ActionIngredientCategory, c.ID.String())))
	}
	if withNew {
		rows = append(rows, row(btn("➕ New category", ActionNewCategory, "")))
	}
	rows = append(rows, row(btn("❌ Cancel", ActionCancel, "")))
	return &Reply{Text: text, Buttons: rows}
}

// adhocCategoryPicker renders category names as free-text labels; the
// token carries the name, not an id, because ad-hoc entries never hold a
// category reference.
func adhocCategoryPicker(text string, categories []*entity.Category) *Reply {
	rows := make([][]Button, 0, len(categories)+1)
	for _, c := range categories {
		rows = append(rows, row(btn(c.Name, ActionAdHocCategory, c.Name)))
	}
	rows = append(rows, row(btn("❌ Cancel", ActionCancel, "")))
	return &Reply{Text: text, Buttons: rows}
}

func ingredientActions(text string) *Reply {
	return &Reply{
		Text: text,
		Buttons: [][]Button{
			row(btn("➕ Add more ingredient", ActionAddIngredient, "")),
			row(btn("✅ Finish recipe", ActionFinishRecipe, "")),
			row(btn("❌ Cancel", ActionCancel, "")),
		},
	}
}

func adhocActions(text string) *Reply {
	return &Reply{
		Text: text,
		Buttons: [][]Button{
			row(btn("➕ Add more product", ActionAdHocMore, "")),
			row(btn("🛒 To shopping list", ActionShoppingMenu, "")),
			row(btn("🏠 Main menu", ActionMainMenu, "")),
		},
	}
}

// confirmation renders a yes/no keyboard; yes carries the destructive
// token, no falls back to the given screen.
func confirmation(text, confirmAction, confirmArg, cancelAction string) *Reply {
	return &Reply{
		Text: text,
		Buttons: [][]Button{
			row(
				btn("✅ Yes", confirmAction, confirmArg),
				btn("❌ No", cancelAction, ""),
			),
		},
	}
}

// selectionKeyboard renders the queued recipes with per-row step buttons.
func selectionKeyboard(entries []*entity.SelectionWithRecipe) *Reply {
	rows := make([][]Button, 0, len(entries)+3)
	for _, e := range entries {
		label := e.Recipe.Name
		if e.Entry.Count > 1 {
			label = fmt.Sprintf("%s x%d", e.Recipe.Name, e.Entry.Count)
		}
		rows = append(rows, row(
			btn("➖", ActionRemoveSelected, e.Entry.RecipeID.String()),
			btn(label, ActionViewRecipe, e.Entry.RecipeID.String()),
			btn("➕", ActionAddSelected, e.Entry.RecipeID.String()),
		))
	}
	if len(entries) > 0 {
		rows = append(rows,
			row(btn("✅ Create shopping list", ActionCreateList, "")),
			row(btn("🔄 Clear selection", ActionClearSelection, "")),
		)
	}
	rows = append(rows, row(btn("🏠 Main menu", ActionMainMenu, "")))
	return &Reply{Text: "Selected recipes", Buttons: rows}
}

// shoppingGroup collects one category's text lines and button rows.
type shoppingGroup struct {
	name  string
	lines []string
	rows  [][]Button
}

// shoppingListScreen renders the list grouped by category. Persisted
// rows arrive in category display order and define the group order;
// ad-hoc entries merge into the group matching their category label, or
// open a new group at the end.
func shoppingListScreen(items []*entity.ShoppingItemWithProduct, adhoc []*entity.AdHocItem) *Reply {
	if len(items) == 0 && len(adhoc) == 0 {
		return &Reply{
			Text: "The shopping list is empty",
			Buttons: [][]Button{
				row(btn("🧾 Compose menu", ActionComposeMenu, "")),
				row(btn("🏠 Main menu", ActionMainMenu, "")),
			},
		}
	}

	groups := make([]*shoppingGroup, 0, len(items)+len(adhoc))
	byName := make(map[string]*shoppingGroup)
	group := func(name string) *shoppingGroup {
		if name == "" {
			name = "Other"
		}
		if g, ok := byName[name]; ok {
			return g
		}
		g := &shoppingGroup{name: name}
		byName[name] = g
		groups = append(groups, g)
		return g
	}

	for _, it := range items {
		categoryName := ""
		if it.Category != nil {
			categoryName = it.Category.Name
		}
		g := group(categoryName)
		status := "⭕"
		label := fmt.Sprintf("%s: %s %s", it.Product.Name, it.Item.Quantity.String(), it.Item.Unit)
		if it.Item.IsBought {
			status = "✅"
			label = "✅ " + label
		}
		g.lines = append(g.lines, fmt.Sprintf("%s %s - %s %s", status, it.Product.Name, it.Item.Quantity.String(), it.Item.Unit))
		g.rows = append(g.rows, row(
			btn(label, ActionToggleItem, it.Item.ID.String()),
			btn("🗑", ActionDeleteItem, it.Item.ID.String()),
		))
	}
	for _, it := range adhoc {
		g := group(it.Category)
		status := "⭕"
		label := fmt.Sprintf("%s: %s %s", it.Name, it.Quantity.String(), it.Unit)
		if it.IsBought {
			status = "✅"
			label = "✅ " + label
		}
		g.lines = append(g.lines, fmt.Sprintf("%s %s - %s %s 🛍️", status, it.Name, it.Quantity.String(), it.Unit))
		g.rows = append(g.rows, row(
			btn(label, ActionToggleAdHoc, it.ID.String()),
			btn("🗑", ActionDeleteAdHoc, it.ID.String()),
		))
	}

	var text strings.Builder
	text.WriteString("🛒 Shopping list:\n")
	rows := make([][]Button, 0, len(items)+len(adhoc)+3)
	for _, g := range groups {
		text.WriteString("\n📦 " + g.name + ":\n")
		for _, line := range g.lines {
			text.WriteString(line + "\n")
		}
		rows = append(rows, g.rows...)
	}

	rows = append(rows,
		row(
			btn("🍽️ Add recipe", ActionAppendRecipe, ""),
			btn("🛍️ Add products", ActionAddAdHoc, ""),
		),
		row(btn("🏁 Finish shopping", ActionFinishShopping, "")),
		row(btn("🏠 Main menu", ActionMainMenu, "")),
	)
	return &Reply{Text: text.String(), Buttons: rows}
}

// composeScreen renders the recipe list for menu composition, with the
// selection management rows when anything is queued.
func composeScreen(recipes []*entity.Recipe, hasSelection bool) *Reply {
	rows := make([][]Button, 0, len(recipes)+4)
	for _, r := range recipes {
		rows = append(rows, row(btn(r.Name, ActionSelectRecipe, r.ID.String())))
	}
	if hasSelection {
		rows = append(rows,
			row(btn("📋 Manage selected", ActionManageSelected, "")),
			row(btn("✅ Create shopping list", ActionCreateList, "")),
			row(btn("🔄 Clear selection", ActionClearSelection, "")),
		)
	}
	rows = append(rows, row(btn("🏠 Main menu", ActionMainMenu, "")))
	return &Reply{Text: "Pick recipes for the menu", Buttons: rows}
}

// productList renders one button per product, grouped as delivered.
func productList(text string, products []*entity.ProductWithCategory) *Reply {
	rows := make([][]Button, 0, len(products)+2)
	for _, p := range products {
		label := p.Product.Name
		if p.Category != nil {
			label = fmt.Sprintf("%s (%s)", p.Product.Name, p.Category.Name)
		}
		rows = append(rows, row(btn(label, ActionViewProduct, p.Product.ID.String())))
	}
	rows = append(rows,
		row(btn("◀️ Back", ActionSavedMenu, "")),
		row(btn("🏠 Main menu", ActionMainMenu, "")),
	)
	return &Reply{Text: text, Buttons: rows}
}

// categoryList renders categories under the given action, ordered as given.
func categoryList(text, action string, categories []*entity.Category) *Reply {
	rows := make([][]Button, 0, len(categories)+1)
	for _, c := range categories {
		label := fmt.Sprintf("%d. %s", c.DisplayOrder, c.Name)
		if action == ActionDeleteCategory {
			label = c.Name
		}
		rows = append(rows, row(btn(label, action, c.ID.String())))
	}
	rows = append(rows, row(btn("🏠 Main menu", ActionMainMenu, "")))
	return &Reply{Text: text, Buttons: rows}
}
