package conversation

import "strings"

// Token is a parsed button token. Tokens travel as opaque strings of the
// form "action" or "action:arg"; the arg is whatever the keyboard builder
// put there (an entity id, a unit, a category name).
type Token struct {
	Action string
	Arg    string
}

// ParseToken splits a raw token string at the first colon.
func ParseToken(raw string) Token {
	action, arg, _ := strings.Cut(raw, ":")
	return Token{Action: action, Arg: arg}
}

// String renders the token back into its wire form.
func (t Token) String() string {
	if t.Arg == "" {
		return t.Action
	}
	return t.Action + ":" + t.Arg
}

// Button token actions. Menu navigation first, then entity-scoped
// actions that carry an arg.
const (
	ActionMainMenu       = "main_menu"
	ActionComposeMenu    = "compose_menu"
	ActionShoppingMenu   = "shopping_menu"
	ActionRecipesMenu    = "recipes_menu"
	ActionCategoriesMenu = "categories_menu"
	ActionSavedMenu      = "saved_menu"
	ActionCancel         = "cancel"

	ActionAddRecipe    = "add_recipe"
	ActionEditRecipe   = "edit_recipe"
	ActionDeleteRecipe = "delete_recipe"
	ActionSelectRecipe = "select_recipe"

	ActionManageSelected = "manage_selected"
	ActionAddSelected    = "add_selected"
	ActionRemoveSelected = "remove_selected"
	ActionClearSelection = "clear_selection"
	ActionCreateList     = "create_shopping_list"
	ActionAppendRecipe   = "append_recipe"

	ActionSavedRecipes      = "saved_recipes"
	ActionSavedProducts     = "saved_products"
	ActionSavedCategories   = "saved_categories"
	ActionViewRecipe        = "view_recipe"
	ActionViewProduct       = "view_product"
	ActionRenameProduct     = "rename_product"
	ActionDeleteProduct     = "delete_product"
	ActionAddCategory       = "add_category"
	ActionListCategories    = "list_categories"
	ActionReorderCategories = "reorder_categories"
	ActionReorderCategory   = "reorder_category"
	ActionDeleteCategory    = "delete_category"

	ActionToggleItem      = "toggle_item"
	ActionDeleteItem      = "delete_item"
	ActionFinishShopping  = "finish_shopping"
	ActionAddAdHoc        = "add_adhoc"
	ActionToggleAdHoc     = "toggle_adhoc"
	ActionDeleteAdHoc     = "delete_adhoc"
	ActionClearAdHoc      = "clear_adhoc"
	ActionAdHocMore       = "adhoc_more"
	ActionAdHocCategory   = "adhoc_category"

	ActionUnit               = "unit"
	ActionIngredientCategory = "ingredient_category"
	ActionNewCategory        = "new_category"
	ActionAddIngredient      = "add_ingredient"
	ActionFinishRecipe       = "finish_recipe"

	ActionConfirmDeleteRecipe   = "confirm_delete_recipe"
	ActionConfirmDeleteProduct  = "confirm_delete_product"
	ActionConfirmDeleteCategory = "confirm_delete_category"
	ActionConfirmFinishShopping = "confirm_finish_shopping"
	ActionConfirmClearAdHoc     = "confirm_clear_adhoc"
)
