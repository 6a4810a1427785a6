package conversation

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pantry-bot/backend/internal/application/usecase/catalog"
	"github.com/pantry-bot/backend/internal/application/usecase/recipe"
	"github.com/pantry-bot/backend/internal/application/usecase/selection"
	"github.com/pantry-bot/backend/internal/application/usecase/shopping"
	"github.com/pantry-bot/backend/internal/domain/entity"
	domainerror "github.com/pantry-bot/backend/internal/domain/error"
)

// handleToken applies a button token. Entity-scoped tokens can go stale
// (the entity deleted since the keyboard was rendered); those alert
// without touching the session.
func (h *Handler) handleToken(ctx context.Context, userID string, session *entity.Session, tok Token) *Reply {
	switch tok.Action {
	case ActionMainMenu, ActionCancel:
		*session = *entity.NewSession()
		return h.mainMenuReply(ctx, userID)

	case ActionComposeMenu:
		return h.composeMenu(ctx, userID)

	case ActionShoppingMenu:
		return h.shoppingScreen(ctx, userID)

	case ActionRecipesMenu:
		return recipesMenu()

	case ActionCategoriesMenu:
		return categoriesMenu()

	case ActionSavedMenu:
		return h.savedScreen(ctx)

	case ActionAddRecipe:
		*session = *entity.NewSession()
		session.Step = entity.StepRecipeName
		return h.stepPrompt(session)

	case ActionEditRecipe:
		return h.editRecipe(ctx, session, tok.Arg)

	case ActionDeleteRecipe:
		return h.deleteRecipePrompt(ctx, tok.Arg)

	case ActionConfirmDeleteRecipe:
		return h.confirmDeleteRecipe(ctx, userID, session, tok.Arg)

	case ActionSelectRecipe:
		return h.selectRecipe(ctx, userID, session, tok.Arg)

	case ActionManageSelected:
		return h.selectionScreen(ctx, userID)

	case ActionAddSelected:
		return h.stepSelection(ctx, userID, session, tok.Arg, true)

	case ActionRemoveSelected:
		return h.stepSelection(ctx, userID, session, tok.Arg, false)

	case ActionClearSelection:
		if err := h.uc.ClearSelection.Execute(ctx, selection.ClearSelectionInput{UserID: userID}); err != nil {
			return h.internalError(ctx, userID, session, err)
		}
		return h.composeMenu(ctx, userID)

	case ActionCreateList:
		return h.createShoppingList(ctx, userID, session)

	case ActionAppendRecipe:
		return h.appendRecipe(ctx, userID, session, tok.Arg)

	case ActionSavedRecipes:
		return h.savedRecipes(ctx)

	case ActionViewRecipe:
		return h.viewRecipe(ctx, tok.Arg)

	case ActionSavedProducts:
		return h.savedProducts(ctx)

	case ActionViewProduct:
		return h.viewProduct(ctx, tok.Arg)

	case ActionRenameProduct:
		id, ok := parseID(tok.Arg)
		if !ok {
			return alert("This product is no longer available")
		}
		session.EditingProductID = &id
		session.Step = entity.StepProductRename
		return h.stepPrompt(session)

	case ActionDeleteProduct:
		return confirmation("Delete this product? It will disappear from every recipe and the shopping list.",
			ActionConfirmDeleteProduct, tok.Arg, ActionSavedProducts)

	case ActionConfirmDeleteProduct:
		return h.confirmDeleteProduct(ctx, userID, session, tok.Arg)

	case ActionSavedCategories, ActionListCategories:
		return h.categoriesList(ctx, userID, session)

	case ActionAddCategory:
		session.Step = entity.StepCategoryName
		return h.stepPrompt(session)

	case ActionReorderCategories:
		return h.reorderList(ctx, userID, session)

	case ActionReorderCategory:
		return h.reorderCategory(ctx, userID, session, tok.Arg)

	case ActionDeleteCategory:
		return confirmation("Delete this category?",
			ActionConfirmDeleteCategory, tok.Arg, ActionListCategories)

	case ActionConfirmDeleteCategory:
		return h.confirmDeleteCategory(ctx, userID, session, tok.Arg)

	case ActionToggleItem:
		return h.toggleItem(ctx, userID, session, tok.Arg)

	case ActionDeleteItem:
		return h.deleteItem(ctx, userID, session, tok.Arg)

	case ActionFinishShopping:
		return confirmation("Finish shopping and clear the list?",
			ActionConfirmFinishShopping, "", ActionShoppingMenu)

	case ActionConfirmFinishShopping:
		if err := h.uc.FinishShopping.Execute(ctx, shopping.FinishShoppingInput{UserID: userID}); err != nil {
			return h.internalError(ctx, userID, session, err)
		}
		reply := h.mainMenuReply(ctx, userID)
		reply.Text = "Shopping finished"
		return reply

	case ActionAddAdHoc, ActionAdHocMore:
		session.AdHocName = ""
		session.AdHocQuantity = decimal.Decimal{}
		session.AdHocUnit = ""
		session.Step = entity.StepAdHocName
		return h.stepPrompt(session)

	case ActionClearAdHoc:
		return confirmation("Clear every additional product?",
			ActionConfirmClearAdHoc, "", ActionShoppingMenu)

	case ActionConfirmClearAdHoc:
		h.adhoc.Clear(userID)
		return h.shoppingScreen(ctx, userID)

	case ActionUnit:
		return h.unitChosen(ctx, userID, session, tok.Arg)

	case ActionIngredientCategory:
		return h.ingredientCategoryChosen(ctx, userID, session, tok.Arg)

	case ActionNewCategory:
		if session.Step != entity.StepIngredientCategory {
			return alert("Nothing is waiting for a category")
		}
		session.Step = entity.StepCategoryName
		return h.stepPrompt(session)

	case ActionAdHocCategory:
		return h.adhocCategoryChosen(ctx, userID, session, tok.Arg)

	case ActionAddIngredient:
		session.Step = entity.StepIngredientName
		return h.stepPrompt(session)

	case ActionFinishRecipe:
		return h.finishRecipe(ctx, userID, session)

	default:
		return alert("Unknown action")
	}
}

func parseID(arg string) (uuid.UUID, bool) {
	id, err := uuid.Parse(arg)
	return id, err == nil
}

func (h *Handler) composeMenu(ctx context.Context, userID string) *Reply {
	list, err := h.uc.GetList.Execute(ctx, shopping.GetListInput{UserID: userID})
	if err == nil && (len(list.Items) > 0 || len(list.AdHocItems) > 0) {
		return &Reply{
			Text: "You already have an active shopping list. Finish it before composing a new menu.",
			Buttons: [][]Button{
				row(btn("🛒 Shopping menu", ActionShoppingMenu, "")),
				row(btn("🏠 Main menu", ActionMainMenu, "")),
			},
		}
	}

	recipes, err := h.uc.ListRecipes.Execute(ctx, recipe.ListRecipesInput{})
	if err != nil {
		h.logger.Error("failed to list recipes", "user_id", userID, "error", err)
		return alert("Could not load recipes")
	}
	sel, err := h.uc.ListSelection.Execute(ctx, selection.ListSelectionInput{UserID: userID})
	if err != nil {
		h.logger.Error("failed to list selection", "user_id", userID, "error", err)
		return alert("Could not load the selection")
	}
	return composeScreen(recipes.Recipes, len(sel.Entries) > 0)
}

func (h *Handler) shoppingScreen(ctx context.Context, userID string) *Reply {
	out, err := h.uc.GetList.Execute(ctx, shopping.GetListInput{UserID: userID})
	if err != nil {
		h.logger.Error("failed to load shopping list", "user_id", userID, "error", err)
		return alert("Could not load the shopping list")
	}
	return shoppingListScreen(out.Items, out.AdHocItems)
}

func (h *Handler) selectionScreen(ctx context.Context, userID string) *Reply {
	out, err := h.uc.ListSelection.Execute(ctx, selection.ListSelectionInput{UserID: userID})
	if err != nil {
		h.logger.Error("failed to list selection", "user_id", userID, "error", err)
		return alert("Could not load the selection")
	}
	return selectionKeyboard(out.Entries)
}

func (h *Handler) selectRecipe(ctx context.Context, userID string, session *entity.Session, arg string) *Reply {
	id, ok := parseID(arg)
	if !ok {
		return alert("This recipe is no longer available")
	}
	if _, err := h.uc.AddSelected.Execute(ctx, selection.AddRecipeInput{UserID: userID, RecipeID: id}); err != nil {
		if isDomainError(err) {
			return alert(err.Error())
		}
		return h.internalError(ctx, userID, session, err)
	}
	return h.composeMenu(ctx, userID)
}

func (h *Handler) stepSelection(ctx context.Context, userID string, session *entity.Session, arg string, up bool) *Reply {
	id, ok := parseID(arg)
	if !ok {
		return alert("This recipe is no longer available")
	}
	var err error
	if up {
		_, err = h.uc.AddSelected.Execute(ctx, selection.AddRecipeInput{UserID: userID, RecipeID: id})
	} else {
		_, err = h.uc.RemoveSelected.Execute(ctx, selection.RemoveRecipeInput{UserID: userID, RecipeID: id})
	}
	if err != nil {
		if isDomainError(err) {
			return alert(err.Error())
		}
		return h.internalError(ctx, userID, session, err)
	}
	return h.selectionScreen(ctx, userID)
}

func (h *Handler) createShoppingList(ctx context.Context, userID string, session *entity.Session) *Reply {
	_, err := h.uc.GenerateList.Execute(ctx, shopping.GenerateListInput{UserID: userID})
	if err != nil {
		if errors.Is(err, domainerror.ErrNoRecipesSelected) {
			return alert("Pick at least one recipe first")
		}
		if isDomainError(err) {
			return alert(err.Error())
		}
		return h.internalError(ctx, userID, session, err)
	}
	return h.shoppingScreen(ctx, userID)
}

func (h *Handler) appendRecipe(ctx context.Context, userID string, session *entity.Session, arg string) *Reply {
	if arg == "" {
		recipes, err := h.uc.ListRecipes.Execute(ctx, recipe.ListRecipesInput{})
		if err != nil {
			return h.internalError(ctx, userID, session, err)
		}
		return recipeList("Pick a recipe to add to the list", ActionAppendRecipe, recipes.Recipes)
	}
	id, ok := parseID(arg)
	if !ok {
		return alert("This recipe is no longer available")
	}
	if _, err := h.uc.AddRecipeToList.Execute(ctx, shopping.AddRecipeToListInput{UserID: userID, RecipeID: id}); err != nil {
		if isDomainError(err) {
			return alert(err.Error())
		}
		return h.internalError(ctx, userID, session, err)
	}
	return h.shoppingScreen(ctx, userID)
}

func (h *Handler) toggleItem(ctx context.Context, userID string, session *entity.Session, arg string) *Reply {
	id, ok := parseID(arg)
	if !ok {
		return alert("This item is no longer on the list")
	}
	if _, err := h.uc.ToggleItem.Execute(ctx, shopping.ToggleItemInput{UserID: userID, ItemID: id}); err == nil {
		return h.shoppingScreen(ctx, userID)
	} else if !isDomainError(err) {
		return h.internalError(ctx, userID, session, err)
	}
	if err := h.uc.ToggleAdHoc.Execute(ctx, shopping.ToggleAdHocItemInput{UserID: userID, ItemID: id}); err == nil {
		return h.shoppingScreen(ctx, userID)
	}
	return alert("This item is no longer on the list")
}

func (h *Handler) deleteItem(ctx context.Context, userID string, session *entity.Session, arg string) *Reply {
	id, ok := parseID(arg)
	if !ok {
		return alert("This item is no longer on the list")
	}
	if _, err := h.uc.DeleteItem.Execute(ctx, shopping.DeleteItemInput{UserID: userID, ItemID: id}); err == nil {
		return h.shoppingScreen(ctx, userID)
	} else if !isDomainError(err) {
		return h.internalError(ctx, userID, session, err)
	}
	if err := h.uc.DeleteAdHoc.Execute(ctx, shopping.DeleteAdHocItemInput{UserID: userID, ItemID: id}); err == nil {
		return h.shoppingScreen(ctx, userID)
	}
	return alert("This item is no longer on the list")
}

func (h *Handler) unitChosen(ctx context.Context, userID string, session *entity.Session, unit string) *Reply {
	if !IsKnownUnit(unit) {
		return alert("Unknown unit")
	}

	switch session.Step {
	case entity.StepIngredientUnit:
		session.CurrentUnit = unit
		existing, err := h.products.FindByName(ctx, session.CurrentName)
		if err != nil {
			return h.internalError(ctx, userID, session, err)
		}
		if existing != nil {
			// Known product: reuse its category, skip the picker.
			return completeIngredient(session, existing.Category.Name)
		}
		session.Step = entity.StepIngredientCategory
		categories, err := h.uc.ListCategories.Execute(ctx, catalog.ListCategoriesInput{})
		if err != nil {
			return h.internalError(ctx, userID, session, err)
		}
		return categoryPicker("Pick a category for "+session.CurrentName, plainCategories(categories.Categories), true)

	case entity.StepAdHocUnit:
		session.AdHocUnit = unit
		session.Step = entity.StepAdHocCategory
		categories, err := h.uc.ListCategories.Execute(ctx, catalog.ListCategoriesInput{})
		if err != nil {
			return h.internalError(ctx, userID, session, err)
		}
		return adhocCategoryPicker("Pick a category for "+session.AdHocName, plainCategories(categories.Categories))

	default:
		return alert("Nothing is waiting for a unit")
	}
}

func (h *Handler) ingredientCategoryChosen(ctx context.Context, userID string, session *entity.Session, arg string) *Reply {
	if session.Step != entity.StepIngredientCategory {
		return alert("Nothing is waiting for a category")
	}
	id, ok := parseID(arg)
	if !ok {
		return alert("This category is no longer available")
	}
	categories, err := h.uc.ListCategories.Execute(ctx, catalog.ListCategoriesInput{})
	if err != nil {
		return h.internalError(ctx, userID, session, err)
	}
	for _, c := range categories.Categories {
		if c.Category.ID == id {
			return completeIngredient(session, c.Category.Name)
		}
	}
	return alert("This category is no longer available")
}

func (h *Handler) adhocCategoryChosen(ctx context.Context, userID string, session *entity.Session, categoryName string) *Reply {
	if session.Step != entity.StepAdHocCategory {
		return alert("Nothing is waiting for a category")
	}
	if session.AdHocName == "" {
		return h.lostSession(ctx, userID, session)
	}

	out, err := h.uc.AddAdHoc.Execute(ctx, shopping.AddAdHocItemInput{
		UserID:   userID,
		Name:     session.AdHocName,
		Quantity: session.AdHocQuantity,
		Unit:     session.AdHocUnit,
		Category: categoryName,
	})
	if err != nil {
		if isDomainError(err) {
			return alert(err.Error())
		}
		return h.internalError(ctx, userID, session, err)
	}

	session.AdHocName = ""
	session.AdHocQuantity = decimal.Decimal{}
	session.AdHocUnit = ""
	session.Step = entity.StepIdle
	return adhocActions("Added " + out.Item.Name)
}

func (h *Handler) finishRecipe(ctx context.Context, userID string, session *entity.Session) *Reply {
	if session.RecipeName == "" {
		return h.lostSession(ctx, userID, session)
	}
	if len(session.Ingredients) == 0 {
		return alert("Add at least one ingredient first")
	}

	lines := make([]recipe.LineInput, 0, len(session.Ingredients))
	for _, d := range session.Ingredients {
		lines = append(lines, recipe.LineInput{
			ProductName:  d.ProductName,
			CategoryName: d.Category,
			Quantity:     d.Quantity,
			Unit:         d.Unit,
		})
	}

	var err error
	if session.EditingRecipeID != nil {
		_, err = h.uc.UpdateRecipe.Execute(ctx, recipe.UpdateRecipeInput{
			RecipeID: *session.EditingRecipeID,
			Name:     session.RecipeName,
			Lines:    lines,
		})
	} else {
		_, err = h.uc.CreateRecipe.Execute(ctx, recipe.CreateRecipeInput{
			Name:   session.RecipeName,
			UserID: userID,
			Lines:  lines,
		})
	}
	if err != nil {
		if isDomainError(err) {
			return alert(err.Error())
		}
		return h.internalError(ctx, userID, session, err)
	}

	name := session.RecipeName
	*session = *entity.NewSession()
	reply := recipesMenu()
	reply.Text = "Recipe \"" + name + "\" saved"
	return reply
}

func (h *Handler) editRecipe(ctx context.Context, session *entity.Session, arg string) *Reply {
	if arg == "" {
		recipes, err := h.uc.ListRecipes.Execute(ctx, recipe.ListRecipesInput{})
		if err != nil {
			return alert("Could not load recipes")
		}
		return recipeList("Pick a recipe to edit", ActionEditRecipe, recipes.Recipes)
	}

	id, ok := parseID(arg)
	if !ok {
		return alert("This recipe is no longer available")
	}
	out, err := h.uc.GetRecipe.Execute(ctx, recipe.GetRecipeInput{RecipeID: id})
	if err != nil {
		return alert("This recipe is no longer available")
	}

	*session = *entity.NewSession()
	session.EditingRecipeID = &id
	session.RecipeName = out.Recipe.Recipe.Name
	for _, line := range out.Recipe.Lines {
		draft := entity.IngredientDraft{
			ProductName: line.Product.Name,
			Quantity:    line.Line.Quantity,
			Unit:        line.Line.Unit,
		}
		if line.Category != nil {
			draft.Category = line.Category.Name
		}
		session.Ingredients = append(session.Ingredients, draft)
	}
	session.Step = entity.StepRecipeEditName
	return h.stepPrompt(session)
}

func (h *Handler) deleteRecipePrompt(ctx context.Context, arg string) *Reply {
	if arg == "" {
		recipes, err := h.uc.ListRecipes.Execute(ctx, recipe.ListRecipesInput{})
		if err != nil {
			return alert("Could not load recipes")
		}
		return recipeList("Pick a recipe to delete", ActionDeleteRecipe, recipes.Recipes)
	}
	return confirmation("Delete this recipe?", ActionConfirmDeleteRecipe, arg, ActionRecipesMenu)
}

func (h *Handler) confirmDeleteRecipe(ctx context.Context, userID string, session *entity.Session, arg string) *Reply {
	id, ok := parseID(arg)
	if !ok {
		return alert("This recipe is no longer available")
	}
	if _, err := h.uc.DeleteRecipe.Execute(ctx, recipe.DeleteRecipeInput{RecipeID: id}); err != nil {
		if isDomainError(err) {
			return alert(err.Error())
		}
		return h.internalError(ctx, userID, session, err)
	}
	reply := recipesMenu()
	reply.Text = "Recipe deleted"
	return reply
}

func (h *Handler) confirmDeleteProduct(ctx context.Context, userID string, session *entity.Session, arg string) *Reply {
	id, ok := parseID(arg)
	if !ok {
		return alert("This product is no longer available")
	}
	if _, err := h.uc.DeleteProduct.Execute(ctx, catalog.DeleteProductInput{ProductID: id}); err != nil {
		if isDomainError(err) {
			return alert(err.Error())
		}
		return h.internalError(ctx, userID, session, err)
	}
	return h.savedProducts(ctx)
}

func (h *Handler) confirmDeleteCategory(ctx context.Context, userID string, session *entity.Session, arg string) *Reply {
	id, ok := parseID(arg)
	if !ok {
		return alert("This category is no longer available")
	}
	if _, err := h.uc.DeleteCategory.Execute(ctx, catalog.DeleteCategoryInput{CategoryID: id}); err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotEmpty) {
			return alert("The category still has products in it")
		}
		if isDomainError(err) {
			return alert(err.Error())
		}
		return h.internalError(ctx, userID, session, err)
	}
	return h.categoriesList(ctx, userID, session)
}

func (h *Handler) categoriesList(ctx context.Context, userID string, session *entity.Session) *Reply {
	out, err := h.uc.ListCategories.Execute(ctx, catalog.ListCategoriesInput{WithCounts: true})
	if err != nil {
		return h.internalError(ctx, userID, session, err)
	}
	return categoryList("Categories (tap to delete an empty one)", ActionDeleteCategory, plainCategories(out.Categories))
}

func (h *Handler) reorderList(ctx context.Context, userID string, session *entity.Session) *Reply {
	out, err := h.uc.ListCategories.Execute(ctx, catalog.ListCategoriesInput{})
	if err != nil {
		return h.internalError(ctx, userID, session, err)
	}
	return categoryList("Tap a category to move it up", ActionReorderCategory, plainCategories(out.Categories))
}

// reorderCategory moves the category one position up by swapping display
// orders with its predecessor.
func (h *Handler) reorderCategory(ctx context.Context, userID string, session *entity.Session, arg string) *Reply {
	id, ok := parseID(arg)
	if !ok {
		return alert("This category is no longer available")
	}
	out, err := h.uc.ListCategories.Execute(ctx, catalog.ListCategoriesInput{})
	if err != nil {
		return h.internalError(ctx, userID, session, err)
	}

	categories := plainCategories(out.Categories)
	for i, c := range categories {
		if c.ID != id {
			continue
		}
		if i == 0 {
			return alert("Already at the top")
		}
		above := categories[i-1]
		if _, err := h.uc.ReorderCategory.Execute(ctx, catalog.ReorderCategoryInput{CategoryID: above.ID, NewOrder: c.DisplayOrder}); err != nil {
			return h.internalError(ctx, userID, session, err)
		}
		if _, err := h.uc.ReorderCategory.Execute(ctx, catalog.ReorderCategoryInput{CategoryID: c.ID, NewOrder: above.DisplayOrder}); err != nil {
			return h.internalError(ctx, userID, session, err)
		}
		return h.reorderList(ctx, userID, session)
	}
	return alert("This category is no longer available")
}

func plainCategories(withCounts []*entity.CategoryWithCount) []*entity.Category {
	out := make([]*entity.Category, len(withCounts))
	for i, c := range withCounts {
		out[i] = c.Category
	}
	return out
}
