package conversation

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/pantry-bot/backend/internal/application/usecase/catalog"
	"github.com/pantry-bot/backend/internal/domain/entity"
	domainerror "github.com/pantry-bot/backend/internal/domain/error"
)

// handleText applies typed input to the current wizard step. Invalid
// input never advances the step: the user just sees the prompt again.
func (h *Handler) handleText(ctx context.Context, userID string, session *entity.Session, text string) *Reply {
	switch session.Step {
	case entity.StepRecipeName, entity.StepRecipeEditName:
		name, ok := validName(text)
		if !ok {
			return h.stepPrompt(session)
		}
		session.RecipeName = name
		if session.Step == entity.StepRecipeEditName {
			session.Step = entity.StepIdle
			return ingredientActions(draftSummary(session))
		}
		session.Step = entity.StepIngredientName
		return h.stepPrompt(session)

	case entity.StepIngredientName:
		name, ok := validName(text)
		if !ok {
			return h.stepPrompt(session)
		}
		session.CurrentName = name
		session.Step = entity.StepIngredientQuantity
		return h.stepPrompt(session)

	case entity.StepIngredientQuantity:
		quantity, ok := parseQuantity(text)
		if !ok {
			return h.stepPrompt(session)
		}
		session.CurrentQuantity = quantity
		session.Step = entity.StepIngredientUnit
		return h.stepPrompt(session)

	case entity.StepCategoryName:
		name, ok := validName(text)
		if !ok {
			return h.stepPrompt(session)
		}
		if session.InRecipeWizard() {
			return completeIngredient(session, name)
		}
		_, err := h.uc.CreateCategory.Execute(ctx, catalog.CreateCategoryInput{Name: name})
		if err != nil {
			if errors.Is(err, domainerror.ErrCategoryNameExists) {
				return h.stepPrompt(session)
			}
			if isDomainError(err) {
				return alert(err.Error())
			}
			return h.internalError(ctx, userID, session, err)
		}
		session.Step = entity.StepIdle
		return categoriesMenu()

	case entity.StepAdHocName:
		name, ok := validName(text)
		if !ok {
			return h.stepPrompt(session)
		}
		session.AdHocName = name
		session.Step = entity.StepAdHocQuantity
		return h.stepPrompt(session)

	case entity.StepAdHocQuantity:
		quantity, ok := parseQuantity(text)
		if !ok {
			return h.stepPrompt(session)
		}
		session.AdHocQuantity = quantity
		session.Step = entity.StepAdHocUnit
		return h.stepPrompt(session)

	case entity.StepProductRename:
		name, ok := validName(text)
		if !ok {
			return h.stepPrompt(session)
		}
		if session.EditingProductID == nil {
			return h.lostSession(ctx, userID, session)
		}
		_, err := h.uc.RenameProduct.Execute(ctx, catalog.RenameProductInput{
			ProductID: *session.EditingProductID,
			NewName:   name,
		})
		if err != nil {
			if isDomainError(err) {
				return alert(err.Error())
			}
			return h.internalError(ctx, userID, session, err)
		}
		session.EditingProductID = nil
		session.Step = entity.StepIdle
		return h.savedProducts(ctx)

	default:
		// Typed text on a button-only step keeps the wizard where it is
		// and shows the step again.
		if session.Step != entity.StepIdle {
			return h.stepPrompt(session)
		}
		return h.mainMenuReply(ctx, userID)
	}
}

// stepPrompt renders the prompt for the session's current step. Re-used
// verbatim when invalid input leaves the step unchanged.
func (h *Handler) stepPrompt(session *entity.Session) *Reply {
	switch session.Step {
	case entity.StepRecipeName:
		return prompt("Enter the recipe name")
	case entity.StepRecipeEditName:
		return prompt("Enter the new recipe name (current: " + session.RecipeName + ")")
	case entity.StepIngredientName:
		return prompt("Enter the ingredient name")
	case entity.StepIngredientQuantity:
		return prompt("Enter the quantity for " + session.CurrentName)
	case entity.StepIngredientUnit:
		return unitsKeyboard("Pick a unit for " + session.CurrentName)
	case entity.StepCategoryName:
		return prompt("Enter the new category name")
	case entity.StepAdHocName:
		return prompt("Enter the product name")
	case entity.StepAdHocQuantity:
		return prompt("Enter the quantity for " + session.AdHocName)
	case entity.StepAdHocUnit:
		return unitsKeyboard("Pick a unit for " + session.AdHocName)
	case entity.StepProductRename:
		return prompt("Enter the new product name")
	default:
		return prompt("Enter text")
	}
}

// completeIngredient commits the pending line draft under the given
// category name and moves to the add-another/finish loop.
func completeIngredient(session *entity.Session, categoryName string) *Reply {
	session.Ingredients = append(session.Ingredients, entity.IngredientDraft{
		ProductName: session.CurrentName,
		Quantity:    session.CurrentQuantity,
		Unit:        session.CurrentUnit,
		Category:    categoryName,
	})
	session.CurrentName = ""
	session.CurrentQuantity = decimal.Decimal{}
	session.CurrentUnit = ""
	session.Step = entity.StepIdle
	return ingredientActions(draftSummary(session))
}
