package shopping

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pantry-bot/backend/internal/application/adapter"
	"github.com/pantry-bot/backend/internal/domain/entity"
	domainerror "github.com/pantry-bot/backend/internal/domain/error"
)

// GenerateListInput represents the input for shopping list generation.
type GenerateListInput struct {
	UserID string
}

// GenerateListOutput reports what the generation produced.
type GenerateListOutput struct {
	Items       []*entity.ShoppingItem
	RecipeCount int
}

// GenerateListUseCase builds the user's shopping list from the queued
// recipes. Every ingredient line contributes quantity times the recipe's
// repeat count; contributions land in one row per (product, unit) pair,
// so the same product in different units stays on separate rows. The
// previous list is replaced and the selection is consumed in the same
// transaction.
type GenerateListUseCase struct {
	selectionRepo adapter.SelectionRepository
	recipeRepo    adapter.RecipeRepository
	shoppingRepo  adapter.ShoppingListRepository
}

// NewGenerateListUseCase creates a new GenerateListUseCase instance.
func NewGenerateListUseCase(
	selectionRepo adapter.SelectionRepository,
	recipeRepo adapter.RecipeRepository,
	shoppingRepo adapter.ShoppingListRepository,
) *GenerateListUseCase {
	return &GenerateListUseCase{
		selectionRepo: selectionRepo,
		recipeRepo:    recipeRepo,
		shoppingRepo:  shoppingRepo,
	}
}

type aggregationKey struct {
	productID uuid.UUID
	unit      string
}

// Execute generates the shopping list.
func (uc *GenerateListUseCase) Execute(ctx context.Context, input GenerateListInput) (*GenerateListOutput, error) {
	entries, err := uc.selectionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load selection: %w", err)
	}
	if len(entries) == 0 {
		return nil, domainerror.NewShoppingError(
			domainerror.ErrCodeNoRecipesSelected,
			"no recipes selected",
			domainerror.ErrNoRecipesSelected,
		)
	}

	totals := make(map[aggregationKey]decimal.Decimal)
	order := make([]aggregationKey, 0)

	for _, sel := range entries {
		rec, err := uc.recipeRepo.FindByID(ctx, sel.Entry.RecipeID)
		if err != nil {
			return nil, fmt.Errorf("failed to load recipe %s: %w", sel.Entry.RecipeID, err)
		}

		multiplier := decimal.NewFromInt(int64(sel.Entry.Count))
		for _, line := range rec.Lines {
			key := aggregationKey{productID: line.Product.ID, unit: line.Line.Unit}
			if _, seen := totals[key]; !seen {
				order = append(order, key)
			}
			totals[key] = totals[key].Add(line.Line.Quantity.Mul(multiplier))
		}
	}

	items := make([]*entity.ShoppingItem, 0, len(order))
	for _, key := range order {
		items = append(items, entity.NewShoppingItem(input.UserID, key.productID, totals[key], key.unit))
	}

	if err := uc.shoppingRepo.CommitAggregation(ctx, input.UserID, items); err != nil {
		return nil, fmt.Errorf("failed to commit shopping list: %w", err)
	}

	return &GenerateListOutput{
		Items:       items,
		RecipeCount: len(entries),
	}, nil
}
