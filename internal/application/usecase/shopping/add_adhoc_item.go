package shopping

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/pantry-bot/backend/internal/application/adapter"
	"github.com/pantry-bot/backend/internal/domain/entity"
	domainerror "github.com/pantry-bot/backend/internal/domain/error"
)

// MinAdHocNameLength is the minimum trimmed length of an ad-hoc entry name.
const MinAdHocNameLength = 2

// AddAdHocItemInput represents the input for adding an ad-hoc entry.
type AddAdHocItemInput struct {
	UserID   string
	Name     string
	Quantity decimal.Decimal
	Unit     string
	Category string
}

// AddAdHocItemOutput represents the created ad-hoc entry.
type AddAdHocItemOutput struct {
	Item *entity.AdHocItem
}

// AddAdHocItemUseCase adds a one-off entry to the user's shopping view.
// The entry never touches the catalog or the persisted list.
type AddAdHocItemUseCase struct {
	adhoc adapter.AdHocRegistry
}

// NewAddAdHocItemUseCase creates a new AddAdHocItemUseCase instance.
func NewAddAdHocItemUseCase(adhoc adapter.AdHocRegistry) *AddAdHocItemUseCase {
	return &AddAdHocItemUseCase{
		adhoc: adhoc,
	}
}

// Execute adds the entry.
func (uc *AddAdHocItemUseCase) Execute(_ context.Context, input AddAdHocItemInput) (*AddAdHocItemOutput, error) {
	name := strings.TrimSpace(input.Name)

	if len([]rune(name)) < MinAdHocNameLength {
		return nil, domainerror.NewCatalogError(
			domainerror.ErrCodeProductNameTooShort,
			fmt.Sprintf("item name must be at least %d characters", MinAdHocNameLength),
			domainerror.ErrProductNameTooShort,
		)
	}

	if !input.Quantity.IsPositive() {
		return nil, domainerror.NewRecipeError(
			domainerror.ErrCodeInvalidQuantity,
			"quantity must be a positive number",
			domainerror.ErrInvalidQuantity,
		)
	}

	item := entity.NewAdHocItem(name, input.Quantity, input.Unit, strings.TrimSpace(input.Category))
	uc.adhoc.Add(input.UserID, item)

	return &AddAdHocItemOutput{Item: item}, nil
}
