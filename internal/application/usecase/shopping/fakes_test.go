package shopping

import (
	"context"

	"github.com/google/uuid"

	"github.com/pantry-bot/backend/internal/domain/entity"
	domainerror "github.com/pantry-bot/backend/internal/domain/error"
)

// fakeSelectionRepo is an in-memory SelectionRepository for tests.
type fakeSelectionRepo struct {
	entries []*entity.SelectionWithRecipe
	cleared bool
}

func (f *fakeSelectionRepo) FindByUser(_ context.Context, userID string) ([]*entity.SelectionWithRecipe, error) {
	out := make([]*entity.SelectionWithRecipe, 0)
	for _, e := range f.entries {
		if e.Entry.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeSelectionRepo) FindByUserAndRecipe(_ context.Context, userID string, recipeID uuid.UUID) (*entity.SelectionEntry, error) {
	for _, e := range f.entries {
		if e.Entry.UserID == userID && e.Entry.RecipeID == recipeID {
			return e.Entry, nil
		}
	}
	return nil, nil
}

func (f *fakeSelectionRepo) Create(_ context.Context, entry *entity.SelectionEntry) error {
	f.entries = append(f.entries, &entity.SelectionWithRecipe{Entry: entry})
	return nil
}

func (f *fakeSelectionRepo) UpdateCount(_ context.Context, id uuid.UUID, count int) error {
	for _, e := range f.entries {
		if e.Entry.ID == id {
			e.Entry.Count = count
		}
	}
	return nil
}

func (f *fakeSelectionRepo) Delete(_ context.Context, id uuid.UUID) error {
	kept := f.entries[:0]
	for _, e := range f.entries {
		if e.Entry.ID != id {
			kept = append(kept, e)
		}
	}
	f.entries = kept
	return nil
}

func (f *fakeSelectionRepo) ClearByUser(_ context.Context, userID string) error {
	f.cleared = true
	kept := f.entries[:0]
	for _, e := range f.entries {
		if e.Entry.UserID != userID {
			kept = append(kept, e)
		}
	}
	f.entries = kept
	return nil
}

// fakeRecipeRepo is an in-memory RecipeRepository for tests.
type fakeRecipeRepo struct {
	recipes map[uuid.UUID]*entity.RecipeWithLines
}

func newFakeRecipeRepo() *fakeRecipeRepo {
	return &fakeRecipeRepo{recipes: make(map[uuid.UUID]*entity.RecipeWithLines)}
}

func (f *fakeRecipeRepo) Create(_ context.Context, recipe *entity.Recipe, lines []*entity.IngredientLine) error {
	resolved := make([]*entity.ResolvedLine, 0, len(lines))
	for _, l := range lines {
		resolved = append(resolved, &entity.ResolvedLine{Line: l})
	}
	f.recipes[recipe.ID] = &entity.RecipeWithLines{Recipe: recipe, Lines: resolved}
	return nil
}

func (f *fakeRecipeRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.RecipeWithLines, error) {
	rec, ok := f.recipes[id]
	if !ok {
		return nil, domainerror.ErrRecipeNotFound
	}
	return rec, nil
}

func (f *fakeRecipeRepo) FindAll(_ context.Context, _ string) ([]*entity.Recipe, error) {
	out := make([]*entity.Recipe, 0, len(f.recipes))
	for _, r := range f.recipes {
		out = append(out, r.Recipe)
	}
	return out, nil
}

func (f *fakeRecipeRepo) Replace(_ context.Context, recipe *entity.Recipe, lines []*entity.IngredientLine) error {
	return f.Create(context.Background(), recipe, lines)
}

func (f *fakeRecipeRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.recipes, id)
	return nil
}

func (f *fakeRecipeRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.recipes)), nil
}

func (f *fakeRecipeRepo) CountUsingProduct(_ context.Context, productID uuid.UUID) (int64, error) {
	var n int64
	for _, r := range f.recipes {
		for _, l := range r.Lines {
			if l.Line.ProductID == productID {
				n++
			}
		}
	}
	return n, nil
}

func (f *fakeRecipeRepo) FindUsingProduct(_ context.Context, productID uuid.UUID) ([]*entity.Recipe, error) {
	out := make([]*entity.Recipe, 0)
	for _, r := range f.recipes {
		for _, l := range r.Lines {
			if l.Line.ProductID == productID {
				out = append(out, r.Recipe)
				break
			}
		}
	}
	return out, nil
}

// fakeShoppingRepo is an in-memory ShoppingListRepository for tests.
// productNames maps product ids to names for the name-keyed lookup.
type fakeShoppingRepo struct {
	items        []*entity.ShoppingItem
	productNames map[uuid.UUID]string
	committed    bool
	selections   *fakeSelectionRepo
}

func newFakeShoppingRepo(selections *fakeSelectionRepo) *fakeShoppingRepo {
	return &fakeShoppingRepo{
		productNames: make(map[uuid.UUID]string),
		selections:   selections,
	}
}

func (f *fakeShoppingRepo) FindByUser(_ context.Context, userID string) ([]*entity.ShoppingItemWithProduct, error) {
	out := make([]*entity.ShoppingItemWithProduct, 0)
	for _, it := range f.items {
		if it.UserID == userID {
			out = append(out, &entity.ShoppingItemWithProduct{
				Item:    it,
				Product: &entity.Product{ID: it.ProductID, Name: f.productNames[it.ProductID]},
			})
		}
	}
	return out, nil
}

func (f *fakeShoppingRepo) FindByUserAndProductName(_ context.Context, userID, productName string) (*entity.ShoppingItem, error) {
	for _, it := range f.items {
		if it.UserID == userID && f.productNames[it.ProductID] == productName {
			return it, nil
		}
	}
	return nil, nil
}

func (f *fakeShoppingRepo) Create(_ context.Context, item *entity.ShoppingItem) error {
	f.items = append(f.items, item)
	return nil
}

func (f *fakeShoppingRepo) Update(_ context.Context, item *entity.ShoppingItem) error {
	for i, it := range f.items {
		if it.ID == item.ID {
			f.items[i] = item
		}
	}
	return nil
}

func (f *fakeShoppingRepo) FindByIDAndUser(_ context.Context, id uuid.UUID, userID string) (*entity.ShoppingItem, error) {
	for _, it := range f.items {
		if it.ID == id && it.UserID == userID {
			return it, nil
		}
	}
	return nil, nil
}

func (f *fakeShoppingRepo) Delete(_ context.Context, id uuid.UUID) error {
	kept := f.items[:0]
	for _, it := range f.items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	f.items = kept
	return nil
}

func (f *fakeShoppingRepo) ClearByUser(_ context.Context, userID string) error {
	kept := f.items[:0]
	for _, it := range f.items {
		if it.UserID != userID {
			kept = append(kept, it)
		}
	}
	f.items = kept
	return nil
}

func (f *fakeShoppingRepo) CommitAggregation(ctx context.Context, userID string, items []*entity.ShoppingItem) error {
	if err := f.ClearByUser(ctx, userID); err != nil {
		return err
	}
	f.items = append(f.items, items...)
	f.committed = true
	return f.selections.ClearByUser(ctx, userID)
}

// fakeAdHocRegistry is an in-memory AdHocRegistry for tests.
type fakeAdHocRegistry struct {
	items map[string][]*entity.AdHocItem
}

func newFakeAdHocRegistry() *fakeAdHocRegistry {
	return &fakeAdHocRegistry{items: make(map[string][]*entity.AdHocItem)}
}

func (f *fakeAdHocRegistry) List(userID string) []*entity.AdHocItem {
	return f.items[userID]
}

func (f *fakeAdHocRegistry) Add(userID string, item *entity.AdHocItem) {
	f.items[userID] = append(f.items[userID], item)
}

func (f *fakeAdHocRegistry) Toggle(userID string, id uuid.UUID) bool {
	for _, it := range f.items[userID] {
		if it.ID == id {
			it.IsBought = !it.IsBought
			return true
		}
	}
	return false
}

func (f *fakeAdHocRegistry) Remove(userID string, id uuid.UUID) bool {
	list := f.items[userID]
	for i, it := range list {
		if it.ID == id {
			f.items[userID] = append(list[:i], list[i+1:]...)
			return true
		}
	}
	return false
}

func (f *fakeAdHocRegistry) Clear(userID string) {
	delete(f.items, userID)
}
