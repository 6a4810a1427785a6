package conversation

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/pantry-bot/backend/internal/domain/entity"
	domainerror "github.com/pantry-bot/backend/internal/domain/error"
)

// memStore holds all catalog, recipe and shopping state for handler
// tests, implementing every repository adapter over plain maps.
type memStore struct {
	mu         sync.Mutex
	categories map[uuid.UUID]*entity.Category
	products   map[uuid.UUID]*entity.Product
	recipes    map[uuid.UUID]*entity.RecipeWithLines
	selections []*entity.SelectionEntry
	shopping   []*entity.ShoppingItem
}

func newMemStore() *memStore {
	return &memStore{
		categories: make(map[uuid.UUID]*entity.Category),
		products:   make(map[uuid.UUID]*entity.Product),
		recipes:    make(map[uuid.UUID]*entity.RecipeWithLines),
	}
}

type memCategoryRepo struct{ s *memStore }

func (r memCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	r.s.categories[c.ID] = c
	return nil
}

func (r memCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	c, ok := r.s.categories[id]
	if !ok {
		return nil, domainerror.ErrCategoryNotFound
	}
	return c, nil
}

func (r memCategoryRepo) FindByName(_ context.Context, name string) (*entity.Category, error) {
	for _, c := range r.s.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, nil
}

func (r memCategoryRepo) FindAll(_ context.Context) ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(r.s.categories))
	for _, c := range r.s.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DisplayOrder < out[j].DisplayOrder })
	return out, nil
}

func (r memCategoryRepo) Update(_ context.Context, c *entity.Category) error {
	r.s.categories[c.ID] = c
	return nil
}

func (r memCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.s.categories, id)
	return nil
}

func (r memCategoryRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.s.categories)), nil
}

func (r memCategoryRepo) CountProducts(_ context.Context, categoryID uuid.UUID) (int64, error) {
	var n int64
	for _, p := range r.s.products {
		if p.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

func (r memCategoryRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	c, _ := r.FindByName(ctx, name)
	return c != nil, nil
}

type memProductRepo struct{ s *memStore }

func (r memProductRepo) withCategory(p *entity.Product) *entity.ProductWithCategory {
	return &entity.ProductWithCategory{Product: p, Category: r.s.categories[p.CategoryID]}
}

func (r memProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.s.products[p.ID] = p
	return nil
}

func (r memProductRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.ProductWithCategory, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, domainerror.ErrProductNotFound
	}
	return r.withCategory(p), nil
}

func (r memProductRepo) FindByName(_ context.Context, name string) (*entity.ProductWithCategory, error) {
	for _, p := range r.s.products {
		if p.Name == name {
			return r.withCategory(p), nil
		}
	}
	return nil, nil
}

func (r memProductRepo) FindAll(_ context.Context) ([]*entity.ProductWithCategory, error) {
	out := make([]*entity.ProductWithCategory, 0, len(r.s.products))
	for _, p := range r.s.products {
		out = append(out, r.withCategory(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Product.Name < out[j].Product.Name })
	return out, nil
}

func (r memProductRepo) UpdateName(_ context.Context, id uuid.UUID, name string) error {
	p, ok := r.s.products[id]
	if !ok {
		return domainerror.ErrProductNotFound
	}
	p.Name = name
	return nil
}

func (r memProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.s.products, id)
	return nil
}

func (r memProductRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.s.products)), nil
}

func (r memProductRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	p, _ := r.FindByName(ctx, name)
	return p != nil, nil
}

type memRecipeRepo struct{ s *memStore }

func (r memRecipeRepo) resolve(lines []*entity.IngredientLine) []*entity.ResolvedLine {
	out := make([]*entity.ResolvedLine, 0, len(lines))
	for _, l := range lines {
		p := r.s.products[l.ProductID]
		out = append(out, &entity.ResolvedLine{
			Line:     l,
			Product:  p,
			Category: r.s.categories[p.CategoryID],
		})
	}
	return out
}

func (r memRecipeRepo) Create(_ context.Context, recipe *entity.Recipe, lines []*entity.IngredientLine) error {
	r.s.recipes[recipe.ID] = &entity.RecipeWithLines{Recipe: recipe, Lines: r.resolve(lines)}
	return nil
}

func (r memRecipeRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.RecipeWithLines, error) {
	rec, ok := r.s.recipes[id]
	if !ok {
		return nil, domainerror.ErrRecipeNotFound
	}
	return rec, nil
}

func (r memRecipeRepo) FindAll(_ context.Context, _ string) ([]*entity.Recipe, error) {
	out := make([]*entity.Recipe, 0, len(r.s.recipes))
	for _, rec := range r.s.recipes {
		out = append(out, rec.Recipe)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r memRecipeRepo) Replace(ctx context.Context, recipe *entity.Recipe, lines []*entity.IngredientLine) error {
	return r.Create(ctx, recipe, lines)
}

func (r memRecipeRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.s.recipes, id)
	kept := r.s.selections[:0]
	for _, e := range r.s.selections {
		if e.RecipeID != id {
			kept = append(kept, e)
		}
	}
	r.s.selections = kept
	return nil
}

func (r memRecipeRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.s.recipes)), nil
}

func (r memRecipeRepo) CountUsingProduct(_ context.Context, productID uuid.UUID) (int64, error) {
	var n int64
	for _, rec := range r.s.recipes {
		for _, l := range rec.Lines {
			if l.Line.ProductID == productID {
				n++
			}
		}
	}
	return n, nil
}

func (r memRecipeRepo) FindUsingProduct(_ context.Context, productID uuid.UUID) ([]*entity.Recipe, error) {
	out := make([]*entity.Recipe, 0)
	for _, rec := range r.s.recipes {
		for _, l := range rec.Lines {
			if l.Line.ProductID == productID {
				out = append(out, rec.Recipe)
				break
			}
		}
	}
	return out, nil
}

type memSelectionRepo struct{ s *memStore }

func (r memSelectionRepo) FindByUser(_ context.Context, userID string) ([]*entity.SelectionWithRecipe, error) {
	out := make([]*entity.SelectionWithRecipe, 0)
	for _, e := range r.s.selections {
		if e.UserID == userID {
			out = append(out, &entity.SelectionWithRecipe{Entry: e, Recipe: r.s.recipes[e.RecipeID].Recipe})
		}
	}
	return out, nil
}

func (r memSelectionRepo) FindByUserAndRecipe(_ context.Context, userID string, recipeID uuid.UUID) (*entity.SelectionEntry, error) {
	for _, e := range r.s.selections {
		if e.UserID == userID && e.RecipeID == recipeID {
			return e, nil
		}
	}
	return nil, nil
}

func (r memSelectionRepo) Create(_ context.Context, entry *entity.SelectionEntry) error {
	r.s.selections = append(r.s.selections, entry)
	return nil
}

func (r memSelectionRepo) UpdateCount(_ context.Context, id uuid.UUID, count int) error {
	for _, e := range r.s.selections {
		if e.ID == id {
			e.Count = count
		}
	}
	return nil
}

func (r memSelectionRepo) Delete(_ context.Context, id uuid.UUID) error {
	kept := r.s.selections[:0]
	for _, e := range r.s.selections {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	r.s.selections = kept
	return nil
}

func (r memSelectionRepo) ClearByUser(_ context.Context, userID string) error {
	kept := r.s.selections[:0]
	for _, e := range r.s.selections {
		if e.UserID != userID {
			kept = append(kept, e)
		}
	}
	r.s.selections = kept
	return nil
}

type memShoppingRepo struct{ s *memStore }

func (r memShoppingRepo) FindByUser(_ context.Context, userID string) ([]*entity.ShoppingItemWithProduct, error) {
	out := make([]*entity.ShoppingItemWithProduct, 0)
	for _, it := range r.s.shopping {
		if it.UserID != userID {
			continue
		}
		p := r.s.products[it.ProductID]
		row := &entity.ShoppingItemWithProduct{Item: it, Product: p}
		if p != nil {
			row.Category = r.s.categories[p.CategoryID]
		}
		out = append(out, row)
	}
	return out, nil
}

func (r memShoppingRepo) FindByUserAndProductName(_ context.Context, userID, productName string) (*entity.ShoppingItem, error) {
	for _, it := range r.s.shopping {
		if it.UserID == userID {
			if p := r.s.products[it.ProductID]; p != nil && p.Name == productName {
				return it, nil
			}
		}
	}
	return nil, nil
}

func (r memShoppingRepo) Create(_ context.Context, item *entity.ShoppingItem) error {
	r.s.shopping = append(r.s.shopping, item)
	return nil
}

func (r memShoppingRepo) Update(_ context.Context, item *entity.ShoppingItem) error {
	for i, it := range r.s.shopping {
		if it.ID == item.ID {
			r.s.shopping[i] = item
		}
	}
	return nil
}

func (r memShoppingRepo) FindByIDAndUser(_ context.Context, id uuid.UUID, userID string) (*entity.ShoppingItem, error) {
	for _, it := range r.s.shopping {
		if it.ID == id && it.UserID == userID {
			return it, nil
		}
	}
	return nil, nil
}

func (r memShoppingRepo) Delete(_ context.Context, id uuid.UUID) error {
	kept := r.s.shopping[:0]
	for _, it := range r.s.shopping {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	r.s.shopping = kept
	return nil
}

func (r memShoppingRepo) ClearByUser(_ context.Context, userID string) error {
	kept := r.s.shopping[:0]
	for _, it := range r.s.shopping {
		if it.UserID != userID {
			kept = append(kept, it)
		}
	}
	r.s.shopping = kept
	return nil
}

func (r memShoppingRepo) CommitAggregation(ctx context.Context, userID string, items []*entity.ShoppingItem) error {
	if err := r.ClearByUser(ctx, userID); err != nil {
		return err
	}
	r.s.shopping = append(r.s.shopping, items...)
	return memSelectionRepo{r.s}.ClearByUser(ctx, userID)
}

// memSessionStore is an in-memory SessionStore.
type memSessionStore struct {
	mu       sync.Mutex
	sessions map[string]*entity.Session
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: make(map[string]*entity.Session)}
}

func (s *memSessionStore) Load(_ context.Context, userID string) (*entity.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if stored, ok := s.sessions[userID]; ok {
		clone := *stored
		return &clone, nil
	}
	return entity.NewSession(), nil
}

func (s *memSessionStore) Save(_ context.Context, userID string, session *entity.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *session
	s.sessions[userID] = &clone
	return nil
}

func (s *memSessionStore) Clear(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
	return nil
}

// memAdHocRegistry is an in-memory AdHocRegistry.
type memAdHocRegistry struct {
	mu    sync.Mutex
	items map[string][]*entity.AdHocItem
}

func newMemAdHocRegistry() *memAdHocRegistry {
	return &memAdHocRegistry{items: make(map[string][]*entity.AdHocItem)}
}

func (r *memAdHocRegistry) List(userID string) []*entity.AdHocItem {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.items[userID]
}

func (r *memAdHocRegistry) Add(userID string, item *entity.AdHocItem) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[userID] = append(r.items[userID], item)
}

func (r *memAdHocRegistry) Toggle(userID string, id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range r.items[userID] {
		if it.ID == id {
			it.IsBought = !it.IsBought
			return true
		}
	}
	return false
}

func (r *memAdHocRegistry) Remove(userID string, id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.items[userID]
	for i, it := range list {
		if it.ID == id {
			r.items[userID] = append(list[:i], list[i+1:]...)
			return true
		}
	}
	return false
}

func (r *memAdHocRegistry) Clear(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, userID)
}
