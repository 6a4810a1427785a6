package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/pantry-bot/backend/internal/domain/entity"
	domainerror "github.com/pantry-bot/backend/internal/domain/error"
)

// fakeCategoryRepo is an in-memory CategoryRepository for tests.
type fakeCategoryRepo struct {
	categories    []*entity.Category
	productCounts map[uuid.UUID]int64
	deleted       []uuid.UUID
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{productCounts: make(map[uuid.UUID]int64)}
}

func (f *fakeCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	f.categories = append(f.categories, category)
	return nil
}

func (f *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	for _, c := range f.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, domainerror.ErrCategoryNotFound
}

func (f *fakeCategoryRepo) FindByName(_ context.Context, name string) (*entity.Category, error) {
	for _, c := range f.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) FindAll(_ context.Context) ([]*entity.Category, error) {
	return f.categories, nil
}

func (f *fakeCategoryRepo) Update(_ context.Context, category *entity.Category) error {
	for i, c := range f.categories {
		if c.ID == category.ID {
			f.categories[i] = category
		}
	}
	return nil
}

func (f *fakeCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	kept := f.categories[:0]
	for _, c := range f.categories {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	f.categories = kept
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeCategoryRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.categories)), nil
}

func (f *fakeCategoryRepo) CountProducts(_ context.Context, categoryID uuid.UUID) (int64, error) {
	return f.productCounts[categoryID], nil
}

func (f *fakeCategoryRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	c, err := f.FindByName(ctx, name)
	return c != nil, err
}

// fakeProductRepo is an in-memory ProductRepository for tests.
type fakeProductRepo struct {
	products []*entity.ProductWithCategory
}

func (f *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	f.products = append(f.products, &entity.ProductWithCategory{Product: product})
	return nil
}

func (f *fakeProductRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.ProductWithCategory, error) {
	for _, p := range f.products {
		if p.Product.ID == id {
			return p, nil
		}
	}
	return nil, domainerror.ErrProductNotFound
}

func (f *fakeProductRepo) FindByName(_ context.Context, name string) (*entity.ProductWithCategory, error) {
	for _, p := range f.products {
		if p.Product.Name == name {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) FindAll(_ context.Context) ([]*entity.ProductWithCategory, error) {
	return f.products, nil
}

func (f *fakeProductRepo) UpdateName(_ context.Context, id uuid.UUID, name string) error {
	for _, p := range f.products {
		if p.Product.ID == id {
			p.Product.Name = name
		}
	}
	return nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	kept := f.products[:0]
	for _, p := range f.products {
		if p.Product.ID != id {
			kept = append(kept, p)
		}
	}
	f.products = kept
	return nil
}

func (f *fakeProductRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.products)), nil
}

func (f *fakeProductRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	p, err := f.FindByName(ctx, name)
	return p != nil, err
}
