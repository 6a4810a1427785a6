package catalog

import (
	"context"
	"testing"

	"github.com/pantry-bot/backend/internal/domain/entity"
)

func TestFindOrCreateProductUseCase_Execute(t *testing.T) {
	t.Run("reuses an existing product and keeps its category", func(t *testing.T) {
		categories := newFakeCategoryRepo()
		dairy := entity.NewCategory("Dairy", 1)
		categories.categories = append(categories.categories, dairy)

		products := &fakeProductRepo{}
		milk := entity.NewProduct("Milk", dairy.ID)
		products.products = append(products.products, &entity.ProductWithCategory{Product: milk, Category: dairy})

		uc := NewFindOrCreateProductUseCase(categories, products)
		out, err := uc.Execute(context.Background(), FindOrCreateProductInput{Name: "Milk", CategoryName: "Grocery"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if out.Created {
			t.Error("expected the existing product, not a new one")
		}
		if out.Product.Product.ID != milk.ID {
			t.Errorf("expected product %s, got %s", milk.ID, out.Product.Product.ID)
		}
		if out.Product.Category.Name != "Dairy" {
			t.Errorf("requested category must be ignored for an existing product, got %q", out.Product.Category.Name)
		}
	})

	t.Run("creates the product in an existing category", func(t *testing.T) {
		categories := newFakeCategoryRepo()
		grocery := entity.NewCategory("Grocery", 1)
		categories.categories = append(categories.categories, grocery)
		products := &fakeProductRepo{}

		uc := NewFindOrCreateProductUseCase(categories, products)
		out, err := uc.Execute(context.Background(), FindOrCreateProductInput{Name: " Flour ", CategoryName: "Grocery"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if !out.Created {
			t.Error("expected a new product")
		}
		if out.Product.Product.Name != "Flour" {
			t.Errorf("expected trimmed name Flour, got %q", out.Product.Product.Name)
		}
		if out.Product.Product.CategoryID != grocery.ID {
			t.Error("expected the product to land in the existing category")
		}
		if len(categories.categories) != 1 {
			t.Errorf("no category should be created, got %d", len(categories.categories))
		}
	})

	t.Run("creates the category when it is unknown", func(t *testing.T) {
		categories := newFakeCategoryRepo()
		categories.categories = append(categories.categories, entity.NewCategory("Grocery", 1))
		products := &fakeProductRepo{}

		uc := NewFindOrCreateProductUseCase(categories, products)
		out, err := uc.Execute(context.Background(), FindOrCreateProductInput{Name: "Batteries", CategoryName: "Household"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if out.Product.Category.Name != "Household" {
			t.Errorf("expected the new category Household, got %q", out.Product.Category.Name)
		}
		if out.Product.Category.DisplayOrder != 2 {
			t.Errorf("new category goes to the end of the display order, got %d", out.Product.Category.DisplayOrder)
		}
		if len(categories.categories) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(categories.categories))
		}
	})
}
