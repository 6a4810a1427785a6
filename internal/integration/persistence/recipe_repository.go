package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pantry-bot/backend/internal/application/adapter"
	"github.com/pantry-bot/backend/internal/domain/entity"
	domainerror "github.com/pantry-bot/backend/internal/domain/error"
	"github.com/pantry-bot/backend/internal/integration/persistence/model"
)

// recipeRepository implements the adapter.RecipeRepository interface.
type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a new recipe repository instance.
func NewRecipeRepository(db *gorm.DB) adapter.RecipeRepository {
	return &recipeRepository{
		db: db,
	}
}

// Create creates a recipe together with its ingredient lines.
func (r *recipeRepository) Create(ctx context.Context, recipe *entity.Recipe, lines []*entity.IngredientLine) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model.RecipeFromEntity(recipe)).Error; err != nil {
			return err
		}
		for _, line := range lines {
			if err := tx.Create(model.IngredientLineFromEntity(line)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// FindByID retrieves a recipe with its lines, products and categories resolved.
func (r *recipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RecipeWithLines, error) {
	var recipeModel model.RecipeModel
	result := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Lines.Product").
		Preload("Lines.Product.Category").
		Where("id = ?", id).
		First(&recipeModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRecipeNotFound
		}
		return nil, result.Error
	}

	out := &entity.RecipeWithLines{Recipe: recipeModel.ToEntity()}
	for i := range recipeModel.Lines {
		lm := &recipeModel.Lines[i]
		resolved := &entity.ResolvedLine{Line: lm.ToEntity()}
		if lm.Product != nil {
			resolved.Product = lm.Product.ToEntity()
			if lm.Product.Category != nil {
				resolved.Category = lm.Product.Category.ToEntity()
			}
		}
		out.Lines = append(out.Lines, resolved)
	}
	return out, nil
}

// FindAll retrieves recipes ordered by name. An empty userID returns
// every recipe.
func (r *recipeRepository) FindAll(ctx context.Context, userID string) ([]*entity.Recipe, error) {
	query := r.db.WithContext(ctx).Order("name ASC")
	if userID != "" {
		query = query.Where("user_id = ?", userID)
	}

	var recipeModels []model.RecipeModel
	if err := query.Find(&recipeModels).Error; err != nil {
		return nil, err
	}

	recipes := make([]*entity.Recipe, len(recipeModels))
	for i, rm := range recipeModels {
		recipes[i] = rm.ToEntity()
	}
	return recipes, nil
}

// Replace renames a recipe and replaces its ingredient lines wholesale
// in one transaction.
func (r *recipeRepository) Replace(ctx context.Context, recipe *entity.Recipe, lines []*entity.IngredientLine) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(model.RecipeFromEntity(recipe)).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.IngredientLineModel{}, "recipe_id = ?", recipe.ID).Error; err != nil {
			return err
		}
		for _, line := range lines {
			if err := tx.Create(model.IngredientLineFromEntity(line)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes a recipe, its ingredient lines and any selection entries
// referencing it, in one transaction. Products are untouched.
func (r *recipeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.IngredientLineModel{}, "recipe_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.SelectionEntryModel{}, "recipe_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.RecipeModel{}, "id = ?", id).Error
	})
}

// Count returns the total number of recipes.
func (r *recipeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.RecipeModel{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// CountUsingProduct returns how many ingredient lines reference the product.
func (r *recipeRepository) CountUsingProduct(ctx context.Context, productID uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.IngredientLineModel{}).
		Where("product_id = ?", productID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// FindUsingProduct retrieves the distinct recipes referencing the product.
func (r *recipeRepository) FindUsingProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Recipe, error) {
	var recipeModels []model.RecipeModel
	result := r.db.WithContext(ctx).
		Distinct("recipes.*").
		Joins("JOIN ingredient_lines ON ingredient_lines.recipe_id = recipes.id").
		Where("ingredient_lines.product_id = ?", productID).
		Order("recipes.name ASC").
		Find(&recipeModels)
	if result.Error != nil {
		return nil, result.Error
	}

	recipes := make([]*entity.Recipe, len(recipeModels))
	for i, rm := range recipeModels {
		recipes[i] = rm.ToEntity()
	}
	return recipes, nil
}
