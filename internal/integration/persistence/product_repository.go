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

// productRepository implements the adapter.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository instance.
func NewProductRepository(db *gorm.DB) adapter.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// Create creates a new product in the database.
func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productModel := model.ProductFromEntity(product)
	result := r.db.WithContext(ctx).Create(productModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a product with its category by ID.
func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ProductWithCategory, error) {
	var productModel model.ProductModel
	result := r.db.WithContext(ctx).Preload("Category").Where("id = ?", id).First(&productModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrProductNotFound
		}
		return nil, result.Error
	}
	return productModel.ToEntityWithCategory(), nil
}

// FindByName retrieves a product with its category by exact name, or nil
// when absent. The match is case-sensitive.
func (r *productRepository) FindByName(ctx context.Context, name string) (*entity.ProductWithCategory, error) {
	var productModel model.ProductModel
	result := r.db.WithContext(ctx).Preload("Category").Where("name = ?", name).First(&productModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return productModel.ToEntityWithCategory(), nil
}

// FindAll retrieves every product with its category, ordered by category
// display order then product name.
func (r *productRepository) FindAll(ctx context.Context) ([]*entity.ProductWithCategory, error) {
	var productModels []model.ProductModel
	result := r.db.WithContext(ctx).
		Preload("Category").
		Joins("JOIN categories ON categories.id = products.category_id").
		Order("categories.display_order ASC, products.name ASC").
		Find(&productModels)
	if result.Error != nil {
		return nil, result.Error
	}

	products := make([]*entity.ProductWithCategory, len(productModels))
	for i, pm := range productModels {
		products[i] = pm.ToEntityWithCategory()
	}
	return products, nil
}

// UpdateName renames a product in place.
func (r *productRepository) UpdateName(ctx context.Context, id uuid.UUID, name string) error {
	result := r.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Update("name", name)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrProductNotFound
	}
	return nil
}

// Delete removes a product together with its recipe ingredient lines and
// shopping list rows, in one transaction.
func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.IngredientLineModel{}, "product_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.ShoppingItemModel{}, "product_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.ProductModel{}, "id = ?", id).Error
	})
}

// Count returns the total number of products.
func (r *productRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.ProductModel{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// ExistsByName checks whether a product with the given name exists.
func (r *productRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("name = ?", name).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
