package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pantry-bot/backend/internal/application/adapter"
	"github.com/pantry-bot/backend/internal/domain/entity"
	"github.com/pantry-bot/backend/internal/integration/persistence/model"
)

// shoppingListRepository implements the adapter.ShoppingListRepository interface.
type shoppingListRepository struct {
	db *gorm.DB
}

// NewShoppingListRepository creates a new shopping list repository instance.
func NewShoppingListRepository(db *gorm.DB) adapter.ShoppingListRepository {
	return &shoppingListRepository{
		db: db,
	}
}

// FindByUser retrieves the user's shopping rows with products and
// categories resolved, ordered by category display order then product name.
func (r *shoppingListRepository) FindByUser(ctx context.Context, userID string) ([]*entity.ShoppingItemWithProduct, error) {
	var itemModels []model.ShoppingItemModel
	result := r.db.WithContext(ctx).
		Preload("Product").
		Preload("Product.Category").
		Joins("JOIN products ON products.id = shopping_items.product_id").
		Joins("JOIN categories ON categories.id = products.category_id").
		Where("shopping_items.user_id = ?", userID).
		Order("categories.display_order ASC, products.name ASC").
		Find(&itemModels)
	if result.Error != nil {
		return nil, result.Error
	}

	items := make([]*entity.ShoppingItemWithProduct, len(itemModels))
	for i, im := range itemModels {
		item := &entity.ShoppingItemWithProduct{Item: im.ToEntity()}
		if im.Product != nil {
			item.Product = im.Product.ToEntity()
			if im.Product.Category != nil {
				item.Category = im.Product.Category.ToEntity()
			}
		}
		items[i] = item
	}
	return items, nil
}

// FindByUserAndProductName retrieves the first row whose product has the
// given name, or nil when absent. The unit is deliberately not part of
// the key.
func (r *shoppingListRepository) FindByUserAndProductName(ctx context.Context, userID, productName string) (*entity.ShoppingItem, error) {
	var itemModel model.ShoppingItemModel
	result := r.db.WithContext(ctx).
		Joins("JOIN products ON products.id = shopping_items.product_id").
		Where("shopping_items.user_id = ? AND products.name = ?", userID, productName).
		First(&itemModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return itemModel.ToEntity(), nil
}

// Create inserts a single shopping row.
func (r *shoppingListRepository) Create(ctx context.Context, item *entity.ShoppingItem) error {
	result := r.db.WithContext(ctx).Create(model.ShoppingItemFromEntity(item))
	return result.Error
}

// Update saves a modified row.
func (r *shoppingListRepository) Update(ctx context.Context, item *entity.ShoppingItem) error {
	result := r.db.WithContext(ctx).Save(model.ShoppingItemFromEntity(item))
	return result.Error
}

// FindByIDAndUser retrieves one row scoped to the user.
func (r *shoppingListRepository) FindByIDAndUser(ctx context.Context, id uuid.UUID, userID string) (*entity.ShoppingItem, error) {
	var itemModel model.ShoppingItemModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&itemModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return itemModel.ToEntity(), nil
}

// Delete removes one row.
func (r *shoppingListRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ShoppingItemModel{}, "id = ?", id)
	return result.Error
}

// ClearByUser removes every row for the user.
func (r *shoppingListRepository) ClearByUser(ctx context.Context, userID string) error {
	result := r.db.WithContext(ctx).Delete(&model.ShoppingItemModel{}, "user_id = ?", userID)
	return result.Error
}

// CommitAggregation atomically replaces the user's shopping list with the
// aggregated rows and clears the user's selection set.
func (r *shoppingListRepository) CommitAggregation(ctx context.Context, userID string, items []*entity.ShoppingItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.ShoppingItemModel{}, "user_id = ?", userID).Error; err != nil {
			return err
		}
		for _, item := range items {
			if err := tx.Create(model.ShoppingItemFromEntity(item)).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&model.SelectionEntryModel{}, "user_id = ?", userID).Error
	})
}
