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

// selectionRepository implements the adapter.SelectionRepository interface.
type selectionRepository struct {
	db *gorm.DB
}

// NewSelectionRepository creates a new selection repository instance.
func NewSelectionRepository(db *gorm.DB) adapter.SelectionRepository {
	return &selectionRepository{
		db: db,
	}
}

// FindByUser retrieves the user's selection entries with recipes resolved.
func (r *selectionRepository) FindByUser(ctx context.Context, userID string) ([]*entity.SelectionWithRecipe, error) {
	var entryModels []model.SelectionEntryModel
	result := r.db.WithContext(ctx).
		Preload("Recipe").
		Joins("JOIN recipes ON recipes.id = selection_entries.recipe_id").
		Where("selection_entries.user_id = ?", userID).
		Order("recipes.name ASC").
		Find(&entryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*entity.SelectionWithRecipe, len(entryModels))
	for i, em := range entryModels {
		entry := &entity.SelectionWithRecipe{Entry: em.ToEntity()}
		if em.Recipe != nil {
			entry.Recipe = em.Recipe.ToEntity()
		}
		entries[i] = entry
	}
	return entries, nil
}

// FindByUserAndRecipe retrieves one entry, or nil when absent.
func (r *selectionRepository) FindByUserAndRecipe(ctx context.Context, userID string, recipeID uuid.UUID) (*entity.SelectionEntry, error) {
	var entryModel model.SelectionEntryModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		First(&entryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return entryModel.ToEntity(), nil
}

// Create inserts a new selection entry.
func (r *selectionRepository) Create(ctx context.Context, entry *entity.SelectionEntry) error {
	result := r.db.WithContext(ctx).Create(model.SelectionEntryFromEntity(entry))
	return result.Error
}

// UpdateCount sets the repeat count of an existing entry.
func (r *selectionRepository) UpdateCount(ctx context.Context, id uuid.UUID, count int) error {
	result := r.db.WithContext(ctx).
		Model(&model.SelectionEntryModel{}).
		Where("id = ?", id).
		Update("count", count)
	return result.Error
}

// Delete removes one selection entry.
func (r *selectionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.SelectionEntryModel{}, "id = ?", id)
	return result.Error
}

// ClearByUser removes every selection entry for the user.
func (r *selectionRepository) ClearByUser(ctx context.Context, userID string) error {
	result := r.db.WithContext(ctx).Delete(&model.SelectionEntryModel{}, "user_id = ?", userID)
	return result.Error
}
