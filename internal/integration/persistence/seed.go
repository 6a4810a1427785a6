package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/pantry-bot/backend/internal/domain/entity"
	"github.com/pantry-bot/backend/internal/integration/persistence/model"
)

// SeedDefaultCategories inserts the default category set when the
// categories table is empty. An already populated catalog is left alone.
func SeedDefaultCategories(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&model.CategoryModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, name := range entity.DefaultCategories {
			category := entity.NewCategory(name, i+1)
			if err := tx.Create(model.CategoryFromEntity(category)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
