package model

import (
	"github.com/google/uuid"

	"github.com/pantry-bot/backend/internal/domain/entity"
)

// SelectionEntryModel represents the selection_entries table in the database.
type SelectionEntryModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID   string    `gorm:"type:varchar(64);not null;index"`
	RecipeID uuid.UUID `gorm:"type:uuid;not null;index"`
	Count    int       `gorm:"not null;default:1"`

	Recipe *RecipeModel `gorm:"foreignKey:RecipeID"`
}

// TableName returns the table name for the SelectionEntryModel.
func (SelectionEntryModel) TableName() string {
	return "selection_entries"
}

// ToEntity converts a SelectionEntryModel to a domain SelectionEntry entity.
func (m *SelectionEntryModel) ToEntity() *entity.SelectionEntry {
	return &entity.SelectionEntry{
		ID:       m.ID,
		UserID:   m.UserID,
		RecipeID: m.RecipeID,
		Count:    m.Count,
	}
}

// SelectionEntryFromEntity creates a SelectionEntryModel from a domain entity.
func SelectionEntryFromEntity(entry *entity.SelectionEntry) *SelectionEntryModel {
	return &SelectionEntryModel{
		ID:       entry.ID,
		UserID:   entry.UserID,
		RecipeID: entry.RecipeID,
		Count:    entry.Count,
	}
}
