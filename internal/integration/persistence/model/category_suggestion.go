// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/duobudget/backend/internal/domain/entity"
)

// CategorySuggestionModel represents the category_suggestions table in
// the database.
type CategorySuggestionModel struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CoupleID      uuid.UUID      `gorm:"type:uuid;not null;index"`
	TransactionID uuid.UUID      `gorm:"type:uuid;not null;index"`
	Category      string         `gorm:"type:varchar(100);not null"`
	Alternatives  pq.StringArray `gorm:"type:text[]"`
	Confidence    float64        `gorm:"type:decimal(4,3)"`
	Status        string         `gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt     time.Time      `gorm:"not null"`
	UpdatedAt     time.Time      `gorm:"not null"`
	DeletedAt     gorm.DeletedAt `gorm:"index"`

	Transaction *TransactionModel `gorm:"foreignKey:TransactionID;references:ID"`
}

// TableName returns the table name for the CategorySuggestionModel.
func (CategorySuggestionModel) TableName() string {
	return "category_suggestions"
}

// ToEntity converts a CategorySuggestionModel to a domain CategorySuggestion entity.
func (m *CategorySuggestionModel) ToEntity() *entity.CategorySuggestion {
	return &entity.CategorySuggestion{
		ID:            m.ID,
		CoupleID:      m.CoupleID,
		TransactionID: m.TransactionID,
		Category:      m.Category,
		Alternatives:  []string(m.Alternatives),
		Confidence:    m.Confidence,
		Status:        entity.SuggestionStatus(m.Status),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// CategorySuggestionFromEntity creates a CategorySuggestionModel from a domain entity.
func CategorySuggestionFromEntity(suggestion *entity.CategorySuggestion) *CategorySuggestionModel {
	return &CategorySuggestionModel{
		ID:            suggestion.ID,
		CoupleID:      suggestion.CoupleID,
		TransactionID: suggestion.TransactionID,
		Category:      suggestion.Category,
		Alternatives:  pq.StringArray(suggestion.Alternatives),
		Confidence:    suggestion.Confidence,
		Status:        string(suggestion.Status),
		CreatedAt:     suggestion.CreatedAt,
		UpdatedAt:     suggestion.UpdatedAt,
	}
}
