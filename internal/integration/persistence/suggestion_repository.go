// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/duobudget/backend/internal/application/adapter"
	"github.com/duobudget/backend/internal/domain/entity"
	domainerror "github.com/duobudget/backend/internal/domain/error"
	"github.com/duobudget/backend/internal/integration/persistence/model"
)

// suggestionRepository implements the adapter.SuggestionRepository interface.
type suggestionRepository struct {
	db *gorm.DB
}

// NewSuggestionRepository creates a new suggestion repository instance.
func NewSuggestionRepository(db *gorm.DB) adapter.SuggestionRepository {
	return &suggestionRepository{
		db: db,
	}
}

// CreateBatch stores a batch of pending suggestions atomically.
func (r *suggestionRepository) CreateBatch(ctx context.Context, suggestions []*entity.CategorySuggestion) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, suggestion := range suggestions {
			suggestionModel := model.CategorySuggestionFromEntity(suggestion)
			if err := tx.Create(suggestionModel).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// FindByID retrieves a suggestion by its ID.
func (r *suggestionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CategorySuggestion, error) {
	var suggestionModel model.CategorySuggestionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&suggestionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSuggestionNotFound
		}
		return nil, result.Error
	}
	return suggestionModel.ToEntity(), nil
}

// FindPendingByCouple retrieves all pending suggestions for a couple.
func (r *suggestionRepository) FindPendingByCouple(ctx context.Context, coupleID uuid.UUID) ([]*entity.CategorySuggestion, error) {
	var suggestionModels []model.CategorySuggestionModel
	result := r.db.WithContext(ctx).
		Where("couple_id = ? AND status = ?", coupleID, string(entity.SuggestionStatusPending)).
		Order("created_at ASC").
		Find(&suggestionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	suggestions := make([]*entity.CategorySuggestion, len(suggestionModels))
	for i, sm := range suggestionModels {
		suggestions[i] = sm.ToEntity()
	}
	return suggestions, nil
}

// UpdateStatus transitions a suggestion to approved or rejected.
func (r *suggestionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.SuggestionStatus) error {
	result := r.db.WithContext(ctx).
		Model(&model.CategorySuggestionModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrSuggestionNotFound
	}
	return nil
}
