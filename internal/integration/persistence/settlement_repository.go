// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/duobudget/backend/internal/application/adapter"
	"github.com/duobudget/backend/internal/domain/entity"
	domainerror "github.com/duobudget/backend/internal/domain/error"
	"github.com/duobudget/backend/internal/integration/persistence/model"
)

// settlementRepository implements the adapter.SettlementRepository interface.
type settlementRepository struct {
	db *gorm.DB
}

// NewSettlementRepository creates a new settlement repository instance.
func NewSettlementRepository(db *gorm.DB) adapter.SettlementRepository {
	return &settlementRepository{
		db: db,
	}
}

// Create appends a new settlement record.
func (r *settlementRepository) Create(ctx context.Context, settlement *entity.Settlement) error {
	settlementModel := model.SettlementFromEntity(settlement)
	result := r.db.WithContext(ctx).Create(settlementModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an active settlement by its ID. Voided settlements
// are soft-deleted, so gorm excludes them here.
func (r *settlementRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Settlement, error) {
	var settlementModel model.SettlementModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&settlementModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSettlementNotFound
		}
		return nil, result.Error
	}
	return settlementModel.ToEntity(), nil
}

// FindByCouple retrieves all active settlements for a couple, oldest first.
func (r *settlementRepository) FindByCouple(ctx context.Context, coupleID uuid.UUID) ([]*entity.Settlement, error) {
	var settlementModels []model.SettlementModel
	result := r.db.WithContext(ctx).
		Where("couple_id = ?", coupleID).
		Order("settled_at ASC").
		Find(&settlementModels)
	if result.Error != nil {
		return nil, result.Error
	}

	settlements := make([]*entity.Settlement, len(settlementModels))
	for i, sm := range settlementModels {
		settlements[i] = sm.ToEntity()
	}
	return settlements, nil
}

// Void soft-deletes a settlement so later balance computations exclude it.
func (r *settlementRepository) Void(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.SettlementModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrSettlementNotFound
	}
	return nil
}
