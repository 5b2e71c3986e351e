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

// coupleRepository implements the adapter.CoupleRepository interface.
type coupleRepository struct {
	db *gorm.DB
}

// NewCoupleRepository creates a new couple repository instance.
func NewCoupleRepository(db *gorm.DB) adapter.CoupleRepository {
	return &coupleRepository{
		db: db,
	}
}

// Create creates a new couple in the database.
func (r *coupleRepository) Create(ctx context.Context, couple *entity.Couple) error {
	coupleModel := model.CoupleFromEntity(couple)
	result := r.db.WithContext(ctx).Create(coupleModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a couple by its ID.
func (r *coupleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Couple, error) {
	var coupleModel model.CoupleModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&coupleModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCoupleNotFound
		}
		return nil, result.Error
	}
	return coupleModel.ToEntity(), nil
}

// FindByUserID retrieves the couple a user belongs to, in either column.
func (r *coupleRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Couple, error) {
	var coupleModel model.CoupleModel
	result := r.db.WithContext(ctx).
		Where("user1_id = ? OR user2_id = ?", userID, userID).
		First(&coupleModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCoupleNotFound
		}
		return nil, result.Error
	}
	return coupleModel.ToEntity(), nil
}

// ExistsForUser checks whether the user already belongs to a couple.
func (r *coupleRepository) ExistsForUser(ctx context.Context, userID uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.CoupleModel{}).
		Where("user1_id = ? OR user2_id = ?", userID, userID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
