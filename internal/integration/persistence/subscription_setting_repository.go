// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/duobudget/backend/internal/application/adapter"
	"github.com/duobudget/backend/internal/domain/entity"
	domainerror "github.com/duobudget/backend/internal/domain/error"
	"github.com/duobudget/backend/internal/integration/persistence/model"
)

// subscriptionSettingRepository implements the adapter.SubscriptionSettingRepository interface.
type subscriptionSettingRepository struct {
	db *gorm.DB
}

// NewSubscriptionSettingRepository creates a new subscription setting repository instance.
func NewSubscriptionSettingRepository(db *gorm.DB) adapter.SubscriptionSettingRepository {
	return &subscriptionSettingRepository{
		db: db,
	}
}

// Upsert creates the setting or replaces the existing row for the same
// (couple, label, amount) key.
func (r *subscriptionSettingRepository) Upsert(ctx context.Context, setting *entity.SubscriptionSetting) error {
	settingModel := model.SubscriptionSettingFromEntity(setting)
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "couple_id"}, {Name: "label"}, {Name: "amount"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"is_shared":     settingModel.IsShared,
			"frequency":     settingModel.Frequency,
			"payer_user_id": settingModel.PayerUserID,
			"updated_at":    time.Now().UTC(),
		}),
	}).Create(settingModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByCouple retrieves all settings for a couple.
func (r *subscriptionSettingRepository) FindByCouple(ctx context.Context, coupleID uuid.UUID) ([]*entity.SubscriptionSetting, error) {
	var settingModels []model.SubscriptionSettingModel
	result := r.db.WithContext(ctx).
		Where("couple_id = ?", coupleID).
		Find(&settingModels)
	if result.Error != nil {
		return nil, result.Error
	}

	settings := make([]*entity.SubscriptionSetting, len(settingModels))
	for i, sm := range settingModels {
		settings[i] = sm.ToEntity()
	}
	return settings, nil
}

// FindByKey retrieves the setting for one (label, amount) key.
func (r *subscriptionSettingRepository) FindByKey(ctx context.Context, coupleID uuid.UUID, label string, amount decimal.Decimal) (*entity.SubscriptionSetting, error) {
	var settingModel model.SubscriptionSettingModel
	result := r.db.WithContext(ctx).
		Where("couple_id = ? AND label = ? AND amount = ?", coupleID, label, amount).
		First(&settingModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSubscriptionSettingNotFound
		}
		return nil, result.Error
	}
	return settingModel.ToEntity(), nil
}
