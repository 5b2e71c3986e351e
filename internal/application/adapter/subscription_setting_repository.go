package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/duobudget/backend/internal/domain/entity"
)

// SubscriptionSettingRepository defines the interface for per-(label, amount)
// recurring-charge overrides.
type SubscriptionSettingRepository interface {
	// Upsert creates the setting or replaces the existing one for the
	// same (couple, label, amount) key.
	Upsert(ctx context.Context, setting *entity.SubscriptionSetting) error

	// FindByCouple retrieves all settings for a couple.
	FindByCouple(ctx context.Context, coupleID uuid.UUID) ([]*entity.SubscriptionSetting, error)

	// FindByKey retrieves the setting for one (label, amount) key.
	// Returns domain ErrSubscriptionSettingNotFound when absent.
	FindByKey(ctx context.Context, coupleID uuid.UUID, label string, amount decimal.Decimal) (*entity.SubscriptionSetting, error)
}
