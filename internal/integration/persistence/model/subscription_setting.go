// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/duobudget/backend/internal/domain/entity"
)

// SubscriptionSettingModel represents the subscription_settings table in
// the database. One row per (couple, label, amount) key.
type SubscriptionSettingModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CoupleID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_subscription_key"`
	Label       string          `gorm:"type:varchar(255);not null;uniqueIndex:idx_subscription_key"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null;uniqueIndex:idx_subscription_key"`
	IsShared    bool            `gorm:"default:false"`
	Frequency   string          `gorm:"type:varchar(20)"`
	PayerUserID uuid.UUID       `gorm:"type:uuid"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`

	Couple *CoupleModel `gorm:"foreignKey:CoupleID;references:ID"`
}

// TableName returns the table name for the SubscriptionSettingModel.
func (SubscriptionSettingModel) TableName() string {
	return "subscription_settings"
}

// ToEntity converts a SubscriptionSettingModel to a domain SubscriptionSetting entity.
func (m *SubscriptionSettingModel) ToEntity() *entity.SubscriptionSetting {
	return &entity.SubscriptionSetting{
		ID:          m.ID,
		CoupleID:    m.CoupleID,
		Label:       m.Label,
		Amount:      m.Amount,
		IsShared:    m.IsShared,
		Frequency:   entity.BillingFrequency(m.Frequency),
		PayerUserID: m.PayerUserID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// SubscriptionSettingFromEntity creates a SubscriptionSettingModel from a domain entity.
func SubscriptionSettingFromEntity(setting *entity.SubscriptionSetting) *SubscriptionSettingModel {
	return &SubscriptionSettingModel{
		ID:          setting.ID,
		CoupleID:    setting.CoupleID,
		Label:       setting.Label,
		Amount:      setting.Amount,
		IsShared:    setting.IsShared,
		Frequency:   string(setting.Frequency),
		PayerUserID: setting.PayerUserID,
		CreatedAt:   setting.CreatedAt,
		UpdatedAt:   setting.UpdatedAt,
	}
}
