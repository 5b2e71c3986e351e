// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/duobudget/backend/internal/domain/entity"
)

// SettlementModel represents the settlements table in the database.
// Settlement rows are append-only; voiding is a soft delete.
type SettlementModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CoupleID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount          decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Note            string          `gorm:"type:varchar(255)"`
	SettledAt       time.Time       `gorm:"not null"`
	CreatedByUserID uuid.UUID       `gorm:"type:uuid;not null"`
	CreatedAt       time.Time       `gorm:"not null"`
	DeletedAt       gorm.DeletedAt  `gorm:"index"`

	Couple *CoupleModel `gorm:"foreignKey:CoupleID;references:ID"`
}

// TableName returns the table name for the SettlementModel.
func (SettlementModel) TableName() string {
	return "settlements"
}

// ToEntity converts a SettlementModel to a domain Settlement entity.
func (m *SettlementModel) ToEntity() *entity.Settlement {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Settlement{
		ID:              m.ID,
		CoupleID:        m.CoupleID,
		Amount:          m.Amount,
		Note:            m.Note,
		SettledAt:       m.SettledAt,
		CreatedByUserID: m.CreatedByUserID,
		CreatedAt:       m.CreatedAt,
		DeletedAt:       deletedAt,
	}
}

// SettlementFromEntity creates a SettlementModel from a domain Settlement entity.
func SettlementFromEntity(settlement *entity.Settlement) *SettlementModel {
	var deletedAt gorm.DeletedAt
	if settlement.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *settlement.DeletedAt, Valid: true}
	}

	return &SettlementModel{
		ID:              settlement.ID,
		CoupleID:        settlement.CoupleID,
		Amount:          settlement.Amount,
		Note:            settlement.Note,
		SettledAt:       settlement.SettledAt,
		CreatedByUserID: settlement.CreatedByUserID,
		CreatedAt:       settlement.CreatedAt,
		DeletedAt:       deletedAt,
	}
}
