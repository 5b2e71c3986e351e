// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/duobudget/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey"`
	CoupleID    uuid.UUID        `gorm:"type:uuid;not null;index"`
	Date        time.Time        `gorm:"type:date;not null;index"`
	Label       string           `gorm:"type:varchar(255);not null"`
	Amount      decimal.Decimal  `gorm:"type:decimal(15,2);not null"`
	Type        string           `gorm:"type:varchar(20);not null;index"`
	Category    string           `gorm:"type:varchar(100);index"`
	Ratio       *decimal.Decimal `gorm:"type:decimal(5,4)"`
	PayerUserID uuid.UUID        `gorm:"type:uuid;not null;index"`
	IsRecurring bool             `gorm:"default:false"`
	CreatedAt   time.Time        `gorm:"not null"`
	UpdatedAt   time.Time        `gorm:"not null"`
	DeletedAt   gorm.DeletedAt   `gorm:"index"` // Soft-delete support

	// Relationships (not loaded by default, use Preload)
	Couple *CoupleModel `gorm:"foreignKey:CoupleID;references:ID"`
	Payer  *UserModel   `gorm:"foreignKey:PayerUserID;references:ID"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Transaction{
		ID:          m.ID,
		CoupleID:    m.CoupleID,
		Date:        m.Date,
		Label:       m.Label,
		Amount:      m.Amount,
		Type:        entity.TransactionType(m.Type),
		Category:    m.Category,
		Ratio:       m.Ratio,
		PayerUserID: m.PayerUserID,
		IsRecurring: m.IsRecurring,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		DeletedAt:   deletedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	var deletedAt gorm.DeletedAt
	if transaction.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *transaction.DeletedAt, Valid: true}
	}

	return &TransactionModel{
		ID:          transaction.ID,
		CoupleID:    transaction.CoupleID,
		Date:        transaction.Date,
		Label:       transaction.Label,
		Amount:      transaction.Amount,
		Type:        string(transaction.Type),
		Category:    transaction.Category,
		Ratio:       transaction.Ratio,
		PayerUserID: transaction.PayerUserID,
		IsRecurring: transaction.IsRecurring,
		CreatedAt:   transaction.CreatedAt,
		UpdatedAt:   transaction.UpdatedAt,
		DeletedAt:   deletedAt,
	}
}
