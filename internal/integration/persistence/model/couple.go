// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/duobudget/backend/internal/domain/entity"
)

// CoupleModel represents the couples table in the database. Each user can
// appear in at most one row, in either column.
type CoupleModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	User1ID   uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	User2ID   uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"not null"`

	User1 *UserModel `gorm:"foreignKey:User1ID;references:ID"`
	User2 *UserModel `gorm:"foreignKey:User2ID;references:ID"`
}

// TableName returns the table name for the CoupleModel.
func (CoupleModel) TableName() string {
	return "couples"
}

// ToEntity converts a CoupleModel to a domain Couple entity.
func (m *CoupleModel) ToEntity() *entity.Couple {
	return &entity.Couple{
		ID:        m.ID,
		User1ID:   m.User1ID,
		User2ID:   m.User2ID,
		CreatedAt: m.CreatedAt,
	}
}

// CoupleFromEntity creates a CoupleModel from a domain Couple entity.
func CoupleFromEntity(couple *entity.Couple) *CoupleModel {
	return &CoupleModel{
		ID:        couple.ID,
		User1ID:   couple.User1ID,
		User2ID:   couple.User2ID,
		CreatedAt: couple.CreatedAt,
	}
}
