package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Settlement records a real-world payment that cleared outstanding debt
// between the two partners. The amount is the couple's |netBalance| as
// snapshotted by the caller at creation time; the direction is the one
// implied then (net debtor paid net creditor). Settlements are immutable —
// a mistaken one is voided, never edited.
type Settlement struct {
	ID              uuid.UUID
	CoupleID        uuid.UUID
	Amount          decimal.Decimal
	Note            string
	SettledAt       time.Time
	CreatedByUserID uuid.UUID
	CreatedAt       time.Time
	DeletedAt       *time.Time // Voided settlements are soft-deleted
}

// NewSettlement creates a new Settlement entity timestamped now.
func NewSettlement(coupleID uuid.UUID, amount decimal.Decimal, note string, createdBy uuid.UUID) *Settlement {
	now := time.Now().UTC()
	return &Settlement{
		ID:              uuid.New(),
		CoupleID:        coupleID,
		Amount:          amount,
		Note:            note,
		SettledAt:       now,
		CreatedByUserID: createdBy,
		CreatedAt:       now,
	}
}
