package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/duobudget/backend/internal/domain/entity"
)

// SettlementRepository defines the interface for settlement persistence operations.
// Settlements are append-only: they are created, listed, and voided
// (soft-deleted), never updated in place.
type SettlementRepository interface {
	// Create appends a new settlement record.
	Create(ctx context.Context, settlement *entity.Settlement) error

	// FindByID retrieves a settlement by its ID.
	// Returns domain ErrSettlementNotFound for unknown or voided ids.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Settlement, error)

	// FindByCouple retrieves all active (non-voided) settlements for a
	// couple, oldest first.
	FindByCouple(ctx context.Context, coupleID uuid.UUID) ([]*entity.Settlement, error)

	// Void soft-deletes a settlement so later balance computations exclude it.
	// Returns domain ErrSettlementNotFound when the id does not exist.
	Void(ctx context.Context, id uuid.UUID) error
}
