package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/duobudget/backend/internal/domain/entity"
)

// CoupleRepository defines the interface for couple persistence operations.
type CoupleRepository interface {
	// Create creates a new couple in the database.
	Create(ctx context.Context, couple *entity.Couple) error

	// FindByID retrieves a couple by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Couple, error)

	// FindByUserID retrieves the couple a user belongs to, if any.
	// Returns domain ErrCoupleNotFound when the user has no couple.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Couple, error)

	// ExistsForUser checks whether the user already belongs to a couple.
	ExistsForUser(ctx context.Context, userID uuid.UUID) (bool, error)
}
