package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/duobudget/backend/internal/domain/entity"
)

// SuggestionRepository defines the interface for AI category suggestion persistence.
type SuggestionRepository interface {
	// CreateBatch stores a batch of pending suggestions.
	CreateBatch(ctx context.Context, suggestions []*entity.CategorySuggestion) error

	// FindByID retrieves a suggestion by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CategorySuggestion, error)

	// FindPendingByCouple retrieves all pending suggestions for a couple.
	FindPendingByCouple(ctx context.Context, coupleID uuid.UUID) ([]*entity.CategorySuggestion, error)

	// UpdateStatus transitions a suggestion to approved or rejected.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.SuggestionStatus) error
}
