package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/duobudget/backend/internal/domain/entity"
)

// TransactionFilter defines filter options for listing transactions.
type TransactionFilter struct {
	CoupleID  uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Type      *entity.TransactionType
	Category  string
	Search    string // Case-insensitive label match
}

// TransactionPagination defines pagination options.
type TransactionPagination struct {
	Page  int
	Limit int
}

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByCouple retrieves all transactions for a couple, newest first.
	// This is the snapshot the harmonization and recurrence engines fold over.
	FindByCouple(ctx context.Context, coupleID uuid.UUID) ([]*entity.Transaction, error)

	// FindByFilter retrieves transactions based on filter criteria with pagination.
	FindByFilter(ctx context.Context, filter TransactionFilter, pagination TransactionPagination) (*entity.TransactionListResult, error)

	// FindUncategorizedByCouple retrieves transactions with no category set.
	FindUncategorizedByCouple(ctx context.Context, coupleID uuid.UUID, limit int) ([]*entity.Transaction, error)

	// Update updates an existing transaction in the database.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// UpdateCategory sets the category on a single transaction.
	UpdateCategory(ctx context.Context, id uuid.UUID, category string) error

	// Delete soft-deletes a transaction from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
