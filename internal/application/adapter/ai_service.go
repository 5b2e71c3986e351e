package adapter

import (
	"context"

	"github.com/google/uuid"
)

// TransactionForCategorization is the minimal transaction view sent to the
// classification service.
type TransactionForCategorization struct {
	ID     uuid.UUID
	Label  string
	Amount string
	Date   string
}

// CategorizationRequest is a batch of transactions to categorize, plus the
// categories the couple already uses so the service can prefer them.
type CategorizationRequest struct {
	Transactions       []TransactionForCategorization
	ExistingCategories []string
}

// CategorizationResult is one category suggestion for one transaction.
type CategorizationResult struct {
	TransactionID uuid.UUID
	Category      string
	Alternatives  []string
	Confidence    float64
}

// AICategorizationService defines the interface to the external
// transaction classification service. The computation core never calls
// it; only the categorization use cases do.
type AICategorizationService interface {
	// IsAvailable checks if the service is configured.
	IsAvailable() bool

	// Categorize analyzes transactions and returns category suggestions.
	Categorize(ctx context.Context, request *CategorizationRequest) ([]*CategorizationResult, error)
}
