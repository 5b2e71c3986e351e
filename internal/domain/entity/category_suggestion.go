package entity

import (
	"time"

	"github.com/google/uuid"
)

// SuggestionStatus tracks the lifecycle of an AI category suggestion.
type SuggestionStatus string

const (
	SuggestionStatusPending  SuggestionStatus = "pending"
	SuggestionStatusApproved SuggestionStatus = "approved"
	SuggestionStatusRejected SuggestionStatus = "rejected"
)

// CategorySuggestion is a category proposed by the AI classification
// service for one uncategorized transaction. The core never applies a
// suggestion on its own; the user approves or rejects it.
type CategorySuggestion struct {
	ID            uuid.UUID
	CoupleID      uuid.UUID
	TransactionID uuid.UUID
	Category      string
	Alternatives  []string
	Confidence    float64
	Status        SuggestionStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewCategorySuggestion creates a pending CategorySuggestion.
func NewCategorySuggestion(
	coupleID uuid.UUID,
	transactionID uuid.UUID,
	category string,
	alternatives []string,
	confidence float64,
) *CategorySuggestion {
	now := time.Now().UTC()
	return &CategorySuggestion{
		ID:            uuid.New(),
		CoupleID:      coupleID,
		TransactionID: transactionID,
		Category:      category,
		Alternatives:  alternatives,
		Confidence:    confidence,
		Status:        SuggestionStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
