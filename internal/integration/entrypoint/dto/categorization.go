// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/duobudget/backend/internal/domain/entity"
)

// ApproveSuggestionRequest represents the request body for approving a
// suggestion. Category optionally replaces the suggested one with an
// alternative or a hand-typed value.
type ApproveSuggestionRequest struct {
	Category string `json:"category,omitempty" binding:"omitempty,max=100"`
}

// CategorySuggestionResponse represents an AI category suggestion in API responses.
type CategorySuggestionResponse struct {
	ID            string    `json:"id"`
	TransactionID string    `json:"transaction_id"`
	Category      string    `json:"category"`
	Alternatives  []string  `json:"alternatives"`
	Confidence    float64   `json:"confidence"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// CategorySuggestionListResponse represents the response for listing suggestions.
type CategorySuggestionListResponse struct {
	Suggestions []CategorySuggestionResponse `json:"suggestions"`
}

// ToCategorySuggestionResponse converts a CategorySuggestion to its DTO.
func ToCategorySuggestionResponse(suggestion *entity.CategorySuggestion) CategorySuggestionResponse {
	alternatives := suggestion.Alternatives
	if alternatives == nil {
		alternatives = []string{}
	}
	return CategorySuggestionResponse{
		ID:            suggestion.ID.String(),
		TransactionID: suggestion.TransactionID.String(),
		Category:      suggestion.Category,
		Alternatives:  alternatives,
		Confidence:    suggestion.Confidence,
		Status:        string(suggestion.Status),
		CreatedAt:     suggestion.CreatedAt,
	}
}

// ToCategorySuggestionListResponse converts suggestions to a list response.
func ToCategorySuggestionListResponse(suggestions []*entity.CategorySuggestion) CategorySuggestionListResponse {
	response := CategorySuggestionListResponse{
		Suggestions: make([]CategorySuggestionResponse, len(suggestions)),
	}
	for i, s := range suggestions {
		response.Suggestions[i] = ToCategorySuggestionResponse(s)
	}
	return response
}
