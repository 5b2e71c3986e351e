package categorization

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/duobudget/backend/internal/application/adapter"
	"github.com/duobudget/backend/internal/domain/entity"
	domainerror "github.com/duobudget/backend/internal/domain/error"
)

// ListSuggestionsInput represents the input for listing pending suggestions.
type ListSuggestionsInput struct {
	UserID uuid.UUID
}

// ListSuggestionsOutput represents the couple's pending suggestions.
type ListSuggestionsOutput struct {
	Suggestions []*entity.CategorySuggestion
}

// ListSuggestionsUseCase lists the couple's pending suggestions.
type ListSuggestionsUseCase struct {
	coupleRepo     adapter.CoupleRepository
	suggestionRepo adapter.SuggestionRepository
}

// NewListSuggestionsUseCase creates a new ListSuggestionsUseCase instance.
func NewListSuggestionsUseCase(
	coupleRepo adapter.CoupleRepository,
	suggestionRepo adapter.SuggestionRepository,
) *ListSuggestionsUseCase {
	return &ListSuggestionsUseCase{
		coupleRepo:     coupleRepo,
		suggestionRepo: suggestionRepo,
	}
}

// Execute lists all pending suggestions for the user's couple.
func (uc *ListSuggestionsUseCase) Execute(ctx context.Context, input ListSuggestionsInput) (*ListSuggestionsOutput, error) {
	couple, err := uc.coupleRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewHarmonizationError(
			domainerror.ErrCodeNoCoupleForUser,
			"no couple linked to user",
			domainerror.ErrNoCoupleForUser,
		)
	}

	suggestions, err := uc.suggestionRepo.FindPendingByCouple(ctx, couple.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load suggestions: %w", err)
	}

	return &ListSuggestionsOutput{Suggestions: suggestions}, nil
}
