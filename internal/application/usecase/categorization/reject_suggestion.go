package categorization

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/duobudget/backend/internal/application/adapter"
	"github.com/duobudget/backend/internal/domain/entity"
	domainerror "github.com/duobudget/backend/internal/domain/error"
)

// RejectSuggestionInput represents the input for rejecting a suggestion.
type RejectSuggestionInput struct {
	UserID       uuid.UUID
	SuggestionID uuid.UUID
}

// RejectSuggestionUseCase discards a pending suggestion. The transaction
// keeps its empty category and shows up in the next suggestion batch.
type RejectSuggestionUseCase struct {
	coupleRepo     adapter.CoupleRepository
	suggestionRepo adapter.SuggestionRepository
}

// NewRejectSuggestionUseCase creates a new RejectSuggestionUseCase instance.
func NewRejectSuggestionUseCase(
	coupleRepo adapter.CoupleRepository,
	suggestionRepo adapter.SuggestionRepository,
) *RejectSuggestionUseCase {
	return &RejectSuggestionUseCase{
		coupleRepo:     coupleRepo,
		suggestionRepo: suggestionRepo,
	}
}

// Execute marks the suggestion rejected.
func (uc *RejectSuggestionUseCase) Execute(ctx context.Context, input RejectSuggestionInput) error {
	couple, err := uc.coupleRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return domainerror.NewHarmonizationError(
			domainerror.ErrCodeNoCoupleForUser,
			"no couple linked to user",
			domainerror.ErrNoCoupleForUser,
		)
	}

	suggestion, err := uc.suggestionRepo.FindByID(ctx, input.SuggestionID)
	if err != nil || suggestion.CoupleID != couple.ID {
		return domainerror.NewSuggestionError(
			domainerror.ErrCodeSuggestionNotFound,
			"suggestion not found",
			domainerror.ErrSuggestionNotFound,
		)
	}

	if suggestion.Status != entity.SuggestionStatusPending {
		return domainerror.NewSuggestionError(
			domainerror.ErrCodeSuggestionAlreadyResolved,
			"suggestion was already approved or rejected",
			domainerror.ErrSuggestionAlreadyResolved,
		)
	}

	if err := uc.suggestionRepo.UpdateStatus(ctx, suggestion.ID, entity.SuggestionStatusRejected); err != nil {
		return fmt.Errorf("failed to update suggestion status: %w", err)
	}

	return nil
}
