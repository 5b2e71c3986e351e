package categorization

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/duobudget/backend/internal/application/adapter"
	"github.com/duobudget/backend/internal/domain/entity"
	domainerror "github.com/duobudget/backend/internal/domain/error"
)

// ApproveSuggestionInput represents the input for approving a suggestion.
// Category, when set, overrides the suggested category with one of the
// alternatives or a hand-typed value.
type ApproveSuggestionInput struct {
	UserID       uuid.UUID
	SuggestionID uuid.UUID
	Category     string
}

// ApproveSuggestionOutput represents the applied suggestion.
type ApproveSuggestionOutput struct {
	Suggestion *entity.CategorySuggestion
}

// ApproveSuggestionUseCase applies a pending suggestion to its transaction.
type ApproveSuggestionUseCase struct {
	coupleRepo      adapter.CoupleRepository
	transactionRepo adapter.TransactionRepository
	suggestionRepo  adapter.SuggestionRepository
}

// NewApproveSuggestionUseCase creates a new ApproveSuggestionUseCase instance.
func NewApproveSuggestionUseCase(
	coupleRepo adapter.CoupleRepository,
	transactionRepo adapter.TransactionRepository,
	suggestionRepo adapter.SuggestionRepository,
) *ApproveSuggestionUseCase {
	return &ApproveSuggestionUseCase{
		coupleRepo:      coupleRepo,
		transactionRepo: transactionRepo,
		suggestionRepo:  suggestionRepo,
	}
}

// Execute applies the suggestion's category to the transaction and marks
// the suggestion approved.
func (uc *ApproveSuggestionUseCase) Execute(ctx context.Context, input ApproveSuggestionInput) (*ApproveSuggestionOutput, error) {
	suggestion, err := uc.loadOwnedSuggestion(ctx, input.UserID, input.SuggestionID)
	if err != nil {
		return nil, err
	}

	category := suggestion.Category
	if input.Category != "" {
		category = input.Category
	}

	if err := uc.transactionRepo.UpdateCategory(ctx, suggestion.TransactionID, category); err != nil {
		return nil, fmt.Errorf("failed to apply category: %w", err)
	}

	if err := uc.suggestionRepo.UpdateStatus(ctx, suggestion.ID, entity.SuggestionStatusApproved); err != nil {
		return nil, fmt.Errorf("failed to update suggestion status: %w", err)
	}

	suggestion.Category = category
	suggestion.Status = entity.SuggestionStatusApproved
	return &ApproveSuggestionOutput{Suggestion: suggestion}, nil
}

// loadOwnedSuggestion fetches a pending suggestion and verifies it belongs
// to the acting user's couple.
func (uc *ApproveSuggestionUseCase) loadOwnedSuggestion(ctx context.Context, userID, suggestionID uuid.UUID) (*entity.CategorySuggestion, error) {
	couple, err := uc.coupleRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, domainerror.NewHarmonizationError(
			domainerror.ErrCodeNoCoupleForUser,
			"no couple linked to user",
			domainerror.ErrNoCoupleForUser,
		)
	}

	suggestion, err := uc.suggestionRepo.FindByID(ctx, suggestionID)
	if err != nil || suggestion.CoupleID != couple.ID {
		return nil, domainerror.NewSuggestionError(
			domainerror.ErrCodeSuggestionNotFound,
			"suggestion not found",
			domainerror.ErrSuggestionNotFound,
		)
	}

	if suggestion.Status != entity.SuggestionStatusPending {
		return nil, domainerror.NewSuggestionError(
			domainerror.ErrCodeSuggestionAlreadyResolved,
			"suggestion was already approved or rejected",
			domainerror.ErrSuggestionAlreadyResolved,
		)
	}

	return suggestion, nil
}
