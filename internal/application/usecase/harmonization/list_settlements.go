package harmonization

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/duobudget/backend/internal/application/adapter"
	"github.com/duobudget/backend/internal/domain/entity"
	domainerror "github.com/duobudget/backend/internal/domain/error"
)

// ListSettlementsInput represents the input for listing settlements.
type ListSettlementsInput struct {
	UserID uuid.UUID
}

// ListSettlementsOutput represents the couple's active settlement history.
type ListSettlementsOutput struct {
	Settlements []*entity.Settlement
}

// ListSettlementsUseCase lists the couple's active settlements.
type ListSettlementsUseCase struct {
	coupleRepo     adapter.CoupleRepository
	settlementRepo adapter.SettlementRepository
}

// NewListSettlementsUseCase creates a new ListSettlementsUseCase instance.
func NewListSettlementsUseCase(
	coupleRepo adapter.CoupleRepository,
	settlementRepo adapter.SettlementRepository,
) *ListSettlementsUseCase {
	return &ListSettlementsUseCase{
		coupleRepo:     coupleRepo,
		settlementRepo: settlementRepo,
	}
}

// Execute lists all active settlements for the user's couple.
func (uc *ListSettlementsUseCase) Execute(ctx context.Context, input ListSettlementsInput) (*ListSettlementsOutput, error) {
	couple, err := uc.coupleRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewHarmonizationError(
			domainerror.ErrCodeNoCoupleForUser,
			"no couple linked to user",
			domainerror.ErrNoCoupleForUser,
		)
	}

	settlements, err := uc.settlementRepo.FindByCouple(ctx, couple.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load settlements: %w", err)
	}

	return &ListSettlementsOutput{Settlements: settlements}, nil
}
