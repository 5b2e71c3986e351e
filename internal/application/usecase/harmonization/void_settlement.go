package harmonization

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/duobudget/backend/internal/application/adapter"
	domainerror "github.com/duobudget/backend/internal/domain/error"
)

// VoidSettlementInput represents the input for voiding a settlement.
type VoidSettlementInput struct {
	UserID       uuid.UUID
	SettlementID uuid.UUID
}

// VoidSettlementUseCase removes a settlement from the set the balance
// computation considers. Reversal is nothing more than that: the next
// ComputeBalance call simply excludes the voided record, so no cached
// state exists to invalidate.
type VoidSettlementUseCase struct {
	coupleRepo     adapter.CoupleRepository
	settlementRepo adapter.SettlementRepository
}

// NewVoidSettlementUseCase creates a new VoidSettlementUseCase instance.
func NewVoidSettlementUseCase(
	coupleRepo adapter.CoupleRepository,
	settlementRepo adapter.SettlementRepository,
) *VoidSettlementUseCase {
	return &VoidSettlementUseCase{
		coupleRepo:     coupleRepo,
		settlementRepo: settlementRepo,
	}
}

// Execute voids the settlement. Voiding an unknown id reports
// ErrSettlementNotFound rather than silently succeeding.
func (uc *VoidSettlementUseCase) Execute(ctx context.Context, input VoidSettlementInput) error {
	couple, err := uc.coupleRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return domainerror.NewHarmonizationError(
			domainerror.ErrCodeNoCoupleForUser,
			"no couple linked to user",
			domainerror.ErrNoCoupleForUser,
		)
	}

	settlement, err := uc.settlementRepo.FindByID(ctx, input.SettlementID)
	if err != nil {
		if errors.Is(err, domainerror.ErrSettlementNotFound) {
			return domainerror.NewSettlementError(
				domainerror.ErrCodeSettlementNotFound,
				"settlement not found",
				domainerror.ErrSettlementNotFound,
			)
		}
		return fmt.Errorf("failed to load settlement: %w", err)
	}

	if settlement.CoupleID != couple.ID {
		return domainerror.NewSettlementError(
			domainerror.ErrCodeNotAuthorizedSettlement,
			"settlement belongs to another couple",
			domainerror.ErrNotAuthorizedToVoidSettlement,
		)
	}

	if err := uc.settlementRepo.Void(ctx, input.SettlementID); err != nil {
		if errors.Is(err, domainerror.ErrSettlementNotFound) {
			return domainerror.NewSettlementError(
				domainerror.ErrCodeSettlementNotFound,
				"settlement not found",
				domainerror.ErrSettlementNotFound,
			)
		}
		return fmt.Errorf("failed to void settlement: %w", err)
	}

	return nil
}
