// Package couple contains couple-related use cases.
package couple

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/duobudget/backend/internal/application/adapter"
	"github.com/duobudget/backend/internal/domain/entity"
	domainerror "github.com/duobudget/backend/internal/domain/error"
)

// GetCoupleInput represents the input for fetching the user's couple.
type GetCoupleInput struct {
	UserID uuid.UUID
}

// GetCoupleOutput represents the couple with both member accounts resolved.
type GetCoupleOutput struct {
	Couple *entity.CoupleWithPartners
}

// GetCoupleUseCase fetches the user's couple and both partner accounts.
type GetCoupleUseCase struct {
	userRepo   adapter.UserRepository
	coupleRepo adapter.CoupleRepository
}

// NewGetCoupleUseCase creates a new GetCoupleUseCase instance.
func NewGetCoupleUseCase(
	userRepo adapter.UserRepository,
	coupleRepo adapter.CoupleRepository,
) *GetCoupleUseCase {
	return &GetCoupleUseCase{
		userRepo:   userRepo,
		coupleRepo: coupleRepo,
	}
}

// Execute fetches the user's couple.
func (uc *GetCoupleUseCase) Execute(ctx context.Context, input GetCoupleInput) (*GetCoupleOutput, error) {
	couple, err := uc.coupleRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewCoupleError(
			domainerror.ErrCodeCoupleNotFound,
			"user does not belong to a couple",
			domainerror.ErrCoupleNotFound,
		)
	}

	user1, err := uc.userRepo.FindByID(ctx, couple.User1ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load partner account: %w", err)
	}
	user2, err := uc.userRepo.FindByID(ctx, couple.User2ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load partner account: %w", err)
	}

	return &GetCoupleOutput{
		Couple: &entity.CoupleWithPartners{
			Couple: couple,
			User1:  user1,
			User2:  user2,
		},
	}, nil
}
