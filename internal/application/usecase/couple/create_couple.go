// Package couple contains couple-related use cases.
package couple

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/duobudget/backend/internal/application/adapter"
	"github.com/duobudget/backend/internal/domain/entity"
	domainerror "github.com/duobudget/backend/internal/domain/error"
)

// CreateCoupleInput represents the input for linking two partner accounts.
// The partner is addressed by their registered email.
type CreateCoupleInput struct {
	UserID       uuid.UUID
	PartnerEmail string
}

// CreateCoupleOutput represents the created couple with both members.
type CreateCoupleOutput struct {
	Couple  *entity.Couple
	Partner *entity.User
}

// CreateCoupleUseCase links the acting user with their partner. A user can
// belong to at most one couple, and the link is symmetric: either partner
// sees the same shared ledger afterwards.
type CreateCoupleUseCase struct {
	userRepo   adapter.UserRepository
	coupleRepo adapter.CoupleRepository
}

// NewCreateCoupleUseCase creates a new CreateCoupleUseCase instance.
func NewCreateCoupleUseCase(
	userRepo adapter.UserRepository,
	coupleRepo adapter.CoupleRepository,
) *CreateCoupleUseCase {
	return &CreateCoupleUseCase{
		userRepo:   userRepo,
		coupleRepo: coupleRepo,
	}
}

// Execute performs the couple creation.
func (uc *CreateCoupleUseCase) Execute(ctx context.Context, input CreateCoupleInput) (*CreateCoupleOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.PartnerEmail))

	partner, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, domainerror.NewCoupleError(
			domainerror.ErrCodePartnerNotFound,
			"no account registered with this email",
			domainerror.ErrPartnerNotFound,
		)
	}

	if partner.ID == input.UserID {
		return nil, domainerror.NewCoupleError(
			domainerror.ErrCodeSelfPartner,
			"cannot form a couple with yourself",
			domainerror.ErrSelfPartner,
		)
	}

	for _, id := range []uuid.UUID{input.UserID, partner.ID} {
		exists, err := uc.coupleRepo.ExistsForUser(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to check couple membership: %w", err)
		}
		if exists {
			return nil, domainerror.NewCoupleError(
				domainerror.ErrCodeAlreadyInCouple,
				"user already belongs to a couple",
				domainerror.ErrAlreadyInCouple,
			)
		}
	}

	couple := entity.NewCouple(input.UserID, partner.ID)
	if err := uc.coupleRepo.Create(ctx, couple); err != nil {
		return nil, fmt.Errorf("failed to create couple: %w", err)
	}

	return &CreateCoupleOutput{
		Couple:  couple,
		Partner: partner,
	}, nil
}
