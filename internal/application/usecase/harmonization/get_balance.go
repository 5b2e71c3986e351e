package harmonization

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/duobudget/backend/internal/application/adapter"
	"github.com/duobudget/backend/internal/domain/entity"
	domainerror "github.com/duobudget/backend/internal/domain/error"
)

// GetBalanceInput represents the input for computing the couple's balance.
type GetBalanceInput struct {
	UserID uuid.UUID
}

// GetBalanceOutput represents the computed harmonization view.
type GetBalanceOutput struct {
	Couple   *entity.Couple
	Balance  *entity.Balance
	Warnings []Warning
}

// GetBalanceUseCase recomputes the couple's balance from the current
// transaction and settlement sets. No state is kept between calls.
type GetBalanceUseCase struct {
	coupleRepo      adapter.CoupleRepository
	transactionRepo adapter.TransactionRepository
	settlementRepo  adapter.SettlementRepository
}

// NewGetBalanceUseCase creates a new GetBalanceUseCase instance.
func NewGetBalanceUseCase(
	coupleRepo adapter.CoupleRepository,
	transactionRepo adapter.TransactionRepository,
	settlementRepo adapter.SettlementRepository,
) *GetBalanceUseCase {
	return &GetBalanceUseCase{
		coupleRepo:      coupleRepo,
		transactionRepo: transactionRepo,
		settlementRepo:  settlementRepo,
	}
}

// Execute loads the couple's snapshot and folds it into a Balance.
func (uc *GetBalanceUseCase) Execute(ctx context.Context, input GetBalanceInput) (*GetBalanceOutput, error) {
	couple, err := uc.coupleRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewHarmonizationError(
			domainerror.ErrCodeNoCoupleForUser,
			"no couple linked to user",
			domainerror.ErrNoCoupleForUser,
		)
	}

	transactions, err := uc.transactionRepo.FindByCouple(ctx, couple.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	settlements, err := uc.settlementRepo.FindByCouple(ctx, couple.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load settlements: %w", err)
	}

	balance, warnings, err := ComputeBalance(couple, transactions, settlements)
	if err != nil {
		return nil, err
	}

	return &GetBalanceOutput{
		Couple:   couple,
		Balance:  balance,
		Warnings: warnings,
	}, nil
}
