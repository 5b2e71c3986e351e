// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/duobudget/backend/internal/application/adapter"
	"github.com/duobudget/backend/internal/domain/entity"
	domainerror "github.com/duobudget/backend/internal/domain/error"
)

// UpdateTransactionInput represents the input for transaction update. All
// attributed fields are replaced; there is no partial patch semantics.
type UpdateTransactionInput struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
	Date          time.Time
	Label         string
	Amount        decimal.Decimal
	Type          entity.TransactionType
	Category      string
	Ratio         *decimal.Decimal
	PayerUserID   uuid.UUID
	IsRecurring   bool
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles transaction update logic. Changing the
// type, ratio or payer retroactively changes the computed balance; the
// ledger is always recomputed from current rows, so no compensation
// records are needed.
type UpdateTransactionUseCase struct {
	coupleRepo      adapter.CoupleRepository
	transactionRepo adapter.TransactionRepository
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	coupleRepo adapter.CoupleRepository,
	transactionRepo adapter.TransactionRepository,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		coupleRepo:      coupleRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	couple, err := uc.coupleRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewHarmonizationError(
			domainerror.ErrCodeNoCoupleForUser,
			"no couple linked to user",
			domainerror.ErrNoCoupleForUser,
		)
	}

	transaction, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}

	if transaction.CoupleID != couple.ID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNotAuthorizedTransaction,
			"transaction belongs to another couple",
			domainerror.ErrNotAuthorizedToModifyTransaction,
		)
	}

	payer := input.PayerUserID
	if payer == uuid.Nil {
		payer = transaction.PayerUserID
	}

	if err := validateTransactionFields(couple, input.Label, input.Date, input.Type, input.Ratio, payer); err != nil {
		return nil, err
	}

	transaction.Date = input.Date
	transaction.Label = input.Label
	transaction.Amount = input.Amount
	transaction.Type = input.Type
	transaction.Category = input.Category
	transaction.Ratio = input.Ratio
	transaction.PayerUserID = payer
	transaction.IsRecurring = input.IsRecurring
	transaction.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &UpdateTransactionOutput{Transaction: transaction}, nil
}
