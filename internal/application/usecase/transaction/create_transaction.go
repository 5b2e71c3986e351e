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

const (
	// MaxLabelLength is the maximum allowed length for transaction labels.
	MaxLabelLength = 255
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	UserID      uuid.UUID
	Date        time.Time
	Label       string
	Amount      decimal.Decimal
	Type        entity.TransactionType
	Category    string
	Ratio       *decimal.Decimal
	PayerUserID uuid.UUID
	IsRecurring bool
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	coupleRepo      adapter.CoupleRepository
	transactionRepo adapter.TransactionRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	coupleRepo adapter.CoupleRepository,
	transactionRepo adapter.TransactionRepository,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		coupleRepo:      coupleRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	couple, err := uc.coupleRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewHarmonizationError(
			domainerror.ErrCodeNoCoupleForUser,
			"no couple linked to user",
			domainerror.ErrNoCoupleForUser,
		)
	}

	// When the caller does not designate a payer, the acting user paid.
	payer := input.PayerUserID
	if payer == uuid.Nil {
		payer = input.UserID
	}

	if err := validateTransactionFields(couple, input.Label, input.Date, input.Type, input.Ratio, payer); err != nil {
		return nil, err
	}

	transaction := entity.NewTransaction(
		couple.ID,
		input.Date,
		input.Label,
		input.Amount,
		input.Type,
		input.Category,
		input.Ratio,
		payer,
		input.IsRecurring,
	)

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &CreateTransactionOutput{Transaction: transaction}, nil
}

// validateTransactionFields applies the invariants shared by creation and
// update: a known type, a ratio inside [0,1], a payer who belongs to the
// couple, a real date and a bounded label.
func validateTransactionFields(
	couple *entity.Couple,
	label string,
	date time.Time,
	transactionType entity.TransactionType,
	ratio *decimal.Decimal,
	payerUserID uuid.UUID,
) error {
	if len(label) > MaxLabelLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeLabelTooLong,
			fmt.Sprintf("label must not exceed %d characters", MaxLabelLength),
			domainerror.ErrLabelTooLong,
		)
	}

	if !isValidTransactionType(transactionType) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'individual', 'shared' or 'internal_transfer'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if date.IsZero() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"transaction date is required",
			domainerror.ErrInvalidTransactionDate,
		)
	}

	if ratio != nil && (ratio.IsNegative() || ratio.GreaterThan(decimal.NewFromInt(1))) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionRatio,
			"sharing ratio must be between 0 and 1",
			domainerror.ErrInvalidTransactionRatio,
		)
	}

	if !couple.HasMember(payerUserID) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodePayerNotMember,
			"payer does not belong to the couple",
			domainerror.ErrPayerNotMember,
		)
	}

	return nil
}

// isValidTransactionType validates the transaction type.
func isValidTransactionType(transactionType entity.TransactionType) bool {
	switch transactionType {
	case entity.TransactionTypeIndividual, entity.TransactionTypeShared, entity.TransactionTypeInternalTransfer:
		return true
	default:
		return false
	}
}
