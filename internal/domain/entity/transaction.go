package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType classifies how a transaction is attributed between the
// two partners. Sharing ratios only apply to shared transactions.
type TransactionType string

const (
	TransactionTypeIndividual       TransactionType = "individual"
	TransactionTypeShared           TransactionType = "shared"
	TransactionTypeInternalTransfer TransactionType = "internal_transfer"
)

// Transaction represents an imported or hand-entered bank transaction.
type Transaction struct {
	ID       uuid.UUID
	CoupleID uuid.UUID
	Date     time.Time
	Label    string
	Amount   decimal.Decimal // Negative for expenses, positive for income
	Type     TransactionType
	Category string // Free-text category, informational only
	// Ratio is the fraction of a shared amount attributed to user1, in
	// [0,1]. Nil means an even 50/50 split.
	Ratio       *decimal.Decimal
	PayerUserID uuid.UUID
	IsRecurring bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // Soft-delete support
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	coupleID uuid.UUID,
	date time.Time,
	label string,
	amount decimal.Decimal,
	transactionType TransactionType,
	category string,
	ratio *decimal.Decimal,
	payerUserID uuid.UUID,
	isRecurring bool,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:          uuid.New(),
		CoupleID:    coupleID,
		Date:        date,
		Label:       label,
		Amount:      amount,
		Type:        transactionType,
		Category:    category,
		Ratio:       ratio,
		PayerUserID: payerUserID,
		IsRecurring: isRecurring,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// IsExpense reports whether the transaction represents money leaving the
// couple (negative amount).
func (t *Transaction) IsExpense() bool {
	return t.Amount.IsNegative()
}

// TransactionListResult represents the result of listing transactions.
type TransactionListResult struct {
	Transactions []*Transaction
	Total        int64
	Page         int
	Limit        int
	TotalPages   int
}
