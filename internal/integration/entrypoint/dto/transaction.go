// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/duobudget/backend/internal/application/usecase/transaction"
	"github.com/duobudget/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
// Amounts are negative for expenses and positive for income.
type CreateTransactionRequest struct {
	Date        string   `json:"date" binding:"required"`
	Label       string   `json:"label" binding:"required,min=1,max=255"`
	Amount      float64  `json:"amount" binding:"required"`
	Type        string   `json:"type" binding:"required,oneof=individual shared internal_transfer"`
	Category    string   `json:"category,omitempty" binding:"omitempty,max=100"`
	Ratio       *float64 `json:"ratio,omitempty"`
	PayerUserID *string  `json:"payer_user_id,omitempty"`
	IsRecurring bool     `json:"is_recurring,omitempty"`
}

// UpdateTransactionRequest represents the request body for transaction
// update. All attributed fields are replaced.
type UpdateTransactionRequest struct {
	Date        string   `json:"date" binding:"required"`
	Label       string   `json:"label" binding:"required,min=1,max=255"`
	Amount      float64  `json:"amount" binding:"required"`
	Type        string   `json:"type" binding:"required,oneof=individual shared internal_transfer"`
	Category    string   `json:"category,omitempty" binding:"omitempty,max=100"`
	Ratio       *float64 `json:"ratio,omitempty"`
	PayerUserID *string  `json:"payer_user_id,omitempty"`
	IsRecurring bool     `json:"is_recurring,omitempty"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          string    `json:"id"`
	CoupleID    string    `json:"couple_id"`
	Date        string    `json:"date"`
	Label       string    `json:"label"`
	Amount      string    `json:"amount"`
	Type        string    `json:"type"`
	Category    string    `json:"category"`
	Ratio       *string   `json:"ratio,omitempty"`
	PayerUserID string    `json:"payer_user_id"`
	IsRecurring bool      `json:"is_recurring"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TransactionPaginationResponse represents pagination information in API responses.
type TransactionPaginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// TransactionTotalsResponse represents aggregated totals in API responses.
type TransactionTotalsResponse struct {
	IncomeTotal  string `json:"income_total"`
	ExpenseTotal string `json:"expense_total"`
	NetTotal     string `json:"net_total"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse         `json:"transactions"`
	Pagination   TransactionPaginationResponse `json:"pagination"`
	Totals       TransactionTotalsResponse     `json:"totals"`
}

// ToTransactionResponse converts a domain Transaction to a TransactionResponse DTO.
func ToTransactionResponse(txn *entity.Transaction) TransactionResponse {
	response := TransactionResponse{
		ID:          txn.ID.String(),
		CoupleID:    txn.CoupleID.String(),
		Date:        txn.Date.Format("2006-01-02"),
		Label:       txn.Label,
		Amount:      txn.Amount.String(),
		Type:        string(txn.Type),
		Category:    txn.Category,
		PayerUserID: txn.PayerUserID.String(),
		IsRecurring: txn.IsRecurring,
		CreatedAt:   txn.CreatedAt,
		UpdatedAt:   txn.UpdatedAt,
	}

	if txn.Ratio != nil {
		ratioStr := txn.Ratio.String()
		response.Ratio = &ratioStr
	}

	return response
}

// ToTransactionListResponse converts a ListTransactionsOutput to TransactionListResponse.
func ToTransactionListResponse(output *transaction.ListTransactionsOutput) TransactionListResponse {
	transactions := make([]TransactionResponse, len(output.Transactions))
	for i, txn := range output.Transactions {
		transactions[i] = ToTransactionResponse(txn)
	}

	return TransactionListResponse{
		Transactions: transactions,
		Pagination: TransactionPaginationResponse{
			Page:       output.Pagination.Page,
			Limit:      output.Pagination.Limit,
			Total:      output.Pagination.Total,
			TotalPages: output.Pagination.TotalPages,
		},
		Totals: TransactionTotalsResponse{
			IncomeTotal:  output.Totals.IncomeTotal.String(),
			ExpenseTotal: output.Totals.ExpenseTotal.String(),
			NetTotal:     output.Totals.NetTotal.String(),
		},
	}
}
