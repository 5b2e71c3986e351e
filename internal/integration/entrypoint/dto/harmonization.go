// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/duobudget/backend/internal/application/usecase/harmonization"
	"github.com/duobudget/backend/internal/domain/entity"
)

// PartnerTotalsResponse represents one partner's aggregate over the
// couple's shared transactions.
type PartnerTotalsResponse struct {
	UserID    string `json:"user_id"`
	TotalPaid string `json:"total_paid"`
	TotalOwed string `json:"total_owed"`
}

// BalanceWarningResponse represents a data-quality issue found while
// computing the balance.
type BalanceWarningResponse struct {
	Code          string `json:"code"`
	Message       string `json:"message"`
	TransactionID string `json:"transaction_id"`
}

// BalanceResponse represents the computed who-owes-whom view.
// NetBalance is signed: positive means user2 owes user1.
type BalanceResponse struct {
	User1        PartnerTotalsResponse    `json:"user1"`
	User2        PartnerTotalsResponse    `json:"user2"`
	NetBalance   string                   `json:"net_balance"`
	SettledTotal string                   `json:"settled_total"`
	Warnings     []BalanceWarningResponse `json:"warnings,omitempty"`
}

// RecordSettlementRequest represents the request body for recording a
// settlement. Amount is the caller's snapshot of the outstanding balance.
type RecordSettlementRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
	Note   string  `json:"note,omitempty" binding:"omitempty,max=500"`
}

// SettlementResponse represents a settlement in API responses.
type SettlementResponse struct {
	ID              string    `json:"id"`
	CoupleID        string    `json:"couple_id"`
	Amount          string    `json:"amount"`
	Note            string    `json:"note"`
	SettledAt       time.Time `json:"settled_at"`
	CreatedByUserID string    `json:"created_by_user_id"`
	CreatedAt       time.Time `json:"created_at"`
}

// SettlementListResponse represents the response for listing settlements.
type SettlementListResponse struct {
	Settlements []SettlementResponse `json:"settlements"`
}

// ToBalanceResponse converts a GetBalanceOutput to a BalanceResponse DTO.
func ToBalanceResponse(output *harmonization.GetBalanceOutput) BalanceResponse {
	response := BalanceResponse{
		User1: PartnerTotalsResponse{
			UserID:    output.Couple.User1ID.String(),
			TotalPaid: output.Balance.User1.TotalPaid.String(),
			TotalOwed: output.Balance.User1.TotalOwed.String(),
		},
		User2: PartnerTotalsResponse{
			UserID:    output.Couple.User2ID.String(),
			TotalPaid: output.Balance.User2.TotalPaid.String(),
			TotalOwed: output.Balance.User2.TotalOwed.String(),
		},
		NetBalance:   output.Balance.NetBalance.String(),
		SettledTotal: output.Balance.SettledTotal.String(),
	}

	for _, w := range output.Warnings {
		response.Warnings = append(response.Warnings, BalanceWarningResponse{
			Code:          string(w.Code),
			Message:       w.Message,
			TransactionID: w.TransactionID.String(),
		})
	}

	return response
}

// ToSettlementResponse converts a domain Settlement to a SettlementResponse DTO.
func ToSettlementResponse(settlement *entity.Settlement) SettlementResponse {
	return SettlementResponse{
		ID:              settlement.ID.String(),
		CoupleID:        settlement.CoupleID.String(),
		Amount:          settlement.Amount.String(),
		Note:            settlement.Note,
		SettledAt:       settlement.SettledAt,
		CreatedByUserID: settlement.CreatedByUserID.String(),
		CreatedAt:       settlement.CreatedAt,
	}
}

// ToSettlementListResponse converts settlements to a SettlementListResponse.
func ToSettlementListResponse(settlements []*entity.Settlement) SettlementListResponse {
	response := SettlementListResponse{
		Settlements: make([]SettlementResponse, len(settlements)),
	}
	for i, s := range settlements {
		response.Settlements[i] = ToSettlementResponse(s)
	}
	return response
}
