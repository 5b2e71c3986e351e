// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/duobudget/backend/internal/application/usecase/subscription"
	"github.com/duobudget/backend/internal/domain/entity"
)

// SubscriptionCandidateResponse represents one detected recurring charge
// in API responses. Amounts are viewer-relative: effective_amount is the
// viewer's cost per billing period after sharing, calendar_amount the cash
// leaving their account when the charge bills.
type SubscriptionCandidateResponse struct {
	Label             string   `json:"label"`
	Amount            string   `json:"amount"`
	Occurrences       int      `json:"occurrences"`
	AvgDayOfMonth     int      `json:"avg_day_of_month"`
	FirstDate         string   `json:"first_date"`
	LastDate          string   `json:"last_date"`
	Frequency         string   `json:"frequency"`
	TransactionIDs    []string `json:"transaction_ids"`
	IsShared          bool     `json:"is_shared"`
	PayerUserID       string   `json:"payer_user_id,omitempty"`
	IsFromPartner     bool     `json:"is_from_partner"`
	MonthlyEquivalent string   `json:"monthly_equivalent"`
	EffectiveAmount   string   `json:"effective_amount"`
	CalendarAmount    string   `json:"calendar_amount"`
	DueInMonth        bool     `json:"due_in_month"`
}

// PossibleRecurringResponse represents a repeated charge whose gaps fit no
// supported billing period.
type PossibleRecurringResponse struct {
	Label       string `json:"label"`
	Amount      string `json:"amount"`
	Occurrences int    `json:"occurrences"`
	LastDate    string `json:"last_date"`
}

// SubscriptionOverviewResponse represents the recurring-charge overview.
type SubscriptionOverviewResponse struct {
	Recurring           []SubscriptionCandidateResponse `json:"recurring"`
	Expired             []SubscriptionCandidateResponse `json:"expired"`
	Possible            []PossibleRecurringResponse     `json:"possible"`
	MonthlyTotal        string                          `json:"monthly_total"`
	ProjectedMonthTotal string                          `json:"projected_month_total"`
	Month               int                             `json:"month"`
	Year                int                             `json:"year"`
}

// UpsertSubscriptionSettingRequest represents the request body for
// overriding one recurring charge's frequency and attribution. The
// (label, amount) pair identifies the charge exactly.
type UpsertSubscriptionSettingRequest struct {
	Label       string  `json:"label" binding:"required,min=1,max=255"`
	Amount      float64 `json:"amount" binding:"required"`
	IsShared    bool    `json:"is_shared"`
	Frequency   string  `json:"frequency,omitempty" binding:"omitempty,oneof=monthly quarterly semiannual yearly manual"`
	PayerUserID *string `json:"payer_user_id,omitempty"`
}

// SubscriptionSettingResponse represents a stored override in API responses.
type SubscriptionSettingResponse struct {
	ID          string    `json:"id"`
	Label       string    `json:"label"`
	Amount      string    `json:"amount"`
	IsShared    bool      `json:"is_shared"`
	Frequency   string    `json:"frequency,omitempty"`
	PayerUserID string    `json:"payer_user_id,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToSubscriptionCandidateResponse converts a CandidateView to its DTO.
func ToSubscriptionCandidateResponse(view *subscription.CandidateView) SubscriptionCandidateResponse {
	response := SubscriptionCandidateResponse{
		Label:             view.Label,
		Amount:            view.Amount.String(),
		Occurrences:       view.Occurrences,
		AvgDayOfMonth:     view.AvgDayOfMonth,
		FirstDate:         view.FirstDate.Format("2006-01-02"),
		LastDate:          view.LastDate.Format("2006-01-02"),
		Frequency:         string(view.Frequency),
		TransactionIDs:    make([]string, len(view.TransactionIDs)),
		IsShared:          view.IsShared,
		IsFromPartner:     view.IsFromPartner,
		MonthlyEquivalent: view.MonthlyEquivalent.String(),
		EffectiveAmount:   view.EffectiveAmount.String(),
		CalendarAmount:    view.CalendarAmount.String(),
		DueInMonth:        view.DueInMonth,
	}

	for i, id := range view.TransactionIDs {
		response.TransactionIDs[i] = id.String()
	}
	if view.PayerUserID != uuid.Nil {
		response.PayerUserID = view.PayerUserID.String()
	}
	return response
}

// ToSubscriptionOverviewResponse converts a GetOverviewOutput to its DTO.
func ToSubscriptionOverviewResponse(output *subscription.GetOverviewOutput) SubscriptionOverviewResponse {
	response := SubscriptionOverviewResponse{
		Recurring:           make([]SubscriptionCandidateResponse, len(output.Recurring)),
		Expired:             make([]SubscriptionCandidateResponse, len(output.Expired)),
		Possible:            make([]PossibleRecurringResponse, len(output.Possible)),
		MonthlyTotal:        output.MonthlyTotal.String(),
		ProjectedMonthTotal: output.ProjectedMonthTotal.String(),
		Month:               output.Month,
		Year:                output.Year,
	}

	for i, view := range output.Recurring {
		response.Recurring[i] = ToSubscriptionCandidateResponse(view)
	}
	for i, view := range output.Expired {
		response.Expired[i] = ToSubscriptionCandidateResponse(view)
	}
	for i, p := range output.Possible {
		response.Possible[i] = PossibleRecurringResponse{
			Label:       p.Label,
			Amount:      p.Amount.String(),
			Occurrences: p.Occurrences,
			LastDate:    p.LastDate.Format("2006-01-02"),
		}
	}

	return response
}

// ToSubscriptionSettingResponse converts a SubscriptionSetting to its DTO.
func ToSubscriptionSettingResponse(setting *entity.SubscriptionSetting) SubscriptionSettingResponse {
	response := SubscriptionSettingResponse{
		ID:        setting.ID.String(),
		Label:     setting.Label,
		Amount:    setting.Amount.String(),
		IsShared:  setting.IsShared,
		Frequency: string(setting.Frequency),
		UpdatedAt: setting.UpdatedAt,
	}
	if setting.PayerUserID != uuid.Nil {
		response.PayerUserID = setting.PayerUserID.String()
	}
	return response
}
