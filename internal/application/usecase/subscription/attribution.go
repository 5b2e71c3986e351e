package subscription

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/duobudget/backend/internal/domain/entity"
)

var two = decimal.NewFromInt(2)

// EffectiveAmount is what a recurring charge costs the viewing user per
// billing period: half of a shared charge, all of a personal one.
// Recurring charges always split 50/50; per-transaction ratios do not
// apply here.
func EffectiveAmount(candidate *entity.SubscriptionCandidate) decimal.Decimal {
	if candidate.IsShared {
		return candidate.Amount.Div(two)
	}
	return candidate.Amount
}

// CalendarAmount is what actually leaves the viewing user's account when
// the charge bills: the full amount when the viewer pays, nothing when
// the partner's account is debited. Cost sharing is settled through the
// balance, not at the bank.
func CalendarAmount(candidate *entity.SubscriptionCandidate, viewerID uuid.UUID) decimal.Decimal {
	if !candidate.IsShared {
		return candidate.Amount
	}
	if candidate.PayerUserID == viewerID {
		return candidate.Amount
	}
	return decimal.Zero
}
