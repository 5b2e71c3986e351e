// Package subscription contains the recurring-charge use cases: detection
// of subscriptions from transaction history, calendar projection, and
// monthly-equivalent normalization.
package subscription

import (
	"github.com/shopspring/decimal"

	"github.com/duobudget/backend/internal/domain/entity"
)

var (
	three  = decimal.NewFromInt(3)
	six    = decimal.NewFromInt(6)
	twelve = decimal.NewFromInt(12)

	// weeksPerMonth approximates 52 weeks / 12 months. Only used for
	// monthly-average estimates, never for calendar projection.
	weeksPerMonth = decimal.NewFromFloat(4.33)
)

// MonthlyEquivalent normalizes a recurring charge's nominal amount to a
// per-month figure regardless of its billing period. No rounding happens
// here; formatting for display is a presentation concern.
func MonthlyEquivalent(amount decimal.Decimal, frequency entity.BillingFrequency) decimal.Decimal {
	switch frequency {
	case entity.FrequencyQuarterly:
		return amount.Div(three)
	case entity.FrequencySemiannual:
		return amount.Div(six)
	case entity.FrequencyYearly:
		return amount.Div(twelve)
	case entity.FrequencyWeekly:
		return amount.Mul(weeksPerMonth)
	default:
		// monthly and manual charges already are per-month figures.
		return amount
	}
}

// ValidOverrideFrequency reports whether a frequency may be set as a
// user override. Weekly is estimation-only and cannot be assigned.
func ValidOverrideFrequency(f entity.BillingFrequency) bool {
	switch f {
	case entity.FrequencyMonthly, entity.FrequencyQuarterly,
		entity.FrequencySemiannual, entity.FrequencyYearly, entity.FrequencyManual:
		return true
	default:
		return false
	}
}
