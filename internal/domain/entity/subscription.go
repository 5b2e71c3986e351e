package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BillingFrequency is the billing period of a recurring charge.
// FrequencyWeekly exists only for monthly-average estimates and is never
// inferred by detection nor used for calendar projection.
type BillingFrequency string

const (
	FrequencyMonthly    BillingFrequency = "monthly"
	FrequencyQuarterly  BillingFrequency = "quarterly"
	FrequencySemiannual BillingFrequency = "semiannual"
	FrequencyYearly     BillingFrequency = "yearly"
	FrequencyManual     BillingFrequency = "manual"
	FrequencyWeekly     BillingFrequency = "weekly"
)

// PeriodMonths returns the billing period in calendar months, or 0 for
// frequencies without a projectable period (manual, weekly).
func (f BillingFrequency) PeriodMonths() int {
	switch f {
	case FrequencyMonthly:
		return 1
	case FrequencyQuarterly:
		return 3
	case FrequencySemiannual:
		return 6
	case FrequencyYearly:
		return 12
	default:
		return 0
	}
}

// SubscriptionCandidate is a cluster of historical transactions believed
// to represent one recurring charge. Derived, recomputed on demand.
type SubscriptionCandidate struct {
	Label          string
	Amount         decimal.Decimal
	Occurrences    int
	AvgDayOfMonth  int
	FirstDate      time.Time
	LastDate       time.Time
	Frequency      BillingFrequency
	TransactionIDs []uuid.UUID

	// Attribution, resolved from the source transactions and overridden
	// by a SubscriptionSetting when one exists for the (label, amount) key.
	IsShared    bool
	PayerUserID uuid.UUID

	// IsFromPartner marks a candidate sourced from the partner's own
	// import; such candidates are always shared and not payer-editable
	// by the viewing user.
	IsFromPartner bool
}

// PossibleRecurring is a cluster with repeated occurrences whose gaps do
// not fit any supported billing period. No frequency is asserted.
type PossibleRecurring struct {
	Label       string
	Amount      decimal.Decimal // most recent occurrence's amount
	Occurrences int
	LastDate    time.Time
}

// SubscriptionSetting is a user-provided override for one recurring
// charge, keyed by its exact (label, amount) pair. Overrides always win
// over detector inference.
type SubscriptionSetting struct {
	ID          uuid.UUID
	CoupleID    uuid.UUID
	Label       string
	Amount      decimal.Decimal
	IsShared    bool
	Frequency   BillingFrequency
	PayerUserID uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewSubscriptionSetting creates a new SubscriptionSetting entity.
func NewSubscriptionSetting(
	coupleID uuid.UUID,
	label string,
	amount decimal.Decimal,
	isShared bool,
	frequency BillingFrequency,
	payerUserID uuid.UUID,
) *SubscriptionSetting {
	now := time.Now().UTC()
	return &SubscriptionSetting{
		ID:          uuid.New(),
		CoupleID:    coupleID,
		Label:       label,
		Amount:      amount,
		IsShared:    isShared,
		Frequency:   frequency,
		PayerUserID: payerUserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// SubscriptionKey builds the exact-match clustering key for a recurring
// charge. Labels are case-sensitive and amounts compare exactly, with no
// fuzzy matching.
func SubscriptionKey(label string, amount decimal.Decimal) string {
	return label + "|" + amount.String()
}
