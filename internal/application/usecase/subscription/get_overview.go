package subscription

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

// GetOverviewInput represents the input for the recurring-charge overview.
// Month and Year select the projection month; zero values default to the
// current month.
type GetOverviewInput struct {
	UserID uuid.UUID
	Month  int
	Year   int
}

// CandidateView decorates a detected candidate with the viewer-relative
// amounts the overview reports.
type CandidateView struct {
	*entity.SubscriptionCandidate

	// MonthlyEquivalent is the per-month cost of the nominal amount.
	MonthlyEquivalent decimal.Decimal

	// EffectiveAmount is the viewer's cost per billing period after sharing.
	EffectiveAmount decimal.Decimal

	// CalendarAmount is the cash leaving the viewer's account when the
	// charge bills; zero for shared charges debited to the partner.
	CalendarAmount decimal.Decimal

	// DueInMonth reports whether the charge is projected to bill in the
	// requested month.
	DueInMonth bool
}

// GetOverviewOutput represents the recomputed recurring-charge overview.
type GetOverviewOutput struct {
	Recurring []*CandidateView
	Expired   []*CandidateView
	Possible  []*entity.PossibleRecurring

	// MonthlyTotal sums the monthly equivalents of the viewer's effective
	// amounts across active candidates.
	MonthlyTotal decimal.Decimal

	// ProjectedMonthTotal sums the calendar amounts of active candidates
	// due in the requested month.
	ProjectedMonthTotal decimal.Decimal

	Month int
	Year  int
}

// GetOverviewUseCase recomputes the couple's recurring charges from the
// transaction history. Detection is derived state: nothing is persisted.
type GetOverviewUseCase struct {
	coupleRepo      adapter.CoupleRepository
	transactionRepo adapter.TransactionRepository
	settingRepo     adapter.SubscriptionSettingRepository
	now             func() time.Time
}

// NewGetOverviewUseCase creates a new GetOverviewUseCase instance.
func NewGetOverviewUseCase(
	coupleRepo adapter.CoupleRepository,
	transactionRepo adapter.TransactionRepository,
	settingRepo adapter.SubscriptionSettingRepository,
) *GetOverviewUseCase {
	return &GetOverviewUseCase{
		coupleRepo:      coupleRepo,
		transactionRepo: transactionRepo,
		settingRepo:     settingRepo,
		now:             time.Now,
	}
}

// Execute detects the couple's recurring charges and projects them onto
// the requested month.
func (uc *GetOverviewUseCase) Execute(ctx context.Context, input GetOverviewInput) (*GetOverviewOutput, error) {
	now := uc.now().UTC()

	month, year := resolveTargetMonth(input.Month, input.Year, now)
	if month < 1 || month > 12 {
		return nil, domainerror.NewSubscriptionError(
			domainerror.ErrCodeInvalidTargetMonth,
			fmt.Sprintf("invalid target month %d", month),
			domainerror.ErrInvalidTargetMonth,
		)
	}

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

	settings, err := uc.settingRepo.FindByCouple(ctx, couple.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load subscription settings: %w", err)
	}
	settingsByKey := make(map[string]*entity.SubscriptionSetting, len(settings))
	for _, s := range settings {
		settingsByKey[entity.SubscriptionKey(s.Label, s.Amount)] = s
	}

	detected := DetectSubscriptions(transactions, settingsByKey, input.UserID, now)

	output := &GetOverviewOutput{
		Possible:            detected.Possible,
		MonthlyTotal:        decimal.Zero,
		ProjectedMonthTotal: decimal.Zero,
		Month:               month,
		Year:                year,
	}

	for _, c := range detected.Recurring {
		view := uc.buildView(c, input.UserID, year, time.Month(month))
		output.Recurring = append(output.Recurring, view)

		output.MonthlyTotal = output.MonthlyTotal.Add(
			MonthlyEquivalent(view.EffectiveAmount, c.Frequency))
		if view.DueInMonth {
			output.ProjectedMonthTotal = output.ProjectedMonthTotal.Add(view.CalendarAmount)
		}
	}

	// Expired candidates are reported for review but excluded from totals.
	for _, c := range detected.Expired {
		output.Expired = append(output.Expired, uc.buildView(c, input.UserID, year, time.Month(month)))
	}

	return output, nil
}

// resolveTargetMonth defaults month and year independently to the
// current date, so a month-only query projects into the current year and
// a year-only query projects the current month of that year.
func resolveTargetMonth(month, year int, now time.Time) (int, int) {
	if month == 0 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}
	return month, year
}

func (uc *GetOverviewUseCase) buildView(c *entity.SubscriptionCandidate, viewerID uuid.UUID, year int, month time.Month) *CandidateView {
	return &CandidateView{
		SubscriptionCandidate: c,
		MonthlyEquivalent:     MonthlyEquivalent(c.Amount, c.Frequency),
		EffectiveAmount:       EffectiveAmount(c),
		CalendarAmount:        CalendarAmount(c, viewerID),
		DueInMonth:            IsDueInMonth(c, year, month),
	}
}
