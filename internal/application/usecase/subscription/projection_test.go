package subscription

import (
	"testing"
	"time"

	"github.com/duobudget/backend/internal/domain/entity"
)

func candidateFirstSeen(frequency entity.BillingFrequency, first time.Time) *entity.SubscriptionCandidate {
	return &entity.SubscriptionCandidate{
		Label:     "candidate",
		FirstDate: first,
		LastDate:  first,
		Frequency: frequency,
	}
}

func TestIsDueInMonth_MonthlyEveryMonth(t *testing.T) {
	c := candidateFirstSeen(entity.FrequencyMonthly, time.Date(2024, 7, 5, 0, 0, 0, 0, time.UTC))

	for m := time.January; m <= time.December; m++ {
		if !IsDueInMonth(c, 2025, m) {
			t.Errorf("monthly charge not due in 2025-%02d", m)
		}
	}
}

func TestIsDueInMonth_QuarterlyPhaseAnchor(t *testing.T) {
	// First seen in February: due Feb, May, Aug, Nov — not the calendar
	// quarters starting in January.
	c := candidateFirstSeen(entity.FrequencyQuarterly, time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC))

	due := map[time.Month]bool{
		time.February: true, time.May: true, time.August: true, time.November: true,
	}
	for m := time.January; m <= time.December; m++ {
		if got := IsDueInMonth(c, 2025, m); got != due[m] {
			t.Errorf("quarterly due in 2025-%02d = %v, want %v", m, got, due[m])
		}
	}
}

func TestIsDueInMonth_YearlyOnlyInAnchorMonth(t *testing.T) {
	c := candidateFirstSeen(entity.FrequencyYearly, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))

	for year := 2024; year <= 2028; year++ {
		for m := time.January; m <= time.December; m++ {
			want := m == time.March
			if got := IsDueInMonth(c, year, m); got != want {
				t.Errorf("yearly due in %d-%02d = %v, want %v", year, m, got, want)
			}
		}
	}
}

func TestIsDueInMonth_SemiannualCrossesYearBoundary(t *testing.T) {
	// First seen in October 2024: due again in April 2025.
	c := candidateFirstSeen(entity.FrequencySemiannual, time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC))

	if !IsDueInMonth(c, 2025, time.April) {
		t.Error("semiannual charge from October must be due the following April")
	}
	if IsDueInMonth(c, 2025, time.January) {
		t.Error("semiannual charge from October must not be due in January")
	}
}

func TestIsDueInMonth_BeforeFirstOccurrence(t *testing.T) {
	c := candidateFirstSeen(entity.FrequencyMonthly, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))

	if IsDueInMonth(c, 2025, time.May) {
		t.Error("nothing is due before the first observed occurrence")
	}
	if !IsDueInMonth(c, 2025, time.June) {
		t.Error("the anchor month itself is due")
	}
}

func TestIsDueInMonth_ManualDueEveryMonth(t *testing.T) {
	c := candidateFirstSeen(entity.FrequencyManual, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC))

	for m := time.January; m <= time.December; m++ {
		if !IsDueInMonth(c, 2025, m) {
			t.Errorf("manual charge not due in 2025-%02d", m)
		}
	}
}

func TestIsDueInMonth_WeeklyNeverProjected(t *testing.T) {
	// Weekly exists only for monthly-average estimates; it is never
	// inferred and carries no projectable period.
	c := candidateFirstSeen(entity.FrequencyWeekly, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	for m := time.January; m <= time.December; m++ {
		if IsDueInMonth(c, 2025, m) {
			t.Errorf("weekly charge projected into 2025-%02d", m)
		}
	}
}
