package subscription

import (
	"time"

	"github.com/duobudget/backend/internal/domain/entity"
)

// monthIndex linearizes a calendar month so period arithmetic never has
// to reason about year boundaries.
func monthIndex(year int, month time.Month) int {
	return year*12 + int(month) - 1
}

// IsDueInMonth reports whether the candidate is expected to bill in the
// given calendar month. Projection is anchored on the first observed
// occurrence: a quarterly charge first seen in January is due in January,
// April, July and October of every year. Manual charges carry no period
// and count as due every month, like monthly ones.
func IsDueInMonth(candidate *entity.SubscriptionCandidate, year int, month time.Month) bool {
	if candidate.Frequency == entity.FrequencyManual {
		return true
	}

	period := candidate.Frequency.PeriodMonths()
	if period == 0 {
		return false
	}

	anchor := monthIndex(candidate.FirstDate.Year(), candidate.FirstDate.Month())
	target := monthIndex(year, month)
	if target < anchor {
		return false
	}
	return (target-anchor)%period == 0
}
