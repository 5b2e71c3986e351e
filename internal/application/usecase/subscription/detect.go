package subscription

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/duobudget/backend/internal/domain/entity"
)

// Gap windows, in days, used to infer a billing frequency from the
// spacing between consecutive occurrences. Real bank dates drift around
// weekends and month lengths, so each window is generous but the windows
// never overlap.
const (
	monthlyGapMin    = 24
	monthlyGapMax    = 38
	quarterlyGapMin  = 80
	quarterlyGapMax  = 100
	semiannualGapMin = 170
	semiannualGapMax = 195
	yearlyGapMin     = 340
	yearlyGapMax     = 390
)

// minOccurrences is the smallest cluster size treated as a candidate.
const minOccurrences = 2

// DetectionResult buckets the clusters found in a transaction history.
// Expired candidates stay visible and editable: a mis-set frequency makes
// an active subscription look expired, and correcting the frequency must
// bring it back on the next computation pass.
type DetectionResult struct {
	Recurring []*entity.SubscriptionCandidate
	Expired   []*entity.SubscriptionCandidate
	Possible  []*entity.PossibleRecurring
}

// DetectSubscriptions clusters the transaction history into recurring
// charge candidates. Grouping is by exact (label, amount) key —
// case-sensitive, amount-exact, no fuzzy matching. Settings override the
// inferred frequency and attribution for matching keys. The viewer is
// passed so candidates sourced from the partner's import can be marked.
//
// Pure function over the supplied snapshot; "now" is injected to keep the
// expiry judgment testable.
func DetectSubscriptions(
	transactions []*entity.Transaction,
	settings map[string]*entity.SubscriptionSetting,
	viewerID uuid.UUID,
	now time.Time,
) *DetectionResult {
	groups := make(map[string][]*entity.Transaction)
	for _, tx := range transactions {
		// Internal transfers move money between the couple's own
		// accounts and are never subscriptions.
		if tx.Type == entity.TransactionTypeInternalTransfer {
			continue
		}
		key := entity.SubscriptionKey(tx.Label, tx.Amount)
		groups[key] = append(groups[key], tx)
	}

	// Deterministic output order regardless of map iteration.
	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	result := &DetectionResult{}

	for _, key := range keys {
		occurrences := groups[key]
		if len(occurrences) < minOccurrences {
			continue
		}

		sort.Slice(occurrences, func(i, j int) bool {
			return occurrences[i].Date.Before(occurrences[j].Date)
		})

		latest := occurrences[len(occurrences)-1]
		inferred, ok := inferFrequency(occurrences)
		setting := settings[key]

		if !ok && (setting == nil || setting.Frequency == "") {
			// Gaps cluster near no supported period: surface the group
			// without asserting a frequency.
			result.Possible = append(result.Possible, &entity.PossibleRecurring{
				Label:       latest.Label,
				Amount:      latest.Amount,
				Occurrences: len(occurrences),
				LastDate:    latest.Date,
			})
			continue
		}

		candidate := buildCandidate(occurrences, inferred, setting, viewerID)

		if isExpired(candidate, now) {
			result.Expired = append(result.Expired, candidate)
		} else {
			result.Recurring = append(result.Recurring, candidate)
		}
	}

	return result
}

// buildCandidate assembles a candidate from its sorted occurrences,
// applying the setting override when present.
func buildCandidate(
	occurrences []*entity.Transaction,
	inferred entity.BillingFrequency,
	setting *entity.SubscriptionSetting,
	viewerID uuid.UUID,
) *entity.SubscriptionCandidate {
	first := occurrences[0]
	last := occurrences[len(occurrences)-1]

	daySum := 0
	ids := make([]uuid.UUID, len(occurrences))
	for i, tx := range occurrences {
		daySum += tx.Date.Day()
		ids[i] = tx.ID
	}

	candidate := &entity.SubscriptionCandidate{
		Label:          last.Label,
		Amount:         last.Amount,
		Occurrences:    len(occurrences),
		AvgDayOfMonth:  (daySum + len(occurrences)/2) / len(occurrences),
		FirstDate:      first.Date,
		LastDate:       last.Date,
		Frequency:      inferred,
		TransactionIDs: ids,
		IsShared:       last.Type == entity.TransactionTypeShared,
		PayerUserID:    last.PayerUserID,
	}

	// A charge that moved through the partner's account is the partner's
	// import: always shared, payer fixed to the partner. Resolved from the
	// source transactions before any override is considered, so a stored
	// setting cannot reassign the partner's charge to the viewer.
	if candidate.PayerUserID != uuid.Nil && candidate.PayerUserID != viewerID {
		candidate.IsFromPartner = true
		candidate.IsShared = true
	}

	// The user's stored override wins over inference. Attribution on a
	// partner-sourced charge is not editable by the viewer; only the
	// frequency override applies there.
	if setting != nil {
		if setting.Frequency != "" {
			candidate.Frequency = setting.Frequency
		}
		if !candidate.IsFromPartner {
			candidate.IsShared = setting.IsShared
			if setting.PayerUserID != uuid.Nil {
				candidate.PayerUserID = setting.PayerUserID
			}
		}
	}

	return candidate
}

// inferFrequency derives a billing frequency from the mean gap between
// consecutive occurrences. The mean, not individual gaps, is compared so
// a single shifted payment date does not disqualify a regular charge.
func inferFrequency(occurrences []*entity.Transaction) (entity.BillingFrequency, bool) {
	if len(occurrences) < 2 {
		return "", false
	}

	totalDays := 0.0
	for i := 1; i < len(occurrences); i++ {
		gap := occurrences[i].Date.Sub(occurrences[i-1].Date).Hours() / 24
		totalDays += gap
	}
	avgGap := totalDays / float64(len(occurrences)-1)

	switch {
	case avgGap >= monthlyGapMin && avgGap <= monthlyGapMax:
		return entity.FrequencyMonthly, true
	case avgGap >= quarterlyGapMin && avgGap <= quarterlyGapMax:
		return entity.FrequencyQuarterly, true
	case avgGap >= semiannualGapMin && avgGap <= semiannualGapMax:
		return entity.FrequencySemiannual, true
	case avgGap >= yearlyGapMin && avgGap <= yearlyGapMax:
		return entity.FrequencyYearly, true
	default:
		return "", false
	}
}

// isExpired reports whether the candidate's next expected occurrence
// (lastDate + one period) is more than one full period in the past. The
// effective frequency is used, so reassigning the frequency on an expired
// candidate reactivates it on the next pass. Manual charges never expire.
func isExpired(candidate *entity.SubscriptionCandidate, now time.Time) bool {
	period := candidate.Frequency.PeriodMonths()
	if period == 0 {
		return false
	}
	cutoff := candidate.LastDate.AddDate(0, 2*period, 0)
	return now.After(cutoff)
}
