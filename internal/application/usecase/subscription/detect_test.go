package subscription

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/duobudget/backend/internal/domain/entity"
)

var detectNow = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

func recurringTx(label string, amount float64, payer uuid.UUID, date time.Time) *entity.Transaction {
	return &entity.Transaction{
		ID:          uuid.New(),
		CoupleID:    uuid.New(),
		Date:        date,
		Label:       label,
		Amount:      decimal.NewFromFloat(amount),
		Type:        entity.TransactionTypeIndividual,
		PayerUserID: payer,
	}
}

// series builds n occurrences of the same (label, amount) spaced by the
// given interval, ending intervalDays before detectNow.
func series(label string, amount float64, payer uuid.UUID, n int, intervalDays int) []*entity.Transaction {
	txs := make([]*entity.Transaction, n)
	for i := 0; i < n; i++ {
		date := detectNow.AddDate(0, 0, -intervalDays*(n-i))
		txs[i] = recurringTx(label, amount, payer, date)
	}
	return txs
}

func TestDetectSubscriptions_MonthlyFromRegularGaps(t *testing.T) {
	viewer := uuid.New()
	txs := series("NETFLIX.COM", -15.99, viewer, 4, 30)

	result := DetectSubscriptions(txs, nil, viewer, detectNow)

	if len(result.Recurring) != 1 {
		t.Fatalf("recurring = %d, want 1", len(result.Recurring))
	}
	c := result.Recurring[0]
	if c.Frequency != entity.FrequencyMonthly {
		t.Errorf("frequency = %s, want monthly", c.Frequency)
	}
	if c.Occurrences != 4 {
		t.Errorf("occurrences = %d, want 4", c.Occurrences)
	}
	if len(c.TransactionIDs) != 4 {
		t.Errorf("transactionIDs = %d, want 4", len(c.TransactionIDs))
	}
	if c.IsFromPartner {
		t.Error("viewer's own charge must not be marked as partner-sourced")
	}
}

func TestDetectSubscriptions_ExactKeyMatching(t *testing.T) {
	viewer := uuid.New()
	// Same label, two different amounts: two separate clusters, each with
	// a single occurrence, so neither qualifies.
	txs := []*entity.Transaction{
		recurringTx("SPOTIFY", -9.99, viewer, detectNow.AddDate(0, -1, 0)),
		recurringTx("SPOTIFY", -10.99, viewer, detectNow.AddDate(0, 0, -2)),
	}

	result := DetectSubscriptions(txs, nil, viewer, detectNow)
	if len(result.Recurring) != 0 || len(result.Possible) != 0 {
		t.Errorf("price-changed charge must not cluster: recurring=%d possible=%d",
			len(result.Recurring), len(result.Possible))
	}

	// Case differs: separate clusters too.
	txs = append(series("Spotify", -9.99, viewer, 3, 30), series("SPOTIFY", -9.99, viewer, 3, 30)...)
	result = DetectSubscriptions(txs, nil, viewer, detectNow)
	if len(result.Recurring) != 2 {
		t.Errorf("case-sensitive labels must stay separate, recurring = %d, want 2", len(result.Recurring))
	}
}

func TestDetectSubscriptions_SingleOccurrenceIgnored(t *testing.T) {
	viewer := uuid.New()
	txs := []*entity.Transaction{recurringTx("GYM", -45, viewer, detectNow.AddDate(0, 0, -10))}

	result := DetectSubscriptions(txs, nil, viewer, detectNow)
	if len(result.Recurring)+len(result.Expired)+len(result.Possible) != 0 {
		t.Error("a single occurrence is not a candidate")
	}
}

func TestDetectSubscriptions_QuarterlySemiannualYearly(t *testing.T) {
	viewer := uuid.New()
	tests := []struct {
		name         string
		intervalDays int
		want         entity.BillingFrequency
	}{
		{"quarterly around 91 days", 91, entity.FrequencyQuarterly},
		{"semiannual around 182 days", 182, entity.FrequencySemiannual},
		{"yearly around 365 days", 365, entity.FrequencyYearly},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txs := series("INSURANCE", -120, viewer, 3, tt.intervalDays)
			result := DetectSubscriptions(txs, nil, viewer, detectNow)

			var all []*entity.SubscriptionCandidate
			all = append(all, result.Recurring...)
			all = append(all, result.Expired...)
			if len(all) != 1 {
				t.Fatalf("candidates = %d, want 1", len(all))
			}
			if all[0].Frequency != tt.want {
				t.Errorf("frequency = %s, want %s", all[0].Frequency, tt.want)
			}
		})
	}
}

func TestDetectSubscriptions_IrregularGapsGoToPossible(t *testing.T) {
	viewer := uuid.New()
	// Gaps of 10 and 130 days average to 70: fits no supported window.
	txs := []*entity.Transaction{
		recurringTx("TOPUP", -20, viewer, detectNow.AddDate(0, 0, -140)),
		recurringTx("TOPUP", -20, viewer, detectNow.AddDate(0, 0, -130)),
		recurringTx("TOPUP", -20, viewer, detectNow),
	}

	result := DetectSubscriptions(txs, nil, viewer, detectNow)
	if len(result.Recurring) != 0 {
		t.Fatalf("recurring = %d, want 0", len(result.Recurring))
	}
	if len(result.Possible) != 1 {
		t.Fatalf("possible = %d, want 1", len(result.Possible))
	}
	p := result.Possible[0]
	if p.Occurrences != 3 {
		t.Errorf("possible occurrences = %d, want 3", p.Occurrences)
	}
}

func TestDetectSubscriptions_ToleratesDateDrift(t *testing.T) {
	viewer := uuid.New()
	// Payment dates wobble around the month boundary; the mean gap still
	// lands in the monthly window.
	dates := []time.Time{
		time.Date(2025, 1, 28, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 30, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC),
	}
	txs := make([]*entity.Transaction, len(dates))
	for i, d := range dates {
		txs[i] = recurringTx("ELECTRICITY", -75.5, viewer, d)
	}

	result := DetectSubscriptions(txs, nil, viewer, detectNow)
	if len(result.Recurring) != 1 {
		t.Fatalf("recurring = %d, want 1", len(result.Recurring))
	}
	if result.Recurring[0].Frequency != entity.FrequencyMonthly {
		t.Errorf("frequency = %s, want monthly", result.Recurring[0].Frequency)
	}
}

func TestDetectSubscriptions_ExpiryAfterTwoMissedPeriods(t *testing.T) {
	viewer := uuid.New()
	// Monthly cadence but the last charge is ~200 days old: more than two
	// periods have passed without a new occurrence.
	old := detectNow.AddDate(0, 0, -200)
	txs := []*entity.Transaction{
		recurringTx("OLDMAG", -5, viewer, old.AddDate(0, 0, -60)),
		recurringTx("OLDMAG", -5, viewer, old.AddDate(0, 0, -30)),
		recurringTx("OLDMAG", -5, viewer, old),
	}

	result := DetectSubscriptions(txs, nil, viewer, detectNow)
	if len(result.Expired) != 1 {
		t.Fatalf("expired = %d, want 1 (recurring=%d)", len(result.Expired), len(result.Recurring))
	}
	if len(result.Recurring) != 0 {
		t.Errorf("recurring = %d, want 0", len(result.Recurring))
	}
}

func TestDetectSubscriptions_FrequencyOverrideReactivatesExpired(t *testing.T) {
	viewer := uuid.New()
	// Two charges 30 days apart, last one 200 days ago. Inferred monthly
	// it is expired; the user says it is yearly, and a yearly charge seen
	// 200 days ago is still alive.
	old := detectNow.AddDate(0, 0, -200)
	amount := decimal.NewFromFloat(-80)
	txs := []*entity.Transaction{
		recurringTx("DOMAIN-RENEWAL", -80, viewer, old.AddDate(0, 0, -30)),
		recurringTx("DOMAIN-RENEWAL", -80, viewer, old),
	}

	withoutOverride := DetectSubscriptions(txs, nil, viewer, detectNow)
	if len(withoutOverride.Expired) != 1 {
		t.Fatalf("without override: expired = %d, want 1", len(withoutOverride.Expired))
	}

	settings := map[string]*entity.SubscriptionSetting{
		entity.SubscriptionKey("DOMAIN-RENEWAL", amount): {
			Label:     "DOMAIN-RENEWAL",
			Amount:    amount,
			Frequency: entity.FrequencyYearly,
		},
	}
	withOverride := DetectSubscriptions(txs, settings, viewer, detectNow)
	if len(withOverride.Recurring) != 1 {
		t.Fatalf("with override: recurring = %d, want 1", len(withOverride.Recurring))
	}
	if withOverride.Recurring[0].Frequency != entity.FrequencyYearly {
		t.Errorf("frequency = %s, want yearly", withOverride.Recurring[0].Frequency)
	}
}

func TestDetectSubscriptions_ManualNeverExpires(t *testing.T) {
	viewer := uuid.New()
	amount := decimal.NewFromFloat(-33)
	old := detectNow.AddDate(-2, 0, 0)
	txs := []*entity.Transaction{
		recurringTx("CSA-BOX", -33, viewer, old.AddDate(0, 0, -30)),
		recurringTx("CSA-BOX", -33, viewer, old),
	}
	settings := map[string]*entity.SubscriptionSetting{
		entity.SubscriptionKey("CSA-BOX", amount): {
			Label:     "CSA-BOX",
			Amount:    amount,
			Frequency: entity.FrequencyManual,
		},
	}

	result := DetectSubscriptions(txs, settings, viewer, detectNow)
	if len(result.Recurring) != 1 {
		t.Fatalf("recurring = %d, want 1", len(result.Recurring))
	}
	if len(result.Expired) != 0 {
		t.Errorf("manual charges must never expire, expired = %d", len(result.Expired))
	}
}

func TestDetectSubscriptions_PartnerChargeIsForcedShared(t *testing.T) {
	viewer := uuid.New()
	partner := uuid.New()
	txs := series("AUDIBLE", -9.95, partner, 3, 30)

	result := DetectSubscriptions(txs, nil, viewer, detectNow)
	if len(result.Recurring) != 1 {
		t.Fatalf("recurring = %d, want 1", len(result.Recurring))
	}
	c := result.Recurring[0]
	if !c.IsFromPartner {
		t.Error("charge paid from partner's account must be marked partner-sourced")
	}
	if !c.IsShared {
		t.Error("partner-sourced charge must be shared")
	}
	if c.PayerUserID != partner {
		t.Errorf("payer = %s, want partner %s", c.PayerUserID, partner)
	}
}

func TestDetectSubscriptions_PartnerAttributionOverrideIgnored(t *testing.T) {
	viewer := uuid.New()
	partner := uuid.New()
	amount := decimal.NewFromFloat(-9.95)
	txs := series("AUDIBLE", -9.95, partner, 3, 30)

	// The viewer tries to claim the partner's charge as personal and
	// self-paid; only the frequency part of the override may apply.
	settings := map[string]*entity.SubscriptionSetting{
		entity.SubscriptionKey("AUDIBLE", amount): {
			Label:       "AUDIBLE",
			Amount:      amount,
			IsShared:    false,
			Frequency:   entity.FrequencyYearly,
			PayerUserID: viewer,
		},
	}

	result := DetectSubscriptions(txs, settings, viewer, detectNow)
	if len(result.Recurring) != 1 {
		t.Fatalf("recurring = %d, want 1", len(result.Recurring))
	}
	c := result.Recurring[0]
	if !c.IsFromPartner {
		t.Error("override must not clear the partner-sourced mark")
	}
	if !c.IsShared {
		t.Error("partner-sourced charge must stay shared despite the override")
	}
	if c.PayerUserID != partner {
		t.Errorf("payer = %s, want partner %s (override must not reassign)", c.PayerUserID, partner)
	}
	if c.Frequency != entity.FrequencyYearly {
		t.Errorf("frequency = %s, want yearly (frequency override still applies)", c.Frequency)
	}
}

func TestDetectSubscriptions_InternalTransfersExcluded(t *testing.T) {
	viewer := uuid.New()
	txs := series("SAVINGS SWEEP", -500, viewer, 4, 30)
	for _, tx := range txs {
		tx.Type = entity.TransactionTypeInternalTransfer
	}

	result := DetectSubscriptions(txs, nil, viewer, detectNow)
	if len(result.Recurring)+len(result.Expired)+len(result.Possible) != 0 {
		t.Error("internal transfers must never form candidates")
	}
}

func TestDetectSubscriptions_DeterministicOrder(t *testing.T) {
	viewer := uuid.New()
	txs := append(series("B-SERVICE", -10, viewer, 3, 30), series("A-SERVICE", -10, viewer, 3, 30)...)

	first := DetectSubscriptions(txs, nil, viewer, detectNow)
	second := DetectSubscriptions(txs, nil, viewer, detectNow)

	if len(first.Recurring) != 2 || len(second.Recurring) != 2 {
		t.Fatalf("recurring = %d/%d, want 2/2", len(first.Recurring), len(second.Recurring))
	}
	for i := range first.Recurring {
		if first.Recurring[i].Label != second.Recurring[i].Label {
			t.Fatalf("order differs between runs at %d: %s vs %s",
				i, first.Recurring[i].Label, second.Recurring[i].Label)
		}
	}
	if first.Recurring[0].Label != "A-SERVICE" {
		t.Errorf("first candidate = %s, want A-SERVICE (sorted by key)", first.Recurring[0].Label)
	}
}
