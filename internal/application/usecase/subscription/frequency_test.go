package subscription

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/duobudget/backend/internal/domain/entity"
)

func TestMonthlyEquivalent(t *testing.T) {
	tests := []struct {
		name      string
		amount    string
		frequency entity.BillingFrequency
		want      string
	}{
		{"monthly is unchanged", "9.99", entity.FrequencyMonthly, "9.99"},
		{"quarterly divides by three", "30", entity.FrequencyQuarterly, "10"},
		{"semiannual divides by six", "60", entity.FrequencySemiannual, "10"},
		{"yearly divides by twelve", "120", entity.FrequencyYearly, "10"},
		{"manual is unchanged", "15", entity.FrequencyManual, "15"},
		{"weekly multiplies by 4.33", "10", entity.FrequencyWeekly, "43.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount := decimal.RequireFromString(tt.amount)
			got := MonthlyEquivalent(amount, tt.frequency)
			want := decimal.RequireFromString(tt.want)
			if !got.Equal(want) {
				t.Errorf("MonthlyEquivalent(%s, %s) = %s, want %s", tt.amount, tt.frequency, got, want)
			}
		})
	}
}

func TestMonthlyEquivalent_YearlyKeepsPrecision(t *testing.T) {
	// 100/12 does not terminate; the result must still multiply back.
	amount := decimal.NewFromInt(100)
	monthly := MonthlyEquivalent(amount, entity.FrequencyYearly)
	if monthly.Mul(decimal.NewFromInt(12)).Sub(amount).Abs().GreaterThan(decimal.NewFromFloat(0.0001)) {
		t.Errorf("yearly normalization lost precision: %s * 12 != 100", monthly)
	}
}

func TestValidOverrideFrequency(t *testing.T) {
	valid := []entity.BillingFrequency{
		entity.FrequencyMonthly,
		entity.FrequencyQuarterly,
		entity.FrequencySemiannual,
		entity.FrequencyYearly,
		entity.FrequencyManual,
	}
	for _, f := range valid {
		if !ValidOverrideFrequency(f) {
			t.Errorf("ValidOverrideFrequency(%s) = false, want true", f)
		}
	}

	invalid := []entity.BillingFrequency{entity.FrequencyWeekly, "daily", ""}
	for _, f := range invalid {
		if ValidOverrideFrequency(f) {
			t.Errorf("ValidOverrideFrequency(%q) = true, want false", f)
		}
	}
}
