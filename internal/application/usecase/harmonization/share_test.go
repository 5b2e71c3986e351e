package harmonization

import (
	"testing"

	"github.com/shopspring/decimal"
)

func ratioOf(f float64) *decimal.Decimal {
	r := decimal.NewFromFloat(f)
	return &r
}

func TestShare(t *testing.T) {
	tests := []struct {
		name         string
		amount       decimal.Decimal
		ratio        *decimal.Decimal
		payerIsUser1 bool
		want         string
	}{
		{
			name:         "even split, user1 paid",
			amount:       decimal.NewFromInt(-100),
			ratio:        ratioOf(0.5),
			payerIsUser1: true,
			want:         "50",
		},
		{
			name:         "even split, user2 paid",
			amount:       decimal.NewFromInt(-100),
			ratio:        ratioOf(0.5),
			payerIsUser1: false,
			want:         "50",
		},
		{
			name:         "nil ratio defaults to 50/50",
			amount:       decimal.NewFromInt(-80),
			ratio:        nil,
			payerIsUser1: true,
			want:         "40",
		},
		{
			name:         "70/30 split, user1 paid, user2 owes 30%",
			amount:       decimal.NewFromInt(-100),
			ratio:        ratioOf(0.7),
			payerIsUser1: true,
			want:         "30",
		},
		{
			name:         "70/30 split, user2 paid, user1 owes 70%",
			amount:       decimal.NewFromInt(-100),
			ratio:        ratioOf(0.7),
			payerIsUser1: false,
			want:         "70",
		},
		{
			name:         "ratio exactly 0 is valid, user1 paid owes everything to user1",
			amount:       decimal.NewFromInt(-60),
			ratio:        ratioOf(0),
			payerIsUser1: true,
			want:         "60",
		},
		{
			name:         "ratio exactly 1 is valid, user1 paid, user2 owes nothing",
			amount:       decimal.NewFromInt(-60),
			ratio:        ratioOf(1),
			payerIsUser1: true,
			want:         "0",
		},
		{
			name:         "ratio exactly 0, user2 paid, user1 owes nothing",
			amount:       decimal.NewFromInt(-60),
			ratio:        ratioOf(0),
			payerIsUser1: false,
			want:         "0",
		},
		{
			name:         "positive amount uses absolute value",
			amount:       decimal.NewFromInt(200),
			ratio:        ratioOf(0.5),
			payerIsUser1: true,
			want:         "100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Share(tt.amount, tt.ratio, tt.payerIsUser1)
			want := decimal.RequireFromString(tt.want)
			if !got.Equal(want) {
				t.Errorf("Share() = %s, want %s", got, want)
			}
		})
	}
}

// The two orientations answer different questions, but together they must
// account for the whole amount: share to user1 plus share to user2 under
// the same ratio equals |amount|.
func TestShare_RatioContract(t *testing.T) {
	amount := decimal.NewFromFloat(-123.45)

	for _, f := range []float64{0, 0.1, 0.25, 0.5, 0.75, 0.9, 1} {
		r := ratioOf(f)
		toPayer1 := Share(amount, r, true)
		toPayer2 := Share(amount, r, false)

		if !toPayer1.Equal(amount.Abs().Mul(one.Sub(*r))) {
			t.Errorf("ratio %v: Share(true) = %s, want |amount|*(1-r)", f, toPayer1)
		}
		if !toPayer2.Equal(amount.Abs().Mul(*r)) {
			t.Errorf("ratio %v: Share(false) = %s, want |amount|*r", f, toPayer2)
		}
		if !toPayer1.Add(toPayer2).Equal(amount.Abs()) {
			t.Errorf("ratio %v: shares do not sum to |amount|", f)
		}
	}
}
