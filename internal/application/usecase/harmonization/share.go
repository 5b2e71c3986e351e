// Package harmonization contains the expense harmonization use cases: the
// couple's who-owes-whom ledger and its settlement history.
package harmonization

import "github.com/shopspring/decimal"

// defaultRatio is the even split applied when a shared transaction
// carries no explicit ratio.
var defaultRatio = decimal.NewFromFloat(0.5)

var one = decimal.NewFromInt(1)

// Share returns the amount the non-paying partner owes the payer for a
// single shared transaction. The ratio is user1's fraction of the amount,
// so when user1 paid, user2 owes |amount| * (1 - ratio); when user2 paid,
// user1 owes |amount| * ratio. A nil ratio means 50/50. Ratios of exactly
// 0 or 1 are valid: the whole cost belongs to one partner.
func Share(amount decimal.Decimal, ratio *decimal.Decimal, payerIsUser1 bool) decimal.Decimal {
	r := defaultRatio
	if ratio != nil {
		r = *ratio
	}

	abs := amount.Abs()
	if payerIsUser1 {
		return abs.Mul(one.Sub(r))
	}
	return abs.Mul(r)
}

// validRatio reports whether a ratio lies in [0,1]. Nil is valid (defaulted).
func validRatio(ratio *decimal.Decimal) bool {
	if ratio == nil {
		return true
	}
	return !ratio.IsNegative() && !ratio.GreaterThan(one)
}
