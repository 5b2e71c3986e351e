package entity

import "github.com/shopspring/decimal"

// PartnerTotals holds one partner's aggregate over the couple's shared
// transactions.
type PartnerTotals struct {
	TotalPaid decimal.Decimal // Σ|amount| of shared transactions this partner paid
	TotalOwed decimal.Decimal // What this partner owes the other, before settlements
}

// Balance is the derived harmonization view for a couple. It is recomputed
// from the current transaction and settlement sets on every request and is
// never persisted.
//
// NetBalance is signed: positive means user2 owes user1, negative the
// reverse. Settlements reduce its magnitude; an over-settlement may flip
// the sign, which is kept as meaningful history rather than clamped.
type Balance struct {
	User1        PartnerTotals
	User2        PartnerTotals
	NetBalance   decimal.Decimal
	SettledTotal decimal.Decimal
}
