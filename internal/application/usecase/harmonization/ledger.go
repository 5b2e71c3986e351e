package harmonization

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/duobudget/backend/internal/domain/entity"
	domainerror "github.com/duobudget/backend/internal/domain/error"
)

// Warning is a per-record data-quality issue found while folding the
// ledger. Warnings never abort the computation; the offending record is
// skipped and reported so one bad import row cannot hide the whole view.
type Warning struct {
	Code          domainerror.HarmonizationErrorCode
	Message       string
	TransactionID uuid.UUID
}

// ComputeBalance folds the couple's shared transactions and settlement
// history into a Balance. It is a pure function over the supplied
// snapshot: no I/O, no caching, full recompute on every call.
//
// Shared expenses accrue the counterpart's share to the payer; shared
// income accrues in the opposite direction (the receiver owes the other
// partner their share), so income nets against expense instead of being
// summed as if both were debts. Settlements reduce the magnitude of the
// pre-settlement net in its own direction. The result is never clamped
// at zero: an over-settlement flips the sign, and that flipped balance
// is meaningful history.
func ComputeBalance(
	couple *entity.Couple,
	transactions []*entity.Transaction,
	settlements []*entity.Settlement,
) (*entity.Balance, []Warning, error) {
	if couple == nil {
		return nil, nil, domainerror.NewHarmonizationError(
			domainerror.ErrCodeMissingCouple,
			"couple is required to compute a balance",
			domainerror.ErrMissingCouple,
		)
	}

	balance := &entity.Balance{
		User1: entity.PartnerTotals{TotalPaid: decimal.Zero, TotalOwed: decimal.Zero},
		User2: entity.PartnerTotals{TotalPaid: decimal.Zero, TotalOwed: decimal.Zero},
	}

	var warnings []Warning
	owedToUser1 := decimal.Zero
	owedToUser2 := decimal.Zero

	for _, tx := range transactions {
		if tx.Type != entity.TransactionTypeShared {
			continue
		}

		// A ratio outside [0,1] is an implementation error upstream, not
		// a user error: refuse to compute rather than clamp.
		if !validRatio(tx.Ratio) {
			return nil, nil, domainerror.NewHarmonizationError(
				domainerror.ErrCodeInvalidRatio,
				fmt.Sprintf("ratio %s outside [0,1] on transaction %s", tx.Ratio, tx.ID),
				domainerror.ErrInvalidRatio,
			)
		}

		if !couple.HasMember(tx.PayerUserID) {
			warnings = append(warnings, Warning{
				Code:          domainerror.WarnCodeAmbiguousPayer,
				Message:       fmt.Sprintf("payer %s is not a member of the couple", tx.PayerUserID),
				TransactionID: tx.ID,
			})
			continue
		}

		payerIsUser1 := tx.PayerUserID == couple.User1ID
		abs := tx.Amount.Abs()
		counterpartShare := Share(tx.Amount, tx.Ratio, payerIsUser1)

		if payerIsUser1 {
			balance.User1.TotalPaid = balance.User1.TotalPaid.Add(abs)
			if tx.IsExpense() {
				owedToUser1 = owedToUser1.Add(counterpartShare)
			} else {
				owedToUser2 = owedToUser2.Add(counterpartShare)
			}
		} else {
			balance.User2.TotalPaid = balance.User2.TotalPaid.Add(abs)
			if tx.IsExpense() {
				owedToUser2 = owedToUser2.Add(counterpartShare)
			} else {
				owedToUser1 = owedToUser1.Add(counterpartShare)
			}
		}
	}

	balance.User1.TotalOwed = owedToUser2
	balance.User2.TotalOwed = owedToUser1

	netBefore := owedToUser1.Sub(owedToUser2)

	settled := decimal.Zero
	for _, s := range settlements {
		settled = settled.Add(s.Amount)
	}
	balance.SettledTotal = settled

	// Settlements are recorded as "net debtor pays net creditor" at
	// creation time, so their sum reduces the outstanding magnitude in
	// whichever direction the raw ledger points.
	if netBefore.IsNegative() {
		balance.NetBalance = netBefore.Add(settled)
	} else {
		balance.NetBalance = netBefore.Sub(settled)
	}

	return balance, warnings, nil
}
