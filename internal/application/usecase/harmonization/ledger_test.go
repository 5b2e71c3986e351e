package harmonization

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/duobudget/backend/internal/domain/entity"
	domainerror "github.com/duobudget/backend/internal/domain/error"
)

func testCouple() *entity.Couple {
	return &entity.Couple{
		ID:      uuid.New(),
		User1ID: uuid.New(),
		User2ID: uuid.New(),
	}
}

func sharedTx(couple *entity.Couple, amount float64, ratio *decimal.Decimal, payer uuid.UUID) *entity.Transaction {
	return &entity.Transaction{
		ID:          uuid.New(),
		CoupleID:    couple.ID,
		Date:        time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Label:       "test",
		Amount:      decimal.NewFromFloat(amount),
		Type:        entity.TransactionTypeShared,
		Ratio:       ratio,
		PayerUserID: payer,
	}
}

func settlement(couple *entity.Couple, amount float64) *entity.Settlement {
	return &entity.Settlement{
		ID:        uuid.New(),
		CoupleID:  couple.ID,
		Amount:    decimal.NewFromFloat(amount),
		SettledAt: time.Now().UTC(),
	}
}

func TestComputeBalance_SimpleSplit(t *testing.T) {
	couple := testCouple()
	txs := []*entity.Transaction{
		sharedTx(couple, -100, ratioOf(0.5), couple.User1ID),
	}

	balance, warnings, err := ComputeBalance(couple, txs, nil)
	if err != nil {
		t.Fatalf("ComputeBalance() error = %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("expected no warnings, got %d", len(warnings))
	}

	if !balance.User1.TotalPaid.Equal(decimal.NewFromInt(100)) {
		t.Errorf("user1 totalPaid = %s, want 100", balance.User1.TotalPaid)
	}
	if !balance.User2.TotalOwed.Equal(decimal.NewFromInt(50)) {
		t.Errorf("user2 totalOwed = %s, want 50", balance.User2.TotalOwed)
	}
	if !balance.NetBalance.Equal(decimal.NewFromInt(50)) {
		t.Errorf("netBalance = %s, want 50 (user2 owes user1)", balance.NetBalance)
	}
	if !balance.NetBalance.IsPositive() {
		t.Error("netBalance should be positive when user2 owes user1")
	}
}

func TestComputeBalance_ZeroSumWhenPaidEqually(t *testing.T) {
	couple := testCouple()
	txs := []*entity.Transaction{
		sharedTx(couple, -80, ratioOf(0.5), couple.User1ID),
		sharedTx(couple, -80, ratioOf(0.5), couple.User2ID),
	}

	balance, _, err := ComputeBalance(couple, txs, nil)
	if err != nil {
		t.Fatalf("ComputeBalance() error = %v", err)
	}

	if !balance.User1.TotalPaid.Equal(balance.User2.TotalPaid) {
		t.Fatalf("totalPaid differs: %s vs %s", balance.User1.TotalPaid, balance.User2.TotalPaid)
	}
	if !balance.NetBalance.IsZero() {
		t.Errorf("netBalance = %s, want 0", balance.NetBalance)
	}
}

func TestComputeBalance_SharedIncomeNetsAgainstExpense(t *testing.T) {
	couple := testCouple()
	// User1 fronts a 100 expense (user2 owes 50), then user1 receives
	// 40 of shared income (user1 owes user2 their 20). Net: user2 owes 30.
	txs := []*entity.Transaction{
		sharedTx(couple, -100, ratioOf(0.5), couple.User1ID),
		sharedTx(couple, 40, ratioOf(0.5), couple.User1ID),
	}

	balance, _, err := ComputeBalance(couple, txs, nil)
	if err != nil {
		t.Fatalf("ComputeBalance() error = %v", err)
	}

	if !balance.NetBalance.Equal(decimal.NewFromInt(30)) {
		t.Errorf("netBalance = %s, want 30", balance.NetBalance)
	}
	// Income still counts into the payer's paid volume.
	if !balance.User1.TotalPaid.Equal(decimal.NewFromInt(140)) {
		t.Errorf("user1 totalPaid = %s, want 140", balance.User1.TotalPaid)
	}
}

func TestComputeBalance_IgnoresNonSharedTransactions(t *testing.T) {
	couple := testCouple()
	individual := sharedTx(couple, -500, nil, couple.User1ID)
	individual.Type = entity.TransactionTypeIndividual
	transfer := sharedTx(couple, -200, nil, couple.User1ID)
	transfer.Type = entity.TransactionTypeInternalTransfer

	balance, _, err := ComputeBalance(couple, []*entity.Transaction{individual, transfer}, nil)
	if err != nil {
		t.Fatalf("ComputeBalance() error = %v", err)
	}
	if !balance.NetBalance.IsZero() || !balance.User1.TotalPaid.IsZero() {
		t.Errorf("non-shared transactions must not affect the balance, got net=%s paid=%s",
			balance.NetBalance, balance.User1.TotalPaid)
	}
}

func TestComputeBalance_InvalidRatioIsFatal(t *testing.T) {
	couple := testCouple()
	txs := []*entity.Transaction{
		sharedTx(couple, -100, ratioOf(1.5), couple.User1ID),
	}

	_, _, err := ComputeBalance(couple, txs, nil)
	if err == nil {
		t.Fatal("expected error for ratio outside [0,1]")
	}
	if !errors.Is(err, domainerror.ErrInvalidRatio) {
		t.Errorf("error = %v, want ErrInvalidRatio", err)
	}

	var hErr *domainerror.HarmonizationError
	if !errors.As(err, &hErr) {
		t.Fatal("expected a HarmonizationError")
	}
	if hErr.Code != domainerror.ErrCodeInvalidRatio {
		t.Errorf("code = %s, want %s", hErr.Code, domainerror.ErrCodeInvalidRatio)
	}
}

func TestComputeBalance_AmbiguousPayerIsSkippedWithWarning(t *testing.T) {
	couple := testCouple()
	stranger := uuid.New()
	good := sharedTx(couple, -100, ratioOf(0.5), couple.User1ID)
	bad := sharedTx(couple, -999, ratioOf(0.5), stranger)

	balance, warnings, err := ComputeBalance(couple, []*entity.Transaction{good, bad}, nil)
	if err != nil {
		t.Fatalf("one bad record must not abort the computation: %v", err)
	}

	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(warnings))
	}
	if warnings[0].Code != domainerror.WarnCodeAmbiguousPayer {
		t.Errorf("warning code = %s, want %s", warnings[0].Code, domainerror.WarnCodeAmbiguousPayer)
	}
	if warnings[0].TransactionID != bad.ID {
		t.Errorf("warning transaction = %s, want %s", warnings[0].TransactionID, bad.ID)
	}

	// The skipped record contributes nothing.
	if !balance.NetBalance.Equal(decimal.NewFromInt(50)) {
		t.Errorf("netBalance = %s, want 50", balance.NetBalance)
	}
}

func TestComputeBalance_FullSettlementZeroesBalance(t *testing.T) {
	couple := testCouple()
	txs := []*entity.Transaction{
		sharedTx(couple, -100, ratioOf(0.5), couple.User1ID),
	}
	settlements := []*entity.Settlement{settlement(couple, 50)}

	balance, _, err := ComputeBalance(couple, txs, settlements)
	if err != nil {
		t.Fatalf("ComputeBalance() error = %v", err)
	}
	if !balance.NetBalance.IsZero() {
		t.Errorf("netBalance = %s, want 0 after full settlement", balance.NetBalance)
	}
	if !balance.SettledTotal.Equal(decimal.NewFromInt(50)) {
		t.Errorf("settledTotal = %s, want 50", balance.SettledTotal)
	}
}

func TestComputeBalance_SettlementReducesNegativeDirectionToo(t *testing.T) {
	couple := testCouple()
	// User2 fronts everything: user1 owes 60, net is negative.
	txs := []*entity.Transaction{
		sharedTx(couple, -120, ratioOf(0.5), couple.User2ID),
	}

	balance, _, err := ComputeBalance(couple, txs, []*entity.Settlement{settlement(couple, 60)})
	if err != nil {
		t.Fatalf("ComputeBalance() error = %v", err)
	}
	if !balance.NetBalance.IsZero() {
		t.Errorf("netBalance = %s, want 0", balance.NetBalance)
	}
}

func TestComputeBalance_OverSettlementFlipsSignWithoutClamping(t *testing.T) {
	couple := testCouple()
	txs := []*entity.Transaction{
		sharedTx(couple, -100, ratioOf(0.5), couple.User1ID),
	}
	// User mistakenly settles 80 against an outstanding 50.
	balance, _, err := ComputeBalance(couple, txs, []*entity.Settlement{settlement(couple, 80)})
	if err != nil {
		t.Fatalf("ComputeBalance() error = %v", err)
	}
	if !balance.NetBalance.Equal(decimal.NewFromInt(-30)) {
		t.Errorf("netBalance = %s, want -30 (over-settlement kept, not clamped)", balance.NetBalance)
	}
}

func TestComputeBalance_SettlementReversalIsExact(t *testing.T) {
	couple := testCouple()
	txs := []*entity.Transaction{
		sharedTx(couple, -100, ratioOf(0.5), couple.User1ID),
		sharedTx(couple, -35.5, ratioOf(0.3), couple.User2ID),
	}
	s := settlement(couple, 25)
	base := []*entity.Settlement{settlement(couple, 10)}

	before, _, err := ComputeBalance(couple, txs, base)
	if err != nil {
		t.Fatalf("ComputeBalance() error = %v", err)
	}

	withS, _, err := ComputeBalance(couple, txs, append(append([]*entity.Settlement{}, base...), s))
	if err != nil {
		t.Fatalf("ComputeBalance() error = %v", err)
	}
	if withS.NetBalance.Equal(before.NetBalance) {
		t.Fatal("settlement should have changed the balance")
	}

	// Voiding s is just recomputing without it: no residual drift.
	after, _, err := ComputeBalance(couple, txs, base)
	if err != nil {
		t.Fatalf("ComputeBalance() error = %v", err)
	}
	if !after.NetBalance.Equal(before.NetBalance) {
		t.Errorf("after reversal netBalance = %s, want %s", after.NetBalance, before.NetBalance)
	}
	if !after.SettledTotal.Equal(before.SettledTotal) {
		t.Errorf("after reversal settledTotal = %s, want %s", after.SettledTotal, before.SettledTotal)
	}
}

func TestComputeBalance_NilCoupleIsFatal(t *testing.T) {
	_, _, err := ComputeBalance(nil, nil, nil)
	if err == nil {
		t.Fatal("expected error for nil couple")
	}
	if !errors.Is(err, domainerror.ErrMissingCouple) {
		t.Errorf("error = %v, want ErrMissingCouple", err)
	}
}

func TestComputeBalance_AsymmetricRatios(t *testing.T) {
	couple := testCouple()
	// 100 expense at ratio 0.7 paid by user1: user2 owes 30.
	// 50 expense at ratio 0.2 paid by user2: user1 owes 10.
	txs := []*entity.Transaction{
		sharedTx(couple, -100, ratioOf(0.7), couple.User1ID),
		sharedTx(couple, -50, ratioOf(0.2), couple.User2ID),
	}

	balance, _, err := ComputeBalance(couple, txs, nil)
	if err != nil {
		t.Fatalf("ComputeBalance() error = %v", err)
	}

	if !balance.User2.TotalOwed.Equal(decimal.NewFromInt(30)) {
		t.Errorf("user2 totalOwed = %s, want 30", balance.User2.TotalOwed)
	}
	if !balance.User1.TotalOwed.Equal(decimal.NewFromInt(10)) {
		t.Errorf("user1 totalOwed = %s, want 10", balance.User1.TotalOwed)
	}
	if !balance.NetBalance.Equal(decimal.NewFromInt(20)) {
		t.Errorf("netBalance = %s, want 20", balance.NetBalance)
	}
}
