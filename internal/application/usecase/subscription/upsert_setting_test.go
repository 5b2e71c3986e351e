package subscription

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/duobudget/backend/internal/domain/entity"
	domainerror "github.com/duobudget/backend/internal/domain/error"
)

func TestLatestSourcePayer(t *testing.T) {
	viewer := uuid.New()
	partner := uuid.New()
	amount := decimal.NewFromFloat(-9.95)

	txs := []*entity.Transaction{
		recurringTx("AUDIBLE", -9.95, viewer, detectNow.AddDate(0, -2, 0)),
		recurringTx("AUDIBLE", -9.95, partner, detectNow.AddDate(0, -1, 0)),
		recurringTx("OTHER", -9.95, viewer, detectNow),
	}

	if got := latestSourcePayer(txs, "AUDIBLE", amount); got != partner {
		t.Errorf("payer = %s, want the most recent occurrence's payer %s", got, partner)
	}
	if got := latestSourcePayer(txs, "UNKNOWN", amount); got != uuid.Nil {
		t.Errorf("payer for unknown key = %s, want Nil", got)
	}
}

func TestLatestSourcePayer_IgnoresInternalTransfers(t *testing.T) {
	viewer := uuid.New()
	partner := uuid.New()
	amount := decimal.NewFromFloat(-50)

	transfer := recurringTx("SWEEP", -50, partner, detectNow)
	transfer.Type = entity.TransactionTypeInternalTransfer
	txs := []*entity.Transaction{
		recurringTx("SWEEP", -50, viewer, detectNow.AddDate(0, -1, 0)),
		transfer,
	}

	if got := latestSourcePayer(txs, "SWEEP", amount); got != viewer {
		t.Errorf("payer = %s, want %s (internal transfers excluded)", got, viewer)
	}
}

func TestValidatePartnerSourcedOverride(t *testing.T) {
	viewer := uuid.New()
	partner := uuid.New()

	tests := []struct {
		name    string
		input   UpsertSettingInput
		wantErr bool
	}{
		{
			name:    "frequency-only override allowed",
			input:   UpsertSettingInput{UserID: viewer, IsShared: true, Frequency: entity.FrequencyYearly},
			wantErr: false,
		},
		{
			name:    "keeping the partner as payer allowed",
			input:   UpsertSettingInput{UserID: viewer, IsShared: true, PayerUserID: partner},
			wantErr: false,
		},
		{
			name:    "claiming the charge as personal rejected",
			input:   UpsertSettingInput{UserID: viewer, IsShared: false},
			wantErr: true,
		},
		{
			name:    "reassigning the payer to the viewer rejected",
			input:   UpsertSettingInput{UserID: viewer, IsShared: true, PayerUserID: viewer},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePartnerSourcedOverride(tt.input, partner)
			if tt.wantErr {
				if !errors.Is(err, domainerror.ErrPartnerChargeNotEditable) {
					t.Errorf("err = %v, want ErrPartnerChargeNotEditable", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestResolveTargetMonth(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		month     int
		year      int
		wantMonth int
		wantYear  int
	}{
		{"both zero defaults to current", 0, 0, 6, 2025},
		{"month only keeps current year", 9, 0, 9, 2025},
		{"year only keeps current month", 0, 2027, 6, 2027},
		{"explicit pair passes through", 2, 2024, 2, 2024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			month, year := resolveTargetMonth(tt.month, tt.year, now)
			if month != tt.wantMonth || year != tt.wantYear {
				t.Errorf("resolved = %d/%d, want %d/%d", month, year, tt.wantMonth, tt.wantYear)
			}
		})
	}
}
