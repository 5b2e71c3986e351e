package transaction

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/duobudget/backend/internal/domain/entity"
	domainerror "github.com/duobudget/backend/internal/domain/error"
)

func TestValidateTransactionFields(t *testing.T) {
	couple := &entity.Couple{
		ID:      uuid.New(),
		User1ID: uuid.New(),
		User2ID: uuid.New(),
	}
	date := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	half := decimal.NewFromFloat(0.5)
	overOne := decimal.NewFromFloat(1.01)
	negative := decimal.NewFromFloat(-0.1)

	tests := []struct {
		name    string
		label   string
		date    time.Time
		txType  entity.TransactionType
		ratio   *decimal.Decimal
		payer   uuid.UUID
		wantErr error
	}{
		{"valid shared transaction", "groceries", date, entity.TransactionTypeShared, &half, couple.User1ID, nil},
		{"valid with nil ratio", "rent", date, entity.TransactionTypeShared, nil, couple.User2ID, nil},
		{"unknown type rejected", "x", date, "expense", nil, couple.User1ID, domainerror.ErrInvalidTransactionType},
		{"ratio above one rejected", "x", date, entity.TransactionTypeShared, &overOne, couple.User1ID, domainerror.ErrInvalidTransactionRatio},
		{"negative ratio rejected", "x", date, entity.TransactionTypeShared, &negative, couple.User1ID, domainerror.ErrInvalidTransactionRatio},
		{"payer outside couple rejected", "x", date, entity.TransactionTypeShared, &half, uuid.New(), domainerror.ErrPayerNotMember},
		{"zero date rejected", "x", time.Time{}, entity.TransactionTypeIndividual, nil, couple.User1ID, domainerror.ErrInvalidTransactionDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTransactionFields(couple, tt.label, tt.date, tt.txType, tt.ratio, tt.payer)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateTransactionFields_LabelTooLong(t *testing.T) {
	couple := &entity.Couple{ID: uuid.New(), User1ID: uuid.New(), User2ID: uuid.New()}
	long := make([]byte, MaxLabelLength+1)
	for i := range long {
		long[i] = 'a'
	}

	err := validateTransactionFields(couple, string(long), time.Now(), entity.TransactionTypeIndividual, nil, couple.User1ID)
	if !errors.Is(err, domainerror.ErrLabelTooLong) {
		t.Errorf("error = %v, want ErrLabelTooLong", err)
	}
}
