package subscription

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/duobudget/backend/internal/domain/entity"
)

func TestEffectiveAmount(t *testing.T) {
	shared := &entity.SubscriptionCandidate{
		Amount:   decimal.NewFromInt(-30),
		IsShared: true,
	}
	if got := EffectiveAmount(shared); !got.Equal(decimal.NewFromInt(-15)) {
		t.Errorf("shared effective = %s, want -15", got)
	}

	personal := &entity.SubscriptionCandidate{
		Amount:   decimal.NewFromInt(-30),
		IsShared: false,
	}
	if got := EffectiveAmount(personal); !got.Equal(decimal.NewFromInt(-30)) {
		t.Errorf("personal effective = %s, want -30", got)
	}
}

func TestCalendarAmount(t *testing.T) {
	viewer := uuid.New()
	partner := uuid.New()

	tests := []struct {
		name     string
		isShared bool
		payer    uuid.UUID
		want     string
	}{
		{"personal charge debits in full", false, viewer, "-30"},
		{"shared, viewer pays, full debit", true, viewer, "-30"},
		{"shared, partner pays, nothing leaves viewer's account", true, partner, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &entity.SubscriptionCandidate{
				Amount:      decimal.NewFromInt(-30),
				IsShared:    tt.isShared,
				PayerUserID: tt.payer,
			}
			got := CalendarAmount(c, viewer)
			want := decimal.RequireFromString(tt.want)
			if !got.Equal(want) {
				t.Errorf("CalendarAmount() = %s, want %s", got, want)
			}
		})
	}
}

// A shared charge paid by the partner still costs the viewer their half,
// even though nothing leaves the viewer's account on billing day. The two
// amounts answer different questions and must not be conflated.
func TestAttribution_EffectiveVersusCalendar(t *testing.T) {
	viewer := uuid.New()
	c := &entity.SubscriptionCandidate{
		Amount:        decimal.NewFromInt(-30),
		IsShared:      true,
		PayerUserID:   uuid.New(),
		IsFromPartner: true,
	}

	if got := EffectiveAmount(c); !got.Equal(decimal.NewFromInt(-15)) {
		t.Errorf("effective = %s, want -15", got)
	}
	if got := CalendarAmount(c, viewer); !got.IsZero() {
		t.Errorf("calendar = %s, want 0", got)
	}
}
