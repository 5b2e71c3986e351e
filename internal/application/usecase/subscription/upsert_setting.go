package subscription

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/duobudget/backend/internal/application/adapter"
	"github.com/duobudget/backend/internal/domain/entity"
	domainerror "github.com/duobudget/backend/internal/domain/error"
)

// UpsertSettingInput represents the input for overriding one recurring
// charge's frequency and attribution. The (label, amount) pair identifies
// the charge exactly.
type UpsertSettingInput struct {
	UserID      uuid.UUID
	Label       string
	Amount      decimal.Decimal
	IsShared    bool
	Frequency   entity.BillingFrequency
	PayerUserID uuid.UUID
}

// UpsertSettingOutput represents the stored override.
type UpsertSettingOutput struct {
	Setting *entity.SubscriptionSetting
}

// UpsertSettingUseCase stores a per-charge override. Overrides win over
// detector inference on every subsequent overview computation, which is
// also how a mis-classified expired charge is reactivated.
type UpsertSettingUseCase struct {
	coupleRepo      adapter.CoupleRepository
	transactionRepo adapter.TransactionRepository
	settingRepo     adapter.SubscriptionSettingRepository
}

// NewUpsertSettingUseCase creates a new UpsertSettingUseCase instance.
func NewUpsertSettingUseCase(
	coupleRepo adapter.CoupleRepository,
	transactionRepo adapter.TransactionRepository,
	settingRepo adapter.SubscriptionSettingRepository,
) *UpsertSettingUseCase {
	return &UpsertSettingUseCase{
		coupleRepo:      coupleRepo,
		transactionRepo: transactionRepo,
		settingRepo:     settingRepo,
	}
}

// Execute validates and stores the override for the user's couple.
func (uc *UpsertSettingUseCase) Execute(ctx context.Context, input UpsertSettingInput) (*UpsertSettingOutput, error) {
	if input.Frequency != "" && !ValidOverrideFrequency(input.Frequency) {
		return nil, domainerror.NewSubscriptionError(
			domainerror.ErrCodeInvalidFrequency,
			fmt.Sprintf("unsupported billing frequency %q", input.Frequency),
			domainerror.ErrInvalidFrequency,
		)
	}

	couple, err := uc.coupleRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewHarmonizationError(
			domainerror.ErrCodeNoCoupleForUser,
			"no couple linked to user",
			domainerror.ErrNoCoupleForUser,
		)
	}

	if input.PayerUserID != uuid.Nil && !couple.HasMember(input.PayerUserID) {
		return nil, domainerror.NewSubscriptionError(
			domainerror.ErrCodePayerNotInCouple,
			"designated payer does not belong to the couple",
			domainerror.ErrPayerNotInCouple,
		)
	}

	transactions, err := uc.transactionRepo.FindByCouple(ctx, couple.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	// A charge imported through the partner's account keeps its
	// attribution: the viewer may override the frequency but cannot
	// claim the charge as personal or reassign the payer.
	sourcePayer := latestSourcePayer(transactions, input.Label, input.Amount)
	if sourcePayer != uuid.Nil && sourcePayer != input.UserID {
		if err := validatePartnerSourcedOverride(input, sourcePayer); err != nil {
			return nil, err
		}
	}

	setting := entity.NewSubscriptionSetting(
		couple.ID,
		input.Label,
		input.Amount,
		input.IsShared,
		input.Frequency,
		input.PayerUserID,
	)

	if err := uc.settingRepo.Upsert(ctx, setting); err != nil {
		return nil, fmt.Errorf("failed to store subscription setting: %w", err)
	}

	return &UpsertSettingOutput{Setting: setting}, nil
}

// latestSourcePayer returns the payer of the most recent transaction in
// the (label, amount) cluster, or uuid.Nil when no source transaction
// exists for the key.
func latestSourcePayer(transactions []*entity.Transaction, label string, amount decimal.Decimal) uuid.UUID {
	key := entity.SubscriptionKey(label, amount)

	payer := uuid.Nil
	var latest time.Time
	for _, tx := range transactions {
		if tx.Type == entity.TransactionTypeInternalTransfer {
			continue
		}
		if entity.SubscriptionKey(tx.Label, tx.Amount) != key {
			continue
		}
		if payer == uuid.Nil || tx.Date.After(latest) {
			payer = tx.PayerUserID
			latest = tx.Date
		}
	}
	return payer
}

// validatePartnerSourcedOverride rejects overrides that change the
// attribution of a partner-sourced charge.
func validatePartnerSourcedOverride(input UpsertSettingInput, sourcePayer uuid.UUID) error {
	if !input.IsShared {
		return domainerror.NewSubscriptionError(
			domainerror.ErrCodePartnerChargeNotEditable,
			"a charge paid from the partner's account stays shared",
			domainerror.ErrPartnerChargeNotEditable,
		)
	}
	if input.PayerUserID != uuid.Nil && input.PayerUserID != sourcePayer {
		return domainerror.NewSubscriptionError(
			domainerror.ErrCodePartnerChargeNotEditable,
			"the payer of a partner-sourced charge cannot be reassigned",
			domainerror.ErrPartnerChargeNotEditable,
		)
	}
	return nil
}
