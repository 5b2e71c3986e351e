package harmonization

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/duobudget/backend/internal/application/adapter"
	"github.com/duobudget/backend/internal/domain/entity"
	domainerror "github.com/duobudget/backend/internal/domain/error"
)

// notifyTimeout bounds the best-effort partner notification so a slow
// email provider cannot stall the settlement response.
const notifyTimeout = 10 * time.Second

// RecordSettlementInput represents the input for recording a settlement.
// Amount is the caller's snapshot of |netBalance| at the moment of
// settling; the engine trusts it and does not re-derive it.
type RecordSettlementInput struct {
	UserID uuid.UUID
	Amount decimal.Decimal
	Note   string
}

// RecordSettlementOutput represents the recorded settlement.
type RecordSettlementOutput struct {
	Settlement *entity.Settlement
}

// RecordSettlementUseCase appends a settlement to the couple's ledger and
// notifies the partner by email, best-effort.
type RecordSettlementUseCase struct {
	coupleRepo     adapter.CoupleRepository
	settlementRepo adapter.SettlementRepository
	userRepo       adapter.UserRepository
	emailSender    adapter.EmailSender
}

// NewRecordSettlementUseCase creates a new RecordSettlementUseCase instance.
func NewRecordSettlementUseCase(
	coupleRepo adapter.CoupleRepository,
	settlementRepo adapter.SettlementRepository,
	userRepo adapter.UserRepository,
	emailSender adapter.EmailSender,
) *RecordSettlementUseCase {
	return &RecordSettlementUseCase{
		coupleRepo:     coupleRepo,
		settlementRepo: settlementRepo,
		userRepo:       userRepo,
		emailSender:    emailSender,
	}
}

// Execute records the settlement.
func (uc *RecordSettlementUseCase) Execute(ctx context.Context, input RecordSettlementInput) (*RecordSettlementOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewSettlementError(
			domainerror.ErrCodeInvalidSettlementAmount,
			"settlement amount must be positive",
			domainerror.ErrInvalidSettlementAmount,
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

	settlement := entity.NewSettlement(couple.ID, input.Amount, input.Note, input.UserID)
	if err := uc.settlementRepo.Create(ctx, settlement); err != nil {
		return nil, fmt.Errorf("failed to record settlement: %w", err)
	}

	uc.notifyPartner(ctx, couple, settlement)

	return &RecordSettlementOutput{Settlement: settlement}, nil
}

// notifyPartner emails the other partner about the settlement. Failures
// are logged, never propagated: the settlement is already recorded.
func (uc *RecordSettlementUseCase) notifyPartner(ctx context.Context, couple *entity.Couple, settlement *entity.Settlement) {
	if uc.emailSender == nil {
		return
	}

	partnerID, ok := couple.PartnerOf(settlement.CreatedByUserID)
	if !ok {
		return
	}

	notifyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
	defer cancel()

	partner, err := uc.userRepo.FindByID(notifyCtx, partnerID)
	if err != nil {
		slog.Warn("settlement notification skipped, partner lookup failed",
			"settlement_id", settlement.ID,
			"error", err,
		)
		return
	}
	if !partner.EmailNotifications {
		return
	}

	creator, err := uc.userRepo.FindByID(notifyCtx, settlement.CreatedByUserID)
	if err != nil {
		slog.Warn("settlement notification skipped, creator lookup failed",
			"settlement_id", settlement.ID,
			"error", err,
		)
		return
	}

	subject, html, text := settlementNotification(creator.Name, settlement)
	if _, err := uc.emailSender.Send(notifyCtx, adapter.SendEmailInput{
		To:      partner.Email,
		Subject: subject,
		HTML:    html,
		Text:    text,
	}); err != nil {
		slog.Warn("failed to send settlement notification",
			"settlement_id", settlement.ID,
			"error", err,
		)
	}
}

// settlementNotification builds the partner notification content.
func settlementNotification(creatorName string, settlement *entity.Settlement) (subject, html, text string) {
	amount := settlement.Amount.StringFixed(2)
	subject = fmt.Sprintf("%s settled up %s EUR", creatorName, amount)

	body := fmt.Sprintf("%s recorded a settlement of %s EUR on %s.",
		creatorName, amount, settlement.SettledAt.Format("2006-01-02"))
	if settlement.Note != "" {
		body += fmt.Sprintf(" Note: %s", settlement.Note)
	}

	html = fmt.Sprintf("<p>%s</p><p>Your shared balance has been updated.</p>", body)
	text = body + " Your shared balance has been updated."
	return subject, html, text
}
