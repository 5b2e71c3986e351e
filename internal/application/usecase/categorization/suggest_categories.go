// Package categorization contains the AI category suggestion use cases.
// Suggestions are purely advisory: a category is only applied after the
// user approves it, and the harmonization engine never reads categories.
package categorization

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/duobudget/backend/internal/application/adapter"
	"github.com/duobudget/backend/internal/domain/entity"
	domainerror "github.com/duobudget/backend/internal/domain/error"
)

// maxBatchSize caps how many transactions are sent to the classification
// service in one call.
const maxBatchSize = 50

// SuggestCategoriesInput represents the input for generating suggestions.
type SuggestCategoriesInput struct {
	UserID uuid.UUID
}

// SuggestCategoriesOutput represents the generated pending suggestions.
type SuggestCategoriesOutput struct {
	Suggestions []*entity.CategorySuggestion
}

// SuggestCategoriesUseCase sends the couple's uncategorized transactions
// to the classification service and stores the results as pending
// suggestions.
type SuggestCategoriesUseCase struct {
	coupleRepo      adapter.CoupleRepository
	transactionRepo adapter.TransactionRepository
	suggestionRepo  adapter.SuggestionRepository
	aiService       adapter.AICategorizationService
}

// NewSuggestCategoriesUseCase creates a new SuggestCategoriesUseCase instance.
func NewSuggestCategoriesUseCase(
	coupleRepo adapter.CoupleRepository,
	transactionRepo adapter.TransactionRepository,
	suggestionRepo adapter.SuggestionRepository,
	aiService adapter.AICategorizationService,
) *SuggestCategoriesUseCase {
	return &SuggestCategoriesUseCase{
		coupleRepo:      coupleRepo,
		transactionRepo: transactionRepo,
		suggestionRepo:  suggestionRepo,
		aiService:       aiService,
	}
}

// Execute generates category suggestions for uncategorized transactions.
func (uc *SuggestCategoriesUseCase) Execute(ctx context.Context, input SuggestCategoriesInput) (*SuggestCategoriesOutput, error) {
	if !uc.aiService.IsAvailable() {
		return nil, domainerror.NewSuggestionError(
			domainerror.ErrCodeAIServiceUnavailable,
			"AI classification service is not configured",
			domainerror.ErrAIServiceUnavailable,
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

	uncategorized, err := uc.transactionRepo.FindUncategorizedByCouple(ctx, couple.ID, maxBatchSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load uncategorized transactions: %w", err)
	}
	if len(uncategorized) == 0 {
		return nil, domainerror.NewSuggestionError(
			domainerror.ErrCodeNoUncategorized,
			"all transactions are already categorized",
			domainerror.ErrNoUncategorizedTransactions,
		)
	}

	existing, err := uc.existingCategories(ctx, couple.ID)
	if err != nil {
		slog.Warn("failed to collect existing categories, continuing without them", "error", err)
	}

	request := &adapter.CategorizationRequest{
		ExistingCategories: existing,
		Transactions:       make([]adapter.TransactionForCategorization, len(uncategorized)),
	}
	for i, tx := range uncategorized {
		request.Transactions[i] = adapter.TransactionForCategorization{
			ID:     tx.ID,
			Label:  tx.Label,
			Amount: tx.Amount.String(),
			Date:   tx.Date.Format("2006-01-02"),
		}
	}

	results, err := uc.aiService.Categorize(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("classification service failed: %w", err)
	}

	suggestions := make([]*entity.CategorySuggestion, 0, len(results))
	for _, r := range results {
		if r.Category == "" {
			continue
		}
		suggestions = append(suggestions, entity.NewCategorySuggestion(
			couple.ID, r.TransactionID, r.Category, r.Alternatives, r.Confidence))
	}

	if len(suggestions) > 0 {
		if err := uc.suggestionRepo.CreateBatch(ctx, suggestions); err != nil {
			return nil, fmt.Errorf("failed to store suggestions: %w", err)
		}
	}

	slog.Info("generated category suggestions",
		"coupleID", couple.ID,
		"transactions", len(uncategorized),
		"suggestions", len(suggestions),
	)

	return &SuggestCategoriesOutput{Suggestions: suggestions}, nil
}

// existingCategories collects the distinct categories the couple already
// uses so the classifier can prefer vocabulary the users know.
func (uc *SuggestCategoriesUseCase) existingCategories(ctx context.Context, coupleID uuid.UUID) ([]string, error) {
	transactions, err := uc.transactionRepo.FindByCouple(ctx, coupleID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	for _, tx := range transactions {
		if tx.Category != "" {
			seen[tx.Category] = struct{}{}
		}
	}

	categories := make([]string, 0, len(seen))
	for c := range seen {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	return categories, nil
}
