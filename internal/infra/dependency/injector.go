// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/duobudget/backend/config"
	"github.com/duobudget/backend/internal/application/adapter"
	"github.com/duobudget/backend/internal/application/usecase/auth"
	"github.com/duobudget/backend/internal/application/usecase/categorization"
	"github.com/duobudget/backend/internal/application/usecase/couple"
	"github.com/duobudget/backend/internal/application/usecase/harmonization"
	"github.com/duobudget/backend/internal/application/usecase/subscription"
	"github.com/duobudget/backend/internal/application/usecase/transaction"
	"github.com/duobudget/backend/internal/infra/server/router"
	"github.com/duobudget/backend/internal/integration/adapters"
	"github.com/duobudget/backend/internal/integration/email"
	"github.com/duobudget/backend/internal/integration/entrypoint/controller"
	"github.com/duobudget/backend/internal/integration/entrypoint/middleware"
	"github.com/duobudget/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	coupleRepo := persistence.NewCoupleRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	settlementRepo := persistence.NewSettlementRepository(db)
	settingRepo := persistence.NewSubscriptionSettingRepository(db)
	suggestionRepo := persistence.NewSuggestionRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	aiService := adapters.NewGeminiService(cfg.AI.GeminiAPIKey)

	// The partner notification is optional: without a Resend key the
	// settlement flow simply skips it.
	var emailSender adapter.EmailSender
	if cfg.Email.ResendAPIKey != "" {
		emailSender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	}

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Create couple use cases
	createCoupleUseCase := couple.NewCreateCoupleUseCase(userRepo, coupleRepo)
	getCoupleUseCase := couple.NewGetCoupleUseCase(userRepo, coupleRepo)

	// Create transaction use cases
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(coupleRepo, transactionRepo)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(coupleRepo, transactionRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(coupleRepo, transactionRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(coupleRepo, transactionRepo)

	// Create balance and settlement use cases
	getBalanceUseCase := harmonization.NewGetBalanceUseCase(coupleRepo, transactionRepo, settlementRepo)
	recordSettlementUseCase := harmonization.NewRecordSettlementUseCase(coupleRepo, settlementRepo, userRepo, emailSender)
	listSettlementsUseCase := harmonization.NewListSettlementsUseCase(coupleRepo, settlementRepo)
	voidSettlementUseCase := harmonization.NewVoidSettlementUseCase(coupleRepo, settlementRepo)

	// Create recurring-charge use cases
	getOverviewUseCase := subscription.NewGetOverviewUseCase(coupleRepo, transactionRepo, settingRepo)
	upsertSettingUseCase := subscription.NewUpsertSettingUseCase(coupleRepo, transactionRepo, settingRepo)

	// Create categorization use cases
	suggestCategoriesUseCase := categorization.NewSuggestCategoriesUseCase(coupleRepo, transactionRepo, suggestionRepo, aiService)
	listSuggestionsUseCase := categorization.NewListSuggestionsUseCase(coupleRepo, suggestionRepo)
	approveSuggestionUseCase := categorization.NewApproveSuggestionUseCase(coupleRepo, transactionRepo, suggestionRepo)
	rejectSuggestionUseCase := categorization.NewRejectSuggestionUseCase(coupleRepo, suggestionRepo)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	coupleController := controller.NewCoupleController(
		createCoupleUseCase,
		getCoupleUseCase,
	)

	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		listTransactionsUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)

	harmonizationController := controller.NewHarmonizationController(
		getBalanceUseCase,
		recordSettlementUseCase,
		listSettlementsUseCase,
		voidSettlementUseCase,
	)

	subscriptionController := controller.NewSubscriptionController(
		getOverviewUseCase,
		upsertSettingUseCase,
	)

	categorizationController := controller.NewCategorizationController(
		suggestCategoriesUseCase,
		listSuggestionsUseCase,
		approveSuggestionUseCase,
		rejectSuggestionUseCase,
	)

	// Create middleware
	// Use higher rate limits for test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if redisClient != nil {
		if cfg.Server.Environment == "test" {
			loginRateLimiter = middleware.NewRateLimiterWithConfig(redisClient, 1000, 1*time.Minute)
		} else {
			loginRateLimiter = middleware.NewRateLimiter(redisClient)
		}
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		coupleController,
		transactionController,
		harmonizationController,
		subscriptionController,
		categorizationController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
