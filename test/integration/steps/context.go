// Package steps provides step definitions for BDD integration tests.
//
// Each scenario boots the full HTTP stack against a shared in-memory
// sqlite database and a miniredis instance, so the features exercise
// the same wiring as production, minus Postgres and external services.
package steps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

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
	"github.com/duobudget/backend/internal/integration/persistence/model"
	"github.com/duobudget/backend/test/integration/mock"
)

const testJWTSecret = "integration-test-secret"

// testModels lists the tables the suite migrates into sqlite. The
// category suggestion model is excluded: its text[] column only
// migrates on Postgres, so AI categorization is covered by unit tests.
func testModels() map[string]any {
	return map[string]any{
		"users":                 &model.UserModel{},
		"refresh_tokens":        &model.RefreshTokenModel{},
		"couples":               &model.CoupleModel{},
		"transactions":          &model.TransactionModel{},
		"settlements":           &model.SettlementModel{},
		"subscription_settings": &model.SubscriptionSettingModel{},
	}
}

// TestContext holds the test state for each scenario.
type TestContext struct {
	server       *httptest.Server
	response     *http.Response
	responseBody []byte

	requestHeaders map[string]string

	// accessToken is the token attached to requests; tokens keeps one
	// access token per registered email so scenarios can switch users.
	accessToken string
	tokens      map[string]string

	lastSettlementID string

	emailSender *email.MockEmailSender

	userRepo        adapter.UserRepository
	coupleRepo      adapter.CoupleRepository
	transactionRepo adapter.TransactionRepository
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc, err := newTestContext()
		if err != nil {
			return ctx, err
		}
		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	registerAPISteps(ctx)
	registerResponseSteps(ctx)
	registerDomainSteps(ctx)
}

// newTestContext wires the full application against the test database
// and starts an HTTP server for the scenario.
func newTestContext() (*TestContext, error) {
	testDb := mock.NewDb("duobudget", testModels())
	if err := testDb.ClearDB(); err != nil {
		return nil, err
	}
	db := testDb.DbConn

	redisClient := mock.NewRedis()
	if err := mock.ClearRedis(redisClient); err != nil {
		return nil, err
	}

	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	coupleRepo := persistence.NewCoupleRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	settlementRepo := persistence.NewSettlementRepository(db)
	settingRepo := persistence.NewSubscriptionSettingRepository(db)
	suggestionRepo := persistence.NewSuggestionRepository(db)

	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(testJWTSecret, tokenRepo)
	// No API key: the categorization endpoints report the service as
	// unavailable, which is the behavior the features assert.
	aiService := adapters.NewGeminiService("")
	emailSender := email.NewMockEmailSender()

	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	createCoupleUseCase := couple.NewCreateCoupleUseCase(userRepo, coupleRepo)
	getCoupleUseCase := couple.NewGetCoupleUseCase(userRepo, coupleRepo)

	createTransactionUseCase := transaction.NewCreateTransactionUseCase(coupleRepo, transactionRepo)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(coupleRepo, transactionRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(coupleRepo, transactionRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(coupleRepo, transactionRepo)

	getBalanceUseCase := harmonization.NewGetBalanceUseCase(coupleRepo, transactionRepo, settlementRepo)
	recordSettlementUseCase := harmonization.NewRecordSettlementUseCase(coupleRepo, settlementRepo, userRepo, emailSender)
	listSettlementsUseCase := harmonization.NewListSettlementsUseCase(coupleRepo, settlementRepo)
	voidSettlementUseCase := harmonization.NewVoidSettlementUseCase(coupleRepo, settlementRepo)

	getOverviewUseCase := subscription.NewGetOverviewUseCase(coupleRepo, transactionRepo, settingRepo)
	upsertSettingUseCase := subscription.NewUpsertSettingUseCase(coupleRepo, transactionRepo, settingRepo)

	suggestCategoriesUseCase := categorization.NewSuggestCategoriesUseCase(coupleRepo, transactionRepo, suggestionRepo, aiService)
	listSuggestionsUseCase := categorization.NewListSuggestionsUseCase(coupleRepo, suggestionRepo)
	approveSuggestionUseCase := categorization.NewApproveSuggestionUseCase(coupleRepo, transactionRepo, suggestionRepo)
	rejectSuggestionUseCase := categorization.NewRejectSuggestionUseCase(coupleRepo, suggestionRepo)

	healthController := controller.NewHealthController(func() bool { return true })
	authController := controller.NewAuthController(registerUseCase, loginUseCase, refreshTokenUseCase, logoutUseCase)
	coupleController := controller.NewCoupleController(createCoupleUseCase, getCoupleUseCase)
	transactionController := controller.NewTransactionController(
		createTransactionUseCase, listTransactionsUseCase, updateTransactionUseCase, deleteTransactionUseCase)
	harmonizationController := controller.NewHarmonizationController(
		getBalanceUseCase, recordSettlementUseCase, listSettlementsUseCase, voidSettlementUseCase)
	subscriptionController := controller.NewSubscriptionController(getOverviewUseCase, upsertSettingUseCase)
	categorizationController := controller.NewCategorizationController(
		suggestCategoriesUseCase, listSuggestionsUseCase, approveSuggestionUseCase, rejectSuggestionUseCase)

	loginRateLimiter := middleware.NewRateLimiterWithConfig(redisClient, 1000, time.Minute)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

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

	engine := r.Setup("test")

	return &TestContext{
		server:          httptest.NewServer(engine),
		requestHeaders:  make(map[string]string),
		tokens:          make(map[string]string),
		emailSender:     emailSender,
		userRepo:        userRepo,
		coupleRepo:      coupleRepo,
		transactionRepo: transactionRepo,
	}, nil
}
