package app

import (
	"context"
	"fmt"
	"sync"

	authHTTP "github.com/lifebook/lifebook/internal/auth/http"
	"github.com/lifebook/lifebook/internal/http"
	ledgerDomain "github.com/lifebook/lifebook/internal/ledger/domain"
	ledgerHTTP "github.com/lifebook/lifebook/internal/ledger/http"
	ledgerRepository "github.com/lifebook/lifebook/internal/ledger/repository"
	ledgerUsecase "github.com/lifebook/lifebook/internal/ledger/usecase"
	"github.com/lifebook/lifebook/internal/metrics"
	userHTTP "github.com/lifebook/lifebook/internal/user/http"
)

// httpComponents holds the ledger use cases and the servers of the container.
type httpComponents struct {
	incomeUseCase     ledgerUsecase.UseCase[*ledgerDomain.Income]
	expenseUseCase    ledgerUsecase.UseCase[*ledgerDomain.Expense]
	assetUseCase      ledgerUsecase.UseCase[*ledgerDomain.Asset]
	bookNoteUseCase   ledgerUsecase.UseCase[*ledgerDomain.BookNote]
	diaryEntryUseCase ledgerUsecase.UseCase[*ledgerDomain.DiaryEntry]

	httpServer    *http.Server
	metricsServer *http.MetricsServer

	ledgerUseCasesInit sync.Once
	httpServerInit     sync.Once
	metricsServerInit  sync.Once
}

// newEntryUseCase builds the repository, use case and metrics decorator
// stack for one ledger resource.
func newEntryUseCase[T ledgerDomain.Entry](c *Container, schema ledgerDomain.Schema[T]) (ledgerUsecase.UseCase[T], error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for %s use case: %w", schema.Resource, err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for %s use case: %w", schema.Resource, err)
	}

	repo := ledgerRepository.NewSQLEntryRepository(db, c.config.DBDriver, schema)
	useCase := ledgerUsecase.NewEntryUseCase[T](repo, schema)

	return ledgerUsecase.NewEntryUseCaseWithMetrics[T](useCase, businessMetrics, schema.Resource), nil
}

// initLedgerUseCases builds the use case for every ledger resource.
func (c *Container) initLedgerUseCases() error {
	var err error
	c.ledgerUseCasesInit.Do(func() {
		if c.incomeUseCase, err = newEntryUseCase(c, ledgerDomain.IncomeSchema()); err != nil {
			c.initErrors["ledgerUseCases"] = err
			return
		}
		if c.expenseUseCase, err = newEntryUseCase(c, ledgerDomain.ExpenseSchema()); err != nil {
			c.initErrors["ledgerUseCases"] = err
			return
		}
		if c.assetUseCase, err = newEntryUseCase(c, ledgerDomain.AssetSchema()); err != nil {
			c.initErrors["ledgerUseCases"] = err
			return
		}
		if c.bookNoteUseCase, err = newEntryUseCase(c, ledgerDomain.BookNoteSchema()); err != nil {
			c.initErrors["ledgerUseCases"] = err
			return
		}
		if c.diaryEntryUseCase, err = newEntryUseCase(c, ledgerDomain.DiaryEntrySchema()); err != nil {
			c.initErrors["ledgerUseCases"] = err
			return
		}
	})
	if storedErr, exists := c.initErrors["ledgerUseCases"]; exists {
		return storedErr
	}
	return nil
}

// HTTPServer returns the API server with all handlers and middleware wired.
// The context owns the rate limiter cleanup goroutines and any KMS round
// trip made while loading the signing secret.
func (c *Container) HTTPServer(ctx context.Context) (*http.Server, error) {
	c.httpServerInit.Do(func() {
		server, err := c.initHTTPServer(ctx)
		if err != nil {
			c.initErrors["httpServer"] = err
			return
		}
		c.httpServer = server
	})
	if storedErr, exists := c.initErrors["httpServer"]; exists {
		return nil, storedErr
	}
	return c.httpServer, nil
}

func (c *Container) initHTTPServer(ctx context.Context) (*http.Server, error) {
	logger := c.Logger()

	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for http server: %w", err)
	}

	authUseCase, err := c.AuthUseCase(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get auth use case for http server: %w", err)
	}

	userUseCase, err := c.UserUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get user use case for http server: %w", err)
	}

	if err := c.initLedgerUseCases(); err != nil {
		return nil, fmt.Errorf("failed to build ledger use cases for http server: %w", err)
	}

	middlewares := http.Middlewares{
		RequireLogin: authHTTP.RequireLogin(authUseCase, logger),
		RequireAdmin: authHTTP.RequireAdmin(logger),
		CORS:         http.CORSMiddleware(c.config.CORSAllowOrigins, logger),
	}

	if c.config.RateLimitEnabled {
		middlewares.RateLimit = authHTTP.RateLimitMiddleware(
			ctx,
			c.config.RateLimitRequestsPerSec,
			c.config.RateLimitBurst,
			logger,
		)
	}

	if c.config.RateLimitAuthEnabled {
		middlewares.LoginRateLimit = authHTTP.LoginRateLimitMiddleware(
			ctx,
			c.config.RateLimitAuthRequestsPerSec,
			c.config.RateLimitAuthBurst,
			logger,
		)
	}

	metricsProvider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for http server: %w", err)
	}
	if metricsProvider != nil {
		middlewares.Metrics = metrics.HTTPMetricsMiddleware(
			metricsProvider.MeterProvider(),
			c.config.MetricsNamespace,
		)
	}

	routerConfig := http.RouterConfig{
		DB: db,
		Handlers: http.Handlers{
			Auth:         authHTTP.NewAuthHandler(authUseCase, logger),
			Users:        userHTTP.NewUserHandler(userUseCase, logger),
			Incomes:      ledgerHTTP.NewIncomeHandler(c.incomeUseCase, logger),
			Expenses:     ledgerHTTP.NewExpenseHandler(c.expenseUseCase, logger),
			Assets:       ledgerHTTP.NewAssetHandler(c.assetUseCase, logger),
			BookNotes:    ledgerHTTP.NewBookNoteHandler(c.bookNoteUseCase, logger),
			DiaryEntries: ledgerHTTP.NewDiaryEntryHandler(c.diaryEntryUseCase, logger),
		},
		Middlewares: middlewares,
		Logger:      logger,
	}

	return http.NewServer(c.config.ServerHost, c.config.ServerPort, logger, routerConfig), nil
}

// MetricsServer returns the Prometheus exposition server, or nil when
// metrics are disabled.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	c.metricsServerInit.Do(func() {
		provider, err := c.MetricsProvider()
		if err != nil {
			c.initErrors["metricsServer"] = fmt.Errorf("failed to get metrics provider for metrics server: %w", err)
			return
		}
		if provider == nil {
			return
		}

		c.metricsServer = http.NewMetricsServer(
			c.config.ServerHost,
			c.config.MetricsPort,
			c.Logger(),
			provider,
		)
	})
	if storedErr, exists := c.initErrors["metricsServer"]; exists {
		return nil, storedErr
	}
	return c.metricsServer, nil
}
