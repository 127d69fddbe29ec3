package http

import (
	"database/sql"
	"log/slog"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	authHTTP "github.com/lifebook/lifebook/internal/auth/http"
	ledgerDomain "github.com/lifebook/lifebook/internal/ledger/domain"
	ledgerHTTP "github.com/lifebook/lifebook/internal/ledger/http"
	userHTTP "github.com/lifebook/lifebook/internal/user/http"
)

// Handlers bundles the request handlers the router mounts.
type Handlers struct {
	Auth         *authHTTP.AuthHandler
	Users        *userHTTP.UserHandler
	Incomes      *ledgerHTTP.EntryHandler[*ledgerDomain.Income]
	Expenses     *ledgerHTTP.EntryHandler[*ledgerDomain.Expense]
	Assets       *ledgerHTTP.EntryHandler[*ledgerDomain.Asset]
	BookNotes    *ledgerHTTP.EntryHandler[*ledgerDomain.BookNote]
	DiaryEntries *ledgerHTTP.EntryHandler[*ledgerDomain.DiaryEntry]
}

// Middlewares bundles the cross-cutting middleware the router applies. Nil
// entries are skipped.
type Middlewares struct {
	RequireLogin   gin.HandlerFunc
	RequireAdmin   gin.HandlerFunc
	RateLimit      gin.HandlerFunc
	LoginRateLimit gin.HandlerFunc
	CORS           gin.HandlerFunc
	Metrics        gin.HandlerFunc
}

// RouterConfig holds everything needed to build the API router.
type RouterConfig struct {
	DB          *sql.DB
	Handlers    Handlers
	Middlewares Middlewares
	Logger      *slog.Logger
}

// NewRouter builds the gin engine with all API routes mounted.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New())
	router.Use(CustomLoggerMiddleware(cfg.Logger))

	if cfg.Middlewares.Metrics != nil {
		router.Use(cfg.Middlewares.Metrics)
	}
	if cfg.Middlewares.CORS != nil {
		router.Use(cfg.Middlewares.CORS)
	}

	router.GET("/health", HealthHandler())
	router.GET("/ready", ReadinessHandler(cfg.DB))

	v1 := router.Group("/v1")

	auth := v1.Group("/auth")
	if cfg.Middlewares.LoginRateLimit != nil {
		auth.Use(cfg.Middlewares.LoginRateLimit)
	}
	auth.POST("/register", cfg.Handlers.Auth.RegisterHandler)
	auth.POST("/login", cfg.Handlers.Auth.LoginHandler)

	secured := v1.Group("")
	secured.Use(cfg.Middlewares.RequireLogin)
	if cfg.Middlewares.RateLimit != nil {
		secured.Use(cfg.Middlewares.RateLimit)
	}

	registerEntryRoutes(secured, "/incomes", cfg.Handlers.Incomes, true)
	registerEntryRoutes(secured, "/expenses", cfg.Handlers.Expenses, true)
	registerEntryRoutes(secured, "/assets", cfg.Handlers.Assets, true)
	registerEntryRoutes(secured, "/book-notes", cfg.Handlers.BookNotes, false)
	registerEntryRoutes(secured, "/diary-entries", cfg.Handlers.DiaryEntries, false)

	secured.GET("/users", cfg.Middlewares.RequireAdmin, cfg.Handlers.Users.ListUsersHandler)

	return router
}

// registerEntryRoutes mounts the shared resource endpoints. Stats only exist
// for resources carrying a monetary amount.
func registerEntryRoutes[T ledgerDomain.Entry](
	group *gin.RouterGroup,
	path string,
	handler *ledgerHTTP.EntryHandler[T],
	withStats bool,
) {
	resource := group.Group(path)
	resource.POST("", handler.CreateHandler)
	resource.GET("", handler.ListHandler)
	resource.GET("/export", handler.ExportHandler)
	resource.GET("/values", handler.ValuesHandler)
	if withStats {
		resource.GET("/stats", handler.StatsHandler)
	}
	resource.GET("/:id", handler.GetHandler)
	resource.PUT("/:id", handler.UpdateHandler)
	resource.DELETE("/:id", handler.DeleteHandler)
}
