package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"finance-dashboard/internal/config"
	"finance-dashboard/internal/database"
	"finance-dashboard/internal/handlers"
	"finance-dashboard/internal/middleware"
	"finance-dashboard/internal/repositories"
	"finance-dashboard/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// app is the wired HTTP server with the pieces main still has to drive
type app struct {
	echo    *echo.Echo
	limiter *middleware.RateLimiter
	seeder  services.SeedServiceInterface
}

// metricsRegistry is what the server registers its collectors with and
// what /metrics exposes.
type metricsRegistry interface {
	prometheus.Registerer
	prometheus.Gatherer
}

func newApp(cfg *config.Config, db *database.DB, cache services.DashboardCache, reg metricsRegistry, logger *slog.Logger) *app {
	accountRepo := repositories.NewAccountRepository(db.DB)
	transactionRepo := repositories.NewTransactionRepository(db.DB)
	budgetRepo := repositories.NewBudgetRepository(db.DB)
	userRepo := repositories.NewUserRepository(db.DB)
	netWorthRepo := repositories.NewNetWorthRepository(db.DB)

	metrics := services.NewPrometheusMetrics(reg)

	cache = services.NewVersionedDashboardCache(cache)
	accountService := services.NewAccountService(accountRepo, cache, logger)
	transactionService := services.NewTransactionService(transactionRepo, cache, metrics, logger)
	budgetService := services.NewBudgetService(budgetRepo, logger)
	dashboardService := services.NewDashboardService(userRepo, accountRepo, netWorthRepo, cache, metrics, logger)
	seeder := services.NewSeedService(accountRepo, transactionRepo, budgetRepo, userRepo, netWorthRepo,
		services.NewTransactionGenerator(uint64(time.Now().UnixNano())), cfg.Seed, metrics, logger)

	limiter := middleware.NewRateLimiterFromConfig(cfg.Security)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.NewHTTPErrorHandler(reg)
	e.Validator = handlers.NewValidator()

	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(logger))
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:  cfg.Server.CORSAllowOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, middleware.TraceIDHeader},
		ExposeHeaders: []string{middleware.TraceIDHeader},
		MaxAge:        int((12 * time.Hour).Seconds()),
	}))
	e.Use(limiter.Middleware())

	e.GET("/health", handlers.NewHealthCheckHandler(db.DB).HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	api := &handlers.API{
		Accounts:     handlers.NewAccountHandler(accountService),
		Transactions: handlers.NewTransactionHandler(transactionService),
		Budgets:      handlers.NewBudgetHandler(budgetService),
		Dashboard:    handlers.NewDashboardHandler(dashboardService),
	}

	var apiMiddleware []echo.MiddlewareFunc
	if cfg.JWT.Enabled {
		apiMiddleware = append(apiMiddleware, middleware.RequireAuth(services.NewTokenService(&cfg.JWT)))
		logger.Info("Bearer token verification enabled", "issuer", cfg.JWT.Issuer)
	}
	api.Register(e.Group("/api"), apiMiddleware...)

	return &app{echo: e, limiter: limiter, seeder: seeder}
}

// newDashboardCache uses Redis when a URL is configured and reachable, and an
// in-process cache otherwise.
func newDashboardCache(ctx context.Context, cfg config.CacheConfig, logger *slog.Logger) (services.DashboardCache, func()) {
	if cfg.RedisURL != "" {
		client, err := database.ConnectRedis(ctx, cfg)
		if err == nil {
			logger.Info("Dashboard cache backed by Redis", "ttl", cfg.TTL)
			guarded := services.NewGuardedDashboardCache(
				services.NewRedisDashboardCache(client, cfg.TTL),
				services.NewCircuitBreaker(services.DefaultCircuitBreakerConfig()),
				logger,
			)
			return guarded, func() { _ = client.Close() }
		}
		logger.Warn("Redis unavailable, continuing with in-memory dashboard cache", "error", err)
	}
	return services.NewMemoryDashboardCache(cfg.TTL), func() {}
}

// seed loads the demo data set when enabled, bounded by SeedTimeout
func (a *app) seed(ctx context.Context, cfg config.SeedConfig, logger *slog.Logger) error {
	if !cfg.Enabled {
		return nil
	}

	seedCtx, cancel := context.WithTimeout(ctx, services.SeedTimeout)
	defer cancel()

	seeded, err := a.seeder.Seed(seedCtx)
	if err != nil {
		return err
	}
	if seeded {
		logger.Info("Demo data loaded")
	}
	return nil
}
