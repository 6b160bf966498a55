package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"starwars-api/internal/cache"
	"starwars-api/internal/config"
	"starwars-api/internal/database"
	"starwars-api/internal/logging"
	"starwars-api/internal/middleware"
	"starwars-api/internal/routes"
	"starwars-api/internal/telemetry"
)

const cacheKeyPrefix = "starwars:"

// App holds every long-lived component of the server
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	Cache       cache.Cache
	RateLimiter *middleware.RateLimiter
	HttpServer  *http.Server

	shutdownTracing telemetry.ShutdownFunc
}

// NewApp connects to the database, applies migrations and builds the HTTP
// server. Redis is optional: the app runs uncached when it is unreachable.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logging.Setup(cfg.LogLevel, cfg.IsProduction())
	log.WithField("env", cfg.AppEnv).Info("Configuration loaded")

	shutdownTracing, err := telemetry.Init(ctx, cfg.ServiceName, cfg.AppEnv, cfg.OTLPEndpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to init tracing: %w", err)
	}
	if cfg.OTLPEndpoint != "" {
		log.WithField("endpoint", cfg.OTLPEndpoint).Info("Tracing enabled")
	}

	db, driver, err := database.NewConnection(ctx, cfg.DatabaseURL, log)
	if err != nil {
		_ = shutdownTracing(ctx)
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.RunMigrations(db, driver, log); err != nil {
		_ = database.Close(db)
		_ = shutdownTracing(ctx)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	var cacheClient cache.Cache
	if cfg.RedisURL != "" {
		cacheClient, err = cache.NewRedisCache(cfg.RedisURL, cacheKeyPrefix)
		if err != nil {
			log.WithError(err).Warn("Failed to connect to Redis. Continuing without cache.")
			cacheClient = nil
		} else {
			log.Info("Connected to Redis cache")
		}
	}

	var limiter *middleware.RateLimiter
	if cfg.RateLimitRPS > 0 {
		limiter = middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := routes.SetupRouter(routes.Dependencies{
		DB:          db,
		Cache:       cacheClient,
		Config:      cfg,
		Log:         log,
		RateLimiter: limiter,
	})

	return &App{
		Config:      cfg,
		Log:         log,
		DB:          db,
		Cache:       cacheClient,
		RateLimiter: limiter,
		HttpServer: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
		shutdownTracing: shutdownTracing,
	}, nil
}

// Start serves HTTP in the background. A listen failure is fatal.
func (a *App) Start() {
	go func() {
		a.Log.Infof("HTTP server listening on %s", a.HttpServer.Addr)
		if err := a.HttpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.Log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()
}

// Shutdown drains in-flight requests and releases every resource
func (a *App) Shutdown(ctx context.Context) {
	a.Log.Info("Shutting down application...")

	if err := a.HttpServer.Shutdown(ctx); err != nil {
		a.Log.WithError(err).Error("Error shutting down HTTP server")
	}

	if a.RateLimiter != nil {
		a.RateLimiter.Stop()
	}

	if a.Cache != nil {
		if err := a.Cache.Close(); err != nil {
			a.Log.WithError(err).Error("Error closing Redis connection")
		}
	}

	if err := database.Close(a.DB); err != nil {
		a.Log.WithError(err).Error("Error closing database connection")
	}

	if err := a.shutdownTracing(ctx); err != nil {
		a.Log.WithError(err).Error("Error flushing traces")
	}

	a.Log.Info("Application shutdown complete")
}
