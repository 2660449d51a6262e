package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"prestige-properties/internal/handlers"
	"prestige-properties/internal/i18n"
	"prestige-properties/internal/middleware"
	"prestige-properties/internal/repositories"
	"prestige-properties/internal/services"
	"prestige-properties/internal/transformers"
	"prestige-properties/internal/validators"
	"prestige-properties/pkg/cache"
	"prestige-properties/pkg/config"
	"prestige-properties/pkg/formrelay"
	"prestige-properties/pkg/logger"
	"prestige-properties/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

// App represents the application structure
type App struct {
	Config          *config.Config
	Router          *gin.Engine
	Server          *http.Server
	RedisClient     *redis.Client
	SessionState    repositories.SessionStateRepository
	CookieStore     sessions.Store
	RateLimiter     *middleware.RateLimiter
	Catalog         *i18n.Catalog
	Pages           *handlers.Pages
	HomeHandler     *handlers.HomeHandler
	PropertyHandler *handlers.PropertyHandler
	ContactHandler  *handlers.ContactHandler
	HealthHandler   *handlers.HealthHandler
}

// NewApp wires the application. The context bounds start-up work such as the
// initial Redis ping.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	app := &App{Config: cfg}

	// infrastructure
	app.initializeMetrics()
	if err := app.initializeSessionState(ctx); err != nil {
		return nil, err
	}
	app.initializeCookieStore()
	app.initializeRateLimiter()

	// business logic
	if err := app.initializeDependencies(); err != nil {
		app.cleanup()
		return nil, err
	}

	// web layer
	if err := app.initializeRouter(); err != nil {
		app.cleanup()
		return nil, err
	}
	return app, nil
}

// initialize Prometheus metrics
func (a *App) initializeMetrics() {
	metrics.Init()
}

// initialize the session state backend
func (a *App) initializeSessionState(ctx context.Context) error {
	switch a.Config.Session.Backend {
	case config.SessionBackendRedis:
		client, err := cache.NewRedisClient(ctx, a.Config)
		if err != nil {
			return fmt.Errorf("failed to initialize Redis: %w", err)
		}
		a.RedisClient = client
		a.SessionState = repositories.NewRedisSessionStateRepository(client, a.Config.Session.TTL)
	default:
		a.SessionState = repositories.NewMemorySessionStateRepository(a.Config.Session.TTL)
	}
	logger.GlobalLogger.Printf("Session state backend: %s", a.SessionState.Backend())
	return nil
}

// initialize the signed cookie store carrying session ids and flashes
func (a *App) initializeCookieStore() {
	secret := a.Config.Session.Secret
	if secret == "" {
		// development only; Validate demands a secret in production
		secret = uuid.NewString() + uuid.NewString()
		logger.GlobalLogger.Warnf("SESSION_SECRET not set, sessions will not survive a restart")
	}
	a.CookieStore = middleware.NewCookieStore(secret, int(a.Config.Session.TTL.Seconds()), a.Config.Session.Secure)
}

// initialize the rate limiter for form posts
func (a *App) initializeRateLimiter() {
	a.RateLimiter = middleware.NewRateLimiter(middleware.PerMinute(a.Config.RateLimit.PerMinute), a.Config.RateLimit.Burst)
}

// initialize all dependencies
func (a *App) initializeDependencies() error {
	// repositories
	propertyRepo, err := repositories.NewPropertyRepository(a.Config.Catalog.Path)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	catalog, err := i18n.LoadCatalog()
	if err != nil {
		return fmt.Errorf("failed to load messages: %w", err)
	}
	a.Catalog = catalog

	// transformers
	linkTrans := transformers.NewLinkTransformer()
	propTrans := transformers.NewPropertyTransformer(a.Config.Catalog.ImageBaseURL, a.Config.Catalog.FallbackImage, linkTrans)

	// validators
	contactValidator := validators.NewContactValidator()

	// services
	propertyService := services.NewPropertyService(propertyRepo, propTrans)
	galleryService := services.NewGalleryService(a.Config.Catalog.FallbackImage)
	relay := formrelay.NewClient(a.Config.FormRelay.Endpoint, a.Config.FormRelay.Timeout)
	contactService := services.NewContactService(relay, contactValidator)

	// handlers
	a.Pages = handlers.NewPages(catalog, propertyService)
	a.HomeHandler = handlers.NewHomeHandler(a.Pages, propertyService)
	a.PropertyHandler = handlers.NewPropertyHandler(a.Pages, propertyService, galleryService)
	a.ContactHandler = handlers.NewContactHandler(a.Pages, contactService)
	a.HealthHandler = handlers.NewHealthHandler(a.SessionState.Backend(), a.RedisClient)
	return nil
}

// set up the Gin router with middleware and routes
func (a *App) initializeRouter() error {
	if a.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	a.Router = gin.New()
	if err := a.setupTemplates(); err != nil {
		return err
	}
	a.setupMiddleware()
	a.setupRoutes()
	return nil
}

// runBackground starts the maintenance loops; they stop with ctx.
func (a *App) runBackground(ctx context.Context) {
	go a.RateLimiter.Cleanup(ctx, time.Hour)

	sweeper, ok := a.SessionState.(interface{ Sweep() int })
	if !ok {
		return
	}
	go func() {
		ticker := time.NewTicker(10 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := sweeper.Sweep(); n > 0 {
					logger.GlobalLogger.Debugf("swept %d expired session entries", n)
				}
			}
		}
	}()
}

// cleanup operations
func (a *App) cleanup() {
	cache.CloseRedis(a.RedisClient)
}
