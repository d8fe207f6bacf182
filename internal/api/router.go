package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	_ "github.com/vilinga/supermercado-api/docs"
	"github.com/vilinga/supermercado-api/internal/api/handler"
	"github.com/vilinga/supermercado-api/internal/api/middleware"
	"github.com/vilinga/supermercado-api/internal/core/domain"
	"github.com/vilinga/supermercado-api/internal/core/ports"
)

// RateLimit configures the per-client request limiter. A zero RPS disables it.
type RateLimit struct {
	RPS   float64
	Burst int
}

// Deps carries everything the router wires into handlers and middleware.
type Deps struct {
	Auth   ports.AuthService
	Clerks ports.ClerkService
	Sales  ports.SaleService
	Tokens ports.TokenVerifier

	// Checks are pinged by GET /health/ready.
	Checks []handler.DependencyCheck

	// Registry receives the HTTP collectors and is served on /metrics.
	// A nil Registry disables both.
	Registry *prometheus.Registry

	Logger          zerolog.Logger
	AdminSetupToken string
	RateLimit       RateLimit
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLogger(d.Logger))
	if d.Registry != nil {
		e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
			Namespace:  "supermercado",
			Subsystem:  "http",
			Registerer: d.Registry,
			Skipper:    isOperational,
		}))
	}
	if d.RateLimit.RPS > 0 {
		e.Use(rateLimiter(d.RateLimit))
	}

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.Auth)
	clerkHandler := handler.NewClerkHandler(d.Clerks)
	saleHandler := handler.NewSaleHandler(d.Sales)
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(d.Logger, d.Checks...)

	authMiddleware := middleware.Auth(d.Tokens, d.Logger)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	clerkOnly := middleware.RBAC(domain.RoleClerk)

	e.GET("/", handler.Index)

	// --- Health probes (no auth required) ---
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	if d.Registry != nil {
		e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
			Gatherer: d.Registry,
		}))
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Auth routes ---
	auth := e.Group("/auth")
	auth.POST("/registeradmin", authHandler.RegisterAdmin, middleware.SetupToken(d.AdminSetupToken))
	auth.POST("/login", authHandler.Login)

	// --- Clerk management (admin only) ---
	clerks := e.Group("/balconistas", authMiddleware, adminOnly)
	clerks.POST("", clerkHandler.Create)
	clerks.GET("", clerkHandler.List)
	clerks.DELETE("/:id", clerkHandler.Delete)

	// --- Sales ---
	e.POST("/vendas", saleHandler.Create, authMiddleware, clerkOnly)
	e.GET("/vendas", saleHandler.List, authMiddleware, adminOnly)

	return e
}

func isOperational(c echo.Context) bool {
	p := c.Request().URL.Path
	return p == "/metrics" || strings.HasPrefix(p, "/health") || strings.HasPrefix(p, "/swagger")
}

func rateLimiter(cfg RateLimit) echo.MiddlewareFunc {
	burst := cfg.Burst
	if burst <= 0 {
		burst = int(cfg.RPS)
	}
	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Skipper: isOperational,
		Store: echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(cfg.RPS),
			Burst:     burst,
			ExpiresIn: 3 * time.Minute,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusForbidden, "Não foi possível identificar o cliente.").SetInternal(err)
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return echo.NewHTTPError(http.StatusTooManyRequests, "Muitas requisições. Tente novamente mais tarde.")
		},
	})
}
