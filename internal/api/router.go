package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/shopnexus/storefront/internal/api/handler"
	"github.com/shopnexus/storefront/internal/api/middleware"
	"github.com/shopnexus/storefront/internal/core/ports"
	"github.com/shopnexus/storefront/internal/infrastructure/config"
	"github.com/shopnexus/storefront/internal/view"
)

// authRateLimit bounds auth submissions per client IP. Generous for humans,
// tight enough to blunt credential stuffing against the identity service.
const authRateLimit = rate.Limit(5)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(service ports.StorefrontService, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Renderer = view.NewRenderer()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("storefront"))

	session := middleware.Session(cfg.Session.Secret, cfg.Session.CookieName, cfg.Session.TTL)

	// --- Storefront page ---
	pageHandler := handler.NewPageHandler(service)
	e.GET("/", pageHandler.Home, session)
	e.StaticFS("/static", view.StaticFS())

	// --- Auth form submissions ---
	authHandler := handler.NewAuthHandler(service)
	auth := e.Group("/auth", session,
		echomiddleware.RateLimiter(echomiddleware.NewRateLimiterMemoryStore(authRateLimit)))
	auth.POST("/login", authHandler.Login)
	auth.POST("/register", authHandler.Register)
	auth.POST("/logout", authHandler.Logout)

	// --- Health probes and metrics (no session required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness)  // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
