package api

import (
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/towingbuddy/towtrack-api/internal/api/handler"
	"github.com/towingbuddy/towtrack-api/internal/core/ports"
	"github.com/towingbuddy/towtrack-api/internal/core/service"
	mongodb "github.com/towingbuddy/towtrack-api/internal/infrastructure/db/mongo"
)

// Deps carries the externally-constructed dependencies the router wires into
// handlers. The store handle and dispatcher are built once in main and
// injected here; nothing is reached through package-level state.
type Deps struct {
	DB         *mongo.Database
	Dispatcher ports.NotificationDispatcher
	OtpTTL     time.Duration
	Logger     zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())

	// --- Repositories ---
	ownerRepo := mongodb.NewOwnerRepository(deps.DB)
	towingRepo := mongodb.NewTowingRepository(deps.DB)
	otpRepo := mongodb.NewOtpRepository(deps.DB)
	adminRepo := mongodb.NewAdminRepository(deps.DB)

	// --- Services ---
	authService := service.NewAuthService(ownerRepo, otpRepo, towingRepo, adminRepo, deps.Dispatcher, deps.OtpTTL, deps.Logger)
	towingService := service.NewTowingService(towingRepo, ownerRepo, deps.Dispatcher, deps.Logger)
	ownerService := service.NewOwnerService(ownerRepo, deps.Logger)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	ownerHandler := handler.NewOwnerHandler(ownerService)
	vehicleHandler := handler.NewVehicleHandler(towingService)
	paymentHandler := handler.NewPaymentHandler(towingService)

	// --- API routes ---
	apiGroup := e.Group("/api")
	apiGroup.POST("/auth/request-otp", authHandler.RequestOtp)
	apiGroup.POST("/auth/verify-otp", authHandler.VerifyOtp)
	apiGroup.POST("/auth/admin-login", authHandler.AdminLogin)

	apiGroup.GET("/owners/lookup", ownerHandler.Lookup)
	apiGroup.POST("/owners", ownerHandler.Upsert)

	apiGroup.POST("/vehicles", vehicleHandler.Create)
	apiGroup.GET("/vehicles", vehicleHandler.List)

	apiGroup.PUT("/payments/:id/status", paymentHandler.UpdateStatus)
	apiGroup.GET("/payments/:id/status", paymentHandler.GetStatus)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.DB)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}
