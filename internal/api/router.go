package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/gkbjregency/membership-system/docs"
	"github.com/gkbjregency/membership-system/internal/api/handler"
	"github.com/gkbjregency/membership-system/internal/api/middleware"
	"github.com/gkbjregency/membership-system/internal/core/ports"
	"github.com/gkbjregency/membership-system/internal/core/service"
	mongodb "github.com/gkbjregency/membership-system/internal/infrastructure/db/mongo"
	redisdb "github.com/gkbjregency/membership-system/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, tokenTTL time.Duration, audit ports.AuditRecorder, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("membership"))

	// --- Repositories ---
	authRepo := mongodb.NewAuthRepository(db)
	memberRepo := mongodb.NewMemberRepository(db)
	registrationRepo := mongodb.NewRegistrationRepository(db)
	eventRepo := mongodb.NewEventRepository(db)
	attendanceRepo := mongodb.NewAttendanceRepository(db)
	quoteRepo := mongodb.NewQuoteRepository(db)

	// --- Services ---
	authService := service.NewAuthService(authRepo, jwtSecret, tokenTTL)
	memberService := service.NewMemberService(memberRepo, log)
	registrationService := service.NewRegistrationService(registrationRepo, memberRepo, audit, log)
	eventService := service.NewEventService(eventRepo, audit, log)
	attendanceService := service.NewAttendanceService(eventRepo, attendanceRepo, audit, log)
	quoteService := service.NewQuoteService(quoteRepo, redisdb.NewQuoteCache(rdb), log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	memberHandler := handler.NewMemberHandler(memberService)
	registrationHandler := handler.NewRegistrationHandler(registrationService)
	eventHandler := handler.NewEventHandler(eventService)
	attendanceHandler := handler.NewAttendanceHandler(attendanceService)
	quoteHandler := handler.NewQuoteHandler(quoteService)

	authMW := middleware.Auth(authService)

	// --- Public routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/v1/registrations", registrationHandler.Submit)
	e.GET("/v1/quotes/daily", quoteHandler.Daily)

	// --- Protected routes: the session gate runs before any store access ---
	e.GET("/v1/registrations", registrationHandler.List, authMW)
	e.PUT("/v1/registrations/:id/status", registrationHandler.SetStatus, authMW)
	e.DELETE("/v1/registrations/:id", registrationHandler.Delete, authMW)

	members := e.Group("/v1/members", authMW)
	members.GET("", memberHandler.List)
	members.POST("", memberHandler.Create)
	members.PUT("/:id", memberHandler.Update)
	members.DELETE("/:id", memberHandler.Delete)

	events := e.Group("/v1/events", authMW)
	events.GET("", eventHandler.List)
	events.POST("", eventHandler.Create)
	events.PUT("/:id", eventHandler.Update)
	events.DELETE("/:id", eventHandler.Delete)

	attendance := e.Group("/v1/attendance", authMW)
	attendance.GET("", attendanceHandler.Summary)
	attendance.POST("", attendanceHandler.Record)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
