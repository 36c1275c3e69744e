package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"github.com/gkbjregency/membership-system/internal/api"
	"github.com/gkbjregency/membership-system/internal/core/service"
	"github.com/gkbjregency/membership-system/internal/infrastructure/db/mongo"
	"github.com/gkbjregency/membership-system/internal/infrastructure/db/redis"
	"github.com/gkbjregency/membership-system/internal/infrastructure/queue"
	"github.com/gkbjregency/membership-system/internal/pkg/config"
	"github.com/gkbjregency/membership-system/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title        Membership System API
// @version      1.0
// @description  Congregation membership, registration, events and attendance API.
// @BasePath     /
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect")
		}
	}()

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("redis close")
		}
	}()

	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to create indexes")
	}

	dispatcher := queue.NewDispatcher(0, mongo.NewAuditRepository(db), log)
	dispatcher.Start(ctx)

	if cfg.Admin.Password != "" {
		auth := service.NewAuthService(mongo.NewAuthRepository(db), cfg.JWTSecret, cfg.TokenTTL)
		if err := auth.SeedAdmin(ctx, cfg.Admin.Email, cfg.Admin.Password, cfg.Admin.Name); err != nil {
			log.Fatal().Err(err).Msg("failed to seed admin account")
		}
		log.Info().Str("email", cfg.Admin.Email).Msg("admin account ensured")
	}

	e := api.NewRouter(db, rdb, cfg.JWTSecret, cfg.TokenTTL, dispatcher, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}

// ensureIndexes creates the unique indexes the write paths rely on.
func ensureIndexes(ctx context.Context, db *mongodriver.Database) error {
	if err := mongo.NewAuthRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongo.NewMemberRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	return mongo.NewAttendanceRepository(db).EnsureIndexes(ctx)
}
