// Command server runs the supermarket point-of-sale API.
//
//	@title						Supermercado API
//	@version					1.0
//	@description				Point-of-sale API: administrators manage clerks, clerks record sales.
//	@BasePath					/
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and the JWT.
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/vilinga/supermercado-api/internal/api"
	"github.com/vilinga/supermercado-api/internal/api/handler"
	"github.com/vilinga/supermercado-api/internal/config"
	"github.com/vilinga/supermercado-api/internal/core/service"
	mongodb "github.com/vilinga/supermercado-api/internal/infrastructure/db/mongo"
	redisdb "github.com/vilinga/supermercado-api/internal/infrastructure/db/redis"
	"github.com/vilinga/supermercado-api/internal/metrics"
	"github.com/vilinga/supermercado-api/pkg/logger"
)

func main() {
	// A missing .env is fine; real deployments use the environment.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog := logger.Init(logger.Options{Service: "supermercado-api"})
		bootLog.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty || cfg.IsDevelopment(),
		Service: "supermercado-api",
	})

	// --- Infrastructure ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		Timeout:  cfg.Mongo.Timeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mongoClient.Disconnect(disconnectCtx); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("redis close")
		}
	}()

	userRepo := mongodb.NewUserRepository(db)
	saleRepo := mongodb.NewSaleRepository(db)
	if err := mongodb.EnsureIndexes(ctx, userRepo, saleRepo); err != nil {
		log.Fatal().Err(err).Msg("failed to create indexes")
	}

	// --- Metrics ---
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	// --- Services ---
	tokens, err := service.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create token service")
	}
	limiter := redisdb.NewLoginLimiter(rdb, cfg.Auth.LoginMaxAttempts, cfg.Auth.LoginWindow)

	authService := service.NewAuthService(userRepo, tokens, limiter, cfg.Auth.BcryptCost, m, log)
	clerkService := service.NewClerkService(userRepo, cfg.Auth.BcryptCost, m, log)
	saleService := service.NewSaleService(saleRepo, m, log)

	if cfg.Auth.AdminSetupToken == "" {
		log.Warn().Msg("ADMIN_SETUP_TOKEN not set: administrator registration is open")
	}

	e := api.NewRouter(api.Deps{
		Auth:   authService,
		Clerks: clerkService,
		Sales:  saleService,
		Tokens: tokens,
		Checks: []handler.DependencyCheck{
			handler.MongoCheck(db),
			handler.RedisCheck(rdb),
		},
		Registry:        reg,
		Logger:          log,
		AdminSetupToken: cfg.Auth.AdminSetupToken,
		RateLimit: api.RateLimit{
			RPS:   cfg.HTTP.RateLimitRPS,
			Burst: cfg.HTTP.RateLimitBurst,
		},
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      e,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server error")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
		return
	}
	log.Info().Msg("server stopped")
}
