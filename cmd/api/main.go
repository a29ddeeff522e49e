package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/itsyourradio/radio-api/internal/api"
	"github.com/itsyourradio/radio-api/internal/core/service"
	"github.com/itsyourradio/radio-api/internal/infrastructure/config"
	mongodb "github.com/itsyourradio/radio-api/internal/infrastructure/db/mongo"
	redisdb "github.com/itsyourradio/radio-api/internal/infrastructure/db/redis"
	"github.com/itsyourradio/radio-api/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		// Logger is not up yet; this is the one place stderr is used directly.
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
		Service: "radio-api",
	})

	client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	userRepo := mongodb.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("creating user indexes failed")
	}

	hasher := service.NewPasswordHasher(cfg.BcryptCost, cfg.MaxConcurrentHashes)
	bootstrap := service.NewBootstrap(userRepo, hasher, service.BootstrapConfig{
		AdminEmail:    cfg.AdminEmail,
		AdminUsername: cfg.AdminUsername,
		AdminPassword: cfg.AdminPassword,
		AdminFullName: cfg.AdminFullName,
	}, log)
	if err := bootstrap.EnsureDefaultAdmin(ctx); err != nil {
		log.Fatal().Err(err).Msg("default admin bootstrap failed")
	}

	e := api.NewRouter(db, rdb, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
