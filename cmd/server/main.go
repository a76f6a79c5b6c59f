package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopnexus/storefront/internal/api"
	"github.com/shopnexus/storefront/internal/core/service"
	"github.com/shopnexus/storefront/internal/infrastructure/config"
	redisdb "github.com/shopnexus/storefront/internal/infrastructure/db/redis"
	"github.com/shopnexus/storefront/internal/infrastructure/upstream"
	"github.com/shopnexus/storefront/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer func() { _ = rdb.Close() }()

	catalog := upstream.NewProductClient(cfg.Upstream.ProductAPIURL, cfg.Upstream.Timeout)
	identity := upstream.NewIdentityClient(cfg.Upstream.UserAPIURL, cfg.Upstream.Timeout)
	sessions := redisdb.NewSessionStore(rdb, cfg.Session.TTL)

	storefront := service.NewStorefrontService(catalog, identity, sessions, log)

	e := api.NewRouter(storefront, rdb, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting storefront gateway")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
