package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"filmforge-backend/pkg/container"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found, using system environment variables")
	}
	gin.SetMode(gin.ReleaseMode)

	c, err := container.NewContainer()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize container")
	}
	defer c.Cleanup()

	cfg := loadConfig(c)

	checker := &HealthChecker{redis: c.Redis, db: c.DB, log: c.Log.With().Str("component", "health").Logger()}
	startupCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	err = checker.checkAll(startupCtx)
	cancel()
	if err != nil {
		c.Log.Error().Err(err).Msg("startup checks failed")
		return
	}

	errs := make(chan error, 2)
	srv := setupAsynqServer(cfg, initializeHandlers(c, cfg), c.Log, errs)

	scheduler, err := setupScheduler(cfg, c.Log, errs)
	if err != nil {
		c.Log.Error().Err(err).Msg("failed to start scheduler")
		srv.Shutdown()
		return
	}

	health := startHealthServer(checker, cfg.HealthPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-quit:
		c.Log.Info().Str("signal", sig.String()).Msg("shutting down")
	case err := <-errs:
		c.Log.Error().Err(err).Msg("worker component failed, shutting down")
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	_ = health.Shutdown(shutdownCtx)

	scheduler.Shutdown()
	srv.Shutdown()
}
