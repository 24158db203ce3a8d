package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	infraCache "filmforge-backend/internal/infrastructure/cache"
	"filmforge-backend/internal/infrastructure/database"
)

// HealthChecker runs the startup checks and backs the /health probe.
type HealthChecker struct {
	redis *infraCache.RedisClient
	db    *database.PostgresDB
	log   zerolog.Logger
}

func (h *HealthChecker) checkAll(ctx context.Context) error {
	checks := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"redis", h.checkRedis},
		{"postgres", h.db.HealthCheck},
	}

	for _, check := range checks {
		if err := check.fn(ctx); err != nil {
			h.log.Error().Err(err).Str("check", check.name).Msg("health check failed")
			return fmt.Errorf("%s health check: %w", check.name, err)
		}
		h.log.Info().Str("check", check.name).Msg("health check ok")
	}
	return nil
}

// The worker needs Redis even though the API can run without it.
func (h *HealthChecker) checkRedis(ctx context.Context) error {
	if h.redis == nil {
		return fmt.Errorf("redis is not connected")
	}
	return h.redis.HealthCheck(ctx)
}

// healthRouter serves /health (liveness with dependency status) and
// /ready.
func (h *HealthChecker) healthRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := h.checkAll(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "DOWN", "service": "filmforge-worker", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "UP", "service": "filmforge-worker"})
	})
	router.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "READY"})
	})

	return router
}

// startHealthServer serves the probes until Shutdown is called on the
// returned server.
func startHealthServer(h *HealthChecker, port string) *http.Server {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           h.healthRouter(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		h.log.Info().Str("addr", srv.Addr).Msg("health server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			h.log.Error().Err(err).Msg("health server failed")
		}
	}()

	return srv
}
