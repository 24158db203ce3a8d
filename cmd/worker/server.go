package main

import (
	"context"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

type asynqServer struct {
	*asynq.Server
	log zerolog.Logger
}

// setupAsynqServer starts the worker in the background. Run errors are
// reported on errs.
func setupAsynqServer(cfg *Config, handlers *HandlerRegistry, log zerolog.Logger, errs chan<- error) *asynqServer {
	mux := asynq.NewServeMux()
	handlers.RegisterHandlers(mux)

	log = log.With().Str("component", "worker").Logger()

	srv := asynq.NewServer(
		cfg.Redis,
		asynq.Config{
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
			Concurrency: cfg.Concurrency,
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				retried, _ := asynq.GetRetryCount(ctx)
				maxRetry, _ := asynq.GetMaxRetry(ctx)
				log.Error().
					Err(err).
					Str("task", task.Type()).
					Int("retry", retried).
					Int("max_retry", maxRetry).
					Msg("task failed")
			}),
		},
	)

	go func() {
		log.Info().Msg("worker starting")
		if err := srv.Run(mux); err != nil {
			errs <- err
		}
	}()

	return &asynqServer{Server: srv, log: log}
}

// Shutdown waits for in-flight tasks up to asynq's shutdown timeout.
func (s *asynqServer) Shutdown() {
	s.log.Info().Msg("worker shutting down")
	s.Server.Shutdown()
	s.log.Info().Msg("worker stopped")
}
