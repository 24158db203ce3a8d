package main

import (
	"fmt"

	"github.com/rs/zerolog"

	"filmforge-backend/internal/infrastructure/queue"
)

func setupScheduler(cfg *Config, log zerolog.Logger, errs chan<- error) (*queue.Scheduler, error) {
	scheduler := queue.NewScheduler(cfg.Redis, cfg.BudgetAuditCron, log)

	if err := scheduler.RegisterJobs(); err != nil {
		return nil, fmt.Errorf("register scheduled jobs: %w", err)
	}

	go func() {
		if err := scheduler.Start(); err != nil {
			errs <- fmt.Errorf("scheduler: %w", err)
		}
	}()

	return scheduler, nil
}
