package queue

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"filmforge-backend/internal/shared"
)

type Scheduler struct {
	scheduler       *asynq.Scheduler
	budgetAuditCron string
	log             zerolog.Logger
}

func NewScheduler(redis asynq.RedisClientOpt, budgetAuditCron string, log zerolog.Logger) *Scheduler {
	scheduler := asynq.NewScheduler(
		redis,
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)

	return &Scheduler{
		scheduler:       scheduler,
		budgetAuditCron: budgetAuditCron,
		log:             log.With().Str("component", "scheduler").Logger(),
	}
}

// RegisterJobs registers every periodic task.
func (s *Scheduler) RegisterJobs() error {
	return s.registerBudgetAuditJob()
}

// ================================================
// Budget audit: logs movies whose roster exceeds the budget
// ================================================
func (s *Scheduler) registerBudgetAuditJob() error {
	payload, err := json.Marshal(shared.BudgetAuditPayload{})
	if err != nil {
		return err
	}

	task := asynq.NewTask(shared.TypeMovieBudgetAudit, payload)

	_, err = s.scheduler.Register(
		s.budgetAuditCron,
		task,
		asynq.Queue(shared.QueueLow),
		asynq.MaxRetry(1),
		asynq.Timeout(5*time.Minute),
	)
	if err != nil {
		s.log.Error().Err(err).Str("cron", s.budgetAuditCron).Msg("failed to register budget audit job")
		return err
	}

	s.log.Info().Str("cron", s.budgetAuditCron).Msg("registered budget audit job")
	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Run()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
