package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"filmforge-backend/internal/domains/movie/model"
	"filmforge-backend/internal/shared"
)

type Auditor interface {
	AuditBudgets(ctx context.Context, limit int) ([]*model.BudgetResponse, error)
}

// BudgetAuditHandler reports movies whose stored roster exceeds the budget,
// e.g. after fees changed outside the validated paths.
type BudgetAuditHandler struct {
	auditor Auditor
	log     zerolog.Logger
}

func NewBudgetAuditHandler(auditor Auditor, log zerolog.Logger) *BudgetAuditHandler {
	return &BudgetAuditHandler{
		auditor: auditor,
		log:     log.With().Str("task", shared.TypeMovieBudgetAudit).Logger(),
	}
}

func (h *BudgetAuditHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var p shared.BudgetAuditPayload
	if len(task.Payload()) > 0 {
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			return fmt.Errorf("unmarshal payload: %v: %w", err, asynq.SkipRetry)
		}
	}

	over, err := h.auditor.AuditBudgets(ctx, p.Limit)
	if err != nil {
		return fmt.Errorf("audit budgets: %w", err)
	}

	for _, m := range over {
		h.log.Warn().
			Str("movie_id", m.MovieID.String()).
			Str("title", m.Title).
			Uint64("budget", m.Budget).
			Uint64("committed", m.Committed).
			Bool("overflow", m.Overflow).
			Str("utilization_percent", m.Utilization.String()).
			Msg("movie roster exceeds budget")
	}

	h.log.Info().Int("over_budget", len(over)).Msg("budget audit finished")
	return nil
}
