package main

import (
	"github.com/hibiken/asynq"

	invitationJob "filmforge-backend/internal/domains/invitation/job"
	movieJob "filmforge-backend/internal/domains/movie/job"
	"filmforge-backend/internal/infrastructure/email"
	"filmforge-backend/internal/shared"
	"filmforge-backend/pkg/container"
)

// HandlerRegistry holds all job handlers
type HandlerRegistry struct {
	invitationNotify *invitationJob.NotifyHandler
	budgetAudit      *movieJob.BudgetAuditHandler
}

func initializeHandlers(c *container.Container, cfg *Config) *HandlerRegistry {
	mailer := email.NewSMTPEmailService(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPFrom, c.Log)

	return &HandlerRegistry{
		invitationNotify: invitationJob.NewNotifyHandler(
			c.InvitationRepo,
			c.ActorRepo,
			c.MovieRepo,
			c.UserRepo,
			mailer,
			c.Log,
		),
		budgetAudit: movieJob.NewBudgetAuditHandler(c.MovieService, c.Log),
	}
}

func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(shared.TypeInvitationNotify, h.invitationNotify.ProcessTask)
	mux.HandleFunc(shared.TypeMovieBudgetAudit, h.budgetAudit.ProcessTask)
}
