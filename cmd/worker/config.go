package main

import (
	"github.com/hibiken/asynq"

	"filmforge-backend/pkg/container"
)

// Config is the slice of application configuration the worker uses.
type Config struct {
	Redis           asynq.RedisClientOpt
	Concurrency     int
	BudgetAuditCron string
	HealthPort      string
	SMTPHost        string
	SMTPPort        string
	SMTPFrom        string
}

func loadConfig(c *container.Container) *Config {
	app := c.Config
	cfg := &Config{
		Redis:           c.RedisOpt(),
		Concurrency:     app.Queue.Concurrency,
		BudgetAuditCron: app.Queue.BudgetAuditCron,
		HealthPort:      app.Queue.HealthPort,
		SMTPHost:        app.SMTP.Host,
		SMTPPort:        app.SMTP.Port,
		SMTPFrom:        app.SMTP.From,
	}

	c.Log.Info().
		Str("redis", cfg.Redis.Addr).
		Str("smtp", cfg.SMTPHost+":"+cfg.SMTPPort).
		Int("concurrency", cfg.Concurrency).
		Msg("worker config loaded")

	return cfg
}
