package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Config holds the application configuration, populated from environment
// variables (optionally loaded from .env by the entrypoints).
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Queue    QueueConfig
	Lock     LockConfig
	Cache    CacheConfig
	SMTP     SMTPConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type DatabaseConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	Database    string
	SSLMode     string
	MaxConns    int
	MinConns    int
	AutoMigrate bool
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret             string
	AccessTokenExpiry  int // minutes
	RefreshTokenExpiry int // hours
}

// QueueConfig configures the asynq worker and scheduler.
type QueueConfig struct {
	Concurrency     int
	BudgetAuditCron string
	HealthPort      string
}

// LockConfig configures the per-movie roster lock.
type LockConfig struct {
	TTL         time.Duration
	WaitTimeout time.Duration
}

type CacheConfig struct {
	TTL time.Duration
}

type SMTPConfig struct {
	Host string
	Port string
	From string
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "FilmForge API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Database: DatabaseConfig{
			Host:        getEnv("DB_HOST", "localhost"),
			Port:        getEnvInt("DB_PORT", 5432),
			User:        getEnv("DB_USER", "postgres"),
			Password:    getEnv("DB_PASSWORD", ""),
			Database:    getEnv("DB_NAME", "filmforge"),
			SSLMode:     getEnv("DB_SSLMODE", "disable"),
			MaxConns:    getEnvInt("DB_MAX_CONNS", 25),
			MinConns:    getEnvInt("DB_MIN_CONNS", 5),
			AutoMigrate: getEnvBool("DB_AUTO_MIGRATE", true),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			Secret:             getEnv("JWT_SECRET", defaultJWTSecret),
			AccessTokenExpiry:  getEnvInt("JWT_ACCESS_EXPIRY", 60),  // 1 hour
			RefreshTokenExpiry: getEnvInt("JWT_REFRESH_EXPIRY", 168), // 7 days
		},
		Queue: QueueConfig{
			Concurrency:     getEnvInt("QUEUE_CONCURRENCY", 10),
			BudgetAuditCron: getEnv("QUEUE_BUDGET_AUDIT_CRON", "0 * * * *"),
			HealthPort:      getEnv("WORKER_HEALTH_PORT", "9999"),
		},
		Lock: LockConfig{
			TTL:         getEnvDuration("LOCK_TTL", 10*time.Second),
			WaitTimeout: getEnvDuration("LOCK_WAIT_TIMEOUT", 5*time.Second),
		},
		Cache: CacheConfig{
			TTL: getEnvDuration("CACHE_TTL", 10*time.Minute),
		},
		SMTP: SMTPConfig{
			Host: getEnv("SMTP_HOST", "localhost"),
			Port: getEnv("SMTP_PORT", "1025"),
			From: getEnv("SMTP_FROM", "noreply@filmforge.dev"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate rejects configurations the services cannot run with.
func (c *Config) Validate() error {
	if _, err := strconv.Atoi(c.App.Port); err != nil {
		return fmt.Errorf("APP_PORT must be numeric, got %q", c.App.Port)
	}
	if c.Database.MaxConns < 1 {
		return fmt.Errorf("DB_MAX_CONNS must be positive")
	}
	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("DB_MIN_CONNS (%d) exceeds DB_MAX_CONNS (%d)", c.Database.MinConns, c.Database.MaxConns)
	}
	if c.Lock.TTL <= 0 || c.Lock.WaitTimeout <= 0 {
		return fmt.Errorf("LOCK_TTL and LOCK_WAIT_TIMEOUT must be positive")
	}
	if c.JWT.AccessTokenExpiry <= 0 || c.JWT.RefreshTokenExpiry <= 0 {
		return fmt.Errorf("JWT expiries must be positive")
	}

	if c.IsProduction() {
		if c.JWT.Secret == defaultJWTSecret || len(c.JWT.Secret) < 32 {
			return fmt.Errorf("JWT_SECRET must be set to at least 32 characters in production")
		}
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD must be set in production")
		}
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := strings.TrimSpace(os.Getenv(key))
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
