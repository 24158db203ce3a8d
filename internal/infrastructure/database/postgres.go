package database

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// DBConfig groups connection, pool and retry settings for PostgreSQL.
type DBConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	DBName   string
	SSLMode  string

	MaxConns          int32
	MinConns          int32
	MaxConnLifetime   time.Duration
	MaxConnIdleTime   time.Duration
	HealthCheckPeriod time.Duration

	MaxRetries     int
	RetryDelay     time.Duration
	ConnectTimeout time.Duration
}

// DSN renders the config as a postgres URL usable by both pgx and lib/pq.
func (c *DBConfig) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.Username, c.Password),
		Host:   fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:   c.DBName,
	}
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	u.RawQuery = url.Values{"sslmode": []string{sslMode}}.Encode()
	return u.String()
}

// PostgresDB owns the connection pool and its lifecycle.
type PostgresDB struct {
	Pool   *pgxpool.Pool
	Config *DBConfig
	log    zerolog.Logger
}

func NewPostgresDB(config *DBConfig, log zerolog.Logger) *PostgresDB {
	return &PostgresDB{
		Config: config,
		log:    log.With().Str("component", "database").Logger(),
	}
}

func (db *PostgresDB) configurePool() (*pgxpool.Config, error) {
	config, err := pgxpool.ParseConfig(db.Config.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	if db.Config.MaxConns > 0 {
		config.MaxConns = db.Config.MaxConns
	}
	if db.Config.MinConns > 0 {
		config.MinConns = db.Config.MinConns
	}
	if db.Config.MaxConnLifetime > 0 {
		config.MaxConnLifetime = db.Config.MaxConnLifetime
	}
	if db.Config.MaxConnIdleTime > 0 {
		config.MaxConnIdleTime = db.Config.MaxConnIdleTime
	}
	if db.Config.HealthCheckPeriod > 0 {
		config.HealthCheckPeriod = db.Config.HealthCheckPeriod
	}
	if db.Config.ConnectTimeout > 0 {
		config.ConnConfig.ConnectTimeout = db.Config.ConnectTimeout
	}

	return config, nil
}

// connectWithRetry retries with exponential backoff:
// delay = RetryDelay * 2^(attempt-1).
func (db *PostgresDB) connectWithRetry(ctx context.Context, config *pgxpool.Config) (*pgxpool.Pool, error) {
	maxRetries := db.Config.MaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		db.log.Info().Int("attempt", attempt).Int("max_attempts", maxRetries).Msg("connecting to postgres")

		connectCtx := ctx
		cancel := func() {}
		if db.Config.ConnectTimeout > 0 {
			connectCtx, cancel = context.WithTimeout(ctx, db.Config.ConnectTimeout)
		}
		pool, err := pgxpool.NewWithConfig(connectCtx, config)
		if err == nil {
			err = pool.Ping(connectCtx)
			if err != nil {
				pool.Close()
			}
		}
		cancel()

		if err == nil {
			db.log.Info().Int("attempt", attempt).Msg("postgres connection established")
			return pool, nil
		}
		lastErr = err
		db.log.Warn().Err(err).Int("attempt", attempt).Msg("postgres connection attempt failed")

		if attempt < maxRetries {
			delay := db.Config.RetryDelay * time.Duration(1<<uint(attempt-1))
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, fmt.Errorf("connection cancelled: %w", ctx.Err())
			}
		}
	}

	return nil, fmt.Errorf("failed to connect after %d attempts: %w", maxRetries, lastErr)
}

// Connect configures the pool and establishes it with retries.
func (db *PostgresDB) Connect(ctx context.Context) error {
	config, err := db.configurePool()
	if err != nil {
		return fmt.Errorf("pool configuration failed: %w", err)
	}

	pool, err := db.connectWithRetry(ctx, config)
	if err != nil {
		return fmt.Errorf("connection failed: %w", err)
	}

	db.Pool = pool
	return nil
}

// HealthCheck pings the database with a short timeout.
func (db *PostgresDB) HealthCheck(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	healthCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.Pool.Ping(healthCtx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	stats := db.Pool.Stat()
	db.log.Debug().
		Int32("total_conns", stats.TotalConns()).
		Int32("idle_conns", stats.IdleConns()).
		Int32("acquired_conns", stats.AcquiredConns()).
		Msg("database health check passed")

	return nil
}

func (db *PostgresDB) Close() {
	if db.Pool != nil {
		db.Pool.Close()
		db.log.Info().Msg("postgres pool closed")
	}
}
