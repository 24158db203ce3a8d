package main

import (
	"context"
	"database/sql"
	"flag"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"filmforge-backend/db/migrations"
	"filmforge-backend/internal/config"
	"filmforge-backend/internal/infrastructure/database"
	"filmforge-backend/pkg/logger"
)

func main() {
	timeout := flag.Duration("timeout", 2*time.Minute, "overall migration timeout")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	l := logger.Init(cfg.App.Environment).With().Str("component", "migrate").Logger()

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		l.Fatal().Err(err).Msg("failed to load database config")
	}

	db, err := sql.Open("postgres", dbConfig.DSN())
	if err != nil {
		l.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		l.Error().Err(err).Str("host", dbConfig.Host).Msg("database unreachable")
		return
	}

	applied, err := database.Migrate(ctx, db, migrations.FS, l)
	if err != nil {
		l.Error().Err(err).Strs("applied", applied).Msg("migration failed")
		return
	}

	if len(applied) == 0 {
		l.Info().Msg("schema already up to date")
		return
	}
	l.Info().Strs("applied", applied).Msg("migrations applied")
}
