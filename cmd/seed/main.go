package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"filmforge-backend/pkg/container"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found, using system environment variables")
	}

	c, err := container.NewContainer()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize container")
	}
	defer c.Cleanup()

	if c.Config.IsProduction() {
		c.Log.Error().Msg("refusing to seed a production database")
		return
	}

	password := os.Getenv("SEED_PASSWORD")
	if password == "" {
		password = "filmforge-dev"
	}

	seeder := &Seeder{
		Users:     c.UserService,
		Finder:    c.UserRepo,
		Genres:    c.GenreService,
		Directors: c.DirectorService,
		Actors:    c.ActorService,
		Movies:    c.MovieService,
		Password:  password,
		Log:       c.Log.With().Str("component", "seed").Logger(),
		Now:       time.Now,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	switch err := seeder.Run(ctx); {
	case errors.Is(err, ErrAlreadySeeded):
		c.Log.Info().Msg("database already seeded, nothing to do")
	case err != nil:
		c.Log.Error().Err(err).Msg("seeding failed")
	default:
		c.Log.Info().Msg("seeding complete")
	}
}
