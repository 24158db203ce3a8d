package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// New builds the application logger. Development gets a human readable
// console writer; every other environment logs JSON with unix timestamps.
func New(env string) zerolog.Logger {
	return NewWithWriter(env, os.Stderr)
}

func NewWithWriter(env string, w io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	out := w
	if env == "development" {
		out = zerolog.ConsoleWriter{Out: w}
	}

	return zerolog.New(out).
		Level(parseLevel(os.Getenv("LOG_LEVEL"))).
		With().
		Timestamp().
		Logger()
}

// Init installs the logger as the zerolog global so middleware and the
// helpers below share its output.
func Init(env string) zerolog.Logger {
	l := New(env)
	log.Logger = l
	zerolog.SetGlobalLevel(l.GetLevel())
	return l
}

func parseLevel(s string) zerolog.Level {
	if s == "" {
		return zerolog.InfoLevel
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
