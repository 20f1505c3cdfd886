// Package logger configures the global zerolog logger.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Level        string `yaml:"level"`  // debug, info, warn, error
	Format       string `yaml:"format"` // json or pretty
	TimeFormat   string `yaml:"time_format"`
	ReportCaller bool   `yaml:"report_caller"`
	// Out defaults to stdout.
	Out io.Writer `yaml:"-"`
}

// Init replaces the global zerolog logger. An unknown level falls back to info.
func Init(cfg Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}
	if cfg.Format == "pretty" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: timeFormat(cfg.TimeFormat, time.Kitchen)}
	}
	zerolog.TimeFieldFormat = timeFormat(cfg.TimeFormat, time.RFC3339)

	ctx := zerolog.New(out).Level(level).With().Timestamp()
	if cfg.ReportCaller {
		ctx = ctx.Caller()
	}
	log.Logger = ctx.Logger()
	return log.Logger
}

func timeFormat(configured, fallback string) string {
	if configured == "" {
		return fallback
	}
	return configured
}
