package logging

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/Think-iT-Labs/jad/internal/config"
)

// NewLogger creates the structured service logger. The service name is added
// as a context field when configured.
func NewLogger(cfg *config.Config) zerolog.Logger {
	ctx := zerolog.New(os.Stdout).With().Timestamp()

	if cfg.ServiceName != "" {
		ctx = ctx.Str("service", cfg.ServiceName)
	}

	logger := ctx.Logger()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	return logger.Level(level)
}
