// Command numregex prints and checks culture-aware regular expressions for
// numeric strings.
//
// Usage:
//
//	numregex pattern --locale de-DE --sign negative-or-none --grouping required --decimals 2 --decimal-required
//	numregex match --locale de-DE --grouping required -- -1.234 12
//	numregex profile fr-FR
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dmitrymomot/numregex/pkg/config"
	"github.com/dmitrymomot/numregex/pkg/logger"
	"github.com/dmitrymomot/numregex/pkg/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "numregex: %v\n", err)
		os.Exit(2)
	}

	log := newLogger(cfg, os.Stderr)
	logger.SetAsDefault(log)

	if err := newRootCmd(cfg, log).Execute(); err != nil {
		// Rejected values are already reported on stdout.
		if !validator.IsValidationError(err) {
			log.Error("command failed", logger.Error(err))
		}
		os.Exit(1)
	}
}

// newLogger applies the environment preset, then the explicit level and
// format from cfg.
func newLogger(cfg config.Config, w io.Writer) *slog.Logger {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, "numregex"),
		logger.WithOutput(w),
	}
	if cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevelName(cfg.LogLevel))
	}
	if cfg.LogFormat != "" {
		opts = append(opts, logger.WithFormat(logger.Format(cfg.LogFormat)))
	}
	return logger.New(opts...)
}
