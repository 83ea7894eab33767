// Package logger builds *slog.Logger values from functional options and
// provides attribute helpers so that log keys stay consistent across the
// module.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment("development", "numregex"),
//	    logger.WithOutput(os.Stderr),
//	)
//	log.Debug("compiled pattern", logger.Locale("de-DE"), logger.Pattern(p))
//
// # Configuration
//
//   • WithEnvironment – text/debug for development, JSON/info for production and staging.
//   • WithFormat – FormatJSON or FormatText; panics on anything else.
//   • WithLevel / WithLevelName – minimum level; WithLevelName panics on unknown names.
//   • WithOutput – destination writer; defaults to stderr.
//   • WithAttr – static attributes attached to every record.
//
// # Attributes
//
// Error only produces an attribute for a non-nil error, so
//
//	log.Info("done", logger.Error(err))
//
// is safe whether or not err is set. Locale, Pattern, Options and Input
// name the values this module logs most.
package logger
