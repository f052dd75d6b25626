// Package logger provides a context-aware wrapper around Go's slog package
// with functional options, env-loadable configuration and helper attribute
// constructors for arithmetic diagnostics.
//
// New creates a *slog.Logger configured by a set of Option functions. These
// options allow you to:
//
//   - Select an output format (text or json)
//   - Set the minimum log level
//   - Supply default slog.Attr values applied to every record
//   - Register ContextExtractor callbacks that inject attributes pulled from a
//     context value (for example the CLI command path) every time Handle is invoked.
//
// # Architecture
//
// New picks slog.NewTextHandler or slog.NewJSONHandler based on the configured
// Format. When extractors are registered the handler is wrapped so the
// ContextExtractor callbacks run before each record is delegated.
//
// Helper constructors such as Operation, Operands, Result and Digits live in
// attr.go and keep attribute names consistent across commands.
//
// # Usage
//
//	import "github.com/dmitrymomot/numkit/pkg/logger"
//
//	var cfg logger.Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//	log := logger.New(
//	    logger.WithConfig(cfg),
//	    logger.WithContextValue("command", commandKey{}),
//	)
//	log.DebugContext(ctx, "division done",
//	    logger.Operation("div"),
//	    logger.Operands(a, b),
//	    logger.Digits(20),
//	    logger.Result(q),
//	)
//
// # Configuration
//
// Config reads LOG_LEVEL (default "info") and LOG_FORMAT (default "text").
// Options applied after WithConfig override it:
//
//   - WithFormat – override output format.
//   - WithLevel – set a custom slog.Level.
//   - WithOutput – redirect output (stderr by default).
//   - WithAttr – attach static attributes.
//   - WithContextExtractors / WithContextValue – inject attributes from context.
//
// # Error Handling
//
// Error produces an attribute only when the supplied error value is
// non-nil, so it can be passed without an additional nil check:
//
//	log.Info("operation finished", logger.Error(err))
//
// ParseFormat and Format.UnmarshalText return ErrInvalidFormat for unknown
// format names.
package logger
