// Package logger provides a small factory around Go's slog package with
// functional options and helper attribute constructors.
//
// New builds a *slog.Logger whose handler is chosen by Format (text or json)
// and which carries any static attributes supplied through WithAttr or
// WithComponent. ParseLevel and ParseFormat turn configuration strings into
// the corresponding option values.
//
// Helper constructors such as Param, Validator, Callable and Error live in
// attr.go and keep attribute naming consistent wherever argument validation
// is logged.
//
// # Usage
//
//	import "github.com/dmitrymomot/argsv/pkg/logger"
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithFormat(logger.FormatJSON),
//	    logger.WithComponent("argsv"),
//	)
//	log.Debug("argument rejected",
//	    logger.Param("b"),
//	    logger.Validator("gt(0)"),
//	)
//
// # Error Handling
//
// Error produces an attribute only for a non-nil error, so
//
//	log.Info("done", logger.Error(err))
//
// needs no extra nil check.
package logger
