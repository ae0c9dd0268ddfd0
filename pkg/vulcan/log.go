package vulcan

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/vulcanutils/vulcan/internal/encode"
	"github.com/vulcanutils/vulcan/internal/logging"
	"github.com/vulcanutils/vulcan/internal/types"
)

type logConfig struct {
	logger    types.Logger
	level     logging.Level
	condition func(args []any) bool
}

// LogOption configures the Log middleware.
type LogOption func(*logConfig)

// WithLogLevel sets the level call and return records are logged at.
// The default is INFO.
func WithLogLevel(level logging.Level) LogOption {
	return func(c *logConfig) { c.level = level }
}

// WithLogger routes records to a specific logger instead of the
// package default.
func WithLogger(l types.Logger) LogOption {
	return func(c *logConfig) { c.logger = l }
}

// WithCondition makes logging conditional on the call's arguments.
// When the predicate returns false the call runs silently.
func WithCondition(pred func(args []any) bool) LogOption {
	return func(c *logConfig) { c.condition = pred }
}

// Log returns middleware that records the call, its arguments, the
// result, and the elapsed time. Failures are logged at ERROR level
// regardless of the configured level. A false condition suppresses
// all records, including error records, while the call itself still
// runs.
func Log[T any](opts ...LogOption) Middleware[T] {
	cfg := &logConfig{level: logging.InfoLevel}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next Func[T]) Func[T] {
		return func(ctx context.Context) (T, error) {
			logger := cfg.logger
			if logger == nil {
				logger = logging.Default()
			}

			info := CallInfoFrom(ctx)
			name := "func"
			var args []any
			if info != nil {
				name = info.Name
				args = info.Args
			}

			enabled := cfg.condition == nil || cfg.condition(args)
			if enabled {
				logAt(logger, cfg.level, "calling %s%s", name, formatArgs(args))
			}

			start := time.Now()
			result, err := next(ctx)
			elapsed := time.Since(start)

			if err != nil {
				if enabled {
					logger.Error("%s failed after %s: %v", name, logging.FormatDuration(elapsed), err)
				}
				return result, err
			}
			if enabled {
				logAt(logger, cfg.level, "%s returned %s in %s", name, formatResult(result), logging.FormatDuration(elapsed))
			}
			return result, nil
		}
	}
}

func logAt(logger types.Logger, level logging.Level, msg string, args ...any) {
	switch level {
	case logging.DebugLevel:
		logger.Debug(msg, args...)
	case logging.InfoLevel:
		logger.Info(msg, args...)
	case logging.WarningLevel:
		logger.Warning(msg, args...)
	case logging.ErrorLevel:
		logger.Error(msg, args...)
	case logging.CriticalLevel:
		logger.Critical(msg, args...)
	default:
		logger.Debug(msg, args...)
	}
}

// formatResult renders the return value as JSON so structured results
// read back as data rather than a Go value dump.
func formatResult(v any) string {
	data, err := encode.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}

func formatArgs(args []any) string {
	if len(args) == 0 {
		return "()"
	}
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprintf("%v", a)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
