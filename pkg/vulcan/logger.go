package vulcan

import (
	"io"
	"time"

	"github.com/vulcanutils/vulcan/internal/logging"
)

// Logger is the leveled, caller-annotating logger.
type Logger = logging.Logger

// Level is a log severity.
type Level = logging.Level

// Log severities, in increasing order.
const (
	DebugLevel    = logging.DebugLevel
	InfoLevel     = logging.InfoLevel
	WarningLevel  = logging.WarningLevel
	ErrorLevel    = logging.ErrorLevel
	CriticalLevel = logging.CriticalLevel
)

// LoggerOption configures a new Logger.
type LoggerOption = logging.Option

// NewLogger creates a named logger. The level defaults to
// VULCAN_LOG_LEVEL (INFO when unset); when VULCAN_LOG_PATH is set,
// records are duplicated to a file under that directory.
func NewLogger(name string, opts ...LoggerOption) (*Logger, error) {
	return logging.New(name, opts...)
}

// ParseLevel parses a level name such as "DEBUG" or "warning".
func ParseLevel(s string) (Level, error) {
	return logging.ParseLevel(s)
}

// FormatDuration renders a duration as a unit breakdown such as
// "1m 5s 250ms".
func FormatDuration(d time.Duration) string {
	return logging.FormatDuration(d)
}

// WithLevel sets a new logger's minimum level.
func WithLevel(level Level) LoggerOption { return logging.WithLevel(level) }

// WithColor toggles ANSI coloring on a new logger.
func WithColor(enabled bool) LoggerOption { return logging.WithColor(enabled) }

// WithCaller toggles the call-site annotation on a new logger.
func WithCaller(enabled bool) LoggerOption { return logging.WithCaller(enabled) }

// WithOutput redirects a new logger's console output.
func WithOutput(w io.Writer) LoggerOption { return logging.WithOutput(w) }
