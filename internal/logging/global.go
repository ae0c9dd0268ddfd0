package logging

import (
	"os"
	"sync"
)

var (
	defaultMu     sync.RWMutex
	defaultLogger *Logger
)

// Default returns the process-wide logger, creating it on first use
// from the environment.
func Default() *Logger {
	defaultMu.RLock()
	l := defaultLogger
	defaultMu.RUnlock()
	if l != nil {
		return l
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLogger == nil {
		l, err := New(defaultName)
		if err != nil {
			// A bad VULCAN_LOG_PATH should not take logging down
			// with it; fall back to console only.
			l = &Logger{name: defaultName, level: levelFromEnv(), out: os.Stderr, colored: true, showCaller: true}
		}
		defaultLogger = l
	}
	return defaultLogger
}

// SetDefault replaces the process-wide logger.
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defaultLogger = l
	defaultMu.Unlock()
}

// Debug logs to the default logger.
func Debug(msg string, args ...any) { Default().Debug(msg, args...) }

// Info logs to the default logger.
func Info(msg string, args ...any) { Default().Info(msg, args...) }

// Warning logs to the default logger.
func Warning(msg string, args ...any) { Default().Warning(msg, args...) }

// Error logs to the default logger.
func Error(msg string, args ...any) { Default().Error(msg, args...) }

// Critical logs to the default logger.
func Critical(msg string, args ...any) { Default().Critical(msg, args...) }
