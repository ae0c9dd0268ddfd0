package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

// Environment variables consulted when an option is not given explicitly.
const (
	EnvLevel = "VULCAN_LOG_LEVEL"
	EnvPath  = "VULCAN_LOG_PATH"
	EnvName  = "VULCAN_LOG_NAME"
)

const defaultName = "vulcan"

// Logger writes leveled, timestamped records annotated with the
// file and line of the call site. Records go to the console writer
// and, when a log directory is configured, to a file as well.
// The file copy never carries ANSI color codes.
type Logger struct {
	mu         sync.Mutex
	name       string
	level      Level
	out        io.Writer
	file       *os.File
	fileDir    string
	fileName   string
	colored    bool
	showCaller bool
}

// Option configures a Logger.
type Option func(*Logger)

// WithLevel sets the minimum level that will be emitted.
func WithLevel(level Level) Option {
	return func(l *Logger) { l.level = level }
}

// WithOutput redirects console output away from stderr.
func WithOutput(w io.Writer) Option {
	return func(l *Logger) { l.out = w }
}

// WithColor toggles ANSI coloring of the level field.
func WithColor(enabled bool) Option {
	return func(l *Logger) { l.colored = enabled }
}

// WithCaller toggles the trailing (file.go:line) annotation.
func WithCaller(enabled bool) Option {
	return func(l *Logger) { l.showCaller = enabled }
}

// WithFile duplicates records to <dir>/<name>.log, overriding the
// VULCAN_LOG_PATH and VULCAN_LOG_NAME environment variables.
func WithFile(dir, name string) Option {
	return func(l *Logger) {
		l.fileDir = dir
		l.fileName = name
	}
}

// New creates a Logger named name. The level defaults to the
// VULCAN_LOG_LEVEL environment variable, or INFO when unset. When
// VULCAN_LOG_PATH is set, records are also appended to
// <path>/<VULCAN_LOG_NAME>.log; the directory is created if missing.
func New(name string, opts ...Option) (*Logger, error) {
	if name == "" {
		name = defaultName
	}
	l := &Logger{
		name:       name,
		level:      levelFromEnv(),
		out:        os.Stderr,
		colored:    true,
		showCaller: true,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.fileDir == "" {
		l.fileDir = os.Getenv(EnvPath)
		l.fileName = os.Getenv(EnvName)
	}
	if l.fileDir != "" {
		if l.fileName == "" {
			l.fileName = defaultName
		}
		if err := l.openFile(l.fileDir, l.fileName); err != nil {
			return nil, err
		}
	}
	return l, nil
}

func levelFromEnv() Level {
	if s := os.Getenv(EnvLevel); s != "" {
		if level, err := ParseLevel(s); err == nil {
			return level
		}
	}
	return InfoLevel
}

func (l *Logger) openFile(dir, name string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}
	path := filepath.Join(dir, name+".log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	l.file = f
	return nil
}

// SetLevel changes the minimum emitted level.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	l.level = level
	l.mu.Unlock()
}

// Level reports the current minimum level.
func (l *Logger) Level() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// Name reports the logger's name.
func (l *Logger) Name() string { return l.name }

// Close releases the log file, if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// Debug logs at DEBUG level. Arguments are formatted per fmt.Sprintf
// when the message contains verbs, otherwise appended.
func (l *Logger) Debug(msg string, args ...any) { l.log(DebugLevel, msg, args...) }

// Info logs at INFO level.
func (l *Logger) Info(msg string, args ...any) { l.log(InfoLevel, msg, args...) }

// Warning logs at WARNING level.
func (l *Logger) Warning(msg string, args ...any) { l.log(WarningLevel, msg, args...) }

// Error logs at ERROR level.
func (l *Logger) Error(msg string, args ...any) { l.log(ErrorLevel, msg, args...) }

// Critical logs at CRITICAL level.
func (l *Logger) Critical(msg string, args ...any) { l.log(CriticalLevel, msg, args...) }

func (l *Logger) log(level Level, msg string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level < l.level {
		return
	}
	if len(args) > 0 {
		if strings.Contains(msg, "%") {
			msg = fmt.Sprintf(msg, args...)
		} else {
			msg = msg + " " + fmt.Sprint(args...)
		}
	}

	ts := time.Now().Format("2006-01-02 15:04:05")
	caller := ""
	if l.showCaller {
		caller = " - (" + findCaller() + ")"
	}

	plain := fmt.Sprintf("%s - %s - %s - %s%s\n", ts, l.name, level.String(), msg, caller)
	line := plain
	if l.colored {
		line = fmt.Sprintf("%s - %s - %s - %s%s\n", ts, l.name, level.Colorize(level.String()), msg, caller)
	}
	fmt.Fprint(l.out, line)
	if l.file != nil {
		fmt.Fprint(l.file, plain)
	}
}

// findCaller walks up the stack past this package and the decorator
// wrappers so records point at the code that asked for the log.
func findCaller() string {
	for i := 2; i < 16; i++ {
		_, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}
		if strings.Contains(file, "internal/logging") && !strings.HasSuffix(file, "_test.go") {
			continue
		}
		if strings.HasSuffix(file, "pkg/vulcan/log.go") || strings.HasSuffix(file, "pkg/vulcan/wrap.go") {
			continue
		}
		return fmt.Sprintf("%s:%d", filepath.Base(file), line)
	}
	return "unknown:0"
}
