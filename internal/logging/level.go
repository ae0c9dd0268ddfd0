package logging

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Level represents the severity of a log record.
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarningLevel
	ErrorLevel
	CriticalLevel
)

// String returns the string representation of the level.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarningLevel:
		return "WARNING"
	case ErrorLevel:
		return "ERROR"
	case CriticalLevel:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses a string into a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DebugLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "WARNING", "WARN":
		return WarningLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	case "CRITICAL", "FATAL":
		return CriticalLevel, nil
	default:
		return InfoLevel, fmt.Errorf("invalid log level: %s", s)
	}
}

var levelColors = map[Level]*color.Color{
	DebugLevel:    color.New(color.FgCyan),
	InfoLevel:     color.New(color.FgGreen),
	WarningLevel:  color.New(color.FgYellow),
	ErrorLevel:    color.New(color.FgRed),
	CriticalLevel: color.New(color.FgRed, color.Bold),
}

// Colorize wraps s in the ANSI color assigned to the level.
func (l Level) Colorize(s string) string {
	c, ok := levelColors[l]
	if !ok {
		return s
	}
	return c.Sprint(s)
}
