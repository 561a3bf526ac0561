// Package output provides terminal output utilities: a process-wide
// structured logger on stderr and the styles used for result lines.
package output

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Logger is the global logger instance.
var Logger *log.Logger

func init() {
	Logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})
}

// ParseLevel maps a notify level name to a log level. Unknown names fall
// back to info.
func ParseLevel(name string) log.Level {
	if strings.EqualFold(name, "warning") {
		return log.WarnLevel
	}
	lvl, err := log.ParseLevel(name)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// SetupLogging configures the logger from the configured notify level.
// verbose forces debug output with timestamps.
func SetupLogging(w io.Writer, level string, verbose bool) {
	lvl := ParseLevel(level)
	if verbose {
		lvl = log.DebugLevel
	}

	Logger = log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: verbose,
	})
}

// Debug logs a debug message.
func Debug(msg string, keyvals ...interface{}) {
	Logger.Debug(msg, keyvals...)
}

// Info logs an info message.
func Info(msg string, keyvals ...interface{}) {
	Logger.Info(msg, keyvals...)
}

// Warn logs a warning message.
func Warn(msg string, keyvals ...interface{}) {
	Logger.Warn(msg, keyvals...)
}

// Error logs an error message.
func Error(msg string, keyvals ...interface{}) {
	Logger.Error(msg, keyvals...)
}
