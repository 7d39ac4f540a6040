// Package logging configures the process-wide diagnostic logger. Diagnostics go
// to stderr so stdout stays reserved for the external command's output.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pkglist-dev/pkglist/internal/branding"
)

var logger = New(os.Stderr, log.InfoLevel)

// New returns a logger writing to w at the given level.
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix: branding.CLIName(),
		Level:  level,
	})
}

// ParseLevel converts a level name ("debug", "info", "warn", "error") to a Level.
func ParseLevel(name string) (log.Level, error) {
	level, err := log.ParseLevel(name)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", name)
	}
	return level, nil
}

// Setup replaces the default logger. verbose forces debug level regardless of name.
func Setup(w io.Writer, name string, verbose bool) error {
	level := log.DebugLevel
	if !verbose {
		var err error
		level, err = ParseLevel(name)
		if err != nil {
			return err
		}
	}
	logger = New(w, level)
	return nil
}

// Default returns the process-wide logger.
func Default() *log.Logger {
	return logger
}

// SetDefault replaces the process-wide logger and returns the previous one.
func SetDefault(l *log.Logger) *log.Logger {
	prev := logger
	logger = l
	return prev
}
