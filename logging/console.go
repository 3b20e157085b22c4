package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Console implements Logger on top of charmbracelet/log.
type Console struct {
	logger *log.Logger
}

// ConsoleParams configures a Console.
type ConsoleParams struct {
	// Level is one of debug, info, warn, error. Empty means info.
	Level string
	// Debug forces the debug level regardless of Level.
	Debug bool
	// Writer defaults to os.Stderr.
	Writer io.Writer
	// Prefix is printed before every message.
	Prefix string
	// Timestamp enables timestamps on every line.
	Timestamp bool
}

// NewConsole creates a console logger. An unparsable Level falls back to info.
func NewConsole(params ConsoleParams) *Console {
	level := log.InfoLevel
	if params.Level != "" {
		if parsed, err := log.ParseLevel(params.Level); err == nil {
			level = parsed
		}
	}
	if params.Debug {
		level = log.DebugLevel
	}
	w := params.Writer
	if w == nil {
		w = os.Stderr
	}

	return &Console{
		logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: params.Timestamp,
			Level:           level,
			Prefix:          params.Prefix,
		}),
	}
}

// Debug logs at debug level.
func (c *Console) Debug(message string, keyvals ...any) { c.logger.Debug(message, keyvals...) }

// Info logs at info level.
func (c *Console) Info(message string, keyvals ...any) { c.logger.Info(message, keyvals...) }

// Warn logs at warn level.
func (c *Console) Warn(message string, keyvals ...any) { c.logger.Warn(message, keyvals...) }

// Error logs at error level.
func (c *Console) Error(message string, keyvals ...any) { c.logger.Error(message, keyvals...) }

// With returns a Console that prepends keyvals to every entry.
func (c *Console) With(keyvals ...any) *Console {
	return &Console{logger: c.logger.With(keyvals...)}
}
