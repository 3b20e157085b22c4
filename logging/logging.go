// Package logging defines the logging sink injected into the loader, engine
// and runner, plus the console backend used by the CLI.
//
// There is no process-wide logger: every component receives a Logger value.
package logging

// Logger is a structured, leveled logging sink.
// keyvals are alternating key/value pairs.
type Logger interface {
	Debug(message string, keyvals ...any)
	Info(message string, keyvals ...any)
	Warn(message string, keyvals ...any)
	Error(message string, keyvals ...any)
}

// Multi dispatches every call to each of the given backends in order.
type Multi []Logger

func (m Multi) Debug(message string, keyvals ...any) {
	for _, l := range m {
		l.Debug(message, keyvals...)
	}
}

func (m Multi) Info(message string, keyvals ...any) {
	for _, l := range m {
		l.Info(message, keyvals...)
	}
}

func (m Multi) Warn(message string, keyvals ...any) {
	for _, l := range m {
		l.Warn(message, keyvals...)
	}
}

func (m Multi) Error(message string, keyvals ...any) {
	for _, l := range m {
		l.Error(message, keyvals...)
	}
}

type nop struct{}

func (nop) Debug(string, ...any) {}
func (nop) Info(string, ...any)  {}
func (nop) Warn(string, ...any)  {}
func (nop) Error(string, ...any) {}

// Nop returns a Logger that discards everything.
func Nop() Logger { return nop{} }

// OrNop returns l, or Nop when l is nil.
func OrNop(l Logger) Logger {
	if l == nil {
		return nop{}
	}
	return l
}
