package szdb

import "log/slog"

// Option configures an Archive.
type Option func(*Archive)

// WithLogger sets the logger for session events and the explode pass.
// If not set, logging is disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Archive) {
		a.logger = logger
	}
}

// WithMethodTable sets the table used to name coder methods.
// If not set, DefaultMethods is used. A nil table is ignored.
func WithMethodTable(t MethodTable) Option {
	return func(a *Archive) {
		if t != nil {
			a.methods = t
		}
	}
}

// WithThreads sets the number of workers used by ExplodeResult.Encode.
// Values <= 1 force serial processing. The default is one per CPU.
func WithThreads(n int) Option {
	return func(a *Archive) {
		a.threads = n
	}
}
