package fsmx

import "log/slog"

// Option applies configuration to Machine via functional options pattern.
type Option func(*Machine)

// WithLogger sets the logger used for transition tracing. Records are
// emitted at debug level. The default logger discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Machine) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithValidation makes New run Config.Validate and fail on an inconsistent
// table instead of deferring the failure to the first bad transition.
func WithValidation() Option {
	return func(m *Machine) {
		m.validate = true
	}
}
