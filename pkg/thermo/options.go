package thermo

import "github.com/bft-labs/thermo/pkg/log"

// Option configures optional behavior of a Converter.
type Option func(*options)

type options struct {
	logger log.Logger
}

func defaultOptions() options {
	return options{
		logger: log.NewNoopLogger(),
	}
}

// WithLogger sets the logger used for conversion and rejection events.
// If not provided, a no-op logger is used.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
