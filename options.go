package arena

import "log/slog"

type options struct {
	logger         *slog.Logger
	legacyFastPath bool
}

// Option configures an Arena.
type Option func(*options)

// WithLogger sets the logger used for debug records about failed
// allocations and resets. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithLegacyAlignedFastPath makes AllocAligned return the cursor after the
// advance, instead of the start of the allocation, when the cursor is
// already aligned. The returned address then points one past the reserved
// bytes and is generally not aligned. Only use it to match callers that
// depend on that behavior.
func WithLegacyAlignedFastPath() Option {
	return func(o *options) {
		o.legacyFastPath = true
	}
}

func applyOptions(opts []Option) options {
	o := options{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
