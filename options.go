package bitset

type options struct {
	alloc  Allocator
	logger *Logger
}

// Option configures bitset construction.
type Option func(*options)

// WithAllocator sets the allocator that provides and releases data words.
//
// If nil is passed, DefaultAllocator is used.
func WithAllocator(a Allocator) Option {
	return func(o *options) {
		if a == nil {
			a = DefaultAllocator
		}
		o.alloc = a
	}
}

// WithLogger sets the logger used to report allocation failures.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = noopLogger
		}
		o.logger = l
	}
}

func applyOptions(opts []Option) options {
	o := options{
		alloc:  DefaultAllocator,
		logger: noopLogger,
	}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
