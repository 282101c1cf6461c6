package family

import (
	"runtime"

	"github.com/hupe1980/bitset"
)

type options struct {
	logger  *bitset.Logger
	workers int
}

// Option configures a Family.
type Option func(*options)

// WithLogger sets the logger for batch operations.
//
// If nil is passed, logging is disabled.
func WithLogger(l *bitset.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = bitset.NoopLogger()
		}
		o.logger = l
	}
}

// WithConcurrency bounds the number of goroutines used by batch operations.
//
// If n <= 0, runtime.GOMAXPROCS(0) is used.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		o.workers = n
	}
}

func applyOptions(opts []Option) options {
	o := options{
		logger:  bitset.NoopLogger(),
		workers: runtime.GOMAXPROCS(0),
	}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
