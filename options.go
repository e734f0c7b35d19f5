package extfile

import (
	"github.com/go-logr/logr"
	"github.com/jmgilman/go/extfile/digest"
)

const defaultBufferSize = 32 * 1024

// Option configures a Comparator or TreeDeleter.
type Option func(*options)

type options struct {
	logger     logr.Logger
	algorithm  digest.Algorithm
	bufferSize int
}

func newOptions(opts []Option) options {
	o := options{
		logger:     logr.Discard(),
		algorithm:  digest.Default,
		bufferSize: defaultBufferSize,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger sets the logger. Per-entry events are logged at V(1), failures
// with Error. The default discards everything.
func WithLogger(logger logr.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithAlgorithm sets the algorithm Comparator.EqualsByHash uses.
// The default is digest.SHA256.
func WithAlgorithm(alg digest.Algorithm) Option {
	return func(o *options) {
		o.algorithm = alg
	}
}

// WithBufferSize sets the per-file read buffer of Comparator.EqualsExact.
// Values below 1 are ignored.
func WithBufferSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.bufferSize = n
		}
	}
}
