package engine

import (
	"runtime"

	"go.uber.org/zap"
)

// defaultChannelCapacity bounds every channel of the parallel pipeline. A
// slow callback therefore throttles the dispatcher instead of growing an
// unbounded queue.
const defaultChannelCapacity = 256

type options struct {
	workers  int
	capacity int
	log      *zap.Logger
}

// Option configures ProcessParallel.
type Option func(*options)

// WithWorkers sets the number of worker goroutines. A value below 1 is
// coerced to 1 with a warning. The default is one worker per CPU, minus one
// for the dispatcher.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithChannelCapacity sets the capacity of the pipeline channels.
func WithChannelCapacity(n int) Option {
	return func(o *options) { o.capacity = n }
}

// WithLogger sets the logger used for engine diagnostics.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) { o.log = log }
}

func buildOptions(opts []Option) options {
	o := options{
		workers:  defaultWorkers(),
		capacity: defaultChannelCapacity,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers < 1 {
		o.log.Warn("worker count below 1, coercing to 1", zap.Int("requested", o.workers))
		o.workers = 1
	}
	if o.capacity < 1 {
		o.capacity = defaultChannelCapacity
	}
	return o
}

func defaultWorkers() int {
	if n := runtime.NumCPU() - 1; n > 1 {
		return n
	}
	return 1
}
