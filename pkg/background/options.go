package background

import "github.com/rs/zerolog"

// Option configures an Executor before its workers start.
type Option func(*Executor)

// WithWorkers sets the worker pool size. Values <= 0 fall back to
// DefaultWorkers. The size is fixed for the lifetime of the executor.
func WithWorkers(n int) Option {
	return func(e *Executor) {
		e.workers = n
	}
}

// WithQueueCapacity bounds the pending-task queue. When the bound is reached,
// submissions are rejected (false) rather than blocking the caller. Zero means
// unbounded by default, so submission never blocks.
func WithQueueCapacity(n int) Option {
	return func(e *Executor) {
		if n > 0 {
			e.capacity = n
		}
	}
}

// WithLogger replaces the executor's logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Executor) {
		e.logger = logger
	}
}

// WithCompletionHook registers a callback invoked after every job finishes,
// with the job's identifier (nil for unkeyed jobs) and its error, if any.
// Submission stays fire-and-forget; the hook is the only way to observe
// failures programmatically.
func WithCompletionHook(hook func(id any, err error)) Option {
	return func(e *Executor) {
		e.onDone = hook
	}
}
