package bench

import (
	"log/slog"
	"time"
)

// Option customizes a Runner.
type Option func(*Runner)

// WithProgress registers an observer for finished cells. Panics on nil.
func WithProgress(p Progress) Option {
	if p == nil {
		panic("bench: WithProgress(nil)")
	}

	return func(r *Runner) { r.progress = p }
}

// WithClock replaces time.Now, mainly for tests. Panics on nil.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("bench: WithClock(nil)")
	}

	return func(r *Runner) { r.now = now }
}

// WithLogger sets the logger for run lifecycle messages. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("bench: WithLogger(nil)")
	}

	return func(r *Runner) { r.log = l }
}
