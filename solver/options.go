// SPDX-License-Identifier: MIT

package solver

import (
	"io"
	"log/slog"
)

const (
	panicNilLogger   = "solver: WithLogger: logger must be non-nil"
	panicNilObserver = "solver: WithObserver: observer must be non-nil"
)

// Option configures a Base at construction time.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*options)

type options struct {
	logger    *slog.Logger
	observers []Observer
}

func defaultOptions() options {
	return options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// WithLogger routes lifecycle logs to l. Everything is logged at debug level.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *options) { o.logger = l }
}

// WithObserver appends obs to the observers notified after every solve call.
func WithObserver(obs Observer) Option {
	if obs == nil {
		panic(panicNilObserver)
	}

	return func(o *options) { o.observers = append(o.observers, obs) }
}
