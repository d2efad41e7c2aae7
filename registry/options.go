/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import "go.uber.org/zap"

// Options configures a DefaultProjectRegistry
type Options struct {
	Logger *zap.Logger // Receives add/remove events (default: no-op)
}

// Option is a functional option for configuring a registry
type Option func(*Options)

// DefaultOptions returns default registry options
func DefaultOptions() Options {
	return Options{
		Logger: zap.NewNop(),
	}
}

// WithLogger sets the logger used for registry events. A nil logger is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(opts *Options) {
		if logger != nil {
			opts.Logger = logger
		}
	}
}
