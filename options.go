package env

// Options holds settings for Load and the convenience loaders built on it.
type Options struct {
	Fallback        *Environment
	NoInterpolation bool
}

// Option defines a function type for applying load options.
type Option func(*Options)

// WithFallback sets the fallback mapping consulted when a referenced name is
// absent from the loaded values. When not set, Load snapshots the process
// environment.
func WithFallback(fallback Environment) Option {
	return func(opts *Options) {
		opts.Fallback = &fallback
	}
}

// WithoutInterpolation disables reference resolution: values are exposed
// exactly as decoded.
func WithoutInterpolation() Option {
	return func(opts *Options) {
		opts.NoInterpolation = true
	}
}
