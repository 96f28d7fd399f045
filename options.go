package mitsvalidator

import "runtime"

// Option configures the Validator.
type Option func(*Options)

// Options holds all configuration for the Validator.
type Options struct {
	// CheckReferenceTargets turns dangling percentage-of and conditional
	// scope codes into errors. Off by default: upstream enforcement of the
	// existence rule was deliberately relaxed, and cycle detection treats
	// missing targets as terminal nodes.
	CheckReferenceTargets bool

	// MaxErrors stops validation once this many errors have been
	// recorded (0 = unlimited). The structural short-circuit applies
	// regardless of this setting.
	MaxErrors int

	// MaxDepth bounds the element nesting depth accepted by the parser.
	MaxDepth int

	// WorkerCount is the goroutine count used by ValidateBatch.
	WorkerCount int

	// CollectMetrics enables run and per-phase counters.
	CollectMetrics bool

	// EnablePooling reuses Result and context allocations across runs.
	EnablePooling bool

	// CacheSize caps the engine's memoized-result cache. Feed exports
	// repeat identical documents; a hit skips parsing and all phases.
	// Zero disables caching.
	CacheSize int
}

// DefaultOptions returns the default configuration.
func DefaultOptions() *Options {
	return &Options{
		CheckReferenceTargets: false,
		MaxErrors:             0,
		MaxDepth:              64,
		WorkerCount:           runtime.NumCPU(),
		CollectMetrics:        true,
		EnablePooling:         true,
		CacheSize:             0,
	}
}

// WithReferenceTargets enables the optional referenced-code-exists check.
func WithReferenceTargets(enable bool) Option {
	return func(o *Options) {
		o.CheckReferenceTargets = enable
	}
}

// WithMaxErrors stops validation after n errors (0 = unlimited).
func WithMaxErrors(n int) Option {
	return func(o *Options) {
		o.MaxErrors = n
	}
}

// WithMaxDepth bounds the accepted element nesting depth.
func WithMaxDepth(depth int) Option {
	return func(o *Options) {
		if depth > 0 {
			o.MaxDepth = depth
		}
	}
}

// WithWorkerCount sets the batch validation worker count.
func WithWorkerCount(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.WorkerCount = n
		}
	}
}

// WithMetrics enables or disables metric collection.
func WithMetrics(enable bool) Option {
	return func(o *Options) {
		o.CollectMetrics = enable
	}
}

// WithPooling enables or disables object pooling.
func WithPooling(enable bool) Option {
	return func(o *Options) {
		o.EnablePooling = enable
	}
}

// WithCacheSize enables result memoization for up to n documents.
func WithCacheSize(n int) Option {
	return func(o *Options) {
		if n >= 0 {
			o.CacheSize = n
		}
	}
}
