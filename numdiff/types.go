// Package numdiff types and configuration options for the
// finite-difference engine.
package numdiff

import "errors"

// Sentinel errors returned by the differentiation engine.
var (
	// ErrNilFunc indicates that a nil LogLikelihoodFunc was provided.
	ErrNilFunc = errors.New("numdiff: log-likelihood function is nil")

	// ErrBadStep indicates an invalid step configuration
	// (RelStep outside (0, 1) or MinBase ≤ 0).
	ErrBadStep = errors.New("numdiff: invalid finite-difference step")

	// ErrNoObservations indicates that the log-likelihood function returned
	// an empty contribution slice.
	ErrNoObservations = errors.New("numdiff: no observations")

	// ErrNonFinite indicates a NaN or ±Inf contribution at an evaluation
	// point. The wrapping message names the parameter and direction.
	ErrNonFinite = errors.New("numdiff: non-finite log-likelihood contribution")

	// ErrLengthMismatch indicates that the contribution count changed
	// between evaluations, or that Weights disagrees with it.
	ErrLengthMismatch = errors.New("numdiff: contribution length mismatch")
)

// Scheme selects the finite-difference formula for the Jacobian.
//
//   - Central — evaluate at θ±h·eₖ; truncation error O(h²).
//     Costs two evaluations per parameter.
//   - Forward — evaluate at θ+h·eₖ against the base point; truncation
//     error O(h). One evaluation per parameter, half the cost of Central.
type Scheme int

const (
	// Central differencing: O(h²) accuracy, 2p+1 evaluations.
	Central Scheme = iota

	// Forward differencing: O(h) accuracy, p+1 evaluations.
	Forward
)

// Options configures the finite-difference engine.
//
// RelStep – relative perturbation step; hₖ = RelStep·max(|θₖ|, MinBase).
//
//	Must lie in (0, 1). Default 1e-5.
//
// MinBase – magnitude floor in the step formula, guarding parameters at or
//
//	near zero. Must be > 0. Default 1.
//
// Scheme  – Central (default) or Forward differencing for the Jacobian.
// Workers – number of concurrent evaluation goroutines; values below 2
//
//	mean sequential execution. Output does not depend on Workers.
//
// Weights – optional per-observation weights applied when summing
//
//	contributions for the Hessian; nil means unit weights.
type Options struct {
	RelStep float64
	MinBase float64
	Scheme  Scheme
	Workers int
	Weights []float64
}

// Option is a functional option for configuring the engine.
type Option func(*Options)

// WithRelStep sets the relative perturbation step.
func WithRelStep(step float64) Option {
	return func(o *Options) { o.RelStep = step }
}

// WithMinBase sets the magnitude floor used in step sizing.
func WithMinBase(base float64) Option {
	return func(o *Options) { o.MinBase = base }
}

// WithScheme selects the Jacobian differencing scheme.
func WithScheme(s Scheme) Option {
	return func(o *Options) { o.Scheme = s }
}

// WithWorkers sets the number of concurrent evaluation goroutines.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithWeights sets per-observation weights for the summed Hessian.
// The slice is used as-is; callers must not mutate it during the call.
func WithWeights(w []float64) Option {
	return func(o *Options) { o.Weights = w }
}

// DefaultOptions returns the documented engine defaults:
// RelStep 1e-5, MinBase 1, Central scheme, sequential execution, no weights.
func DefaultOptions() Options {
	return Options{
		RelStep: 1e-5,
		MinBase: 1,
		Scheme:  Central,
		Workers: 1,
	}
}

// resolve folds functional options over the defaults and validates them.
func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.RelStep <= 0 || o.RelStep >= 1 || o.MinBase <= 0 {
		return Options{}, ErrBadStep
	}
	if o.Workers < 1 {
		o.Workers = 1
	}
	return o, nil
}
