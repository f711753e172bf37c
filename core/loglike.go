package core

// LogLikelihoodFunc evaluates one log-likelihood contribution per
// observation at the given parameter vector. The returned slice length is
// the number of observations and must be the same for every parameter
// vector the function is called with during a single inference pass.
//
// The function owns its data: response, covariates and any likelihood-side
// weighting are captured in the closure. It must not retain or mutate the
// ParameterVector it receives, and it must be reentrant — the
// differentiation engine may call it concurrently at different perturbation
// points.
//
// A non-nil error aborts the surrounding computation immediately; returning
// NaN or ±Inf in any contribution is reported by the caller as a non-finite
// evaluation, never silently replaced.
type LogLikelihoodFunc func(params ParameterVector) ([]float64, error)
