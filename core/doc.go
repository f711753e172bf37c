// Package core defines the foundational types shared by every pmle
// subpackage: the ordered ParameterVector and the per-observation
// log-likelihood function contract.
//
// A ParameterVector is an ordered mapping from parameter name to value.
// The order is load-bearing: it fixes the row/column indexing of every
// Jacobian, Hessian and covariance matrix produced downstream, and the row
// order of the final inference table.
//
// A LogLikelihoodFunc is the single capability the engine requires from a
// model: evaluate one real log-likelihood contribution per observation at a
// given parameter vector. Response data, covariates and any estimation-time
// weighting are the caller's business — close over them. The function must
// be reentrant: the differentiation engine may evaluate it concurrently at
// several perturbed points. This is a documented precondition, not an
// enforced guarantee.
//
// Errors:
//
//	ErrEmptyParams    - parameter vector has no entries.
//	ErrLengthMismatch - names and values slices differ in length.
//	ErrDuplicateName  - the same parameter name appears twice.
//	ErrIndexOutOfRange - indexed access past the last parameter.
package core
