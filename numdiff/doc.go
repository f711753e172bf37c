// Package numdiff computes finite-difference derivatives of a
// per-observation log-likelihood function with respect to a parameter
// vector: the n×p Jacobian of individual contributions (score matrix) and
// the p×p Hessian of their (optionally weighted) sum.
//
// Algorithm Outline:
//
//	Jacobian, central scheme (default), column k:
//	    J[i][k] = (ℓᵢ(θ + h·eₖ) − ℓᵢ(θ − h·eₖ)) / (2h)
//	Jacobian, forward scheme:
//	    J[i][k] = (ℓᵢ(θ + h·eₖ) − ℓᵢ(θ)) / h
//	Hessian of the summed log-likelihood ℓ(θ) = Σᵢ wᵢ·ℓᵢ(θ):
//	    diagonal:     H[j][j] = (ℓ(θ+hⱼeⱼ) − 2ℓ(θ) + ℓ(θ−hⱼeⱼ)) / hⱼ²
//	    off-diagonal: H[j][k] = (ℓ(++) − ℓ(+−) − ℓ(−+) + ℓ(−−)) / (4·hⱼ·hₖ)
//	                  where (±±) shifts θ by ±hⱼeⱼ and ±hₖeₖ.
//
// The step for parameter k scales with its magnitude to bound truncation
// and cancellation error:
//
//	hₖ = RelStep · max(|θₖ|, MinBase)
//
// with documented defaults RelStep = 1e-5 and MinBase = 1. Both are
// explicit Options fields, not buried constants, so the engine stays
// testable and tunable.
//
// Column k of the Jacobian always corresponds to parameter k of the input
// vector. With Workers > 1, perturbed evaluations run concurrently, but
// results are assembled by index, so output is bit-identical for any
// worker count (the log-likelihood function must be reentrant).
//
// Complexity (function evaluations):
//
//	Jacobian: 2p + 1 (central) or p + 1 (forward)
//	Hessian:  2p² + 1
//
// Errors (sentinel):
//
//	ErrNilFunc        - nil log-likelihood function.
//	ErrBadStep        - RelStep outside (0, 1) or MinBase ≤ 0.
//	ErrNoObservations - the function returned zero contributions.
//	ErrNonFinite      - NaN or ±Inf contribution at an evaluation point;
//	                    the error message names the parameter and the
//	                    perturbation direction. Never substituted by zero.
//	ErrLengthMismatch - contribution count changed between evaluations,
//	                    or Weights length differs from it.
package numdiff
