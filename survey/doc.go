// Package survey carries complex-survey design metadata — primary sampling
// units (PSU/clusters), strata, sampling weights and finite-population
// correction (FPC) — and reduces per-observation score vectors into the
// design-adjusted "meat" matrix of the sandwich variance estimator.
//
// Aggregation Outline:
//
//  1. If weights are present, scale each observation's score row by its
//     weight (weights alter variance contributions, never point estimates —
//     those arrive pre-fitted).
//  2. Partition observations by PSU and sum score rows into one score
//     vector u_g per cluster. Without a PSU column every observation is its
//     own cluster.
//  3. Without strata, the meat is the conventional one-stage cluster-robust
//     form with the small-sample factor g/(g−1) over g clusters:
//     M = (g/(g−1)) · Σ_g fpc_g · u_g·u_gᵀ        (raw, non-demeaned sums)
//  4. With strata, clusters are partitioned by stratum and centered on the
//     stratum mean ū_h before the outer products:
//     M = Σ_h fpc_h · (n_h/(n_h−1)) · Σ_{g∈h} (u_g−ū_h)(u_g−ū_h)ᵀ
//  5. Singleton stratum (n_h = 1): the within-stratum variance is
//     undefined, so the stratum mean is replaced by the grand mean across
//     all clusters with factor 1 — the documented grand-mean fallback, an
//     explicit branch rather than a zero-denominator. This is the single
//     sanctioned silent fallback in the library.
//
// FPC values must be constant within a stratum (within a cluster when no
// strata are given) and lie in (0, 1]; 1 means sampling with replacement,
// i.e. no correction.
//
// Errors (sentinel):
//
//	ErrNilScores      - nil score matrix.
//	ErrLengthMismatch - a design column length differs from the
//	                    observation count.
//	ErrBadWeight      - a negative or non-finite weight.
//	ErrBadFPC         - an FPC value outside (0, 1] or non-finite.
//	ErrInconstantFPC  - FPC varies within one stratum/cluster.
//	ErrCrossedStrata  - one cluster spans two strata.
package survey
