// Package vcov turns a fitted parameter vector and a per-observation
// log-likelihood function into a parameter covariance matrix, standard
// errors and a confidence-interval table, under one of three
// variance-estimation regimes.
//
// Estimators (J = n×p score Jacobian, H = Hessian of the summed
// log-likelihood, M = design-adjusted meat from package survey):
//
//	InformationMatrix ("hessian"/"oim"):   V = (−H)⁻¹
//	OuterProduct      ("jacobian"/"opg"):  V = (JᵀJ)⁻¹        (default)
//	Sandwich          ("sandwich"):        V = (−H)⁻¹·M·(−H)⁻¹
//
// Dispatch legality: with an empty survey design all three estimators are
// permitted; any clustering, stratification, weighting or fpc column
// restricts the choice to Sandwich — the other two assume independent
// observations, which a design contradicts (ErrIncompatibleDesign). With an
// empty design, Sandwich degenerates to the classical robust formula with
// every observation as its own cluster.
//
// Bread convention: the sandwich bread is the negative-Hessian inverse,
// matching the information-matrix estimator. An OPG-bread variant exists in
// the literature and differs from this one by small numerical amounts
// (~1e-5 on typical logit fits); it is deliberately not implemented rather
// than silently reconciled.
//
// The inference table reports, per parameter: estimate, standard error,
// the symmetric two-sided confidence interval value ± z·se (z from the
// standard-normal quantile at the configured level, ≈1.959964 at 95%),
// plus z-score and two-sided p-value.
//
// Errors (sentinel):
//
//	ErrSingularMatrix     - a required inverse does not exist (Cholesky
//	                        factorization failed).
//	ErrNegativeVariance   - a negative covariance-diagonal entry; surfaced,
//	                        never turned into a NaN standard error.
//	ErrIncompatibleDesign - information-matrix or OPG requested with a
//	                        non-empty survey design.
//	ErrUnknownEstimator   - unrecognized estimator tag.
//	ErrDimensionMismatch  - params/standard-errors/covariance shapes
//	                        disagree.
//	ErrBadConfidenceLevel - confidence level outside (0, 1).
package vcov
