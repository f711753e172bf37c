// Package vcov types: the estimator taxonomy and configuration options.
package vcov

import (
	"errors"
	"strings"
)

// Sentinel errors for estimation and dispatch.
var (
	// ErrSingularMatrix indicates that a required matrix inverse does not
	// exist within tolerance (Cholesky factorization failed).
	ErrSingularMatrix = errors.New("vcov: singular matrix")

	// ErrNegativeVariance indicates a negative diagonal entry in the
	// estimated covariance matrix.
	ErrNegativeVariance = errors.New("vcov: negative variance estimate")

	// ErrIncompatibleDesign indicates an estimator that assumes independent
	// observations was requested together with a non-empty survey design.
	ErrIncompatibleDesign = errors.New("vcov: estimator incompatible with survey design")

	// ErrUnknownEstimator indicates an unrecognized estimator tag.
	ErrUnknownEstimator = errors.New("vcov: unknown estimator")

	// ErrDimensionMismatch indicates disagreeing shapes between the
	// parameter vector, standard errors, or covariance matrix.
	ErrDimensionMismatch = errors.New("vcov: dimension mismatch")

	// ErrBadConfidenceLevel indicates a confidence level outside (0, 1).
	ErrBadConfidenceLevel = errors.New("vcov: confidence level must lie in (0, 1)")
)

// EstimatorType is the closed enumeration of variance estimators.
type EstimatorType int

const (
	// OuterProduct estimates V = (JᵀJ)⁻¹ from the score Jacobian.
	// The default when nothing is requested.
	OuterProduct EstimatorType = iota

	// InformationMatrix estimates V = (−H)⁻¹ from the observed Hessian.
	InformationMatrix

	// Sandwich estimates V = (−H)⁻¹·M·(−H)⁻¹ with the design-adjusted
	// meat M; the only estimator legal under a non-empty survey design.
	Sandwich
)

// String implements fmt.Stringer with the canonical external tag.
func (e EstimatorType) String() string {
	switch e {
	case OuterProduct:
		return "opg"
	case InformationMatrix:
		return "oim"
	case Sandwich:
		return "sandwich"
	default:
		return "unknown"
	}
}

// ParseEstimator maps an external covariance-type tag onto the closed
// enumeration. Accepted (case-insensitive): "hessian" or "oim" for the
// information matrix, "jacobian" or "opg" for the outer product, and
// "sandwich". Anything else returns ErrUnknownEstimator.
func ParseEstimator(tag string) (EstimatorType, error) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "hessian", "oim":
		return InformationMatrix, nil
	case "jacobian", "opg":
		return OuterProduct, nil
	case "sandwich":
		return Sandwich, nil
	default:
		return 0, ErrUnknownEstimator
	}
}

// Options configures a single Estimate call.
//
// Estimator       – which variance estimator to run; default OuterProduct.
// Tag             – optional external tag ("hessian", "opg", "sandwich", …)
//
//	taking precedence over Estimator; parsed during Estimate
//	so that a bad tag surfaces as ErrUnknownEstimator.
//
// ConfidenceLevel – two-sided confidence level in (0, 1); default 0.95.
// RelStep         – finite-difference relative step forwarded to numdiff;
//
//	0 means the numdiff default.
//
// Workers         – concurrent evaluation goroutines forwarded to numdiff.
type Options struct {
	Estimator       EstimatorType
	Tag             string
	ConfidenceLevel float64
	RelStep         float64
	Workers         int
}

// Option is a functional option for Estimate.
type Option func(*Options)

// WithEstimator selects the estimator from the closed enumeration.
func WithEstimator(e EstimatorType) Option {
	return func(o *Options) { o.Estimator = e }
}

// WithEstimatorTag selects the estimator by external tag; an unknown tag
// is reported by Estimate as ErrUnknownEstimator.
func WithEstimatorTag(tag string) Option {
	return func(o *Options) { o.Tag = tag }
}

// WithConfidenceLevel sets the two-sided confidence level for the table.
func WithConfidenceLevel(level float64) Option {
	return func(o *Options) { o.ConfidenceLevel = level }
}

// WithRelStep forwards a finite-difference relative step to numdiff.
func WithRelStep(step float64) Option {
	return func(o *Options) { o.RelStep = step }
}

// WithWorkers forwards a concurrency level to numdiff.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// DefaultOptions returns the documented defaults: OuterProduct estimator,
// 95% confidence, numdiff step defaults, sequential execution.
func DefaultOptions() Options {
	return Options{
		Estimator:       OuterProduct,
		ConfidenceLevel: 0.95,
	}
}
