package vcov

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/statkit/pmle/core"
	"github.com/statkit/pmle/numdiff"
	"github.com/statkit/pmle/survey"
)

// Result is the outcome of one Estimate call. Cov shares no storage with
// engine internals; the caller owns it. Row/column order of Cov, the order
// of StdErr and the order of Table.Rows all equal the input parameter
// order.
type Result struct {
	Estimator EstimatorType
	Level     float64
	Cov       *mat.SymDense
	StdErr    []float64
	Table     *Table
}

// Estimate computes the parameter covariance matrix, standard errors and
// the inference table for an already-fitted model.
//
// f supplies one log-likelihood contribution per observation at any
// parameter vector (auxiliary data closed over by the caller); params holds
// the fitted estimates; design carries optional survey metadata (nil means
// independent observations). The estimator defaults to OuterProduct and is
// selected via WithEstimator or WithEstimatorTag.
//
// Legality: a non-empty design restricts the choice to Sandwich
// (ErrIncompatibleDesign otherwise). Every numeric failure — non-finite
// evaluation, singular matrix, negative variance — surfaces as a sentinel
// error with context; nothing is silently substituted.
func Estimate(f core.LogLikelihoodFunc, params core.ParameterVector, design *survey.Design, opts ...Option) (*Result, error) {
	if f == nil {
		return nil, numdiff.ErrNilFunc
	}
	if params.Len() == 0 {
		return nil, core.ErrEmptyParams
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	est := o.Estimator
	if o.Tag != "" {
		var err error
		if est, err = ParseEstimator(o.Tag); err != nil {
			return nil, fmt.Errorf("vcov: covariance type %q: %w", o.Tag, ErrUnknownEstimator)
		}
	}
	if o.ConfidenceLevel <= 0 || o.ConfidenceLevel >= 1 {
		return nil, fmt.Errorf("vcov: level %v: %w", o.ConfidenceLevel, ErrBadConfidenceLevel)
	}

	// Dispatch legality: clustering, stratification, weighting or fpc all
	// break the independence assumption behind the information-matrix and
	// OPG estimators.
	if !design.Empty() && est != Sandwich {
		return nil, fmt.Errorf("vcov: %s with a non-empty survey design: %w",
			est, ErrIncompatibleDesign)
	}

	var ndOpts []numdiff.Option
	if o.RelStep > 0 {
		ndOpts = append(ndOpts, numdiff.WithRelStep(o.RelStep))
	}
	if o.Workers > 1 {
		ndOpts = append(ndOpts, numdiff.WithWorkers(o.Workers))
	}

	cov, err := dispatch(f, params, design, est, ndOpts)
	if err != nil {
		return nil, err
	}

	se, err := stdErrors(cov, params)
	if err != nil {
		return nil, err
	}

	table, err := NewTable(params, se, o.ConfidenceLevel)
	if err != nil {
		return nil, err
	}

	return &Result{
		Estimator: est,
		Level:     o.ConfidenceLevel,
		Cov:       cov,
		StdErr:    se,
		Table:     table,
	}, nil
}

// dispatch routes to the requested estimator, wiring the survey
// aggregation into Sandwich when a design is present.
func dispatch(f core.LogLikelihoodFunc, params core.ParameterVector, design *survey.Design, est EstimatorType, ndOpts []numdiff.Option) (*mat.SymDense, error) {
	switch est {
	case InformationMatrix:
		hess, err := numdiff.HessianSum(f, params, ndOpts...)
		if err != nil {
			return nil, err
		}
		return informationCov(hess)

	case OuterProduct:
		jac, err := numdiff.Jacobian(f, params, ndOpts...)
		if err != nil {
			return nil, err
		}
		return opgCov(jac)

	case Sandwich:
		jac, err := numdiff.Jacobian(f, params, ndOpts...)
		if err != nil {
			return nil, err
		}

		// Weights alter the Hessian side of the sandwich as well as the
		// aggregated scores.
		hessOpts := ndOpts
		if design != nil && design.Weight != nil {
			hessOpts = append(hessOpts[:len(hessOpts):len(hessOpts)],
				numdiff.WithWeights(design.Weight))
		}
		hess, err := numdiff.HessianSum(f, params, hessOpts...)
		if err != nil {
			return nil, err
		}

		meat, err := survey.Meat(jac, design)
		if err != nil {
			return nil, err
		}
		return sandwichCov(hess, meat)

	default:
		return nil, fmt.Errorf("vcov: estimator %d: %w", est, ErrUnknownEstimator)
	}
}
