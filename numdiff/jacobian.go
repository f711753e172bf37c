package numdiff

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/statkit/pmle/core"
)

// shift is a single-parameter perturbation applied to a base vector.
type shift struct {
	idx   int
	delta float64
}

// describe renders a perturbation point for error messages,
// e.g. "Intercept+h" or "age+h, income-h"; no shifts means the base point.
func describe(params core.ParameterVector, shifts []shift) string {
	if len(shifts) == 0 {
		return "base point"
	}
	parts := make([]string, len(shifts))
	for i, s := range shifts {
		sign := "+h"
		if s.delta < 0 {
			sign = "-h"
		}
		parts[i] = fmt.Sprintf("parameter %d (%s)%s", s.idx, params.Name(s.idx), sign)
	}
	return strings.Join(parts, ", ")
}

// evalAt evaluates f at the base vector shifted by the given perturbations,
// verifying the contribution count and finiteness of every value.
// wantN < 0 skips the length check (first evaluation).
func evalAt(f core.LogLikelihoodFunc, params core.ParameterVector, wantN int, shifts ...shift) ([]float64, error) {
	pt := params.Clone()
	for _, s := range shifts {
		if err := pt.SetValue(s.idx, pt.Value(s.idx)+s.delta); err != nil {
			return nil, err
		}
	}

	vals, err := f(pt)
	if err != nil {
		return nil, fmt.Errorf("numdiff: evaluating at %s: %w", describe(params, shifts), err)
	}
	if len(vals) == 0 {
		return nil, ErrNoObservations
	}
	if wantN >= 0 && len(vals) != wantN {
		return nil, fmt.Errorf("numdiff: got %d contributions, want %d at %s: %w",
			len(vals), wantN, describe(params, shifts), ErrLengthMismatch)
	}
	for i, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("numdiff: contribution %d at %s: %w",
				i, describe(params, shifts), ErrNonFinite)
		}
	}

	return vals, nil
}

// stepFor returns the perturbation step for parameter k:
// RelStep·max(|θₖ|, MinBase), snapped to an exactly representable value
// so that (θ+h)−θ == h in floating point.
func stepFor(params core.ParameterVector, k int, o Options) float64 {
	v := params.Value(k)
	h := o.RelStep * math.Max(math.Abs(v), o.MinBase)
	// Snap h to the representable difference actually applied.
	t := v + h
	return t - v
}

// runIndexed executes fn(i) for i in [0, n) on up to `workers` goroutines.
// Per-index errors are collected and the lowest-index error is returned,
// so failure reporting is deterministic regardless of scheduling.
func runIndexed(n, workers int, fn func(int) error) error {
	if workers < 2 || n < 2 {
		for i := 0; i < n; i++ {
			if err := fn(i); err != nil {
				return err
			}
		}
		return nil
	}

	errs := make([]error, n)
	jobs := make(chan int)
	var wg sync.WaitGroup

	if workers > n {
		workers = n
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				errs[i] = fn(i)
			}
		}()
	}
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// Jacobian computes the n×p matrix of per-observation partial derivatives
// of the log-likelihood contributions with respect to each parameter:
// rows are observations, column k is parameter k of the input vector.
//
// Returns ErrNilFunc, core.ErrEmptyParams, ErrBadStep, ErrNoObservations,
// ErrLengthMismatch, or a wrapped ErrNonFinite naming the offending
// parameter and perturbation direction.
func Jacobian(f core.LogLikelihoodFunc, params core.ParameterVector, opts ...Option) (*mat.Dense, error) {
	if f == nil {
		return nil, ErrNilFunc
	}
	if params.Len() == 0 {
		return nil, core.ErrEmptyParams
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	// The base evaluation fixes the observation count; Forward reuses it.
	base, err := evalAt(f, params, -1)
	if err != nil {
		return nil, err
	}
	n, p := len(base), params.Len()

	jac := mat.NewDense(n, p, nil)
	col := func(k int) error {
		h := stepFor(params, k, o)

		plus, err := evalAt(f, params, n, shift{k, h})
		if err != nil {
			return err
		}

		switch o.Scheme {
		case Forward:
			for i := 0; i < n; i++ {
				jac.Set(i, k, (plus[i]-base[i])/h)
			}
		default:
			minus, err := evalAt(f, params, n, shift{k, -h})
			if err != nil {
				return err
			}
			for i := 0; i < n; i++ {
				jac.Set(i, k, (plus[i]-minus[i])/(2*h))
			}
		}
		return nil
	}

	if err := runIndexed(p, o.Workers, col); err != nil {
		return nil, err
	}

	return jac, nil
}
