package numdiff

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/statkit/pmle/core"
)

// total reduces per-observation contributions to the (weighted) scalar sum.
func total(vals, weights []float64) float64 {
	var s float64
	if weights == nil {
		for _, v := range vals {
			s += v
		}
		return s
	}
	for i, v := range vals {
		s += weights[i] * v
	}
	return s
}

// HessianSum computes the symmetric p×p second-derivative matrix of the
// summed log-likelihood ℓ(θ) = Σᵢ wᵢ·ℓᵢ(θ) by double perturbation
// (see the package documentation for the exact stencils). Weights default
// to one per observation; set them via WithWeights when the design calls
// for weighted variance contributions.
//
// Returns the same sentinel errors as Jacobian, plus ErrLengthMismatch
// when Weights disagrees with the observation count.
func HessianSum(f core.LogLikelihoodFunc, params core.ParameterVector, opts ...Option) (*mat.SymDense, error) {
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

	base, err := evalAt(f, params, -1)
	if err != nil {
		return nil, err
	}
	n, p := len(base), params.Len()
	if o.Weights != nil && len(o.Weights) != n {
		return nil, fmt.Errorf("numdiff: %d weights for %d observations: %w",
			len(o.Weights), n, ErrLengthMismatch)
	}
	base0 := total(base, o.Weights)

	steps := make([]float64, p)
	for k := 0; k < p; k++ {
		steps[k] = stepFor(params, k, o)
	}

	// Enumerate the lower triangle once; each pair is an independent job.
	type pair struct{ j, k int }
	pairs := make([]pair, 0, p*(p+1)/2)
	for j := 0; j < p; j++ {
		for k := 0; k <= j; k++ {
			pairs = append(pairs, pair{j, k})
		}
	}

	hess := mat.NewSymDense(p, nil)
	cell := func(i int) error {
		j, k := pairs[i].j, pairs[i].k
		hj, hk := steps[j], steps[k]

		if j == k {
			plus, err := evalAt(f, params, n, shift{j, hj})
			if err != nil {
				return err
			}
			minus, err := evalAt(f, params, n, shift{j, -hj})
			if err != nil {
				return err
			}
			d2 := (total(plus, o.Weights) - 2*base0 + total(minus, o.Weights)) / (hj * hj)
			hess.SetSym(j, j, d2)
			return nil
		}

		pp, err := evalAt(f, params, n, shift{j, hj}, shift{k, hk})
		if err != nil {
			return err
		}
		pm, err := evalAt(f, params, n, shift{j, hj}, shift{k, -hk})
		if err != nil {
			return err
		}
		mp, err := evalAt(f, params, n, shift{j, -hj}, shift{k, hk})
		if err != nil {
			return err
		}
		mm, err := evalAt(f, params, n, shift{j, -hj}, shift{k, -hk})
		if err != nil {
			return err
		}

		d2 := (total(pp, o.Weights) - total(pm, o.Weights) -
			total(mp, o.Weights) + total(mm, o.Weights)) / (4 * hj * hk)
		hess.SetSym(j, k, d2)
		return nil
	}

	if err := runIndexed(len(pairs), o.Workers, cell); err != nil {
		return nil, err
	}

	return hess, nil
}
