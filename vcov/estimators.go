package vcov

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/statkit/pmle/core"
)

// invertSym inverts a symmetric positive-definite matrix via Cholesky.
// Factorization failure — a non-PD or numerically singular matrix — maps
// to ErrSingularMatrix with the caller's context attached.
func invertSym(s *mat.SymDense, what string) (*mat.SymDense, error) {
	var ch mat.Cholesky
	if ok := ch.Factorize(s); !ok {
		return nil, fmt.Errorf("vcov: %s is not invertible: %w", what, ErrSingularMatrix)
	}
	var inv mat.SymDense
	if err := ch.InverseTo(&inv); err != nil {
		return nil, fmt.Errorf("vcov: inverting %s: %w", what, ErrSingularMatrix)
	}
	return &inv, nil
}

// negate returns −s as a fresh SymDense.
func negate(s *mat.SymDense) *mat.SymDense {
	p := s.SymmetricDim()
	out := mat.NewSymDense(p, nil)
	for j := 0; j < p; j++ {
		for k := j; k < p; k++ {
			out.SetSym(j, k, -s.At(j, k))
		}
	}
	return out
}

// informationCov computes V = (−H)⁻¹.
func informationCov(hess *mat.SymDense) (*mat.SymDense, error) {
	return invertSym(negate(hess), "negative hessian")
}

// opgCov computes V = (JᵀJ)⁻¹.
func opgCov(jac *mat.Dense) (*mat.SymDense, error) {
	_, p := jac.Dims()

	var jtj mat.Dense
	jtj.Mul(jac.T(), jac)

	// JᵀJ is symmetric up to rounding; fold it onto the upper triangle.
	sym := mat.NewSymDense(p, nil)
	for j := 0; j < p; j++ {
		for k := j; k < p; k++ {
			sym.SetSym(j, k, (jtj.At(j, k)+jtj.At(k, j))/2)
		}
	}

	return invertSym(sym, "opg matrix")
}

// sandwichCov assembles V = B·M·B with bread B = (−H)⁻¹ and the provided
// meat, symmetrizing the product against rounding drift.
func sandwichCov(hess, meat *mat.SymDense) (*mat.SymDense, error) {
	bread, err := invertSym(negate(hess), "sandwich bread (negative hessian)")
	if err != nil {
		return nil, err
	}

	p := bread.SymmetricDim()
	var bm, bmb mat.Dense
	bm.Mul(bread, meat)
	bmb.Mul(&bm, bread)

	sym := mat.NewSymDense(p, nil)
	for j := 0; j < p; j++ {
		for k := j; k < p; k++ {
			sym.SetSym(j, k, (bmb.At(j, k)+bmb.At(k, j))/2)
		}
	}

	return sym, nil
}

// stdErrors extracts √diag(V). A negative diagonal entry — numerical noise
// masquerading as variance — fails with ErrNegativeVariance naming the
// parameter instead of producing a NaN standard error.
func stdErrors(cov *mat.SymDense, params core.ParameterVector) ([]float64, error) {
	p := cov.SymmetricDim()
	if p != params.Len() {
		return nil, fmt.Errorf("vcov: covariance is %d×%d for %d parameters: %w",
			p, p, params.Len(), ErrDimensionMismatch)
	}

	se := make([]float64, p)
	for j := 0; j < p; j++ {
		v := cov.At(j, j)
		if v < 0 {
			return nil, fmt.Errorf("vcov: variance of parameter %d (%s) is %g: %w",
				j, params.Name(j), v, ErrNegativeVariance)
		}
		se[j] = math.Sqrt(v)
	}
	return se, nil
}
