package vcov_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/statkit/pmle/core"
)

// Shared logit fixture: the parameter values follow the trust-model
// estimates used throughout the examples (intercept, trust score, sex,
// income); the covariates are deterministic synthetic data.
var (
	fixNames = []string{"Intercept", "ppltrst", "male", "income"}
	fixBeta  = []float64{0.9659383, 0.0109796, -0.1890401, -0.0064468}

	fixY = []float64{1, 0, 1, 1, 0, 1, 1, 0, 1, 1, 0, 1, 1, 1, 0, 1, 0, 1, 1, 0}
	fixX = [][]float64{
		{1, 5, 0, 3}, {1, 2, 1, 7}, {1, 8, 0, 2}, {1, 4, 1, 5},
		{1, 0, 0, 9}, {1, 6, 1, 1}, {1, 9, 0, 4}, {1, 3, 1, 8},
		{1, 7, 0, 6}, {1, 1, 1, 2}, {1, 5, 0, 10}, {1, 8, 1, 3},
		{1, 2, 0, 5}, {1, 6, 0, 7}, {1, 4, 1, 9}, {1, 9, 1, 1},
		{1, 0, 1, 6}, {1, 3, 0, 2}, {1, 7, 1, 4}, {1, 1, 0, 8},
	}
)

func sigmoid(z float64) float64 { return 1 / (1 + math.Exp(-z)) }

func linpred(x []float64, beta []float64) float64 {
	var lp float64
	for j, b := range beta {
		lp += b * x[j]
	}
	return lp
}

// logitLL returns per-observation logit log-likelihood contributions.
func logitLL(y []float64, x [][]float64) core.LogLikelihoodFunc {
	return func(params core.ParameterVector) ([]float64, error) {
		beta := params.Values()
		out := make([]float64, len(y))
		for i := range y {
			p := sigmoid(linpred(x[i], beta))
			out[i] = y[i]*math.Log(p) + (1-y[i])*math.Log(1-p)
		}
		return out, nil
	}
}

// probitLL returns per-observation probit contributions.
func probitLL(y []float64, x [][]float64) core.LogLikelihoodFunc {
	norm := distuv.Normal{Mu: 0, Sigma: 1}
	return func(params core.ParameterVector) ([]float64, error) {
		beta := params.Values()
		out := make([]float64, len(y))
		for i := range y {
			p := norm.CDF(linpred(x[i], beta))
			out[i] = y[i]*math.Log(p) + (1-y[i])*math.Log(1-p)
		}
		return out, nil
	}
}

// logitScore returns the analytic n×p score matrix (yᵢ−pᵢ)·xᵢ.
func logitScore(y []float64, x [][]float64, beta []float64) *mat.Dense {
	n, p := len(y), len(beta)
	s := mat.NewDense(n, p, nil)
	for i := 0; i < n; i++ {
		r := y[i] - sigmoid(linpred(x[i], beta))
		for j := 0; j < p; j++ {
			s.Set(i, j, r*x[i][j])
		}
	}
	return s
}

// logitHessian returns the analytic Hessian −Σ pᵢ(1−pᵢ)·xᵢxᵢᵀ.
func logitHessian(y []float64, x [][]float64, beta []float64) *mat.SymDense {
	p := len(beta)
	h := mat.NewSymDense(p, nil)
	for i := range y {
		pr := sigmoid(linpred(x[i], beta))
		f := -pr * (1 - pr)
		for j := 0; j < p; j++ {
			for k := j; k < p; k++ {
				h.SetSym(j, k, h.At(j, k)+f*x[i][j]*x[i][k])
			}
		}
	}
	return h
}

// invertDense is the test-side oracle inverse, independent of the library's
// Cholesky path.
func invertDense(t *testing.T, a mat.Matrix) *mat.Dense {
	t.Helper()
	var inv mat.Dense
	require.NoError(t, inv.Inverse(a), "oracle inverse must exist")
	return &inv
}

func fixtureParams(t *testing.T) core.ParameterVector {
	t.Helper()
	pv, err := core.NewParameterVector(fixNames, fixBeta)
	require.NoError(t, err)
	return pv
}

// replicate repeats every observation k times, tagging copies of
// observation i with cluster id "c<i>"; used for the clustering-widens-SEs
// property.
func replicate(k int) (y []float64, x [][]float64, psu []string) {
	for i := range fixY {
		for r := 0; r < k; r++ {
			y = append(y, fixY[i])
			x = append(x, fixX[i])
			psu = append(psu, "c"+string(rune('A'+i)))
		}
	}
	return y, x, psu
}
