package vcov_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/statkit/pmle/core"
	"github.com/statkit/pmle/vcov"
)

// TestNewTable_CriticalValue pins the 95% two-sided normal critical value.
func TestNewTable_CriticalValue(t *testing.T) {
	params := fixtureParams(t)
	se := []float64{0.1, 0.1, 0.1, 0.1}

	table, err := vcov.NewTable(params, se, 0.95)
	require.NoError(t, err)
	assert.InDelta(t, 1.959964, table.Critical, 1e-6)
}

// TestNewTable_IntervalSymmetryAndWidth checks, for every parameter, that
// upper−value equals value−lower and that the width is 2·z·se.
func TestNewTable_IntervalSymmetryAndWidth(t *testing.T) {
	params := fixtureParams(t)
	se := []float64{0.047480, 0.006770, 0.031561, 0.005907}

	table, err := vcov.NewTable(params, se, 0.95)
	require.NoError(t, err)

	for j, r := range table.Rows {
		assert.InDelta(t, r.Upper-r.Value, r.Value-r.Lower, 1e-12,
			"interval must be symmetric for %s", r.Name)
		assert.InDelta(t, 2*1.959964*se[j], r.Upper-r.Lower, 1e-5,
			"interval width must be 2·z·se for %s", r.Name)
	}
}

// TestNewTable_Rows verifies order, values and the z/p columns.
func TestNewTable_Rows(t *testing.T) {
	pv, err := core.NewParameterVector([]string{"a", "b"}, []float64{2.0, -0.5})
	require.NoError(t, err)

	table, err := vcov.NewTable(pv, []float64{1.0, 0.25}, 0.95)
	require.NoError(t, err)
	require.Len(t, table.Rows, 2)

	assert.Equal(t, "a", table.Rows[0].Name)
	assert.Equal(t, "b", table.Rows[1].Name)

	// z = 2/1; two-sided p for z=2 is ≈0.0455.
	assert.InDelta(t, 2.0, table.Rows[0].Z, 1e-12)
	assert.InDelta(t, 0.0455, table.Rows[0].P, 1e-4)

	// z = −0.5/0.25 = −2; same two-sided p.
	assert.InDelta(t, -2.0, table.Rows[1].Z, 1e-12)
	assert.InDelta(t, table.Rows[0].P, table.Rows[1].P, 1e-12)
}

// TestNewTable_Validation covers the dimension and level guards.
func TestNewTable_Validation(t *testing.T) {
	params := fixtureParams(t)

	_, err := vcov.NewTable(params, []float64{0.1}, 0.95)
	assert.ErrorIs(t, err, vcov.ErrDimensionMismatch)

	_, err = vcov.NewTable(params, []float64{0.1, 0.1, 0.1, 0.1}, 0)
	assert.ErrorIs(t, err, vcov.ErrBadConfidenceLevel)

	_, err = vcov.NewTable(params, []float64{0.1, 0.1, 0.1, 0.1}, 1)
	assert.ErrorIs(t, err, vcov.ErrBadConfidenceLevel)
}

// TestTable_String smoke-tests the rendered report.
func TestTable_String(t *testing.T) {
	params := fixtureParams(t)
	table, err := vcov.NewTable(params, []float64{0.05, 0.007, 0.03, 0.006}, 0.95)
	require.NoError(t, err)

	s := table.String()
	assert.Contains(t, s, "Parameter")
	assert.Contains(t, s, "ppltrst")
	assert.Contains(t, s, "P>|z|")
	assert.Equal(t, len(table.Rows)+1, strings.Count(s, "\n"),
		"one line per row plus the header")
}

// TestStdErrors_NegativeVariance exercises the white-box guard against a
// covariance diagonal corrupted by numerical noise.
func TestStdErrors_NegativeVariance(t *testing.T) {
	pv, err := core.NewParameterVector([]string{"a", "b"}, []float64{1, 2})
	require.NoError(t, err)

	cov := mat.NewSymDense(2, []float64{0.5, 0, 0, -1e-9})
	_, err = vcov.StdErrorsForTest(cov, pv)
	require.ErrorIs(t, err, vcov.ErrNegativeVariance)
	assert.Contains(t, err.Error(), "b", "error must name the parameter")

	cov = mat.NewSymDense(2, []float64{0.5, 0, 0, 0.25})
	se, err := vcov.StdErrorsForTest(cov, pv)
	require.NoError(t, err)
	assert.Equal(t, []float64{math.Sqrt(0.5), 0.5}, se)
}
