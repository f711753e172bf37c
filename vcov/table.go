package vcov

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/statkit/pmle/core"
)

// stdNormal is the reference distribution for critical values, z-scores
// and p-values.
var stdNormal = distuv.Normal{Mu: 0, Sigma: 1}

// Row is one parameter's line in the inference table.
type Row struct {
	Name   string
	Value  float64
	StdErr float64
	Lower  float64 // Value − z·StdErr
	Upper  float64 // Value + z·StdErr
	Z      float64 // Value / StdErr
	P      float64 // two-sided p-value under the standard normal
}

// Table is the user-facing inference report: one Row per parameter, in
// parameter order, plus the confidence level and the critical value the
// intervals were built with.
type Table struct {
	Rows     []Row
	Level    float64
	Critical float64
}

// NewTable assembles the inference table from the parameter vector and the
// standard-error slice (same order). level is the two-sided confidence
// level; the default 0.95 yields the critical value ≈1.959964.
//
// Returns ErrBadConfidenceLevel for level outside (0, 1) and
// ErrDimensionMismatch when se and params disagree in length.
func NewTable(params core.ParameterVector, se []float64, level float64) (*Table, error) {
	if level <= 0 || level >= 1 {
		return nil, fmt.Errorf("vcov: level %v: %w", level, ErrBadConfidenceLevel)
	}
	if len(se) != params.Len() {
		return nil, fmt.Errorf("vcov: %d standard errors for %d parameters: %w",
			len(se), params.Len(), ErrDimensionMismatch)
	}

	crit := stdNormal.Quantile(0.5 + level/2)

	t := &Table{
		Rows:     make([]Row, params.Len()),
		Level:    level,
		Critical: crit,
	}
	for j := 0; j < params.Len(); j++ {
		v, s := params.Value(j), se[j]
		z := v / s
		t.Rows[j] = Row{
			Name:   params.Name(j),
			Value:  v,
			StdErr: s,
			Lower:  v - crit*s,
			Upper:  v + crit*s,
			Z:      z,
			P:      2 * stdNormal.CDF(-math.Abs(z)),
		}
	}

	return t, nil
}

// String renders an aligned text table.
func (t *Table) String() string {
	nameW := len("Parameter")
	for _, r := range t.Rows {
		if len(r.Name) > nameW {
			nameW = len(r.Name)
		}
	}

	var b strings.Builder
	lo := (1 - t.Level) / 2
	hi := 1 - lo
	fmt.Fprintf(&b, "%-*s %10s %10s %10s %10s %8s %8s\n",
		nameW, "Parameter", "Estimate", "Std.Err",
		fmt.Sprintf("[%.3f", lo), fmt.Sprintf("%.3f]", hi), "z", "P>|z|")
	for _, r := range t.Rows {
		fmt.Fprintf(&b, "%-*s %10.6f %10.6f %10.6f %10.6f %8.3f %8.3f\n",
			nameW, r.Name, r.Value, r.StdErr, r.Lower, r.Upper, r.Z, r.P)
	}
	return b.String()
}
