package survey

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for design validation and aggregation.
var (
	// ErrNilScores indicates that a nil score matrix was provided.
	ErrNilScores = errors.New("survey: score matrix is nil")

	// ErrLengthMismatch indicates a design column whose length differs
	// from the observation count.
	ErrLengthMismatch = errors.New("survey: design column length mismatch")

	// ErrBadWeight indicates a negative or non-finite sampling weight.
	ErrBadWeight = errors.New("survey: invalid sampling weight")

	// ErrBadFPC indicates a finite-population correction outside (0, 1].
	ErrBadFPC = errors.New("survey: invalid finite-population correction")

	// ErrInconstantFPC indicates an FPC that varies within one
	// stratum (or cluster, when no strata are given).
	ErrInconstantFPC = errors.New("survey: fpc varies within stratum")

	// ErrCrossedStrata indicates a cluster whose observations fall into
	// more than one stratum.
	ErrCrossedStrata = errors.New("survey: cluster spans multiple strata")
)

// Design holds optional per-observation survey-design columns. A nil slice
// means the column is absent; every present column must have one entry per
// observation. The zero value (and a nil *Design) is the empty design,
// i.e. independent observations.
//
// PSU    – cluster identifier; independence is assumed only across
// clusters, never within.
// Strata – stratum identifier; variance is estimated within each stratum
// and summed.
// Weight – sampling weight applied to score contributions.
// FPC    – finite-population correction factor in (0, 1], constant within
// a stratum.
type Design struct {
	PSU    []string
	Strata []string
	Weight []float64
	FPC    []float64
}

// Empty reports whether no design column is present. A nil receiver is
// empty by definition.
func (d *Design) Empty() bool {
	if d == nil {
		return true
	}
	return d.PSU == nil && d.Strata == nil && d.Weight == nil && d.FPC == nil
}

// Validate checks every present column against the observation count n and
// the per-value constraints. It does not check cross-column consistency
// (stratum-constant FPC, nested clusters); aggregation does, where the
// grouping is actually constructed.
func (d *Design) Validate(n int) error {
	if d.Empty() {
		return nil
	}
	if d.PSU != nil && len(d.PSU) != n {
		return fmt.Errorf("survey: psu has %d entries, want %d: %w", len(d.PSU), n, ErrLengthMismatch)
	}
	if d.Strata != nil && len(d.Strata) != n {
		return fmt.Errorf("survey: strata has %d entries, want %d: %w", len(d.Strata), n, ErrLengthMismatch)
	}
	if d.Weight != nil {
		if len(d.Weight) != n {
			return fmt.Errorf("survey: weight has %d entries, want %d: %w", len(d.Weight), n, ErrLengthMismatch)
		}
		for i, w := range d.Weight {
			if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
				return fmt.Errorf("survey: weight[%d] = %v: %w", i, w, ErrBadWeight)
			}
		}
	}
	if d.FPC != nil {
		if len(d.FPC) != n {
			return fmt.Errorf("survey: fpc has %d entries, want %d: %w", len(d.FPC), n, ErrLengthMismatch)
		}
		for i, f := range d.FPC {
			if f <= 0 || f > 1 || math.IsNaN(f) {
				return fmt.Errorf("survey: fpc[%d] = %v: %w", i, f, ErrBadFPC)
			}
		}
	}
	return nil
}
