package survey

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// cluster is one PSU's aggregated state: the summed (weighted) score
// vector plus the stratum and fpc it belongs to.
type cluster struct {
	id      string
	stratum string
	fpc     float64
	score   []float64
}

// Meat computes the design-adjusted meat matrix of the sandwich estimator
// from the n×p per-observation score matrix (Jacobian rows) and the design.
// See the package documentation for the exact formulas, including the
// grand-mean fallback for singleton strata.
//
// A nil or empty design treats every observation as its own unweighted
// cluster, which reproduces the classical heteroskedasticity-robust meat
// with the n/(n−1) small-sample factor.
func Meat(scores *mat.Dense, d *Design) (*mat.SymDense, error) {
	if scores == nil {
		return nil, ErrNilScores
	}
	n, p := scores.Dims()
	if n == 0 || p == 0 {
		return nil, ErrNilScores
	}
	if err := d.Validate(n); err != nil {
		return nil, err
	}

	clusters, err := clusterScores(scores, d)
	if err != nil {
		return nil, err
	}

	acc := make([]float64, p*p)
	if d != nil && d.Strata != nil {
		err = accumulateStratified(acc, p, clusters)
	} else {
		err = accumulateClustered(acc, p, clusters)
	}
	if err != nil {
		return nil, err
	}

	return mat.NewSymDense(p, acc), nil
}

// clusterScores partitions observations by PSU (or one-per-observation
// when PSU is absent) in first-appearance order, summing weighted score
// rows and resolving the stratum and fpc attached to each cluster.
func clusterScores(scores *mat.Dense, d *Design) ([]*cluster, error) {
	n, p := scores.Dims()

	var out []*cluster
	index := make(map[string]*cluster)

	for i := 0; i < n; i++ {
		var id string
		if d != nil && d.PSU != nil {
			id = d.PSU[i]
		} else {
			// No PSU column: every observation is its own cluster.
			id = fmt.Sprintf("#%d", i)
		}

		c, ok := index[id]
		if !ok {
			c = &cluster{id: id, fpc: 1, score: make([]float64, p)}
			if d != nil && d.Strata != nil {
				c.stratum = d.Strata[i]
			}
			if d != nil && d.FPC != nil {
				c.fpc = d.FPC[i]
			}
			index[id] = c
			out = append(out, c)
		} else {
			if d != nil && d.Strata != nil && c.stratum != d.Strata[i] {
				return nil, fmt.Errorf("survey: cluster %q in strata %q and %q: %w",
					id, c.stratum, d.Strata[i], ErrCrossedStrata)
			}
			if d != nil && d.FPC != nil && c.fpc != d.FPC[i] {
				return nil, fmt.Errorf("survey: cluster %q: %w", id, ErrInconstantFPC)
			}
		}

		w := 1.0
		if d != nil && d.Weight != nil {
			w = d.Weight[i]
		}
		for j := 0; j < p; j++ {
			c.score[j] += w * scores.At(i, j)
		}
	}

	return out, nil
}

// accumulateClustered adds the one-stage cluster-robust meat to acc:
// (g/(g−1)) · Σ_g fpc_g·u_g·u_gᵀ. With a single cluster the small-sample
// factor degenerates and 1 is used instead.
func accumulateClustered(acc []float64, p int, clusters []*cluster) error {
	g := len(clusters)
	factor := 1.0
	if g > 1 {
		factor = float64(g) / float64(g-1)
	}
	for _, c := range clusters {
		addOuter(acc, p, c.score, nil, factor*c.fpc)
	}
	return nil
}

// accumulateStratified adds the stratified meat to acc: within each
// stratum, cluster scores are centered on the stratum mean and scaled by
// fpc_h·n_h/(n_h−1). A singleton stratum cannot estimate its own variance;
// its cluster is centered on the grand mean across all clusters with
// factor 1 — the grand-mean fallback.
func accumulateStratified(acc []float64, p int, clusters []*cluster) error {
	// Grand mean across all clusters, for the singleton fallback.
	grand := make([]float64, p)
	for _, c := range clusters {
		for j := 0; j < p; j++ {
			grand[j] += c.score[j]
		}
	}
	for j := 0; j < p; j++ {
		grand[j] /= float64(len(clusters))
	}

	// Group clusters by stratum in first-appearance order.
	var strata []string
	byStratum := make(map[string][]*cluster)
	for _, c := range clusters {
		if _, ok := byStratum[c.stratum]; !ok {
			strata = append(strata, c.stratum)
		}
		byStratum[c.stratum] = append(byStratum[c.stratum], c)
	}

	for _, h := range strata {
		members := byStratum[h]

		fpc := members[0].fpc
		for _, c := range members[1:] {
			if c.fpc != fpc {
				return fmt.Errorf("survey: stratum %q: %w", h, ErrInconstantFPC)
			}
		}

		nh := len(members)
		if nh == 1 {
			// Grand-mean fallback: no within-stratum variance exists for a
			// lone cluster, so center it on the overall mean, factor 1.
			addOuter(acc, p, members[0].score, grand, fpc)
			continue
		}

		mean := make([]float64, p)
		for _, c := range members {
			for j := 0; j < p; j++ {
				mean[j] += c.score[j]
			}
		}
		for j := 0; j < p; j++ {
			mean[j] /= float64(nh)
		}

		factor := fpc * float64(nh) / float64(nh-1)
		for _, c := range members {
			addOuter(acc, p, c.score, mean, factor)
		}
	}

	return nil
}

// addOuter accumulates acc += factor·(u−center)(u−center)ᵀ into the p×p
// row-major slice acc; a nil center means the raw outer product.
func addOuter(acc []float64, p int, u, center []float64, factor float64) {
	for j := 0; j < p; j++ {
		uj := u[j]
		if center != nil {
			uj -= center[j]
		}
		for k := 0; k < p; k++ {
			uk := u[k]
			if center != nil {
				uk -= center[k]
			}
			acc[j*p+k] += factor * uj * uk
		}
	}
}
