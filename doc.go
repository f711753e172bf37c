// Package pmle estimates sampling variance for pseudo-maximum-likelihood
// models whose parameters are already fitted, from nothing more than a
// caller-supplied per-observation log-likelihood function.
//
// 🚀 What is pmle?
//
//	A small, focused inference library that brings together:
//		• Numeric differentiation: finite-difference Jacobian & Hessian of
//		  a per-observation log-likelihood
//		• Three covariance estimators: observed information, outer product
//		  of gradients (OPG), and the cluster/stratum-robust sandwich
//		• Complex-survey designs: primary sampling units, strata, sampling
//		  weights and finite-population correction
//		• An inference table: standard errors, confidence intervals,
//		  z-scores and p-values per parameter
//
// ✨ Why choose pmle?
//
//   - Parameters in, variance out — no optimizer, no formula parser
//   - Explicit error taxonomy — every numeric failure is a sentinel error,
//     never a NaN smuggled into a result
//   - Survey-aware — the sandwich estimator honours PSU/strata/weight/fpc
//     metadata, including the grand-mean fallback for singleton strata
//
// Everything is organized under four subpackages:
//
//	core/    — ParameterVector and the log-likelihood function contract
//	numdiff/ — finite-difference Jacobian and Hessian engine
//	survey/  — design metadata and cluster/stratum score aggregation
//	vcov/    — estimators, dispatcher, inference table, Estimate entry point
//
// Quick sketch:
//
//	params, _ := core.NewParameterVector(
//	    []string{"Intercept", "age"}, []float64{0.97, -0.01})
//	res, err := vcov.Estimate(loglike, params, nil,
//	    vcov.WithEstimatorTag("sandwich"))
//	if err != nil { ... }
//	fmt.Println(res.Table)
//
// Dive into the per-package doc.go files for the estimator formulas and the
// full sentinel-error contracts.
//
//	go get github.com/statkit/pmle
package pmle
