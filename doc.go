// Package lvlnum is a numerical-analysis laboratory: a family of scalar
// approximation kernels, the precision lanes they run in, and the sweep
// drivers that turn them into error tables and curves.
//
// 🚀 What is lvlnum?
//
//	A single-threaded, pure-computation library that brings together:
//		• Catalog: the published study functions with intervals & derivatives
//		• Evaluation: naive vs Horner polynomial forms across precisions
//		• Interpolation: Lagrange, Newton divided differences, Hermite
//		• Splines: quadratic C¹ and cubic C² engines with tagged boundaries
//		• Least squares: polynomial normal equations & trigonometric sums
//		• Root finding: Newton and secant with pluggable stopping criteria
//		• Linear systems: Gaussian elimination, Thomas, matrix-family studies
//		• Precision lanes: float32, float64 and an extended big.Float lane
//
// ✨ Why choose lvlnum?
//
//   - Deterministic – fixed seeds, no time-based sources, bit-identical reruns
//   - Honest failure – singular, degenerate and refused cells surface as
//     sentinel errors or NaN, never as guessed numbers
//   - Pure Go – no cgo; kernels never log and never perform I/O
//   - Data-driven – node families, boundaries, criteria and precisions are
//     tagged parameters fed through declarative sweep plans
//
// Under the hood, everything is organized per concern:
//
//	core/    — precision tags, the Float constraint & the extended lane
//	catalog/ — published function descriptors for data-driven drivers
//	nodes/   — equispaced & Chebyshev sample generators
//	poly/    — naive and Horner evaluation across the three lanes
//	interp/  — Lagrange, Newton & Hermite interpolants
//	spline/  — quadratic and cubic spline engines
//	lsq/     — polynomial & trigonometric least squares
//	roots/   — Newton & secant iteration with stopping criteria
//	solve/   — dense Gaussian, big.Float Gaussian & Thomas solvers
//	linexp/  — matrix-family forward-error experiments
//	reduce/  — max-abs / mean-squared error summaries
//	sweep/   — study drivers, YAML plans & the sink contracts
//
// Quick start:
//
//	fn, _ := catalog.Lookup(catalog.F2)
//	xs, _ := nodes.Chebyshev(12, fn.A, fn.B)
//	nw, _ := interp.NewNewton(xs, sample(fn.Eval, xs))
//	y := nw.Eval(0.25)
//
// Dive into the per-package docs for the numerics, error contracts and
// worked examples.
//
//	go get github.com/katalvlaran/lvlnum
package lvlnum
