// Package linexp studies direct solution of two parameterized dense
// linear-system families as a function of dimension and working precision.
//
// 🚀 What is linexp?
//
//	A controlled experiment on Gaussian elimination. For a family tag and
//	size n it builds the matrix, synthesizes a right-hand side from a known
//	±1 solution, solves at the requested precision, and reports how much of
//	the solution survived — ‖x − x*‖∞ — next to the matrix 1-norm. The
//	deliberate ill-conditioning of Family I as n grows is the object of
//	study, not a defect to remediate.
//
// ✨ Matrix families (1-indexed formulas, r, c = 1..n):
//   - FamilyBordered  (I)  — A[r][c] = 1 on the first row and column,
//     1/(r+c−1) elsewhere (a bordered Hilbert-like matrix)
//   - FamilySymmetric (II) — A[r][c] = 2r/c for c ≥ r, mirrored below
//
// Reproducibility: the ±1 reference solution is drawn from a generator
// seeded with FixedSeed + n, re-seeded for every size, so any call order
// produces identical experiments.
//
// ⚙️ Usage:
//
//	rep, err := linexp.Run(linexp.FamilyBordered, 12, core.Double)
//	reps := linexp.Sweep(linexp.FamilySymmetric, sizes, precs)
//
// A singular solve inside Sweep yields a report with NaN forward error;
// the sweep continues.
package linexp
