// Package lsq fits discrete least-squares approximants to a sample set:
// polynomials via the normal equations and trigonometric sums via the
// direct DFT-style coefficient formulas.
//
// 🚀 What is lsq?
//
//	Where interpolation forces the curve through every sample, least
//	squares lets n samples overdetermine m+1 coefficients and minimizes
//	the residual sum of squares. The polynomial path assembles the Gram
//	matrix G[j][k] = Σ xᵢ^(j+k) and hands it to the dense Gaussian solver;
//	the trigonometric path evaluates the closed-form coefficient sums.
//
// ✨ Key features:
//   - FitPoly — normal equations, powers 0 and 1 special-cased, Horner
//     evaluation of the result
//   - FitTrig — aₖ = (2/n)Σ yᵢcos(kωxᵢ), bₖ = (2/n)Σ yᵢsin(kωxᵢ), with the
//     strict m < n/2 harmonic guard and a uniform-spacing check (the
//     direct formulas are a least-squares solution only on uniform grids)
//   - singular Gram systems surface solve.ErrSingular to the driver; no
//     coefficients are guessed
//
// ⚙️ Usage:
//
//	c, err := lsq.FitPoly(xs, ys, m)
//	y := lsq.EvalPoly(c, x)
//
//	ts, err := lsq.FitTrig(xs, ys, m, a, b)
//	y = ts.Eval(x)
//
// Errors (sentinel):
//
//	– ErrArity         — n ≤ m, m < 0, or too few samples
//	– ErrHarmonicLimit — m ≥ n/2 in the trigonometric fit
//	– ErrNonUniform    — trigonometric fit on visibly non-uniform samples
//	– solve.ErrSingular bubbles up from a degenerate Gram matrix
package lsq
