// Package poly evaluates coefficient polynomials P(x) = Σ cᵢ xⁱ in the two
// classic orders — naive monomial summation and Horner factorization — at
// the three working precisions of the laboratory.
//
// 🚀 Why two evaluators?
//
//	They are algebraically identical and numerically very different: near a
//	root of high multiplicity the naive sum cancels catastrophically while
//	Horner keeps the relative error near machine epsilon. The Horner-vs-
//	naive study in the drivers measures exactly that gap.
//
// ✨ Key features:
//   - Naive[T core.Float] / Horner[T core.Float] — one generic body each,
//     pure and allocation-free
//   - EvalAt(c, x, prec) — precision-dispatched Horner evaluation:
//     Single runs every step through float32, Double runs native, Extended
//     runs on big.Float and rounds back once at the end
//
// ⚙️ Usage:
//
//	y := poly.Horner(c, x)
//	y32 := poly.EvalAt(c, x, core.Single)
//
// Coefficients are ascending: c[0] is the constant term. Evaluation never
// takes ownership of the coefficient slice.
package poly
