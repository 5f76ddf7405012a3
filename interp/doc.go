// Package interp builds polynomial interpolants through a sample set:
// Lagrange's direct form, Newton's divided-difference form, and Hermite's
// generalized divided-difference form matching values and first
// derivatives.
//
// 🚀 Choosing a form:
//   - Lagrange — no precomputation, O(n²) per query; the didactic baseline
//   - Newton   — O(n²) triangle built once, O(n) per query; preferred when
//     a driver evaluates on a dense plot grid
//   - Hermite  — degree 2n−1 interpolant matching yᵢ and y′ᵢ at every node
//
// ✨ Guarantees:
//   - temporary tables are scoped to the constructing call; only the top
//     triangle row survives in the returned interpolant
//   - NaN inputs propagate — the interpolant never clamps or guesses
//   - the interpolation identity holds at every node to a small multiple
//     of machine epsilon
//
// ⚙️ Usage:
//
//	y, err := interp.Lagrange(xs, ys, x)
//
//	nw, err := interp.NewNewton(xs, ys)
//	for _, x := range grid { ys = append(ys, nw.Eval(x)) }
//
//	hm, err := interp.NewHermite(xs, ys, yps)
//	y := hm.Eval(x)
//
// Errors (sentinel):
//
//	– ErrTooFewNodes        if n < 1
//	– ErrLengthMismatch     if the sequences differ in length
//	– ErrNodesNotIncreasing if the abscissae are not strictly ascending
package interp
