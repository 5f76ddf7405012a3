// Package spline fits piecewise polynomial interpolants through ascending
// sample nodes: a quadratic C¹ engine driven by a slope recurrence and a
// cubic C² engine driven by a tridiagonal moment system.
//
// 🚀 What is spline?
//
//	Where global polynomial interpolation oscillates (see the Runge study
//	in interp), splines stay local: each subinterval carries its own low-
//	degree segment, glued smoothly at the knots.
//
// ✨ Engines and boundary families:
//   - Quadratic (C¹) — one scalar pins the slope sequence:
//     ClampedStart(f′(a)) · ClampedEnd(f′(b)) · ZeroSlopeStart()
//   - Cubic (C²) — second derivatives Mᵢ from a tridiagonal solve:
//     Natural() · Clamped(f′(a), f′(b))
//
// Segment coefficients are reconstructed on evaluation from the knot data;
// nothing but (xs, ys, slopes|moments) is retained. Queries outside
// [x₀, x₍ₙ₋₁₎] extrapolate with the first or last segment.
//
// ⚙️ Usage:
//
//	sp, err := spline.NewCubic(xs, ys, spline.Clamped(da, db))
//	y  := sp.Eval(x)
//	dy := sp.Deriv(x)
//
// Errors (sentinel):
//
//	– ErrTooFewNodes        if n < 2
//	– ErrLengthMismatch     if len(xs) ≠ len(ys)
//	– ErrNodesNotIncreasing if some hᵢ ≤ 0
//	– ErrBoundary           if the tag does not belong to the engine
package spline
