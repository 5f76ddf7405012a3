// Package nodes generates the ordered sample abscissae every interpolation
// and approximation experiment starts from.
//
// 🚀 What is nodes?
//
//	Two pure generators over a closed interval [a, b]:
//	  • Uniform   — equispaced nodes, endpoints hit exactly
//	  • Chebyshev — zeros of the Chebyshev polynomial Tₙ mapped to [a, b]
//
// ✨ Guarantees:
//   - output is strictly increasing, finite, duplicate-free
//   - Uniform: x₀ = a and x₍ₙ₋₁₎ = b bit-for-bit (the last node is
//     reassigned to b to defeat accumulated rounding drift)
//   - Chebyshev: all nodes lie strictly inside (a, b), symmetric about the
//     interval midpoint
//   - n = 1 is legal for Uniform (returns the midpoint); spline callers
//     enforce their own n ≥ 2 requirement
//
// ⚙️ Usage:
//
//	xs, err := nodes.Uniform(20, f.A, f.B)
//	cs, err := nodes.Chebyshev(20, f.A, f.B)
//
// Errors (sentinel):
//
//	– ErrNodeCount if n < 1
//	– ErrInterval  if b ≤ a or an endpoint is not finite
package nodes
