// Package solve provides the two direct linear solvers the laboratory
// runs on: dense Gaussian elimination with partial pivoting and the Thomas
// two-sweep solver for tridiagonal systems.
//
// 🚀 What is solve?
//
//	The only place matrices are factored. The least-squares approximators
//	hand their Gram systems here, the cubic spline hands its moment system
//	to the tridiagonal path, and the linear-system experiments consume the
//	generic path at all three working precisions.
//
// ✨ Key features:
//   - Gaussian[T core.Float] — one generic body for float32 and float64
//   - GaussianBig — the same elimination on *big.Float for the Extended lane
//   - Tridiagonal — Thomas algorithm, O(n) time, O(n) extra space
//   - strict fail-fast validation, sentinel errors matched with errors.Is
//
// ⚙️ Usage:
//
//	x, err := solve.Gaussian(a, b)       // a, b consumed in place
//	m, err := solve.Tridiagonal(sub, d, sup, r)
//
// Ownership: the dense solvers mutate both the matrix and the right-hand
// side during elimination — callers pass buffers they own. The solution is
// the sole output and a fresh allocation.
//
// Errors (sentinel):
//
//	– ErrBadShape  — empty system, ragged rows, mismatched lengths
//	– ErrSingular  — pivot magnitude below PivotTol (dense) or exact zero
//	  pivot (tridiagonal)
package solve
