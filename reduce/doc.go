// Package reduce collapses a pair of equal-length value sequences — true
// values and an approximation — into the two scalar error measures every
// experiment reports: maximum absolute error and mean squared error.
//
// NaN policy: an approximation entry that is NaN marks a configuration
// hole (a refused cell, a singular solve, a domain gap). Such indices are
// skipped by both measures; when every index is skipped, both measures are
// NaN and the driver records an empty cell. NaN in the truth sequence is
// treated the same way.
//
// ⚙️ Usage:
//
//	rec, err := reduce.Errors(truth, approx)
//	// rec.MaxAbs, rec.MSE
//
// Cost: one pass, O(n), no allocations.
package reduce
