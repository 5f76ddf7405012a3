// Package core: shared domain types (generic constraint, precision tag)
// and the package sentinel errors. Helpers live in precision.go.
package core

import "errors"

// Sentinel errors shared across lvlnum packages via core.
var (
	// ErrBadPrecision indicates a Precision tag outside {Single, Double, Extended}.
	ErrBadPrecision = errors.New("core: unknown precision tag")
)

// Float is the constraint satisfied by the two native IEEE-754 widths.
// Generic kernels (Horner, Gaussian elimination, …) are written once
// against Float; the Extended lane is handled separately on *big.Float
// because it has no native machine type.
type Float interface {
	~float32 | ~float64
}

// Precision tags the working floating-point width of a kernel run.
//
//   - Single   — IEEE-754 binary32 (float32).
//   - Double   — IEEE-754 binary64 (float64).
//   - Extended — x87-style 64-bit-mantissa arithmetic emulated on big.Float.
//
// The tag travels with experiment configurations; kernels dispatch on it
// rather than duplicating three function bodies per algorithm.
type Precision int

const (
	// Single selects float32 arithmetic.
	Single Precision = iota

	// Double selects float64 arithmetic.
	Double

	// Extended selects big.Float arithmetic with ExtendedPrec mantissa bits.
	Extended
)

// String returns the canonical lower-case tag name, or "unknown".
func (p Precision) String() string {
	switch p {
	case Single:
		return "single"
	case Double:
		return "double"
	case Extended:
		return "extended"
	default:
		return "unknown"
	}
}

// Valid reports whether p is one of the three published tags.
func (p Precision) Valid() bool {
	return p == Single || p == Double || p == Extended
}
