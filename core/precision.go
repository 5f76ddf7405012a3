// Package core: precision helpers. The Extended lane is modeled after the
// x87 80-bit format: a 64-bit mantissa, emulated with math/big.Float so the
// experiments can observe a third rounding width without platform support.
package core

import (
	"math"
	"math/big"
)

// ExtendedPrec is the mantissa width, in bits, of the Extended lane.
// 64 matches the x87 extended-double significand.
const ExtendedPrec uint = 64

// Unit roundoffs per lane. EpsSingle/EpsDouble are the standard IEEE-754
// machine epsilons; EpsExtended is 2^-63 for the 64-bit mantissa.
const (
	EpsSingle   = 0x1p-23
	EpsDouble   = 0x1p-52
	EpsExtended = 0x1p-63
)

// Eps returns the unit roundoff of the working precision p.
// Unknown tags yield NaN; callers validate tags with Precision.Valid.
func Eps(p Precision) float64 {
	switch p {
	case Single:
		return EpsSingle
	case Double:
		return EpsDouble
	case Extended:
		return EpsExtended
	default:
		return math.NaN()
	}
}

// NewExtended lifts a float64 into the Extended lane.
// The returned value carries exactly ExtendedPrec mantissa bits and
// round-to-nearest-even mode, matching the rest of the lane.
func NewExtended(x float64) *big.Float {
	return big.NewFloat(x).SetPrec(ExtendedPrec)
}

// ExtendedVec lifts a float64 slice into the Extended lane.
// A fresh backing slice is allocated; the input is not retained.
func ExtendedVec(xs []float64) []*big.Float {
	out := make([]*big.Float, len(xs))
	for i, x := range xs {
		out[i] = NewExtended(x)
	}
	return out
}

// RoundBack rounds an Extended value to the double lane.
// NaN cannot be represented by big.Float; a nil input stands for a
// poisoned entry and rounds back to NaN.
func RoundBack(x *big.Float) float64 {
	if x == nil {
		return math.NaN()
	}
	f, _ := x.Float64()
	return f
}

// Round narrows a float64 through the working precision p and widens it
// back. For Double this is the identity; for Single it is a float32
// round-trip; for Extended the 64-bit mantissa already contains every
// float64 exactly, so it is also the identity.
func Round(x float64, p Precision) float64 {
	switch p {
	case Single:
		return float64(float32(x))
	case Double, Extended:
		return x
	default:
		return math.NaN()
	}
}
