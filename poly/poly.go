package poly

import (
	"math"
	"math/big"

	"github.com/katalvlaran/lvlnum/core"
)

// Naive evaluates Σ cᵢ xⁱ by summing monomials, each power built from
// scratch. Deliberately cancellation-prone; kept as the baseline of the
// evaluation-order studies.
//
// An empty coefficient slice is the zero polynomial.
// Complexity: O(m²) multiplications for degree m. Allocation-free.
func Naive[T core.Float](c []T, x T) T {
	var s T
	for i := range c {
		p := T(1)
		for k := 0; k < i; k++ {
			p *= x
		}
		s += c[i] * p
	}
	return s
}

// Horner evaluates the same polynomial as ((…(c_m·x + c_{m−1})·x + …)·x + c₀),
// using m multiplications and m additions.
//
// An empty coefficient slice is the zero polynomial.
// Complexity: O(m). Allocation-free.
func Horner[T core.Float](c []T, x T) T {
	if len(c) == 0 {
		return 0
	}
	s := c[len(c)-1]
	for i := len(c) - 2; i >= 0; i-- {
		s = s*x + c[i]
	}
	return s
}

// hornerBig is the Extended-lane Horner pass: every multiply and add is
// rounded to core.ExtendedPrec mantissa bits, mirroring x87 register
// arithmetic.
func hornerBig(c []float64, x float64) float64 {
	if len(c) == 0 {
		return 0
	}
	xe := core.NewExtended(x)
	s := core.NewExtended(c[len(c)-1])
	for i := len(c) - 2; i >= 0; i-- {
		s.Mul(s, xe)
		s.Add(s, big.NewFloat(c[i]).SetPrec(core.ExtendedPrec))
	}
	return core.RoundBack(s)
}

// EvalAt evaluates the coefficient polynomial c at x in Horner form at the
// requested working precision:
//
//   - Single:   coefficients, x and every intermediate narrowed to float32;
//   - Double:   native float64 Horner;
//   - Extended: big.Float Horner with a 64-bit mantissa, rounded back once.
//
// An invalid precision tag yields NaN (tags are normally validated by the
// driver before the sweep starts).
func EvalAt(c []float64, x float64, p core.Precision) float64 {
	switch p {
	case core.Single:
		c32 := make([]float32, len(c))
		for i, v := range c {
			c32[i] = float32(v)
		}
		return float64(Horner(c32, float32(x)))
	case core.Double:
		return Horner(c, x)
	case core.Extended:
		return hornerBig(c, x)
	default:
		return math.NaN()
	}
}

// NaiveAt is the naive-order counterpart of EvalAt, used by the
// evaluation-order study to expose cancellation at each width.
func NaiveAt(c []float64, x float64, p core.Precision) float64 {
	switch p {
	case core.Single:
		c32 := make([]float32, len(c))
		for i, v := range c {
			c32[i] = float32(v)
		}
		return float64(Naive(c32, float32(x)))
	case core.Double:
		return Naive(c, x)
	case core.Extended:
		return naiveBig(c, x)
	default:
		return math.NaN()
	}
}

// naiveBig sums the monomials on big.Float, powers built term by term.
func naiveBig(c []float64, x float64) float64 {
	xe := core.NewExtended(x)
	s := core.NewExtended(0)
	t := new(big.Float).SetPrec(core.ExtendedPrec)
	for i, ci := range c {
		t.SetFloat64(1)
		for k := 0; k < i; k++ {
			t.Mul(t, xe)
		}
		t.Mul(t, big.NewFloat(ci).SetPrec(core.ExtendedPrec))
		s.Add(s, t)
	}
	return core.RoundBack(s)
}
