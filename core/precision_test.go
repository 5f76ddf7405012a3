package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlnum/core"
)

// TestPrecisionString verifies the canonical tag names and the unknown fallback.
func TestPrecisionString(t *testing.T) {
	require.Equal(t, "single", core.Single.String())
	require.Equal(t, "double", core.Double.String())
	require.Equal(t, "extended", core.Extended.String())
	require.Equal(t, "unknown", core.Precision(42).String())
}

// TestPrecisionValid verifies that exactly the three published tags validate.
func TestPrecisionValid(t *testing.T) {
	require.True(t, core.Single.Valid())
	require.True(t, core.Double.Valid())
	require.True(t, core.Extended.Valid())
	require.False(t, core.Precision(-1).Valid())
	require.False(t, core.Precision(3).Valid())
}

// TestEps checks the unit roundoff per lane and NaN for unknown tags.
func TestEps(t *testing.T) {
	require.Equal(t, math.Nextafter32(1, 2)-1, float32(core.Eps(core.Single)))
	require.Equal(t, math.Nextafter(1, 2)-1, core.Eps(core.Double))
	require.Equal(t, math.Ldexp(1, -63), core.Eps(core.Extended))
	require.True(t, math.IsNaN(core.Eps(core.Precision(7))))
}

// TestRoundSingle verifies the float32 round-trip narrows exactly once.
func TestRoundSingle(t *testing.T) {
	x := 0.1 // not representable at either width
	require.Equal(t, float64(float32(x)), core.Round(x, core.Single))
	require.Equal(t, x, core.Round(x, core.Double))
	require.Equal(t, x, core.Round(x, core.Extended))
	require.True(t, math.IsNaN(core.Round(x, core.Precision(9))))
}

// TestExtendedRoundTrip checks that every float64 survives the Extended lane
// bit-exact: a 64-bit mantissa strictly contains the 53-bit double mantissa.
func TestExtendedRoundTrip(t *testing.T) {
	for _, x := range []float64{0, 1, -1, 0.1, math.Pi, 1e-300, -3.5e300} {
		require.Equal(t, x, core.RoundBack(core.NewExtended(x)))
	}
}

// TestExtendedVec verifies element count and values of the lifted vector.
func TestExtendedVec(t *testing.T) {
	xs := []float64{1, 2.5, -3}
	v := core.ExtendedVec(xs)
	require.Len(t, v, len(xs))
	for i, x := range xs {
		require.Equal(t, x, core.RoundBack(v[i]))
	}
}

// TestRoundBackNil ensures a nil Extended value stands for NaN.
func TestRoundBackNil(t *testing.T) {
	require.True(t, math.IsNaN(core.RoundBack(nil)))
}
