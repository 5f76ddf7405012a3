package nodes_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlnum/nodes"
)

// TestUniformGuards verifies the sentinel errors.
func TestUniformGuards(t *testing.T) {
	_, err := nodes.Uniform(0, 0, 1)
	require.ErrorIs(t, err, nodes.ErrNodeCount)
	_, err = nodes.Uniform(3, 1, 1)
	require.ErrorIs(t, err, nodes.ErrInterval)
	_, err = nodes.Uniform(3, 2, 1)
	require.ErrorIs(t, err, nodes.ErrInterval)
	_, err = nodes.Chebyshev(0, 0, 1)
	require.ErrorIs(t, err, nodes.ErrNodeCount)
	_, err = nodes.Chebyshev(3, 1, 0)
	require.ErrorIs(t, err, nodes.ErrInterval)
}

// TestUniformMidpoint checks the n = 1 special case.
func TestUniformMidpoint(t *testing.T) {
	xs, err := nodes.Uniform(1, -2, 4)
	require.NoError(t, err)
	require.Equal(t, []float64{1}, xs)
}

// TestUniformEndpointsExact verifies x0 == a and x[n-1] == b bit-for-bit,
// strict monotonicity and spacing within one ULP for a spread of n.
func TestUniformEndpointsExact(t *testing.T) {
	a, b := -2*math.Pi*math.Pi, math.Pi*math.Pi
	for _, n := range []int{2, 3, 7, 20, 81, 1000} {
		xs, err := nodes.Uniform(n, a, b)
		require.NoError(t, err)
		require.Len(t, xs, n)
		require.Equal(t, a, xs[0])
		require.Equal(t, b, xs[n-1])

		h := (b - a) / float64(n-1)
		for i := 1; i < n; i++ {
			require.Greater(t, xs[i], xs[i-1], "n=%d i=%d", n, i)
			// spacing within one ULP of h (the last gap absorbs the endpoint fix)
			require.InDelta(t, h, xs[i]-xs[i-1], math.Abs(h)*1e-12, "n=%d i=%d", n, i)
		}
	}
}

// TestChebyshevInteriorAscending verifies the open-interval property,
// ascending order and midpoint symmetry of mirrored nodes.
func TestChebyshevInteriorAscending(t *testing.T) {
	a, b := -1.4, 0.6
	mid := (a + b) / 2
	for _, n := range []int{1, 2, 5, 20, 64} {
		xs, err := nodes.Chebyshev(n, a, b)
		require.NoError(t, err)
		require.Len(t, xs, n)

		require.Greater(t, xs[0], a)
		require.Less(t, xs[n-1], b)
		for i := 1; i < n; i++ {
			require.Greater(t, xs[i], xs[i-1], "n=%d i=%d", n, i)
		}
		// mirror symmetry: x_i + x_{n-1-i} == 2·mid
		for i := 0; i < n/2; i++ {
			require.InDelta(t, 2*mid, xs[i]+xs[n-1-i], 1e-12, "n=%d i=%d", n, i)
		}
	}
}

// TestChebyshevKnownValues pins the n = 2 roots on [-1, 1]: ±cos(π/4).
func TestChebyshevKnownValues(t *testing.T) {
	xs, err := nodes.Chebyshev(2, -1, 1)
	require.NoError(t, err)
	c := math.Cos(math.Pi / 4)
	require.InDelta(t, -c, xs[0], 1e-15)
	require.InDelta(t, c, xs[1], 1e-15)
}
