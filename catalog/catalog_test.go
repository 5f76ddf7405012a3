package catalog_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlnum/catalog"
)

// TestLookupUnknown verifies the sentinel for unpublished IDs.
func TestLookupUnknown(t *testing.T) {
	_, err := catalog.Lookup(catalog.FuncID("nope"))
	require.ErrorIs(t, err, catalog.ErrUnknownFunc)
}

// TestAllStableOrder verifies All returns every entry in ascending ID order.
func TestAllStableOrder(t *testing.T) {
	fs := catalog.All()
	require.Len(t, fs, 6)
	for i := 1; i < len(fs); i++ {
		require.Less(t, fs[i-1].ID, fs[i].ID)
	}
}

// TestP8FormsAgreeAwayFromRoot checks the four renditions agree to double
// precision away from the multiplicity-8 root.
func TestP8FormsAgreeAwayFromRoot(t *testing.T) {
	ids := []catalog.FuncID{catalog.P8Naive, catalog.P8Horner, catalog.P8Power, catalog.P8ExpLog}
	for _, x := range []float64{0.5, 0.9, 1.5, 2.0, -1.0} {
		ref := math.Pow(x-1, 8)
		for _, id := range ids {
			f, err := catalog.Lookup(id)
			require.NoError(t, err)
			require.InEpsilon(t, ref, f.Eval(x), 1e-9, "form %s at x=%v", id, x)
		}
	}
}

// TestP8ExpLogSingularity verifies the log form is NaN exactly at x = 1
// while the algebraic forms return zero there.
func TestP8ExpLogSingularity(t *testing.T) {
	el, err := catalog.Lookup(catalog.P8ExpLog)
	require.NoError(t, err)
	require.True(t, math.IsNaN(el.Eval(1)))

	for _, id := range []catalog.FuncID{catalog.P8Horner, catalog.P8Power} {
		f, err := catalog.Lookup(id)
		require.NoError(t, err)
		require.Equal(t, 0.0, f.Eval(1))
	}
}

// TestF1Derivative cross-checks the published derivative against a centered
// finite difference at a few points of the study interval.
func TestF1Derivative(t *testing.T) {
	f, err := catalog.Lookup(catalog.F1)
	require.NoError(t, err)
	require.True(t, f.HasDeriv())

	const h = 1e-6
	for _, x := range []float64{-5, -1, 0, 1, 4} {
		fd := (f.Eval(x+h) - f.Eval(x-h)) / (2 * h)
		require.InDelta(t, fd, f.Deriv(x), 1e-5, "x=%v", x)
	}
}

// TestF2Roots verifies the two known zeros of x^14 + x^13.
func TestF2Roots(t *testing.T) {
	f, err := catalog.Lookup(catalog.F2)
	require.NoError(t, err)
	require.Equal(t, 0.0, f.Eval(0))
	require.InDelta(t, 0.0, f.Eval(-1), 1e-15)
	// derivative vanishes at 0 too (multiplicity 13) — the Newton stall case
	require.Equal(t, 0.0, f.Deriv(0))
}

// TestIntervals sanity-checks A < B on every entry.
func TestIntervals(t *testing.T) {
	for _, f := range catalog.All() {
		require.Less(t, f.A, f.B, "entry %s", f.ID)
	}
}

// TestP8CoeffsCopy ensures the coefficient accessor hands out copies.
func TestP8CoeffsCopy(t *testing.T) {
	c := catalog.P8Coeffs()
	require.Equal(t, []float64{1, -8, 28, -56, 70, -56, 28, -8, 1}, c)
	c[0] = 99
	require.Equal(t, 1.0, catalog.P8Coeffs()[0])
}
