package lmsrmath_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/softmax-labs/softswap/x/lmsr/lmsrmath"
)

func TestBalancedExactInQuadraticTier(t *testing.T) {
	q, b := refPool()

	// tau = 0.05, well inside the quadratic tier. The surrogate must track
	// the exact engine within the cubic remainder budget.
	quote, ok, err := lmsrmath.BalancedExactIn(q, 0, 1, dec("10"), b, nil)
	require.NoError(t, err)
	require.True(t, ok)

	exact, err := lmsrmath.ExactIn(q, 0, 1, dec("10"), b)
	require.NoError(t, err)
	requireDecNear(t, exact.AmountOut, quote.AmountOut, dec("0.05"))
	require.True(t, quote.AmountIn.Equal(dec("10")))
}

func TestBalancedExactInCubicTier(t *testing.T) {
	q, b := refPool()

	// tau = 0.3 crosses into the cubic tier; a looser budget applies.
	quote, ok, err := lmsrmath.BalancedExactIn(q, 0, 1, dec("60"), b, nil)
	require.NoError(t, err)
	require.True(t, ok)

	exact, err := lmsrmath.ExactIn(q, 0, 1, dec("60"), b)
	require.NoError(t, err)
	requireDecNear(t, exact.AmountOut, quote.AmountOut, dec("3"))
}

func TestBalancedExactInSmallImbalance(t *testing.T) {
	// delta = 0.01 sits exactly on the admission boundary.
	q := decSlice("1001", "999")
	b := dec("200")

	quote, ok, err := lmsrmath.BalancedExactIn(q, 0, 1, dec("10"), b, nil)
	require.NoError(t, err)
	require.True(t, ok)

	exact, err := lmsrmath.ExactIn(q, 0, 1, dec("10"), b)
	require.NoError(t, err)
	requireDecNear(t, exact.AmountOut, quote.AmountOut, dec("0.05"))
}

func TestBalancedExactInLimit(t *testing.T) {
	q, b := refPool()

	// limit/r0 = 1.05, inside the series bound. A request beyond a_lim is
	// truncated to it.
	limit := dec("1.05")
	quote, ok, err := lmsrmath.BalancedExactIn(q, 0, 1, dec("20"), b, &limit)
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, quote.Limited)

	exact, err := lmsrmath.ToLimit(q, 0, 1, limit, b)
	require.NoError(t, err)
	requireDecNear(t, exact.AmountIn, quote.AmountIn, dec("0.01"))
	requireDecNear(t, exact.AmountOut, quote.AmountOut, dec("0.05"))
}

func TestBalancedExactInLimitNotBinding(t *testing.T) {
	q, b := refPool()

	// a_lim ~ 9.76 for limit 1.05; a request below it passes untouched.
	limit := dec("1.05")
	quote, ok, err := lmsrmath.BalancedExactIn(q, 0, 1, dec("5"), b, &limit)
	require.NoError(t, err)
	require.True(t, ok)
	require.False(t, quote.Limited)
	require.True(t, quote.AmountIn.Equal(dec("5")))
}

func TestBalancedExactInStaleLimit(t *testing.T) {
	q, b := refPool()

	// A limit at or below the current ratio is a hard error on either path,
	// never a silent fallback.
	limit := sdkmath.LegacyOneDec()
	_, _, err := lmsrmath.BalancedExactIn(q, 0, 1, dec("10"), b, &limit)
	require.ErrorIs(t, err, lmsrmath.ErrLimitNotAboveCurrent)
}

func TestBalancedExactInFallbacks(t *testing.T) {
	b := dec("200")
	farLimit := dec("1.5")

	tests := []struct {
		name  string
		q     []sdkmath.LegacyDec
		i, j  int
		in    string
		limit *sdkmath.LegacyDec
	}{
		{"three assets", decSlice("1000", "1000", "1000"), 0, 1, "10", nil},
		{"imbalanced", decSlice("1200", "800"), 0, 1, "10", nil},
		{"trade too large", decSlice("1000", "1000"), 0, 1, "150", nil},
		{"limit too far", decSlice("1000", "1000"), 0, 1, "10", &farLimit},
		{"zero input", decSlice("1000", "1000"), 0, 1, "0", nil},
		{"same index", decSlice("1000", "1000"), 1, 1, "10", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok, err := lmsrmath.BalancedExactIn(tt.q, tt.i, tt.j, dec(tt.in), b, tt.limit)
			require.NoError(t, err)
			require.False(t, ok, "surrogate accepted a case reserved for the exact engine")
		})
	}
}

func TestBalancedExactInOutputExceedsBalance(t *testing.T) {
	// Balanced but shallow: the approximated output overruns q_j, which only
	// the exact cap-and-invert path may handle.
	q := decSlice("10", "10")
	b := dec("100")

	_, ok, err := lmsrmath.BalancedExactIn(q, 0, 1, dec("30"), b, nil)
	require.NoError(t, err)
	require.False(t, ok)
}
