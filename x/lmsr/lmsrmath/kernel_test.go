package lmsrmath_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/softmax-labs/softswap/x/lmsr/lmsrmath"
)

func decSlice(vals ...string) []sdkmath.LegacyDec {
	out := make([]sdkmath.LegacyDec, len(vals))
	for k, v := range vals {
		out[k] = dec(v)
	}
	return out
}

func TestLiquidityScale(t *testing.T) {
	b, err := lmsrmath.LiquidityScale(decSlice("1000", "1000"), dec("0.1"))
	require.NoError(t, err)
	require.True(t, b.Equal(dec("200")), "b = %s", b)

	b, err = lmsrmath.LiquidityScale(decSlice("1000", "1000", "1000"), dec("0.1"))
	require.NoError(t, err)
	require.True(t, b.Equal(dec("300")), "b = %s", b)

	_, err = lmsrmath.LiquidityScale(decSlice("0", "0"), dec("0.1"))
	require.ErrorIs(t, err, lmsrmath.ErrZeroLiquidity)

	_, err = lmsrmath.LiquidityScale(decSlice("1000", "1000"), sdkmath.LegacyZeroDec())
	require.ErrorIs(t, err, lmsrmath.ErrNonPositiveDomain)
}

func TestCostLevelBalancedPool(t *testing.T) {
	// C = b*(q/b + ln n) for a uniform pool; here 200*(5 + ln 2).
	c, err := lmsrmath.CostLevel(decSlice("1000", "1000"), dec("200"))
	require.NoError(t, err)
	requireDecNear(t, dec("1138.629436111989062"), c, dec("0.000000001"))
}

func TestCostLevelIncreasesWithBalances(t *testing.T) {
	b := dec("200")
	lo, err := lmsrmath.CostLevel(decSlice("1000", "1000"), b)
	require.NoError(t, err)
	hi, err := lmsrmath.CostLevel(decSlice("1100", "1000"), b)
	require.NoError(t, err)
	require.True(t, hi.GT(lo))
}

func TestPairRatio(t *testing.T) {
	q := decSlice("1000", "1000")
	b := dec("200")

	r, err := lmsrmath.PairRatio(q, 0, 1, b)
	require.NoError(t, err)
	require.True(t, r.Equal(sdkmath.LegacyOneDec()), "balanced pool ratio = %s", r)

	q = decSlice("1100", "900")
	r01, err := lmsrmath.PairRatio(q, 0, 1, b)
	require.NoError(t, err)
	r10, err := lmsrmath.PairRatio(q, 1, 0, b)
	require.NoError(t, err)
	// Reciprocal pair.
	requireDecNear(t, sdkmath.LegacyOneDec(), r01.Mul(r10), dec("0.000000000001"))

	_, err = lmsrmath.PairRatio(q, 0, 0, b)
	require.ErrorIs(t, err, lmsrmath.ErrDomain)
	_, err = lmsrmath.PairRatio(q, 0, 2, b)
	require.ErrorIs(t, err, lmsrmath.ErrDomain)
}

func TestPairRatioScaleInvariance(t *testing.T) {
	// q -> lambda*q with b = kappa*S scaling alongside leaves the ratio fixed.
	kappa := dec("0.1")
	q := decSlice("1300", "700", "500")

	b, err := lmsrmath.LiquidityScale(q, kappa)
	require.NoError(t, err)
	r, err := lmsrmath.PairRatio(q, 0, 1, b)
	require.NoError(t, err)

	for _, lambda := range []string{"2", "10", "0.5"} {
		scaled := make([]sdkmath.LegacyDec, len(q))
		for k := range q {
			scaled[k] = q[k].Mul(dec(lambda))
		}
		sb, err := lmsrmath.LiquidityScale(scaled, kappa)
		require.NoError(t, err)
		sr, err := lmsrmath.PairRatio(scaled, 0, 1, sb)
		require.NoError(t, err)
		requireDecNear(t, r, sr, dec("0.000000001"))
	}
}
