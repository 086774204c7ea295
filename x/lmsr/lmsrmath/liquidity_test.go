package lmsrmath_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/softmax-labs/softswap/x/lmsr/lmsrmath"
)

func TestProportionalDepositWithdrawCycle(t *testing.T) {
	q := decSlice("1000", "500", "250")

	// Grow by 25%, then burn the matching fraction of the grown pool: the
	// withdrawal pays back exactly what was deposited.
	deposit, err := lmsrmath.ProportionalDeposit(q, dec("0.25"))
	require.NoError(t, err)
	require.True(t, deposit[0].Equal(dec("250")))
	require.True(t, deposit[1].Equal(dec("125")))
	require.True(t, deposit[2].Equal(dec("62.5")))

	grown := make([]sdkmath.LegacyDec, len(q))
	for k := range q {
		grown[k] = q[k].Add(deposit[k])
	}

	withdraw, err := lmsrmath.ProportionalWithdraw(grown, dec("0.2"))
	require.NoError(t, err)
	for k := range q {
		requireDecNear(t, deposit[k], withdraw[k], dec("0.000000000001"))
	}
}

func TestProportionalDomain(t *testing.T) {
	q := decSlice("1000", "1000")

	_, err := lmsrmath.ProportionalDeposit(q, sdkmath.LegacyZeroDec())
	require.ErrorIs(t, err, lmsrmath.ErrDomain)

	_, err = lmsrmath.ProportionalWithdraw(q, dec("1.5"))
	require.ErrorIs(t, err, lmsrmath.ErrDomain)

	// Full burn is allowed.
	_, err = lmsrmath.ProportionalWithdraw(q, sdkmath.LegacyOneDec())
	require.NoError(t, err)
}

func TestSingleAssetDepositBalancedPool(t *testing.T) {
	// Three-asset uniform pool, kappa 0.1, b = 300. Depositing 50 of asset 0
	// must consume the offer to within the solver tolerance.
	q := decSlice("1000", "1000", "1000")
	kappa := dec("0.1")

	res, err := lmsrmath.SingleAssetDeposit(q, 0, dec("50"), kappa)
	require.NoError(t, err)
	require.True(t, res.Alpha.IsPositive())
	requireDecNear(t, dec("50"), res.Used, dec("0.01"))
	require.True(t, res.Used.LTE(dec("50").Add(lmsrmath.SolverTolerance)), "consumed more than offered")
	require.Greater(t, res.Iterations, 0)

	// The single-asset route pays conversion cost: the realized growth is
	// below the proportional alpha = 50/3000 for the same value.
	require.True(t, res.Alpha.LT(dec("50").Quo(dec("3000"))))
}

func TestSingleAssetDepositMonotoneInDeposit(t *testing.T) {
	q := decSlice("1000", "1000", "1000")
	kappa := dec("0.1")

	prev := sdkmath.LegacyZeroDec()
	for _, d := range []string{"10", "50", "100", "200"} {
		res, err := lmsrmath.SingleAssetDeposit(q, 0, dec(d), kappa)
		require.NoError(t, err)
		require.True(t, res.Alpha.GT(prev), "alpha not increasing at deposit=%s", d)
		prev = res.Alpha
	}
}

func TestSingleAssetDepositDomain(t *testing.T) {
	q := decSlice("1000", "1000")

	_, err := lmsrmath.SingleAssetDeposit(q, 2, dec("50"), dec("0.1"))
	require.ErrorIs(t, err, lmsrmath.ErrDomain)

	_, err = lmsrmath.SingleAssetDeposit(q, 0, sdkmath.LegacyZeroDec(), dec("0.1"))
	require.ErrorIs(t, err, lmsrmath.ErrDomain)

	_, err = lmsrmath.SingleAssetDeposit(decSlice("0", "0"), 0, dec("50"), dec("0.1"))
	require.ErrorIs(t, err, lmsrmath.ErrZeroLiquidity)
}

func TestSingleAssetWithdraw(t *testing.T) {
	q := decSlice("1000", "1000", "1000")
	kappa := dec("0.1")
	alpha := dec("0.1")

	res, err := lmsrmath.SingleAssetWithdraw(q, 0, alpha, kappa)
	require.NoError(t, err)

	// Payout exceeds the direct term (the converted legs add value) but the
	// conversion cost keeps it below the proportional value alpha*S.
	direct := alpha.Mul(q[0])
	require.True(t, res.Payout.GT(direct))
	require.True(t, res.Payout.LT(alpha.Mul(lmsrmath.Sum(q))))

	require.Len(t, res.Contributions, 2)
	for _, c := range res.Contributions {
		require.False(t, c.Skipped)
		require.True(t, c.Amount.IsPositive())
	}
}

func TestSingleAssetWithdrawFullBurn(t *testing.T) {
	q := decSlice("1000", "1000")

	// alpha = 1 leaves no pool to swap against; payout is the direct term.
	res, err := lmsrmath.SingleAssetWithdraw(q, 0, sdkmath.LegacyOneDec(), dec("0.1"))
	require.NoError(t, err)
	require.True(t, res.Payout.Equal(dec("1000")))
	require.Empty(t, res.Contributions)
}

func TestSingleAssetWithdrawDomain(t *testing.T) {
	q := decSlice("1000", "1000")

	_, err := lmsrmath.SingleAssetWithdraw(q, 0, dec("1.1"), dec("0.1"))
	require.ErrorIs(t, err, lmsrmath.ErrDomain)

	_, err = lmsrmath.SingleAssetWithdraw(q, 3, dec("0.5"), dec("0.1"))
	require.ErrorIs(t, err, lmsrmath.ErrDomain)
}

func TestSingleAssetCycleDoesNotProfit(t *testing.T) {
	// Deposit 50 single-asset, then burn the realized alpha back into the
	// same asset on the grown pool: the round trip must not mint value.
	q := decSlice("1000", "1000", "1000")
	kappa := dec("0.1")

	dep, err := lmsrmath.SingleAssetDeposit(q, 0, dec("50"), kappa)
	require.NoError(t, err)

	grown := make([]sdkmath.LegacyDec, len(q))
	onePlus := sdkmath.LegacyOneDec().Add(dep.Alpha)
	for k := range q {
		grown[k] = q[k].Mul(onePlus)
	}

	burnFrac := dep.Alpha.Quo(onePlus)
	wd, err := lmsrmath.SingleAssetWithdraw(grown, 0, burnFrac, kappa)
	require.NoError(t, err)
	require.True(t, wd.Payout.LTE(dep.Used.Add(lmsrmath.SolverTolerance)),
		"cycle paid out %s for %s in", wd.Payout, dep.Used)
}
