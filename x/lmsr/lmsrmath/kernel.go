package lmsrmath

import (
	sdkmath "cosmossdk.io/math"
)

// Sum returns S(q), the total of all balances.
func Sum(q []sdkmath.LegacyDec) sdkmath.LegacyDec {
	s := sdkmath.LegacyZeroDec()
	for _, b := range q {
		s = s.Add(b)
	}
	return s
}

// LiquidityScale returns b(q) = kappa * S(q), the state-dependent liquidity
// parameter. A pool with zero total balance has no defined prices and fails
// with ErrZeroLiquidity.
func LiquidityScale(q []sdkmath.LegacyDec, kappa sdkmath.LegacyDec) (sdkmath.LegacyDec, error) {
	if kappa.IsNil() || !kappa.IsPositive() {
		return sdkmath.LegacyDec{}, ErrNonPositiveDomain.Wrapf("kappa %s must be strictly positive", kappa)
	}
	s := Sum(q)
	if !s.IsPositive() {
		return sdkmath.LegacyDec{}, ErrZeroLiquidity.Wrapf("total balance %s", s)
	}
	return kappa.Mul(s), nil
}

// CostLevel evaluates the LMSR cost function
//
//	C(q) = b * (M + ln sum_i e^(q_i/b - M)),  M = max_i q_i/b
//
// with the max subtracted for numerical stability. It is used for invariant
// verification and tests only; the swap hot path works on pairwise ratios.
func CostLevel(q []sdkmath.LegacyDec, b sdkmath.LegacyDec) (sdkmath.LegacyDec, error) {
	if !b.IsPositive() {
		return sdkmath.LegacyDec{}, ErrZeroLiquidity.Wrapf("liquidity scale %s", b)
	}
	if len(q) == 0 {
		return sdkmath.LegacyDec{}, ErrZeroLiquidity.Wrap("empty balance vector")
	}

	invB := sdkmath.LegacyOneDec().Quo(b)
	max := q[0].Mul(invB)
	for _, qi := range q[1:] {
		if v := qi.Mul(invB); v.GT(max) {
			max = v
		}
	}

	sum := sdkmath.LegacyZeroDec()
	for _, qi := range q {
		e, err := SafeExp(qi.Mul(invB).Sub(max))
		if err != nil {
			return sdkmath.LegacyDec{}, err
		}
		sum = sum.Add(e)
	}
	lnSum, err := SafeLn(sum)
	if err != nil {
		return sdkmath.LegacyDec{}, err
	}
	return b.Mul(max.Add(lnSum)), nil
}

// PairRatio returns r0 = e^((q_i-q_j)/b), the instantaneous price ratio
// between assets i and j. This is the single primitive the swap engine
// consumes; it is evaluated once per swap step and cached by the caller.
// Proportional rescaling q -> lambda*q leaves it unchanged because b scales
// by the same lambda.
func PairRatio(q []sdkmath.LegacyDec, i, j int, b sdkmath.LegacyDec) (sdkmath.LegacyDec, error) {
	if i < 0 || j < 0 || i >= len(q) || j >= len(q) || i == j {
		return sdkmath.LegacyDec{}, ErrDomain.Wrapf("invalid pair indexes (%d, %d) for %d assets", i, j, len(q))
	}
	return Ratio(q[i], q[j], b)
}
