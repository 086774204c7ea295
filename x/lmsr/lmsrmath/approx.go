package lmsrmath

import (
	sdkmath "cosmossdk.io/math"
)

// BalancedExactIn evaluates the exact-in closed form by polynomial surrogate
// when a two-asset pool is near balance and the trade is small. It returns
// ok=false whenever any precondition fails, in which case the caller must
// forward to the exact engine - the surrogate is a pure optimization and
// never a semantic change. The only hard error is a limit ratio at or below
// the current pair ratio, which is rejected on either path.
//
// Preconditions, all required:
//   - exactly two assets
//   - |delta| <= BalancedImbalanceBound, delta = (q_i-q_j)/b
//   - 0 < tau <= BalancedTradeBound, tau = a/b
//   - a supplied limit must satisfy limit > r0 and
//     |limit/r0 - 1| <= BalancedLimitBound
//   - the approximated output must not exceed q_j
//
// Tiering: quadratic surrogate for tau <= BalancedQuadraticTier, with a
// cubic correction term above it.
func BalancedExactIn(q []sdkmath.LegacyDec, i, j int, amountIn, b sdkmath.LegacyDec, limit *sdkmath.LegacyDec) (Quote, bool, error) {
	if len(q) != 2 {
		return Quote{}, false, nil
	}
	if i < 0 || j < 0 || i >= len(q) || j >= len(q) || i == j {
		return Quote{}, false, nil
	}
	if amountIn.IsNil() || !amountIn.IsPositive() || !b.IsPositive() {
		return Quote{}, false, nil
	}

	delta := q[i].Sub(q[j]).Quo(b)
	if delta.Abs().GT(BalancedImbalanceBound) {
		return Quote{}, false, nil
	}
	tau := amountIn.Quo(b)
	if tau.GT(BalancedTradeBound) {
		return Quote{}, false, nil
	}

	// r0 = e^delta by cubic series; |delta| <= 0.01 keeps the truncation
	// far below the surrogate's own error budget.
	one := sdkmath.LegacyOneDec()
	deltaSq := delta.Mul(delta)
	r0 := one.Add(delta).
		Add(deltaSq.QuoInt64(2)).
		Add(deltaSq.Mul(delta).QuoInt64(6))

	limited := false
	in := amountIn
	if limit != nil {
		if limit.IsNil() || limit.LTE(r0) {
			return Quote{}, false, ErrLimitNotAboveCurrent.Wrapf("limit %s <= current ratio %s", limit, r0)
		}
		eps := limit.Quo(r0).Sub(one)
		if eps.GT(BalancedLimitBound) {
			// The limit is too far out for the series; compute it exactly.
			return Quote{}, false, nil
		}
		// a_lim = b*ln(limit/r0) by the ln(1+eps) series.
		epsSq := eps.Mul(eps)
		lnSeries := eps.Sub(epsSq.QuoInt64(2)).Add(epsSq.Mul(eps).QuoInt64(3))
		aLim := b.Mul(lnSeries)
		if aLim.LT(in) {
			in = aLim
			tau = in.Quo(b)
			limited = true
		}
	}

	// y/b = c1*tau - c2*tau^2 [+ c3*tau^3], the Taylor expansion of
	// ln(1 + r0*(1-e^(-tau))) around tau = 0:
	//   c1 = r0, c2 = (r0 + r0^2)/2, c3 = r0/6 + r0^2/2 + r0^3/3.
	r0Sq := r0.Mul(r0)
	c1 := r0
	c2 := r0.Add(r0Sq).QuoInt64(2)
	tauSq := tau.Mul(tau)
	yOverB := c1.Mul(tau).Sub(c2.Mul(tauSq))
	if tau.GT(BalancedQuadraticTier) {
		c3 := r0.QuoInt64(6).Add(r0Sq.QuoInt64(2)).Add(r0Sq.Mul(r0).QuoInt64(3))
		yOverB = yOverB.Add(c3.Mul(tauSq).Mul(tau))
	}
	out := b.Mul(yOverB)

	if !out.IsPositive() || out.GT(q[j]) {
		// Exact cap-and-invert handles inventory exhaustion.
		return Quote{}, false, nil
	}
	return Quote{AmountIn: in, AmountOut: out, Limited: limited}, true, nil
}
