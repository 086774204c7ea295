package lmsrmath

import (
	sdkmath "cosmossdk.io/math"
)

// Quote is the result of a two-asset swap evaluation. AmountIn is the input
// actually consumed, which is less than the requested input when the quote
// was truncated at a limit ratio or at the available output balance.
type Quote struct {
	AmountIn  sdkmath.LegacyDec
	AmountOut sdkmath.LegacyDec
	Capped    bool // output truncated at the available balance q_j
	Limited   bool // input truncated at the caller's limit ratio
}

// ExactIn quotes an i->j swap for a fixed input amount a >= 0, holding b at
// its pre-trade value:
//
//	y(a) = b * ln(1 + r0*(1 - e^(-a/b)))
//
// y is strictly increasing and concave with y(0)=0 and asymptote b*ln(1+r0).
// If the unconstrained output would exceed the available balance q_j the
// quote is capped at q_j and the input that exactly produces it is solved
// by inversion (cap-and-invert).
func ExactIn(q []sdkmath.LegacyDec, i, j int, amountIn, b sdkmath.LegacyDec) (Quote, error) {
	if amountIn.IsNil() || amountIn.IsNegative() {
		return Quote{}, ErrDomain.Wrapf("input amount %s must be non-negative", amountIn)
	}
	r0, err := PairRatio(q, i, j, b)
	if err != nil {
		return Quote{}, err
	}
	if amountIn.IsZero() {
		return Quote{AmountIn: sdkmath.LegacyZeroDec(), AmountOut: sdkmath.LegacyZeroDec()}, nil
	}

	invB := sdkmath.LegacyOneDec().Quo(b)
	eNeg, err := SafeExp(amountIn.Neg().Mul(invB))
	if err != nil {
		return Quote{}, err
	}
	inner := sdkmath.LegacyOneDec().Add(r0.Mul(sdkmath.LegacyOneDec().Sub(eNeg)))
	lnInner, err := SafeLn(inner)
	if err != nil {
		return Quote{}, err
	}
	out := b.Mul(lnInner)

	if out.GT(q[j]) {
		// Inventory cap beats extrapolation: pin the output to q_j and
		// invert for the input that exactly produces it.
		in, err := invertForOutput(r0, q[j], b, invB)
		if err != nil {
			return Quote{}, err
		}
		return Quote{AmountIn: in, AmountOut: q[j], Capped: true}, nil
	}
	return Quote{AmountIn: amountIn, AmountOut: out}, nil
}

// ExactOut returns the input a(y) required to obtain a target output y:
//
//	a(y) = b * ln(r0 / (r0 + 1 - e^(y/b)))
//
// a is strictly increasing and convex on [0, b*ln(1+r0)). Targets at or
// beyond the asymptote make the denominator non-positive and fail with
// ErrInfeasibleOutput.
func ExactOut(q []sdkmath.LegacyDec, i, j int, amountOut, b sdkmath.LegacyDec) (sdkmath.LegacyDec, error) {
	if amountOut.IsNil() || amountOut.IsNegative() {
		return sdkmath.LegacyDec{}, ErrDomain.Wrapf("output amount %s must be non-negative", amountOut)
	}
	r0, err := PairRatio(q, i, j, b)
	if err != nil {
		return sdkmath.LegacyDec{}, err
	}
	if amountOut.IsZero() {
		return sdkmath.LegacyZeroDec(), nil
	}
	invB := sdkmath.LegacyOneDec().Quo(b)
	return exactOutWithRatio(r0, amountOut, b, invB)
}

// exactOutWithRatio is ExactOut with the pair ratio already evaluated, for
// callers that hold r0 fixed across several targets (the liquidity solver).
func exactOutWithRatio(r0, amountOut, b, invB sdkmath.LegacyDec) (sdkmath.LegacyDec, error) {
	eY, err := SafeExp(amountOut.Mul(invB))
	if err != nil {
		return sdkmath.LegacyDec{}, err
	}
	den := r0.Add(sdkmath.LegacyOneDec()).Sub(eY)
	if !den.IsPositive() {
		return sdkmath.LegacyDec{}, ErrInfeasibleOutput.Wrapf("target %s at or beyond asymptote", amountOut)
	}
	lnArg, err := SafeLn(r0.Quo(den))
	if err != nil {
		return sdkmath.LegacyDec{}, err
	}
	return b.Mul(lnArg), nil
}

// invertForOutput solves the capacity-cap inversion a_cap such that the
// exact-in quote equals exactly the pinned output.
func invertForOutput(r0, out, b, invB sdkmath.LegacyDec) (sdkmath.LegacyDec, error) {
	return exactOutWithRatio(r0, out, b, invB)
}

// ToLimit truncates an i->j swap at the caller's maximum acceptable pair
// ratio. For limit > r0:
//
//	a_lim = b * ln(limit/r0)
//	y_lim = b * ln(1 + r0*(1 - r0/limit))
//
// The returned pair is the unique point where the post-trade ratio reaches
// the limit. limit <= r0 fails with ErrLimitNotAboveCurrent. If the limited
// output still exceeds the available balance q_j, the inventory cap wins.
func ToLimit(q []sdkmath.LegacyDec, i, j int, limit, b sdkmath.LegacyDec) (Quote, error) {
	r0, err := PairRatio(q, i, j, b)
	if err != nil {
		return Quote{}, err
	}
	if limit.IsNil() || limit.LTE(r0) {
		return Quote{}, ErrLimitNotAboveCurrent.Wrapf("limit %s <= current ratio %s", limit, r0)
	}

	lnRatio, err := SafeLn(limit.Quo(r0))
	if err != nil {
		return Quote{}, err
	}
	aLim := b.Mul(lnRatio)

	inner := sdkmath.LegacyOneDec().Add(r0.Mul(sdkmath.LegacyOneDec().Sub(r0.Quo(limit))))
	lnInner, err := SafeLn(inner)
	if err != nil {
		return Quote{}, err
	}
	yLim := b.Mul(lnInner)

	if yLim.GT(q[j]) {
		invB := sdkmath.LegacyOneDec().Quo(b)
		in, err := invertForOutput(r0, q[j], b, invB)
		if err != nil {
			return Quote{}, err
		}
		return Quote{AmountIn: in, AmountOut: q[j], Capped: true, Limited: true}, nil
	}
	return Quote{AmountIn: aLim, AmountOut: yLim, Limited: true}, nil
}
