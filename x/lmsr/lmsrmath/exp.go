package lmsrmath

import (
	sdkmath "cosmossdk.io/math"
)

// 18-decimal constants for range reduction.
var (
	eConst   = sdkmath.LegacyMustNewDecFromStr("2.718281828459045235")
	ln2Const = sdkmath.LegacyMustNewDecFromStr("0.693147180559945309")
	twoDec   = sdkmath.LegacyNewDec(2)
)

// SafeExp evaluates e^x in fixed point. Arguments outside
// [MinExpArg, MaxExpArg] fail with ErrDomain rather than overflowing or
// silently saturating.
func SafeExp(x sdkmath.LegacyDec) (sdkmath.LegacyDec, error) {
	if x.IsNil() {
		return sdkmath.LegacyDec{}, ErrDomain.Wrap("nil exp argument")
	}
	if x.GT(MaxExpArg) || x.LT(MinExpArg) {
		return sdkmath.LegacyDec{}, ErrDomain.Wrapf("exp argument %s outside [%s, %s]", x, MinExpArg, MaxExpArg)
	}
	if x.IsNegative() {
		// e^x = 1 / e^(-x); the reciprocal keeps the series argument small.
		pos, err := SafeExp(x.Neg())
		if err != nil {
			return sdkmath.LegacyDec{}, err
		}
		return sdkmath.LegacyOneDec().Quo(pos), nil
	}

	// Split x = n + f with n integer and f in [0,1), then
	// e^x = e^n * e^f. The integer part uses repeated squaring via Power;
	// the fraction converges in a few dozen Taylor terms.
	n := x.TruncateInt64()
	frac := x.Sub(sdkmath.LegacyNewDec(n))

	res := expFrac(frac)
	if n > 0 {
		res = res.Mul(eConst.Power(uint64(n)))
	}
	return res, nil
}

// expFrac evaluates e^f for f in [0,1) by Taylor series.
func expFrac(f sdkmath.LegacyDec) sdkmath.LegacyDec {
	sum := sdkmath.LegacyOneDec()
	term := sdkmath.LegacyOneDec()
	for i := int64(1); i <= expTaylorTerms; i++ {
		term = term.Mul(f).QuoInt64(i)
		if term.IsZero() {
			break
		}
		sum = sum.Add(term)
	}
	return sum
}

// SafeLn evaluates the natural logarithm in fixed point. Non-positive
// arguments fail with ErrNonPositiveDomain; callers are expected to have
// guarded any inner term (e.g. r0+1-e^(y/b)) for strict positivity before
// calling.
func SafeLn(x sdkmath.LegacyDec) (sdkmath.LegacyDec, error) {
	if x.IsNil() || !x.IsPositive() {
		return sdkmath.LegacyDec{}, ErrNonPositiveDomain.Wrapf("ln argument %s must be strictly positive", x)
	}

	// Normalize to m in [1,2): x = m * 2^k, so ln(x) = ln(m) + k*ln(2).
	m := x
	var k int64
	for m.GTE(twoDec) {
		m = m.QuoInt64(2)
		k++
	}
	one := sdkmath.LegacyOneDec()
	for m.LT(one) {
		m = m.MulInt64(2)
		k--
	}

	// ln(m) = 2*artanh(z) with z = (m-1)/(m+1) <= 1/3, so the odd power
	// series gains better than one decimal digit per two terms.
	z := m.Sub(one).Quo(m.Add(one))
	zsq := z.Mul(z)
	term := z
	sum := z
	for i := int64(3); i <= lnSeriesTerms; i += 2 {
		term = term.Mul(zsq)
		if term.IsZero() {
			break
		}
		sum = sum.Add(term.QuoInt64(i))
	}
	res := sum.MulInt64(2)
	if k != 0 {
		res = res.Add(ln2Const.MulInt64(k))
	}
	return res, nil
}

// Ratio computes e^((a-b)/scale) ratio-first: the difference is divided by
// the scale before a single exponential, instead of dividing two large
// exponentials and losing magnitude.
func Ratio(a, b, scale sdkmath.LegacyDec) (sdkmath.LegacyDec, error) {
	if scale.IsNil() || !scale.IsPositive() {
		return sdkmath.LegacyDec{}, ErrNonPositiveDomain.Wrapf("ratio scale %s must be strictly positive", scale)
	}
	return SafeExp(a.Sub(b).Quo(scale))
}
