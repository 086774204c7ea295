package lmsrmath

import (
	sdkmath "cosmossdk.io/math"
)

// EffectivePairFee composes the per-token fees of the two legs of a swap:
//
//	f_eff = 1 - (1-f_i)*(1-f_j)
//
// Both fees must lie in [0,1). Single-asset liquidity operations do not use
// this composition; they charge only the touched asset's fee.
func EffectivePairFee(fi, fj sdkmath.LegacyDec) (sdkmath.LegacyDec, error) {
	for _, f := range []sdkmath.LegacyDec{fi, fj} {
		if f.IsNil() || f.IsNegative() || f.GTE(sdkmath.LegacyOneDec()) {
			return sdkmath.LegacyDec{}, ErrDomain.Wrapf("fee %s must be in [0,1)", f)
		}
	}
	one := sdkmath.LegacyOneDec()
	return one.Sub(one.Sub(fi).Mul(one.Sub(fj))), nil
}

// AfterFee returns the amount remaining once the fee fraction is charged on
// the input. Integer rounding of the fee itself (up, in the pool's favor)
// happens at settlement in the keeper, not here.
func AfterFee(amount, fee sdkmath.LegacyDec) sdkmath.LegacyDec {
	return amount.Mul(sdkmath.LegacyOneDec().Sub(fee))
}
