package types

import (
	sdkmath "cosmossdk.io/math"
)

// Params are the module-level defaults applied to newly created pools.
type Params struct {
	DefaultKappa         sdkmath.LegacyDec `json:"default_kappa"`
	DefaultSwapFee       sdkmath.LegacyDec `json:"default_swap_fee"`
	DefaultProtocolShare sdkmath.LegacyDec `json:"default_protocol_share"`
	MinSeedLiquidity     sdkmath.Int       `json:"min_seed_liquidity"`
	MaxPoolAssets        uint32            `json:"max_pool_assets"`
}

// DefaultParams returns a default set of parameters
func DefaultParams() Params {
	return Params{
		DefaultKappa:         sdkmath.LegacyNewDecWithPrec(1, 1),  // 0.1
		DefaultSwapFee:       sdkmath.LegacyNewDecWithPrec(3, 3),  // 0.3%
		DefaultProtocolShare: sdkmath.LegacyNewDecWithPrec(2, 1),  // 20% of fees
		MinSeedLiquidity:     sdkmath.NewInt(1000),
		MaxPoolAssets:        8,
	}
}

// Validate validates the set of params
func (p Params) Validate() error {
	if p.DefaultKappa.IsNil() || !p.DefaultKappa.IsPositive() {
		return ErrInvalidParams.Wrap("default kappa must be strictly positive")
	}
	if p.DefaultSwapFee.IsNil() || p.DefaultSwapFee.IsNegative() || p.DefaultSwapFee.GTE(sdkmath.LegacyOneDec()) {
		return ErrInvalidParams.Wrap("default swap fee must be in [0,1)")
	}
	if p.DefaultProtocolShare.IsNil() || p.DefaultProtocolShare.IsNegative() || p.DefaultProtocolShare.GTE(sdkmath.LegacyOneDec()) {
		return ErrInvalidParams.Wrap("default protocol share must be in [0,1)")
	}
	if p.MinSeedLiquidity.IsNil() || p.MinSeedLiquidity.IsNegative() {
		return ErrInvalidParams.Wrap("min seed liquidity cannot be negative")
	}
	if p.MaxPoolAssets < 2 {
		return ErrInvalidParams.Wrap("max pool assets must be at least 2")
	}
	return nil
}
