package types

import (
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Pool is a multi-asset market maker instance. Balances is parallel to
// Assets, as is SwapFees; TotalShares tracks outstanding LP shares.
type Pool struct {
	Id            uint64              `json:"id"`
	Assets        []string            `json:"assets"`
	Balances      []sdkmath.Int       `json:"balances"`
	TotalShares   sdkmath.Int         `json:"total_shares"`
	Kappa         sdkmath.LegacyDec   `json:"kappa"`
	SwapFees      []sdkmath.LegacyDec `json:"swap_fees"`
	ProtocolShare sdkmath.LegacyDec   `json:"protocol_share"`
	Creator       string              `json:"creator"`
}

// AssetIndex returns the position of denom in the pool's asset list.
func (p Pool) AssetIndex(denom string) (int, bool) {
	for i, a := range p.Assets {
		if a == denom {
			return i, true
		}
	}
	return 0, false
}

// BalancesDec returns the balance vector converted to decimals for the
// math kernel.
func (p Pool) BalancesDec() []sdkmath.LegacyDec {
	out := make([]sdkmath.LegacyDec, len(p.Balances))
	for i, b := range p.Balances {
		out[i] = sdkmath.LegacyNewDecFromInt(b)
	}
	return out
}

// FeeFor returns the swap fee of the asset at index i.
func (p Pool) FeeFor(i int) sdkmath.LegacyDec {
	return p.SwapFees[i]
}

// TotalBalance returns the sum of all balances.
func (p Pool) TotalBalance() sdkmath.Int {
	total := sdkmath.ZeroInt()
	for _, b := range p.Balances {
		total = total.Add(b)
	}
	return total
}

// Validate checks structural consistency of the pool record.
func (p Pool) Validate() error {
	if p.Id == 0 {
		return ErrInvalidPoolId.Wrap("pool id cannot be zero")
	}
	if len(p.Assets) < 2 {
		return ErrInvalidPoolState.Wrapf("pool needs at least 2 assets, has %d", len(p.Assets))
	}
	if len(p.Balances) != len(p.Assets) || len(p.SwapFees) != len(p.Assets) {
		return ErrInvalidPoolState.Wrapf(
			"parallel vectors out of sync: %d assets, %d balances, %d fees",
			len(p.Assets), len(p.Balances), len(p.SwapFees))
	}
	seen := make(map[string]struct{}, len(p.Assets))
	for i, denom := range p.Assets {
		if err := sdk.ValidateDenom(denom); err != nil {
			return ErrInvalidDenom.Wrapf("asset %d: %s", i, err)
		}
		if _, dup := seen[denom]; dup {
			return ErrInvalidDenom.Wrapf("duplicate asset %s", denom)
		}
		seen[denom] = struct{}{}

		if p.Balances[i].IsNil() || p.Balances[i].IsNegative() {
			return ErrInvalidPoolState.Wrapf("asset %s has negative balance", denom)
		}
		fee := p.SwapFees[i]
		if fee.IsNil() || fee.IsNegative() || fee.GTE(sdkmath.LegacyOneDec()) {
			return ErrInvalidPoolState.Wrapf("asset %s fee must be in [0,1)", denom)
		}
	}
	if p.Kappa.IsNil() || !p.Kappa.IsPositive() {
		return ErrInvalidPoolState.Wrap("kappa must be strictly positive")
	}
	// Strictly below one so fee retention always leaves something for LPs.
	if p.ProtocolShare.IsNil() || p.ProtocolShare.IsNegative() || p.ProtocolShare.GTE(sdkmath.LegacyOneDec()) {
		return ErrInvalidPoolState.Wrap("protocol share must be in [0,1)")
	}
	if p.TotalShares.IsNil() || p.TotalShares.IsNegative() {
		return ErrInvalidPoolState.Wrap("total shares cannot be negative")
	}
	if _, err := sdk.AccAddressFromBech32(p.Creator); err != nil {
		return ErrInvalidAddress.Wrapf("invalid creator address: %s", err)
	}
	return nil
}
