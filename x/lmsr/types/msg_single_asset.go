package types

import (
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgSwapMint{}
	_ sdk.Msg = &MsgBurnSwap{}
)

// MsgSwapMint defines a message for a single-asset liquidity deposit: the
// provider deposits one pool asset and receives LP shares as if the deposit
// had been converted and spread across all assets. Any unconsumed input is
// refunded.
type MsgSwapMint struct {
	Provider     string      `json:"provider"`
	PoolId       uint64      `json:"pool_id"`
	Deposit      sdk.Coin    `json:"deposit"`
	MinSharesOut sdkmath.Int `json:"min_shares_out"`
}

// NewMsgSwapMint creates a new MsgSwapMint instance
func NewMsgSwapMint(provider string, poolId uint64, deposit sdk.Coin, minSharesOut sdkmath.Int) *MsgSwapMint {
	return &MsgSwapMint{
		Provider:     provider,
		PoolId:       poolId,
		Deposit:      deposit,
		MinSharesOut: minSharesOut,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgSwapMint) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgSwapMint) Type() string {
	return "swap_mint"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgSwapMint) GetSigners() []sdk.AccAddress {
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{provider}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSwapMint) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSwapMint) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return ErrInvalidAddress.Wrapf("invalid provider address: %s", err)
	}
	if msg.PoolId == 0 {
		return ErrInvalidPoolId.Wrap("pool id cannot be zero")
	}
	if err := msg.Deposit.Validate(); err != nil {
		return ErrInvalidAmount.Wrapf("invalid deposit: %s", err)
	}
	if !msg.Deposit.Amount.IsPositive() {
		return ErrInvalidAmount.Wrap("deposit must be positive")
	}
	if msg.MinSharesOut.IsNil() || msg.MinSharesOut.IsNegative() {
		return ErrInvalidAmount.Wrap("min shares out cannot be negative")
	}
	return nil
}

// MsgBurnSwap defines a message for a single-asset liquidity withdrawal:
// the provider burns LP shares and receives the whole payout in one asset.
type MsgBurnSwap struct {
	Provider     string      `json:"provider"`
	PoolId       uint64      `json:"pool_id"`
	SharesIn     sdkmath.Int `json:"shares_in"`
	DenomOut     string      `json:"denom_out"`
	MinAmountOut sdkmath.Int `json:"min_amount_out"`
}

// NewMsgBurnSwap creates a new MsgBurnSwap instance
func NewMsgBurnSwap(provider string, poolId uint64, sharesIn sdkmath.Int, denomOut string, minAmountOut sdkmath.Int) *MsgBurnSwap {
	return &MsgBurnSwap{
		Provider:     provider,
		PoolId:       poolId,
		SharesIn:     sharesIn,
		DenomOut:     denomOut,
		MinAmountOut: minAmountOut,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgBurnSwap) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgBurnSwap) Type() string {
	return "burn_swap"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgBurnSwap) GetSigners() []sdk.AccAddress {
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{provider}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgBurnSwap) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgBurnSwap) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return ErrInvalidAddress.Wrapf("invalid provider address: %s", err)
	}
	if msg.PoolId == 0 {
		return ErrInvalidPoolId.Wrap("pool id cannot be zero")
	}
	if msg.SharesIn.IsNil() || !msg.SharesIn.IsPositive() {
		return ErrInvalidAmount.Wrap("shares in must be positive")
	}
	if err := sdk.ValidateDenom(msg.DenomOut); err != nil {
		return ErrInvalidDenom.Wrapf("denom out: %s", err)
	}
	if msg.MinAmountOut.IsNil() || msg.MinAmountOut.IsNegative() {
		return ErrInvalidAmount.Wrap("min amount out cannot be negative")
	}
	return nil
}
