package types

import (
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgSwap{}

// MsgSwap defines a message to swap one pool asset for another. LimitRatio
// is optional: when set it truncates the trade at the point where the
// post-trade price ratio in/out reaches the limit, and any unused input is
// refunded.
type MsgSwap struct {
	Trader       string            `json:"trader"`
	PoolId       uint64            `json:"pool_id"`
	DenomIn      string            `json:"denom_in"`
	DenomOut     string            `json:"denom_out"`
	AmountIn     sdkmath.Int       `json:"amount_in"`
	MinAmountOut sdkmath.Int       `json:"min_amount_out"`
	LimitRatio   sdkmath.LegacyDec `json:"limit_ratio,omitempty"`
}

// NewMsgSwap creates a new MsgSwap instance
func NewMsgSwap(trader string, poolId uint64, denomIn, denomOut string, amountIn, minAmountOut sdkmath.Int) *MsgSwap {
	return &MsgSwap{
		Trader:       trader,
		PoolId:       poolId,
		DenomIn:      denomIn,
		DenomOut:     denomOut,
		AmountIn:     amountIn,
		MinAmountOut: minAmountOut,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgSwap) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgSwap) Type() string {
	return "swap"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgSwap) GetSigners() []sdk.AccAddress {
	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{trader}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSwap) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSwap) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Trader); err != nil {
		return ErrInvalidAddress.Wrapf("invalid trader address: %s", err)
	}
	if msg.PoolId == 0 {
		return ErrInvalidPoolId.Wrap("pool id cannot be zero")
	}

	if err := sdk.ValidateDenom(msg.DenomIn); err != nil {
		return ErrInvalidDenom.Wrapf("denom in: %s", err)
	}
	if err := sdk.ValidateDenom(msg.DenomOut); err != nil {
		return ErrInvalidDenom.Wrapf("denom out: %s", err)
	}
	if msg.DenomIn == msg.DenomOut {
		return ErrSameDenom.Wrap("cannot swap an asset for itself")
	}

	if msg.AmountIn.IsNil() || !msg.AmountIn.IsPositive() {
		return ErrInvalidAmount.Wrap("amount in must be positive")
	}
	if msg.MinAmountOut.IsNil() || msg.MinAmountOut.IsNegative() {
		return ErrInvalidAmount.Wrap("min amount out cannot be negative")
	}
	if !msg.LimitRatio.IsNil() && !msg.LimitRatio.IsPositive() {
		return ErrInvalidAmount.Wrap("limit ratio must be positive when set")
	}

	return nil
}
