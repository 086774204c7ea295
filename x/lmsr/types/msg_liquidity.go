package types

import (
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgMint{}
	_ sdk.Msg = &MsgBurn{}
)

// MsgMint defines a message for a proportional liquidity deposit. Amount is
// the total deposit across all pool assets; the per-asset deposits are
// derived pro rata from the current balances and MinShares guards the
// resulting share mint against slippage.
type MsgMint struct {
	Provider  string      `json:"provider"`
	PoolId    uint64      `json:"pool_id"`
	Amount    sdkmath.Int `json:"amount"`
	MinShares sdkmath.Int `json:"min_shares"`
}

// NewMsgMint creates a new MsgMint instance
func NewMsgMint(provider string, poolId uint64, amount, minShares sdkmath.Int) *MsgMint {
	return &MsgMint{
		Provider:  provider,
		PoolId:    poolId,
		Amount:    amount,
		MinShares: minShares,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgMint) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgMint) Type() string {
	return "mint"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgMint) GetSigners() []sdk.AccAddress {
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{provider}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgMint) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgMint) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return ErrInvalidAddress.Wrapf("invalid provider address: %s", err)
	}
	if msg.PoolId == 0 {
		return ErrInvalidPoolId.Wrap("pool id cannot be zero")
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return ErrInvalidAmount.Wrap("deposit amount must be positive")
	}
	if msg.MinShares.IsNil() || msg.MinShares.IsNegative() {
		return ErrInvalidAmount.Wrap("min shares cannot be negative")
	}
	return nil
}

// MsgBurn defines a message for a proportional liquidity withdrawal. The
// provider burns SharesIn LP shares and receives every pool asset pro rata;
// MinAmounts bounds the per-asset payouts the provider accepts.
type MsgBurn struct {
	Provider   string      `json:"provider"`
	PoolId     uint64      `json:"pool_id"`
	SharesIn   sdkmath.Int `json:"shares_in"`
	MinAmounts sdk.Coins   `json:"min_amounts,omitempty"`
}

// NewMsgBurn creates a new MsgBurn instance
func NewMsgBurn(provider string, poolId uint64, sharesIn sdkmath.Int, minAmounts sdk.Coins) *MsgBurn {
	return &MsgBurn{
		Provider:   provider,
		PoolId:     poolId,
		SharesIn:   sharesIn,
		MinAmounts: minAmounts,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgBurn) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgBurn) Type() string {
	return "burn"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgBurn) GetSigners() []sdk.AccAddress {
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{provider}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgBurn) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgBurn) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return ErrInvalidAddress.Wrapf("invalid provider address: %s", err)
	}
	if msg.PoolId == 0 {
		return ErrInvalidPoolId.Wrap("pool id cannot be zero")
	}
	if msg.SharesIn.IsNil() || !msg.SharesIn.IsPositive() {
		return ErrInvalidAmount.Wrap("shares in must be positive")
	}
	if err := msg.MinAmounts.Validate(); err != nil {
		return ErrInvalidAmount.Wrapf("invalid min amounts: %s", err)
	}
	return nil
}
