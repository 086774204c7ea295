package types

import (
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgCreatePool{}

// MsgCreatePool defines a message to create a new market maker pool.
// Kappa, SwapFees and ProtocolShare are optional; nil values fall back to
// the module defaults. SwapFees, when set, is parallel to the sorted denoms
// of Deposits.
type MsgCreatePool struct {
	Creator       string              `json:"creator"`
	Deposits      sdk.Coins           `json:"deposits"`
	Kappa         sdkmath.LegacyDec   `json:"kappa,omitempty"`
	SwapFees      []sdkmath.LegacyDec `json:"swap_fees,omitempty"`
	ProtocolShare sdkmath.LegacyDec   `json:"protocol_share,omitempty"`
}

// NewMsgCreatePool creates a new MsgCreatePool instance
func NewMsgCreatePool(creator string, deposits sdk.Coins, kappa sdkmath.LegacyDec, swapFees []sdkmath.LegacyDec, protocolShare sdkmath.LegacyDec) *MsgCreatePool {
	return &MsgCreatePool{
		Creator:       creator,
		Deposits:      deposits,
		Kappa:         kappa,
		SwapFees:      swapFees,
		ProtocolShare: protocolShare,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgCreatePool) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgCreatePool) Type() string {
	return "create_pool"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgCreatePool) GetSigners() []sdk.AccAddress {
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{creator}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgCreatePool) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgCreatePool) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return ErrInvalidAddress.Wrapf("invalid creator address: %s", err)
	}

	if err := msg.Deposits.Validate(); err != nil {
		return ErrInvalidAmount.Wrapf("invalid deposits: %s", err)
	}
	if len(msg.Deposits) < 2 {
		return ErrInvalidAmount.Wrapf("pool needs at least 2 assets, got %d", len(msg.Deposits))
	}
	for _, coin := range msg.Deposits {
		if !coin.Amount.IsPositive() {
			return ErrInvalidAmount.Wrapf("seed deposit for %s must be positive", coin.Denom)
		}
	}

	if !msg.Kappa.IsNil() && !msg.Kappa.IsPositive() {
		return ErrInvalidParams.Wrap("kappa must be strictly positive")
	}
	if len(msg.SwapFees) != 0 && len(msg.SwapFees) != len(msg.Deposits) {
		return ErrInvalidParams.Wrapf("need one fee per asset, got %d fees for %d assets", len(msg.SwapFees), len(msg.Deposits))
	}
	for _, fee := range msg.SwapFees {
		if fee.IsNil() || fee.IsNegative() || fee.GTE(sdkmath.LegacyOneDec()) {
			return ErrInvalidParams.Wrapf("swap fee %s must be in [0,1)", fee)
		}
	}
	if !msg.ProtocolShare.IsNil() {
		if msg.ProtocolShare.IsNegative() || msg.ProtocolShare.GTE(sdkmath.LegacyOneDec()) {
			return ErrInvalidParams.Wrap("protocol share must be in [0,1)")
		}
	}

	return nil
}
