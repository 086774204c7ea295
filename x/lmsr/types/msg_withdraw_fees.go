package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgWithdrawProtocolFees{}

// MsgWithdrawProtocolFees defines a governance message that sends accrued
// protocol fees to a recipient. An empty Denoms list withdraws everything.
type MsgWithdrawProtocolFees struct {
	Authority string   `json:"authority"`
	Recipient string   `json:"recipient"`
	Denoms    []string `json:"denoms,omitempty"`
}

// NewMsgWithdrawProtocolFees creates a new MsgWithdrawProtocolFees instance
func NewMsgWithdrawProtocolFees(authority, recipient string, denoms []string) *MsgWithdrawProtocolFees {
	return &MsgWithdrawProtocolFees{
		Authority: authority,
		Recipient: recipient,
		Denoms:    denoms,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgWithdrawProtocolFees) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgWithdrawProtocolFees) Type() string {
	return "withdraw_protocol_fees"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgWithdrawProtocolFees) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgWithdrawProtocolFees) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgWithdrawProtocolFees) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return ErrInvalidAddress.Wrapf("invalid authority address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Recipient); err != nil {
		return ErrInvalidAddress.Wrapf("invalid recipient address: %s", err)
	}
	seen := make(map[string]struct{}, len(msg.Denoms))
	for _, denom := range msg.Denoms {
		if err := sdk.ValidateDenom(denom); err != nil {
			return ErrInvalidDenom.Wrapf("denom %s: %s", denom, err)
		}
		if _, dup := seen[denom]; dup {
			return ErrInvalidDenom.Wrapf("duplicate denom %s", denom)
		}
		seen[denom] = struct{}{}
	}
	return nil
}
