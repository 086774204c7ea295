package types

import (
	"context"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgServer is the transaction handling surface of the module.
type MsgServer interface {
	CreatePool(context.Context, *MsgCreatePool) (*MsgCreatePoolResponse, error)
	Swap(context.Context, *MsgSwap) (*MsgSwapResponse, error)
	Mint(context.Context, *MsgMint) (*MsgMintResponse, error)
	Burn(context.Context, *MsgBurn) (*MsgBurnResponse, error)
	SwapMint(context.Context, *MsgSwapMint) (*MsgSwapMintResponse, error)
	BurnSwap(context.Context, *MsgBurnSwap) (*MsgBurnSwapResponse, error)
	WithdrawProtocolFees(context.Context, *MsgWithdrawProtocolFees) (*MsgWithdrawProtocolFeesResponse, error)
}

// MsgCreatePoolResponse returns the id of the created pool and the shares
// minted to the creator.
type MsgCreatePoolResponse struct {
	PoolId uint64      `json:"pool_id"`
	Shares sdkmath.Int `json:"shares"`
}

// MsgSwapResponse reports the settled amounts. AmountIn is the input
// actually consumed; it is below the requested input when the trade was
// truncated at a limit ratio or at the pool's available balance, with the
// difference refunded.
type MsgSwapResponse struct {
	AmountIn  sdkmath.Int `json:"amount_in"`
	AmountOut sdkmath.Int `json:"amount_out"`
	Fee       sdkmath.Int `json:"fee"`
}

// MsgMintResponse reports the shares minted and the per-asset deposits.
type MsgMintResponse struct {
	Shares    sdkmath.Int `json:"shares"`
	Deposited sdk.Coins   `json:"deposited"`
}

// MsgBurnResponse reports the shares burned and the per-asset payouts.
type MsgBurnResponse struct {
	Shares    sdkmath.Int `json:"shares"`
	Withdrawn sdk.Coins   `json:"withdrawn"`
}

// MsgSwapMintResponse reports the shares minted, the input consumed and the
// refunded remainder.
type MsgSwapMintResponse struct {
	Shares   sdkmath.Int `json:"shares"`
	Used     sdkmath.Int `json:"used"`
	Refunded sdkmath.Int `json:"refunded"`
}

// MsgBurnSwapResponse reports the single-asset payout.
type MsgBurnSwapResponse struct {
	AmountOut sdkmath.Int `json:"amount_out"`
}

// MsgWithdrawProtocolFeesResponse reports the coins sent to the recipient.
type MsgWithdrawProtocolFeesResponse struct {
	Withdrawn sdk.Coins `json:"withdrawn"`
}
