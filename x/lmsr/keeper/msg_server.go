package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/softmax-labs/softswap/x/lmsr/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the lmsr MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// CreatePool handles the creation of a new pool
func (ms msgServer) CreatePool(goCtx context.Context, msg *types.MsgCreatePool) (*types.MsgCreatePoolResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("CreatePool: validate: %w", err)
	}

	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, fmt.Errorf("CreatePool: invalid creator address: %w", err)
	}

	// Seed deposits are pulled in full, so reject underfunded creators
	// before the pool id counter is touched.
	spendable := ms.bankKeeper.SpendableCoins(goCtx, creator)
	if !msg.Deposits.IsAllLTE(spendable) {
		return nil, fmt.Errorf("CreatePool: %w", types.ErrInsufficientFunds.Wrapf(
			"spendable %s does not cover seed %s", spendable, msg.Deposits))
	}

	pool, err := ms.Keeper.CreatePool(goCtx, creator, msg.Deposits.Sort(), msg.Kappa, msg.SwapFees, msg.ProtocolShare)
	if err != nil {
		return nil, fmt.Errorf("CreatePool: %w", err)
	}

	return &types.MsgCreatePoolResponse{
		PoolId: pool.Id,
		Shares: pool.TotalShares,
	}, nil
}

// Swap handles asset swaps
func (ms msgServer) Swap(goCtx context.Context, msg *types.MsgSwap) (*types.MsgSwapResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Swap: validate: %w", err)
	}

	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		return nil, fmt.Errorf("Swap: invalid trader address: %w", err)
	}

	resp, err := ms.Keeper.Swap(goCtx, trader, msg.PoolId, msg.DenomIn, msg.DenomOut, msg.AmountIn, msg.MinAmountOut, msg.LimitRatio)
	if err != nil {
		return nil, fmt.Errorf("Swap: %w", err)
	}
	return resp, nil
}

// Mint handles proportional liquidity deposits
func (ms msgServer) Mint(goCtx context.Context, msg *types.MsgMint) (*types.MsgMintResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Mint: validate: %w", err)
	}

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, fmt.Errorf("Mint: invalid provider address: %w", err)
	}

	resp, err := ms.Keeper.Mint(goCtx, provider, msg.PoolId, msg.Amount, msg.MinShares)
	if err != nil {
		return nil, fmt.Errorf("Mint: %w", err)
	}
	return resp, nil
}

// Burn handles proportional liquidity withdrawals
func (ms msgServer) Burn(goCtx context.Context, msg *types.MsgBurn) (*types.MsgBurnResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Burn: validate: %w", err)
	}

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, fmt.Errorf("Burn: invalid provider address: %w", err)
	}

	resp, err := ms.Keeper.Burn(goCtx, provider, msg.PoolId, msg.SharesIn, msg.MinAmounts)
	if err != nil {
		return nil, fmt.Errorf("Burn: %w", err)
	}
	return resp, nil
}

// SwapMint handles single-asset liquidity deposits
func (ms msgServer) SwapMint(goCtx context.Context, msg *types.MsgSwapMint) (*types.MsgSwapMintResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("SwapMint: validate: %w", err)
	}

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, fmt.Errorf("SwapMint: invalid provider address: %w", err)
	}

	resp, err := ms.Keeper.SwapMint(goCtx, provider, msg.PoolId, msg.Deposit, msg.MinSharesOut)
	if err != nil {
		return nil, fmt.Errorf("SwapMint: %w", err)
	}
	return resp, nil
}

// BurnSwap handles single-asset liquidity withdrawals
func (ms msgServer) BurnSwap(goCtx context.Context, msg *types.MsgBurnSwap) (*types.MsgBurnSwapResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("BurnSwap: validate: %w", err)
	}

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, fmt.Errorf("BurnSwap: invalid provider address: %w", err)
	}

	resp, err := ms.Keeper.BurnSwap(goCtx, provider, msg.PoolId, msg.SharesIn, msg.DenomOut, msg.MinAmountOut)
	if err != nil {
		return nil, fmt.Errorf("BurnSwap: %w", err)
	}
	return resp, nil
}

// WithdrawProtocolFees handles protocol fee withdrawals by the authority
func (ms msgServer) WithdrawProtocolFees(goCtx context.Context, msg *types.MsgWithdrawProtocolFees) (*types.MsgWithdrawProtocolFeesResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("WithdrawProtocolFees: validate: %w", err)
	}

	recipient, err := sdk.AccAddressFromBech32(msg.Recipient)
	if err != nil {
		return nil, fmt.Errorf("WithdrawProtocolFees: invalid recipient address: %w", err)
	}

	withdrawn, err := ms.Keeper.WithdrawProtocolFees(goCtx, msg.Authority, recipient, msg.Denoms)
	if err != nil {
		return nil, fmt.Errorf("WithdrawProtocolFees: %w", err)
	}
	return &types.MsgWithdrawProtocolFeesResponse{Withdrawn: withdrawn}, nil
}
