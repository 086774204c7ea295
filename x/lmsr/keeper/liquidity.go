package keeper

import (
	"context"
	"strconv"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/softmax-labs/softswap/x/lmsr/lmsrmath"
	"github.com/softmax-labs/softswap/x/lmsr/types"
)

// Mint performs a proportional deposit: the provider offers a total amount
// spread pro rata across every pool asset and receives the matching growth
// in LP shares. Per-asset deposits round up and the share mint rounds down,
// both in the pool's favor; minShares guards the mint against slippage.
func (k Keeper) Mint(ctx context.Context, provider sdk.AccAddress, poolID uint64, amount, minShares sdkmath.Int) (*types.MsgMintResponse, error) {
	pool, found := k.GetPool(ctx, poolID)
	if !found {
		return nil, types.ErrPoolNotFound.Wrapf("pool %d", poolID)
	}
	if !pool.TotalShares.IsPositive() {
		return nil, types.ErrInvalidPoolState.Wrapf("pool %d has no outstanding shares", poolID)
	}
	total := pool.TotalBalance()
	if !total.IsPositive() {
		return nil, types.ErrInvalidPoolState.Wrapf("pool %d has no balances to scale", poolID)
	}

	// alpha = amount / S; the deposit scales every balance by (1+alpha).
	alpha := sdkmath.LegacyNewDecFromInt(amount).Quo(sdkmath.LegacyNewDecFromInt(total))
	amounts, err := lmsrmath.ProportionalDeposit(pool.BalancesDec(), alpha)
	if err != nil {
		return nil, err
	}

	sharesOut := alpha.MulInt(pool.TotalShares).TruncateInt()
	if !sharesOut.IsPositive() {
		return nil, types.ErrInvalidAmount.Wrapf("deposit %s mints no shares", amount)
	}
	if sharesOut.LT(minShares) {
		return nil, types.ErrSlippage.Wrapf("shares %s below minimum %s", sharesOut, minShares)
	}

	deposits := sdk.NewCoins()
	for i, denom := range pool.Assets {
		deposit := amounts[i].Ceil().TruncateInt()
		if !deposit.IsPositive() {
			return nil, types.ErrInvalidAmount.Wrapf("deposit for %s rounds to zero", denom)
		}
		deposits = deposits.Add(sdk.NewCoin(denom, deposit))
	}

	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, provider, types.ModuleName, deposits); err != nil {
		return nil, err
	}

	for i, denom := range pool.Assets {
		pool.Balances[i] = pool.Balances[i].Add(deposits.AmountOf(denom))
	}
	pool.TotalShares = pool.TotalShares.Add(sharesOut)
	k.SetPool(ctx, pool)
	k.AddShares(ctx, poolID, provider.String(), sharesOut)

	label := strconv.FormatUint(poolID, 10)
	for _, coin := range deposits {
		k.metrics.LiquidityAdded.WithLabelValues(label, coin.Denom).Add(float64(coin.Amount.Int64()))
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeMint,
			sdk.NewAttribute(types.AttributeKeyPoolId, label),
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(types.AttributeKeyShares, sharesOut.String()),
			sdk.NewAttribute(types.AttributeKeyAmountIn, deposits.String()),
		),
	)

	return &types.MsgMintResponse{Shares: sharesOut, Deposited: deposits}, nil
}

// Burn performs a proportional withdrawal: the provider burns sharesIn LP
// shares and receives every pool asset pro rata, rounded down in the
// pool's favor. minAmounts, when non-empty, bounds the per-asset payouts.
func (k Keeper) Burn(ctx context.Context, provider sdk.AccAddress, poolID uint64, sharesIn sdkmath.Int, minAmounts sdk.Coins) (*types.MsgBurnResponse, error) {
	pool, found := k.GetPool(ctx, poolID)
	if !found {
		return nil, types.ErrPoolNotFound.Wrapf("pool %d", poolID)
	}
	if sharesIn.GT(pool.TotalShares) {
		return nil, types.ErrInsufficientShares.Wrapf("pool %d has only %s shares outstanding", poolID, pool.TotalShares)
	}

	alpha := sdkmath.LegacyNewDecFromInt(sharesIn).Quo(sdkmath.LegacyNewDecFromInt(pool.TotalShares))
	payouts := sdk.NewCoins()
	for i, denom := range pool.Assets {
		amount := alpha.MulInt(pool.Balances[i]).TruncateInt()
		if !minAmounts.Empty() && amount.LT(minAmounts.AmountOf(denom)) {
			return nil, types.ErrSlippage.Wrapf("payout %s%s below minimum %s", amount, denom, minAmounts.AmountOf(denom))
		}
		if amount.IsPositive() {
			payouts = payouts.Add(sdk.NewCoin(denom, amount))
		}
	}

	// Effects before the outbound transfer.
	if err := k.SubShares(ctx, poolID, provider.String(), sharesIn); err != nil {
		return nil, err
	}
	for i, denom := range pool.Assets {
		pool.Balances[i] = pool.Balances[i].Sub(payouts.AmountOf(denom))
	}
	pool.TotalShares = pool.TotalShares.Sub(sharesIn)
	k.SetPool(ctx, pool)

	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, provider, payouts); err != nil {
		return nil, err
	}

	label := strconv.FormatUint(poolID, 10)
	for _, coin := range payouts {
		k.metrics.LiquidityRemoved.WithLabelValues(label, coin.Denom).Add(float64(coin.Amount.Int64()))
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeBurn,
			sdk.NewAttribute(types.AttributeKeyPoolId, label),
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(types.AttributeKeyShares, sharesIn.String()),
			sdk.NewAttribute(types.AttributeKeyAmountOut, payouts.String()),
		),
	)

	return &types.MsgBurnResponse{Shares: sharesIn, Withdrawn: payouts}, nil
}
