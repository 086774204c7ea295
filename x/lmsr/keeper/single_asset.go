package keeper

import (
	"context"
	"strconv"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/softmax-labs/softswap/x/lmsr/lmsrmath"
	"github.com/softmax-labs/softswap/x/lmsr/types"
)

// SwapMint performs a single-asset deposit: the net deposit is converted
// into a uniform pool growth alpha by the liquidity solver and the provider
// receives floor(alpha*L) shares. Only the touched asset's fee applies.
// Settlement nets the internal conversion swaps out, so the only stored
// balance that moves is the deposited asset's.
func (k Keeper) SwapMint(ctx context.Context, provider sdk.AccAddress, poolID uint64, deposit sdk.Coin, minSharesOut sdkmath.Int) (*types.MsgSwapMintResponse, error) {
	pool, found := k.GetPool(ctx, poolID)
	if !found {
		return nil, types.ErrPoolNotFound.Wrapf("pool %d", poolID)
	}
	i, ok := pool.AssetIndex(deposit.Denom)
	if !ok {
		return nil, types.ErrAssetNotInPool.Wrapf("%s not in pool %d", deposit.Denom, poolID)
	}
	if !pool.TotalShares.IsPositive() {
		return nil, types.ErrInvalidPoolState.Wrapf("pool %d has no outstanding shares", poolID)
	}

	depositDec := sdkmath.LegacyNewDecFromInt(deposit.Amount)
	feeDec := depositDec.Mul(pool.FeeFor(i))
	netDec := depositDec.Sub(feeDec)
	if !netDec.IsPositive() {
		return nil, types.ErrInvalidAmount.Wrap("deposit consumed entirely by the fee")
	}

	res, err := lmsrmath.SingleAssetDeposit(pool.BalancesDec(), i, netDec, pool.Kappa)
	if err != nil {
		return nil, err
	}
	k.metrics.SolverIterations.Observe(float64(res.Iterations))

	sharesOut := res.Alpha.MulInt(pool.TotalShares).TruncateInt()
	if !sharesOut.IsPositive() {
		return nil, types.ErrInvalidAmount.Wrap("deposit too small to mint a share")
	}
	if sharesOut.LT(minSharesOut) {
		return nil, types.ErrSlippage.Wrapf("shares %s below minimum %s", sharesOut, minSharesOut)
	}

	// Gross consumption: the solved net usage plus the fee, rounded up.
	feeTotal, protocolCut, _ := splitFee(feeDec, pool.ProtocolShare)
	usedNet := res.Used.Ceil().TruncateInt()
	grossUsed := usedNet.Add(feeTotal)
	if grossUsed.GT(deposit.Amount) {
		grossUsed = deposit.Amount
	}
	refunded := deposit.Amount.Sub(grossUsed)

	inCoins := sdk.NewCoins(sdk.NewCoin(deposit.Denom, grossUsed))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, provider, types.ModuleName, inCoins); err != nil {
		return nil, err
	}

	pool.Balances[i] = pool.Balances[i].Add(grossUsed).Sub(protocolCut)
	pool.TotalShares = pool.TotalShares.Add(sharesOut)
	k.SetPool(ctx, pool)
	k.AddShares(ctx, poolID, provider.String(), sharesOut)
	k.accrueProtocolFees(ctx, deposit.Denom, protocolCut)

	label := strconv.FormatUint(poolID, 10)
	k.metrics.LiquidityAdded.WithLabelValues(label, deposit.Denom).Add(float64(grossUsed.Int64()))

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSwapMint,
			sdk.NewAttribute(types.AttributeKeyPoolId, label),
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(types.AttributeKeyShares, sharesOut.String()),
			sdk.NewAttribute(types.AttributeKeyAmountIn, grossUsed.String()),
			sdk.NewAttribute(types.AttributeKeyRefunded, refunded.String()),
		),
	)

	return &types.MsgSwapMintResponse{
		Shares:   sharesOut,
		Used:     grossUsed,
		Refunded: refunded,
	}, nil
}

// BurnSwap performs a single-asset withdrawal: the provider's share
// fraction is redeemed and every other asset's portion is converted into
// the target asset on the post-burn pool. Only the touched asset's fee
// applies, charged on the gross payout. The LP-retained part of the fee
// stays in the pool; the protocol cut moves to the fee ledger.
func (k Keeper) BurnSwap(ctx context.Context, provider sdk.AccAddress, poolID uint64, sharesIn sdkmath.Int, denomOut string, minAmountOut sdkmath.Int) (*types.MsgBurnSwapResponse, error) {
	pool, found := k.GetPool(ctx, poolID)
	if !found {
		return nil, types.ErrPoolNotFound.Wrapf("pool %d", poolID)
	}
	i, ok := pool.AssetIndex(denomOut)
	if !ok {
		return nil, types.ErrAssetNotInPool.Wrapf("%s not in pool %d", denomOut, poolID)
	}
	if sharesIn.GT(pool.TotalShares) {
		return nil, types.ErrInsufficientShares.Wrapf("pool %d has only %s shares outstanding", poolID, pool.TotalShares)
	}

	alpha := sdkmath.LegacyNewDecFromInt(sharesIn).Quo(sdkmath.LegacyNewDecFromInt(pool.TotalShares))
	res, err := lmsrmath.SingleAssetWithdraw(pool.BalancesDec(), i, alpha, pool.Kappa)
	if err != nil {
		return nil, err
	}

	feeDec := res.Payout.Mul(pool.FeeFor(i))
	feeTotal, protocolCut, _ := splitFee(feeDec, pool.ProtocolShare)
	amountOut := res.Payout.TruncateInt().Sub(feeTotal)
	if !amountOut.IsPositive() {
		return nil, types.ErrInvalidAmount.Wrap("payout rounds to zero after fees")
	}
	if amountOut.LT(minAmountOut) {
		return nil, types.ErrSlippage.Wrapf("payout %s below minimum %s", amountOut, minAmountOut)
	}

	// Only the target asset's balance moves: the conversion legs net out
	// and the retained fee stays behind for the remaining LPs.
	outflow := amountOut.Add(protocolCut)
	if outflow.GT(pool.Balances[i]) {
		return nil, types.ErrInvalidPoolState.Wrapf("pool %d cannot cover payout in %s", poolID, denomOut)
	}

	if err := k.SubShares(ctx, poolID, provider.String(), sharesIn); err != nil {
		return nil, err
	}
	pool.Balances[i] = pool.Balances[i].Sub(outflow)
	pool.TotalShares = pool.TotalShares.Sub(sharesIn)
	k.SetPool(ctx, pool)
	k.accrueProtocolFees(ctx, denomOut, protocolCut)

	outCoins := sdk.NewCoins(sdk.NewCoin(denomOut, amountOut))
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, provider, outCoins); err != nil {
		return nil, err
	}

	label := strconv.FormatUint(poolID, 10)
	k.metrics.LiquidityRemoved.WithLabelValues(label, denomOut).Add(float64(amountOut.Int64()))

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeBurnSwap,
			sdk.NewAttribute(types.AttributeKeyPoolId, label),
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(types.AttributeKeyShares, sharesIn.String()),
			sdk.NewAttribute(types.AttributeKeyDenomOut, denomOut),
			sdk.NewAttribute(types.AttributeKeyAmountOut, amountOut.String()),
			sdk.NewAttribute(types.AttributeKeyFee, feeTotal.String()),
		),
	)

	return &types.MsgBurnSwapResponse{AmountOut: amountOut}, nil
}
