package keeper

import (
	"context"
	"strconv"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/softmax-labs/softswap/x/lmsr/lmsrmath"
	"github.com/softmax-labs/softswap/x/lmsr/types"
)

// swapQuote is a fully priced swap before settlement. GrossIn is the input
// actually consumed including the fee; FeeDec is the undiscretized fee.
type swapQuote struct {
	GrossIn   sdkmath.Int
	AmountOut sdkmath.Int
	FeeDec    sdkmath.LegacyDec
	Capped    bool
	Limited   bool
	Path      string
}

// quoteSwap prices an i->j swap against the pool without touching state.
// The fee is charged on the input; the net amount is priced by the balanced
// surrogate when its preconditions hold and by the exact engine otherwise.
// Truncation at a limit ratio or at the pool's available balance shrinks
// GrossIn below amountIn; the caller refunds the difference.
func (k Keeper) quoteSwap(pool types.Pool, i, j int, amountIn sdkmath.Int, limitRatio sdkmath.LegacyDec) (swapQuote, error) {
	q := pool.BalancesDec()
	b, err := lmsrmath.LiquidityScale(q, pool.Kappa)
	if err != nil {
		return swapQuote{}, err
	}
	fEff, err := lmsrmath.EffectivePairFee(pool.FeeFor(i), pool.FeeFor(j))
	if err != nil {
		return swapQuote{}, err
	}

	amountInDec := sdkmath.LegacyNewDecFromInt(amountIn)
	netReq := lmsrmath.AfterFee(amountInDec, fEff)
	if !netReq.IsPositive() {
		return swapQuote{}, types.ErrInvalidAmount.Wrap("input amount consumed entirely by the fee")
	}

	var limit *sdkmath.LegacyDec
	if !limitRatio.IsNil() && limitRatio.IsPositive() {
		limit = &limitRatio
	}

	var quote lmsrmath.Quote
	path := "exact"
	if approx, ok, err := lmsrmath.BalancedExactIn(q, i, j, netReq, b, limit); err != nil {
		return swapQuote{}, err
	} else if ok {
		quote = approx
		path = "approx"
	} else {
		quote, err = k.exactQuote(q, i, j, netReq, b, limit)
		if err != nil {
			return swapQuote{}, err
		}
	}

	// Discretize in the pool's favor: the consumed gross input rounds up,
	// the output rounds down.
	netUsed := quote.AmountIn
	grossIn := amountIn
	feeDec := amountInDec.Sub(netUsed)
	if netUsed.LT(netReq) {
		one := sdkmath.LegacyOneDec()
		grossUsedDec := netUsed.Quo(one.Sub(fEff))
		grossIn = grossUsedDec.Ceil().TruncateInt()
		if grossIn.GT(amountIn) {
			grossIn = amountIn
		}
		feeDec = grossUsedDec.Sub(netUsed)
	}

	amountOut := quote.AmountOut.TruncateInt()
	if !amountOut.IsPositive() {
		return swapQuote{}, types.ErrInvalidAmount.Wrap("swap output rounds to zero")
	}

	return swapQuote{
		GrossIn:   grossIn,
		AmountOut: amountOut,
		FeeDec:    feeDec,
		Capped:    quote.Capped,
		Limited:   quote.Limited,
		Path:      path,
	}, nil
}

// exactQuote runs the closed-form engine, applying the limit truncation
// first when one is set.
func (k Keeper) exactQuote(q []sdkmath.LegacyDec, i, j int, netReq, b sdkmath.LegacyDec, limit *sdkmath.LegacyDec) (lmsrmath.Quote, error) {
	if limit != nil {
		limQuote, err := lmsrmath.ToLimit(q, i, j, *limit, b)
		if err != nil {
			return lmsrmath.Quote{}, err
		}
		if limQuote.AmountIn.LTE(netReq) {
			return limQuote, nil
		}
	}
	return lmsrmath.ExactIn(q, i, j, netReq, b)
}

// Swap executes a swap against a pool: prices the trade, takes custody of
// only the consumed input (a truncated trade never touches the remainder),
// earmarks the protocol's fee cut and pays the output. The stored balances
// move by the net input plus the LP-retained fee on the in side and by the
// paid output on the out side.
func (k Keeper) Swap(ctx context.Context, trader sdk.AccAddress, poolID uint64, denomIn, denomOut string, amountIn, minAmountOut sdkmath.Int, limitRatio sdkmath.LegacyDec) (*types.MsgSwapResponse, error) {
	pool, found := k.GetPool(ctx, poolID)
	if !found {
		return nil, types.ErrPoolNotFound.Wrapf("pool %d", poolID)
	}
	i, ok := pool.AssetIndex(denomIn)
	if !ok {
		return nil, types.ErrAssetNotInPool.Wrapf("%s not in pool %d", denomIn, poolID)
	}
	j, ok := pool.AssetIndex(denomOut)
	if !ok {
		return nil, types.ErrAssetNotInPool.Wrapf("%s not in pool %d", denomOut, poolID)
	}

	quote, err := k.quoteSwap(pool, i, j, amountIn, limitRatio)
	if err != nil {
		k.metrics.SwapsTotal.WithLabelValues(strconv.FormatUint(poolID, 10), "rejected").Inc()
		return nil, err
	}
	if quote.AmountOut.LT(minAmountOut) {
		k.metrics.SwapsTotal.WithLabelValues(strconv.FormatUint(poolID, 10), "rejected").Inc()
		return nil, types.ErrSlippage.Wrapf("output %s below minimum %s", quote.AmountOut, minAmountOut)
	}

	feeTotal, protocolCut, _ := splitFee(quote.FeeDec, pool.ProtocolShare)
	if feeTotal.GT(quote.GrossIn) {
		feeTotal = quote.GrossIn
	}

	// Custody: pull only the consumed input.
	inCoins := sdk.NewCoins(sdk.NewCoin(denomIn, quote.GrossIn))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, trader, types.ModuleName, inCoins); err != nil {
		return nil, err
	}

	// The protocol cut leaves the pool's books, the retained fee stays in.
	pool.Balances[i] = pool.Balances[i].Add(quote.GrossIn).Sub(protocolCut)
	pool.Balances[j] = pool.Balances[j].Sub(quote.AmountOut)
	if pool.Balances[j].IsNegative() {
		return nil, types.ErrInvalidPoolState.Wrapf("pool %d balance of %s went negative", poolID, denomOut)
	}
	k.SetPool(ctx, pool)
	k.accrueProtocolFees(ctx, denomIn, protocolCut)

	outCoins := sdk.NewCoins(sdk.NewCoin(denomOut, quote.AmountOut))
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, trader, outCoins); err != nil {
		return nil, err
	}

	label := strconv.FormatUint(poolID, 10)
	k.metrics.SwapsTotal.WithLabelValues(label, "ok").Inc()
	k.metrics.SwapVolume.WithLabelValues(label, denomIn).Add(float64(quote.GrossIn.Int64()))
	k.metrics.SwapFeesCollected.WithLabelValues(label, denomIn).Add(float64(feeTotal.Int64()))
	k.metrics.QuotePath.WithLabelValues(quote.Path).Inc()

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSwap,
			sdk.NewAttribute(types.AttributeKeyPoolId, label),
			sdk.NewAttribute(types.AttributeKeyTrader, trader.String()),
			sdk.NewAttribute(types.AttributeKeyDenomIn, denomIn),
			sdk.NewAttribute(types.AttributeKeyDenomOut, denomOut),
			sdk.NewAttribute(types.AttributeKeyAmountIn, quote.GrossIn.String()),
			sdk.NewAttribute(types.AttributeKeyAmountOut, quote.AmountOut.String()),
			sdk.NewAttribute(types.AttributeKeyFee, feeTotal.String()),
			sdk.NewAttribute(types.AttributeKeyCapped, strconv.FormatBool(quote.Capped)),
			sdk.NewAttribute(types.AttributeKeyLimited, strconv.FormatBool(quote.Limited)),
		),
	)

	return &types.MsgSwapResponse{
		AmountIn:  quote.GrossIn,
		AmountOut: quote.AmountOut,
		Fee:       feeTotal,
	}, nil
}

// SimulateSwap prices a swap without executing it.
func (k Keeper) SimulateSwap(ctx context.Context, poolID uint64, denomIn, denomOut string, amountIn sdkmath.Int, limitRatio sdkmath.LegacyDec) (*types.QueryQuoteResponse, error) {
	pool, found := k.GetPool(ctx, poolID)
	if !found {
		return nil, types.ErrPoolNotFound.Wrapf("pool %d", poolID)
	}
	i, ok := pool.AssetIndex(denomIn)
	if !ok {
		return nil, types.ErrAssetNotInPool.Wrapf("%s not in pool %d", denomIn, poolID)
	}
	j, ok := pool.AssetIndex(denomOut)
	if !ok {
		return nil, types.ErrAssetNotInPool.Wrapf("%s not in pool %d", denomOut, poolID)
	}

	quote, err := k.quoteSwap(pool, i, j, amountIn, limitRatio)
	if err != nil {
		return nil, err
	}
	feeTotal, _, _ := splitFee(quote.FeeDec, pool.ProtocolShare)
	return &types.QueryQuoteResponse{
		AmountIn:  quote.GrossIn,
		AmountOut: quote.AmountOut,
		Fee:       feeTotal,
		Capped:    quote.Capped,
		Limited:   quote.Limited,
	}, nil
}
