package keeper

import (
	"context"

	sdkmath "cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/softmax-labs/softswap/x/lmsr/types"
)

// splitFee rounds a decimal fee into the protocol cut and the LP-retained
// remainder. The total fee rounds up (in the pool's favor against the
// trader) and the protocol cut rounds down (in the LPs' favor), so the
// retained part absorbs both roundings.
func splitFee(fee sdkmath.LegacyDec, protocolShare sdkmath.LegacyDec) (total, protocolCut, retained sdkmath.Int) {
	total = fee.Ceil().TruncateInt()
	protocolCut = fee.Mul(protocolShare).TruncateInt()
	if protocolCut.GT(total) {
		protocolCut = total
	}
	retained = total.Sub(protocolCut)
	return total, protocolCut, retained
}

// GetProtocolFees returns the accrued protocol fees in one denom
func (k Keeper) GetProtocolFees(ctx context.Context, denom string) sdkmath.Int {
	store := k.getStore(ctx)
	bz := store.Get(types.GetProtocolFeesKey(denom))
	if bz == nil {
		return sdkmath.ZeroInt()
	}
	var amount sdkmath.Int
	k.cdc.MustUnmarshalJSON(bz, &amount)
	return amount
}

// SetProtocolFees stores the accrued protocol fees in one denom, deleting
// the record at zero
func (k Keeper) SetProtocolFees(ctx context.Context, denom string, amount sdkmath.Int) {
	store := k.getStore(ctx)
	key := types.GetProtocolFeesKey(denom)
	if amount.IsZero() {
		store.Delete(key)
		return
	}
	store.Set(key, k.cdc.MustMarshalJSON(&amount))
}

// accrueProtocolFees adds the protocol cut of a fee to the withdrawal ledger.
// The coins stay in the module account; only the earmark moves.
func (k Keeper) accrueProtocolFees(ctx context.Context, denom string, amount sdkmath.Int) {
	if !amount.IsPositive() {
		return
	}
	k.SetProtocolFees(ctx, denom, k.GetProtocolFees(ctx, denom).Add(amount))
	k.metrics.ProtocolFeesAccrued.WithLabelValues(denom).Add(float64(amount.Int64()))
}

// GetAllProtocolFees returns the whole protocol fee ledger as sorted coins
func (k Keeper) GetAllProtocolFees(ctx context.Context) sdk.Coins {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.ProtocolFeesKey)
	defer iterator.Close()

	fees := sdk.NewCoins()
	for ; iterator.Valid(); iterator.Next() {
		denom := string(iterator.Key()[len(types.ProtocolFeesKey):])
		var amount sdkmath.Int
		k.cdc.MustUnmarshalJSON(iterator.Value(), &amount)
		fees = fees.Add(sdk.NewCoin(denom, amount))
	}
	return fees
}

// WithdrawProtocolFees sends accrued protocol fees to the recipient. Only
// the module authority may call this; an empty denom list withdraws the
// whole ledger.
func (k Keeper) WithdrawProtocolFees(ctx context.Context, authority string, recipient sdk.AccAddress, denoms []string) (sdk.Coins, error) {
	if authority != k.authority {
		return nil, types.ErrUnauthorized.Wrapf("expected authority %s, got %s", k.authority, authority)
	}

	var withdrawn sdk.Coins
	if len(denoms) == 0 {
		withdrawn = k.GetAllProtocolFees(ctx)
	} else {
		withdrawn = sdk.NewCoins()
		for _, denom := range denoms {
			amount := k.GetProtocolFees(ctx, denom)
			if amount.IsPositive() {
				withdrawn = withdrawn.Add(sdk.NewCoin(denom, amount))
			}
		}
	}
	if withdrawn.IsZero() {
		return sdk.NewCoins(), nil
	}

	// Clear the ledger before moving coins.
	for _, coin := range withdrawn {
		k.SetProtocolFees(ctx, coin.Denom, sdkmath.ZeroInt())
	}
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, recipient, withdrawn); err != nil {
		return nil, err
	}

	for _, coin := range withdrawn {
		k.metrics.ProtocolFeesWithdrawn.WithLabelValues(coin.Denom).Add(float64(coin.Amount.Int64()))
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeWithdrawFees,
			sdk.NewAttribute(types.AttributeKeyRecipient, recipient.String()),
			sdk.NewAttribute(types.AttributeKeyWithdrawn, withdrawn.String()),
		),
	)

	return withdrawn, nil
}
