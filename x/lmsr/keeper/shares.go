package keeper

import (
	"context"

	sdkmath "cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"

	"github.com/softmax-labs/softswap/x/lmsr/types"
)

// GetShares returns one provider's LP shares in a pool
func (k Keeper) GetShares(ctx context.Context, poolID uint64, provider string) sdkmath.Int {
	store := k.getStore(ctx)
	bz := store.Get(types.GetSharesKey(poolID, provider))
	if bz == nil {
		return sdkmath.ZeroInt()
	}
	var shares sdkmath.Int
	k.cdc.MustUnmarshalJSON(bz, &shares)
	return shares
}

// SetShares stores a provider's LP shares, deleting the record at zero
func (k Keeper) SetShares(ctx context.Context, poolID uint64, provider string, shares sdkmath.Int) {
	store := k.getStore(ctx)
	key := types.GetSharesKey(poolID, provider)
	if shares.IsZero() {
		store.Delete(key)
		return
	}
	store.Set(key, k.cdc.MustMarshalJSON(&shares))
}

// AddShares credits shares to a provider
func (k Keeper) AddShares(ctx context.Context, poolID uint64, provider string, delta sdkmath.Int) {
	k.SetShares(ctx, poolID, provider, k.GetShares(ctx, poolID, provider).Add(delta))
}

// SubShares debits shares from a provider, failing on insufficient balance
func (k Keeper) SubShares(ctx context.Context, poolID uint64, provider string, delta sdkmath.Int) error {
	current := k.GetShares(ctx, poolID, provider)
	if current.LT(delta) {
		return types.ErrInsufficientShares.Wrapf("has %s, needs %s", current, delta)
	}
	k.SetShares(ctx, poolID, provider, current.Sub(delta))
	return nil
}

// GetPoolShareRecords returns every share record of a pool
func (k Keeper) GetPoolShareRecords(ctx context.Context, poolID uint64) []types.ShareRecord {
	store := k.getStore(ctx)
	prefix := types.GetPoolSharesPrefix(poolID)
	iterator := storetypes.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	var records []types.ShareRecord
	for ; iterator.Valid(); iterator.Next() {
		var shares sdkmath.Int
		k.cdc.MustUnmarshalJSON(iterator.Value(), &shares)
		records = append(records, types.ShareRecord{
			PoolId:   poolID,
			Provider: string(iterator.Key()[len(prefix):]),
			Shares:   shares,
		})
	}
	return records
}

// GetAllShareRecords returns the share records of every pool
func (k Keeper) GetAllShareRecords(ctx context.Context) []types.ShareRecord {
	var records []types.ShareRecord
	for _, pool := range k.GetAllPools(ctx) {
		records = append(records, k.GetPoolShareRecords(ctx, pool.Id)...)
	}
	return records
}
