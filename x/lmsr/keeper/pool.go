package keeper

import (
	"context"
	"encoding/binary"
	"strconv"

	sdkmath "cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/softmax-labs/softswap/x/lmsr/types"
)

// GetNextPoolID returns the next pool ID and increments the counter
func (k Keeper) GetNextPoolID(ctx context.Context) uint64 {
	store := k.getStore(ctx)
	bz := store.Get(types.PoolCountKey)

	var poolID uint64
	if bz == nil {
		poolID = 1
	} else {
		poolID = binary.BigEndian.Uint64(bz)
	}

	nextBz := make([]byte, 8)
	binary.BigEndian.PutUint64(nextBz, poolID+1)
	store.Set(types.PoolCountKey, nextBz)

	return poolID
}

// SetNextPoolId sets the next pool ID counter
func (k Keeper) SetNextPoolId(ctx context.Context, poolID uint64) {
	store := k.getStore(ctx)
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, poolID)
	store.Set(types.PoolCountKey, bz)
}

// PeekNextPoolId returns the counter without incrementing it.
func (k Keeper) PeekNextPoolId(ctx context.Context) uint64 {
	store := k.getStore(ctx)
	bz := store.Get(types.PoolCountKey)
	if bz == nil {
		return 1
	}
	return binary.BigEndian.Uint64(bz)
}

// GetPool returns a pool by id
func (k Keeper) GetPool(ctx context.Context, poolID uint64) (types.Pool, bool) {
	store := k.getStore(ctx)
	bz := store.Get(types.GetPoolKey(poolID))
	if bz == nil {
		return types.Pool{}, false
	}
	var pool types.Pool
	k.cdc.MustUnmarshalJSON(bz, &pool)
	return pool, true
}

// SetPool stores a pool record
func (k Keeper) SetPool(ctx context.Context, pool types.Pool) {
	store := k.getStore(ctx)
	store.Set(types.GetPoolKey(pool.Id), k.cdc.MustMarshalJSON(&pool))

	label := strconv.FormatUint(pool.Id, 10)
	for i, denom := range pool.Assets {
		bal, _ := pool.Balances[i].ToLegacyDec().Float64()
		k.metrics.PoolBalances.WithLabelValues(label, denom).Set(bal)
	}
	shares, _ := pool.TotalShares.ToLegacyDec().Float64()
	k.metrics.ShareSupply.WithLabelValues(label).Set(shares)
}

// GetAllPools returns every stored pool, ordered by id
func (k Keeper) GetAllPools(ctx context.Context) []types.Pool {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.PoolKey)
	defer iterator.Close()

	var pools []types.Pool
	for ; iterator.Valid(); iterator.Next() {
		var pool types.Pool
		k.cdc.MustUnmarshalJSON(iterator.Value(), &pool)
		pools = append(pools, pool)
	}
	return pools
}

// CreatePool creates a new pool seeded with the creator's deposits. Unset
// pricing fields fall back to the module defaults, and the creator receives
// the initial share supply, set to the total seeded balance.
func (k Keeper) CreatePool(ctx context.Context, creator sdk.AccAddress, deposits sdk.Coins, kappa sdkmath.LegacyDec, swapFees []sdkmath.LegacyDec, protocolShare sdkmath.LegacyDec) (types.Pool, error) {
	params := k.GetParams(ctx)

	if len(deposits) < 2 {
		return types.Pool{}, types.ErrInvalidAmount.Wrapf("pool needs at least 2 assets, got %d", len(deposits))
	}
	if uint32(len(deposits)) > params.MaxPoolAssets {
		return types.Pool{}, types.ErrTooManyAssets.Wrapf("%d assets exceeds the maximum of %d", len(deposits), params.MaxPoolAssets)
	}

	assets := make([]string, len(deposits))
	balances := make([]sdkmath.Int, len(deposits))
	for i, coin := range deposits {
		if coin.Amount.LT(params.MinSeedLiquidity) {
			return types.Pool{}, types.ErrBelowMinLiquidity.Wrapf(
				"seed deposit %s%s below minimum %s", coin.Amount, coin.Denom, params.MinSeedLiquidity)
		}
		assets[i] = coin.Denom
		balances[i] = coin.Amount
	}

	if kappa.IsNil() {
		kappa = params.DefaultKappa
	}
	if protocolShare.IsNil() {
		protocolShare = params.DefaultProtocolShare
	}
	if len(swapFees) == 0 {
		swapFees = make([]sdkmath.LegacyDec, len(assets))
		for i := range swapFees {
			swapFees[i] = params.DefaultSwapFee
		}
	}

	pool := types.Pool{
		Id:            k.GetNextPoolID(ctx),
		Assets:        assets,
		Balances:      balances,
		TotalShares:   sdkmath.ZeroInt(),
		Kappa:         kappa,
		SwapFees:      swapFees,
		ProtocolShare: protocolShare,
		Creator:       creator.String(),
	}
	pool.TotalShares = pool.TotalBalance()
	if err := pool.Validate(); err != nil {
		return types.Pool{}, err
	}

	// Custody first: pull the seed deposits before any state is written.
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, creator, types.ModuleName, deposits); err != nil {
		return types.Pool{}, err
	}

	k.SetPool(ctx, pool)
	k.SetShares(ctx, pool.Id, creator.String(), pool.TotalShares)
	k.metrics.PoolCreationRate.Inc()
	k.metrics.PoolsTotal.Set(float64(len(k.GetAllPools(ctx))))

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeCreatePool,
			sdk.NewAttribute(types.AttributeKeyPoolId, strconv.FormatUint(pool.Id, 10)),
			sdk.NewAttribute(types.AttributeKeyCreator, pool.Creator),
			sdk.NewAttribute(types.AttributeKeyShares, pool.TotalShares.String()),
		),
	)

	return pool, nil
}
