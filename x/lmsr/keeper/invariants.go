package keeper

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/softmax-labs/softswap/x/lmsr/types"
)

// RegisterInvariants registers all lmsr invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "pool-consistency", PoolConsistencyInvariant(k))
	ir.RegisterRoute(types.ModuleName, "share-supply", ShareSupplyInvariant(k))
	ir.RegisterRoute(types.ModuleName, "protocol-fees", ProtocolFeesInvariant(k))
}

// PoolConsistencyInvariant checks that every stored pool is structurally
// valid: parallel vectors aligned, balances non-negative, pricing fields in
// range.
func PoolConsistencyInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		for _, pool := range k.GetAllPools(ctx) {
			if err := pool.Validate(); err != nil {
				return sdk.FormatInvariant(types.ModuleName, "pool-consistency",
					fmt.Sprintf("pool %d is invalid: %s", pool.Id, err)), true
			}
		}
		return sdk.FormatInvariant(types.ModuleName, "pool-consistency", "all pools valid"), false
	}
}

// ShareSupplyInvariant checks that per-provider share records sum to each
// pool's recorded total.
func ShareSupplyInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		for _, pool := range k.GetAllPools(ctx) {
			total := sdkmath.ZeroInt()
			for _, rec := range k.GetPoolShareRecords(ctx, pool.Id) {
				total = total.Add(rec.Shares)
			}
			if !total.Equal(pool.TotalShares) {
				return sdk.FormatInvariant(types.ModuleName, "share-supply",
					fmt.Sprintf("pool %d share records sum to %s, pool records %s",
						pool.Id, total, pool.TotalShares)), true
			}
		}
		return sdk.FormatInvariant(types.ModuleName, "share-supply", "share records consistent"), false
	}
}

// ProtocolFeesInvariant checks that the fee ledger holds no negative
// entries.
func ProtocolFeesInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		for _, coin := range k.GetAllProtocolFees(ctx) {
			if coin.Amount.IsNegative() {
				return sdk.FormatInvariant(types.ModuleName, "protocol-fees",
					fmt.Sprintf("negative protocol fee %s", coin)), true
			}
		}
		return sdk.FormatInvariant(types.ModuleName, "protocol-fees", "fee ledger non-negative"), false
	}
}
