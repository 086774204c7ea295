package keeper

import (
	"context"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/softmax-labs/softswap/x/lmsr/types"
)

// Keeper of the lmsr store. The module account holds every pool's balances
// together with the accrued protocol fees; pool records track how much of
// that custody belongs to which pool.
type Keeper struct {
	storeKey   storetypes.StoreKey
	cdc        *codec.LegacyAmino
	bankKeeper types.BankKeeper
	authority  string
	metrics    *Metrics
}

// NewKeeper creates a new lmsr Keeper instance
func NewKeeper(
	cdc *codec.LegacyAmino,
	key storetypes.StoreKey,
	bankKeeper types.BankKeeper,
	authority string,
) *Keeper {
	return &Keeper{
		storeKey:   key,
		cdc:        cdc,
		bankKeeper: bankKeeper,
		authority:  authority,
		metrics:    NewMetrics(),
	}
}

// GetAuthority returns the module's authority (the governance account).
func (k Keeper) GetAuthority() string {
	return k.authority
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.Logger().With("module", "x/"+types.ModuleName)
}

// getStore returns the KVStore for the lmsr module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}
