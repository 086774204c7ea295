package keeper

import (
	"context"
	"fmt"

	"github.com/softmax-labs/softswap/x/lmsr/types"
)

// InitGenesis initializes the module state from a genesis state
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return fmt.Errorf("invalid lmsr genesis: %w", err)
	}
	if err := k.SetParams(ctx, genState.Params); err != nil {
		return err
	}
	k.SetNextPoolId(ctx, genState.NextPoolId)
	for _, pool := range genState.Pools {
		k.SetPool(ctx, pool)
	}
	for _, rec := range genState.Shares {
		k.SetShares(ctx, rec.PoolId, rec.Provider, rec.Shares)
	}
	for _, rec := range genState.ProtocolFees {
		k.SetProtocolFees(ctx, rec.Denom, rec.Amount)
	}
	k.metrics.PoolsTotal.Set(float64(len(genState.Pools)))
	return nil
}

// ExportGenesis exports the module state to a genesis state
func (k Keeper) ExportGenesis(ctx context.Context) *types.GenesisState {
	gs := &types.GenesisState{
		Params:       k.GetParams(ctx),
		Pools:        k.GetAllPools(ctx),
		NextPoolId:   k.PeekNextPoolId(ctx),
		Shares:       k.GetAllShareRecords(ctx),
		ProtocolFees: []types.ProtocolFeeRecord{},
	}
	for _, coin := range k.GetAllProtocolFees(ctx) {
		gs.ProtocolFees = append(gs.ProtocolFees, types.ProtocolFeeRecord{
			Denom:  coin.Denom,
			Amount: coin.Amount,
		})
	}
	return gs
}
