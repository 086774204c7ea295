package keeper

import (
	"context"

	"github.com/softmax-labs/softswap/x/lmsr/types"
)

// GetParams returns the module parameters, falling back to defaults when
// none are stored yet.
func (k Keeper) GetParams(ctx context.Context) types.Params {
	store := k.getStore(ctx)
	bz := store.Get(types.ParamsKey)
	if bz == nil {
		return types.DefaultParams()
	}
	var params types.Params
	k.cdc.MustUnmarshalJSON(bz, &params)
	return params
}

// SetParams validates and stores the module parameters.
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	store := k.getStore(ctx)
	store.Set(types.ParamsKey, k.cdc.MustMarshalJSON(&params))
	return nil
}
