package keeper

import (
	"context"

	"github.com/softmax-labs/softswap/x/lmsr/lmsrmath"
	"github.com/softmax-labs/softswap/x/lmsr/types"
)

type queryServer struct {
	Keeper
}

// NewQueryServerImpl returns an implementation of the lmsr QueryServer interface
func NewQueryServerImpl(keeper Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

var _ types.QueryServer = queryServer{}

// Params returns the module parameters
func (qs queryServer) Params(goCtx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidParams.Wrap("empty request")
	}
	return &types.QueryParamsResponse{Params: qs.GetParams(goCtx)}, nil
}

// Pool returns a pool together with its derived liquidity scale
func (qs queryServer) Pool(goCtx context.Context, req *types.QueryPoolRequest) (*types.QueryPoolResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidPoolId.Wrap("empty request")
	}
	pool, found := qs.GetPool(goCtx, req.PoolId)
	if !found {
		return nil, types.ErrPoolNotFound.Wrapf("pool %d", req.PoolId)
	}
	scale, err := lmsrmath.LiquidityScale(pool.BalancesDec(), pool.Kappa)
	if err != nil {
		return nil, err
	}
	return &types.QueryPoolResponse{Pool: pool, LiquidityScale: scale}, nil
}

// Pools returns all pools
func (qs queryServer) Pools(goCtx context.Context, req *types.QueryPoolsRequest) (*types.QueryPoolsResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidPoolId.Wrap("empty request")
	}
	return &types.QueryPoolsResponse{Pools: qs.GetAllPools(goCtx)}, nil
}

// Shares returns one provider's shares in a pool
func (qs queryServer) Shares(goCtx context.Context, req *types.QuerySharesRequest) (*types.QuerySharesResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidPoolId.Wrap("empty request")
	}
	pool, found := qs.GetPool(goCtx, req.PoolId)
	if !found {
		return nil, types.ErrPoolNotFound.Wrapf("pool %d", req.PoolId)
	}
	return &types.QuerySharesResponse{
		Shares:      qs.GetShares(goCtx, req.PoolId, req.Provider),
		TotalShares: pool.TotalShares,
	}, nil
}

// Quote simulates a swap without executing it
func (qs queryServer) Quote(goCtx context.Context, req *types.QueryQuoteRequest) (*types.QueryQuoteResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidPoolId.Wrap("empty request")
	}
	if req.AmountIn.IsNil() || !req.AmountIn.IsPositive() {
		return nil, types.ErrInvalidAmount.Wrap("amount in must be positive")
	}
	return qs.SimulateSwap(goCtx, req.PoolId, req.DenomIn, req.DenomOut, req.AmountIn, req.LimitRatio)
}

// ProtocolFees returns the accrued protocol fee ledger
func (qs queryServer) ProtocolFees(goCtx context.Context, req *types.QueryProtocolFeesRequest) (*types.QueryProtocolFeesResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidParams.Wrap("empty request")
	}
	return &types.QueryProtocolFeesResponse{Fees: qs.GetAllProtocolFees(goCtx)}, nil
}
