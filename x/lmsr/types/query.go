package types

import (
	"context"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// QueryServer is the read-only surface of the module.
type QueryServer interface {
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	Pool(context.Context, *QueryPoolRequest) (*QueryPoolResponse, error)
	Pools(context.Context, *QueryPoolsRequest) (*QueryPoolsResponse, error)
	Shares(context.Context, *QuerySharesRequest) (*QuerySharesResponse, error)
	Quote(context.Context, *QueryQuoteRequest) (*QueryQuoteResponse, error)
	ProtocolFees(context.Context, *QueryProtocolFeesRequest) (*QueryProtocolFeesResponse, error)
}

// QueryParamsRequest requests the module parameters.
type QueryParamsRequest struct{}

// QueryParamsResponse returns the module parameters.
type QueryParamsResponse struct {
	Params Params `json:"params"`
}

// QueryPoolRequest requests a single pool by id.
type QueryPoolRequest struct {
	PoolId uint64 `json:"pool_id"`
}

// QueryPoolResponse returns a pool together with its derived liquidity
// scale b = kappa * S.
type QueryPoolResponse struct {
	Pool           Pool              `json:"pool"`
	LiquidityScale sdkmath.LegacyDec `json:"liquidity_scale"`
}

// QueryPoolsRequest requests all pools.
type QueryPoolsRequest struct{}

// QueryPoolsResponse returns all pools.
type QueryPoolsResponse struct {
	Pools []Pool `json:"pools"`
}

// QuerySharesRequest requests one provider's shares in a pool.
type QuerySharesRequest struct {
	PoolId   uint64 `json:"pool_id"`
	Provider string `json:"provider"`
}

// QuerySharesResponse returns the provider's shares and the pool total.
type QuerySharesResponse struct {
	Shares      sdkmath.Int `json:"shares"`
	TotalShares sdkmath.Int `json:"total_shares"`
}

// QueryQuoteRequest simulates a swap without executing it. LimitRatio is
// optional, matching MsgSwap.
type QueryQuoteRequest struct {
	PoolId     uint64            `json:"pool_id"`
	DenomIn    string            `json:"denom_in"`
	DenomOut   string            `json:"denom_out"`
	AmountIn   sdkmath.Int       `json:"amount_in"`
	LimitRatio sdkmath.LegacyDec `json:"limit_ratio,omitempty"`
}

// QueryQuoteResponse returns the simulated settlement amounts.
type QueryQuoteResponse struct {
	AmountIn  sdkmath.Int `json:"amount_in"`
	AmountOut sdkmath.Int `json:"amount_out"`
	Fee       sdkmath.Int `json:"fee"`
	Capped    bool        `json:"capped"`
	Limited   bool        `json:"limited"`
}

// QueryProtocolFeesRequest requests the accrued protocol fees.
type QueryProtocolFeesRequest struct{}

// QueryProtocolFeesResponse returns the accrued protocol fees by denom.
type QueryProtocolFeesResponse struct {
	Fees sdk.Coins `json:"fees"`
}
