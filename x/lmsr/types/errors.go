package types

import (
	"cosmossdk.io/errors"
)

// Module sentinel errors. Codes below 20 belong to the math kernel in
// x/lmsr/lmsrmath, which shares this codespace.
var (
	ErrInvalidPoolId      = errors.Register(ModuleName, 20, "invalid pool id")
	ErrPoolNotFound       = errors.Register(ModuleName, 21, "pool not found")
	ErrPoolAlreadyExists  = errors.Register(ModuleName, 22, "pool already exists")
	ErrInvalidDenom       = errors.Register(ModuleName, 23, "invalid asset denomination")
	ErrSameDenom          = errors.Register(ModuleName, 24, "input and output asset must differ")
	ErrAssetNotInPool     = errors.Register(ModuleName, 25, "asset is not part of the pool")
	ErrInvalidAmount      = errors.Register(ModuleName, 26, "invalid amount")
	ErrSlippage           = errors.Register(ModuleName, 27, "output amount less than minimum required")
	ErrInsufficientShares = errors.Register(ModuleName, 28, "insufficient liquidity shares")
	ErrInvalidPoolState   = errors.Register(ModuleName, 29, "pool state is inconsistent")
	ErrInvalidAddress     = errors.Register(ModuleName, 30, "invalid address")
	ErrUnauthorized       = errors.Register(ModuleName, 31, "unauthorized")
	ErrInvalidParams      = errors.Register(ModuleName, 32, "invalid module parameters")
	ErrTooManyAssets      = errors.Register(ModuleName, 33, "pool exceeds the maximum asset count")
	ErrBelowMinLiquidity  = errors.Register(ModuleName, 34, "seed liquidity below the minimum")
	ErrInsufficientFunds  = errors.Register(ModuleName, 35, "insufficient spendable balance")
)
