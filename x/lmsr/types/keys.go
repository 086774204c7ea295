package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// ModuleName defines the module name
	ModuleName = "lmsr"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName
)

// Store key prefixes
var (
	PoolKey         = []byte{0x01} // prefix for pool store
	PoolCountKey    = []byte{0x02} // key for the next pool id
	SharesKey       = []byte{0x03} // prefix for liquidity provider shares
	ParamsKey       = []byte{0x04} // key for module parameters
	ProtocolFeesKey = []byte{0x05} // prefix for accrued protocol fees by denom
)

// GetPoolKey returns the store key for a pool
func GetPoolKey(poolId uint64) []byte {
	return append(PoolKey, sdk.Uint64ToBigEndian(poolId)...)
}

// GetSharesKey returns the store key for one provider's shares in a pool
func GetSharesKey(poolId uint64, provider string) []byte {
	key := append(SharesKey, sdk.Uint64ToBigEndian(poolId)...)
	return append(key, []byte(provider)...)
}

// GetPoolSharesPrefix returns the prefix covering all share records of a pool
func GetPoolSharesPrefix(poolId uint64) []byte {
	return append(SharesKey, sdk.Uint64ToBigEndian(poolId)...)
}

// GetProtocolFeesKey returns the store key for accrued protocol fees in a denom
func GetProtocolFeesKey(denom string) []byte {
	return append(ProtocolFeesKey, []byte(denom)...)
}
