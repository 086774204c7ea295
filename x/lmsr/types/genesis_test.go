package types_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/softmax-labs/softswap/x/lmsr/types"
)

func TestDefaultGenesisIsValid(t *testing.T) {
	require.NoError(t, types.DefaultGenesis().Validate())
}

func TestGenesisStateValidate(t *testing.T) {
	base := func() types.GenesisState {
		pool := validPool()
		return types.GenesisState{
			Params:     types.DefaultParams(),
			Pools:      []types.Pool{pool},
			NextPoolId: 2,
			Shares: []types.ShareRecord{
				{PoolId: pool.Id, Provider: addr, Shares: pool.TotalShares},
			},
			ProtocolFees: []types.ProtocolFeeRecord{
				{Denom: "uatom", Amount: sdkmath.NewInt(42)},
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*types.GenesisState)
		wantErr bool
	}{
		{name: "valid", mutate: func(*types.GenesisState) {}},
		{name: "zero next pool id", mutate: func(gs *types.GenesisState) { gs.NextPoolId = 0 }, wantErr: true},
		{name: "pool id at counter", mutate: func(gs *types.GenesisState) { gs.NextPoolId = 1 }, wantErr: true},
		{name: "duplicate pool", mutate: func(gs *types.GenesisState) {
			gs.Pools = append(gs.Pools, gs.Pools[0])
		}, wantErr: true},
		{name: "invalid pool", mutate: func(gs *types.GenesisState) {
			gs.Pools[0].Kappa = sdkmath.LegacyZeroDec()
		}, wantErr: true},
		{name: "share for unknown pool", mutate: func(gs *types.GenesisState) {
			gs.Shares[0].PoolId = 9
		}, wantErr: true},
		{name: "share sum mismatch", mutate: func(gs *types.GenesisState) {
			gs.Shares[0].Shares = gs.Shares[0].Shares.Sub(sdkmath.OneInt())
		}, wantErr: true},
		{name: "non positive share record", mutate: func(gs *types.GenesisState) {
			gs.Shares[0].Shares = sdkmath.ZeroInt()
		}, wantErr: true},
		{name: "missing provider", mutate: func(gs *types.GenesisState) {
			gs.Shares[0].Provider = "  "
		}, wantErr: true},
		{name: "duplicate fee denom", mutate: func(gs *types.GenesisState) {
			gs.ProtocolFees = append(gs.ProtocolFees, gs.ProtocolFees[0])
		}, wantErr: true},
		{name: "negative fee", mutate: func(gs *types.GenesisState) {
			gs.ProtocolFees[0].Amount = sdkmath.NewInt(-1)
		}, wantErr: true},
		{name: "invalid params", mutate: func(gs *types.GenesisState) {
			gs.Params.MaxPoolAssets = 1
		}, wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gs := base()
			tc.mutate(&gs)
			err := gs.Validate()
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestParamsValidate(t *testing.T) {
	require.NoError(t, types.DefaultParams().Validate())

	p := types.DefaultParams()
	p.DefaultKappa = sdkmath.LegacyZeroDec()
	require.Error(t, p.Validate())

	p = types.DefaultParams()
	p.DefaultSwapFee = sdkmath.LegacyOneDec()
	require.Error(t, p.Validate())

	p = types.DefaultParams()
	p.DefaultProtocolShare = sdkmath.LegacyNewDec(2)
	require.Error(t, p.Validate())

	// The boundary itself is excluded: a full protocol carve-out would
	// leave the pool with no fee retention at all.
	p = types.DefaultParams()
	p.DefaultProtocolShare = sdkmath.LegacyOneDec()
	require.Error(t, p.Validate())

	p = types.DefaultParams()
	p.MinSeedLiquidity = sdkmath.NewInt(-1)
	require.Error(t, p.Validate())

	p = types.DefaultParams()
	p.MaxPoolAssets = 1
	require.Error(t, p.Validate())
}
