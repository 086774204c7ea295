package keeper_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/softmax-labs/softswap/testutil/keeper"
	"github.com/softmax-labs/softswap/x/lmsr/keeper"
)

func TestInvariantsHoldAfterOperations(t *testing.T) {
	k, bank, ctx := testkeeper.LmsrKeeper(t)
	pool := createTestPool(t, k, bank, ctx)

	bank.Fund(trader, coins(t, "10000uatom"))
	_, err := k.Swap(ctx, trader, pool.Id, "uatom", "uusdc", sdkmath.NewInt(10000), sdkmath.ZeroInt(), nilDec())
	require.NoError(t, err)

	_, broken := keeper.PoolConsistencyInvariant(*k)(ctx)
	require.False(t, broken)
	_, broken = keeper.ShareSupplyInvariant(*k)(ctx)
	require.False(t, broken)
	_, broken = keeper.ProtocolFeesInvariant(*k)(ctx)
	require.False(t, broken)
}

func TestPoolConsistencyInvariantDetectsCorruption(t *testing.T) {
	k, bank, ctx := testkeeper.LmsrKeeper(t)
	pool := createTestPool(t, k, bank, ctx)

	pool.Kappa = sdkmath.LegacyZeroDec()
	k.SetPool(ctx, pool)

	msg, broken := keeper.PoolConsistencyInvariant(*k)(ctx)
	require.True(t, broken, msg)
}

func TestShareSupplyInvariantDetectsMismatch(t *testing.T) {
	k, bank, ctx := testkeeper.LmsrKeeper(t)
	pool := createTestPool(t, k, bank, ctx)

	pool.TotalShares = pool.TotalShares.Add(sdkmath.OneInt())
	k.SetPool(ctx, pool)

	msg, broken := keeper.ShareSupplyInvariant(*k)(ctx)
	require.True(t, broken, msg)
}
