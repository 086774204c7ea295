package keeper_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/softmax-labs/softswap/testutil/keeper"
	"github.com/softmax-labs/softswap/x/lmsr/keeper"
	"github.com/softmax-labs/softswap/x/lmsr/types"
)

var (
	creator  = sdk.AccAddress([]byte("creator_____________"))
	trader   = sdk.AccAddress([]byte("trader______________"))
	provider = sdk.AccAddress([]byte("provider____________"))
)

func coins(t *testing.T, s string) sdk.Coins {
	t.Helper()
	c, err := sdk.ParseCoinsNormalized(s)
	require.NoError(t, err)
	return c
}

func nilDec() sdkmath.LegacyDec {
	return sdkmath.LegacyDec{}
}

// createTestPool seeds a balanced two-asset pool with the module defaults
// and returns it.
func createTestPool(t *testing.T, k *keeper.Keeper, bank *testkeeper.MockBankKeeper, ctx sdk.Context) types.Pool {
	t.Helper()
	seed := coins(t, "1000000uatom,1000000uusdc")
	bank.Fund(creator, seed)

	pool, err := k.CreatePool(ctx, creator, seed, nilDec(), nil, nilDec())
	require.NoError(t, err)
	return pool
}

// moduleBalanceMatchesBooks checks that the module account holds exactly the
// pool balances plus the earmarked protocol fees in every pool denom.
func moduleBalanceMatchesBooks(t *testing.T, k *keeper.Keeper, bank *testkeeper.MockBankKeeper, ctx sdk.Context, poolID uint64) {
	t.Helper()
	pool, found := k.GetPool(ctx, poolID)
	require.True(t, found)

	held := bank.Modules[types.ModuleName]
	for i, denom := range pool.Assets {
		want := pool.Balances[i].Add(k.GetProtocolFees(ctx, denom))
		require.Equal(t, want.String(), held.AmountOf(denom).String(),
			"module holdings of %s out of sync with pool books", denom)
	}
}
