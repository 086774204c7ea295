package keeper

import (
	"context"
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/softmax-labs/softswap/x/lmsr/keeper"
	"github.com/softmax-labs/softswap/x/lmsr/types"
)

// Authority is the governance address used by test keepers.
var Authority = sdk.AccAddress([]byte("authority___________")).String()

// MockBankKeeper is an in-memory bank keeper. Module holdings are keyed by
// module name, account holdings by bech32 address.
type MockBankKeeper struct {
	Accounts map[string]sdk.Coins
	Modules  map[string]sdk.Coins
}

// NewMockBankKeeper returns an empty in-memory bank keeper
func NewMockBankKeeper() *MockBankKeeper {
	return &MockBankKeeper{
		Accounts: make(map[string]sdk.Coins),
		Modules:  make(map[string]sdk.Coins),
	}
}

// Fund credits coins to an account out of thin air
func (m *MockBankKeeper) Fund(addr sdk.AccAddress, coins sdk.Coins) {
	m.Accounts[addr.String()] = m.Accounts[addr.String()].Add(coins...)
}

// SpendableCoins implements types.BankKeeper
func (m *MockBankKeeper) SpendableCoins(_ context.Context, addr sdk.AccAddress) sdk.Coins {
	return m.Accounts[addr.String()]
}

// SendCoinsFromAccountToModule implements types.BankKeeper
func (m *MockBankKeeper) SendCoinsFromAccountToModule(_ context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	balance := m.Accounts[senderAddr.String()]
	if !amt.IsAllLTE(balance) {
		return types.ErrInvalidAmount.Wrapf("account %s has %s, needs %s", senderAddr, balance, amt)
	}
	m.Accounts[senderAddr.String()] = balance.Sub(amt...)
	m.Modules[recipientModule] = m.Modules[recipientModule].Add(amt...)
	return nil
}

// SendCoinsFromModuleToAccount implements types.BankKeeper
func (m *MockBankKeeper) SendCoinsFromModuleToAccount(_ context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	balance := m.Modules[senderModule]
	if !amt.IsAllLTE(balance) {
		return types.ErrInvalidAmount.Wrapf("module %s has %s, needs %s", senderModule, balance, amt)
	}
	m.Modules[senderModule] = balance.Sub(amt...)
	m.Accounts[recipientAddr.String()] = m.Accounts[recipientAddr.String()].Add(amt...)
	return nil
}

// LmsrKeeper creates a test keeper for the lmsr module backed by an
// in-memory store and the mock bank keeper
func LmsrKeeper(t testing.TB) (*keeper.Keeper, *MockBankKeeper, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	bankKeeper := NewMockBankKeeper()
	k := keeper.NewKeeper(
		codec.NewLegacyAmino(),
		storeKey,
		bankKeeper,
		Authority,
	)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())

	require.NoError(t, k.InitGenesis(ctx, *types.DefaultGenesis()))

	return k, bankKeeper, ctx
}
