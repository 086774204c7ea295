package types_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/softmax-labs/softswap/x/lmsr/types"
)

var (
	addr      = sdk.AccAddress([]byte("signer______________")).String()
	otherAddr = sdk.AccAddress([]byte("recipient___________")).String()
)

func validSeed(t *testing.T) sdk.Coins {
	t.Helper()
	c, err := sdk.ParseCoinsNormalized("1000uatom,1000uusdc")
	require.NoError(t, err)
	return c
}

func TestMsgCreatePoolValidateBasic(t *testing.T) {
	tests := []struct {
		name    string
		msg     types.MsgCreatePool
		wantErr error
	}{
		{
			name: "valid with defaults",
			msg:  *types.NewMsgCreatePool(addr, validSeed(t), sdkmath.LegacyDec{}, nil, sdkmath.LegacyDec{}),
		},
		{
			name: "valid with explicit pricing",
			msg: *types.NewMsgCreatePool(addr, validSeed(t),
				sdkmath.LegacyNewDecWithPrec(2, 1),
				[]sdkmath.LegacyDec{sdkmath.LegacyNewDecWithPrec(1, 3), sdkmath.LegacyNewDecWithPrec(2, 3)},
				sdkmath.LegacyNewDecWithPrec(1, 1)),
		},
		{
			name:    "bad creator",
			msg:     *types.NewMsgCreatePool("garbage", validSeed(t), sdkmath.LegacyDec{}, nil, sdkmath.LegacyDec{}),
			wantErr: types.ErrInvalidAddress,
		},
		{
			name:    "one asset only",
			msg:     *types.NewMsgCreatePool(addr, sdk.NewCoins(sdk.NewInt64Coin("uatom", 1000)), sdkmath.LegacyDec{}, nil, sdkmath.LegacyDec{}),
			wantErr: types.ErrInvalidAmount,
		},
		{
			name:    "zero kappa",
			msg:     *types.NewMsgCreatePool(addr, validSeed(t), sdkmath.LegacyZeroDec(), nil, sdkmath.LegacyDec{}),
			wantErr: types.ErrInvalidParams,
		},
		{
			name: "fee count mismatch",
			msg: *types.NewMsgCreatePool(addr, validSeed(t), sdkmath.LegacyDec{},
				[]sdkmath.LegacyDec{sdkmath.LegacyNewDecWithPrec(3, 3)}, sdkmath.LegacyDec{}),
			wantErr: types.ErrInvalidParams,
		},
		{
			name: "fee at one",
			msg: *types.NewMsgCreatePool(addr, validSeed(t), sdkmath.LegacyDec{},
				[]sdkmath.LegacyDec{sdkmath.LegacyOneDec(), sdkmath.LegacyZeroDec()}, sdkmath.LegacyDec{}),
			wantErr: types.ErrInvalidParams,
		},
		{
			name:    "protocol share above one",
			msg:     *types.NewMsgCreatePool(addr, validSeed(t), sdkmath.LegacyDec{}, nil, sdkmath.LegacyNewDec(2)),
			wantErr: types.ErrInvalidParams,
		},
		{
			name:    "protocol share at one",
			msg:     *types.NewMsgCreatePool(addr, validSeed(t), sdkmath.LegacyDec{}, nil, sdkmath.LegacyOneDec()),
			wantErr: types.ErrInvalidParams,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.msg.ValidateBasic()
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestMsgSwapValidateBasic(t *testing.T) {
	valid := func() types.MsgSwap {
		return *types.NewMsgSwap(addr, 1, "uatom", "uusdc", sdkmath.NewInt(1000), sdkmath.ZeroInt())
	}

	tests := []struct {
		name    string
		mutate  func(*types.MsgSwap)
		wantErr error
	}{
		{name: "valid", mutate: func(*types.MsgSwap) {}},
		{
			name:   "valid with limit ratio",
			mutate: func(m *types.MsgSwap) { m.LimitRatio = sdkmath.LegacyNewDecWithPrec(12, 1) },
		},
		{
			name:    "bad trader",
			mutate:  func(m *types.MsgSwap) { m.Trader = "garbage" },
			wantErr: types.ErrInvalidAddress,
		},
		{
			name:    "zero pool id",
			mutate:  func(m *types.MsgSwap) { m.PoolId = 0 },
			wantErr: types.ErrInvalidPoolId,
		},
		{
			name:    "bad denom in",
			mutate:  func(m *types.MsgSwap) { m.DenomIn = "1bad" },
			wantErr: types.ErrInvalidDenom,
		},
		{
			name:    "same denom",
			mutate:  func(m *types.MsgSwap) { m.DenomOut = "uatom" },
			wantErr: types.ErrSameDenom,
		},
		{
			name:    "zero amount in",
			mutate:  func(m *types.MsgSwap) { m.AmountIn = sdkmath.ZeroInt() },
			wantErr: types.ErrInvalidAmount,
		},
		{
			name:    "negative min amount out",
			mutate:  func(m *types.MsgSwap) { m.MinAmountOut = sdkmath.NewInt(-1) },
			wantErr: types.ErrInvalidAmount,
		},
		{
			name:    "zero limit ratio",
			mutate:  func(m *types.MsgSwap) { m.LimitRatio = sdkmath.LegacyZeroDec() },
			wantErr: types.ErrInvalidAmount,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			msg := valid()
			tc.mutate(&msg)
			err := msg.ValidateBasic()
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestMsgMintValidateBasic(t *testing.T) {
	require.NoError(t, types.NewMsgMint(addr, 1, sdkmath.NewInt(100), sdkmath.ZeroInt()).ValidateBasic())

	require.ErrorIs(t,
		types.NewMsgMint("garbage", 1, sdkmath.NewInt(100), sdkmath.ZeroInt()).ValidateBasic(),
		types.ErrInvalidAddress)
	require.ErrorIs(t,
		types.NewMsgMint(addr, 0, sdkmath.NewInt(100), sdkmath.ZeroInt()).ValidateBasic(),
		types.ErrInvalidPoolId)
	require.ErrorIs(t,
		types.NewMsgMint(addr, 1, sdkmath.ZeroInt(), sdkmath.ZeroInt()).ValidateBasic(),
		types.ErrInvalidAmount)
	require.ErrorIs(t,
		types.NewMsgMint(addr, 1, sdkmath.NewInt(100), sdkmath.NewInt(-1)).ValidateBasic(),
		types.ErrInvalidAmount)
}

func TestMsgBurnValidateBasic(t *testing.T) {
	require.NoError(t, types.NewMsgBurn(addr, 1, sdkmath.NewInt(100), nil).ValidateBasic())

	require.ErrorIs(t,
		types.NewMsgBurn(addr, 1, sdkmath.NewInt(-5), nil).ValidateBasic(),
		types.ErrInvalidAmount)
	require.ErrorIs(t,
		types.NewMsgBurn(addr, 0, sdkmath.NewInt(100), nil).ValidateBasic(),
		types.ErrInvalidPoolId)
}

func TestMsgSwapMintValidateBasic(t *testing.T) {
	deposit := sdk.NewInt64Coin("uatom", 1000)
	require.NoError(t, types.NewMsgSwapMint(addr, 1, deposit, sdkmath.ZeroInt()).ValidateBasic())

	require.ErrorIs(t,
		types.NewMsgSwapMint("garbage", 1, deposit, sdkmath.ZeroInt()).ValidateBasic(),
		types.ErrInvalidAddress)
	require.ErrorIs(t,
		types.NewMsgSwapMint(addr, 1, sdk.NewInt64Coin("uatom", 0), sdkmath.ZeroInt()).ValidateBasic(),
		types.ErrInvalidAmount)
	require.ErrorIs(t,
		types.NewMsgSwapMint(addr, 1, deposit, sdkmath.NewInt(-1)).ValidateBasic(),
		types.ErrInvalidAmount)
}

func TestMsgBurnSwapValidateBasic(t *testing.T) {
	require.NoError(t,
		types.NewMsgBurnSwap(addr, 1, sdkmath.NewInt(100), "uusdc", sdkmath.ZeroInt()).ValidateBasic())

	require.ErrorIs(t,
		types.NewMsgBurnSwap(addr, 1, sdkmath.ZeroInt(), "uusdc", sdkmath.ZeroInt()).ValidateBasic(),
		types.ErrInvalidAmount)
	require.ErrorIs(t,
		types.NewMsgBurnSwap(addr, 1, sdkmath.NewInt(100), "1bad", sdkmath.ZeroInt()).ValidateBasic(),
		types.ErrInvalidDenom)
}

func TestMsgWithdrawProtocolFeesValidateBasic(t *testing.T) {
	require.NoError(t,
		types.NewMsgWithdrawProtocolFees(addr, otherAddr, nil).ValidateBasic())
	require.NoError(t,
		types.NewMsgWithdrawProtocolFees(addr, otherAddr, []string{"uatom", "uusdc"}).ValidateBasic())

	require.ErrorIs(t,
		types.NewMsgWithdrawProtocolFees("garbage", otherAddr, nil).ValidateBasic(),
		types.ErrInvalidAddress)
	require.ErrorIs(t,
		types.NewMsgWithdrawProtocolFees(addr, "garbage", nil).ValidateBasic(),
		types.ErrInvalidAddress)
	require.ErrorIs(t,
		types.NewMsgWithdrawProtocolFees(addr, otherAddr, []string{"uatom", "uatom"}).ValidateBasic(),
		types.ErrInvalidDenom)
}

func TestMsgSigners(t *testing.T) {
	acc := sdk.AccAddress([]byte("signer______________"))
	msg := types.NewMsgSwap(acc.String(), 1, "uatom", "uusdc", sdkmath.NewInt(1), sdkmath.ZeroInt())
	require.Equal(t, []sdk.AccAddress{acc}, msg.GetSigners())
	require.Equal(t, "swap", msg.Type())
	require.Equal(t, types.RouterKey, msg.Route())
	require.NotEmpty(t, msg.GetSignBytes())
}
