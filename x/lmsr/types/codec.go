package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterCodec registers the necessary interfaces and concrete types
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgCreatePool{}, "lmsr/MsgCreatePool", nil)
	cdc.RegisterConcrete(&MsgSwap{}, "lmsr/MsgSwap", nil)
	cdc.RegisterConcrete(&MsgMint{}, "lmsr/MsgMint", nil)
	cdc.RegisterConcrete(&MsgBurn{}, "lmsr/MsgBurn", nil)
	cdc.RegisterConcrete(&MsgSwapMint{}, "lmsr/MsgSwapMint", nil)
	cdc.RegisterConcrete(&MsgBurnSwap{}, "lmsr/MsgBurnSwap", nil)
	cdc.RegisterConcrete(&MsgWithdrawProtocolFees{}, "lmsr/MsgWithdrawProtocolFees", nil)
}

// RegisterInterfaces registers the module's interfaces with the interface registry
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgCreatePool{},
		&MsgSwap{},
		&MsgMint{},
		&MsgBurn{},
		&MsgSwapMint{},
		&MsgBurnSwap{},
		&MsgWithdrawProtocolFees{},
	)
}

var (
	amino     = codec.NewLegacyAmino()
	ModuleCdc = codec.NewAminoCodec(amino)
)

func init() {
	RegisterCodec(amino)
	amino.Seal()
}
