package types

// The message types are hand-written and serialized with amino JSON; the
// methods below satisfy the proto.Message side of the sdk.Msg interface.

func (msg *MsgCreatePool) Reset()        { *msg = MsgCreatePool{} }
func (msg *MsgCreatePool) ProtoMessage() {}
func (msg *MsgCreatePool) String() string {
	out, _ := amino.MarshalJSON(msg)
	return string(out)
}

func (msg *MsgSwap) Reset()        { *msg = MsgSwap{} }
func (msg *MsgSwap) ProtoMessage() {}
func (msg *MsgSwap) String() string {
	out, _ := amino.MarshalJSON(msg)
	return string(out)
}

func (msg *MsgMint) Reset()        { *msg = MsgMint{} }
func (msg *MsgMint) ProtoMessage() {}
func (msg *MsgMint) String() string {
	out, _ := amino.MarshalJSON(msg)
	return string(out)
}

func (msg *MsgBurn) Reset()        { *msg = MsgBurn{} }
func (msg *MsgBurn) ProtoMessage() {}
func (msg *MsgBurn) String() string {
	out, _ := amino.MarshalJSON(msg)
	return string(out)
}

func (msg *MsgSwapMint) Reset()        { *msg = MsgSwapMint{} }
func (msg *MsgSwapMint) ProtoMessage() {}
func (msg *MsgSwapMint) String() string {
	out, _ := amino.MarshalJSON(msg)
	return string(out)
}

func (msg *MsgBurnSwap) Reset()        { *msg = MsgBurnSwap{} }
func (msg *MsgBurnSwap) ProtoMessage() {}
func (msg *MsgBurnSwap) String() string {
	out, _ := amino.MarshalJSON(msg)
	return string(out)
}

func (msg *MsgWithdrawProtocolFees) Reset()        { *msg = MsgWithdrawProtocolFees{} }
func (msg *MsgWithdrawProtocolFees) ProtoMessage() {}
func (msg *MsgWithdrawProtocolFees) String() string {
	out, _ := amino.MarshalJSON(msg)
	return string(out)
}
