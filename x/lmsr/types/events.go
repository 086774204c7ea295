package types

// Event types emitted by the module
const (
	EventTypeCreatePool   = "create_pool"
	EventTypeSwap         = "swap"
	EventTypeMint         = "mint"
	EventTypeBurn         = "burn"
	EventTypeSwapMint     = "swap_mint"
	EventTypeBurnSwap     = "burn_swap"
	EventTypeWithdrawFees = "withdraw_protocol_fees"
)

// Event attribute keys
const (
	AttributeKeyPoolId    = "pool_id"
	AttributeKeyCreator   = "creator"
	AttributeKeyTrader    = "trader"
	AttributeKeyProvider  = "provider"
	AttributeKeyDenomIn   = "denom_in"
	AttributeKeyDenomOut  = "denom_out"
	AttributeKeyAmountIn  = "amount_in"
	AttributeKeyAmountOut = "amount_out"
	AttributeKeyFee       = "fee"
	AttributeKeyShares    = "shares"
	AttributeKeyRefunded  = "refunded"
	AttributeKeyCapped    = "capped"
	AttributeKeyLimited   = "limited"
	AttributeKeyRecipient = "recipient"
	AttributeKeyWithdrawn = "withdrawn"
)
