package types

// Event types for the launchpad module
const (
	EventTypeCampaignCreated   = "campaign_created"
	EventTypeBuy               = "launchpad_buy"
	EventTypeFundingComplete   = "funding_complete"
	EventTypeCampaignFinalized = "campaign_finalized"
	EventTypeLiquidityDeployed = "liquidity_deployed"
)

// Event attribute keys
const (
	AttributeKeyCampaignID      = "campaign_id"
	AttributeKeyCreator         = "creator"
	AttributeKeyBuyer           = "buyer"
	AttributeKeyTokenDenom      = "token_denom"
	AttributeKeySettlementDenom = "settlement_denom"
	AttributeKeyAmountIn        = "amount_in"
	AttributeKeyTokensOut       = "tokens_out"
	AttributeKeyTotalRaised     = "total_raised"
	AttributeKeyTokensSold      = "tokens_sold"
	AttributeKeyVenueKind       = "venue_kind"
	AttributeKeyPoolID          = "pool_id"
	AttributeKeyCreatorProceeds = "creator_proceeds"
	AttributeKeyLiquidityTokens = "liquidity_tokens"
	AttributeKeyLiquidityQuote  = "liquidity_settlement"
)
