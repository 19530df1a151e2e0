package types

import (
	"context"

	"cosmossdk.io/math"
)

// MsgServer defines the message server interface
type MsgServer interface {
	CreateCampaign(context.Context, *MsgCreateCampaign) (*MsgCreateCampaignResponse, error)
	Buy(context.Context, *MsgBuy) (*MsgBuyResponse, error)
	Finalize(context.Context, *MsgFinalize) (*MsgFinalizeResponse, error)
}

// MsgCreateCampaignResponse defines the response for CreateCampaign
type MsgCreateCampaignResponse struct {
	CampaignId uint64 `json:"campaign_id"`
	TokenDenom string `json:"token_denom"`
}

// MsgBuyResponse defines the response for Buy
type MsgBuyResponse struct {
	TokensOut       math.Int `json:"tokens_out"`
	FundingComplete bool     `json:"funding_complete"`
}

// MsgFinalizeResponse defines the response for Finalize
type MsgFinalizeResponse struct {
	PoolId              uint64   `json:"pool_id"`
	CreatorProceeds     math.Int `json:"creator_proceeds"`
	LiquidityTokens     math.Int `json:"liquidity_tokens"`
	LiquiditySettlement math.Int `json:"liquidity_settlement"`
}
