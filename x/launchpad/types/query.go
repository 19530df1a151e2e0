package types

import (
	"context"

	"cosmossdk.io/math"
)

// QueryServer defines the query server interface
type QueryServer interface {
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	Campaign(context.Context, *QueryCampaignRequest) (*QueryCampaignResponse, error)
	Campaigns(context.Context, *QueryCampaignsRequest) (*QueryCampaignsResponse, error)
	Quote(context.Context, *QueryQuoteRequest) (*QueryQuoteResponse, error)
	CurrentPrice(context.Context, *QueryCurrentPriceRequest) (*QueryCurrentPriceResponse, error)
	Allocations(context.Context, *QueryAllocationsRequest) (*QueryAllocationsResponse, error)
}

// QueryParamsRequest requests the module parameters
type QueryParamsRequest struct{}

// QueryParamsResponse returns the module parameters
type QueryParamsResponse struct {
	Params Params `json:"params"`
}

// QueryCampaignRequest requests a single campaign by id
type QueryCampaignRequest struct {
	CampaignId uint64 `json:"campaign_id"`
}

// QueryCampaignResponse returns a single campaign
type QueryCampaignResponse struct {
	Campaign Campaign `json:"campaign"`
}

// QueryCampaignsRequest requests campaigns with offset/limit pagination
type QueryCampaignsRequest struct {
	Offset uint64 `json:"offset"`
	Limit  uint64 `json:"limit"`
}

// QueryCampaignsResponse returns a page of campaigns
type QueryCampaignsResponse struct {
	Campaigns []Campaign `json:"campaigns"`
	Total     uint64     `json:"total"`
}

// QueryQuoteRequest prices a hypothetical purchase against the current curve
type QueryQuoteRequest struct {
	CampaignId uint64   `json:"campaign_id"`
	AmountIn   math.Int `json:"amount_in"`
}

// QueryQuoteResponse returns the units receivable for the quoted amount
type QueryQuoteResponse struct {
	TokensOut math.Int `json:"tokens_out"`
}

// QueryCurrentPriceRequest requests the spot price on a campaign's curve
type QueryCurrentPriceRequest struct {
	CampaignId uint64 `json:"campaign_id"`
}

// QueryCurrentPriceResponse returns the spot price scaled by PricePrecision
type QueryCurrentPriceResponse struct {
	Price math.Int `json:"price"`
}

// QueryAllocationsRequest requests a campaign's allocation table
type QueryAllocationsRequest struct {
	CampaignId uint64 `json:"campaign_id"`
}

// QueryAllocationsResponse returns the four-way supply split
type QueryAllocationsResponse struct {
	Allocations AllocationTable `json:"allocations"`
}
