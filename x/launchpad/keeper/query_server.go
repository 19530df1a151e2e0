package keeper

import (
	"context"
	"fmt"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/paw-chain/launchpad/x/launchpad/types"
)

type queryServer struct {
	Keeper
}

const (
	defaultPaginationLimit = 100
	maxPaginationLimit     = 1000
)

// NewQueryServerImpl returns an implementation of the launchpad QueryServer interface
func NewQueryServerImpl(keeper Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

var _ types.QueryServer = queryServer{}

// Params returns the module parameters
func (qs queryServer) Params(goCtx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	params, err := qs.Keeper.GetParams(goCtx)
	if err != nil {
		return nil, fmt.Errorf("Params: get params: %w", err)
	}

	return &types.QueryParamsResponse{Params: params}, nil
}

// Campaign returns a specific campaign by ID
func (qs queryServer) Campaign(goCtx context.Context, req *types.QueryCampaignRequest) (*types.QueryCampaignResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	campaign, err := qs.Keeper.GetCampaign(goCtx, req.CampaignId)
	if err != nil {
		return nil, fmt.Errorf("Campaign: get campaign %d: %w", req.CampaignId, err)
	}

	return &types.QueryCampaignResponse{Campaign: *campaign}, nil
}

// Campaigns returns campaigns with bounded offset/limit pagination
func (qs queryServer) Campaigns(goCtx context.Context, req *types.QueryCampaignsRequest) (*types.QueryCampaignsResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	limit := req.Limit
	if limit == 0 {
		limit = defaultPaginationLimit
	}
	if limit > maxPaginationLimit {
		limit = maxPaginationLimit
	}

	campaigns := make([]types.Campaign, 0, limit)
	var seen uint64
	err := qs.Keeper.IterateCampaigns(goCtx, func(campaign types.Campaign) bool {
		seen++
		if seen <= req.Offset {
			return false
		}
		if uint64(len(campaigns)) >= limit {
			return true
		}
		campaigns = append(campaigns, campaign)
		return false
	})
	if err != nil {
		return nil, fmt.Errorf("Campaigns: iterate: %w", err)
	}

	return &types.QueryCampaignsResponse{
		Campaigns: campaigns,
		Total:     qs.Keeper.GetTotalCampaignsCount(goCtx),
	}, nil
}

// Quote prices a hypothetical purchase without mutating any state
func (qs queryServer) Quote(goCtx context.Context, req *types.QueryQuoteRequest) (*types.QueryQuoteResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}
	if req.AmountIn.IsNil() || !req.AmountIn.IsPositive() {
		return nil, types.ErrZeroAmount.Wrap("quote amount must be positive")
	}

	campaign, err := qs.Keeper.GetCampaign(goCtx, req.CampaignId)
	if err != nil {
		return nil, fmt.Errorf("Quote: get campaign %d: %w", req.CampaignId, err)
	}

	return &types.QueryQuoteResponse{TokensOut: campaign.Quote(req.AmountIn)}, nil
}

// CurrentPrice returns the spot price on a campaign's curve
func (qs queryServer) CurrentPrice(goCtx context.Context, req *types.QueryCurrentPriceRequest) (*types.QueryCurrentPriceResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	campaign, err := qs.Keeper.GetCampaign(goCtx, req.CampaignId)
	if err != nil {
		return nil, fmt.Errorf("CurrentPrice: get campaign %d: %w", req.CampaignId, err)
	}

	return &types.QueryCurrentPriceResponse{Price: campaign.CurrentPrice()}, nil
}

// Allocations returns a campaign's four-way supply split
func (qs queryServer) Allocations(goCtx context.Context, req *types.QueryAllocationsRequest) (*types.QueryAllocationsResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	campaign, err := qs.Keeper.GetCampaign(goCtx, req.CampaignId)
	if err != nil {
		return nil, fmt.Errorf("Allocations: get campaign %d: %w", req.CampaignId, err)
	}

	return &types.QueryAllocationsResponse{Allocations: campaign.Allocations}, nil
}
