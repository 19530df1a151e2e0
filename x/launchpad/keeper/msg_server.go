package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/launchpad/x/launchpad/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the launchpad MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// CreateCampaign handles the creation of a new launchpad campaign
func (ms msgServer) CreateCampaign(goCtx context.Context, msg *types.MsgCreateCampaign) (*types.MsgCreateCampaignResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("CreateCampaign: validate: %w", err)
	}

	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, fmt.Errorf("CreateCampaign: invalid creator address: %w", err)
	}
	platformFeeAddr, err := sdk.AccAddressFromBech32(msg.PlatformFeeAddr)
	if err != nil {
		return nil, fmt.Errorf("CreateCampaign: invalid platform fee address: %w", err)
	}

	campaign, err := ms.Keeper.CreateCampaign(
		goCtx,
		creator,
		msg.Name,
		msg.Symbol,
		sdk.NewCoin(msg.SettlementDenom, msg.TargetFunding),
		platformFeeAddr,
		msg.VenueKind,
	)
	if err != nil {
		return nil, fmt.Errorf("CreateCampaign: %w", err)
	}

	return &types.MsgCreateCampaignResponse{
		CampaignId: campaign.Id,
		TokenDenom: campaign.TokenDenom,
	}, nil
}

// Buy handles a bonding curve purchase
func (ms msgServer) Buy(goCtx context.Context, msg *types.MsgBuy) (*types.MsgBuyResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Buy: validate: %w", err)
	}

	buyer, err := sdk.AccAddressFromBech32(msg.Buyer)
	if err != nil {
		return nil, fmt.Errorf("Buy: invalid buyer address: %w", err)
	}

	tokensOut, completed, err := ms.Keeper.Buy(goCtx, buyer, msg.CampaignId, msg.AmountIn)
	if err != nil {
		return nil, fmt.Errorf("Buy: %w", err)
	}

	return &types.MsgBuyResponse{
		TokensOut:       tokensOut,
		FundingComplete: completed,
	}, nil
}

// Finalize handles the one-shot campaign finalization
func (ms msgServer) Finalize(goCtx context.Context, msg *types.MsgFinalize) (*types.MsgFinalizeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Finalize: validate: %w", err)
	}

	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, fmt.Errorf("Finalize: invalid creator address: %w", err)
	}

	resp, err := ms.Keeper.Finalize(goCtx, creator, msg.CampaignId)
	if err != nil {
		return nil, fmt.Errorf("Finalize: %w", err)
	}

	return resp, nil
}
