package keeper

import (
	"context"
	"encoding/binary"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/launchpad/x/launchpad/types"
)

// GetNextCampaignID returns the next campaign ID and increments the counter
func (k Keeper) GetNextCampaignID(ctx context.Context) uint64 {
	store := k.getStore(ctx)
	bz := store.Get(CampaignCountKey)

	var campaignID uint64 = 1
	if bz != nil {
		campaignID = binary.BigEndian.Uint64(bz)
	}

	nextBz := make([]byte, 8)
	binary.BigEndian.PutUint64(nextBz, campaignID+1)
	store.Set(CampaignCountKey, nextBz)

	return campaignID
}

// peekNextCampaignID reads the counter without incrementing it
func (k Keeper) peekNextCampaignID(ctx context.Context) uint64 {
	bz := k.getStore(ctx).Get(CampaignCountKey)
	if bz == nil {
		return 1
	}
	return binary.BigEndian.Uint64(bz)
}

// SetNextCampaignID sets the next campaign ID counter
func (k Keeper) SetNextCampaignID(ctx context.Context, campaignID uint64) {
	store := k.getStore(ctx)
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, campaignID)
	store.Set(CampaignCountKey, bz)
}

// GetTotalCampaignsCount returns the number of campaigns in O(1) time.
func (k Keeper) GetTotalCampaignsCount(ctx context.Context) uint64 {
	store := k.getStore(ctx)
	bz := store.Get(TotalCampaignsCountKey)
	if bz == nil {
		return 0
	}
	return binary.BigEndian.Uint64(bz)
}

func (k Keeper) setTotalCampaignsCount(ctx context.Context, count uint64) {
	store := k.getStore(ctx)
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, count)
	store.Set(TotalCampaignsCountKey, bz)
}

// GetCampaign retrieves a campaign by its unique numeric ID.
// Returns ErrCampaignNotFound if the campaign does not exist.
func (k Keeper) GetCampaign(ctx context.Context, campaignID uint64) (*types.Campaign, error) {
	store := k.getStore(ctx)
	bz := store.Get(CampaignKey(campaignID))
	if bz == nil {
		return nil, types.ErrCampaignNotFound.Wrapf("campaign %d not found", campaignID)
	}

	var campaign types.Campaign
	if err := k.cdc.Unmarshal(bz, &campaign); err != nil {
		return nil, fmt.Errorf("GetCampaign: unmarshal campaign %d: %w", campaignID, err)
	}
	return &campaign, nil
}

// SetCampaign saves a campaign to the store
func (k Keeper) SetCampaign(ctx context.Context, campaign *types.Campaign) error {
	store := k.getStore(ctx)
	bz, err := k.cdc.Marshal(campaign)
	if err != nil {
		return fmt.Errorf("SetCampaign: marshal campaign %d: %w", campaign.Id, err)
	}
	store.Set(CampaignKey(campaign.Id), bz)
	return nil
}

// IterateCampaigns iterates over all campaigns in id order
func (k Keeper) IterateCampaigns(ctx context.Context, cb func(campaign types.Campaign) (stop bool)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, CampaignKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var campaign types.Campaign
		if err := k.cdc.Unmarshal(iterator.Value(), &campaign); err != nil {
			return fmt.Errorf("IterateCampaigns: unmarshal campaign: %w", err)
		}
		if cb(campaign) {
			break
		}
	}
	return nil
}

// CreateCampaign instantiates a new sale: it validates configuration, mints
// the campaign's entire fixed supply into module custody, and persists the
// campaign in the Open state.
func (k Keeper) CreateCampaign(
	ctx context.Context,
	creator sdk.AccAddress,
	name, symbol string,
	targetFunding sdk.Coin,
	platformFeeAddr sdk.AccAddress,
	venueKind string,
) (*types.Campaign, error) {
	if creator.Empty() {
		return nil, types.ErrInvalidAddress.Wrap("creator cannot be empty")
	}
	if platformFeeAddr.Empty() {
		return nil, types.ErrInvalidAddress.Wrap("platform fee address cannot be empty")
	}
	if !targetFunding.IsPositive() {
		return nil, types.ErrInvalidTargetFunding.Wrapf("got %s", targetFunding)
	}
	if !k.HasVenue(venueKind) {
		return nil, types.ErrInvalidVenueKind.Wrapf("venue kind %q is not available", venueKind)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, fmt.Errorf("CreateCampaign: get params: %w", err)
	}
	if count := k.GetTotalCampaignsCount(ctx); count >= params.MaxCampaigns {
		return nil, types.ErrMaxCampaignsReached.Wrapf("limit %d", params.MaxCampaigns)
	}

	campaignID := k.GetNextCampaignID(ctx)
	tokenDenom := types.CampaignTokenDenom(campaignID, symbol)

	campaign := &types.Campaign{
		Id:              campaignID,
		Name:            name,
		Symbol:          symbol,
		TokenDenom:      tokenDenom,
		Creator:         creator.String(),
		PlatformFeeAddr: platformFeeAddr.String(),
		SettlementDenom: targetFunding.Denom,
		TargetFunding:   targetFunding.Amount,
		Allocations:     types.NewAllocationTable(types.DefaultTotalSupply),
		TotalRaised:     math.ZeroInt(),
		TokensSold:      math.ZeroInt(),
		VenueKind:       venueKind,
	}

	if err := campaign.Validate(); err != nil {
		return nil, fmt.Errorf("CreateCampaign: %w", err)
	}

	// The whole supply exists exactly once, minted into module custody.
	// Every later allocation movement is a transfer out of this balance.
	supply := sdk.NewCoins(sdk.NewCoin(tokenDenom, campaign.Allocations.TotalSupply))
	if err := k.bankKeeper.MintCoins(ctx, types.ModuleName, supply); err != nil {
		return nil, types.ErrTransferFailed.Wrapf("minting %s: %v", supply, err)
	}

	if err := k.SetCampaign(ctx, campaign); err != nil {
		return nil, fmt.Errorf("CreateCampaign: %w", err)
	}
	k.setTotalCampaignsCount(ctx, k.GetTotalCampaignsCount(ctx)+1)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.Logger().Info("launchpad campaign created",
		"campaign_id", campaignID,
		"token_denom", tokenDenom,
		"target_funding", targetFunding.String(),
		"venue_kind", venueKind,
	)

	sdkCtx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeCampaignCreated,
			sdk.NewAttribute(types.AttributeKeyCampaignID, fmt.Sprintf("%d", campaignID)),
			sdk.NewAttribute(types.AttributeKeyCreator, creator.String()),
			sdk.NewAttribute(types.AttributeKeyTokenDenom, tokenDenom),
			sdk.NewAttribute(types.AttributeKeySettlementDenom, targetFunding.Denom),
			sdk.NewAttribute(types.AttributeKeyVenueKind, venueKind),
		),
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
			sdk.NewAttribute(sdk.AttributeKeySender, creator.String()),
		),
	})

	if k.metrics != nil {
		k.metrics.CampaignsCreated.Inc()
	}

	return campaign, nil
}
