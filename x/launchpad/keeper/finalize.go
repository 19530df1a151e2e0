package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/launchpad/x/launchpad/types"
)

// Finalize closes a funded campaign exactly once: it distributes the token
// and settlement proceeds, deploys the liquidity share into the campaign's
// venue, and flips LiquidityDeployed. The transition is irreversible; every
// later call fails with ErrAlreadyFinalized and moves nothing.
//
// Finalize requires funding to be complete. Early finalization of a
// partially sold campaign is rejected with ErrSaleStillOpen.
func (k Keeper) Finalize(ctx context.Context, caller sdk.AccAddress, campaignID uint64) (*types.MsgFinalizeResponse, error) {
	campaign, err := k.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	if campaign.LiquidityDeployed {
		return nil, types.ErrAlreadyFinalized.Wrapf("campaign %d", campaignID)
	}
	if !campaign.FundingComplete {
		return nil, types.ErrSaleStillOpen.Wrapf(
			"campaign %d has sold %s of %s",
			campaignID, campaign.TokensSold, campaign.Allocations.SaleAllocation,
		)
	}

	if caller.String() != campaign.Creator && caller.String() != k.authority {
		return nil, types.ErrUnauthorized.Wrapf(
			"finalize requires the campaign creator %s or the governance authority", campaign.Creator)
	}

	if err := k.acquireFinalizeLock(ctx, campaignID); err != nil {
		return nil, err
	}
	defer k.releaseFinalizeLock(ctx, campaignID)

	d, err := k.distributeProceeds(ctx, campaign)
	if err != nil {
		return nil, err
	}

	venue, ok := k.venues[campaign.VenueKind]
	if !ok {
		return nil, types.ErrInvalidVenueKind.Wrapf("venue kind %q is not available", campaign.VenueKind)
	}

	poolID, err := venue.Deploy(ctx, campaign, d.LiquidityTokens, d.LiquidityQuote)
	if err != nil {
		return nil, err
	}

	campaign.LiquidityDeployed = true
	campaign.VenuePool = poolID
	if err := k.SetCampaign(ctx, campaign); err != nil {
		return nil, fmt.Errorf("Finalize: %w", err)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.Logger().Info("launchpad campaign finalized",
		"campaign_id", campaignID,
		"venue_kind", campaign.VenueKind,
		"pool_id", poolID,
		"creator_proceeds", d.CreatorProceeds.String(),
		"liquidity_tokens", d.LiquidityTokens.String(),
		"liquidity_settlement", d.LiquidityQuote.String(),
	)

	sdkCtx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeCampaignFinalized,
			sdk.NewAttribute(types.AttributeKeyCampaignID, fmt.Sprintf("%d", campaignID)),
			sdk.NewAttribute(types.AttributeKeyCreatorProceeds, d.CreatorProceeds.String()),
			sdk.NewAttribute(types.AttributeKeyTotalRaised, campaign.TotalRaised.String()),
		),
		sdk.NewEvent(
			types.EventTypeLiquidityDeployed,
			sdk.NewAttribute(types.AttributeKeyCampaignID, fmt.Sprintf("%d", campaignID)),
			sdk.NewAttribute(types.AttributeKeyVenueKind, campaign.VenueKind),
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyLiquidityTokens, d.LiquidityTokens.String()),
			sdk.NewAttribute(types.AttributeKeyLiquidityQuote, d.LiquidityQuote.String()),
		),
	})

	if k.metrics != nil {
		k.metrics.FinalizationsTotal.WithLabelValues(campaign.VenueKind).Inc()
	}

	return &types.MsgFinalizeResponse{
		PoolId:              poolID,
		CreatorProceeds:     d.CreatorProceeds,
		LiquidityTokens:     d.LiquidityTokens,
		LiquiditySettlement: d.LiquidityQuote,
	}, nil
}
