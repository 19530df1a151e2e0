package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/launchpad/x/launchpad/types"
)

// Buy purchases campaign tokens on the bonding curve. The settlement amount
// is pulled into module custody, the curve prices the order, and the tokens
// are disbursed to the buyer, all within one transaction. A purchase that
// would overshoot the sale allocation is rejected in full; there are no
// partial fills.
//
// State is mutated before the outbound token transfer so accounting and
// custody can never disagree: if any leg fails the whole transaction
// reverts, including the mutation.
func (k Keeper) Buy(ctx context.Context, buyer sdk.AccAddress, campaignID uint64, amountIn math.Int) (math.Int, bool, error) {
	if amountIn.IsNil() || !amountIn.IsPositive() {
		return math.ZeroInt(), false, types.ErrZeroAmount.Wrap("purchase amount must be positive")
	}

	campaign, err := k.GetCampaign(ctx, campaignID)
	if err != nil {
		return math.ZeroInt(), false, err
	}

	if campaign.FundingComplete {
		return math.ZeroInt(), false, types.ErrSaleClosed.Wrapf("campaign %d has completed funding", campaignID)
	}

	tokensOut := campaign.Quote(amountIn)
	if tokensOut.IsZero() {
		return math.ZeroInt(), false, types.ErrZeroAmount.Wrapf("amount %s%s buys zero tokens", amountIn, campaign.SettlementDenom)
	}

	newSold := campaign.TokensSold.Add(tokensOut)
	if newSold.GT(campaign.Allocations.SaleAllocation) {
		return math.ZeroInt(), false, types.ErrAllocationExceeded.Wrapf(
			"purchase of %s tokens exceeds remaining allocation %s",
			tokensOut, campaign.RemainingSale(),
		)
	}

	payment := sdk.NewCoins(sdk.NewCoin(campaign.SettlementDenom, amountIn))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, buyer, types.ModuleName, payment); err != nil {
		return math.ZeroInt(), false, types.ErrTransferFailed.Wrapf(
			"pulling %s from %s: %v", payment, buyer, err)
	}

	campaign.TotalRaised = campaign.TotalRaised.Add(amountIn)
	campaign.TokensSold = newSold

	// FundingComplete flips exactly once, on the purchase that exhausts the
	// sale allocation. It is never re-checked and never reverts.
	completed := campaign.TokensSold.GTE(campaign.Allocations.SaleAllocation)
	if completed {
		campaign.FundingComplete = true
	}

	if err := k.SetCampaign(ctx, campaign); err != nil {
		return math.ZeroInt(), false, fmt.Errorf("Buy: %w", err)
	}

	disbursement := sdk.NewCoins(sdk.NewCoin(campaign.TokenDenom, tokensOut))
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, buyer, disbursement); err != nil {
		return math.ZeroInt(), false, types.ErrTransferFailed.Wrapf(
			"disbursing %s to %s: %v", disbursement, buyer, err)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	events := sdk.Events{
		sdk.NewEvent(
			types.EventTypeBuy,
			sdk.NewAttribute(types.AttributeKeyCampaignID, fmt.Sprintf("%d", campaignID)),
			sdk.NewAttribute(types.AttributeKeyBuyer, buyer.String()),
			sdk.NewAttribute(types.AttributeKeyAmountIn, amountIn.String()),
			sdk.NewAttribute(types.AttributeKeyTokensOut, tokensOut.String()),
			sdk.NewAttribute(types.AttributeKeyTotalRaised, campaign.TotalRaised.String()),
			sdk.NewAttribute(types.AttributeKeyTokensSold, campaign.TokensSold.String()),
		),
	}
	if completed {
		sdkCtx.Logger().Info("launchpad funding complete",
			"campaign_id", campaignID,
			"total_raised", campaign.TotalRaised.String(),
		)
		events = events.AppendEvent(sdk.NewEvent(
			types.EventTypeFundingComplete,
			sdk.NewAttribute(types.AttributeKeyCampaignID, fmt.Sprintf("%d", campaignID)),
			sdk.NewAttribute(types.AttributeKeyTotalRaised, campaign.TotalRaised.String()),
		))
	}
	sdkCtx.EventManager().EmitEvents(events)

	if k.metrics != nil {
		k.metrics.BuysTotal.WithLabelValues(fmt.Sprintf("%d", campaignID)).Inc()
	}

	return tokensOut, completed, nil
}
