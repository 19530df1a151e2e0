package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/launchpad/x/launchpad/types"
)

// distribution records the amounts moved by distributeProceeds.
type distribution struct {
	CreatorTokens     math.Int
	PlatformFeeTokens math.Int
	CreatorProceeds   math.Int
	LiquidityTokens   math.Int
	LiquidityQuote    math.Int
}

// distributeProceeds executes the one-shot payout legs of finalize in order:
// creator tokens, platform fee tokens, creator settlement share. The first
// failing leg aborts with a TransferFailed error naming the recipient and
// amount; the enclosing transaction reverts every prior leg with it.
//
// The liquidity-side amounts are computed here but moved by the venue
// adapter, which is the fourth and final leg of finalize.
func (k Keeper) distributeProceeds(ctx context.Context, campaign *types.Campaign) (distribution, error) {
	creator, err := sdk.AccAddressFromBech32(campaign.Creator)
	if err != nil {
		return distribution{}, types.ErrInvalidAddress.Wrapf("creator: %s", err)
	}
	platformFee, err := sdk.AccAddressFromBech32(campaign.PlatformFeeAddr)
	if err != nil {
		return distribution{}, types.ErrInvalidAddress.Wrapf("platform fee: %s", err)
	}

	creatorShare, liquidityShare := types.SplitSettlement(campaign.TotalRaised)

	d := distribution{
		CreatorTokens:     campaign.Allocations.CreatorAllocation,
		PlatformFeeTokens: campaign.Allocations.PlatformFeeAllocation,
		CreatorProceeds:   creatorShare,
		LiquidityTokens:   campaign.Allocations.LiquidityAllocation,
		LiquidityQuote:    liquidityShare,
	}

	creatorTokens := sdk.NewCoins(sdk.NewCoin(campaign.TokenDenom, d.CreatorTokens))
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, creator, creatorTokens); err != nil {
		return distribution{}, types.ErrTransferFailed.Wrapf(
			"creator token allocation %s to %s: %v", creatorTokens, campaign.Creator, err)
	}

	feeTokens := sdk.NewCoins(sdk.NewCoin(campaign.TokenDenom, d.PlatformFeeTokens))
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, platformFee, feeTokens); err != nil {
		return distribution{}, types.ErrTransferFailed.Wrapf(
			"platform fee allocation %s to %s: %v", feeTokens, campaign.PlatformFeeAddr, err)
	}

	if d.CreatorProceeds.IsPositive() {
		proceeds := sdk.NewCoins(sdk.NewCoin(campaign.SettlementDenom, d.CreatorProceeds))
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, creator, proceeds); err != nil {
			return distribution{}, types.ErrTransferFailed.Wrapf(
				"creator settlement share %s to %s: %v", proceeds, campaign.Creator, err)
		}
	}

	return d, nil
}
