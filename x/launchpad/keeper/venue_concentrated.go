package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/launchpad/x/launchpad/types"
)

// concentratedVenue deploys into an external concentrated-liquidity venue:
// discover-or-create the pool at the configured fee tier, initialize a
// fresh pool's starting price from the deposited ratio, mint a full-range
// position, and sweep the unconsumed remainder back to the creator.
type concentratedVenue struct {
	k     *Keeper
	venue types.ConcentratedVenue
}

var _ LiquidityVenue = concentratedVenue{}

func (v concentratedVenue) Deploy(ctx context.Context, campaign *types.Campaign, tokenAmount, settlementAmount math.Int) (uint64, error) {
	if err := validateDeployAmounts(tokenAmount, settlementAmount); err != nil {
		return 0, err
	}

	creator, err := sdk.AccAddressFromBech32(campaign.Creator)
	if err != nil {
		return 0, types.ErrInvalidAddress.Wrapf("creator: %s", err)
	}

	params, err := v.k.GetParams(ctx)
	if err != nil {
		return 0, fmt.Errorf("concentrated venue: get params: %w", err)
	}
	deadline, err := v.k.deployDeadline(ctx)
	if err != nil {
		return 0, fmt.Errorf("concentrated venue: %w", err)
	}

	denom0, denom1 := types.SortDenoms(campaign.TokenDenom, campaign.SettlementDenom)
	amount0, amount1 := tokenAmount, settlementAmount
	if denom0 != campaign.TokenDenom {
		amount0, amount1 = settlementAmount, tokenAmount
	}

	poolID, found := v.venue.GetPool(ctx, denom0, denom1, params.ConcentratedFeeTier)
	if !found {
		poolID, err = v.venue.CreatePool(ctx, denom0, denom1, params.ConcentratedFeeTier)
		if err != nil {
			return 0, types.ErrLiquidityAddingFailed.Wrapf(
				"creating pool for %s/%s: %v", denom0, denom1, err)
		}

		sqrtPrice, err := SqrtPriceX96(amount0, amount1)
		if err != nil {
			return 0, err
		}
		if err := v.venue.InitializePool(ctx, poolID, sqrtPrice); err != nil {
			return 0, types.ErrLiquidityAddingFailed.Wrapf(
				"initializing pool %d at sqrt price %s: %v", poolID, sqrtPrice, err)
		}
	}

	tickLower, tickUpper := fullRangeTicks(params.ConcentratedTickSpacing)
	moduleAddr := v.k.GetModuleAddress()

	liquidity, consumed0, consumed1, err := v.venue.MintPosition(
		ctx, poolID, moduleAddr, tickLower, tickUpper, amount0, amount1, deadline)
	if err != nil {
		return 0, types.ErrLiquidityAddingFailed.Wrapf(
			"minting full-range position in pool %d: %v", poolID, err)
	}
	if liquidity.IsNil() || !liquidity.IsPositive() {
		return 0, types.ErrLiquidityAddingFailed.Wrapf(
			"pool %d position minted zero liquidity", poolID)
	}

	// A short fill is a success; only the unconsumed remainder goes back to
	// the creator.
	remainder := sdk.NewCoins(
		sdk.NewCoin(denom0, amount0.Sub(consumed0)),
		sdk.NewCoin(denom1, amount1.Sub(consumed1)),
	)
	if !remainder.IsZero() {
		if err := v.k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, creator, remainder); err != nil {
			return 0, types.ErrTransferFailed.Wrapf(
				"sweeping remainder %s to %s: %v", remainder, campaign.Creator, err)
		}
	}

	return poolID, nil
}
