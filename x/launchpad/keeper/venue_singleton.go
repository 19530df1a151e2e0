package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/launchpad/x/launchpad/types"
)

// singletonVenue deploys into a shared pool-manager venue: initialize the
// pool keyed by the canonical sorted pair, modify liquidity by a signed
// delta, then settle the resulting debit by transferring the owed amount,
// per side, to the manager.
type singletonVenue struct {
	k       *Keeper
	manager types.PoolManager
}

var _ LiquidityVenue = singletonVenue{}

func (v singletonVenue) Deploy(ctx context.Context, campaign *types.Campaign, tokenAmount, settlementAmount math.Int) (uint64, error) {
	if err := validateDeployAmounts(tokenAmount, settlementAmount); err != nil {
		return 0, err
	}

	creator, err := sdk.AccAddressFromBech32(campaign.Creator)
	if err != nil {
		return 0, types.ErrInvalidAddress.Wrapf("creator: %s", err)
	}

	denom0, denom1 := types.SortDenoms(campaign.TokenDenom, campaign.SettlementDenom)
	amount0, amount1 := tokenAmount, settlementAmount
	if denom0 != campaign.TokenDenom {
		amount0, amount1 = settlementAmount, tokenAmount
	}

	sqrtPrice, err := SqrtPriceX96(amount0, amount1)
	if err != nil {
		return 0, err
	}

	poolID, err := v.manager.InitializePool(ctx, denom0, denom1, sqrtPrice)
	if err != nil {
		return 0, types.ErrLiquidityAddingFailed.Wrapf(
			"initializing pool for %s/%s: %v", denom0, denom1, err)
	}

	liquidityDelta := math.NewIntFromBigInt(IntegerSqrt(amount0.Mul(amount1).BigInt()))
	if !liquidityDelta.IsPositive() {
		return 0, types.ErrLiquidityAddingFailed.Wrapf(
			"deposit %s/%s produces zero liquidity", amount0, amount1)
	}

	owed0, owed1, err := v.manager.ModifyLiquidity(ctx, poolID, liquidityDelta)
	if err != nil {
		return 0, types.ErrLiquidityAddingFailed.Wrapf(
			"modifying liquidity in pool %d by %s: %v", poolID, liquidityDelta, err)
	}
	if owed0.GT(amount0) || owed1.GT(amount1) {
		return 0, types.ErrLiquidityAddingFailed.Wrapf(
			"pool %d demands %s/%s, deposit holds %s/%s", poolID, owed0, owed1, amount0, amount1)
	}

	if err := v.settle(ctx, denom0, owed0); err != nil {
		return 0, err
	}
	if err := v.settle(ctx, denom1, owed1); err != nil {
		return 0, err
	}

	// Whatever the delta did not consume returns to the creator.
	remainder := sdk.NewCoins(
		sdk.NewCoin(denom0, amount0.Sub(math.MaxInt(owed0, math.ZeroInt()))),
		sdk.NewCoin(denom1, amount1.Sub(math.MaxInt(owed1, math.ZeroInt()))),
	)
	if !remainder.IsZero() {
		if err := v.k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, creator, remainder); err != nil {
			return 0, types.ErrTransferFailed.Wrapf(
				"sweeping remainder %s to %s: %v", remainder, campaign.Creator, err)
		}
	}

	return poolID, nil
}

// settle pays one side of the manager's debit from module custody. Negative
// owed amounts are credits owed back by the manager and settle out of band.
func (v singletonVenue) settle(ctx context.Context, denom string, owed math.Int) error {
	if owed.IsNil() || !owed.IsPositive() {
		return nil
	}

	debt := sdk.NewCoins(sdk.NewCoin(denom, owed))
	if err := v.k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, v.manager.ManagerAddress(), debt); err != nil {
		return types.ErrTransferFailed.Wrapf(
			"settling %s to pool manager %s: %v", debt, v.manager.ManagerAddress(), err)
	}
	return nil
}
