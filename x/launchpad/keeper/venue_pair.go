package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/launchpad/x/launchpad/types"
)

// pairVenue deploys liquidity into the module's own two-sided AMM pool
// store. The campaign's liquidity share is already in module custody, so
// the deposit is pure bookkeeping: reserves grow, LP shares are credited to
// the campaign creator, and any unconsumed remainder is transferred out to
// the creator.
type pairVenue struct {
	k *Keeper
}

var _ LiquidityVenue = pairVenue{}

func (v pairVenue) Deploy(ctx context.Context, campaign *types.Campaign, tokenAmount, settlementAmount math.Int) (uint64, error) {
	if err := validateDeployAmounts(tokenAmount, settlementAmount); err != nil {
		return 0, err
	}

	creator, err := sdk.AccAddressFromBech32(campaign.Creator)
	if err != nil {
		return 0, types.ErrInvalidAddress.Wrapf("creator: %s", err)
	}

	params, err := v.k.GetParams(ctx)
	if err != nil {
		return 0, fmt.Errorf("pair venue: get params: %w", err)
	}

	denomA, denomB := types.SortDenoms(campaign.TokenDenom, campaign.SettlementDenom)
	amountA, amountB := tokenAmount, settlementAmount
	if denomA != campaign.TokenDenom {
		amountA, amountB = settlementAmount, tokenAmount
	}

	pool, err := v.k.GetPoolByDenoms(ctx, denomA, denomB)
	switch {
	case err == nil:
		return v.depositExisting(ctx, campaign, pool, creator, params, amountA, amountB)
	case types.ErrPoolNotFound.Is(err):
		return v.createAndDeposit(ctx, campaign, creator, denomA, denomB, amountA, amountB)
	default:
		return 0, err
	}
}

// createAndDeposit bootstraps a fresh pool. Initial LP shares follow the
// geometric mean floor(sqrt(amountA*amountB)), which makes the share price
// independent of how the initial deposit is denominated.
func (v pairVenue) createAndDeposit(ctx context.Context, campaign *types.Campaign, creator sdk.AccAddress, denomA, denomB string, amountA, amountB math.Int) (uint64, error) {
	shares := math.NewIntFromBigInt(IntegerSqrt(amountA.Mul(amountB).BigInt()))
	if !shares.IsPositive() {
		return 0, types.ErrLiquidityAddingFailed.Wrapf(
			"initial deposit %s/%s produces zero liquidity", amountA, amountB)
	}

	poolID := v.k.GetNextPoolID(ctx)
	pool := &types.Pool{
		Id:          poolID,
		DenomA:      denomA,
		DenomB:      denomB,
		ReserveA:    amountA,
		ReserveB:    amountB,
		TotalShares: shares,
		Creator:     creator.String(),
	}
	if err := pool.Validate(); err != nil {
		return 0, fmt.Errorf("pair venue: %w", err)
	}

	if err := v.k.SetPool(ctx, pool); err != nil {
		return 0, fmt.Errorf("pair venue: %w", err)
	}
	v.k.SetPoolByDenoms(ctx, denomA, denomB, poolID)

	if err := v.k.SetLiquidity(ctx, poolID, creator, shares); err != nil {
		return 0, fmt.Errorf("pair venue: set creator shares: %w", err)
	}

	return poolID, nil
}

// depositExisting adds both sides to a live pool at its current ratio. The
// side the ratio cannot consume in full is swept back to the creator; a
// deposit whose consumed amounts land below the slippage bound fails.
func (v pairVenue) depositExisting(ctx context.Context, campaign *types.Campaign, pool *types.Pool, creator sdk.AccAddress, params types.Params, amountA, amountB math.Int) (uint64, error) {
	if pool.ReserveA.IsZero() || pool.ReserveB.IsZero() || pool.TotalShares.IsZero() {
		return 0, types.ErrLiquidityAddingFailed.Wrapf("pool %d has been drained", pool.Id)
	}

	sharesFromA := amountA.Mul(pool.TotalShares).Quo(pool.ReserveA)
	sharesFromB := amountB.Mul(pool.TotalShares).Quo(pool.ReserveB)
	shares := math.MinInt(sharesFromA, sharesFromB)
	if !shares.IsPositive() {
		return 0, types.ErrLiquidityAddingFailed.Wrapf(
			"deposit %s/%s produces zero liquidity in pool %d", amountA, amountB, pool.Id)
	}

	consumedA := shares.Mul(pool.ReserveA).Quo(pool.TotalShares)
	consumedB := shares.Mul(pool.ReserveB).Quo(pool.TotalShares)

	slippageFloor := math.NewInt(10_000 - int64(params.SlippageBps))
	minA := amountA.Mul(slippageFloor).Quo(math.NewInt(10_000))
	minB := amountB.Mul(slippageFloor).Quo(math.NewInt(10_000))
	if consumedA.LT(minA) || consumedB.LT(minB) {
		return 0, types.ErrLiquidityAddingFailed.Wrapf(
			"pool %d consumed %s/%s, below slippage floor %s/%s",
			pool.Id, consumedA, consumedB, minA, minB)
	}

	pool.ReserveA = pool.ReserveA.Add(consumedA)
	pool.ReserveB = pool.ReserveB.Add(consumedB)
	pool.TotalShares = pool.TotalShares.Add(shares)
	if err := v.k.SetPool(ctx, pool); err != nil {
		return 0, fmt.Errorf("pair venue: %w", err)
	}

	existing, err := v.k.GetLiquidity(ctx, pool.Id, creator)
	if err != nil {
		return 0, fmt.Errorf("pair venue: get creator shares: %w", err)
	}
	if err := v.k.SetLiquidity(ctx, pool.Id, creator, existing.Add(shares)); err != nil {
		return 0, fmt.Errorf("pair venue: set creator shares: %w", err)
	}

	// Claw back what the pool ratio could not consume.
	remainder := sdk.NewCoins(
		sdk.NewCoin(pool.DenomA, amountA.Sub(consumedA)),
		sdk.NewCoin(pool.DenomB, amountB.Sub(consumedB)),
	)
	if !remainder.IsZero() {
		if err := v.k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, creator, remainder); err != nil {
			return 0, types.ErrTransferFailed.Wrapf(
				"sweeping remainder %s to %s: %v", remainder, campaign.Creator, err)
		}
	}

	return pool.Id, nil
}
