package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/paw-chain/launchpad/testutil/keeper"
	"github.com/paw-chain/launchpad/x/launchpad/keeper"
	"github.com/paw-chain/launchpad/x/launchpad/types"
)

// TestPairVenue_FreshPool tests that finalize bootstraps a new pool with
// geometric-mean shares and the full liquidity deposit as reserves
func TestPairVenue_FreshPool(t *testing.T) {
	k, ctx, bank, _, _ := keepertest.LaunchpadKeeper(t)
	campaign := createTestCampaign(t, k, ctx, types.VenueKindPair)
	completeFunding(t, k, ctx, bank, campaign)

	resp, err := k.Finalize(ctx, testAddr("creator"), campaign.Id)
	require.NoError(t, err)

	pool, err := k.GetPool(ctx, resp.PoolId)
	require.NoError(t, err)

	// "launch/1/umoon" sorts before "upaw": token side is A.
	require.Equal(t, campaign.TokenDenom, pool.DenomA)
	require.Equal(t, settlementDenom, pool.DenomB)
	require.Equal(t, resp.LiquidityTokens, pool.ReserveA)
	require.Equal(t, resp.LiquiditySettlement, pool.ReserveB)
	require.Equal(t, testAddr("creator").String(), pool.Creator)

	expectedShares := math.NewIntFromBigInt(
		keeper.IntegerSqrt(pool.ReserveA.Mul(pool.ReserveB).BigInt()))
	require.Equal(t, expectedShares, pool.TotalShares)

	// The pool is discoverable by its denom pair in either order.
	byDenoms, err := k.GetPoolByDenoms(ctx, settlementDenom, campaign.TokenDenom)
	require.NoError(t, err)
	require.Equal(t, pool.Id, byDenoms.Id)
}

// TestPairVenue_DepositExistingSameRatio tests depositing into a live pool
// whose price matches the deposit exactly
func TestPairVenue_DepositExistingSameRatio(t *testing.T) {
	k, ctx, bank, _, _ := keepertest.LaunchpadKeeper(t)
	campaign := createTestCampaign(t, k, ctx, types.VenueKindPair)
	completeFunding(t, k, ctx, bank, campaign)

	// Liquidity deposit will be 250,000,000 tokens against 500,000
	// settlement units: a ratio of 500. Seed a small pool at the same
	// ratio.
	seeded := &types.Pool{
		Id:          k.GetNextPoolID(ctx),
		DenomA:      campaign.TokenDenom,
		DenomB:      settlementDenom,
		ReserveA:    math.NewIntWithDecimal(500_000, 18),
		ReserveB:    math.NewIntWithDecimal(1_000, 18),
		TotalShares: math.NewIntWithDecimal(10_000, 18),
		Creator:     testAddr("seeder").String(),
	}
	require.NoError(t, k.SetPool(ctx, seeded))
	k.SetPoolByDenoms(ctx, seeded.DenomA, seeded.DenomB, seeded.Id)

	resp, err := k.Finalize(ctx, testAddr("creator"), campaign.Id)
	require.NoError(t, err)
	require.Equal(t, seeded.Id, resp.PoolId)

	pool, err := k.GetPool(ctx, resp.PoolId)
	require.NoError(t, err)
	require.Equal(t, seeded.ReserveA.Add(resp.LiquidityTokens), pool.ReserveA)
	require.Equal(t, seeded.ReserveB.Add(resp.LiquiditySettlement), pool.ReserveB)
	require.True(t, pool.TotalShares.GT(seeded.TotalShares))

	// The campaign creator holds the newly minted shares, the seeder keeps
	// nothing extra.
	creatorShares, err := k.GetLiquidity(ctx, pool.Id, testAddr("creator"))
	require.NoError(t, err)
	require.Equal(t, pool.TotalShares.Sub(seeded.TotalShares), creatorShares)
}

// TestPairVenue_DepositExistingSweepsRemainder tests that a slightly
// mispriced pool consumes what its ratio allows and returns the rest to
// the creator
func TestPairVenue_DepositExistingSweepsRemainder(t *testing.T) {
	k, ctx, bank, _, _ := keepertest.LaunchpadKeeper(t)
	campaign := createTestCampaign(t, k, ctx, types.VenueKindPair)
	completeFunding(t, k, ctx, bank, campaign)

	// Pool ratio 502.5 versus the deposit's 500: half a percent off,
	// inside the 1% slippage bound. The settlement side is short-consumed.
	seeded := &types.Pool{
		Id:          k.GetNextPoolID(ctx),
		DenomA:      campaign.TokenDenom,
		DenomB:      settlementDenom,
		ReserveA:    math.NewIntWithDecimal(502_500, 18),
		ReserveB:    math.NewIntWithDecimal(1_000, 18),
		TotalShares: math.NewIntWithDecimal(10_000, 18),
		Creator:     testAddr("seeder").String(),
	}
	require.NoError(t, k.SetPool(ctx, seeded))
	k.SetPoolByDenoms(ctx, seeded.DenomA, seeded.DenomB, seeded.Id)

	resp, err := k.Finalize(ctx, testAddr("creator"), campaign.Id)
	require.NoError(t, err)

	pool, err := k.GetPool(ctx, resp.PoolId)
	require.NoError(t, err)

	consumedB := pool.ReserveB.Sub(seeded.ReserveB)
	require.True(t, consumedB.LT(resp.LiquiditySettlement))

	// Unconsumed settlement went back to the creator on top of the
	// distribution share.
	creatorShare, _ := types.SplitSettlement(campaign.TotalRaised)
	swept := resp.LiquiditySettlement.Sub(consumedB)
	require.True(t, swept.IsPositive())
	require.Equal(t, creatorShare.Add(swept),
		bank.GetBalance(ctx, testAddr("creator"), settlementDenom).Amount)
}

// TestPairVenue_SlippageFloor tests that a badly mispriced pool aborts the
// deposit instead of eating the imbalance
func TestPairVenue_SlippageFloor(t *testing.T) {
	k, ctx, bank, _, _ := keepertest.LaunchpadKeeper(t)
	campaign := createTestCampaign(t, k, ctx, types.VenueKindPair)
	completeFunding(t, k, ctx, bank, campaign)

	// Ratio 250 versus the deposit's 500: the pool would consume only half
	// the token side, far below the slippage floor.
	seeded := &types.Pool{
		Id:          k.GetNextPoolID(ctx),
		DenomA:      campaign.TokenDenom,
		DenomB:      settlementDenom,
		ReserveA:    math.NewIntWithDecimal(250_000, 18),
		ReserveB:    math.NewIntWithDecimal(1_000, 18),
		TotalShares: math.NewIntWithDecimal(10_000, 18),
		Creator:     testAddr("seeder").String(),
	}
	require.NoError(t, k.SetPool(ctx, seeded))
	k.SetPoolByDenoms(ctx, seeded.DenomA, seeded.DenomB, seeded.Id)

	_, err := k.Finalize(ctx, testAddr("creator"), campaign.Id)
	require.ErrorIs(t, err, types.ErrLiquidityAddingFailed)

	stored, err := k.GetCampaign(ctx, campaign.Id)
	require.NoError(t, err)
	require.False(t, stored.LiquidityDeployed)
}

// TestPairVenue_DrainedPool tests rejection of deposits into a pool whose
// reserves were emptied
func TestPairVenue_DrainedPool(t *testing.T) {
	k, ctx, bank, _, _ := keepertest.LaunchpadKeeper(t)
	campaign := createTestCampaign(t, k, ctx, types.VenueKindPair)
	completeFunding(t, k, ctx, bank, campaign)

	seeded := &types.Pool{
		Id:          k.GetNextPoolID(ctx),
		DenomA:      campaign.TokenDenom,
		DenomB:      settlementDenom,
		ReserveA:    math.ZeroInt(),
		ReserveB:    math.ZeroInt(),
		TotalShares: math.ZeroInt(),
		Creator:     testAddr("seeder").String(),
	}
	require.NoError(t, k.SetPool(ctx, seeded))
	k.SetPoolByDenoms(ctx, seeded.DenomA, seeded.DenomB, seeded.Id)

	_, err := k.Finalize(ctx, testAddr("creator"), campaign.Id)
	require.ErrorIs(t, err, types.ErrLiquidityAddingFailed)
}
