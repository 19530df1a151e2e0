package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/paw-chain/launchpad/testutil/keeper"
	"github.com/paw-chain/launchpad/x/launchpad/types"
)

// TestConcentratedVenue_CreatesAndFundsPool tests the full concentrated
// deploy: pool creation, price initialization, and a full-range mint at
// the deposit deadline
func TestConcentratedVenue_CreatesAndFundsPool(t *testing.T) {
	k, ctx, bank, concentrated, _ := keepertest.LaunchpadKeeper(t)
	campaign := createTestCampaign(t, k, ctx, types.VenueKindConcentrated)
	completeFunding(t, k, ctx, bank, campaign)

	resp, err := k.Finalize(ctx, testAddr("creator"), campaign.Id)
	require.NoError(t, err)
	require.Equal(t, uint64(1), resp.PoolId)

	// Full range at tick spacing 60: +/-887272 aligned down to 887220.
	require.Equal(t, int64(-887220), concentrated.LastTickLower)
	require.Equal(t, int64(887220), concentrated.LastTickUpper)

	// Deadline is block time plus the configured horizon.
	params, err := k.GetParams(ctx)
	require.NoError(t, err)
	require.Equal(t, ctx.BlockTime().Unix()+params.DeadlineSeconds, concentrated.LastDeadline)

	// The venue consumed the whole deposit out of module custody.
	venueAddr := concentrated.VenueAddress()
	require.Equal(t, resp.LiquidityTokens,
		bank.GetBalance(ctx, venueAddr, campaign.TokenDenom).Amount)
	require.Equal(t, resp.LiquiditySettlement,
		bank.GetBalance(ctx, venueAddr, settlementDenom).Amount)

	stored, err := k.GetCampaign(ctx, campaign.Id)
	require.NoError(t, err)
	require.True(t, stored.LiquidityDeployed)
	require.Equal(t, resp.PoolId, stored.VenuePool)
}

// TestConcentratedVenue_ExistingPoolReused tests that finalize mints into
// an already existing pool instead of creating a second one
func TestConcentratedVenue_ExistingPoolReused(t *testing.T) {
	k, ctx, bank, concentrated, _ := keepertest.LaunchpadKeeper(t)
	campaign := createTestCampaign(t, k, ctx, types.VenueKindConcentrated)
	completeFunding(t, k, ctx, bank, campaign)

	params, err := k.GetParams(ctx)
	require.NoError(t, err)

	denom0, denom1 := types.SortDenoms(campaign.TokenDenom, settlementDenom)
	existing, err := concentrated.CreatePool(ctx, denom0, denom1, params.ConcentratedFeeTier)
	require.NoError(t, err)
	require.NoError(t, concentrated.InitializePool(ctx, existing, math.NewInt(1).MulRaw(1<<62).MulRaw(1<<34)))

	resp, err := k.Finalize(ctx, testAddr("creator"), campaign.Id)
	require.NoError(t, err)
	require.Equal(t, existing, resp.PoolId)
}

// TestConcentratedVenue_ShortFillSweepsRemainder tests that an
// under-consumed mint is a success with the remainder returned to the
// creator
func TestConcentratedVenue_ShortFillSweepsRemainder(t *testing.T) {
	k, ctx, bank, concentrated, _ := keepertest.LaunchpadKeeper(t)
	campaign := createTestCampaign(t, k, ctx, types.VenueKindConcentrated)
	completeFunding(t, k, ctx, bank, campaign)

	// The venue leaves part of the settlement side unconsumed.
	short := math.NewIntWithDecimal(1_000, 18)
	concentrated.Short1 = short

	resp, err := k.Finalize(ctx, testAddr("creator"), campaign.Id)
	require.NoError(t, err)

	creatorShare, _ := types.SplitSettlement(campaign.TotalRaised)
	require.Equal(t, creatorShare.Add(short),
		bank.GetBalance(ctx, testAddr("creator"), settlementDenom).Amount)

	venueAddr := concentrated.VenueAddress()
	require.Equal(t, resp.LiquiditySettlement.Sub(short),
		bank.GetBalance(ctx, venueAddr, settlementDenom).Amount)
}

// TestConcentratedVenue_MintFailure tests that a failed mint aborts the
// finalize with a typed venue error
func TestConcentratedVenue_MintFailure(t *testing.T) {
	k, ctx, bank, concentrated, _ := keepertest.LaunchpadKeeper(t)
	campaign := createTestCampaign(t, k, ctx, types.VenueKindConcentrated)
	completeFunding(t, k, ctx, bank, campaign)

	concentrated.FailMint = true

	_, err := k.Finalize(ctx, testAddr("creator"), campaign.Id)
	require.ErrorIs(t, err, types.ErrLiquidityAddingFailed)

	stored, err := k.GetCampaign(ctx, campaign.Id)
	require.NoError(t, err)
	require.False(t, stored.LiquidityDeployed)
}

// TestConcentratedVenue_AbsentCapability tests that a keeper built without
// the concentrated capability rejects such campaigns at creation
func TestConcentratedVenue_AbsentCapability(t *testing.T) {
	k, ctx, _, _, _ := keepertest.LaunchpadKeeperWithVenues(t, false, false)

	_, err := k.CreateCampaign(
		ctx, testAddr("creator"), "Moon Token", "MOON",
		sdk.NewCoin(settlementDenom, math.NewIntWithDecimal(1_000_000, 18)),
		testAddr("platform"), types.VenueKindConcentrated,
	)
	require.ErrorIs(t, err, types.ErrInvalidVenueKind)
}
