package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/paw-chain/launchpad/testutil/keeper"
	"github.com/paw-chain/launchpad/x/launchpad/types"
)

// TestFinalize_PairVenue tests the full happy path: proceeds distributed,
// pool created, LP shares credited, campaign marked finalized
func TestFinalize_PairVenue(t *testing.T) {
	k, ctx, bank, _, _ := keepertest.LaunchpadKeeper(t)
	campaign := createTestCampaign(t, k, ctx, types.VenueKindPair)
	completeFunding(t, k, ctx, bank, campaign)

	creator := testAddr("creator")
	platform := testAddr("platform")

	resp, err := k.Finalize(ctx, creator, campaign.Id)
	require.NoError(t, err)

	// Token legs: 20% to the creator, 5% to the platform.
	require.Equal(t, campaign.Allocations.CreatorAllocation,
		bank.GetBalance(ctx, creator, campaign.TokenDenom).Amount)
	require.Equal(t, campaign.Allocations.PlatformFeeAllocation,
		bank.GetBalance(ctx, platform, campaign.TokenDenom).Amount)

	// Settlement: half the raised amount to the creator, half to liquidity.
	expectedCreator, expectedLiquidity := types.SplitSettlement(campaign.TotalRaised)
	require.Equal(t, expectedCreator, resp.CreatorProceeds)
	require.Equal(t, expectedCreator, bank.GetBalance(ctx, creator, settlementDenom).Amount)
	require.Equal(t, expectedLiquidity, resp.LiquiditySettlement)
	require.Equal(t, campaign.Allocations.LiquidityAllocation, resp.LiquidityTokens)

	// The pair pool holds the liquidity share with LP shares to the creator.
	pool, err := k.GetPool(ctx, resp.PoolId)
	require.NoError(t, err)
	denomA, denomB := types.SortDenoms(campaign.TokenDenom, settlementDenom)
	require.Equal(t, denomA, pool.DenomA)
	require.Equal(t, denomB, pool.DenomB)
	require.True(t, pool.TotalShares.IsPositive())

	shares, err := k.GetLiquidity(ctx, pool.Id, creator)
	require.NoError(t, err)
	require.Equal(t, pool.TotalShares, shares)

	stored, err := k.GetCampaign(ctx, campaign.Id)
	require.NoError(t, err)
	require.True(t, stored.LiquidityDeployed)
	require.Equal(t, resp.PoolId, stored.VenuePool)
}

// TestFinalize_SaleStillOpen tests that a partially sold campaign cannot
// finalize
func TestFinalize_SaleStillOpen(t *testing.T) {
	k, ctx, _, _, _ := keepertest.LaunchpadKeeper(t)
	campaign := createTestCampaign(t, k, ctx, types.VenueKindPair)

	_, err := k.Finalize(ctx, testAddr("creator"), campaign.Id)
	require.ErrorIs(t, err, types.ErrSaleStillOpen)

	// Still rejected with most of the allocation sold.
	campaign.TokensSold = campaign.Allocations.SaleAllocation.SubRaw(1)
	campaign.TotalRaised = math.NewIntWithDecimal(999_999, 18)
	require.NoError(t, k.SetCampaign(ctx, campaign))

	_, err = k.Finalize(ctx, testAddr("creator"), campaign.Id)
	require.ErrorIs(t, err, types.ErrSaleStillOpen)
}

// TestFinalize_Unauthorized tests that only the creator or the governance
// authority may finalize
func TestFinalize_Unauthorized(t *testing.T) {
	k, ctx, bank, _, _ := keepertest.LaunchpadKeeper(t)
	campaign := createTestCampaign(t, k, ctx, types.VenueKindPair)
	completeFunding(t, k, ctx, bank, campaign)

	_, err := k.Finalize(ctx, testAddr("stranger"), campaign.Id)
	require.ErrorIs(t, err, types.ErrUnauthorized)

	stored, err := k.GetCampaign(ctx, campaign.Id)
	require.NoError(t, err)
	require.False(t, stored.LiquidityDeployed)
}

// TestFinalize_AuthorityAllowed tests governance finalization
func TestFinalize_AuthorityAllowed(t *testing.T) {
	k, ctx, bank, _, _ := keepertest.LaunchpadKeeper(t)
	campaign := createTestCampaign(t, k, ctx, types.VenueKindPair)
	completeFunding(t, k, ctx, bank, campaign)

	authority, err := sdk.AccAddressFromBech32(keepertest.TestAuthority)
	require.NoError(t, err)

	_, err = k.Finalize(ctx, authority, campaign.Id)
	require.NoError(t, err)

	stored, err := k.GetCampaign(ctx, campaign.Id)
	require.NoError(t, err)
	require.True(t, stored.LiquidityDeployed)
}

// TestFinalize_AlreadyFinalized tests that the transition is one-shot
func TestFinalize_AlreadyFinalized(t *testing.T) {
	k, ctx, bank, _, _ := keepertest.LaunchpadKeeper(t)
	campaign := createTestCampaign(t, k, ctx, types.VenueKindPair)
	completeFunding(t, k, ctx, bank, campaign)

	creator := testAddr("creator")
	_, err := k.Finalize(ctx, creator, campaign.Id)
	require.NoError(t, err)

	creatorTokens := bank.GetBalance(ctx, creator, campaign.TokenDenom).Amount

	_, err = k.Finalize(ctx, creator, campaign.Id)
	require.ErrorIs(t, err, types.ErrAlreadyFinalized)

	// The rejected second call moves nothing.
	require.Equal(t, creatorTokens, bank.GetBalance(ctx, creator, campaign.TokenDenom).Amount)
}

// TestFinalize_UnknownCampaign tests finalize on a missing campaign
func TestFinalize_UnknownCampaign(t *testing.T) {
	k, ctx, _, _, _ := keepertest.LaunchpadKeeper(t)

	_, err := k.Finalize(ctx, testAddr("creator"), 42)
	require.ErrorIs(t, err, types.ErrCampaignNotFound)
}

// TestFinalize_ZeroLiquidityIsFatal tests that a venue deposit achieving
// zero liquidity aborts the finalize and leaves the campaign unfinalized
func TestFinalize_ZeroLiquidityIsFatal(t *testing.T) {
	k, ctx, bank, concentrated, _ := keepertest.LaunchpadKeeper(t)
	campaign := createTestCampaign(t, k, ctx, types.VenueKindConcentrated)
	completeFunding(t, k, ctx, bank, campaign)

	concentrated.ZeroLiquidity = true

	_, err := k.Finalize(ctx, testAddr("creator"), campaign.Id)
	require.ErrorIs(t, err, types.ErrLiquidityAddingFailed)

	stored, err := k.GetCampaign(ctx, campaign.Id)
	require.NoError(t, err)
	require.False(t, stored.LiquidityDeployed)
	require.Zero(t, stored.VenuePool)

	// A later attempt with a healthy venue succeeds; the failed attempt
	// left no lock behind. The mock bank does not unwind the aborted
	// attempt's transfers the way the transaction rollback would, so
	// restore the settlement the first distribution paid out.
	concentrated.ZeroLiquidity = false
	creatorShare, _ := types.SplitSettlement(campaign.TotalRaised)
	keepertest.FundAccount(bank, moduleAddr, sdk.NewCoins(sdk.NewCoin(settlementDenom, creatorShare)))

	_, err = k.Finalize(ctx, testAddr("creator"), campaign.Id)
	require.NoError(t, err)
}

// TestFinalize_TransferFailureAborts tests that a failed distribution leg
// surfaces as a typed transfer error
func TestFinalize_TransferFailureAborts(t *testing.T) {
	k, ctx, bank, _, _ := keepertest.LaunchpadKeeper(t)
	campaign := createTestCampaign(t, k, ctx, types.VenueKindPair)
	completeFunding(t, k, ctx, bank, campaign)

	bank.FailTransfersTo[testAddr("platform").String()] = true

	_, err := k.Finalize(ctx, testAddr("creator"), campaign.Id)
	require.ErrorIs(t, err, types.ErrTransferFailed)

	stored, err := k.GetCampaign(ctx, campaign.Id)
	require.NoError(t, err)
	require.False(t, stored.LiquidityDeployed)
}
