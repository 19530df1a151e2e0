package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/paw-chain/launchpad/x/launchpad/types"
)

// TestDefaultGenesis tests that the default genesis state is valid
func TestDefaultGenesis(t *testing.T) {
	gs := types.DefaultGenesis()
	require.NoError(t, gs.Validate())
	require.Equal(t, uint64(1), gs.NextCampaignId)
	require.Equal(t, uint64(1), gs.NextPoolId)
	require.Empty(t, gs.Campaigns)
	require.Empty(t, gs.Pools)
	require.Empty(t, gs.Liquidity)
}

// TestGenesisState_Validate tests rejection of inconsistent genesis states
func TestGenesisState_Validate(t *testing.T) {
	campaign := validCampaign()
	pool := validPool()

	tests := []struct {
		name    string
		mutate  func(*types.GenesisState)
		wantErr string
	}{
		{
			"duplicate campaign id",
			func(gs *types.GenesisState) {
				gs.Campaigns = []types.Campaign{campaign, campaign}
				gs.NextCampaignId = 2
			},
			"duplicate campaign id",
		},
		{
			"campaign id not below counter",
			func(gs *types.GenesisState) {
				gs.Campaigns = []types.Campaign{campaign}
				gs.NextCampaignId = 1
			},
			"not below next campaign id",
		},
		{
			"invalid campaign",
			func(gs *types.GenesisState) {
				bad := campaign
				bad.VenueKind = "orderbook"
				gs.Campaigns = []types.Campaign{bad}
				gs.NextCampaignId = 2
			},
			"invalid campaign",
		},
		{
			"duplicate pool id",
			func(gs *types.GenesisState) {
				other := pool
				other.DenomA, other.DenomB = "uatom", "upaw"
				gs.Pools = []types.Pool{pool, other}
				gs.NextPoolId = 2
			},
			"duplicate pool id",
		},
		{
			"duplicate pool pair",
			func(gs *types.GenesisState) {
				other := pool
				other.Id = 2
				gs.Pools = []types.Pool{pool, other}
				gs.NextPoolId = 3
			},
			"duplicate pool for pair",
		},
		{
			"liquidity position for unknown pool",
			func(gs *types.GenesisState) {
				gs.Liquidity = []types.LiquidityPosition{
					{PoolId: 9, Provider: testAddr("lp"), Shares: math.NewInt(100)},
				}
			},
			"unknown pool",
		},
		{
			"duplicate liquidity position",
			func(gs *types.GenesisState) {
				gs.Pools = []types.Pool{pool}
				gs.NextPoolId = 2
				position := types.LiquidityPosition{PoolId: pool.Id, Provider: testAddr("lp"), Shares: math.NewInt(100)}
				gs.Liquidity = []types.LiquidityPosition{position, position}
			},
			"duplicate liquidity position",
		},
		{
			"zero-share liquidity position",
			func(gs *types.GenesisState) {
				gs.Pools = []types.Pool{pool}
				gs.NextPoolId = 2
				gs.Liquidity = []types.LiquidityPosition{
					{PoolId: pool.Id, Provider: testAddr("lp"), Shares: math.ZeroInt()},
				}
			},
			"invalid liquidity position",
		},
		{
			"zero next campaign id",
			func(gs *types.GenesisState) { gs.NextCampaignId = 0 },
			"next campaign id",
		},
		{
			"invalid params",
			func(gs *types.GenesisState) { gs.Params.SlippageBps = 20_000 },
			"invalid params",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gs := types.DefaultGenesis()
			tc.mutate(gs)
			err := gs.Validate()
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

// TestGenesisState_DuplicatePairSentinel tests that a second pool over the
// same denom pair is rejected with the pool-already-exists sentinel
func TestGenesisState_DuplicatePairSentinel(t *testing.T) {
	gs := types.DefaultGenesis()
	pool := validPool()
	other := pool
	other.Id = 2
	gs.Pools = []types.Pool{pool, other}
	gs.NextPoolId = 3

	require.ErrorIs(t, gs.Validate(), types.ErrPoolAlreadyExists)
}

// TestParams_Validate tests parameter bounds
func TestParams_Validate(t *testing.T) {
	require.NoError(t, types.DefaultParams().Validate())

	p := types.DefaultParams()
	p.SlippageBps = 10_001
	require.Error(t, p.Validate())

	p = types.DefaultParams()
	p.ConcentratedTickSpacing = 0
	require.Error(t, p.Validate())

	p = types.DefaultParams()
	p.DeadlineSeconds = 0
	require.Error(t, p.Validate())

	p = types.DefaultParams()
	p.MaxCampaigns = 0
	require.Error(t, p.Validate())
}
