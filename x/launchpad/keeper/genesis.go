package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/launchpad/x/launchpad/types"
)

// InitGenesis initializes the launchpad module's state from a genesis state
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return fmt.Errorf("InitGenesis: %w", err)
	}

	if err := k.SetParams(ctx, genState.Params); err != nil {
		return fmt.Errorf("InitGenesis: set params: %w", err)
	}

	k.SetNextCampaignID(ctx, genState.NextCampaignId)
	k.SetNextPoolID(ctx, genState.NextPoolId)

	for i := range genState.Campaigns {
		campaign := genState.Campaigns[i]
		if err := k.SetCampaign(ctx, &campaign); err != nil {
			return fmt.Errorf("InitGenesis: campaign %d: %w", campaign.Id, err)
		}
	}
	k.setTotalCampaignsCount(ctx, uint64(len(genState.Campaigns)))

	for i := range genState.Pools {
		pool := genState.Pools[i]
		if err := k.SetPool(ctx, &pool); err != nil {
			return fmt.Errorf("InitGenesis: pool %d: %w", pool.Id, err)
		}
		k.SetPoolByDenoms(ctx, pool.DenomA, pool.DenomB, pool.Id)
	}

	for _, position := range genState.Liquidity {
		provider, err := sdk.AccAddressFromBech32(position.Provider)
		if err != nil {
			return fmt.Errorf("InitGenesis: liquidity position pool %d: %w", position.PoolId, err)
		}
		if err := k.SetLiquidity(ctx, position.PoolId, provider, position.Shares); err != nil {
			return fmt.Errorf("InitGenesis: liquidity position pool %d: %w", position.PoolId, err)
		}
	}

	return nil
}

// ExportGenesis returns the launchpad module's full state for export
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, fmt.Errorf("ExportGenesis: get params: %w", err)
	}

	genState := &types.GenesisState{
		Params:         params,
		Campaigns:      []types.Campaign{},
		Pools:          []types.Pool{},
		Liquidity:      []types.LiquidityPosition{},
		NextCampaignId: k.peekNextCampaignID(ctx),
		NextPoolId:     k.peekNextPoolID(ctx),
	}

	if err := k.IterateCampaigns(ctx, func(campaign types.Campaign) bool {
		genState.Campaigns = append(genState.Campaigns, campaign)
		return false
	}); err != nil {
		return nil, fmt.Errorf("ExportGenesis: iterate campaigns: %w", err)
	}

	if err := k.IteratePools(ctx, func(pool types.Pool) bool {
		genState.Pools = append(genState.Pools, pool)
		return false
	}); err != nil {
		return nil, fmt.Errorf("ExportGenesis: iterate pools: %w", err)
	}

	if err := k.IterateLiquidity(ctx, func(position types.LiquidityPosition) bool {
		genState.Liquidity = append(genState.Liquidity, position)
		return false
	}); err != nil {
		return nil, fmt.Errorf("ExportGenesis: iterate liquidity: %w", err)
	}

	return genState, nil
}
