package types

import (
	"fmt"
)

// GenesisState is the full durable state of the launchpad module.
type GenesisState struct {
	Params         Params              `json:"params"`
	Campaigns      []Campaign          `json:"campaigns"`
	Pools          []Pool              `json:"pools"`
	Liquidity      []LiquidityPosition `json:"liquidity"`
	NextCampaignId uint64              `json:"next_campaign_id"`
	NextPoolId     uint64              `json:"next_pool_id"`
}

// DefaultGenesis returns the default genesis state for the launchpad module.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:         DefaultParams(),
		Campaigns:      []Campaign{},
		Pools:          []Pool{},
		Liquidity:      []LiquidityPosition{},
		NextCampaignId: 1,
		NextPoolId:     1,
	}
}

// Validate ensures the genesis state is well-formed.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}

	if gs.NextCampaignId == 0 {
		return fmt.Errorf("next campaign id must be positive")
	}
	if gs.NextPoolId == 0 {
		return fmt.Errorf("next pool id must be positive")
	}

	seenCampaigns := make(map[uint64]struct{}, len(gs.Campaigns))
	for _, c := range gs.Campaigns {
		if _, ok := seenCampaigns[c.Id]; ok {
			return fmt.Errorf("duplicate campaign id %d", c.Id)
		}
		seenCampaigns[c.Id] = struct{}{}

		if c.Id >= gs.NextCampaignId {
			return fmt.Errorf("campaign id %d not below next campaign id %d", c.Id, gs.NextCampaignId)
		}
		if err := c.Validate(); err != nil {
			return fmt.Errorf("invalid campaign %d: %w", c.Id, err)
		}
	}

	seenPools := make(map[uint64]struct{}, len(gs.Pools))
	seenPairs := make(map[string]struct{}, len(gs.Pools))
	for _, p := range gs.Pools {
		if _, ok := seenPools[p.Id]; ok {
			return fmt.Errorf("duplicate pool id %d", p.Id)
		}
		seenPools[p.Id] = struct{}{}

		if p.Id >= gs.NextPoolId {
			return fmt.Errorf("pool id %d not below next pool id %d", p.Id, gs.NextPoolId)
		}
		if err := p.Validate(); err != nil {
			return fmt.Errorf("invalid pool %d: %w", p.Id, err)
		}

		pair := p.DenomA + "/" + p.DenomB
		if _, ok := seenPairs[pair]; ok {
			return ErrPoolAlreadyExists.Wrapf("duplicate pool for pair %s", pair)
		}
		seenPairs[pair] = struct{}{}
	}

	seenPositions := make(map[string]struct{}, len(gs.Liquidity))
	for _, lp := range gs.Liquidity {
		if err := lp.Validate(); err != nil {
			return fmt.Errorf("invalid liquidity position for pool %d: %w", lp.PoolId, err)
		}
		if _, ok := seenPools[lp.PoolId]; !ok {
			return fmt.Errorf("liquidity position references unknown pool %d", lp.PoolId)
		}
		key := fmt.Sprintf("%d/%s", lp.PoolId, lp.Provider)
		if _, ok := seenPositions[key]; ok {
			return fmt.Errorf("duplicate liquidity position for pool %d provider %s", lp.PoolId, lp.Provider)
		}
		seenPositions[key] = struct{}{}
	}

	return nil
}
