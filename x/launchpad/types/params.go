package types

import (
	"fmt"
)

// Params holds the module's adjustable parameters.
type Params struct {
	// SlippageBps bounds the venue deposit: minimum accepted amounts are
	// desired * (10000 - SlippageBps) / 10000.
	SlippageBps uint64 `json:"slippage_bps"`
	// ConcentratedFeeTier is the fee tier used when creating concentrated
	// venue pools, in hundredths of a basis point (3000 = 0.30%).
	ConcentratedFeeTier uint64 `json:"concentrated_fee_tier"`
	// ConcentratedTickSpacing aligns the full-range position bounds.
	ConcentratedTickSpacing int64 `json:"concentrated_tick_spacing"`
	// DeadlineSeconds is the horizon for the venue deposit deadline,
	// measured from the block time of the finalizing transaction.
	DeadlineSeconds int64 `json:"deadline_seconds"`
	// MaxCampaigns bounds the number of campaigns (DoS prevention).
	MaxCampaigns uint64 `json:"max_campaigns"`
}

// DefaultParams returns the default launchpad parameters.
func DefaultParams() Params {
	return Params{
		SlippageBps:             100, // 1%
		ConcentratedFeeTier:     3000,
		ConcentratedTickSpacing: 60,
		DeadlineSeconds:         600,
		MaxCampaigns:            100_000,
	}
}

// Validate validates the set of params.
func (p Params) Validate() error {
	if p.SlippageBps > 10_000 {
		return fmt.Errorf("slippage bps must not exceed 10000, got %d", p.SlippageBps)
	}
	if p.ConcentratedTickSpacing <= 0 {
		return fmt.Errorf("concentrated tick spacing must be positive, got %d", p.ConcentratedTickSpacing)
	}
	if p.DeadlineSeconds <= 0 {
		return fmt.Errorf("deadline seconds must be positive, got %d", p.DeadlineSeconds)
	}
	if p.MaxCampaigns == 0 {
		return fmt.Errorf("max campaigns must be positive")
	}
	return nil
}
