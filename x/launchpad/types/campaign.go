package types

import (
	"fmt"
	"strings"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Campaign is the full state of one launchpad sale. It is owned by the
// keeper for its lifetime and mutated only by Buy and Finalize.
type Campaign struct {
	Id              uint64 `json:"id"`
	Name            string `json:"name"`
	Symbol          string `json:"symbol"`
	TokenDenom      string `json:"token_denom"`
	Creator         string `json:"creator"`
	PlatformFeeAddr string `json:"platform_fee_addr"`
	SettlementDenom string `json:"settlement_denom"`

	TargetFunding math.Int        `json:"target_funding"`
	Allocations   AllocationTable `json:"allocations"`

	TotalRaised math.Int `json:"total_raised"`
	TokensSold  math.Int `json:"tokens_sold"`

	FundingComplete   bool `json:"funding_complete"`
	LiquidityDeployed bool `json:"liquidity_deployed"`

	VenueKind string `json:"venue_kind"`
	// VenuePool is the venue pool backing the pair; zero until finalize
	// creates or discovers it.
	VenuePool uint64 `json:"venue_pool"`
}

// CampaignTokenDenom derives the unique denom minted for a campaign.
func CampaignTokenDenom(id uint64, symbol string) string {
	return fmt.Sprintf("launch/%d/u%s", id, strings.ToLower(symbol))
}

// Validate checks structural integrity of a campaign record.
func (c Campaign) Validate() error {
	if c.Id == 0 {
		return ErrCampaignNotFound.Wrap("campaign id cannot be zero")
	}
	if _, err := sdk.AccAddressFromBech32(c.Creator); err != nil {
		return ErrInvalidAddress.Wrapf("invalid creator address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(c.PlatformFeeAddr); err != nil {
		return ErrInvalidAddress.Wrapf("invalid platform fee address: %s", err)
	}
	if err := sdk.ValidateDenom(c.SettlementDenom); err != nil {
		return ErrInvalidDenom.Wrapf("settlement denom: %s", err)
	}
	if err := sdk.ValidateDenom(c.TokenDenom); err != nil {
		return ErrInvalidDenom.Wrapf("token denom: %s", err)
	}
	if c.TargetFunding.IsNil() || !c.TargetFunding.IsPositive() {
		return ErrInvalidTargetFunding
	}
	if err := c.Allocations.Validate(); err != nil {
		return err
	}
	// The curve divides by the initial price, so a target small enough to
	// floor it to zero must never enter the store.
	if InitialPrice(c.TargetFunding, c.Allocations.SaleAllocation).IsZero() {
		return ErrTargetFundingTooSmall.Wrapf("target %s against sale allocation %s",
			c.TargetFunding, c.Allocations.SaleAllocation)
	}
	if c.TokensSold.IsNil() || c.TokensSold.IsNegative() {
		return ErrInvalidAllocation.Wrap("tokens sold cannot be negative")
	}
	if c.TokensSold.GT(c.Allocations.SaleAllocation) {
		return ErrInvalidAllocation.Wrapf("tokens sold %s exceeds sale allocation %s",
			c.TokensSold, c.Allocations.SaleAllocation)
	}
	if c.TotalRaised.IsNil() || c.TotalRaised.IsNegative() {
		return ErrInvalidAllocation.Wrap("total raised cannot be negative")
	}
	if !ValidVenueKind(c.VenueKind) {
		return ErrInvalidVenueKind.Wrapf("venue kind %q", c.VenueKind)
	}
	if c.LiquidityDeployed && !c.FundingComplete {
		return ErrInvalidAllocation.Wrap("liquidity deployed before funding completed")
	}
	return nil
}

// RemainingSale returns the unsold part of the sale allocation.
func (c Campaign) RemainingSale() math.Int {
	return c.Allocations.SaleAllocation.Sub(c.TokensSold)
}

// Quote prices amountIn settlement units at the campaign's current curve
// position. Pure; identical inputs always produce identical outputs.
func (c Campaign) Quote(amountIn math.Int) math.Int {
	return Quote(amountIn, c.TokensSold, c.Allocations.SaleAllocation, c.TargetFunding)
}

// CurrentPrice returns the spot price at the campaign's curve position,
// scaled by PricePrecision.
func (c Campaign) CurrentPrice() math.Int {
	return SpotPrice(c.TargetFunding, c.Allocations.SaleAllocation, c.TokensSold)
}
