package types

import (
	"cosmossdk.io/math"
)

// Allocation percentages partitioning the fixed total supply. They must sum
// to 100; NewAllocationTable derives exact unit counts from them with the
// remainder folded into the sale bucket so no unit is ever lost to rounding.
const (
	SalePercent        = 50
	LiquidityPercent   = 25
	CreatorPercent     = 20
	PlatformFeePercent = 5
)

// DefaultTotalSupply is the fixed supply minted once per campaign:
// 1,000,000,000 whole tokens at 18 decimals.
var DefaultTotalSupply = math.NewIntWithDecimal(1_000_000_000, 18)

// AllocationTable partitions a campaign's total supply into its four
// disjoint buckets.
type AllocationTable struct {
	TotalSupply           math.Int `json:"total_supply"`
	SaleAllocation        math.Int `json:"sale_allocation"`
	CreatorAllocation     math.Int `json:"creator_allocation"`
	LiquidityAllocation   math.Int `json:"liquidity_allocation"`
	PlatformFeeAllocation math.Int `json:"platform_fee_allocation"`
}

// NewAllocationTable splits totalSupply by the fixed percentages. The
// creator, liquidity, and platform buckets truncate; the sale bucket takes
// whatever remains, so the four buckets always sum to totalSupply exactly.
func NewAllocationTable(totalSupply math.Int) AllocationTable {
	hundred := math.NewInt(100)

	creator := totalSupply.Mul(math.NewInt(CreatorPercent)).Quo(hundred)
	liquidity := totalSupply.Mul(math.NewInt(LiquidityPercent)).Quo(hundred)
	platformFee := totalSupply.Mul(math.NewInt(PlatformFeePercent)).Quo(hundred)
	sale := totalSupply.Sub(creator).Sub(liquidity).Sub(platformFee)

	return AllocationTable{
		TotalSupply:           totalSupply,
		SaleAllocation:        sale,
		CreatorAllocation:     creator,
		LiquidityAllocation:   liquidity,
		PlatformFeeAllocation: platformFee,
	}
}

// Validate checks that the buckets are positive and partition the supply.
func (a AllocationTable) Validate() error {
	for _, amt := range []math.Int{a.TotalSupply, a.SaleAllocation, a.CreatorAllocation, a.LiquidityAllocation, a.PlatformFeeAllocation} {
		if amt.IsNil() || !amt.IsPositive() {
			return ErrInvalidAllocation.Wrap("allocation buckets must be positive")
		}
	}
	sum := a.SaleAllocation.Add(a.CreatorAllocation).Add(a.LiquidityAllocation).Add(a.PlatformFeeAllocation)
	if !sum.Equal(a.TotalSupply) {
		return ErrInvalidAllocation.Wrapf("allocations sum to %s, total supply is %s", sum, a.TotalSupply)
	}
	return nil
}

// SplitSettlement divides a settlement-asset amount between the creator and
// the liquidity venue: half to the creator (truncated), the rest to the
// venue. The two halves always sum to the input exactly.
func SplitSettlement(amount math.Int) (creatorShare, liquidityShare math.Int) {
	creatorShare = amount.Quo(math.NewInt(2))
	liquidityShare = amount.Sub(creatorShare)
	return creatorShare, liquidityShare
}
