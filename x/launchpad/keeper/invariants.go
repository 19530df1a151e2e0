package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/launchpad/x/launchpad/types"
)

// RegisterInvariants registers all launchpad invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "supply-conservation", SupplyConservationInvariant(k))
	ir.RegisterRoute(types.ModuleName, "sale-accounting", SaleAccountingInvariant(k))
}

// AllInvariants runs all invariants of the launchpad module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := SupplyConservationInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		return SaleAccountingInvariant(k)(ctx)
	}
}

// SupplyConservationInvariant checks that, for every campaign not yet
// finalized, module custody still holds every token the allocations have
// not disbursed: the unsold sale remainder plus the creator, liquidity,
// and platform fee buckets.
func SupplyConservationInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		moduleAddr := k.GetModuleAddress()
		_ = k.IterateCampaigns(ctx, func(c types.Campaign) bool {
			if c.LiquidityDeployed {
				return false
			}

			expected := c.RemainingSale().
				Add(c.Allocations.CreatorAllocation).
				Add(c.Allocations.LiquidityAllocation).
				Add(c.Allocations.PlatformFeeAllocation)

			held := k.bankKeeper.GetBalance(ctx, moduleAddr, c.TokenDenom).Amount
			if held.LT(expected) {
				count++
				msg += fmt.Sprintf("campaign %d: module holds %s %s, expected at least %s\n",
					c.Id, held, c.TokenDenom, expected)
			}
			return false
		})

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "supply-conservation",
			fmt.Sprintf("%d campaigns with missing custody\n%s", count, msg),
		), broken
	}
}

// SaleAccountingInvariant checks the one-directional state machine: sold
// never exceeds the sale allocation, the completion flag matches the sold
// total, and finalized campaigns are funded.
func SaleAccountingInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		_ = k.IterateCampaigns(ctx, func(c types.Campaign) bool {
			if c.TokensSold.GT(c.Allocations.SaleAllocation) {
				count++
				msg += fmt.Sprintf("campaign %d: sold %s exceeds allocation %s\n",
					c.Id, c.TokensSold, c.Allocations.SaleAllocation)
			}
			if c.FundingComplete && c.TokensSold.LT(c.Allocations.SaleAllocation) {
				count++
				msg += fmt.Sprintf("campaign %d: funding complete with %s of %s sold\n",
					c.Id, c.TokensSold, c.Allocations.SaleAllocation)
			}
			if c.LiquidityDeployed && !c.FundingComplete {
				count++
				msg += fmt.Sprintf("campaign %d: liquidity deployed before funding completed\n", c.Id)
			}
			return false
		})

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "sale-accounting",
			fmt.Sprintf("%d campaigns with inconsistent accounting\n%s", count, msg),
		), broken
	}
}
