// Package keeper implements the launchpad module keeper.
//
// The launchpad module runs bonding-curve token sales. A campaign mints a
// fixed supply into module custody, sells half of it along a linear price
// curve, and on funding completion finalizes in one shot: proceeds are
// distributed and a trading pool is seeded on the campaign's liquidity
// venue.
//
// # Core Functionality
//
// Campaigns: Create campaigns with a derived token denom, a funding target,
// and a fixed four-way supply allocation (sale, liquidity, creator,
// platform fee). Total supply is minted exactly once at creation.
//
// Bonding-Curve Sales: Buy tokens at a linearly rising price. Quotes use an
// average-price correction over the order so large orders pay the mid-order
// price. Orders that would exceed the sale allocation are rejected; the
// sale closes the moment the allocation is exactly sold out.
//
// Finalization: One-shot and atomic. Pays the creator and the platform fee
// address, splits the raised settlement between creator and venue, deploys
// the liquidity allocation, and marks the campaign deployed. Guarded by a
// per-campaign reentrancy lock.
//
// Liquidity Venues: Three interchangeable deployment targets behind the
// LiquidityVenue interface: the module's own constant-product pair pools, an
// external concentrated-liquidity venue (full-range position at a sqrt
// price in Q64.96), and an external singleton pool manager (signed
// liquidity delta settled per side).
//
// # Key Types
//
// Keeper: Main module keeper managing campaign and pool state, bank
// custody, and the optional external venue capabilities.
//
// Campaign: Sale record with allocations, raise accounting, and one-way
// FundingComplete / LiquidityDeployed flags.
//
// Pool: Pair-venue liquidity pool with sorted denoms, reserves, and LP
// shares.
//
// # Usage Patterns
//
// Creating a campaign:
//
//	campaign, err := keeper.CreateCampaign(ctx, creator, name, symbol, targetFunding, feeAddr, venueKind)
//
// Buying on the curve:
//
//	tokensOut, complete, err := keeper.Buy(ctx, buyer, campaignID, amountIn)
//
// Finalizing:
//
//	result, err := keeper.Finalize(ctx, signer, campaignID)
//
// # Metrics
//
// The keeper exposes Prometheus counters for campaign creation, purchases,
// and finalizations via LaunchpadMetrics.
package keeper
