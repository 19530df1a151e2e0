package types

import (
	"cosmossdk.io/math"
)

// PricePrecision is the fixed-point base for all curve prices: a price of
// 1.0 settlement units per token is represented as 1e18.
var PricePrecision = math.NewIntWithDecimal(1, 18)

// InitialPrice returns the curve's starting price, scaled by PricePrecision.
func InitialPrice(targetFunding, saleAllocation math.Int) math.Int {
	return targetFunding.Mul(PricePrecision).Quo(saleAllocation)
}

// SpotPrice returns the instantaneous price after tokensSold units have been
// sold, scaled by PricePrecision. The curve is linear in the fraction sold:
// price(s) = initialPrice * (1 + s/saleAllocation), so the price is exactly
// double the initial price when the sale allocation is exhausted.
func SpotPrice(targetFunding, saleAllocation, tokensSold math.Int) math.Int {
	initial := InitialPrice(targetFunding, saleAllocation)
	return initial.Mul(saleAllocation.Add(tokensSold)).Quo(saleAllocation)
}

// Quote returns the token units receivable for amountIn settlement units at
// the current point on the curve.
//
// The price rises during a purchase, so a first-pass estimate at the spot
// price is corrected once: the estimate locates the end of the purchase on
// the curve, and the buyer pays the midpoint (average) price between start
// and end. This is a single correction step, not the exact integral of the
// linear curve; very large single orders are priced slightly off the true
// integral. The formula, its 1e18 base, and its truncating multiply-before-
// divide order are load-bearing for compatibility and must not be reordered.
func Quote(amountIn, tokensSold, saleAllocation, targetFunding math.Int) math.Int {
	initial := InitialPrice(targetFunding, saleAllocation)

	currentPrice := initial.Mul(saleAllocation.Add(tokensSold)).Quo(saleAllocation)
	unitsAtCurrent := amountIn.Mul(PricePrecision).Quo(currentPrice)

	half := unitsAtCurrent.Quo(math.NewInt(2))
	avgPrice := initial.Mul(saleAllocation.Add(tokensSold).Add(half)).Quo(saleAllocation)

	return amountIn.Mul(PricePrecision).Quo(avgPrice)
}
