package keeper

import (
	"math/big"

	"cosmossdk.io/math"

	"github.com/paw-chain/launchpad/x/launchpad/types"
)

// IntegerSqrt returns floor(sqrt(x)) via Babylonian iteration. Exact for
// perfect squares; O(log x) iterations.
func IntegerSqrt(x *big.Int) *big.Int {
	if x.Sign() <= 0 {
		return big.NewInt(0)
	}
	// 1..3 floor to 1; the iteration below needs x >= 4 so the seed
	// x/2+1 strictly exceeds sqrt(x).
	if x.Cmp(big.NewInt(4)) < 0 {
		return big.NewInt(1)
	}

	z := new(big.Int).Rsh(x, 1)
	z.Add(z, big.NewInt(1))
	y := new(big.Int).Set(x)

	for z.Cmp(y) < 0 {
		y.Set(z)
		t := new(big.Int).Quo(x, z)
		t.Add(t, z)
		z = t.Rsh(t, 1)
	}
	return y
}

// SqrtPriceX96 computes the Q64.96 square-root price implied by depositing
// amount0 of the pool's first (canonically sorted) denom against amount1 of
// the second: sqrt(amount1/amount0) << 96, computed as
// isqrt(amount1 << 192 / amount0) so the shift happens before the division
// truncates.
func SqrtPriceX96(amount0, amount1 math.Int) (math.Int, error) {
	if amount0.IsNil() || !amount0.IsPositive() || amount1.IsNil() || !amount1.IsPositive() {
		return math.ZeroInt(), types.ErrInvalidLiquidityParameters.Wrap("sqrt price requires positive amounts on both sides")
	}

	ratio := new(big.Int).Lsh(amount1.BigInt(), 192)
	ratio.Quo(ratio, amount0.BigInt())

	return math.NewIntFromBigInt(IntegerSqrt(ratio)), nil
}

// fullRangeTicks returns the widest tick bounds aligned to the venue's tick
// spacing. The magnitude matches the usual concentrated-liquidity limit of
// +/-887272 before alignment.
func fullRangeTicks(tickSpacing int64) (lower, upper int64) {
	const maxTick = 887272
	upper = (maxTick / tickSpacing) * tickSpacing
	return -upper, upper
}
