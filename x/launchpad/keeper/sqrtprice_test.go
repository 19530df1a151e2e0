package keeper_test

import (
	"math/big"
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/paw-chain/launchpad/x/launchpad/keeper"
	"github.com/paw-chain/launchpad/x/launchpad/types"
)

// TestIntegerSqrt tests the Babylonian floor square root
func TestIntegerSqrt(t *testing.T) {
	tests := []struct {
		in, out int64
	}{
		{0, 0},
		{1, 1},
		{2, 1},
		{3, 1},
		{4, 2},
		{15, 3},
		{16, 4},
		{17, 4},
		{1_000_000, 1_000},
		{999_999, 999},
	}
	for _, tc := range tests {
		got := keeper.IntegerSqrt(big.NewInt(tc.in))
		require.Equal(t, big.NewInt(tc.out), got, "isqrt(%d)", tc.in)
	}

	// Negative inputs floor to zero.
	require.Equal(t, big.NewInt(0), keeper.IntegerSqrt(big.NewInt(-9)))

	// A 256-bit perfect square is exact.
	base, ok := new(big.Int).SetString("123456789012345678901234567890123456789", 10)
	require.True(t, ok)
	square := new(big.Int).Mul(base, base)
	require.Equal(t, base, keeper.IntegerSqrt(square))

	// One below the perfect square floors to base-1.
	require.Equal(t, new(big.Int).Sub(base, big.NewInt(1)),
		keeper.IntegerSqrt(new(big.Int).Sub(square, big.NewInt(1))))
}

// TestSqrtPriceX96 tests the Q64.96 price encoding
func TestSqrtPriceX96(t *testing.T) {
	q96 := new(big.Int).Lsh(big.NewInt(1), 96)

	// Equal deposits price at exactly 1.0: 2^96.
	price, err := keeper.SqrtPriceX96(math.NewIntWithDecimal(1, 18), math.NewIntWithDecimal(1, 18))
	require.NoError(t, err)
	require.Equal(t, math.NewIntFromBigInt(q96), price)

	// A 4:1 ratio prices at sqrt(4) = 2.0: 2^97.
	price, err = keeper.SqrtPriceX96(math.NewIntWithDecimal(1, 18), math.NewIntWithDecimal(4, 18))
	require.NoError(t, err)
	require.Equal(t, math.NewIntFromBigInt(new(big.Int).Lsh(q96, 1)), price)

	// A 1:4 ratio prices at 0.5: 2^95.
	price, err = keeper.SqrtPriceX96(math.NewIntWithDecimal(4, 18), math.NewIntWithDecimal(1, 18))
	require.NoError(t, err)
	require.Equal(t, math.NewIntFromBigInt(new(big.Int).Rsh(q96, 1)), price)
}

// TestSqrtPriceX96_RejectsNonPositive tests the zero-side guard
func TestSqrtPriceX96_RejectsNonPositive(t *testing.T) {
	one := math.NewInt(1)

	_, err := keeper.SqrtPriceX96(math.ZeroInt(), one)
	require.ErrorIs(t, err, types.ErrInvalidLiquidityParameters)

	_, err = keeper.SqrtPriceX96(one, math.ZeroInt())
	require.ErrorIs(t, err, types.ErrInvalidLiquidityParameters)

	_, err = keeper.SqrtPriceX96(math.Int{}, one)
	require.ErrorIs(t, err, types.ErrInvalidLiquidityParameters)
}
