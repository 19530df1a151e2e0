package types

import (
	"context"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BankKeeper is the fungible-asset capability the launchpad relies on. A
// returned error from any method is treated as a failed transfer and aborts
// the enclosing operation.
type BankKeeper interface {
	MintCoins(ctx context.Context, moduleName string, amt sdk.Coins) error
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
}

// ConcentratedVenue is the external concentrated-liquidity venue capability.
// Pools are keyed by sorted denom pair and fee tier; prices use the Q64.96
// square-root representation.
type ConcentratedVenue interface {
	// GetPool returns the pool id for the pair at the fee tier, or false if
	// no such pool exists.
	GetPool(ctx context.Context, denom0, denom1 string, feeTier uint64) (uint64, bool)
	// CreatePool creates an uninitialized pool for the pair at the fee tier.
	CreatePool(ctx context.Context, denom0, denom1 string, feeTier uint64) (uint64, error)
	// InitializePool sets a fresh pool's starting price.
	InitializePool(ctx context.Context, poolID uint64, sqrtPriceX96 sdkmath.Int) error
	// MintPosition mints a position over [tickLower, tickUpper] funded from
	// owner, returning the amounts actually consumed on each side.
	MintPosition(ctx context.Context, poolID uint64, owner sdk.AccAddress, tickLower, tickUpper int64,
		amount0Desired, amount1Desired sdkmath.Int, deadline int64) (liquidity, amount0, amount1 sdkmath.Int, err error)
}

// PoolManager is the singleton-settlement venue capability: one shared
// manager holds every pool; liquidity changes are signed deltas and any
// resulting debt is settled by transferring the owed amount per side.
type PoolManager interface {
	// InitializePool creates the pool for the sorted pair at the given
	// starting price, returning its id. Initializing an existing pool
	// returns the existing id without error.
	InitializePool(ctx context.Context, denom0, denom1 string, sqrtPriceX96 sdkmath.Int) (uint64, error)
	// ModifyLiquidity applies a signed liquidity delta and returns the
	// amounts owed to the manager on each side (negative values are owed to
	// the caller).
	ModifyLiquidity(ctx context.Context, poolID uint64, liquidityDelta sdkmath.Int) (owed0, owed1 sdkmath.Int, err error)
	// ManagerAddress is the settlement destination for owed amounts.
	ManagerAddress() sdk.AccAddress
}
