package types

import (
	"cosmossdk.io/errors"
)

// Launchpad module sentinel errors
var (
	ErrCampaignNotFound           = errors.Register(ModuleName, 1, "campaign not found")
	ErrInvalidAddress             = errors.Register(ModuleName, 2, "invalid address")
	ErrInvalidTargetFunding       = errors.Register(ModuleName, 3, "target funding must be positive")
	ErrInvalidTokenSymbol         = errors.Register(ModuleName, 4, "invalid token symbol")
	ErrInvalidVenueKind           = errors.Register(ModuleName, 5, "unknown liquidity venue kind")
	ErrZeroAmount                 = errors.Register(ModuleName, 6, "amount cannot be zero")
	ErrSaleClosed                 = errors.Register(ModuleName, 7, "sale is closed to purchases")
	ErrSaleStillOpen              = errors.Register(ModuleName, 8, "sale has not completed funding")
	ErrAllocationExceeded         = errors.Register(ModuleName, 9, "purchase exceeds remaining sale allocation")
	ErrAlreadyFinalized           = errors.Register(ModuleName, 10, "campaign already finalized")
	ErrTransferFailed             = errors.Register(ModuleName, 11, "asset transfer failed")
	ErrUnauthorized               = errors.Register(ModuleName, 12, "unauthorized")
	ErrInvalidLiquidityParameters = errors.Register(ModuleName, 13, "invalid liquidity parameters")
	ErrLiquidityAddingFailed      = errors.Register(ModuleName, 14, "adding liquidity to venue failed")
	ErrPoolNotFound               = errors.Register(ModuleName, 15, "pool not found")
	ErrPoolAlreadyExists          = errors.Register(ModuleName, 16, "pool already exists")
	ErrMaxCampaignsReached        = errors.Register(ModuleName, 18, "maximum number of campaigns reached")
	ErrInvalidAllocation          = errors.Register(ModuleName, 19, "allocations do not partition total supply")
	ErrReentrancy                 = errors.Register(ModuleName, 20, "operation already in progress")
	ErrInvalidDenom               = errors.Register(ModuleName, 21, "invalid token denomination")
	ErrTargetFundingTooSmall      = errors.Register(ModuleName, 22, "target funding too small for a positive initial price")
)
