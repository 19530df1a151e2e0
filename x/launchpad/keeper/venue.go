package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/launchpad/x/launchpad/types"
)

// LiquidityVenue turns a campaign's liquidity share into a funded,
// price-initialized trading pool. One implementation exists per venue kind;
// Finalize never branches on the kind itself.
//
// All implementations enforce the shared contract: both amounts strictly
// positive, denoms sorted canonically before any pool key construction, and
// a zero-liquidity outcome fatal to the enclosing finalize. A deposit that
// lands short of the desired amounts is a success; only the unconsumed
// remainder is returned to the creator.
type LiquidityVenue interface {
	Deploy(ctx context.Context, campaign *types.Campaign, tokenAmount, settlementAmount math.Int) (poolID uint64, err error)
}

// validateDeployAmounts rejects zero-sided deposits before any venue call.
func validateDeployAmounts(tokenAmount, settlementAmount math.Int) error {
	if tokenAmount.IsNil() || !tokenAmount.IsPositive() {
		return types.ErrInvalidLiquidityParameters.Wrapf("token amount %s must be positive", tokenAmount)
	}
	if settlementAmount.IsNil() || !settlementAmount.IsPositive() {
		return types.ErrInvalidLiquidityParameters.Wrapf("settlement amount %s must be positive", settlementAmount)
	}
	return nil
}

// deployDeadline returns the unix deadline for a venue deposit: a short
// fixed horizon from the block time of the finalizing transaction.
func (k Keeper) deployDeadline(ctx context.Context) (int64, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return 0, err
	}
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.BlockTime().Unix() + params.DeadlineSeconds, nil
}
