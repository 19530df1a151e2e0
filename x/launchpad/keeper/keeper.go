package keeper

import (
	"context"

	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/paw-chain/launchpad/x/launchpad/types"
)

// Keeper of the launchpad store
type Keeper struct {
	storeKey   storetypes.StoreKey
	cdc        *codec.LegacyAmino
	bankKeeper types.BankKeeper

	// authority is the governance account; it may finalize any campaign in
	// addition to the campaign creator.
	authority string

	moduleAddressCache sdk.AccAddress

	venues  map[string]LiquidityVenue
	metrics *LaunchpadMetrics
}

// NewKeeper creates a new launchpad Keeper instance. The concentrated venue
// and pool manager capabilities may be nil; campaigns targeting a venue
// whose capability is absent fail at creation time.
func NewKeeper(
	cdc *codec.LegacyAmino,
	key storetypes.StoreKey,
	bankKeeper types.BankKeeper,
	authority string,
	concentrated types.ConcentratedVenue,
	poolManager types.PoolManager,
) *Keeper {
	k := &Keeper{
		storeKey:           key,
		cdc:                cdc,
		bankKeeper:         bankKeeper,
		authority:          authority,
		moduleAddressCache: authtypes.NewModuleAddress(types.ModuleName),
		venues:             make(map[string]LiquidityVenue),
		metrics:            getLaunchpadMetrics(),
	}

	k.venues[types.VenueKindPair] = pairVenue{k}
	if concentrated != nil {
		k.venues[types.VenueKindConcentrated] = concentratedVenue{k: k, venue: concentrated}
	}
	if poolManager != nil {
		k.venues[types.VenueKindSingleton] = singletonVenue{k: k, manager: poolManager}
	}

	return k
}

// getStore returns the KVStore for the launchpad module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}

// GetModuleAddress returns the cached module account address. The module
// account custodies every campaign's unsold supply and raised settlement
// assets until finalize.
func (k Keeper) GetModuleAddress() sdk.AccAddress {
	return k.moduleAddressCache
}

// GetAuthority returns the governance authority address
func (k Keeper) GetAuthority() string {
	return k.authority
}

// HasVenue reports whether a liquidity venue kind is wired into the keeper.
func (k Keeper) HasVenue(kind string) bool {
	_, ok := k.venues[kind]
	return ok
}

// acquireFinalizeLock sets the per-campaign re-entrancy flag. The host
// serializes transactions, but the venue capabilities are external code;
// the lock closes the window where a venue callback re-enters finalize.
func (k Keeper) acquireFinalizeLock(ctx context.Context, campaignID uint64) error {
	store := k.getStore(ctx)
	key := FinalizeLockKey(campaignID)
	if store.Has(key) {
		return types.ErrReentrancy.Wrapf("finalize already in progress for campaign %d", campaignID)
	}
	store.Set(key, []byte{1})
	return nil
}

// releaseFinalizeLock clears the per-campaign re-entrancy flag.
func (k Keeper) releaseFinalizeLock(ctx context.Context, campaignID uint64) {
	k.getStore(ctx).Delete(FinalizeLockKey(campaignID))
}
