package keeper

import (
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	"github.com/paw-chain/launchpad/x/launchpad/keeper"
	"github.com/paw-chain/launchpad/x/launchpad/types"
)

// TestAuthority is the governance authority used by test keepers.
var TestAuthority = authtypes.NewModuleAddress("gov").String()

// LaunchpadKeeper creates a test keeper for the launchpad module backed by
// an in-memory multistore, a MockBankKeeper, and mock venue capabilities.
func LaunchpadKeeper(t testing.TB) (*keeper.Keeper, sdk.Context, *MockBankKeeper, *MockConcentratedVenue, *MockPoolManager) {
	return LaunchpadKeeperWithVenues(t, true, true)
}

// LaunchpadKeeperWithVenues creates a test keeper with the concentrated and
// singleton venue capabilities individually enabled or absent. The pair
// venue is always wired; it lives in the module itself.
func LaunchpadKeeperWithVenues(t testing.TB, withConcentrated, withSingleton bool) (*keeper.Keeper, sdk.Context, *MockBankKeeper, *MockConcentratedVenue, *MockPoolManager) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	memStoreKey := storetypes.NewMemoryStoreKey(types.MemStoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(memStoreKey, storetypes.StoreTypeMemory, nil)
	require.NoError(t, stateStore.LoadLatestVersion())

	bank := NewMockBankKeeper()
	concentrated := NewMockConcentratedVenue()
	concentrated.SetBank(bank)
	manager := NewMockPoolManager()

	var (
		concentratedCap types.ConcentratedVenue
		managerCap      types.PoolManager
	)
	if withConcentrated {
		concentratedCap = concentrated
	}
	if withSingleton {
		managerCap = manager
	}

	k := keeper.NewKeeper(
		types.ModuleCdc,
		storeKey,
		bank,
		TestAuthority,
		concentratedCap,
		managerCap,
	)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{Time: time.Unix(1_700_000_000, 0)}, false, log.NewNopLogger())

	require.NoError(t, k.InitGenesis(ctx, *types.DefaultGenesis()))

	return k, ctx, bank, concentrated, manager
}

// FundAccount credits an account in the mock bank.
func FundAccount(bank *MockBankKeeper, addr sdk.AccAddress, coins sdk.Coins) {
	bank.balances[addr.String()] = bank.balances[addr.String()].Add(coins...)
}
