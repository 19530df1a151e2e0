package keeper

import (
	"context"
	"fmt"
	"math/big"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/paw-chain/launchpad/x/launchpad/types"
)

// MockBankKeeper is an in-memory bank for keeper tests. Balances are keyed
// by bech32 address; module accounts resolve through authtypes module
// addresses like the real bank keeper.
type MockBankKeeper struct {
	balances map[string]sdk.Coins

	// FailTransfersTo makes any transfer toward the given address fail,
	// simulating a rejected leg.
	FailTransfersTo map[string]bool

	// FailMint makes every mint fail.
	FailMint bool
}

var _ types.BankKeeper = (*MockBankKeeper)(nil)

// NewMockBankKeeper returns an empty mock bank.
func NewMockBankKeeper() *MockBankKeeper {
	return &MockBankKeeper{
		balances:        make(map[string]sdk.Coins),
		FailTransfersTo: make(map[string]bool),
	}
}

// MintCoins credits newly minted coins to a module account.
func (m *MockBankKeeper) MintCoins(_ context.Context, moduleName string, amt sdk.Coins) error {
	if m.FailMint {
		return fmt.Errorf("mock mint failure")
	}
	addr := authtypes.NewModuleAddress(moduleName).String()
	m.balances[addr] = m.balances[addr].Add(amt...)
	return nil
}

// SendCoinsFromAccountToModule moves coins from an account into a module account.
func (m *MockBankKeeper) SendCoinsFromAccountToModule(_ context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	return m.move(senderAddr.String(), authtypes.NewModuleAddress(recipientModule).String(), amt)
}

// SendCoinsFromModuleToAccount moves coins from a module account to an account.
func (m *MockBankKeeper) SendCoinsFromModuleToAccount(_ context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	return m.move(authtypes.NewModuleAddress(senderModule).String(), recipientAddr.String(), amt)
}

// GetBalance returns the balance of one denom for an account.
func (m *MockBankKeeper) GetBalance(_ context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	bal := m.balances[addr.String()].AmountOf(denom)
	return sdk.NewCoin(denom, bal)
}

// TotalHeld sums one denom across every tracked account; tests use it to
// assert supply conservation.
func (m *MockBankKeeper) TotalHeld(denom string) sdkmath.Int {
	total := sdkmath.ZeroInt()
	for _, coins := range m.balances {
		total = total.Add(coins.AmountOf(denom))
	}
	return total
}

func (m *MockBankKeeper) move(from, to string, amt sdk.Coins) error {
	if m.FailTransfersTo[to] {
		return fmt.Errorf("mock transfer failure to %s", to)
	}
	have := m.balances[from]
	diff, hasNeg := have.SafeSub(amt...)
	if hasNeg {
		return fmt.Errorf("insufficient funds: %s has %s, needs %s", from, have, amt)
	}
	m.balances[from] = diff
	m.balances[to] = m.balances[to].Add(amt...)
	return nil
}

type mockConcentratedPool struct {
	denom0, denom1 string
	feeTier        uint64
	sqrtPriceX96   sdkmath.Int
	initialized    bool
}

// MockConcentratedVenue is a scripted concentrated-liquidity venue. By
// default it consumes the desired amounts in full; Short0/Short1 leave part
// of a side unconsumed and ZeroLiquidity simulates a dead mint.
type MockConcentratedVenue struct {
	bank   *MockBankKeeper
	nextID uint64
	pools  map[string]uint64
	byID   map[uint64]*mockConcentratedPool

	Short0, Short1 sdkmath.Int
	ZeroLiquidity  bool
	FailMint       bool

	// Recorded by MintPosition for assertions.
	LastTickLower, LastTickUpper int64
	LastDeadline                 int64
}

var _ types.ConcentratedVenue = (*MockConcentratedVenue)(nil)

// NewMockConcentratedVenue returns an empty mock venue.
func NewMockConcentratedVenue() *MockConcentratedVenue {
	return &MockConcentratedVenue{
		nextID: 1,
		pools:  make(map[string]uint64),
		byID:   make(map[uint64]*mockConcentratedPool),
		Short0: sdkmath.ZeroInt(),
		Short1: sdkmath.ZeroInt(),
	}
}

// SetBank wires the mock bank so minted positions debit module custody.
func (m *MockConcentratedVenue) SetBank(bank *MockBankKeeper) { m.bank = bank }

// VenueAddress is the account credited with consumed deposits.
func (m *MockConcentratedVenue) VenueAddress() sdk.AccAddress {
	return authtypes.NewModuleAddress("mock_concentrated_venue")
}

func concentratedPoolKey(denom0, denom1 string, feeTier uint64) string {
	return fmt.Sprintf("%s/%s/%d", denom0, denom1, feeTier)
}

// GetPool implements types.ConcentratedVenue.
func (m *MockConcentratedVenue) GetPool(_ context.Context, denom0, denom1 string, feeTier uint64) (uint64, bool) {
	id, ok := m.pools[concentratedPoolKey(denom0, denom1, feeTier)]
	return id, ok
}

// CreatePool implements types.ConcentratedVenue.
func (m *MockConcentratedVenue) CreatePool(_ context.Context, denom0, denom1 string, feeTier uint64) (uint64, error) {
	key := concentratedPoolKey(denom0, denom1, feeTier)
	if _, ok := m.pools[key]; ok {
		return 0, fmt.Errorf("pool already exists for %s", key)
	}
	id := m.nextID
	m.nextID++
	m.pools[key] = id
	m.byID[id] = &mockConcentratedPool{denom0: denom0, denom1: denom1, feeTier: feeTier}
	return id, nil
}

// InitializePool implements types.ConcentratedVenue.
func (m *MockConcentratedVenue) InitializePool(_ context.Context, poolID uint64, sqrtPriceX96 sdkmath.Int) error {
	pool, ok := m.byID[poolID]
	if !ok {
		return fmt.Errorf("pool %d not found", poolID)
	}
	if pool.initialized {
		return fmt.Errorf("pool %d already initialized", poolID)
	}
	pool.sqrtPriceX96 = sqrtPriceX96
	pool.initialized = true
	return nil
}

// MintPosition implements types.ConcentratedVenue.
func (m *MockConcentratedVenue) MintPosition(ctx context.Context, poolID uint64, owner sdk.AccAddress, tickLower, tickUpper int64, amount0Desired, amount1Desired sdkmath.Int, deadline int64) (sdkmath.Int, sdkmath.Int, sdkmath.Int, error) {
	zero := sdkmath.ZeroInt()
	if m.FailMint {
		return zero, zero, zero, fmt.Errorf("mock mint position failure")
	}
	pool, ok := m.byID[poolID]
	if !ok || !pool.initialized {
		return zero, zero, zero, fmt.Errorf("pool %d not initialized", poolID)
	}

	m.LastTickLower, m.LastTickUpper, m.LastDeadline = tickLower, tickUpper, deadline

	if m.ZeroLiquidity {
		return zero, zero, zero, nil
	}

	consumed0 := amount0Desired.Sub(m.Short0)
	consumed1 := amount1Desired.Sub(m.Short1)
	liquidity := sdkmath.NewIntFromBigInt(new(big.Int).Sqrt(consumed0.Mul(consumed1).BigInt()))

	if m.bank != nil {
		coins := sdk.NewCoins(sdk.NewCoin(pool.denom0, consumed0), sdk.NewCoin(pool.denom1, consumed1))
		if err := m.bank.move(owner.String(), m.VenueAddress().String(), coins); err != nil {
			return zero, zero, zero, err
		}
	}

	return liquidity, consumed0, consumed1, nil
}

// MockPoolManager is a scripted singleton pool manager. ModifyLiquidity
// derives the owed amounts from the pool's sqrt price using the full-range
// relations amount0 = L<<96/sqrtP and amount1 = L*sqrtP>>96, so the debits
// never exceed the deposit that implied the delta.
type MockPoolManager struct {
	nextID uint64
	pools  map[string]uint64
	prices map[uint64]sdkmath.Int

	Fail bool
}

var _ types.PoolManager = (*MockPoolManager)(nil)

// NewMockPoolManager returns an empty mock pool manager.
func NewMockPoolManager() *MockPoolManager {
	return &MockPoolManager{
		nextID: 1,
		pools:  make(map[string]uint64),
		prices: make(map[uint64]sdkmath.Int),
	}
}

// ManagerAddress implements types.PoolManager.
func (m *MockPoolManager) ManagerAddress() sdk.AccAddress {
	return authtypes.NewModuleAddress("mock_pool_manager")
}

// InitializePool implements types.PoolManager.
func (m *MockPoolManager) InitializePool(_ context.Context, denom0, denom1 string, sqrtPriceX96 sdkmath.Int) (uint64, error) {
	if m.Fail {
		return 0, fmt.Errorf("mock initialize failure")
	}
	key := denom0 + "/" + denom1
	if id, ok := m.pools[key]; ok {
		return id, nil
	}
	id := m.nextID
	m.nextID++
	m.pools[key] = id
	m.prices[id] = sqrtPriceX96
	return id, nil
}

// ModifyLiquidity implements types.PoolManager.
func (m *MockPoolManager) ModifyLiquidity(_ context.Context, poolID uint64, liquidityDelta sdkmath.Int) (sdkmath.Int, sdkmath.Int, error) {
	zero := sdkmath.ZeroInt()
	if m.Fail {
		return zero, zero, fmt.Errorf("mock modify liquidity failure")
	}
	sqrtPrice, ok := m.prices[poolID]
	if !ok {
		return zero, zero, fmt.Errorf("pool %d not initialized", poolID)
	}

	owed0 := new(big.Int).Lsh(liquidityDelta.BigInt(), 96)
	owed0.Quo(owed0, sqrtPrice.BigInt())
	owed1 := new(big.Int).Mul(liquidityDelta.BigInt(), sqrtPrice.BigInt())
	owed1.Rsh(owed1, 96)

	return sdkmath.NewIntFromBigInt(owed0), sdkmath.NewIntFromBigInt(owed1), nil
}
