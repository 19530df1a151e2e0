package keeper

import (
	"context"
	"encoding/binary"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/launchpad/x/launchpad/types"
)

// LiquidityKeyPrefix is the prefix for pair-venue LP share positions
var LiquidityKeyPrefix = []byte{0x09}

// LiquidityKey returns the store key for an LP share position
func LiquidityKey(poolID uint64, provider sdk.AccAddress) []byte {
	key := make([]byte, 0, len(LiquidityKeyPrefix)+8+len(provider))
	key = append(key, LiquidityKeyPrefix...)
	idBz := make([]byte, 8)
	binary.BigEndian.PutUint64(idBz, poolID)
	key = append(key, idBz...)
	return append(key, provider.Bytes()...)
}

// GetNextPoolID returns the next pool ID and increments the counter
func (k Keeper) GetNextPoolID(ctx context.Context) uint64 {
	store := k.getStore(ctx)
	bz := store.Get(PoolCountKey)

	var poolID uint64 = 1
	if bz != nil {
		poolID = binary.BigEndian.Uint64(bz)
	}

	nextBz := make([]byte, 8)
	binary.BigEndian.PutUint64(nextBz, poolID+1)
	store.Set(PoolCountKey, nextBz)

	return poolID
}

// peekNextPoolID reads the counter without incrementing it
func (k Keeper) peekNextPoolID(ctx context.Context) uint64 {
	bz := k.getStore(ctx).Get(PoolCountKey)
	if bz == nil {
		return 1
	}
	return binary.BigEndian.Uint64(bz)
}

// SetNextPoolID sets the next pool ID counter
func (k Keeper) SetNextPoolID(ctx context.Context, poolID uint64) {
	store := k.getStore(ctx)
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, poolID)
	store.Set(PoolCountKey, bz)
}

// GetPool retrieves a pair-venue pool by its unique numeric ID.
// Returns ErrPoolNotFound if the pool does not exist.
func (k Keeper) GetPool(ctx context.Context, poolID uint64) (*types.Pool, error) {
	store := k.getStore(ctx)
	bz := store.Get(PoolKey(poolID))
	if bz == nil {
		return nil, types.ErrPoolNotFound.Wrapf("pool %d not found", poolID)
	}

	var pool types.Pool
	if err := k.cdc.Unmarshal(bz, &pool); err != nil {
		return nil, fmt.Errorf("GetPool: unmarshal pool %d: %w", poolID, err)
	}
	return &pool, nil
}

// SetPool saves a pool to the store
func (k Keeper) SetPool(ctx context.Context, pool *types.Pool) error {
	store := k.getStore(ctx)
	bz, err := k.cdc.Marshal(pool)
	if err != nil {
		return fmt.Errorf("SetPool: marshal pool %d: %w", pool.Id, err)
	}
	store.Set(PoolKey(pool.Id), bz)
	return nil
}

// GetPoolByDenoms retrieves a pool by its denom pair (order-independent).
// Denoms are internally sorted for consistent lookup.
func (k Keeper) GetPoolByDenoms(ctx context.Context, denomA, denomB string) (*types.Pool, error) {
	denomA, denomB = types.SortDenoms(denomA, denomB)

	store := k.getStore(ctx)
	bz := store.Get(PoolByDenomsKey(denomA, denomB))
	if bz == nil {
		return nil, types.ErrPoolNotFound.Wrapf("pool not found for pair %s/%s", denomA, denomB)
	}

	return k.GetPool(ctx, binary.BigEndian.Uint64(bz))
}

// SetPoolByDenoms indexes a pool by its denom pair
func (k Keeper) SetPoolByDenoms(ctx context.Context, denomA, denomB string, poolID uint64) {
	denomA, denomB = types.SortDenoms(denomA, denomB)

	store := k.getStore(ctx)
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, poolID)
	store.Set(PoolByDenomsKey(denomA, denomB), bz)
}

// IteratePools iterates over all pair-venue pools in id order
func (k Keeper) IteratePools(ctx context.Context, cb func(pool types.Pool) (stop bool)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, PoolKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var pool types.Pool
		if err := k.cdc.Unmarshal(iterator.Value(), &pool); err != nil {
			return fmt.Errorf("IteratePools: unmarshal pool: %w", err)
		}
		if cb(pool) {
			break
		}
	}
	return nil
}

// GetLiquidity retrieves a provider's LP share position in a pool
func (k Keeper) GetLiquidity(ctx context.Context, poolID uint64, provider sdk.AccAddress) (math.Int, error) {
	store := k.getStore(ctx)
	bz := store.Get(LiquidityKey(poolID, provider))
	if bz == nil {
		return math.ZeroInt(), nil
	}

	var shares math.Int
	if err := shares.Unmarshal(bz); err != nil {
		return math.ZeroInt(), err
	}
	return shares, nil
}

// IterateLiquidity iterates over all LP share positions in key order
func (k Keeper) IterateLiquidity(ctx context.Context, cb func(position types.LiquidityPosition) (stop bool)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, LiquidityKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		key := iterator.Key()[len(LiquidityKeyPrefix):]
		poolID := binary.BigEndian.Uint64(key[:8])
		provider := sdk.AccAddress(key[8:])

		var shares math.Int
		if err := shares.Unmarshal(iterator.Value()); err != nil {
			return fmt.Errorf("IterateLiquidity: unmarshal shares for pool %d: %w", poolID, err)
		}
		if cb(types.LiquidityPosition{PoolId: poolID, Provider: provider.String(), Shares: shares}) {
			break
		}
	}
	return nil
}

// SetLiquidity sets a provider's LP share position in a pool
func (k Keeper) SetLiquidity(ctx context.Context, poolID uint64, provider sdk.AccAddress, shares math.Int) error {
	store := k.getStore(ctx)
	if shares.IsZero() {
		store.Delete(LiquidityKey(poolID, provider))
		return nil
	}

	bz, err := shares.Marshal()
	if err != nil {
		return err
	}
	store.Set(LiquidityKey(poolID, provider), bz)
	return nil
}
