package keeper

import (
	"encoding/binary"
)

var (
	// CampaignKeyPrefix is the prefix for campaign store keys
	CampaignKeyPrefix = []byte{0x01}

	// CampaignCountKey is the key for the next campaign ID counter
	CampaignCountKey = []byte{0x02}

	// PoolKeyPrefix is the prefix for pair-venue pool store keys
	PoolKeyPrefix = []byte{0x03}

	// PoolCountKey is the key for the next pool ID counter
	PoolCountKey = []byte{0x04}

	// PoolByDenomsKeyPrefix is the prefix for indexing pools by denom pair
	PoolByDenomsKeyPrefix = []byte{0x05}

	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x06}

	// FinalizeLockKeyPrefix is the prefix for finalize re-entrancy locks
	FinalizeLockKeyPrefix = []byte{0x07}

	// TotalCampaignsCountKey tracks the number of campaigns in O(1)
	TotalCampaignsCountKey = []byte{0x08}
)

// CampaignKey returns the store key for a campaign by ID
func CampaignKey(campaignID uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, campaignID)
	return append(CampaignKeyPrefix, bz...)
}

// PoolKey returns the store key for a pool by ID
func PoolKey(poolID uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, poolID)
	return append(PoolKeyPrefix, bz...)
}

// PoolByDenomsKey returns the store key indexing a pool by its sorted pair.
// Callers must pass denoms already in canonical order.
func PoolByDenomsKey(denomA, denomB string) []byte {
	key := append(PoolByDenomsKeyPrefix, []byte(denomA)...)
	key = append(key, '/')
	return append(key, []byte(denomB)...)
}

// FinalizeLockKey returns the re-entrancy lock key for a campaign
func FinalizeLockKey(campaignID uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, campaignID)
	return append(FinalizeLockKeyPrefix, bz...)
}
