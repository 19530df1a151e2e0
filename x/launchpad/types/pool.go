package types

import (
	"cosmossdk.io/math"
)

// Pool is a two-sided AMM pool backing the "pair" liquidity venue. Denoms
// are stored in lexicographic order.
type Pool struct {
	Id          uint64   `json:"id"`
	DenomA      string   `json:"denom_a"`
	DenomB      string   `json:"denom_b"`
	ReserveA    math.Int `json:"reserve_a"`
	ReserveB    math.Int `json:"reserve_b"`
	TotalShares math.Int `json:"total_shares"`
	Creator     string   `json:"creator"`
}

// Validate checks structural integrity of a pool record.
func (p Pool) Validate() error {
	if p.Id == 0 {
		return ErrPoolNotFound.Wrap("pool id cannot be zero")
	}
	if p.DenomA == "" || p.DenomB == "" {
		return ErrInvalidDenom.Wrap("pool denoms cannot be empty")
	}
	if p.DenomA >= p.DenomB {
		return ErrInvalidDenom.Wrapf("pool denoms must be sorted and distinct: %s/%s", p.DenomA, p.DenomB)
	}
	if p.ReserveA.IsNil() || p.ReserveA.IsNegative() || p.ReserveB.IsNil() || p.ReserveB.IsNegative() {
		return ErrInvalidLiquidityParameters.Wrap("pool reserves cannot be negative")
	}
	if p.TotalShares.IsNil() || p.TotalShares.IsNegative() {
		return ErrInvalidLiquidityParameters.Wrap("pool shares cannot be negative")
	}
	return nil
}

// LiquidityPosition is one provider's LP share holding in a pair-venue
// pool, carried through genesis alongside the pool itself.
type LiquidityPosition struct {
	PoolId   uint64   `json:"pool_id"`
	Provider string   `json:"provider"`
	Shares   math.Int `json:"shares"`
}

// Validate checks structural integrity of an LP share position.
func (lp LiquidityPosition) Validate() error {
	if lp.PoolId == 0 {
		return ErrPoolNotFound.Wrap("position pool id cannot be zero")
	}
	if lp.Provider == "" {
		return ErrInvalidAddress.Wrap("position provider cannot be empty")
	}
	if lp.Shares.IsNil() || !lp.Shares.IsPositive() {
		return ErrInvalidLiquidityParameters.Wrap("position shares must be positive")
	}
	return nil
}

// SortDenoms returns the pair in canonical (lexicographic) order. Every pool
// key construction goes through this; the venue treats (A,B) and (B,A) as
// distinct pairs otherwise.
func SortDenoms(a, b string) (string, string) {
	if a > b {
		return b, a
	}
	return a, b
}
