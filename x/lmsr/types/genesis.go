package types

import (
	"fmt"
	"strings"

	sdkmath "cosmossdk.io/math"
)

// ShareRecord is one provider's LP share balance in a pool.
type ShareRecord struct {
	PoolId   uint64      `json:"pool_id"`
	Provider string      `json:"provider"`
	Shares   sdkmath.Int `json:"shares"`
}

// ProtocolFeeRecord is the accrued, not yet withdrawn protocol fee in a denom.
type ProtocolFeeRecord struct {
	Denom  string      `json:"denom"`
	Amount sdkmath.Int `json:"amount"`
}

// GenesisState is the full exported state of the module.
type GenesisState struct {
	Params       Params              `json:"params"`
	Pools        []Pool              `json:"pools"`
	NextPoolId   uint64              `json:"next_pool_id"`
	Shares       []ShareRecord       `json:"shares"`
	ProtocolFees []ProtocolFeeRecord `json:"protocol_fees"`
}

// DefaultGenesis returns the default genesis state for the module.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:       DefaultParams(),
		Pools:        []Pool{},
		NextPoolId:   1,
		Shares:       []ShareRecord{},
		ProtocolFees: []ProtocolFeeRecord{},
	}
}

// Validate ensures the genesis state is well-formed.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}
	if gs.NextPoolId == 0 {
		return fmt.Errorf("next pool id must be positive")
	}

	poolIds := make(map[uint64]struct{}, len(gs.Pools))
	for _, pool := range gs.Pools {
		if err := pool.Validate(); err != nil {
			return fmt.Errorf("pool %d: %w", pool.Id, err)
		}
		if pool.Id >= gs.NextPoolId {
			return fmt.Errorf("pool %d has id at or above next pool id %d", pool.Id, gs.NextPoolId)
		}
		if _, dup := poolIds[pool.Id]; dup {
			return fmt.Errorf("duplicate pool id %d", pool.Id)
		}
		poolIds[pool.Id] = struct{}{}
	}

	shareTotals := make(map[uint64]sdkmath.Int, len(gs.Pools))
	for _, rec := range gs.Shares {
		if _, ok := poolIds[rec.PoolId]; !ok {
			return fmt.Errorf("share record references unknown pool %d", rec.PoolId)
		}
		if strings.TrimSpace(rec.Provider) == "" {
			return fmt.Errorf("share record for pool %d missing provider", rec.PoolId)
		}
		if rec.Shares.IsNil() || !rec.Shares.IsPositive() {
			return fmt.Errorf("share record for pool %d must be positive", rec.PoolId)
		}
		total, ok := shareTotals[rec.PoolId]
		if !ok {
			total = sdkmath.ZeroInt()
		}
		shareTotals[rec.PoolId] = total.Add(rec.Shares)
	}
	for _, pool := range gs.Pools {
		total, ok := shareTotals[pool.Id]
		if !ok {
			total = sdkmath.ZeroInt()
		}
		if !total.Equal(pool.TotalShares) {
			return fmt.Errorf("pool %d share records sum to %s, pool records %s", pool.Id, total, pool.TotalShares)
		}
	}

	feeDenoms := make(map[string]struct{}, len(gs.ProtocolFees))
	for _, rec := range gs.ProtocolFees {
		if strings.TrimSpace(rec.Denom) == "" {
			return fmt.Errorf("protocol fee record missing denom")
		}
		if _, dup := feeDenoms[rec.Denom]; dup {
			return fmt.Errorf("duplicate protocol fee record for %s", rec.Denom)
		}
		feeDenoms[rec.Denom] = struct{}{}
		if rec.Amount.IsNil() || rec.Amount.IsNegative() {
			return fmt.Errorf("protocol fee for %s cannot be negative", rec.Denom)
		}
	}

	return nil
}
