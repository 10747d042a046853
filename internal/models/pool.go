package models

import "github.com/holiman/uint256"

// PoolState holds the aggregate accounting of the lending pool.
type PoolState struct {
	TotalPoolLiquidity   *uint256.Int
	TotalActiveLoans     *uint256.Int
	TotalDefaultedAmount *uint256.Int
	TotalInterestPool    *uint256.Int
	TotalLenderDeposits  *uint256.Int
}

// NewPoolState returns a pool with every aggregate set to zero.
func NewPoolState() PoolState {
	return PoolState{
		TotalPoolLiquidity:   new(uint256.Int),
		TotalActiveLoans:     new(uint256.Int),
		TotalDefaultedAmount: new(uint256.Int),
		TotalInterestPool:    new(uint256.Int),
		TotalLenderDeposits:  new(uint256.Int),
	}
}

// Clone returns a deep copy of the pool state.
func (p PoolState) Clone() PoolState {
	return PoolState{
		TotalPoolLiquidity:   cloneAmount(p.TotalPoolLiquidity),
		TotalActiveLoans:     cloneAmount(p.TotalActiveLoans),
		TotalDefaultedAmount: cloneAmount(p.TotalDefaultedAmount),
		TotalInterestPool:    cloneAmount(p.TotalInterestPool),
		TotalLenderDeposits:  cloneAmount(p.TotalLenderDeposits),
	}
}

// PoolStats is the read model returned by pool queries. LedgerID and Version
// identify the commit the snapshot was taken at; versions only grow within one
// ledger instance.
// swagger:model PoolStats
type PoolStats struct {
	LedgerID              string       `json:"ledger_id" example:"3f1c2a9e-7d4b-4c55-9e0a-1b2c3d4e5f60"`
	Version               uint64       `json:"version" example:"42"`
	TotalLiquidity        *uint256.Int `json:"total_liquidity" swaggertype:"string" example:"10000000000000000000000"`
	TotalActiveLoanAmount *uint256.Int `json:"total_active_loan_amount" swaggertype:"string" example:"0"`
	AvailableLiquidity    *uint256.Int `json:"available_liquidity" swaggertype:"string" example:"10000000000000000000000"`
	UtilizationRateBp     uint64       `json:"utilization_rate_bp"`
	InterestPool          *uint256.Int `json:"interest_pool" swaggertype:"string" example:"0"`
	TotalDefaulted        *uint256.Int `json:"total_defaulted" swaggertype:"string" example:"0"`
	TotalLenderDeposits   *uint256.Int `json:"total_lender_deposits" swaggertype:"string" example:"10000000000000000000000"`
}
