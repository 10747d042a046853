package models

import (
	"time"

	"github.com/holiman/uint256"
)

// LenderInfo tracks a single lender's position in the pool.
type LenderInfo struct {
	DepositedAmount     *uint256.Int
	DepositTime         time.Time
	TotalInterestEarned *uint256.Int
	LastClaimTime       time.Time
}

// LenderView is the read model returned by lender queries.
// swagger:model LenderView
type LenderView struct {
	DepositedAmount     *uint256.Int `json:"deposited_amount" swaggertype:"string" example:"1000000000000000000"`
	TotalInterestEarned *uint256.Int `json:"total_interest_earned" swaggertype:"string" example:"0"`
	PendingInterest     *uint256.Int `json:"pending_interest" swaggertype:"string" example:"0"`
	DepositTime         int64        `json:"deposit_time"`
	LastClaimTime       int64        `json:"last_claim_time"`
}
