package models

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// ParameterSet holds every governance-tunable constant of the ledger.
type ParameterSet struct {
	TrustIncrease    uint64        // Score added on each repayment
	TrustDecrease    uint64        // Score removed on each default
	BaseInterestRate uint64        // Base annual rate in basis points
	MaxInterestRate  uint64        // Upper clamp on the annual rate in basis points
	MinLoanAmount    *uint256.Int  // Smallest principal a borrower may request
	MinLoanDuration  time.Duration // Shortest allowed loan term
	MaxLoanDuration  time.Duration // Longest allowed loan term
	DefaultCooldown  time.Duration // Wait after a default before borrowing again
	LowTrustLimit    *uint256.Int  // Base limit for trust below LowTrustThreshold
	MediumTrustLimit *uint256.Int  // Base limit for trust below MediumTrustThreshold
	HighTrustLimit   *uint256.Int  // Base limit for every other trust score
}

// Clone returns a deep copy of the parameter set.
func (p ParameterSet) Clone() ParameterSet {
	c := p
	c.MinLoanAmount = cloneAmount(p.MinLoanAmount)
	c.LowTrustLimit = cloneAmount(p.LowTrustLimit)
	c.MediumTrustLimit = cloneAmount(p.MediumTrustLimit)
	c.HighTrustLimit = cloneAmount(p.HighTrustLimit)
	return c
}

// DAOInfo describes who may govern the ledger.
// swagger:model DAOInfo
type DAOInfo struct {
	Owner      common.Address `json:"owner" swaggertype:"string" example:"0x0000000000000000000000000000000000000001"`
	DAOAddress common.Address `json:"dao_address" swaggertype:"string" example:"0x0000000000000000000000000000000000000000"`
	DAOEnabled bool           `json:"dao_enabled"`
	Paused     bool           `json:"paused"`
}

// Constants reports the fixed design constants together with the current parameters.
// swagger:model Constants
type Constants struct {
	MaxTrustScore          uint64       `json:"max_trust_score"`
	InitialTrustScore      uint64       `json:"initial_trust_score"`
	TrustIncrease          uint64       `json:"trust_increase"`
	TrustDecrease          uint64       `json:"trust_decrease"`
	BaseInterestRate       uint64       `json:"base_interest_rate_bp"`
	MaxInterestRate        uint64       `json:"max_interest_rate_bp"`
	MinLoanAmount          *uint256.Int `json:"min_loan_amount" swaggertype:"string"`
	DefaultCooldownSeconds int64        `json:"default_cooldown_seconds"`
	LowTrustLimit          *uint256.Int `json:"low_trust_limit" swaggertype:"string"`
	MediumTrustLimit       *uint256.Int `json:"medium_trust_limit" swaggertype:"string"`
	HighTrustLimit         *uint256.Int `json:"high_trust_limit" swaggertype:"string"`
}

// LoanDurationLimits reports the allowed loan term range.
// swagger:model LoanDurationLimits
type LoanDurationLimits struct {
	MinSeconds int64 `json:"min_seconds"`
	MaxSeconds int64 `json:"max_seconds"`
}
