package models

import (
	"time"

	"github.com/holiman/uint256"
)

// Trust score and wallet maturity design constants.
const (
	MaxTrustScore     uint64 = 1000
	InitialTrustScore uint64 = 100

	LowTrustThreshold    uint64 = 300
	MediumTrustThreshold uint64 = 600

	MaturityTier1Age = 7 * 24 * time.Hour
	MaturityTier2Age = 30 * 24 * time.Hour
	MaturityTier3Age = 90 * 24 * time.Hour

	VouchMinTrustScore uint64 = 500
	VouchMinRepayments uint64 = 2
	VouchNewUserBonus  uint64 = 50
	VouchLowTrustBoost uint64 = 30
)

// UserProfile is the per-address credit record kept by the ledger.
type UserProfile struct {
	TrustScore           uint64    // Current trust score, bounded by MaxTrustScore
	TrustInitialized     bool      // Whether a trust score has ever been assigned
	TotalLoansTaken      uint64    // Number of loans issued to the user
	SuccessfulRepayments uint64    // Number of loans repaid in full
	Defaults             uint64    // Number of loans marked as defaulted
	HasActiveLoan        bool      // Whether the user currently owes an ACTIVE loan
	LastDefaultTime      time.Time // Zero when the user never defaulted
	WalletFirstSeen      time.Time // Zero until the first tracked activity
	TotalTransactions    uint64    // Number of tracked state-changing calls
}

// UserProfileView is the read model returned by profile queries.
// swagger:model UserProfileView
type UserProfileView struct {
	TrustScore           uint64       `json:"trust_score"`
	TotalLoansTaken      uint64       `json:"total_loans_taken"`
	SuccessfulRepayments uint64       `json:"successful_repayments"`
	Defaults             uint64       `json:"defaults"`
	HasActiveLoan        bool         `json:"has_active_loan"`
	WalletAgeSeconds     int64        `json:"wallet_age_seconds"`
	MaturityLevel        uint8        `json:"maturity_level"`
	MaxBorrowingLimit    *uint256.Int `json:"max_borrowing_limit" swaggertype:"string" example:"500000000000000000"`
	TotalTransactions    uint64       `json:"total_transactions"`
}
