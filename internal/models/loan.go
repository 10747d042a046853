package models

import (
	"time"

	"github.com/holiman/uint256"
)

// LoanStatus is the lifecycle state of a borrower's loan slot.
type LoanStatus uint8

const (
	LoanStatusNone LoanStatus = iota
	LoanStatusActive
	LoanStatusRepaid
	LoanStatusDefaulted
)

// String returns the wire name of the status.
func (s LoanStatus) String() string {
	switch s {
	case LoanStatusActive:
		return "ACTIVE"
	case LoanStatusRepaid:
		return "REPAID"
	case LoanStatusDefaulted:
		return "DEFAULTED"
	default:
		return "NONE"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s LoanStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Loan is the single loan slot kept for each borrower.
type Loan struct {
	Principal      *uint256.Int
	InterestAmount *uint256.Int
	TotalRepayment *uint256.Int
	StartTime      time.Time
	DueDate        time.Time
	Duration       time.Duration
	Status         LoanStatus
}

// Clone returns a deep copy of the loan.
func (l *Loan) Clone() *Loan {
	if l == nil {
		return nil
	}
	c := *l
	c.Principal = cloneAmount(l.Principal)
	c.InterestAmount = cloneAmount(l.InterestAmount)
	c.TotalRepayment = cloneAmount(l.TotalRepayment)
	return &c
}

// LoanView is the read model returned by loan queries and loan operations.
// swagger:model LoanView
type LoanView struct {
	Principal       *uint256.Int `json:"principal" swaggertype:"string" example:"100000000000000000"`
	InterestAmount  *uint256.Int `json:"interest_amount" swaggertype:"string" example:"986301369863013"`
	TotalRepayment  *uint256.Int `json:"total_repayment" swaggertype:"string" example:"100986301369863013"`
	StartTime       int64        `json:"start_time"`
	DueDate         int64        `json:"due_date"`
	DurationSeconds int64        `json:"duration_seconds"`
	Status          LoanStatus   `json:"status" swaggertype:"string" example:"ACTIVE"`
	IsOverdue       bool         `json:"is_overdue"`
}

func cloneAmount(v *uint256.Int) *uint256.Int {
	if v == nil {
		return new(uint256.Int)
	}
	return new(uint256.Int).Set(v)
}
