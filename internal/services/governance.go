package services

import (
	"context"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/sbilibin2017/gw-trust-lending/internal/logger"
	"github.com/sbilibin2017/gw-trust-lending/internal/models"
)

// Governance bounds.
const (
	MaxTrustIncrease     uint64 = 100
	MaxTrustDecrease     uint64 = 500
	MaxInterestRateBound uint64 = 5000

	MinLoanDurationBound = 24 * time.Hour
	MaxLoanDurationBound = 365 * 24 * time.Hour
	MinCooldownBound     = 7 * 24 * time.Hour
	MaxCooldownBound     = 180 * 24 * time.Hour
)

// DefaultParameters returns the parameter set a fresh ledger starts with.
func DefaultParameters() models.ParameterSet {
	return models.ParameterSet{
		TrustIncrease:    50,
		TrustDecrease:    100,
		BaseInterestRate: 500,
		MaxInterestRate:  3000,
		MinLoanAmount:    uint256.NewInt(10_000_000_000_000_000),
		MinLoanDuration:  24 * time.Hour,
		MaxLoanDuration:  90 * 24 * time.Hour,
		DefaultCooldown:  30 * 24 * time.Hour,
		LowTrustLimit:    uint256.NewInt(500_000_000_000_000_000),
		MediumTrustLimit: uint256.NewInt(2_000_000_000_000_000_000),
		HighTrustLimit:   uint256.NewInt(5_000_000_000_000_000_000),
	}
}

// ValidateParameters checks a whole parameter set against the governance bounds.
func ValidateParameters(p models.ParameterSet) error {
	if err := validateTrustParameters(p.TrustIncrease, p.TrustDecrease); err != nil {
		return err
	}
	if err := validateInterestRates(p.BaseInterestRate, p.MaxInterestRate); err != nil {
		return err
	}
	if err := validateBorrowingLimits(p.LowTrustLimit, p.MediumTrustLimit, p.HighTrustLimit); err != nil {
		return err
	}
	if err := validateDurationLimits(p.MinLoanDuration, p.MaxLoanDuration); err != nil {
		return err
	}
	if err := validateCooldown(p.DefaultCooldown); err != nil {
		return err
	}
	if p.MinLoanAmount == nil || p.MinLoanAmount.IsZero() {
		return ErrInvalidParameter
	}
	return nil
}

func validateTrustParameters(increase, decrease uint64) error {
	if increase == 0 || increase > MaxTrustIncrease || decrease == 0 || decrease > MaxTrustDecrease {
		return ErrInvalidParameter
	}
	return nil
}

func validateInterestRates(base, maxRate uint64) error {
	if base >= maxRate || maxRate > MaxInterestRateBound {
		return ErrInvalidParameter
	}
	return nil
}

func validateBorrowingLimits(low, medium, high *uint256.Int) error {
	if low == nil || medium == nil || high == nil || low.IsZero() {
		return ErrInvalidParameter
	}
	if !low.Lt(medium) || !medium.Lt(high) {
		return ErrInvalidParameter
	}
	return nil
}

func validateDurationLimits(minDur, maxDur time.Duration) error {
	if minDur < MinLoanDurationBound || minDur > maxDur || maxDur > MaxLoanDurationBound {
		return ErrInvalidDuration
	}
	return nil
}

func validateCooldown(period time.Duration) error {
	if period < MinCooldownBound || period > MaxCooldownBound {
		return ErrInvalidParameter
	}
	return nil
}

// authorizeLocked allows the owner, and the DAO authority once it is enabled.
func (s *LedgerService) authorizeLocked(caller common.Address) error {
	if caller == s.owner {
		return nil
	}
	if s.daoEnabled && caller == s.daoAddress {
		return nil
	}
	return ErrUnauthorized
}

// EnableDAO hands governance to authority. It can happen once and the owner
// keeps its own governance rights afterwards.
func (s *LedgerService) EnableDAO(ctx context.Context, caller, authority common.Address) error {
	return s.commit(ctx, models.EventDAOEnabled, func(now time.Time) (*models.Event, error) {
		if caller != s.owner {
			return nil, ErrUnauthorized
		}
		if s.daoEnabled {
			return nil, ErrDAOAlreadyEnabled
		}
		if authority == (common.Address{}) {
			return nil, ErrInvalidAddress
		}
		s.daoAddress = authority
		s.daoEnabled = true
		logger.Log.Infow("governance handed to DAO", "owner", s.owner.Hex(), "dao", authority.Hex())
		return newEvent(models.EventDAOEnabled, now, authority, caller, nil, nil), nil
	})
}

// paramChange records one parameter transition for logs and events.
type paramChange struct {
	name          string
	before, after string
}

func (s *LedgerService) updateParameters(ctx context.Context, caller common.Address, group string, fn func() ([]paramChange, error)) error {
	return s.commit(ctx, models.EventParameterUpdated, func(now time.Time) (*models.Event, error) {
		if err := s.authorizeLocked(caller); err != nil {
			return nil, err
		}
		changes, err := fn()
		if err != nil {
			return nil, err
		}
		attrs := map[string]string{"group": group}
		for _, c := range changes {
			attrs[c.name+".old"] = c.before
			attrs[c.name+".new"] = c.after
			logger.Log.Infow("parameter updated", "parameter", c.name, "old", c.before, "new", c.after, "caller", caller.Hex())
		}
		return newEvent(models.EventParameterUpdated, now, caller, common.Address{}, nil, attrs), nil
	})
}

func uintChange(name string, before, after uint64) paramChange {
	return paramChange{name: name, before: strconv.FormatUint(before, 10), after: strconv.FormatUint(after, 10)}
}

func amountChange(name string, before, after *uint256.Int) paramChange {
	return paramChange{name: name, before: before.Dec(), after: after.Dec()}
}

func durationChange(name string, before, after time.Duration) paramChange {
	return paramChange{
		name:   name,
		before: strconv.FormatInt(int64(before/time.Second), 10),
		after:  strconv.FormatInt(int64(after/time.Second), 10),
	}
}

// UpdateTrustParameters sets the per-repayment increase and per-default decrease.
func (s *LedgerService) UpdateTrustParameters(ctx context.Context, caller common.Address, increase, decrease uint64) error {
	return s.updateParameters(ctx, caller, "trust", func() ([]paramChange, error) {
		if err := validateTrustParameters(increase, decrease); err != nil {
			return nil, err
		}
		changes := []paramChange{
			uintChange("trust_increase", s.params.TrustIncrease, increase),
			uintChange("trust_decrease", s.params.TrustDecrease, decrease),
		}
		s.params.TrustIncrease = increase
		s.params.TrustDecrease = decrease
		return changes, nil
	})
}

// UpdateInterestRates sets the base and maximum annual rates in basis points.
func (s *LedgerService) UpdateInterestRates(ctx context.Context, caller common.Address, base, maxRate uint64) error {
	return s.updateParameters(ctx, caller, "interest_rates", func() ([]paramChange, error) {
		if err := validateInterestRates(base, maxRate); err != nil {
			return nil, err
		}
		changes := []paramChange{
			uintChange("base_interest_rate", s.params.BaseInterestRate, base),
			uintChange("max_interest_rate", s.params.MaxInterestRate, maxRate),
		}
		s.params.BaseInterestRate = base
		s.params.MaxInterestRate = maxRate
		return changes, nil
	})
}

// UpdateBorrowingLimits sets the three trust-tier base limits.
func (s *LedgerService) UpdateBorrowingLimits(ctx context.Context, caller common.Address, low, medium, high *uint256.Int) error {
	return s.updateParameters(ctx, caller, "borrowing_limits", func() ([]paramChange, error) {
		if err := validateBorrowingLimits(low, medium, high); err != nil {
			return nil, err
		}
		changes := []paramChange{
			amountChange("low_trust_limit", s.params.LowTrustLimit, low),
			amountChange("medium_trust_limit", s.params.MediumTrustLimit, medium),
			amountChange("high_trust_limit", s.params.HighTrustLimit, high),
		}
		s.params.LowTrustLimit = new(uint256.Int).Set(low)
		s.params.MediumTrustLimit = new(uint256.Int).Set(medium)
		s.params.HighTrustLimit = new(uint256.Int).Set(high)
		return changes, nil
	})
}

// UpdateLoanDurationLimits sets the allowed loan term range.
func (s *LedgerService) UpdateLoanDurationLimits(ctx context.Context, caller common.Address, minDur, maxDur time.Duration) error {
	return s.updateParameters(ctx, caller, "loan_duration", func() ([]paramChange, error) {
		if err := validateDurationLimits(minDur, maxDur); err != nil {
			return nil, err
		}
		changes := []paramChange{
			durationChange("min_loan_duration", s.params.MinLoanDuration, minDur),
			durationChange("max_loan_duration", s.params.MaxLoanDuration, maxDur),
		}
		s.params.MinLoanDuration = minDur
		s.params.MaxLoanDuration = maxDur
		return changes, nil
	})
}

// UpdateDefaultCooldown sets the wait after a default before borrowing again.
func (s *LedgerService) UpdateDefaultCooldown(ctx context.Context, caller common.Address, period time.Duration) error {
	return s.updateParameters(ctx, caller, "default_cooldown", func() ([]paramChange, error) {
		if err := validateCooldown(period); err != nil {
			return nil, err
		}
		changes := []paramChange{durationChange("default_cooldown", s.params.DefaultCooldown, period)}
		s.params.DefaultCooldown = period
		return changes, nil
	})
}

// UpdateMinLoanAmount sets the smallest principal a borrower may request.
func (s *LedgerService) UpdateMinLoanAmount(ctx context.Context, caller common.Address, amount *uint256.Int) error {
	return s.updateParameters(ctx, caller, "min_loan_amount", func() ([]paramChange, error) {
		if amount == nil || amount.IsZero() {
			return nil, ErrInvalidParameter
		}
		changes := []paramChange{amountChange("min_loan_amount", s.params.MinLoanAmount, amount)}
		s.params.MinLoanAmount = new(uint256.Int).Set(amount)
		return changes, nil
	})
}

// Pause blocks deposits, withdrawals, claims, loan requests and repayments.
// Only the owner may pause.
func (s *LedgerService) Pause(ctx context.Context, caller common.Address) error {
	return s.setPaused(ctx, caller, true)
}

// Unpause lifts the pause. Only the owner may unpause.
func (s *LedgerService) Unpause(ctx context.Context, caller common.Address) error {
	return s.setPaused(ctx, caller, false)
}

func (s *LedgerService) setPaused(ctx context.Context, caller common.Address, paused bool) error {
	kind := models.EventUnpaused
	if paused {
		kind = models.EventPaused
	}
	return s.commit(ctx, kind, func(now time.Time) (*models.Event, error) {
		if caller != s.owner {
			return nil, ErrUnauthorized
		}
		if s.paused == paused {
			if paused {
				return nil, ErrPaused
			}
			return nil, ErrNotPaused
		}
		s.paused = paused
		return newEvent(kind, now, caller, common.Address{}, nil, nil), nil
	})
}
