package services

import (
	"context"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/sbilibin2017/gw-trust-lending/internal/models"
)

// RequestLoan issues an unsecured loan sized and priced from the borrower's
// trust score, wallet maturity and current pool utilization.
func (s *LedgerService) RequestLoan(ctx context.Context, borrower common.Address, amount *uint256.Int, duration time.Duration) (models.LoanView, error) {
	var view models.LoanView
	err := s.commit(ctx, models.EventLoanIssued, func(now time.Time) (*models.Event, error) {
		if s.paused {
			return nil, ErrPaused
		}
		if s.isCustody(borrower) {
			return nil, ErrInvalidAddress
		}
		if loan := s.loans[borrower]; loan != nil && loan.Status == models.LoanStatusActive {
			return nil, ErrActiveLoanExists
		}
		if amount == nil || amount.Lt(s.params.MinLoanAmount) {
			return nil, ErrAmountBelowMinimum
		}
		if duration < s.params.MinLoanDuration || duration > s.params.MaxLoanDuration {
			return nil, ErrInvalidDuration
		}

		profile := s.profiles[borrower]
		if profile != nil && profile.Defaults > 0 && !now.After(profile.LastDefaultTime.Add(s.params.DefaultCooldown)) {
			return nil, ErrCooldownActive
		}

		trust := effectiveTrust(profile)
		maturity := WalletMaturity(profile, now)
		if BorrowingLimit(s.params, trust, maturity.Multiplier).Lt(amount) {
			return nil, ErrExceedsLimit
		}
		if s.availableLiquidityLocked().Lt(amount) {
			return nil, ErrInsufficientLiquidity
		}

		rate := InterestRate(s.params, trust, maturity.Tier, UtilizationPercent(s.pool.TotalActiveLoans, s.pool.TotalPoolLiquidity))
		interest := LoanInterest(amount, rate, duration)

		if err := s.settle(s.settlement.Transfer(ctx, s.poolAddress, borrower, amount)); err != nil {
			return nil, err
		}

		loan := &models.Loan{
			Principal:      new(uint256.Int).Set(amount),
			InterestAmount: interest,
			TotalRepayment: new(uint256.Int).Add(amount, interest),
			StartTime:      now,
			DueDate:        now.Add(duration),
			Duration:       duration,
			Status:         models.LoanStatusActive,
		}
		s.loans[borrower] = loan

		p := s.profileForWrite(borrower)
		if !p.TrustInitialized {
			p.TrustScore = trust
			p.TrustInitialized = true
		}
		p.HasActiveLoan = true
		p.TotalLoansTaken++
		trackActivity(p, now)
		s.pool.TotalActiveLoans.Add(s.pool.TotalActiveLoans, amount)

		view = loanView(loan, now)
		return newEvent(models.EventLoanIssued, now, borrower, common.Address{}, amount, map[string]string{
			"interest_rate_bp": strconv.FormatUint(rate, 10),
			"interest_amount":  interest.Dec(),
			"total_repayment":  loan.TotalRepayment.Dec(),
			"due_date":         strconv.FormatInt(loan.DueDate.Unix(), 10),
			"trust_score":      strconv.FormatUint(p.TrustScore, 10),
			"maturity_level":   strconv.Itoa(int(maturity.Tier)),
		}), nil
	})
	return view, err
}

// RepayLoan settles the borrower's active loan in full.
func (s *LedgerService) RepayLoan(ctx context.Context, borrower common.Address) (models.LoanView, error) {
	var view models.LoanView
	err := s.commit(ctx, models.EventLoanRepaid, func(now time.Time) (*models.Event, error) {
		if s.paused {
			return nil, ErrPaused
		}
		if s.isCustody(borrower) {
			return nil, ErrInvalidAddress
		}
		loan := s.loans[borrower]
		if loan == nil {
			return nil, ErrNoActiveLoan
		}
		if loan.Status != models.LoanStatusActive {
			return nil, ErrLoanNotActive
		}

		if err := s.settle(s.settlement.TransferIn(ctx, borrower, loan.TotalRepayment)); err != nil {
			return nil, err
		}

		loan.Status = models.LoanStatusRepaid
		p := s.profileForWrite(borrower)
		p.HasActiveLoan = false
		p.SuccessfulRepayments++
		p.TrustScore = RepaymentScore(s.params, p.TrustScore, p.SuccessfulRepayments)
		trackActivity(p, now)
		s.pool.TotalActiveLoans.Sub(s.pool.TotalActiveLoans, loan.Principal)
		s.pool.TotalInterestPool.Add(s.pool.TotalInterestPool, loan.InterestAmount)

		view = loanView(loan, now)
		return newEvent(models.EventLoanRepaid, now, borrower, common.Address{}, loan.TotalRepayment, map[string]string{
			"principal":       loan.Principal.Dec(),
			"interest_amount": loan.InterestAmount.Dec(),
			"trust_score":     strconv.FormatUint(p.TrustScore, 10),
			"interest_pool":   s.pool.TotalInterestPool.Dec(),
		}), nil
	})
	return view, err
}

// MarkDefault closes an overdue loan as defaulted. Anyone may call it and it is
// not blocked by the pause flag; the pool absorbs the lost principal.
func (s *LedgerService) MarkDefault(ctx context.Context, caller, borrower common.Address) (models.LoanView, error) {
	var view models.LoanView
	err := s.commit(ctx, models.EventLoanDefaulted, func(now time.Time) (*models.Event, error) {
		loan := s.loans[borrower]
		if loan == nil {
			return nil, ErrNoActiveLoan
		}
		if loan.Status != models.LoanStatusActive {
			return nil, ErrLoanNotActive
		}
		if !now.After(loan.DueDate) {
			return nil, ErrNotOverdue
		}

		loan.Status = models.LoanStatusDefaulted
		p := s.profileForWrite(borrower)
		p.HasActiveLoan = false
		p.Defaults++
		p.LastDefaultTime = now
		p.TrustScore = DefaultScore(s.params, p.TrustScore, p.Defaults)
		s.pool.TotalActiveLoans.Sub(s.pool.TotalActiveLoans, loan.Principal)
		s.pool.TotalPoolLiquidity.Sub(s.pool.TotalPoolLiquidity, loan.Principal)
		s.pool.TotalDefaultedAmount.Add(s.pool.TotalDefaultedAmount, loan.Principal)

		view = loanView(loan, now)
		return newEvent(models.EventLoanDefaulted, now, borrower, caller, loan.Principal, map[string]string{
			"defaults":        strconv.FormatUint(p.Defaults, 10),
			"trust_score":     strconv.FormatUint(p.TrustScore, 10),
			"pool_liquidity":  s.pool.TotalPoolLiquidity.Dec(),
			"total_defaulted": s.pool.TotalDefaultedAmount.Dec(),
		}), nil
	})
	return view, err
}
