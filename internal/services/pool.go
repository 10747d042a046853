package services

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/sbilibin2017/gw-trust-lending/internal/models"
)

// Deposit moves amount from the lender into the pool and credits the lender's position.
func (s *LedgerService) Deposit(ctx context.Context, lender common.Address, amount *uint256.Int) (models.LenderView, error) {
	var view models.LenderView
	err := s.commit(ctx, models.EventDeposit, func(now time.Time) (*models.Event, error) {
		if s.paused {
			return nil, ErrPaused
		}
		if s.isCustody(lender) {
			return nil, ErrInvalidAddress
		}
		if amount == nil || amount.IsZero() {
			return nil, ErrInvalidAmount
		}
		if depositOverflows(amount, s.pool.TotalPoolLiquidity, s.pool.TotalLenderDeposits, s.lenderDepositLocked(lender)) {
			return nil, ErrInvalidAmount
		}

		if err := s.settle(s.settlement.TransferIn(ctx, lender, amount)); err != nil {
			return nil, err
		}

		info, ok := s.lenders[lender]
		if !ok {
			info = &models.LenderInfo{
				DepositedAmount:     new(uint256.Int),
				TotalInterestEarned: new(uint256.Int),
			}
			s.lenders[lender] = info
		}
		info.DepositedAmount.Add(info.DepositedAmount, amount)
		info.DepositTime = now
		info.LastClaimTime = now
		s.pool.TotalPoolLiquidity.Add(s.pool.TotalPoolLiquidity, amount)
		s.pool.TotalLenderDeposits.Add(s.pool.TotalLenderDeposits, amount)
		trackActivity(s.profileForWrite(lender), now)

		view = s.lenderViewLocked(lender)
		return newEvent(models.EventDeposit, now, lender, common.Address{}, amount, map[string]string{
			"deposited_amount": info.DepositedAmount.Dec(),
			"pool_liquidity":   s.pool.TotalPoolLiquidity.Dec(),
		}), nil
	})
	return view, err
}

// depositOverflows reports whether adding amount to any of the totals wraps.
func depositOverflows(amount *uint256.Int, totals ...*uint256.Int) bool {
	for _, total := range totals {
		if total == nil {
			continue
		}
		if _, overflow := new(uint256.Int).AddOverflow(total, amount); overflow {
			return true
		}
	}
	return false
}

func (s *LedgerService) lenderDepositLocked(lender common.Address) *uint256.Int {
	if info, ok := s.lenders[lender]; ok {
		return info.DepositedAmount
	}
	return nil
}

// Withdraw returns amount of the lender's deposit, limited by what is not lent out.
func (s *LedgerService) Withdraw(ctx context.Context, lender common.Address, amount *uint256.Int) (models.LenderView, error) {
	var view models.LenderView
	err := s.commit(ctx, models.EventWithdraw, func(now time.Time) (*models.Event, error) {
		if s.paused {
			return nil, ErrPaused
		}
		if s.isCustody(lender) {
			return nil, ErrInvalidAddress
		}
		if amount == nil || amount.IsZero() {
			return nil, ErrInvalidAmount
		}
		info := s.lenders[lender]
		if info == nil || info.DepositedAmount.Lt(amount) {
			return nil, ErrInsufficientBalance
		}
		if s.availableLiquidityLocked().Lt(amount) {
			return nil, ErrInsufficientLiquidity
		}

		if err := s.settle(s.settlement.Transfer(ctx, s.poolAddress, lender, amount)); err != nil {
			return nil, err
		}

		info.DepositedAmount.Sub(info.DepositedAmount, amount)
		s.pool.TotalPoolLiquidity.Sub(s.pool.TotalPoolLiquidity, amount)
		s.pool.TotalLenderDeposits.Sub(s.pool.TotalLenderDeposits, amount)
		trackActivity(s.profileForWrite(lender), now)

		view = s.lenderViewLocked(lender)
		return newEvent(models.EventWithdraw, now, lender, common.Address{}, amount, map[string]string{
			"deposited_amount": info.DepositedAmount.Dec(),
			"pool_liquidity":   s.pool.TotalPoolLiquidity.Dec(),
		}), nil
	})
	return view, err
}

// ClaimInterest pays the lender's proportional share of the interest pool as it
// stands at the time of the claim.
func (s *LedgerService) ClaimInterest(ctx context.Context, lender common.Address) (*uint256.Int, error) {
	var share *uint256.Int
	err := s.commit(ctx, models.EventInterestClaimed, func(now time.Time) (*models.Event, error) {
		if s.paused {
			return nil, ErrPaused
		}
		if s.isCustody(lender) {
			return nil, ErrInvalidAddress
		}
		info := s.lenders[lender]
		if info == nil || info.DepositedAmount.IsZero() {
			return nil, ErrNoInterestAvailable
		}
		owed := s.pendingInterestLocked(info)
		if owed.IsZero() {
			return nil, ErrNoInterestAvailable
		}

		if err := s.settle(s.settlement.Transfer(ctx, s.poolAddress, lender, owed)); err != nil {
			return nil, err
		}

		s.pool.TotalInterestPool.Sub(s.pool.TotalInterestPool, owed)
		info.TotalInterestEarned.Add(info.TotalInterestEarned, owed)
		info.LastClaimTime = now
		trackActivity(s.profileForWrite(lender), now)

		share = new(uint256.Int).Set(owed)
		return newEvent(models.EventInterestClaimed, now, lender, common.Address{}, owed, map[string]string{
			"total_interest_earned": info.TotalInterestEarned.Dec(),
			"interest_pool":         s.pool.TotalInterestPool.Dec(),
		}), nil
	})
	return share, err
}

// pendingInterestLocked is deposited*interestPool/lenderDeposits, 0 when any operand is 0.
func (s *LedgerService) pendingInterestLocked(info *models.LenderInfo) *uint256.Int {
	if info == nil || info.DepositedAmount.IsZero() || s.pool.TotalInterestPool.IsZero() || s.pool.TotalLenderDeposits.IsZero() {
		return new(uint256.Int)
	}
	share, overflow := new(uint256.Int).MulDivOverflow(info.DepositedAmount, s.pool.TotalInterestPool, s.pool.TotalLenderDeposits)
	if overflow {
		return new(uint256.Int)
	}
	return share
}
