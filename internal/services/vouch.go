package services

import (
	"context"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/sbilibin2017/gw-trust-lending/internal/models"
)

// VouchForUser lets an established user raise another user's trust once.
func (s *LedgerService) VouchForUser(ctx context.Context, voucher, vouchee common.Address) error {
	return s.commit(ctx, models.EventVouched, func(now time.Time) (*models.Event, error) {
		if vouchee == (common.Address{}) || s.isCustody(voucher) || s.isCustody(vouchee) {
			return nil, ErrInvalidAddress
		}
		if voucher == vouchee {
			return nil, ErrCannotVouchSelf
		}
		vp := s.profiles[voucher]
		if vp == nil || vp.TrustScore < models.VouchMinTrustScore {
			return nil, ErrInsufficientTrust
		}
		if vp.SuccessfulRepayments < models.VouchMinRepayments {
			return nil, ErrInsufficientHistory
		}
		key := vouchKey{voucher: voucher, vouchee: vouchee}
		if _, ok := s.vouches[key]; ok {
			return nil, ErrAlreadyVouched
		}

		s.vouches[key] = struct{}{}
		target := s.profileForWrite(vouchee)
		switch {
		case !target.TrustInitialized:
			target.TrustScore = models.InitialTrustScore + models.VouchNewUserBonus
			target.TrustInitialized = true
		case target.TrustScore < models.LowTrustThreshold:
			target.TrustScore += models.VouchLowTrustBoost
		}
		trackActivity(vp, now)

		return newEvent(models.EventVouched, now, vouchee, voucher, nil, map[string]string{
			"trust_score": strconv.FormatUint(target.TrustScore, 10),
		}), nil
	})
}

// HasVouched reports whether voucher already vouched for vouchee.
func (s *LedgerService) HasVouched(voucher, vouchee common.Address) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.vouches[vouchKey{voucher: voucher, vouchee: vouchee}]
	return ok
}
