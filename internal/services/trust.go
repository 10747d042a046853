package services

import (
	"time"

	"github.com/holiman/uint256"
	"github.com/sbilibin2017/gw-trust-lending/internal/models"
)

const (
	// BasisPoints is the denominator of every rate.
	BasisPoints uint64 = 10_000
	// SecondsPerYear is the fixed year length used for interest.
	SecondsPerYear uint64 = 31_536_000

	lowTrustRatePenalty    uint64 = 700
	mediumTrustRatePenalty uint64 = 300
	tier0RatePenalty       uint64 = 500
	tier1RatePenalty       uint64 = 200
	utilizationRateFactor  uint64 = 2

	repaymentStreakBonus     uint64 = 20
	repaymentStreakThreshold uint64 = 5
	repaymentVeteranBonus    uint64 = 10
	repaymentVeteranCount    uint64 = 10
	repeatDefaultPenalty     uint64 = 100
)

// Maturity is the wallet-age tier of a user.
type Maturity struct {
	Age        time.Duration
	Tier       uint8
	Multiplier uint64 // Percent applied to the trust-tier base limit
}

// WalletMaturity derives the maturity tier from the time elapsed since the
// user's first tracked activity.
func WalletMaturity(profile *models.UserProfile, now time.Time) Maturity {
	if profile == nil || profile.WalletFirstSeen.IsZero() {
		return Maturity{Tier: 0, Multiplier: 20}
	}
	age := now.Sub(profile.WalletFirstSeen)
	if age < 0 {
		age = 0
	}
	switch {
	case age >= models.MaturityTier3Age:
		return Maturity{Age: age, Tier: 3, Multiplier: 150}
	case age >= models.MaturityTier2Age:
		return Maturity{Age: age, Tier: 2, Multiplier: 100}
	case age >= models.MaturityTier1Age:
		return Maturity{Age: age, Tier: 1, Multiplier: 50}
	default:
		return Maturity{Age: age, Tier: 0, Multiplier: 20}
	}
}

// BorrowingLimit selects the base limit for the trust tier and scales it by the
// maturity multiplier, truncating.
func BorrowingLimit(params models.ParameterSet, trustScore, multiplier uint64) *uint256.Int {
	base := params.HighTrustLimit
	switch {
	case trustScore < models.LowTrustThreshold:
		base = params.LowTrustLimit
	case trustScore < models.MediumTrustThreshold:
		base = params.MediumTrustLimit
	}
	if base == nil {
		return new(uint256.Int)
	}
	limit, overflow := new(uint256.Int).MulDivOverflow(base, uint256.NewInt(multiplier), uint256.NewInt(100))
	if overflow {
		return new(uint256.Int).SetAllOne()
	}
	return limit
}

// InterestRate returns the annual rate in basis points for a borrower.
func InterestRate(params models.ParameterSet, trustScore uint64, tier uint8, utilizationPercent uint64) uint64 {
	rate := params.BaseInterestRate

	switch {
	case trustScore < models.LowTrustThreshold:
		rate += lowTrustRatePenalty
	case trustScore < models.MediumTrustThreshold:
		rate += mediumTrustRatePenalty
	}

	switch tier {
	case 0:
		rate += tier0RatePenalty
	case 1:
		rate += tier1RatePenalty
	}

	rate += utilizationPercent * utilizationRateFactor

	if rate > params.MaxInterestRate {
		rate = params.MaxInterestRate
	}
	return rate
}

// UtilizationPercent is active*100/liquidity, or 0 for an empty pool.
func UtilizationPercent(active, liquidity *uint256.Int) uint64 {
	return ratio(active, liquidity, 100)
}

// UtilizationBp is active*10000/liquidity, or 0 for an empty pool.
func UtilizationBp(active, liquidity *uint256.Int) uint64 {
	return ratio(active, liquidity, BasisPoints)
}

func ratio(num, den *uint256.Int, scale uint64) uint64 {
	if num == nil || den == nil || den.IsZero() {
		return 0
	}
	r, overflow := new(uint256.Int).MulDivOverflow(num, uint256.NewInt(scale), den)
	if overflow || !r.IsUint64() {
		return ^uint64(0)
	}
	return r.Uint64()
}

// LoanInterest is amount*rate*seconds / (BasisPoints*SecondsPerYear), truncating.
// A result above the uint256 range saturates at the maximum.
func LoanInterest(amount *uint256.Int, rateBp uint64, duration time.Duration) *uint256.Int {
	seconds := uint64(duration / time.Second)
	if amount == nil || rateBp == 0 || seconds == 0 {
		return new(uint256.Int)
	}
	num := new(uint256.Int).Mul(uint256.NewInt(rateBp), uint256.NewInt(seconds))
	den := uint256.NewInt(BasisPoints * SecondsPerYear)
	interest, overflow := new(uint256.Int).MulDivOverflow(amount, num, den)
	if overflow {
		return new(uint256.Int).SetAllOne()
	}
	return interest
}

// RepaymentScore returns the trust score after a repayment. successfulRepayments
// already includes the repayment being applied.
func RepaymentScore(params models.ParameterSet, score, successfulRepayments uint64) uint64 {
	increase := params.TrustIncrease
	if successfulRepayments >= repaymentStreakThreshold {
		increase += repaymentStreakBonus
	}
	if successfulRepayments >= repaymentVeteranCount {
		increase += repaymentVeteranBonus
	}
	if score+increase > models.MaxTrustScore {
		return models.MaxTrustScore
	}
	return score + increase
}

// DefaultScore returns the trust score after a default. defaults already
// includes the default being applied.
func DefaultScore(params models.ParameterSet, score, defaults uint64) uint64 {
	decrease := params.TrustDecrease
	if defaults > 1 {
		decrease += repeatDefaultPenalty
	}
	if score > decrease {
		return score - decrease
	}
	return models.InitialTrustScore / 2
}

// effectiveTrust is the score a borrower is judged by; users that never had a
// score assigned start from InitialTrustScore.
func effectiveTrust(p *models.UserProfile) uint64 {
	if p == nil || !p.TrustInitialized {
		return models.InitialTrustScore
	}
	return p.TrustScore
}
