package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/holiman/uint256"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-trust-lending/internal/logger"
	"github.com/sbilibin2017/gw-trust-lending/internal/metrics"
	"github.com/sbilibin2017/gw-trust-lending/internal/models"
)

// Settlement moves value between accounts. Each call either fully succeeds or
// fully fails before it returns.
type Settlement interface {
	Transfer(ctx context.Context, from, to common.Address, amount *uint256.Int) error // Moves amount from one account to another
	TransferIn(ctx context.Context, from common.Address, amount *uint256.Int) error   // Moves amount from an account into pool custody
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// PoolStatsCache is the read model the presentation layer reads pool stats from.
type PoolStatsCache interface {
	GetPoolStats(ctx context.Context) (*models.PoolStats, error)    // Returns the cached stats
	SetPoolStats(ctx context.Context, stats models.PoolStats) error // Stores stats unless a newer version of the same ledger is cached
}

var errNilSettlement = errors.New("ledger: settlement not configured")

type vouchKey struct {
	voucher common.Address
	vouchee common.Address
}

// LedgerService is the accounting and decision engine of the lending pool.
// Every mutating operation runs under a single write lock, so no operation can
// observe another one half applied.
type LedgerService struct {
	mu sync.RWMutex

	id      string
	version uint64 // bumped by every successful commit

	owner       common.Address
	poolAddress common.Address
	daoAddress  common.Address
	daoEnabled  bool
	paused      bool

	params   models.ParameterSet
	pool     models.PoolState
	profiles map[common.Address]*models.UserProfile
	loans    map[common.Address]*models.Loan
	lenders  map[common.Address]*models.LenderInfo
	vouches  map[vouchKey]struct{}

	settlement  Settlement
	kafkaWriter KafkaWriter
	statsCache  PoolStatsCache
	metrics     *metrics.LedgerMetrics
	clockNow    func() time.Time
	onPause     func(paused bool)

	// deliverMu orders in-process side effects by commit version.
	deliverMu      sync.Mutex
	delivered      uint64
	reportedPaused bool
}

// Option configures optional LedgerService collaborators.
type Option func(*LedgerService)

// WithClock replaces the wall clock.
func WithClock(now func() time.Time) Option {
	return func(s *LedgerService) {
		if now != nil {
			s.clockNow = now
		}
	}
}

// WithStatsCache wires the pool stats read model.
func WithStatsCache(cache PoolStatsCache) Option {
	return func(s *LedgerService) { s.statsCache = cache }
}

// WithMetrics wires prometheus collectors.
func WithMetrics(m *metrics.LedgerMetrics) Option {
	return func(s *LedgerService) { s.metrics = m }
}

// WithPauseHook registers a callback invoked, in commit order, whenever the
// pause state it last reported changes.
func WithPauseHook(fn func(paused bool)) Option {
	return func(s *LedgerService) { s.onPause = fn }
}

// NewLedgerService creates an empty ledger owned by owner whose funds are held
// in custody at poolAddress.
func NewLedgerService(
	owner common.Address,
	poolAddress common.Address,
	params models.ParameterSet,
	settlement Settlement,
	kafkaWriter KafkaWriter,
	opts ...Option,
) (*LedgerService, error) {
	if owner == (common.Address{}) || poolAddress == (common.Address{}) {
		return nil, ErrInvalidAddress
	}
	if settlement == nil {
		return nil, errNilSettlement
	}
	if err := ValidateParameters(params); err != nil {
		return nil, err
	}
	s := &LedgerService{
		id:          uuid.NewString(),
		owner:       owner,
		poolAddress: poolAddress,
		params:      params.Clone(),
		pool:        models.NewPoolState(),
		profiles:    make(map[common.Address]*models.UserProfile),
		loans:       make(map[common.Address]*models.Loan),
		lenders:     make(map[common.Address]*models.LenderInfo),
		vouches:     make(map[vouchKey]struct{}),
		settlement:  settlement,
		kafkaWriter: kafkaWriter,
		clockNow:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// commit runs fn under the write lock. A successful fn bumps the ledger version;
// the snapshot, pause state and event are stamped with it before the lock is
// released so the side effects that follow can be ordered.
func (s *LedgerService) commit(ctx context.Context, operation string, fn func(now time.Time) (*models.Event, error)) error {
	s.mu.Lock()
	now := s.clockNow()
	evt, err := fn(now)
	var (
		stats   models.PoolStats
		version uint64
		paused  bool
	)
	if err == nil {
		s.version++
		version = s.version
		stats = s.poolStatsLocked()
		paused = s.paused
		if evt != nil {
			evt.LedgerID = s.id
			evt.Sequence = version
		}
	}
	s.mu.Unlock()

	if err != nil {
		s.metrics.ObserveOperation(operation, CodeOf(err))
		if KindOf(err) == KindSettlement {
			logger.Log.Errorw("ledger settlement failed", "operation", operation, "error", err)
		} else {
			logger.Log.Warnw("ledger operation rejected", "operation", operation, "error", err)
		}
		return err
	}

	s.metrics.ObserveOperation(operation, "ok")
	s.deliver(version, stats, paused)
	if s.statsCache != nil {
		if err := s.statsCache.SetPoolStats(ctx, stats); err != nil {
			logger.Log.Errorw("failed to refresh pool stats cache", "version", version, "error", err)
		}
	}
	if evt != nil {
		s.publishEvent(ctx, *evt)
	}
	return nil
}

// deliver applies the in-process side effects of the commit at version.
// Commits reach this point in any order, so versions at or below the last
// delivered one are dropped.
func (s *LedgerService) deliver(version uint64, stats models.PoolStats, paused bool) {
	s.deliverMu.Lock()
	defer s.deliverMu.Unlock()
	if version <= s.delivered {
		return
	}
	s.delivered = version
	s.metrics.ObservePool(stats)
	if s.onPause != nil && paused != s.reportedPaused {
		s.reportedPaused = paused
		s.onPause(paused)
	}
}

func (s *LedgerService) settle(err error) error {
	if err == nil {
		return nil
	}
	return &settlementError{cause: err}
}

// profileForWrite returns the stored profile, creating it when missing.
// Only call it once every check of the operation has passed.
func (s *LedgerService) profileForWrite(user common.Address) *models.UserProfile {
	p, ok := s.profiles[user]
	if !ok {
		p = &models.UserProfile{}
		s.profiles[user] = p
	}
	return p
}

// isCustody reports whether addr is the pool custody account, which never acts
// as a lender, borrower or voucher.
func (s *LedgerService) isCustody(addr common.Address) bool {
	return addr == s.poolAddress
}

func trackActivity(p *models.UserProfile, now time.Time) {
	if p.WalletFirstSeen.IsZero() {
		p.WalletFirstSeen = now
	}
	p.TotalTransactions++
}

func (s *LedgerService) availableLiquidityLocked() *uint256.Int {
	if s.pool.TotalPoolLiquidity.Lt(s.pool.TotalActiveLoans) {
		return new(uint256.Int)
	}
	return new(uint256.Int).Sub(s.pool.TotalPoolLiquidity, s.pool.TotalActiveLoans)
}

func (s *LedgerService) poolStatsLocked() models.PoolStats {
	p := s.pool.Clone()
	return models.PoolStats{
		LedgerID:              s.id,
		Version:               s.version,
		TotalLiquidity:        p.TotalPoolLiquidity,
		TotalActiveLoanAmount: p.TotalActiveLoans,
		AvailableLiquidity:    s.availableLiquidityLocked(),
		UtilizationRateBp:     UtilizationBp(p.TotalActiveLoans, p.TotalPoolLiquidity),
		InterestPool:          p.TotalInterestPool,
		TotalDefaulted:        p.TotalDefaultedAmount,
		TotalLenderDeposits:   p.TotalLenderDeposits,
	}
}

// GetUserProfile returns the credit view of a user. Users without an assigned
// trust score report InitialTrustScore, the score a first loan request would use.
func (s *LedgerService) GetUserProfile(user common.Address) models.UserProfileView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.clockNow()
	p := s.profiles[user]
	trust := effectiveTrust(p)
	maturity := WalletMaturity(p, now)

	view := models.UserProfileView{
		TrustScore:        trust,
		WalletAgeSeconds:  int64(maturity.Age / time.Second),
		MaturityLevel:     maturity.Tier,
		MaxBorrowingLimit: BorrowingLimit(s.params, trust, maturity.Multiplier),
	}
	if p != nil {
		view.TotalLoansTaken = p.TotalLoansTaken
		view.SuccessfulRepayments = p.SuccessfulRepayments
		view.Defaults = p.Defaults
		view.HasActiveLoan = p.HasActiveLoan
		view.TotalTransactions = p.TotalTransactions
	}
	return view
}

// GetActiveLoan returns the borrower's loan slot. A borrower that never borrowed
// gets a zero view with status NONE.
func (s *LedgerService) GetActiveLoan(borrower common.Address) models.LoanView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return loanView(s.loans[borrower], s.clockNow())
}

func loanView(loan *models.Loan, now time.Time) models.LoanView {
	if loan == nil {
		return models.LoanView{
			Principal:      new(uint256.Int),
			InterestAmount: new(uint256.Int),
			TotalRepayment: new(uint256.Int),
			Status:         models.LoanStatusNone,
		}
	}
	c := loan.Clone()
	return models.LoanView{
		Principal:       c.Principal,
		InterestAmount:  c.InterestAmount,
		TotalRepayment:  c.TotalRepayment,
		StartTime:       c.StartTime.Unix(),
		DueDate:         c.DueDate.Unix(),
		DurationSeconds: int64(c.Duration / time.Second),
		Status:          c.Status,
		IsOverdue:       c.Status == models.LoanStatusActive && now.After(c.DueDate),
	}
}

// GetLenderInfo returns the lender's position and the interest a claim would pay now.
func (s *LedgerService) GetLenderInfo(lender common.Address) models.LenderView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lenderViewLocked(lender)
}

func (s *LedgerService) lenderViewLocked(lender common.Address) models.LenderView {
	info := s.lenders[lender]
	if info == nil {
		return models.LenderView{
			DepositedAmount:     new(uint256.Int),
			TotalInterestEarned: new(uint256.Int),
			PendingInterest:     new(uint256.Int),
		}
	}
	return models.LenderView{
		DepositedAmount:     new(uint256.Int).Set(info.DepositedAmount),
		TotalInterestEarned: new(uint256.Int).Set(info.TotalInterestEarned),
		PendingInterest:     s.pendingInterestLocked(info),
		DepositTime:         info.DepositTime.Unix(),
		LastClaimTime:       info.LastClaimTime.Unix(),
	}
}

// GetPoolStats returns a consistent snapshot of the pool aggregates.
func (s *LedgerService) GetPoolStats() models.PoolStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.poolStatsLocked()
}

// PoolStats serves the pool stats from the read model when it holds the current
// snapshot of this ledger. A missing, stale or foreign snapshot is replaced by
// the in-memory one.
func (s *LedgerService) PoolStats(ctx context.Context) (models.PoolStats, error) {
	current := s.GetPoolStats()
	if s.statsCache == nil {
		return current, nil
	}

	cached, err := s.statsCache.GetPoolStats(ctx)
	if err == nil && cached != nil && cached.LedgerID == current.LedgerID && cached.Version == current.Version {
		return *cached, nil
	}
	logger.Log.Debugw("pool stats read model behind", "version", current.Version, "error", err)

	if err := s.statsCache.SetPoolStats(ctx, current); err != nil {
		logger.Log.Errorw("failed to cache pool stats", "error", err)
	}
	return current, nil
}

// GetDAOInfo reports the governance configuration.
func (s *LedgerService) GetDAOInfo() models.DAOInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.DAOInfo{
		Owner:      s.owner,
		DAOAddress: s.daoAddress,
		DAOEnabled: s.daoEnabled,
		Paused:     s.paused,
	}
}

// GetConstants reports the design constants together with the live parameters.
func (s *LedgerService) GetConstants() models.Constants {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p := s.params.Clone()
	return models.Constants{
		MaxTrustScore:          models.MaxTrustScore,
		InitialTrustScore:      models.InitialTrustScore,
		TrustIncrease:          p.TrustIncrease,
		TrustDecrease:          p.TrustDecrease,
		BaseInterestRate:       p.BaseInterestRate,
		MaxInterestRate:        p.MaxInterestRate,
		MinLoanAmount:          p.MinLoanAmount,
		DefaultCooldownSeconds: int64(p.DefaultCooldown / time.Second),
		LowTrustLimit:          p.LowTrustLimit,
		MediumTrustLimit:       p.MediumTrustLimit,
		HighTrustLimit:         p.HighTrustLimit,
	}
}

// GetLoanDurationLimits reports the allowed loan term range.
func (s *LedgerService) GetLoanDurationLimits() models.LoanDurationLimits {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.LoanDurationLimits{
		MinSeconds: int64(s.params.MinLoanDuration / time.Second),
		MaxSeconds: int64(s.params.MaxLoanDuration / time.Second),
	}
}

// GetParameters returns a copy of the live parameter set.
func (s *LedgerService) GetParameters() models.ParameterSet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.params.Clone()
}

// IsPaused reports whether user-facing mutations are currently blocked.
func (s *LedgerService) IsPaused() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.paused
}
