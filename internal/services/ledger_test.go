package services_test

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-trust-lending/internal/models"
	"github.com/sbilibin2017/gw-trust-lending/internal/services"
)

const day = 24 * time.Hour

var (
	ownerAddr    = common.HexToAddress("0x1000000000000000000000000000000000000001")
	poolAddr     = common.HexToAddress("0x2000000000000000000000000000000000000002")
	lenderAddr   = common.HexToAddress("0x3000000000000000000000000000000000000003")
	borrowerAddr = common.HexToAddress("0x4000000000000000000000000000000000000004")
	otherAddr    = common.HexToAddress("0x5000000000000000000000000000000000000005")
	daoAddr      = common.HexToAddress("0x6000000000000000000000000000000000000006")

	genesis = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func amount(v string) *uint256.Int {
	return uint256.MustFromDecimal(v)
}

func acceptingSettlement(ctrl *gomock.Controller) *services.MockSettlement {
	s := services.NewMockSettlement(ctrl)
	s.EXPECT().Transfer(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.EXPECT().TransferIn(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	return s
}

func newTestLedger(t *testing.T, settlement services.Settlement, opts ...services.Option) (*services.LedgerService, *testClock) {
	t.Helper()
	clock := &testClock{now: genesis}
	opts = append([]services.Option{services.WithClock(clock.Now)}, opts...)
	svc, err := services.NewLedgerService(ownerAddr, poolAddr, services.DefaultParameters(), settlement, nil, opts...)
	require.NoError(t, err)
	return svc, clock
}

func TestNewLedgerService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	settlement := services.NewMockSettlement(ctrl)
	badParams := services.DefaultParameters()
	badParams.TrustIncrease = 0

	tests := []struct {
		name       string
		owner      common.Address
		pool       common.Address
		params     models.ParameterSet
		settlement services.Settlement
		wantErr    error
	}{
		{
			name:       "ok",
			owner:      ownerAddr,
			pool:       poolAddr,
			params:     services.DefaultParameters(),
			settlement: settlement,
		},
		{
			name:       "zero owner",
			pool:       poolAddr,
			params:     services.DefaultParameters(),
			settlement: settlement,
			wantErr:    services.ErrInvalidAddress,
		},
		{
			name:       "zero pool",
			owner:      ownerAddr,
			params:     services.DefaultParameters(),
			settlement: settlement,
			wantErr:    services.ErrInvalidAddress,
		},
		{
			name:       "invalid parameters",
			owner:      ownerAddr,
			pool:       poolAddr,
			params:     badParams,
			settlement: settlement,
			wantErr:    services.ErrInvalidParameter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := services.NewLedgerService(tt.owner, tt.pool, tt.params, tt.settlement, nil)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, svc)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, svc)
			}
		})
	}

	t.Run("nil settlement", func(t *testing.T) {
		svc, err := services.NewLedgerService(ownerAddr, poolAddr, services.DefaultParameters(), nil, nil)
		assert.Error(t, err)
		assert.Nil(t, svc)
	})
}

func TestLedgerService_QueriesOnEmptyLedger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestLedger(t, services.NewMockSettlement(ctrl))

	profile := svc.GetUserProfile(borrowerAddr)
	assert.Equal(t, models.InitialTrustScore, profile.TrustScore)
	assert.Equal(t, uint8(0), profile.MaturityLevel)
	assert.Equal(t, int64(0), profile.WalletAgeSeconds)
	assert.Equal(t, amount("100000000000000000"), profile.MaxBorrowingLimit)
	assert.False(t, profile.HasActiveLoan)

	loan := svc.GetActiveLoan(borrowerAddr)
	assert.Equal(t, models.LoanStatusNone, loan.Status)
	assert.True(t, loan.Principal.IsZero())

	lender := svc.GetLenderInfo(lenderAddr)
	assert.True(t, lender.DepositedAmount.IsZero())
	assert.True(t, lender.PendingInterest.IsZero())

	stats := svc.GetPoolStats()
	assert.True(t, stats.TotalLiquidity.IsZero())
	assert.True(t, stats.AvailableLiquidity.IsZero())
	assert.Equal(t, uint64(0), stats.UtilizationRateBp)

	dao := svc.GetDAOInfo()
	assert.Equal(t, ownerAddr, dao.Owner)
	assert.False(t, dao.DAOEnabled)
	assert.False(t, dao.Paused)

	constants := svc.GetConstants()
	assert.Equal(t, models.MaxTrustScore, constants.MaxTrustScore)
	assert.Equal(t, uint64(50), constants.TrustIncrease)
	assert.Equal(t, int64(30*86400), constants.DefaultCooldownSeconds)

	limits := svc.GetLoanDurationLimits()
	assert.Equal(t, int64(86400), limits.MinSeconds)
	assert.Equal(t, int64(90*86400), limits.MaxSeconds)

	assert.False(t, svc.IsPaused())
	assert.False(t, svc.HasVouched(lenderAddr, borrowerAddr))
}

// lastWriterCache is a read model without any ordering of its own: the last
// Set wins. beforeSet runs outside the lock.
type lastWriterCache struct {
	mu        sync.Mutex
	stats     *models.PoolStats
	beforeSet func(models.PoolStats)
}

func (c *lastWriterCache) GetPoolStats(context.Context) (*models.PoolStats, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stats == nil {
		return nil, errors.New("cache miss")
	}
	cp := *c.stats
	return &cp, nil
}

func (c *lastWriterCache) SetPoolStats(_ context.Context, stats models.PoolStats) error {
	if c.beforeSet != nil {
		c.beforeSet(stats)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats = &stats
	return nil
}

func TestLedgerService_PoolStats(t *testing.T) {
	ctx := context.Background()

	t.Run("current snapshot served from cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cache := services.NewMockPoolStatsCache(ctrl)
		svc, _ := newTestLedger(t, services.NewMockSettlement(ctrl), services.WithStatsCache(cache))

		cached := svc.GetPoolStats()
		cache.EXPECT().GetPoolStats(ctx).Return(&cached, nil)

		stats, err := svc.PoolStats(ctx)
		assert.NoError(t, err)
		assert.Equal(t, cached, stats)
	})

	t.Run("cache miss falls back to snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cache := services.NewMockPoolStatsCache(ctrl)
		svc, _ := newTestLedger(t, services.NewMockSettlement(ctrl), services.WithStatsCache(cache))

		cache.EXPECT().GetPoolStats(ctx).Return(nil, errors.New("cache miss"))
		cache.EXPECT().SetPoolStats(ctx, gomock.Any()).Return(errors.New("redis down"))

		stats, err := svc.PoolStats(ctx)
		assert.NoError(t, err)
		assert.True(t, stats.TotalLiquidity.IsZero())
	})

	t.Run("stale version is refreshed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cache := services.NewMockPoolStatsCache(ctrl)
		svc, _ := newTestLedger(t, acceptingSettlement(ctrl), services.WithStatsCache(cache))

		stale := svc.GetPoolStats()
		cache.EXPECT().SetPoolStats(ctx, gomock.Any()).Return(nil)
		_, err := svc.Deposit(ctx, lenderAddr, amount("1000"))
		require.NoError(t, err)

		cache.EXPECT().GetPoolStats(ctx).Return(&stale, nil)
		cache.EXPECT().SetPoolStats(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, stats models.PoolStats) error {
			assert.Equal(t, uint64(1), stats.Version)
			assert.Equal(t, amount("1000"), stats.TotalLiquidity)
			return nil
		})

		stats, err := svc.PoolStats(ctx)
		assert.NoError(t, err)
		assert.Equal(t, amount("1000"), stats.TotalLiquidity)
	})

	t.Run("snapshot of a previous process is ignored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cache := services.NewMockPoolStatsCache(ctrl)
		svc, _ := newTestLedger(t, services.NewMockSettlement(ctrl), services.WithStatsCache(cache))

		previous := &models.PoolStats{LedgerID: "previous-process", Version: 0, TotalLiquidity: amount("42")}
		cache.EXPECT().GetPoolStats(ctx).Return(previous, nil)
		cache.EXPECT().SetPoolStats(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, stats models.PoolStats) error {
			assert.NotEqual(t, "previous-process", stats.LedgerID)
			assert.True(t, stats.TotalLiquidity.IsZero())
			return nil
		})

		stats, err := svc.PoolStats(ctx)
		assert.NoError(t, err)
		assert.True(t, stats.TotalLiquidity.IsZero())
	})

	t.Run("delayed refresh does not hide a later deposit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		entered := make(chan struct{})
		release := make(chan struct{})
		cache := &lastWriterCache{beforeSet: func(stats models.PoolStats) {
			if stats.Version == 1 {
				close(entered)
				<-release
			}
		}}
		svc, _ := newTestLedger(t, acceptingSettlement(ctrl), services.WithStatsCache(cache))

		done := make(chan error)
		go func() {
			_, err := svc.Deposit(ctx, lenderAddr, amount("1000"))
			done <- err
		}()
		<-entered

		_, err := svc.Deposit(ctx, otherAddr, amount("500"))
		require.NoError(t, err)
		close(release)
		require.NoError(t, <-done)

		// The first refresh landed last and left version 1 behind.
		behind, err := cache.GetPoolStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), behind.Version)

		stats, err := svc.PoolStats(ctx)
		assert.NoError(t, err)
		assert.Equal(t, amount("1500"), stats.TotalLiquidity)
		assert.Equal(t, uint64(2), stats.Version)

		refreshed, err := cache.GetPoolStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(2), refreshed.Version)
		assert.Equal(t, amount("1500"), refreshed.TotalLiquidity)
	})

	t.Run("mutations refresh the cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cache := services.NewMockPoolStatsCache(ctrl)
		svc, _ := newTestLedger(t, acceptingSettlement(ctrl), services.WithStatsCache(cache))

		cache.EXPECT().SetPoolStats(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, stats models.PoolStats) error {
			assert.Equal(t, amount("1000"), stats.TotalLiquidity)
			assert.Equal(t, uint64(1), stats.Version)
			assert.NotEmpty(t, stats.LedgerID)
			return nil
		})

		_, err := svc.Deposit(ctx, lenderAddr, amount("1000"))
		require.NoError(t, err)
	})
}

func TestLedgerService_CustodyAddressCannotAct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No settlement call is expected.
	svc, _ := newTestLedger(t, services.NewMockSettlement(ctrl))
	ctx := context.Background()

	_, err := svc.Deposit(ctx, poolAddr, amount("1000"))
	assert.ErrorIs(t, err, services.ErrInvalidAddress)
	_, err = svc.Withdraw(ctx, poolAddr, amount("1"))
	assert.ErrorIs(t, err, services.ErrInvalidAddress)
	_, err = svc.ClaimInterest(ctx, poolAddr)
	assert.ErrorIs(t, err, services.ErrInvalidAddress)
	_, err = svc.RequestLoan(ctx, poolAddr, amount("50000000000000000"), day)
	assert.ErrorIs(t, err, services.ErrInvalidAddress)
	_, err = svc.RepayLoan(ctx, poolAddr)
	assert.ErrorIs(t, err, services.ErrInvalidAddress)
	assert.ErrorIs(t, svc.VouchForUser(ctx, poolAddr, borrowerAddr), services.ErrInvalidAddress)
	assert.ErrorIs(t, svc.VouchForUser(ctx, lenderAddr, poolAddr), services.ErrInvalidAddress)

	stats := svc.GetPoolStats()
	assert.True(t, stats.TotalLiquidity.IsZero())
	assert.True(t, stats.TotalLenderDeposits.IsZero())
	assert.Equal(t, uint64(0), stats.Version)
	assert.Equal(t, uint64(0), svc.GetUserProfile(poolAddr).TotalTransactions)
	assert.False(t, svc.HasVouched(lenderAddr, poolAddr))
}

func TestLedgerService_SettlementFailureLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()
	cause := errors.New("wallet locked")

	t.Run("deposit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		settlement := services.NewMockSettlement(ctrl)
		settlement.EXPECT().TransferIn(ctx, lenderAddr, amount("1000")).Return(cause)
		svc, _ := newTestLedger(t, settlement)

		_, err := svc.Deposit(ctx, lenderAddr, amount("1000"))
		assert.ErrorIs(t, err, services.ErrSettlementFailed)
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, services.KindSettlement, services.KindOf(err))

		assert.True(t, svc.GetPoolStats().TotalLiquidity.IsZero())
		assert.True(t, svc.GetLenderInfo(lenderAddr).DepositedAmount.IsZero())
		assert.Equal(t, uint64(0), svc.GetUserProfile(lenderAddr).TotalTransactions)
	})

	t.Run("request loan", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		settlement := services.NewMockSettlement(ctrl)
		settlement.EXPECT().TransferIn(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		settlement.EXPECT().Transfer(ctx, poolAddr, borrowerAddr, gomock.Any()).Return(cause)
		svc, _ := newTestLedger(t, settlement)

		_, err := svc.Deposit(ctx, lenderAddr, amount("10000000000000000000000"))
		require.NoError(t, err)

		_, err = svc.RequestLoan(ctx, borrowerAddr, amount("50000000000000000"), 30*day)
		assert.ErrorIs(t, err, services.ErrSettlementFailed)

		assert.Equal(t, models.LoanStatusNone, svc.GetActiveLoan(borrowerAddr).Status)
		profile := svc.GetUserProfile(borrowerAddr)
		assert.Equal(t, uint64(0), profile.TotalLoansTaken)
		assert.False(t, profile.HasActiveLoan)
		assert.True(t, svc.GetPoolStats().TotalActiveLoanAmount.IsZero())
	})
}

func TestLedgerService_ConcurrentDeposits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestLedger(t, acceptingSettlement(ctrl))
	ctx := context.Background()

	const lenders = 32
	var wg sync.WaitGroup
	for i := 0; i < lenders; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			addr := common.BigToAddress(big.NewInt(int64(1000 + i)))
			_, err := svc.Deposit(ctx, addr, amount("1000000000000000000"))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	stats := svc.GetPoolStats()
	want := new(uint256.Int).Mul(amount("1000000000000000000"), uint256.NewInt(lenders))
	assert.Equal(t, want, stats.TotalLiquidity)
	assert.Equal(t, want, stats.TotalLenderDeposits)
}

func TestLedgerService_RepayRacesDefault(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, clock := newTestLedger(t, acceptingSettlement(ctrl))
	ctx := context.Background()

	_, err := svc.Deposit(ctx, lenderAddr, amount("10000000000000000000000"))
	require.NoError(t, err)
	_, err = svc.RequestLoan(ctx, borrowerAddr, amount("50000000000000000"), 2*day)
	require.NoError(t, err)
	clock.Advance(3 * day)

	var (
		wg                   sync.WaitGroup
		repayErr, defaultErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, repayErr = svc.RepayLoan(ctx, borrowerAddr)
	}()
	go func() {
		defer wg.Done()
		_, defaultErr = svc.MarkDefault(ctx, otherAddr, borrowerAddr)
	}()
	wg.Wait()

	if repayErr == nil {
		assert.ErrorIs(t, defaultErr, services.ErrLoanNotActive)
		assert.Equal(t, models.LoanStatusRepaid, svc.GetActiveLoan(borrowerAddr).Status)
	} else {
		assert.ErrorIs(t, repayErr, services.ErrLoanNotActive)
		assert.NoError(t, defaultErr)
		assert.Equal(t, models.LoanStatusDefaulted, svc.GetActiveLoan(borrowerAddr).Status)
	}
	assert.True(t, svc.GetPoolStats().TotalActiveLoanAmount.IsZero())
}

func TestLedgerService_Conservation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, clock := newTestLedger(t, acceptingSettlement(ctrl))
	ctx := context.Background()
	lenders := []common.Address{lenderAddr, otherAddr, daoAddr}

	checkBooks := func(step string) {
		t.Helper()
		stats := svc.GetPoolStats()

		sum := new(uint256.Int)
		for _, l := range lenders {
			sum.Add(sum, svc.GetLenderInfo(l).DepositedAmount)
		}
		assert.Equal(t, sum, stats.TotalLenderDeposits, step)

		want := new(uint256.Int).Sub(stats.TotalLenderDeposits, stats.TotalDefaulted)
		assert.Equal(t, want, stats.TotalLiquidity, step)
		assert.False(t, stats.TotalLiquidity.Lt(stats.TotalActiveLoanAmount), step)
	}

	checkBooks("empty")
	for i, l := range lenders {
		_, err := svc.Deposit(ctx, l, new(uint256.Int).Mul(amount("1000000000000000000000"), uint256.NewInt(uint64(i+1))))
		require.NoError(t, err)
		checkBooks("deposit")
	}

	_, err := svc.RequestLoan(ctx, borrowerAddr, amount("50000000000000000"), 10*day)
	require.NoError(t, err)
	checkBooks("request loan")

	clock.Advance(5 * day)
	_, err = svc.RepayLoan(ctx, borrowerAddr)
	require.NoError(t, err)
	checkBooks("repay")

	_, err = svc.ClaimInterest(ctx, otherAddr)
	require.NoError(t, err)
	checkBooks("claim interest")

	_, err = svc.Withdraw(ctx, daoAddr, amount("500000000000000000000"))
	require.NoError(t, err)
	checkBooks("withdraw")

	_, err = svc.RequestLoan(ctx, borrowerAddr, amount("60000000000000000"), 3*day)
	require.NoError(t, err)
	checkBooks("second loan")

	clock.Advance(4 * day)
	loan, err := svc.MarkDefault(ctx, lenderAddr, borrowerAddr)
	require.NoError(t, err)
	assert.Equal(t, models.LoanStatusDefaulted, loan.Status)
	checkBooks("default")

	stats := svc.GetPoolStats()
	assert.False(t, stats.TotalDefaulted.IsZero())
	assert.True(t, stats.TotalActiveLoanAmount.IsZero())

	_, err = svc.Withdraw(ctx, otherAddr, amount("1000000000000000000"))
	require.NoError(t, err)
	checkBooks("withdraw after default")
}
