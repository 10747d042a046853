package metrics

import (
	"math/big"
	"sync"

	"github.com/holiman/uint256"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sbilibin2017/gw-trust-lending/internal/models"
)

// LedgerMetrics exposes operation outcomes and pool aggregates.
type LedgerMetrics struct {
	operations     *prometheus.CounterVec
	poolLiquidity  prometheus.Gauge
	activeLoans    prometheus.Gauge
	interestPool   prometheus.Gauge
	totalDefaulted prometheus.Gauge
	utilizationBp  prometheus.Gauge
}

var (
	ledgerOnce     sync.Once
	ledgerRegistry *LedgerMetrics
)

// Ledger returns the process-wide ledger collectors, registering them on first use.
func Ledger() *LedgerMetrics {
	ledgerOnce.Do(func() {
		ledgerRegistry = newLedgerMetrics()
		prometheus.MustRegister(
			ledgerRegistry.operations,
			ledgerRegistry.poolLiquidity,
			ledgerRegistry.activeLoans,
			ledgerRegistry.interestPool,
			ledgerRegistry.totalDefaulted,
			ledgerRegistry.utilizationBp,
		)
	})
	return ledgerRegistry
}

func newLedgerMetrics() *LedgerMetrics {
	return &LedgerMetrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lending_operations_total",
			Help: "Count of ledger operations by operation and result.",
		}, []string{"operation", "result"}),
		poolLiquidity: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "lending_pool_liquidity",
			Help: "Total pool liquidity in base units.",
		}),
		activeLoans: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "lending_active_loans",
			Help: "Outstanding principal in base units.",
		}),
		interestPool: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "lending_interest_pool",
			Help: "Unclaimed interest in base units.",
		}),
		totalDefaulted: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "lending_defaulted_total",
			Help: "Cumulative defaulted principal in base units.",
		}),
		utilizationBp: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "lending_utilization_bp",
			Help: "Pool utilization in basis points.",
		}),
	}
}

// ObserveOperation counts one finished operation. result is "ok" or a reason code.
func (m *LedgerMetrics) ObserveOperation(operation, result string) {
	if m == nil {
		return
	}
	if result == "" {
		result = "unknown"
	}
	m.operations.WithLabelValues(operation, result).Inc()
}

// ObservePool publishes the pool aggregates as gauges.
func (m *LedgerMetrics) ObservePool(stats models.PoolStats) {
	if m == nil {
		return
	}
	m.poolLiquidity.Set(toFloat(stats.TotalLiquidity))
	m.activeLoans.Set(toFloat(stats.TotalActiveLoanAmount))
	m.interestPool.Set(toFloat(stats.InterestPool))
	m.totalDefaulted.Set(toFloat(stats.TotalDefaulted))
	m.utilizationBp.Set(float64(stats.UtilizationRateBp))
}

func toFloat(v *uint256.Int) float64 {
	if v == nil {
		return 0
	}
	f, _ := new(big.Float).SetInt(v.ToBig()).Float64()
	return f
}
