package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the lmsr module
type Metrics struct {
	// Swap metrics
	SwapsTotal        *prometheus.CounterVec
	SwapVolume        *prometheus.CounterVec
	SwapFeesCollected *prometheus.CounterVec
	QuotePath         *prometheus.CounterVec

	// Liquidity metrics
	LiquidityAdded   *prometheus.CounterVec
	LiquidityRemoved *prometheus.CounterVec
	ShareSupply      *prometheus.GaugeVec
	SolverIterations prometheus.Histogram

	// Pool metrics
	PoolsTotal       prometheus.Gauge
	PoolCreationRate prometheus.Counter
	PoolBalances     *prometheus.GaugeVec

	// Fee metrics
	ProtocolFeesAccrued   *prometheus.CounterVec
	ProtocolFeesWithdrawn *prometheus.CounterVec
}

var (
	metricsOnce sync.Once
	metrics     *Metrics
)

// NewMetrics creates and registers lmsr metrics (singleton pattern)
func NewMetrics() *Metrics {
	metricsOnce.Do(func() {
		metrics = &Metrics{
			SwapsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "softswap",
					Subsystem: "lmsr",
					Name:      "swaps_total",
					Help:      "Total number of swaps executed",
				},
				[]string{"pool_id", "status"},
			),
			SwapVolume: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "softswap",
					Subsystem: "lmsr",
					Name:      "swap_volume_total",
					Help:      "Total swap input volume in base units",
				},
				[]string{"pool_id", "denom"},
			),
			SwapFeesCollected: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "softswap",
					Subsystem: "lmsr",
					Name:      "swap_fees_collected_total",
					Help:      "Total swap fees collected",
				},
				[]string{"pool_id", "denom"},
			),
			QuotePath: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "softswap",
					Subsystem: "lmsr",
					Name:      "quote_path_total",
					Help:      "Quotes served by evaluation path (approx or exact)",
				},
				[]string{"path"},
			),
			LiquidityAdded: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "softswap",
					Subsystem: "lmsr",
					Name:      "liquidity_added_total",
					Help:      "Total liquidity added to pools",
				},
				[]string{"pool_id", "denom"},
			),
			LiquidityRemoved: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "softswap",
					Subsystem: "lmsr",
					Name:      "liquidity_removed_total",
					Help:      "Total liquidity removed from pools",
				},
				[]string{"pool_id", "denom"},
			),
			ShareSupply: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Namespace: "softswap",
					Subsystem: "lmsr",
					Name:      "share_supply",
					Help:      "Outstanding LP shares per pool",
				},
				[]string{"pool_id"},
			),
			SolverIterations: promauto.NewHistogram(
				prometheus.HistogramOpts{
					Namespace: "softswap",
					Subsystem: "lmsr",
					Name:      "solver_iterations",
					Help:      "Bisection iterations per single-asset deposit",
					Buckets:   []float64{4, 8, 16, 32, 64, 128},
				},
			),
			PoolsTotal: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "softswap",
					Subsystem: "lmsr",
					Name:      "pools_total",
					Help:      "Total number of pools",
				},
			),
			PoolCreationRate: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "softswap",
					Subsystem: "lmsr",
					Name:      "pool_creations_total",
					Help:      "Total number of pools created",
				},
			),
			PoolBalances: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Namespace: "softswap",
					Subsystem: "lmsr",
					Name:      "pool_balances",
					Help:      "Current pool balances",
				},
				[]string{"pool_id", "denom"},
			),
			ProtocolFeesAccrued: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "softswap",
					Subsystem: "lmsr",
					Name:      "protocol_fees_accrued_total",
					Help:      "Protocol fee share accrued",
				},
				[]string{"denom"},
			),
			ProtocolFeesWithdrawn: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "softswap",
					Subsystem: "lmsr",
					Name:      "protocol_fees_withdrawn_total",
					Help:      "Protocol fees withdrawn to the recipient",
				},
				[]string{"denom"},
			),
		}
	})
	return metrics
}
