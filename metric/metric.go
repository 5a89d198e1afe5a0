package metric

import (
	"time"

	"github.com/converternetwork/converter-node/log"
	"github.com/prometheus/client_golang/prometheus"
)

type (
	// Metric represents the metric type
	Metric string
)

const (
	namespaceError       = "error"
	namespaceTracker     = "tracker"
	namespaceRateUpdater = "rateupdater"
	namespaceAPI         = "api"
)

var (
	// Errors errors count metric.
	Errors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespaceError,
			Name:      "errors",
			Help:      "",
		}, []string{"error"})

	// Reorgs block reorg count
	Reorgs = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespaceTracker,
			Name:      "reorgs",
			Help:      "",
		})

	// LastBlockNum last block synced
	LastBlockNum = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespaceTracker,
			Name:      "synced_last_block_num",
			Help:      "",
		})

	// EthLastBlockNum last eth block seen on the chain
	EthLastBlockNum = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespaceTracker,
			Name:      "eth_last_block_num",
			Help:      "",
		})

	// SyncedConversions synced conversion event count
	SyncedConversions = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespaceTracker,
			Name:      "synced_conversions_total",
			Help:      "",
		})

	// SyncedDeposits synced deposit event count
	SyncedDeposits = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespaceTracker,
			Name:      "synced_deposits_total",
			Help:      "",
		})

	// SyncedWithdrawals synced withdrawal event count
	SyncedWithdrawals = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespaceTracker,
			Name:      "synced_withdrawals_total",
			Help:      "",
		})

	// TokenPriceUpdates token price update count
	TokenPriceUpdates = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespaceRateUpdater,
			Name:      "token_price_updates_total",
			Help:      "",
		})
)

func init() {
	if err := registerCollectors(); err != nil {
		log.Error(err)
	}
}
func registerCollectors() error {
	if err := registerCollector(Errors); err != nil {
		return err
	}
	if err := registerCollector(Reorgs); err != nil {
		return err
	}
	if err := registerCollector(LastBlockNum); err != nil {
		return err
	}
	if err := registerCollector(EthLastBlockNum); err != nil {
		return err
	}
	if err := registerCollector(SyncedConversions); err != nil {
		return err
	}
	if err := registerCollector(SyncedDeposits); err != nil {
		return err
	}
	if err := registerCollector(SyncedWithdrawals); err != nil {
		return err
	}
	return registerCollector(TokenPriceUpdates)
}

func registerCollector(collector prometheus.Collector) error {
	err := prometheus.Register(collector)
	if err != nil {
		if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
			return err
		}
	}
	return nil
}

// MeasureDuration measure the method execution duration
// and save it into a histogram metric
func MeasureDuration(histogram *prometheus.HistogramVec, start time.Time, lvs ...string) {
	duration := time.Since(start)
	histogram.WithLabelValues(lvs...).Observe(float64(duration.Milliseconds()))
}

// CollectError collect the error message and increment
// the error count
func CollectError(err error) {
	Errors.With(map[string]string{"error": err.Error()}).Inc()
}
