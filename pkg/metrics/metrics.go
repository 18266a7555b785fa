package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	KafkaMessagesConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_consumed_total",
			Help: "Number of messages fetched from Kafka",
		},
		[]string{"topic"},
	)
	KafkaMessagesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_processed_total",
			Help: "Number of messages processed successfully",
		},
		[]string{"topic"},
	)
	KafkaMessagesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_failed_total",
			Help: "Number of messages failed to process",
		},
		[]string{"topic"},
	)
)

var (
	DashboardCacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_cache_operations_total",
			Help: "Dashboard cache operations",
		},
		[]string{"op"}, // hit|miss|expired|evicted|error
	)
	DashboardCacheSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "dashboard_cache_size",
			Help: "Number of snapshots currently in the in-process cache",
		},
	)
	DashboardComputeDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dashboard_compute_duration_seconds",
			Help:    "Time spent computing a dashboard snapshot",
			Buckets: prometheus.DefBuckets,
		},
	)
	DashboardInvalidations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_invalidations_total",
			Help: "Proactive dashboard cache invalidations",
		},
		[]string{"result"}, // ok|error
	)
)

func MustRegister() {
	prometheus.MustRegister(
		KafkaMessagesConsumed, KafkaMessagesProcessed, KafkaMessagesFailed,
		DashboardCacheOps, DashboardCacheSize, DashboardComputeDuration, DashboardInvalidations,
	)
}
