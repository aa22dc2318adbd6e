package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	EventsReceived = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "league_webhook_events_received_total", Help: "Total webhook notifications acknowledged"},
	)
	EventsRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "league_webhook_events_rejected_total", Help: "Total webhook notifications refused, by reason"},
		[]string{"reason"},
	)
	EventsProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "league_webhook_events_processed_total", Help: "Total webhook notifications reconciled, by outcome"},
		[]string{"outcome"},
	)
	EventLogFailures = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "league_event_log_failures_total", Help: "Total event log writes that failed and were swallowed"},
	)
	WeekWriteFailures = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "league_week_write_failures_total", Help: "Total per-week reconciliation failures"},
	)
	QueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{Name: "league_webhook_queue_depth", Help: "Notifications waiting in the processing queue"},
	)
	StorageUsagePercent = prometheus.NewGauge(
		prometheus.GaugeOpts{Name: "league_storage_usage_percent", Help: "Database size as a percentage of the configured allocation"},
	)
	AcceptingEvents = prometheus.NewGauge(
		prometheus.GaugeOpts{Name: "league_webhook_accepting", Help: "1 when new webhook notifications are accepted"},
	)
)

var registerOnce sync.Once

// Register adds the collectors to the default registry. Safe to call more
// than once.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			EventsReceived,
			EventsRejected,
			EventsProcessed,
			EventLogFailures,
			WeekWriteFailures,
			QueueDepth,
			StorageUsagePercent,
			AcceptingEvents,
		)
	})
}

// BoolGauge converts a flag into a gauge value
func BoolGauge(v bool) float64 {
	if v {
		return 1
	}
	return 0
}
