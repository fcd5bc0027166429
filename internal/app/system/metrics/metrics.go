// internal/app/system/metrics/metrics.go

// Package metrics holds the Prometheus collectors for dashboard loads.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Load outcomes.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

var (
	loadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "kurs",
		Subsystem: "dashboard",
		Name:      "loads_total",
		Help:      "Dashboard loads by outcome.",
	}, []string{"result"})

	loadDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "kurs",
		Subsystem: "dashboard",
		Name:      "load_duration_seconds",
		Help:      "Time spent fetching all five collections.",
		Buckets:   prometheus.DefBuckets,
	})

	staleTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "kurs",
		Subsystem: "dashboard",
		Name:      "stale_results_total",
		Help:      "Loads that finished after their session was closed.",
	})

	fetchErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "kurs",
		Subsystem: "dataservice",
		Name:      "fetch_errors_total",
		Help:      "Failed collection fetches by collection.",
	}, []string{"collection"})
)

// ObserveLoad records one finished load.
func ObserveLoad(result string, d time.Duration) {
	loadsTotal.WithLabelValues(result).Inc()
	loadDuration.Observe(d.Seconds())
}

// StaleDiscarded counts a load result dropped because nobody was waiting.
func StaleDiscarded() {
	staleTotal.Inc()
}

// FetchFailed counts a failed fetch of one collection.
func FetchFailed(collection string) {
	fetchErrors.WithLabelValues(collection).Inc()
}

// Loads returns the current counter for result. Intended for tests.
func Loads(result string) float64 {
	return counterValue(loadsTotal.WithLabelValues(result))
}

// Stale returns the number of discarded results.
func Stale() float64 {
	return counterValue(staleTotal)
}

// FetchErrors returns the current failure counter for collection.
func FetchErrors(collection string) float64 {
	return counterValue(fetchErrors.WithLabelValues(collection))
}
