package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reservation_cache_operations_total",
			Help: "Reservation cache operations",
		},
		[]string{"op"}, // hit|miss|store_error|upsert_error|purged
	)
	BulkRefreshes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reservation_bulk_refreshes_total",
			Help: "Bulk refreshes of the reservation cache",
		},
		[]string{"result"}, // ok|error
	)
	BulkRefreshDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "reservation_bulk_refresh_duration_seconds",
			Help:    "Duration of a bulk reservation refresh",
			Buckets: prometheus.DefBuckets,
		},
	)
)

var (
	PMSRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pms_requests_total",
			Help: "Requests to the upstream PMS API",
		},
		[]string{"endpoint", "result"}, // result: ok|error
	)
	AuthAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_auth_attempts_total",
			Help: "Captive portal authentication attempts",
		},
		[]string{"result"}, // granted|denied|error
	)
)

var registerOnce sync.Once

// MustRegister — регистрация всех метрик; повторные вызовы безопасны.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(CacheOps, BulkRefreshes, BulkRefreshDuration, PMSRequests, AuthAttempts)
	})
}
