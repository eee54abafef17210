package triggerx

import (
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts API requests by method, route and status ("0" for network failures)
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "triggerx",
		Subsystem: "sdk",
		Name:      "api_requests_total",
		Help:      "Total TriggerX API requests sent",
	}, []string{"method", "endpoint", "status"})

	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "triggerx",
		Subsystem: "sdk",
		Name:      "api_request_duration_seconds",
		Help:      "TriggerX API request duration in seconds, retries included",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "endpoint"})

	// ValidationFailuresTotal counts job intents rejected before any request was sent
	ValidationFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "triggerx",
		Subsystem: "sdk",
		Name:      "job_validation_failures_total",
		Help:      "Job intents rejected by local validation",
	}, []string{"field"})
)

func observeRequest(method, endpoint string, status int, elapsed time.Duration) {
	RequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
	RequestDuration.WithLabelValues(method, endpoint).Observe(elapsed.Seconds())
}

// routeParams maps a path segment to the placeholder that replaces the
// segment after it.
var routeParams = map[string]string{
	"user":   ":address", // /api/jobs/user/{address}
	"points": ":address", // /api/wallet/points/{address}
	"users":  ":id",
	"delete": ":id",
}

// routeLabel collapses identifiers in a path so that metrics stay low
// cardinality, e.g. /api/jobs/42/lastexecuted -> /api/jobs/:id/lastexecuted.
func routeLabel(path string) string {
	segments := strings.Split(path, "/")
	for i := 1; i < len(segments); i++ {
		segment, parent := segments[i], segments[i-1]
		if segment == "" {
			continue
		}
		if placeholder, ok := routeParams[parent]; ok {
			segments[i] = placeholder
			continue
		}
		if parent == "jobs" && segment != "user" && segment != "delete" {
			segments[i] = ":id"
			continue
		}
		if _, err := strconv.ParseInt(segment, 10, 64); err == nil {
			segments[i] = ":id"
		}
	}
	return strings.Join(segments, "/")
}
