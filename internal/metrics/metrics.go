package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "awsblogs"

var (
	upstreamFetchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_fetch_duration_seconds",
			Help:      "Duration of upstream feed and page fetches in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"kind", "outcome"},
	)

	toolInvocationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tool_invocations_total",
			Help:      "Total number of tool invocations",
		},
		[]string{"tool", "outcome"},
	)
)

func init() {
	prometheus.MustRegister(upstreamFetchDuration)
	prometheus.MustRegister(toolInvocationsTotal)
}

// ObserveFetch records one upstream request of the given kind ("feed" or
// "page") that started at start.
func ObserveFetch(kind string, start time.Time, err error) {
	upstreamFetchDuration.WithLabelValues(kind, outcome(err)).Observe(time.Since(start).Seconds())
}

// CountTool records one tool invocation.
func CountTool(tool string, err error) {
	toolInvocationsTotal.WithLabelValues(tool, outcome(err)).Inc()
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
