package dispatch

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	passDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dispatch_pass_duration_seconds",
			Help:    "Duration of dispatch pipeline stages",
			Buckets: []float64{0.05, 0.1, 0.5, 1, 5, 15, 60},
		},
		[]string{"stage"},
	)

	passTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dispatch_pass_total",
			Help: "Dispatch pipeline stage outcomes",
		},
		[]string{"stage", "result"},
	)
)

func observeStage(stage string, seconds float64, err error) {
	passDuration.WithLabelValues(stage).Observe(seconds)
	result := "ok"
	if err != nil {
		result = "error"
	}
	passTotal.WithLabelValues(stage, result).Inc()
}
