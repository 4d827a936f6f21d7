package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	SourceCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scout_source_calls_total",
			Help: "Extraction calls per source by outcome (ok, failed, empty)",
		},
		[]string{"source", "outcome"},
	)

	CandidatesExtracted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scout_candidates_extracted_total",
			Help: "Normalized candidates produced per source",
		},
		[]string{"source"},
	)

	FallbackActivations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "scout_fallback_activations_total",
			Help: "Times the static fallback set was used because all sources failed",
		},
	)

	SourceDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "scout_source_duration_seconds",
			Help: "Duration of one source's extract and normalize step",
		},
		[]string{"source"},
	)
)

// Serve exposes /metrics on addr in a background goroutine. Used for long
// runs; one-shot invocations leave it disabled.
func Serve(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		_ = http.ListenAndServe(addr, mux)
	}()
}
