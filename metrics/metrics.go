// Package metrics exposes the engine's Prometheus collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	assignments = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "facetwall_assignments_total", Help: "Playlist items assigned to facets"},
		[]string{"kind"},
	)
	failures = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "facetwall_failures_total", Help: "Facet failures by reason"},
		[]string{"reason"},
	)
	recoveries = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "facetwall_recoveries_total", Help: "Facets that left the failed state"},
	)
	frames = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "facetwall_frames_total", Help: "Video frames pushed to surfaces"},
	)
	decodeStart = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "facetwall_decode_start_seconds",
			Help:    "Time taken to launch a decoder process",
			Buckets: prometheus.DefBuckets,
		},
	)
	activeDecoders = prometheus.NewGauge(
		prometheus.GaugeOpts{Name: "facetwall_active_decoders", Help: "Decoder processes currently running"},
	)
)

func init() {
	prometheus.MustRegister(assignments, failures, recoveries, frames, decodeStart, activeDecoders)
}

// Assigned counts an assignment of the given media kind.
func Assigned(kind string) {
	assignments.WithLabelValues(kind).Inc()
}

// Failed counts a facet failure.
func Failed(reason string) {
	failures.WithLabelValues(reason).Inc()
}

// Recovered counts a facet leaving the failed state.
func Recovered() {
	recoveries.Inc()
}

// FramePushed counts a frame handed to a surface.
func FramePushed() {
	frames.Inc()
}

// ObserveDecodeStart records how long a decoder took to launch.
func ObserveDecodeStart(d time.Duration) {
	decodeStart.Observe(d.Seconds())
}

// DecoderStarted and DecoderStopped track live decoder processes.
func DecoderStarted() { activeDecoders.Inc() }

func DecoderStopped() { activeDecoders.Dec() }
