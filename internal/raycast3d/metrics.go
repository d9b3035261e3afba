package raycast3d

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts render work. Collectors are registered on the Registerer given
// to NewMetrics; a nil Registerer leaves them unregistered.
type Metrics struct {
	Pixels         prometheus.Counter
	HitPixels      prometheus.Counter
	PrimitiveTests prometheus.Counter
	Renders        *prometheus.CounterVec
	RenderSeconds  prometheus.Histogram
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Pixels: f.NewCounter(prometheus.CounterOpts{
			Namespace: "raycast3d",
			Name:      "pixels_total",
			Help:      "Pixels evaluated.",
		}),
		HitPixels: f.NewCounter(prometheus.CounterOpts{
			Namespace: "raycast3d",
			Name:      "hit_pixels_total",
			Help:      "Pixels whose camera ray hit a primitive.",
		}),
		PrimitiveTests: f.NewCounter(prometheus.CounterOpts{
			Namespace: "raycast3d",
			Name:      "primitive_tests_total",
			Help:      "Ray/primitive intersection tests performed.",
		}),
		Renders: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "raycast3d",
			Name:      "renders_total",
			Help:      "Render passes by result.",
		}, []string{"result"}),
		RenderSeconds: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "raycast3d",
			Name:      "render_duration_seconds",
			Help:      "Wall time of completed render passes.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
	}
}

func (m *Metrics) observeRow(pixels, hits, tests int) {
	if m == nil {
		return
	}
	m.Pixels.Add(float64(pixels))
	m.HitPixels.Add(float64(hits))
	m.PrimitiveTests.Add(float64(tests))
}

func (m *Metrics) observeRender(result string, seconds float64) {
	if m == nil {
		return
	}
	m.Renders.WithLabelValues(result).Inc()
	if result == "ok" {
		m.RenderSeconds.Observe(seconds)
	}
}
