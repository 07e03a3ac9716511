// Package metrics holds the Prometheus collectors exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DatasetLoads counts real (non-memoized) dataset loads by source kind
	DatasetLoads = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hrdash",
		Name:      "dataset_loads_total",
		Help:      "Dataset loads by source (file or sample).",
	}, []string{"source"})

	// DatasetCacheHits counts loads answered from the memoized dataset
	DatasetCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "hrdash",
		Name:      "dataset_cache_hits_total",
		Help:      "Dataset loads served from the in-memory cache.",
	})

	// AttritionCoerced reports how many Attrition values the last load coerced to "No"
	AttritionCoerced = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "hrdash",
		Name:      "attrition_values_coerced",
		Help:      "Invalid Attrition values coerced to No in the current dataset.",
	})

	// Renders counts feature renders by feature kind and outcome
	Renders = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hrdash",
		Name:      "renders_total",
		Help:      "Feature view renders by kind and outcome.",
	}, []string{"kind", "outcome"})

	// RenderDuration observes how long one feature render takes
	RenderDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "hrdash",
		Name:      "render_duration_seconds",
		Help:      "Time spent building a feature view.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"kind"})
)
