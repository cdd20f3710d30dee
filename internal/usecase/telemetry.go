package usecase

import (
	"time"

	gometrics "github.com/rcrowley/go-metrics"
)

const (
	metricPredictions        = "predictions"
	metricPredictionFailures = "prediction_failures"
	metricCacheHits          = "prediction_cache_hits"
	metricCacheMisses        = "prediction_cache_misses"
	metricPredictionLatency  = "prediction_latency"
)

type Telemetry struct {
	Predictions        gometrics.Counter
	PredictionFailures gometrics.Counter
	CacheHits          gometrics.Counter
	CacheMisses        gometrics.Counter
	Latency            gometrics.Timer
	registry           gometrics.Registry
}

func NewTelemetry() *Telemetry {
	telemetry := &Telemetry{
		Predictions:        gometrics.NewCounter(),
		PredictionFailures: gometrics.NewCounter(),
		CacheHits:          gometrics.NewCounter(),
		CacheMisses:        gometrics.NewCounter(),
		Latency:            gometrics.NewTimer(),
		registry:           gometrics.NewRegistry(),
	}

	telemetry.registry.Register(metricPredictions, telemetry.Predictions)
	telemetry.registry.Register(metricPredictionFailures, telemetry.PredictionFailures)
	telemetry.registry.Register(metricCacheHits, telemetry.CacheHits)
	telemetry.registry.Register(metricCacheMisses, telemetry.CacheMisses)
	telemetry.registry.Register(metricPredictionLatency, telemetry.Latency)

	return telemetry
}

// Snapshot returns the current metric values keyed by metric name.
func (t *Telemetry) Snapshot() map[string]any {
	out := make(map[string]any)
	t.registry.Each(func(name string, metric any) {
		switch m := metric.(type) {
		case gometrics.Counter:
			out[name] = m.Count()
		case gometrics.Timer:
			s := m.Snapshot()
			out[name] = map[string]any{
				"count":   s.Count(),
				"mean_ms": s.Mean() / float64(time.Millisecond),
				"p95_ms":  s.Percentile(0.95) / float64(time.Millisecond),
				"max_ms":  float64(s.Max()) / float64(time.Millisecond),
			}
		}
	})
	return out
}
