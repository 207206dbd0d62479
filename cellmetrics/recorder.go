// Package cellmetrics exposes cell graph activity to Prometheus. The
// recorder is an ordinary listener client of the cells package: it
// must be driven from the goroutine that owns the watched cells and
// adds no locking of its own.
package cellmetrics

import (
	"net/http"

	"github.com/celljam/celljam/cells"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder counts notification rounds per watched cell on a private
// registry.
type Recorder struct {
	registry      *prometheus.Registry
	notifications *prometheus.CounterVec
	watched       prometheus.Gauge
}

func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)
	return &Recorder{
		registry: registry,
		notifications: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cells",
			Name:      "notifications_total",
			Help:      "Notification rounds observed per watched cell.",
		}, []string{"cell"}),
		watched: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "cells",
			Name:      "watched",
			Help:      "Cells currently watched by this recorder.",
		}),
	}
}

// Watch attaches a counting listener to obs under name and returns a
// detach function. Detaching twice is a no-op.
func (r *Recorder) Watch(name string, obs cells.Observable) func() {
	counter := r.notifications.WithLabelValues(name)
	l := cells.ListenFunc(func(cells.Observable) {
		counter.Inc()
	})
	obs.AddListener(l)
	r.watched.Inc()

	detached := false
	return func() {
		if detached {
			return
		}
		detached = true
		obs.RemoveListener(l)
		r.watched.Dec()
	}
}

// Registry returns the recorder's registry for gathering or for
// registering adjacent collectors.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
