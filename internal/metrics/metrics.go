// Package metrics exposes simulation progress to Prometheus.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder holds the simulation collectors. A nil *Recorder is valid and
// records nothing.
type Recorder struct {
	generation     prometheus.Gauge
	population     prometheus.Gauge
	advances       prometheus.Counter
	toggles        prometheus.Counter
	advanceSeconds prometheus.Histogram
}

// NewRecorder creates the collectors and registers them with reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		generation: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "life_generation",
			Help: "Current generation of the grid",
		}),
		population: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "life_population",
			Help: "Number of live cells in the current generation",
		}),
		advances: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "life_advances_total",
			Help: "Total number of generation advances",
		}),
		toggles: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "life_toggles_total",
			Help: "Total number of cells toggled by user input",
		}),
		advanceSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "life_advance_duration_seconds",
			Help:    "Time spent computing one generation",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
	}
	reg.MustRegister(r.generation, r.population, r.advances, r.toggles, r.advanceSeconds)
	return r
}

// Sync publishes the grid's current generation and population.
func (r *Recorder) Sync(generation, population int) {
	if r == nil {
		return
	}
	r.generation.Set(float64(generation))
	r.population.Set(float64(population))
}

// Advanced records one generation advance that took d.
func (r *Recorder) Advanced(d time.Duration) {
	if r == nil {
		return
	}
	r.advances.Inc()
	r.advanceSeconds.Observe(d.Seconds())
}

// Toggled records one user toggle.
func (r *Recorder) Toggled() {
	if r == nil {
		return
	}
	r.toggles.Inc()
}

// Handler serves the metrics gathered from g.
func Handler(g prometheus.Gatherer) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	return mux
}

// Serve runs the metrics endpoint on addr until ctx is done.
func Serve(ctx context.Context, addr string, g prometheus.Gatherer) error {
	srv := &http.Server{Addr: addr, Handler: Handler(g), ReadHeaderTimeout: 5 * time.Second}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	log.Printf("metrics endpoint listening on %s/metrics", addr)

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("metrics server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("metrics shutdown: %w", err)
	}
	log.Printf("metrics endpoint stopped")
	return nil
}
