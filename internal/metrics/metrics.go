// Package metrics exports decode outcome counters for prometheus.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/nathanhack/hamming74/linearblock/hamming"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

type Decodes struct {
	registry *prometheus.Registry
	outcomes *prometheus.CounterVec
	flips    prometheus.Counter
}

// NewDecodes creates the counters on their own registry.
func NewDecodes() *Decodes {
	d := &Decodes{
		registry: prometheus.NewRegistry(),
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hamming74",
			Name:      "decodes_total",
			Help:      "Number of decoded codewords by status.",
		}, []string{"status"}),
		flips: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hamming74",
			Name:      "channel_bit_flips_total",
			Help:      "Number of bits flipped by the simulated channel.",
		}),
	}
	d.registry.MustRegister(d.outcomes, d.flips)
	return d
}

// Observe counts one decode.
func (d *Decodes) Observe(status hamming.ErrorStatus) {
	d.outcomes.WithLabelValues(status.Status.String()).Inc()
}

// Flipped counts bits flipped by a channel.
func (d *Decodes) Flipped(count int) {
	d.flips.Add(float64(count))
}

func (d *Decodes) Handler() http.Handler {
	return promhttp.HandlerFor(d.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is done.
func (d *Decodes) Serve(ctx context.Context, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", d.Handler())
	server := &http.Server{Addr: addr, Handler: mux}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logrus.Warnf("metrics server shutdown: %v", err)
			return
		}
		logrus.Debugf("Metrics server on %v shut down", addr)
	}()

	go func() {
		logrus.Infof("Serving metrics on %v/metrics", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Errorf("metrics server stopped: %v", err)
		}
	}()
}
