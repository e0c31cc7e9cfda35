package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/youwol/flux-core/internal/logging"
	"github.com/youwol/flux-core/pipeline"
)

var (
	FactoryGets = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "flux_pipeline_factory_get_total",
		Help: "Pipeline factory Get calls by outcome.",
	}, []string{"factory", "result"})

	FactoryGetSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "flux_pipeline_factory_get_seconds",
		Help:    "Time spent in pipeline factory Get.",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
	}, []string{"factory"})
)

// Expose binds port (0 picks a free one) and serves /metrics in the
// background. srv.Addr holds the bound address; Shutdown it to stop.
func Expose(port int) (*http.Server, error) {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, err
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: lis.Addr().String(), Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.L().Error("metrics listener stopped", "addr", srv.Addr, "err", err)
		}
	}()
	return srv, nil
}

// Instrument wraps f so every Get is counted and timed under name.
// Values and errors pass through unchanged.
func Instrument(name string, f pipeline.Factory) pipeline.Factory {
	return &instrumented{name: name, next: f}
}

type instrumented struct {
	name string
	next pipeline.Factory
}

func (i *instrumented) Get(ctx context.Context, env pipeline.Environment, c pipeline.Context) (pipeline.Pipeline, error) {
	start := time.Now()
	p, err := i.next.Get(ctx, env, c)
	FactoryGetSeconds.WithLabelValues(i.name).Observe(time.Since(start).Seconds())
	result := "ok"
	if err != nil {
		result = "error"
	}
	FactoryGets.WithLabelValues(i.name, result).Inc()
	return p, err
}
