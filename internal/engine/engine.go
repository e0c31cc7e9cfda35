package engine

import (
	"context"
	"errors"
	"net/http"
	"time"

	"google.golang.org/grpc"

	"github.com/youwol/flux-core/internal/logging"
	"github.com/youwol/flux-core/internal/transport"
	"github.com/youwol/flux-core/pipeline"
)

type Config struct {
	Manifest string
	// Ports override the manifest when non-zero.
	GRPCPort    int
	MetricsPort int
}

type Engine struct {
	name      string
	factory   pipeline.Factory
	transport *transport.Server
	metrics   *http.Server
}

func (e *Engine) Factory() string { return e.name }

// Resolve asks the hosted factory for a pipeline.
func (e *Engine) Resolve(ctx context.Context, env pipeline.Environment, c pipeline.Context) (pipeline.Pipeline, error) {
	res := <-pipeline.Async(ctx, e.factory, env, c)
	return res.Pipeline, res.Err
}

// Run serves until ctx is done or the transport fails. Either way the
// transport and metrics listeners are stopped before it returns.
func (e *Engine) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() { errCh <- e.transport.Serve() }()

	var err error
	select {
	case <-ctx.Done():
		logging.L().Info("shutting down", "factory", e.name)
		e.transport.SetServing(e.name, false)
		e.transport.Stop()
		// Stop may land before Serve started.
		if err = <-errCh; errors.Is(err, grpc.ErrServerStopped) {
			err = nil
		}
	case err = <-errCh:
		logging.L().Error("transport stopped", "factory", e.name, "err", err)
		e.transport.Stop()
	}

	if e.metrics != nil {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = e.metrics.Shutdown(sctx)
	}
	return err
}
