package engine

import (
	"context"
	"fmt"

	"github.com/youwol/flux-core/internal/config"
	"github.com/youwol/flux-core/internal/logging"
	"github.com/youwol/flux-core/internal/telemetry"
	"github.com/youwol/flux-core/internal/transport"
	"github.com/youwol/flux-core/pipeline"
)

// LoadFactory resolves the manifest at path into a ready factory,
// instrumented under its registry name.
func LoadFactory(path string) (string, pipeline.Factory, config.Manifest, error) {
	m, optPath, err := config.LoadManifest(path)
	if err != nil {
		return "", nil, m, fmt.Errorf("manifest: %w", err)
	}
	cfg, err := config.LoadFactoryConfig(optPath)
	if err != nil {
		return "", nil, m, fmt.Errorf("factory options: %w", err)
	}
	f, err := pipeline.New(m.Factory, cfg)
	if err != nil {
		return "", nil, m, fmt.Errorf("factory: %w", err)
	}
	return m.Factory, telemetry.Instrument(m.Factory, f), m, nil
}

func Bootstrap(ctx context.Context, cfg Config) (*Engine, error) {
	// 1. factory
	name, f, m, err := LoadFactory(cfg.Manifest)
	if err != nil {
		return nil, err
	}
	grpcPort, metricsPort := pick(cfg.GRPCPort, m.GRPCPort), pick(cfg.MetricsPort, m.MetricsPort)

	// 2. one dry resolve so a broken factory fails startup, not the first caller
	if res := <-pipeline.Async(ctx, f, nil, nil); res.Err != nil {
		return nil, fmt.Errorf("pipeline %s: %w", name, res.Err)
	}

	// 3. transport server
	srv, err := transport.StartServer(grpcPort)
	if err != nil {
		return nil, fmt.Errorf("transport: %w", err)
	}
	srv.SetServing("", true)
	srv.SetServing(name, true)

	// 4. metrics
	e := &Engine{name: name, factory: f, transport: srv}
	if metricsPort > 0 {
		if e.metrics, err = telemetry.Expose(metricsPort); err != nil {
			srv.Stop()
			return nil, fmt.Errorf("metrics: %w", err)
		}
	}

	logging.L().Info("engine ready", "factory", name, "grpc", srv.Addr().String(), "metrics_port", metricsPort)
	return e, nil
}

func pick(override, fromManifest int) int {
	if override != 0 {
		return override
	}
	return fromManifest
}
