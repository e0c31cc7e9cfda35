// Package fluxcore is the pipeline factory for the flux-core project. It
// hands out the stock TypeScript/webpack/npm pipeline as-is.
package fluxcore

import (
	"context"

	"github.com/youwol/flux-core/pipeline"
	"github.com/youwol/flux-core/pipelines/tsnpm"
)

// Name is the registry key for this factory.
const Name = "flux-core"

// Option customizes a Factory built by New.
type Option func(*Factory)

// WithBuilder swaps the pipeline construction function.
func WithBuilder(fn pipeline.BuildFunc) Option {
	return func(f *Factory) { f.build = fn }
}

// Factory hands out the stock pipeline for the flux-core project.
type Factory struct {
	pipeline.Base
	build pipeline.BuildFunc
}

// New records cfg on the embedded Base as-is and applies opts.
func New(cfg pipeline.Config, opts ...Option) *Factory {
	f := &Factory{build: tsnpm.Pipeline}
	f.Init(cfg)
	for _, o := range opts {
		o(f)
	}
	return f
}

// Get ignores env and c; whatever the builder returns, value or error,
// goes back to the caller untouched.
func (f *Factory) Get(_ context.Context, _ pipeline.Environment, _ pipeline.Context) (pipeline.Pipeline, error) {
	return f.build()
}

func init() {
	pipeline.Register(Name, func(cfg pipeline.Config) pipeline.Factory { return New(cfg) })
}
