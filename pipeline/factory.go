package pipeline

import "context"

// Environment describes the host runtime's current configuration.
// Factories pass it through untouched.
type Environment interface{}

// Context is the host's per-operation tracing/logging handle.
type Context interface{}

// Pipeline is whatever a factory produces. Ownership moves to the caller.
type Pipeline interface{}

// BuildFunc constructs a pipeline with no inputs.
type BuildFunc func() (Pipeline, error)

// Factory is the capability the host looks for in a plugin.
type Factory interface {
	Get(ctx context.Context, env Environment, c Context) (Pipeline, error)
}

// Config is the named configuration a factory is constructed with.
type Config struct {
	Name        string            `koanf:"name" yaml:"name"`
	Description string            `koanf:"description" yaml:"description"`
	Tags        []string          `koanf:"tags" yaml:"tags"`
	Options     map[string]string `koanf:"options" yaml:"options"`
}

// Base is embedded by factories to hold their construction config.
type Base struct {
	cfg Config
}

// Init records cfg as given.
func (b *Base) Init(cfg Config) { b.cfg = cfg }

// Config returns the configuration recorded by Init.
func (b *Base) Config() Config { return b.cfg }

// Result is the settled value of an Async call.
type Result struct {
	Pipeline Pipeline
	Err      error
}

// Async calls f.Get and returns a channel that already holds the result.
// The channel is buffered and closed, so receiving never blocks.
func Async(ctx context.Context, f Factory, env Environment, c Context) <-chan Result {
	ch := make(chan Result, 1)
	p, err := f.Get(ctx, env, c)
	ch <- Result{Pipeline: p, Err: err}
	close(ch)
	return ch
}
