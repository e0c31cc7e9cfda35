package pipeline

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownFactory is returned by New for names nobody registered.
var ErrUnknownFactory = errors.New("unknown pipeline factory")

// Constructor builds a Factory from its config.
type Constructor func(Config) Factory

var (
	regMu sync.RWMutex
	reg   = map[string]Constructor{}
)

// Register is called from each factory package's init().
// A later registration under the same name replaces the earlier one.
func Register(name string, c Constructor) {
	regMu.Lock()
	reg[name] = c
	regMu.Unlock()
}

// New returns the factory registered under name, constructed with cfg.
func New(name string, cfg Config) (Factory, error) {
	regMu.RLock()
	c, ok := reg[name]
	regMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownFactory, name)
	}
	return c(cfg), nil
}

// Names lists registered factory names in sorted order.
func Names() []string {
	regMu.RLock()
	defer regMu.RUnlock()
	out := make([]string, 0, len(reg))
	for n := range reg {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

func unregister(name string) {
	regMu.Lock()
	delete(reg, name)
	regMu.Unlock()
}
