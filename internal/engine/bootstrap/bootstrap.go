// Package bootstrap makes native libraries resident, trying each loading
// strategy in order.
package bootstrap

import (
	"context"
	"fmt"
	"sync"

	"go.trai.ch/ktxload/internal/core/domain"
	"go.trai.ch/ktxload/internal/core/ports"
	"go.trai.ch/ktxload/internal/engine/gate"
	"go.trai.ch/zerr"
)

// Bootstrapper loads libraries through a Gate so that each one is loaded at
// most once per process.
type Bootstrapper struct {
	gate       *gate.Gate
	handles    *handleTable
	linker     ports.Linker
	probe      ports.EnvironmentProbe
	logger     ports.Logger
	tracer     ports.Tracer
	strategies []Strategy
}

type handleTable struct {
	mu      sync.RWMutex
	handles map[string]ports.LibraryHandle
}

// New creates a Bootstrapper trying strategies in the given order.
func New(
	g *gate.Gate,
	linker ports.Linker,
	probe ports.EnvironmentProbe,
	logger ports.Logger,
	tracer ports.Tracer,
	strategies ...Strategy,
) *Bootstrapper {
	return &Bootstrapper{
		gate:       g,
		handles:    &handleTable{handles: make(map[string]ports.LibraryHandle)},
		linker:     linker,
		probe:      probe,
		logger:     logger,
		tracer:     tracer,
		strategies: strategies,
	}
}

// WithStrategies returns a Bootstrapper sharing b's gate and loaded handles
// but trying strategies instead of b's.
func (b *Bootstrapper) WithStrategies(strategies ...Strategy) *Bootstrapper {
	c := *b
	c.strategies = strategies
	return &c
}

// Strategies returns the strategies in the order they are tried.
func (b *Bootstrapper) Strategies() []Strategy {
	return b.strategies
}

// Load makes spec resident. It returns nil immediately once spec.Name has
// been loaded, and a *domain.LinkageError when every strategy failed.
func (b *Bootstrapper) Load(ctx context.Context, spec domain.LibrarySpec) error {
	if err := spec.Validate(); err != nil {
		return err
	}

	platform := b.probe.Platform()
	ctx, span := b.tracer.Start(ctx, "bootstrap.load",
		ports.WithAttribute("library", spec.Name),
		ports.WithAttribute("os", platform.OS),
		ports.WithAttribute("arch", platform.Arch),
	)
	defer span.End()

	err := b.gate.Do(ctx, spec.Name, func(ctx context.Context) error {
		return b.attempt(ctx, spec)
	})
	if err != nil {
		span.RecordError(err)
	}
	return err
}

func (b *Bootstrapper) attempt(ctx context.Context, spec domain.LibrarySpec) error {
	failures := make([]domain.StrategyFailure, 0, len(b.strategies))

	for _, strategy := range b.strategies {
		handle, err := b.try(ctx, strategy, spec)
		if err == nil {
			b.handles.set(spec.Name, handle)
			b.logger.Debug(fmt.Sprintf("loaded %s via %s", spec.Name, strategy.Name()))
			return nil
		}
		b.logger.Debug(fmt.Sprintf("strategy %s could not load %s", strategy.Name(), spec.Name))
		failures = append(failures, domain.StrategyFailure{Strategy: strategy.Name(), Err: err})
	}

	return domain.NewLinkageError(spec.Name, b.probe.Ambient(), failures)
}

func (b *Bootstrapper) try(ctx context.Context, strategy Strategy, spec domain.LibrarySpec) (ports.LibraryHandle, error) {
	ctx, span := b.tracer.Start(ctx, "bootstrap.strategy",
		ports.WithAttribute("library", spec.Name),
		ports.WithAttribute("strategy", strategy.Name()),
	)
	defer span.End()

	handle, err := strategy.Attempt(ctx, spec)
	if err != nil {
		span.RecordError(err)
	}
	return handle, err
}

// State returns the load state of the named library.
func (b *Bootstrapper) State(name string) domain.LoadState {
	return b.gate.State(name)
}

// Lookup resolves symbol in the named library, which must have been loaded
// through this Bootstrapper or one sharing its handles.
func (b *Bootstrapper) Lookup(name, symbol string) (uintptr, error) {
	handle, ok := b.handles.get(name)
	if !ok {
		return 0, zerr.With(zerr.Wrap(domain.ErrLibraryNotLoaded, "lookup failed"), "library", name)
	}
	addr, err := b.linker.Lookup(handle, symbol)
	if err != nil {
		return 0, zerr.With(err, "library", name)
	}
	return addr, nil
}

func (t *handleTable) set(name string, h ports.LibraryHandle) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.handles[name] = h
}

func (t *handleTable) get(name string) (ports.LibraryHandle, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	h, ok := t.handles[name]
	return h, ok
}
