// Package gate serializes load attempts per library name.
package gate

import (
	"context"
	"sync"

	"go.trai.ch/ktxload/internal/core/domain"
	"go.trai.ch/zerr"
)

// Gate runs at most one load attempt per library name at a time and remembers
// successful loads for the lifetime of the process.
type Gate struct {
	mu      sync.Mutex
	records map[string]*record
}

type record struct {
	state   domain.LoadState
	current *attempt
}

type attempt struct {
	done chan struct{}
	err  error
}

type heldKey struct{}

// held is the chain of names the calling goroutine is currently loading.
type held struct {
	name   string
	parent *held
}

// New creates an empty Gate.
func New() *Gate {
	return &Gate{records: make(map[string]*record)}
}

// Do runs fn for name unless the library is already loaded.
//
// Callers arriving while an attempt is in flight wait for it and receive its
// result. A failed attempt leaves the name retryable. Waiters stop waiting
// when their own ctx ends; the running attempt is not affected.
func (g *Gate) Do(ctx context.Context, name string, fn func(context.Context) error) error {
	if holds(ctx, name) {
		return zerr.With(zerr.Wrap(domain.ErrReentrantLoad, "load gate"), "library", name)
	}

	g.mu.Lock()
	rec, ok := g.records[name]
	if !ok {
		rec = &record{}
		g.records[name] = rec
	}

	switch rec.state {
	case domain.Loaded:
		g.mu.Unlock()
		return nil
	case domain.Attempted:
		a := rec.current
		g.mu.Unlock()
		select {
		case <-a.done:
			return a.err
		case <-ctx.Done():
			return ctx.Err()
		}
	default:
		a := &attempt{done: make(chan struct{})}
		rec.state = domain.Attempted
		rec.current = a
		g.mu.Unlock()
		return g.run(ctx, name, rec, a, fn)
	}
}

func (g *Gate) run(ctx context.Context, name string, rec *record, a *attempt, fn func(context.Context) error) error {
	finished := false
	defer func() {
		// fn panicked or called runtime.Goexit.
		if !finished {
			g.finish(rec, a, zerr.With(zerr.Wrap(domain.ErrLoadPanicked, "load gate"), "library", name))
		}
	}()

	err := fn(context.WithValue(ctx, heldKey{}, &held{name: name, parent: heldChain(ctx)}))
	finished = true
	g.finish(rec, a, err)
	return err
}

func (g *Gate) finish(rec *record, a *attempt, err error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	a.err = err
	if err == nil {
		rec.state = domain.Loaded
	} else {
		rec.state = domain.NotAttempted
	}
	rec.current = nil
	close(a.done)
}

// State returns the current load state of name.
func (g *Gate) State(name string) domain.LoadState {
	g.mu.Lock()
	defer g.mu.Unlock()

	if rec, ok := g.records[name]; ok {
		return rec.state
	}
	return domain.NotAttempted
}

func heldChain(ctx context.Context) *held {
	h, _ := ctx.Value(heldKey{}).(*held)
	return h
}

func holds(ctx context.Context, name string) bool {
	for h := heldChain(ctx); h != nil; h = h.parent {
		if h.name == name {
			return true
		}
	}
	return false
}
