// Package linker makes native libraries resident in the running process.
package linker

import (
	"errors"
	"path/filepath"
	"sync"

	"go.trai.ch/ktxload/internal/core/domain"
	"go.trai.ch/ktxload/internal/core/ports"
	"go.trai.ch/zerr"
)

type (
	openFunc   func(name string, search bool) (uintptr, error)
	lookupFunc func(handle uintptr, symbol string) (uintptr, error)
)

// Linker implements ports.Linker on top of the platform dynamic loader.
// Libraries are never unloaded; handles stay valid for the process lifetime.
type Linker struct {
	mu     sync.Mutex
	open   openFunc
	lookup lookupFunc
	loaded map[ports.LibraryHandle]string
}

// New creates a Linker bound to the platform dynamic loader.
func New() *Linker {
	return newLinker(openLibrary, lookupSymbol)
}

func newLinker(open openFunc, lookup lookupFunc) *Linker {
	return &Linker{
		open:   open,
		lookup: lookup,
		loaded: make(map[ports.LibraryHandle]string),
	}
}

// LoadSystem loads fileName through the platform's library search path.
func (l *Linker) LoadSystem(fileName string) (ports.LibraryHandle, error) {
	h, err := l.load(fileName, true)
	if err != nil {
		return 0, zerr.With(errors.Join(domain.ErrSystemLoadFailed, err), "library", fileName)
	}
	return h, nil
}

// LoadPath loads the library at the absolute path.
func (l *Linker) LoadPath(path string) (ports.LibraryHandle, error) {
	if !filepath.IsAbs(path) {
		return 0, zerr.With(zerr.Wrap(domain.ErrPathLoadFailed, "library path must be absolute"), "path", path)
	}
	h, err := l.load(path, false)
	if err != nil {
		return 0, zerr.With(errors.Join(domain.ErrPathLoadFailed, err), "path", path)
	}
	return h, nil
}

// Lookup resolves symbol in a library loaded by this Linker.
func (l *Linker) Lookup(handle ports.LibraryHandle, symbol string) (uintptr, error) {
	l.mu.Lock()
	name, ok := l.loaded[handle]
	l.mu.Unlock()
	if !ok {
		return 0, zerr.With(zerr.Wrap(domain.ErrLibraryNotLoaded, "failed to resolve symbol"), "symbol", symbol)
	}

	addr, err := l.lookup(uintptr(handle), symbol)
	switch {
	case err != nil:
		err = errors.Join(domain.ErrSymbolNotFound, err)
	case addr == 0:
		err = zerr.Wrap(domain.ErrSymbolNotFound, "dynamic loader returned a nil address")
	default:
		return addr, nil
	}
	return 0, zerr.With(zerr.With(err, "symbol", symbol), "library", name)
}

func (l *Linker) load(name string, search bool) (ports.LibraryHandle, error) {
	raw, err := l.open(name, search)
	if err != nil {
		return 0, err
	}
	if raw == 0 {
		return 0, zerr.New("dynamic loader returned a nil handle")
	}

	h := ports.LibraryHandle(raw)
	l.mu.Lock()
	l.loaded[h] = name
	l.mu.Unlock()
	return h, nil
}
