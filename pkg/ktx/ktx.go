// Package ktx makes the native KTX libraries resident in the current process.
//
// Call Load once before any codec entry point. The JNI bridge library and the
// codec library it links against are taken from the system library search
// path when present, and otherwise extracted from the bundled resources into
// the temp directory and loaded from there.
package ktx

import (
	"context"
	"sync"

	"github.com/grindlemire/graft"
	"go.trai.ch/ktxload/internal/core/domain"
	"go.trai.ch/ktxload/internal/engine/bootstrap"
	_ "go.trai.ch/ktxload/internal/wiring"
)

const (
	// BridgeLibrary is the library Load makes resident.
	BridgeLibrary = domain.DefaultLibrary
	// CodecLibrary is the dependency loaded ahead of BridgeLibrary.
	CodecLibrary = domain.CodecLibrary
)

// ErrLinkageFailure is matched by every error returned when a library could
// not be loaded by any strategy.
var ErrLinkageFailure = domain.ErrLinkageFailure

// LinkageError is the diagnostic returned when every loading strategy failed.
type LinkageError = domain.LinkageError

var (
	defaultOnce sync.Once
	defaultErr  error
	defaultBoot *bootstrap.Bootstrapper
)

func bootstrapper(ctx context.Context) (*bootstrap.Bootstrapper, error) {
	defaultOnce.Do(func() {
		defaultBoot, _, defaultErr = graft.ExecuteFor[*bootstrap.Bootstrapper](ctx)
	})
	return defaultBoot, defaultErr
}

// Load makes the KTX bridge library and its codec dependency resident.
// It is safe for concurrent use; after the first success it returns
// immediately.
func Load(ctx context.Context) error {
	return LoadLibrary(ctx, BridgeLibrary, CodecLibrary)
}

// LoadLibrary makes name resident, loading deps from the bundle first when
// name has to be extracted.
func LoadLibrary(ctx context.Context, name string, deps ...string) error {
	b, err := bootstrapper(ctx)
	if err != nil {
		return err
	}
	return b.Load(ctx, domain.NewLibrarySpec(name, deps...))
}

// Loaded reports whether name has been made resident.
func Loaded(name string) bool {
	b, err := bootstrapper(context.Background())
	if err != nil {
		return false
	}
	return b.State(name) == domain.Loaded
}

// Lookup returns the address of symbol in the bridge library.
func Lookup(symbol string) (uintptr, error) {
	return LookupIn(BridgeLibrary, symbol)
}

// LookupIn returns the address of symbol in a library loaded by LoadLibrary.
func LookupIn(name, symbol string) (uintptr, error) {
	b, err := bootstrapper(context.Background())
	if err != nil {
		return 0, err
	}
	return b.Lookup(name, symbol)
}
