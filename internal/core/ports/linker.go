// Package ports defines the core interfaces for the application.
package ports

// LibraryHandle is an opaque handle to a resident native library.
type LibraryHandle uintptr

// Linker makes native libraries resident in the current process.
//
//go:generate mockgen -source=linker.go -destination=mocks/mock_linker.go -package=mocks
type Linker interface {
	// LoadSystem loads a library by file name through the platform's library search path.
	LoadSystem(fileName string) (LibraryHandle, error)

	// LoadPath loads a library from an absolute path, bypassing the search path.
	LoadPath(path string) (LibraryHandle, error)

	// Lookup resolves symbol in a library previously returned by LoadSystem or LoadPath.
	Lookup(handle LibraryHandle, symbol string) (uintptr, error)
}
