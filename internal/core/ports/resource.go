package ports

import "io"

// ResourceSource resolves bundled native libraries by their slash-separated
// path below the bundle root, e.g. "lib/linux/x86_64/libktx.so".
//
//go:generate mockgen -source=resource.go -destination=mocks/mock_resource.go -package=mocks
type ResourceSource interface {
	// Open returns a reader for the resource. A missing resource yields
	// an error matching domain.ErrResourceNotFound.
	Open(name string) (io.ReadCloser, error)

	// Describe names the bundle for diagnostics.
	Describe() string
}
