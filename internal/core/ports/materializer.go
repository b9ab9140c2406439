package ports

import (
	"context"

	"go.trai.ch/ktxload/internal/core/domain"
)

// Materializer copies bundled resources into the on-disk cache.
//
//go:generate mockgen -source=materializer.go -destination=mocks/mock_materializer.go -package=mocks
type Materializer interface {
	// EnsureDirectory creates dir and any missing parents.
	EnsureDirectory(dir string) error

	// Exists reports whether a file is already present at path.
	Exists(path string) (bool, error)

	// Materialize streams resource into dest. dest must not exist yet.
	// The file appears at dest atomically or not at all.
	Materialize(ctx context.Context, resource, dest string) (domain.Extraction, error)
}

// CacheInspector checks and removes cached libraries.
type CacheInspector interface {
	// Verify compares the cache file of entry with its bundled resource.
	Verify(ctx context.Context, entry domain.CacheEntry) (domain.CacheReport, error)

	// Remove deletes the cache file at path and reports whether one existed.
	Remove(path string) (bool, error)
}
