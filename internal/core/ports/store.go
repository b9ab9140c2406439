package ports

import "go.trai.ch/ktxload/internal/core/domain"

// ExtractionStore records which cache files were materialized from which resources.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ExtractionStore interface {
	// Get returns the record for the cache file at path, or nil if none exists.
	Get(root, path string) (*domain.Extraction, error)

	// Put stores a record keyed by its Path.
	Put(root string, extraction domain.Extraction) error

	// Delete removes the record for path. A missing record is not an error.
	Delete(root, path string) error
}
