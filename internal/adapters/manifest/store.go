// Package manifest records extracted native libraries next to the cache.
package manifest

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/ktxload/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.ExtractionStore using a file per cache location.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Get retrieves the record for the cache file at path.
func (s *Store) Get(root, path string) (*domain.Extraction, error) {
	filename := s.getFilename(root, path)
	//nolint:gosec // Path is constructed from the cache root and a hashed filename
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "path", path)
	}

	var record domain.Extraction
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestUnmarshalFailed.Error()), "path", path)
	}

	return &record, nil
}

// Put stores the record.
func (s *Store) Put(root string, extraction domain.Extraction) error {
	data, err := json.MarshalIndent(extraction, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrManifestMarshalFailed.Error())
	}

	filename := s.getFilename(root, extraction.Path)
	if err := os.MkdirAll(filepath.Dir(filename), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrManifestWriteFailed.Error()), "path", extraction.Path)
	}

	//nolint:gosec // Path is constructed from the cache root and a hashed filename
	if err := os.WriteFile(filename, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrManifestWriteFailed.Error()), "path", extraction.Path)
	}

	return nil
}

// Delete removes the record for path.
func (s *Store) Delete(root, path string) error {
	err := os.Remove(s.getFilename(root, path))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, domain.ErrManifestWriteFailed.Error()), "path", path)
	}
	return nil
}

func (s *Store) getFilename(root, path string) string {
	hash := sha256.Sum256([]byte(filepath.Clean(path)))
	return filepath.Join(domain.DefaultManifestPath(root), hex.EncodeToString(hash[:])+".json")
}
