package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"go.trai.ch/ktxload/internal/core/domain"
	"go.trai.ch/ktxload/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// SystemPathStrategyName identifies SystemPathStrategy in diagnostics.
	SystemPathStrategyName = "system-path"
	// ResourceStrategyName identifies ResourceStrategy in diagnostics.
	ResourceStrategyName = "resource"
)

// Strategy is one way of making a library resident.
type Strategy interface {
	// Name identifies the strategy in spans and diagnostics.
	Name() string
	// Attempt loads spec and returns the handle of its main library.
	Attempt(ctx context.Context, spec domain.LibrarySpec) (ports.LibraryHandle, error)
}

// SystemPathStrategy loads a library by file name through the platform's
// library search path. Dependencies are left to the dynamic linker.
type SystemPathStrategy struct {
	linker ports.Linker
	probe  ports.EnvironmentProbe
}

// NewSystemPathStrategy creates a SystemPathStrategy.
func NewSystemPathStrategy(linker ports.Linker, probe ports.EnvironmentProbe) *SystemPathStrategy {
	return &SystemPathStrategy{linker: linker, probe: probe}
}

// Name returns SystemPathStrategyName.
func (s *SystemPathStrategy) Name() string {
	return SystemPathStrategyName
}

// Attempt loads the platform file name of spec.Name.
func (s *SystemPathStrategy) Attempt(_ context.Context, spec domain.LibrarySpec) (ports.LibraryHandle, error) {
	return s.linker.LoadSystem(s.probe.Platform().FileName(spec.Name))
}

// ResourceStrategy materializes bundled libraries into the cache and loads
// them by absolute path, dependencies first.
type ResourceStrategy struct {
	linker       ports.Linker
	materializer ports.Materializer
	store        ports.ExtractionStore
	probe        ports.EnvironmentProbe
	logger       ports.Logger
	root         string
}

// NewResourceStrategy creates a ResourceStrategy caching under root. An empty
// root selects the ambient temp directory.
func NewResourceStrategy(
	linker ports.Linker,
	materializer ports.Materializer,
	store ports.ExtractionStore,
	probe ports.EnvironmentProbe,
	logger ports.Logger,
	root string,
) *ResourceStrategy {
	return &ResourceStrategy{
		linker:       linker,
		materializer: materializer,
		store:        store,
		probe:        probe,
		logger:       logger,
		root:         root,
	}
}

// Name returns ResourceStrategyName.
func (s *ResourceStrategy) Name() string {
	return ResourceStrategyName
}

// Root returns the absolute cache root the strategy writes to. A relative
// root resolves against the working directory.
func (s *ResourceStrategy) Root() string {
	root := s.root
	if root == "" {
		root = s.probe.Ambient().TempDir
	}
	if abs, err := filepath.Abs(root); err == nil {
		return abs
	}
	return root
}

// Attempt loads every dependency of spec from the cache, then spec itself.
func (s *ResourceStrategy) Attempt(ctx context.Context, spec domain.LibrarySpec) (ports.LibraryHandle, error) {
	root := s.Root()

	var handle ports.LibraryHandle
	for _, entry := range domain.CacheEntries(root, s.probe.Platform(), spec) {
		h, err := s.loadEntry(ctx, root, entry)
		if err != nil {
			return 0, err
		}
		handle = h
	}
	return handle, nil
}

func (s *ResourceStrategy) loadEntry(ctx context.Context, root string, entry domain.CacheEntry) (ports.LibraryHandle, error) {
	if err := s.Materialize(ctx, root, entry); err != nil {
		return 0, err
	}
	return s.linker.LoadPath(entry.Path)
}

// Materialize makes sure the cache file of entry exists. An existing file is
// reused as is.
func (s *ResourceStrategy) Materialize(ctx context.Context, root string, entry domain.CacheEntry) error {
	if err := s.materializer.EnsureDirectory(filepath.Dir(entry.Path)); err != nil {
		return zerr.With(err, "library", entry.Library)
	}

	exists, err := s.materializer.Exists(entry.Path)
	if err != nil {
		return zerr.With(err, "library", entry.Library)
	}
	if exists {
		s.logger.Debug(fmt.Sprintf("using cached %s at %s", entry.Library, entry.Path))
		return nil
	}

	extraction, err := s.materializer.Materialize(ctx, entry.Resource, entry.Path)
	switch {
	case errors.Is(err, domain.ErrDestinationExists):
		// Another process published the file after the Exists check.
		s.logger.Debug(fmt.Sprintf("using cached %s at %s", entry.Library, entry.Path))
		return nil
	case err != nil:
		return zerr.With(err, "library", entry.Library)
	}

	s.logger.Debug(fmt.Sprintf("extracted %s to %s", entry.Resource, entry.Path))

	extraction.Library = entry.Library
	extraction.Owner = entry.Owner
	if err := s.store.Put(root, extraction); err != nil {
		s.logger.Warn(fmt.Sprintf("could not record extraction of %s: %v", entry.Library, err))
	}
	return nil
}
