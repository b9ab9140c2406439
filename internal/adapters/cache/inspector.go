package cache

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/ktxload/internal/core/domain"
	"go.trai.ch/ktxload/internal/core/ports"
	"go.trai.ch/zerr"
)

// Inspector implements ports.CacheInspector.
type Inspector struct {
	source ports.ResourceSource
}

// NewInspector creates an Inspector comparing cache files against source.
func NewInspector(source ports.ResourceSource) *Inspector {
	return &Inspector{source: source}
}

// Verify compares the cache file of entry with its bundled resource.
func (i *Inspector) Verify(ctx context.Context, entry domain.CacheEntry) (domain.CacheReport, error) {
	report := domain.CacheReport{Entry: entry}
	if err := ctx.Err(); err != nil {
		return report, err
	}

	if _, err := os.Lstat(entry.Path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			report.State = domain.CacheMissing
			return report, nil
		}
		return report, zerr.With(errors.Join(domain.ErrCacheStatFailed, err), "path", entry.Path)
	}

	cached, err := FileDigest(entry.Path)
	if err != nil {
		return report, err
	}
	report.CachedDigest = cached

	rc, err := i.source.Open(entry.Resource)
	if err != nil {
		if errors.Is(err, domain.ErrResourceNotFound) {
			report.State = domain.CacheOrphaned
			return report, nil
		}
		return report, err
	}
	defer func() {
		_ = rc.Close()
	}()

	bundled, err := Digest(rc)
	if err != nil {
		return report, zerr.With(errors.Join(domain.ErrResourceOpenFailed, err), "resource", entry.Resource)
	}
	report.ResourceDigest = bundled

	if cached == bundled {
		report.State = domain.CacheValid
	} else {
		report.State = domain.CacheStale
	}
	return report, nil
}

// Remove deletes the cache file at path and reports whether one existed.
func (i *Inspector) Remove(path string) (bool, error) {
	err := os.Remove(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, zerr.With(errors.Join(domain.ErrCacheCleanFailed, err), "path", path)
	}
}
