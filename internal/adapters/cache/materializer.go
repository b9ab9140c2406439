// Package cache materializes bundled native libraries into the on-disk cache.
package cache

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/ktxload/internal/core/domain"
	"go.trai.ch/ktxload/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// Materializer implements ports.Materializer.
//
// Files are written to a temporary name in the destination directory and
// published with a hard link, which fails instead of overwriting. A second
// writer that loses the race to publish treats the existing file as success.
type Materializer struct {
	source ports.ResourceSource
	group  singleflight.Group
	now    func() time.Time
	link   func(oldname, newname string) error
}

// NewMaterializer creates a Materializer reading resources from source.
func NewMaterializer(source ports.ResourceSource) *Materializer {
	return &Materializer{
		source: source,
		now:    time.Now,
		link:   os.Link,
	}
}

// EnsureDirectory creates dir and any missing parents.
func (m *Materializer) EnsureDirectory(dir string) error {
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(errors.Join(domain.ErrCacheDirectory, err), "path", dir)
	}
	return nil
}

// Exists reports whether a file is already present at path.
func (m *Materializer) Exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, zerr.With(errors.Join(domain.ErrCacheStatFailed, err), "path", path)
	}
}

// Materialize streams resource into dest. Concurrent calls for the same
// dest within the process share one copy. A caller whose ctx ends stops
// waiting; the shared copy runs to completion for the remaining callers.
func (m *Materializer) Materialize(ctx context.Context, resource, dest string) (domain.Extraction, error) {
	if err := ctx.Err(); err != nil {
		return domain.Extraction{}, zerr.With(zerr.Wrap(err, "materialize cancelled"), "path", dest)
	}

	ch := m.group.DoChan(dest, func() (any, error) {
		return m.materialize(context.WithoutCancel(ctx), resource, dest)
	})
	select {
	case <-ctx.Done():
		return domain.Extraction{}, zerr.With(zerr.Wrap(ctx.Err(), "materialize cancelled"), "path", dest)
	case res := <-ch:
		if res.Err != nil {
			return domain.Extraction{}, res.Err
		}
		return res.Val.(domain.Extraction), nil
	}
}

func (m *Materializer) materialize(ctx context.Context, resource, dest string) (domain.Extraction, error) {
	exists, err := m.Exists(dest)
	if err != nil {
		return domain.Extraction{}, err
	}
	if exists {
		return domain.Extraction{}, zerr.With(zerr.Wrap(domain.ErrDestinationExists, "refusing to overwrite cached library"), "path", dest)
	}

	src, err := m.source.Open(resource)
	if err != nil {
		return domain.Extraction{}, err
	}
	defer func() {
		_ = src.Close()
	}()

	dir := filepath.Dir(dest)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(dest)+".*.tmp")
	if err != nil {
		return domain.Extraction{}, zerr.With(errors.Join(domain.ErrMaterializeFailed, err), "path", dest)
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = os.Remove(tmpPath)
	}()

	digest, size, err := copyChunks(ctx, tmp, src)
	if err == nil {
		err = tmp.Sync()
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Chmod(tmpPath, domain.FilePerm)
	}
	if err == nil {
		err = m.publish(tmpPath, dest)
	}
	if err != nil {
		err = zerr.With(errors.Join(domain.ErrMaterializeFailed, err), "path", dest)
		return domain.Extraction{}, zerr.With(err, "resource", resource)
	}

	return domain.Extraction{
		Resource:  resource,
		Path:      dest,
		Digest:    digest,
		Size:      size,
		Timestamp: m.now().UTC(),
	}, nil
}

// publish moves tmp to dest without replacing an existing dest.
func (m *Materializer) publish(tmp, dest string) error {
	err := m.link(tmp, dest)
	if err == nil || errors.Is(err, fs.ErrExist) {
		return nil
	}

	// Hard links are unavailable on some filesystems. Rename may replace a
	// file published between the check and the call; both writers copied the
	// same resource.
	if _, statErr := os.Lstat(dest); statErr == nil {
		return nil
	}
	return os.Rename(tmp, dest)
}

// copyChunks copies src to dst in CopyBufferSize chunks and returns the
// xxhash digest and byte count of what was written.
func copyChunks(ctx context.Context, dst io.Writer, src io.Reader) (string, int64, error) {
	h := xxhash.New()
	w := io.MultiWriter(dst, h)
	buf := make([]byte, domain.CopyBufferSize)

	var size int64
	for {
		if err := ctx.Err(); err != nil {
			return "", size, err
		}
		n, readErr := src.Read(buf)
		if n > 0 {
			if _, err := w.Write(buf[:n]); err != nil {
				return "", size, err
			}
			size += int64(n)
		}
		if errors.Is(readErr, io.EOF) {
			return formatDigest(h.Sum64()), size, nil
		}
		if readErr != nil {
			return "", size, readErr
		}
	}
}
