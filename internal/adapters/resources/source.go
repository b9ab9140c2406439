// Package resources provides the bundles native libraries are extracted from.
package resources

import (
	"embed"
	"errors"
	"io"
	"io/fs"
	"os"
	"path"
	"strings"

	"go.trai.ch/ktxload/internal/core/domain"
	"go.trai.ch/zerr"
)

//go:embed lib
var embedded embed.FS

// FSSource implements ports.ResourceSource over an fs.FS.
type FSSource struct {
	fsys fs.FS
	desc string
}

// NewFSSource creates a source reading from fsys.
func NewFSSource(fsys fs.FS, desc string) *FSSource {
	return &FSSource{fsys: fsys, desc: desc}
}

// NewEmbeddedSource returns the bundle compiled into the binary.
func NewEmbeddedSource() *FSSource {
	return NewFSSource(embedded, "embedded bundle")
}

// NewDirSource returns a bundle rooted at dir on disk.
func NewDirSource(dir string) *FSSource {
	return NewFSSource(os.DirFS(dir), dir)
}

// Open returns a reader for the named resource. Leading slashes are ignored,
// so "/lib/libktx.so" and "lib/libktx.so" name the same resource.
func (s *FSSource) Open(name string) (io.ReadCloser, error) {
	clean := path.Clean(strings.TrimLeft(name, "/"))
	if !fs.ValidPath(clean) {
		return nil, zerr.With(zerr.Wrap(domain.ErrResourceNotFound, "invalid resource path"), "resource", name)
	}

	f, err := s.fsys.Open(clean)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = zerr.With(zerr.Wrap(domain.ErrResourceNotFound, s.desc), "resource", clean)
			return nil, err
		}
		return nil, zerr.With(errors.Join(domain.ErrResourceOpenFailed, err), "resource", clean)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, zerr.With(errors.Join(domain.ErrResourceOpenFailed, err), "resource", clean)
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, zerr.With(zerr.Wrap(domain.ErrResourceNotFound, "resource is a directory"), "resource", clean)
	}
	return f, nil
}

// Describe names the bundle for diagnostics.
func (s *FSSource) Describe() string {
	return s.desc
}
