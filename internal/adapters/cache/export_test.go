package cache

import (
	"context"
	"io"
)

// SetLink replaces the function used to publish files.
func (m *Materializer) SetLink(link func(oldname, newname string) error) {
	m.link = link
}

// CopyChunks exposes the chunked copy for tests.
func CopyChunks(ctx context.Context, dst io.Writer, src io.Reader) (string, int64, error) {
	return copyChunks(ctx, dst, src)
}
