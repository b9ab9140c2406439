package cache

import (
	"errors"
	"io"
	"os"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/ktxload/internal/core/domain"
	"go.trai.ch/zerr"
)

func formatDigest(sum uint64) string {
	return strconv.FormatUint(sum, 16)
}

// Digest returns the xxhash digest of everything read from r.
func Digest(r io.Reader) (string, error) {
	h := xxhash.New()
	buf := make([]byte, domain.CopyBufferSize)
	if _, err := io.CopyBuffer(h, r, buf); err != nil {
		return "", err
	}
	return formatDigest(h.Sum64()), nil
}

// FileDigest returns the xxhash digest of the file at path.
func FileDigest(path string) (string, error) {
	//nolint:gosec // Path is a cache location computed by the loader
	f, err := os.Open(path)
	if err != nil {
		return "", zerr.With(errors.Join(domain.ErrCacheStatFailed, err), "path", path)
	}
	defer func() {
		_ = f.Close()
	}()
	return Digest(f)
}
