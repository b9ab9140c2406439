package cache_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
	"testing/iotest"
	"testing/synctest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ktxload/internal/adapters/cache"
	"go.trai.ch/ktxload/internal/adapters/resources"
	"go.trai.ch/ktxload/internal/core/domain"
	"go.trai.ch/ktxload/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func bundle(files map[string][]byte) *resources.FSSource {
	fsys := fstest.MapFS{}
	for name, data := range files {
		fsys[name] = &fstest.MapFile{Data: data}
	}
	return resources.NewFSSource(fsys, "test bundle")
}

func dirEntries(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestMaterializer_Materialize(t *testing.T) {
	data := bytes.Repeat([]byte("ktx"), 50_000) // spans several copy chunks
	m := cache.NewMaterializer(bundle(map[string][]byte{"lib/libktx-jni.so": data}))

	dir := t.TempDir()
	dest := filepath.Join(dir, "libktx-jni.so")

	got, err := m.Materialize(context.Background(), "lib/libktx-jni.so", dest)
	require.NoError(t, err)

	written, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, data, written)

	wantDigest, err := cache.Digest(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, wantDigest, got.Digest)
	assert.Equal(t, int64(len(data)), got.Size)
	assert.Equal(t, dest, got.Path)
	assert.Equal(t, "lib/libktx-jni.so", got.Resource)
	assert.False(t, got.Timestamp.IsZero())

	info, err := os.Stat(dest)
	require.NoError(t, err)
	assert.Equal(t, fs.FileMode(domain.FilePerm), info.Mode().Perm())

	assert.Equal(t, []string{"libktx-jni.so"}, dirEntries(t, dir), "temp file must not be left behind")
}

func TestMaterializer_DestinationExists(t *testing.T) {
	m := cache.NewMaterializer(bundle(map[string][]byte{"lib/libktx.so": []byte("new")}))

	dest := filepath.Join(t.TempDir(), "libktx.so")
	require.NoError(t, os.WriteFile(dest, []byte("old"), 0o600))

	_, err := m.Materialize(context.Background(), "lib/libktx.so", dest)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDestinationExists)
	assert.NotErrorIs(t, err, domain.ErrMaterializeFailed)

	written, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "old", string(written))
}

func TestMaterializer_ResourceNotFound(t *testing.T) {
	m := cache.NewMaterializer(bundle(nil))

	dir := t.TempDir()
	_, err := m.Materialize(context.Background(), "lib/libktx.so", filepath.Join(dir, "libktx.so"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrResourceNotFound)
	assert.Empty(t, dirEntries(t, dir))
}

func TestMaterializer_ReadFailureLeavesNoFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockResourceSource(ctrl)

	broken := io.MultiReader(bytes.NewReader([]byte("partial")), iotest.ErrReader(errors.New("disk read error")))
	source.EXPECT().Open("lib/libktx.so").Return(io.NopCloser(broken), nil)

	dir := t.TempDir()
	dest := filepath.Join(dir, "libktx.so")

	_, err := cache.NewMaterializer(source).Materialize(context.Background(), "lib/libktx.so", dest)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMaterializeFailed)
	assert.Contains(t, err.Error(), "disk read error")
	assert.Empty(t, dirEntries(t, dir))
}

func TestMaterializer_Cancelled(t *testing.T) {
	m := cache.NewMaterializer(bundle(map[string][]byte{"lib/libktx.so": []byte("codec")}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dir := t.TempDir()
	_, err := m.Materialize(ctx, "lib/libktx.so", filepath.Join(dir, "libktx.so"))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, dirEntries(t, dir))
}

// gatedReader blocks every read until release is closed.
type gatedReader struct {
	release <-chan struct{}
	data    io.Reader
}

func (r *gatedReader) Read(p []byte) (int, error) {
	<-r.release
	return r.data.Read(p)
}

func TestMaterializer_CancelledCallerLeavesSharedCopyRunning(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := mocks.NewMockResourceSource(ctrl)

		release := make(chan struct{})
		source.EXPECT().Open("lib/libktx.so").
			Return(io.NopCloser(&gatedReader{release: release, data: strings.NewReader("codec")}), nil).
			Times(1)

		m := cache.NewMaterializer(source)
		dest := filepath.Join(t.TempDir(), "libktx.so")

		firstCtx, cancelFirst := context.WithCancel(context.Background())
		var firstErr error
		firstDone := make(chan struct{})
		go func() {
			defer close(firstDone)
			_, firstErr = m.Materialize(firstCtx, "lib/libktx.so", dest)
		}()
		synctest.Wait()

		var second domain.Extraction
		var secondErr error
		secondDone := make(chan struct{})
		go func() {
			defer close(secondDone)
			second, secondErr = m.Materialize(context.Background(), "lib/libktx.so", dest)
		}()
		synctest.Wait()

		cancelFirst()
		<-firstDone
		assert.ErrorIs(t, firstErr, context.Canceled)

		close(release)
		<-secondDone
		require.NoError(t, secondErr)
		assert.Equal(t, int64(len("codec")), second.Size)

		written, err := os.ReadFile(dest)
		require.NoError(t, err)
		assert.Equal(t, "codec", string(written))
	})
}

func TestMaterializer_LostPublishRace(t *testing.T) {
	m := cache.NewMaterializer(bundle(map[string][]byte{"lib/libktx.so": []byte("codec")}))

	dir := t.TempDir()
	dest := filepath.Join(dir, "libktx.so")

	// Another process publishes first.
	m.SetLink(func(_, newname string) error {
		require.NoError(t, os.WriteFile(newname, []byte("codec"), 0o600))
		return &os.LinkError{Op: "link", New: newname, Err: fs.ErrExist}
	})

	_, err := m.Materialize(context.Background(), "lib/libktx.so", dest)
	require.NoError(t, err)
	assert.Equal(t, []string{"libktx.so"}, dirEntries(t, dir))
}

func TestMaterializer_LinkUnsupportedFallsBackToRename(t *testing.T) {
	m := cache.NewMaterializer(bundle(map[string][]byte{"lib/libktx.so": []byte("codec")}))
	m.SetLink(func(_, _ string) error {
		return errors.New("operation not supported")
	})

	dir := t.TempDir()
	dest := filepath.Join(dir, "libktx.so")

	_, err := m.Materialize(context.Background(), "lib/libktx.so", dest)
	require.NoError(t, err)

	written, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "codec", string(written))
	assert.Equal(t, []string{"libktx.so"}, dirEntries(t, dir))
}

func TestMaterializer_EnsureDirectory(t *testing.T) {
	m := cache.NewMaterializer(bundle(nil))

	t.Run("creates parents", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "ktx-jni_dependents", "linux", "x86_64")
		require.NoError(t, m.EnsureDirectory(dir))

		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("fails when a parent is a file", func(t *testing.T) {
		root := t.TempDir()
		blocker := filepath.Join(root, "ktx-jni_dependents")
		require.NoError(t, os.WriteFile(blocker, nil, 0o600))

		err := m.EnsureDirectory(filepath.Join(blocker, "linux"))
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrCacheDirectory)
	})
}

func TestMaterializer_Exists(t *testing.T) {
	m := cache.NewMaterializer(bundle(nil))
	dir := t.TempDir()

	exists, err := m.Exists(filepath.Join(dir, "libktx.so"))
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "libktx.so"), nil, 0o600))
	exists, err = m.Exists(filepath.Join(dir, "libktx.so"))
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestCopyChunks(t *testing.T) {
	var dst bytes.Buffer
	src := iotest.OneByteReader(bytes.NewReader([]byte("abc")))

	digest, size, err := cache.CopyChunks(context.Background(), &dst, src)
	require.NoError(t, err)
	assert.Equal(t, int64(3), size)
	assert.Equal(t, "abc", dst.String())

	want, err := cache.Digest(bytes.NewReader([]byte("abc")))
	require.NoError(t, err)
	assert.Equal(t, want, digest)
}
