package linker_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ktxload/internal/adapters/linker"
	"go.trai.ch/ktxload/internal/core/domain"
)

type call struct {
	name   string
	search bool
}

func fakeLoader(known map[string]uintptr, calls *[]call) func(string, bool) (uintptr, error) {
	return func(name string, search bool) (uintptr, error) {
		*calls = append(*calls, call{name, search})
		if h, ok := known[name]; ok {
			return h, nil
		}
		return 0, errors.New(name + ": cannot open shared object file: No such file or directory")
	}
}

func TestLinker_LoadSystem(t *testing.T) {
	var calls []call
	l := linker.NewWith(fakeLoader(map[string]uintptr{"libktx.so": 0x10}, &calls), nil)

	h, err := l.LoadSystem("libktx.so")
	require.NoError(t, err)
	assert.NotZero(t, h)

	_, err = l.LoadSystem("libktx-jni.so")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSystemLoadFailed)
	assert.Contains(t, err.Error(), "cannot open shared object file")

	assert.Equal(t, []call{{"libktx.so", true}, {"libktx-jni.so", true}}, calls)
}

func TestLinker_LoadPath(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "libktx.so")

	var calls []call
	l := linker.NewWith(fakeLoader(map[string]uintptr{abs: 0x20}, &calls), nil)

	_, err := l.LoadPath(abs)
	require.NoError(t, err)

	_, err = l.LoadPath("libktx.so")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPathLoadFailed)

	assert.Equal(t, []call{{abs, false}}, calls, "relative paths never reach the loader")
}

func TestLinker_NilHandle(t *testing.T) {
	l := linker.NewWith(func(string, bool) (uintptr, error) { return 0, nil }, nil)

	_, err := l.LoadSystem("libktx.so")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSystemLoadFailed)
}

func TestLinker_Lookup(t *testing.T) {
	var calls []call
	l := linker.NewWith(
		fakeLoader(map[string]uintptr{"libktx.so": 0x30}, &calls),
		func(handle uintptr, symbol string) (uintptr, error) {
			if handle == 0x30 && symbol == "ktxTexture_CreateFromNamedFile" {
				return 0xbeef, nil
			}
			if symbol == "nil_symbol" {
				return 0, nil
			}
			return 0, errors.New("undefined symbol: " + symbol)
		},
	)

	h, err := l.LoadSystem("libktx.so")
	require.NoError(t, err)

	addr, err := l.Lookup(h, "ktxTexture_CreateFromNamedFile")
	require.NoError(t, err)
	assert.Equal(t, uintptr(0xbeef), addr)

	_, err = l.Lookup(h, "ktxMissing")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSymbolNotFound)
	assert.Contains(t, err.Error(), "undefined symbol: ktxMissing")

	_, err = l.Lookup(h, "nil_symbol")
	assert.ErrorIs(t, err, domain.ErrSymbolNotFound)

	_, err = l.Lookup(0x99, "ktxTexture_CreateFromNamedFile")
	assert.ErrorIs(t, err, domain.ErrLibraryNotLoaded)
}

func TestLinker_PlatformLoaderReportsMissingLibrary(t *testing.T) {
	_, err := linker.New().LoadSystem("libktxload-definitely-missing.so")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSystemLoadFailed)
}
