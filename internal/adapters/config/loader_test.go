package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ktxload/internal/adapters/config"
	"go.trai.ch/ktxload/internal/core/domain"
	"go.trai.ch/ktxload/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()
	return config.NewLoader(mockLogger)
}

func createFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
	return path
}

func TestLoader_Load_Full(t *testing.T) {
	dir := t.TempDir()
	path := createFile(t, dir, domain.ConfigFileName, `
version: "1"
cache_dir: cache
resource_dir: /opt/ktx/bundle
default: ktx-jni
libraries:
  ktx-jni:
    dependencies: [ktx]
  ktx: {}
  ktx-tools:
`)

	cfg, err := newLoader(t).Load(path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "cache"), cfg.CacheDir)
	assert.Equal(t, filepath.Clean("/opt/ktx/bundle"), cfg.ResourceDir)
	assert.Equal(t, "ktx-jni", cfg.Default)
	assert.Equal(t, []string{"ktx", "ktx-jni", "ktx-tools"}, cfg.LibraryNames())

	spec, err := cfg.Library("ktx-jni")
	require.NoError(t, err)
	assert.Equal(t, []string{"ktx"}, spec.Dependencies)

	spec, err = cfg.Library("ktx-tools")
	require.NoError(t, err)
	assert.Empty(t, spec.Dependencies)
}

func TestLoader_Load_DefaultsWhenFileMissing(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := newLoader(t).Load("")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestLoader_Load_FindsFileInWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	createFile(t, dir, domain.ConfigFileName, `
default: basisu
libraries:
  basisu: {}
`)
	t.Chdir(dir)

	cfg, err := newLoader(t).Load("")
	require.NoError(t, err)
	assert.Equal(t, "basisu", cfg.Default)
	assert.Equal(t, []string{"basisu"}, cfg.LibraryNames())
}

func TestLoader_Load_EmptyFileUsesDefaults(t *testing.T) {
	path := createFile(t, t.TempDir(), domain.ConfigFileName, "")

	cfg, err := newLoader(t).Load(path)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{
			name:    "unsupported version",
			content: "version: \"2\"\n",
			want:    domain.ErrUnsupportedConfigVersion,
		},
		{
			name:    "malformed yaml",
			content: "libraries: [\n",
			want:    domain.ErrConfigParseFailed,
		},
		{
			name:    "unknown field",
			content: "cache: /tmp\n",
			want:    domain.ErrConfigParseFailed,
		},
		{
			name:    "self dependency",
			content: "default: ktx\nlibraries:\n  ktx:\n    dependencies: [ktx]\n",
			want:    domain.ErrSelfDependency,
		},
		{
			name:    "duplicate dependency",
			content: "default: ktx-jni\nlibraries:\n  ktx-jni:\n    dependencies: [ktx, ktx]\n",
			want:    domain.ErrDuplicateDependency,
		},
		{
			name:    "invalid library name",
			content: "libraries:\n  ../ktx: {}\n",
			want:    domain.ErrInvalidLibraryName,
		},
		{
			name:    "undeclared default",
			content: "default: basisu\nlibraries:\n  ktx: {}\n",
			want:    domain.ErrUnknownLibrary,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := createFile(t, t.TempDir(), domain.ConfigFileName, tt.content)

			_, err := newLoader(t).Load(path)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoader_Load_ExplicitPathMissing(t *testing.T) {
	_, err := newLoader(t).Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfigReadFailed)
}

func TestLoader_Load_CustomFileSystem(t *testing.T) {
	fsys := mapFS{fstest.MapFS{
		domain.ConfigFileName: {Data: []byte("version: \"1\"\ncache_dir: /var/cache/ktx\n")},
	}}
	ctrl := gomock.NewController(t)
	loader := config.NewLoaderWithFS(mocks.NewMockLogger(ctrl), fsys)

	cfg, err := loader.Load("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Clean("/var/cache/ktx"), cfg.CacheDir)
	assert.Equal(t, domain.DefaultLibrary, cfg.Default)
}
