package app_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ktxload/internal/adapters/manifest"
	"go.trai.ch/ktxload/internal/adapters/resources"
	"go.trai.ch/ktxload/internal/adapters/telemetry"
	"go.trai.ch/ktxload/internal/app"
	"go.trai.ch/ktxload/internal/core/domain"
	"go.trai.ch/ktxload/internal/core/ports"
	"go.trai.ch/ktxload/internal/core/ports/mocks"
	"go.trai.ch/ktxload/internal/engine/bootstrap"
	"go.trai.ch/ktxload/internal/engine/gate"
	"go.uber.org/mock/gomock"
)

type staticProbe struct{}

func (staticProbe) Ambient() domain.Ambient {
	return domain.Ambient{OSName: "Linux", Arch: "amd64", DataModel: "64", TempDir: os.TempDir()}
}

func (staticProbe) Platform() domain.Platform {
	return domain.Platform{OS: domain.OSLinux, Arch: domain.ArchX86_64}
}

var bundle = fstest.MapFS{
	"lib/libktx-jni.so":          {Data: []byte("jni bridge")},
	"lib/libktx.so":              {Data: []byte("ktx codec")},
	"lib/linux/x86_64/libktx.so": {Data: []byte("ktx codec")},
}

type fixture struct {
	app    *app.App
	loader *mocks.MockConfigLoader
	linker *mocks.MockLinker
	logger *mocks.MockLogger
	root   string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		loader: mocks.NewMockConfigLoader(ctrl),
		linker: mocks.NewMockLinker(ctrl),
		logger: mocks.NewMockLogger(ctrl),
		root:   t.TempDir(),
	}
	f.logger.EXPECT().Debug(gomock.Any()).AnyTimes()

	cfg := domain.DefaultConfig()
	cfg.CacheDir = f.root
	f.loader.EXPECT().Load("ktxload.yaml").Return(cfg, nil).AnyTimes()

	probe := staticProbe{}
	store := manifest.NewStore()
	b := bootstrap.New(gate.New(), f.linker, probe, f.logger, telemetry.NewNoOpTracer())

	f.app = app.New(f.loader, f.logger, probe, f.linker, store, b).
		WithSource(resources.NewFSSource(bundle, "test bundle"))
	return f
}

func TestApp_Load_FallsBackToBundle(t *testing.T) {
	f := newFixture(t)
	depPath := filepath.Join(f.root, "ktx-jni_dependents", "linux", "x86_64", "libktx.so")
	mainPath := filepath.Join(f.root, "libktx-jni.so")

	gomock.InOrder(
		f.linker.EXPECT().LoadSystem("libktx-jni.so").Return(ports.LibraryHandle(0), domain.ErrSystemLoadFailed),
		f.linker.EXPECT().LoadPath(depPath).Return(ports.LibraryHandle(1), nil),
		f.linker.EXPECT().LoadPath(mainPath).Return(ports.LibraryHandle(2), nil),
	)
	f.logger.EXPECT().Info(gomock.Any()).Times(1)

	err := f.app.Load(context.Background(), app.LoadOptions{ConfigPath: "ktxload.yaml"})
	require.NoError(t, err)

	assert.FileExists(t, depPath)
	assert.FileExists(t, mainPath)
}

func TestApp_Load_OverridesDependencies(t *testing.T) {
	f := newFixture(t)
	f.linker.EXPECT().LoadSystem("libbasisu.so").Return(ports.LibraryHandle(4), nil)
	f.logger.EXPECT().Info(gomock.Any()).Times(1)

	err := f.app.Load(context.Background(), app.LoadOptions{
		ConfigPath:   "ktxload.yaml",
		Library:      "basisu",
		Dependencies: []string{"ktx"},
	})
	require.NoError(t, err)
}

func TestApp_Load_UnknownLibrary(t *testing.T) {
	f := newFixture(t)

	err := f.app.Load(context.Background(), app.LoadOptions{ConfigPath: "ktxload.yaml", Library: "basisu"})
	require.ErrorIs(t, err, domain.ErrUnknownLibrary)
}

func TestApp_Load_ConfigError(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load("broken.yaml").Return(nil, domain.ErrConfigParseFailed)

	err := f.app.Load(context.Background(), app.LoadOptions{ConfigPath: "broken.yaml"})
	require.ErrorIs(t, err, domain.ErrConfigParseFailed)
}

func TestApp_Platform(t *testing.T) {
	f := newFixture(t)

	report, err := f.app.Platform(context.Background(), app.PlatformOptions{ConfigPath: "ktxload.yaml"})
	require.NoError(t, err)

	assert.Equal(t, "Linux", report.Ambient.OSName)
	assert.Equal(t, "linux/x86_64", report.Platform.String())
	assert.Equal(t, f.root, report.CacheRoot)
	assert.Equal(t, "test bundle", report.Source)

	require.Len(t, report.Libraries, 2)
	jni := report.Libraries[1]
	assert.Equal(t, "ktx-jni", jni.Spec.Name)
	assert.Equal(t, "libktx-jni.so", jni.FileName)
	assert.Equal(t, "ktx-jni-linux-x86_64", jni.QualifiedName)
	assert.Equal(t, domain.NotAttempted, jni.State)
	require.Len(t, jni.Entries, 2)
	assert.Equal(t, "lib/linux/x86_64/libktx.so", jni.Entries[0].Resource)
	assert.Equal(t, "lib/libktx-jni.so", jni.Entries[1].Resource)
}

func TestApp_CacheLifecycle(t *testing.T) {
	f := newFixture(t)
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	opts := app.CacheOptions{ConfigPath: "ktxload.yaml", Libraries: []string{"ktx-jni", "ktx"}}
	ctx := context.Background()

	reports, err := f.app.VerifyCache(ctx, opts)
	require.NoError(t, err)
	require.Len(t, reports, 3)
	for _, r := range reports {
		assert.Equal(t, domain.CacheMissing, r.State)
	}

	entries, err := f.app.Extract(ctx, opts)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	reports, err = f.app.VerifyCache(ctx, opts)
	require.NoError(t, err)
	for _, r := range reports {
		assert.Equal(t, domain.CacheValid, r.State, r.Entry.Path)
		require.NotNil(t, r.Recorded, r.Entry.Path)
		assert.Equal(t, r.CachedDigest, r.Recorded.Digest)
	}

	stale := filepath.Join(f.root, "libktx.so")
	require.NoError(t, os.WriteFile(stale, []byte("tampered"), domain.FilePerm))
	reports, err = f.app.VerifyCache(ctx, opts)
	require.NoError(t, err)
	for _, r := range reports {
		if r.Entry.Path == stale {
			assert.Equal(t, domain.CacheStale, r.State)
		} else {
			assert.Equal(t, domain.CacheValid, r.State)
		}
	}

	removed, err := f.app.CleanCache(ctx, opts)
	require.NoError(t, err)
	assert.Len(t, removed, 3)
	assert.NoFileExists(t, stale)

	record, err := manifest.NewStore().Get(f.root, stale)
	require.NoError(t, err)
	assert.Nil(t, record)

	removed, err = f.app.CleanCache(ctx, opts)
	require.NoError(t, err)
	assert.Empty(t, removed)
}
