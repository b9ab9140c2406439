// Package app implements the application layer for ktxload.
package app

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"slices"
	"sync"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/ktxload/internal/adapters/cache"     //nolint:depguard // Wired in app layer
	"go.trai.ch/ktxload/internal/adapters/resources" //nolint:depguard // Wired in app layer
	"go.trai.ch/ktxload/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/ktxload/internal/core/domain"
	"go.trai.ch/ktxload/internal/core/ports"
	"go.trai.ch/ktxload/internal/engine/bootstrap"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	probe        ports.EnvironmentProbe
	linker       ports.Linker
	store        ports.ExtractionStore
	bootstrapper *bootstrap.Bootstrapper
	sourceFor    func(dir string) ports.ResourceSource
	otelOnce     sync.Once
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	probe ports.EnvironmentProbe,
	linker ports.Linker,
	store ports.ExtractionStore,
	bootstrapper *bootstrap.Bootstrapper,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		probe:        probe,
		linker:       linker,
		store:        store,
		bootstrapper: bootstrapper,
		sourceFor:    defaultSource,
	}
}

// WithSource makes the App read resources from source regardless of the
// configured resource directory.
func (a *App) WithSource(source ports.ResourceSource) *App {
	a.sourceFor = func(string) ports.ResourceSource { return source }
	return a
}

func defaultSource(dir string) ports.ResourceSource {
	if dir == "" {
		return resources.NewEmbeddedSource()
	}
	return resources.NewDirSource(dir)
}

// session holds the components derived from one configuration file.
type session struct {
	cfg          *domain.Config
	root         string
	source       ports.ResourceSource
	inspector    ports.CacheInspector
	resource     *bootstrap.ResourceStrategy
	bootstrapper *bootstrap.Bootstrapper
}

func (a *App) newSession(configPath string) (*session, error) {
	cfg, err := a.configLoader.Load(configPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	source := a.sourceFor(cfg.ResourceDir)
	resource := bootstrap.NewResourceStrategy(
		a.linker,
		cache.NewMaterializer(source),
		a.store,
		a.probe,
		a.logger,
		cfg.CacheDir,
	)

	return &session{
		cfg:       cfg,
		root:      resource.Root(),
		source:    source,
		inspector: cache.NewInspector(source),
		resource:  resource,
		bootstrapper: a.bootstrapper.WithStrategies(
			bootstrap.NewSystemPathStrategy(a.linker, a.probe),
			resource,
		),
	}, nil
}

// specs resolves names against the configuration, or the default library
// when names is empty.
func (s *session) specs(names []string) ([]domain.LibrarySpec, error) {
	return s.cfg.Resolve(names)
}

// entries lists the cache entries of specs without duplicates, dependencies first.
func (s *session) entries(p domain.Platform, specs []domain.LibrarySpec) []domain.CacheEntry {
	var out []domain.CacheEntry
	seen := make(map[string]struct{})
	for _, spec := range specs {
		for _, e := range domain.CacheEntries(s.root, p, spec) {
			if _, ok := seen[e.Path]; ok {
				continue
			}
			seen[e.Path] = struct{}{}
			out = append(out, e)
		}
	}
	return out
}

// LoadOptions configuration for the Load method.
type LoadOptions struct {
	ConfigPath string
	// Library is the library to load. Empty selects the configured default.
	Library string
	// Dependencies replaces the configured dependencies when set.
	Dependencies []string
}

// Load bootstraps a single library.
func (a *App) Load(ctx context.Context, opts LoadOptions) error {
	a.setupTracing()

	s, err := a.newSession(opts.ConfigPath)
	if err != nil {
		return err
	}

	spec, err := s.loadSpec(opts)
	if err != nil {
		return err
	}

	if err := s.bootstrapper.Load(ctx, spec); err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("%s is loaded (%s)", spec.Name, a.probe.Platform()))
	return nil
}

func (s *session) loadSpec(opts LoadOptions) (domain.LibrarySpec, error) {
	name := opts.Library
	if name == "" {
		name = s.cfg.Default
	}

	spec, err := s.cfg.Library(name)
	if err != nil {
		if !errors.Is(err, domain.ErrUnknownLibrary) || len(opts.Dependencies) == 0 {
			return domain.LibrarySpec{}, err
		}
		spec = domain.NewLibrarySpec(name)
	}
	if len(opts.Dependencies) > 0 {
		spec.Dependencies = slices.Clone(opts.Dependencies)
	}
	return spec, nil
}

// PlatformOptions configuration for the Platform method.
type PlatformOptions struct {
	ConfigPath string
	Libraries  []string
}

// PlatformReport describes the host and where each library would be loaded from.
type PlatformReport struct {
	Ambient   domain.Ambient
	Platform  domain.Platform
	CacheRoot string
	Source    string
	Libraries []LibraryReport
}

// LibraryReport describes one library on the current platform.
type LibraryReport struct {
	Spec          domain.LibrarySpec
	FileName      string
	QualifiedName string
	State         domain.LoadState
	Entries       []domain.CacheEntry
}

// Platform reports the classified host and the names and paths derived for
// the requested libraries. Without names every configured library is listed.
func (a *App) Platform(_ context.Context, opts PlatformOptions) (*PlatformReport, error) {
	s, err := a.newSession(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	names := opts.Libraries
	if len(names) == 0 {
		names = s.cfg.LibraryNames()
	}
	specs, err := s.specs(names)
	if err != nil {
		return nil, err
	}

	p := a.probe.Platform()
	report := &PlatformReport{
		Ambient:   a.probe.Ambient(),
		Platform:  p,
		CacheRoot: s.root,
		Source:    s.source.Describe(),
	}
	for _, spec := range specs {
		report.Libraries = append(report.Libraries, LibraryReport{
			Spec:          spec,
			FileName:      p.FileName(spec.Name),
			QualifiedName: p.QualifiedName(spec.Name),
			State:         s.bootstrapper.State(spec.Name),
			Entries:       domain.CacheEntries(s.root, p, spec),
		})
	}
	return report, nil
}

// CacheOptions selects the configuration and libraries for extract and
// cache operations.
type CacheOptions struct {
	ConfigPath string
	Libraries  []string
}

// Extract materializes the requested libraries and their dependencies into
// the cache without loading them. Existing cache files are kept.
func (a *App) Extract(ctx context.Context, opts CacheOptions) ([]domain.CacheEntry, error) {
	s, err := a.newSession(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	specs, err := s.specs(opts.Libraries)
	if err != nil {
		return nil, err
	}

	entries := s.entries(a.probe.Platform(), specs)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for _, entry := range entries {
		g.Go(func() error {
			return s.resource.Materialize(ctx, s.root, entry)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	a.logger.Info(fmt.Sprintf("%d files cached under %s", len(entries), s.root))
	return entries, nil
}

// VerifyCache compares each cache file of the requested libraries with its
// bundled resource and attaches the recorded extraction, if any.
func (a *App) VerifyCache(ctx context.Context, opts CacheOptions) ([]domain.CacheReport, error) {
	s, err := a.newSession(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	specs, err := s.specs(opts.Libraries)
	if err != nil {
		return nil, err
	}

	entries := s.entries(a.probe.Platform(), specs)
	reports := make([]domain.CacheReport, len(entries))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, entry := range entries {
		g.Go(func() error {
			report, err := s.inspector.Verify(ctx, entry)
			if err != nil {
				return err
			}
			if report.State != domain.CacheMissing {
				recorded, err := a.store.Get(s.root, entry.Path)
				if err != nil {
					a.logger.Warn(fmt.Sprintf("could not read extraction record for %s: %v", entry.Path, err))
				}
				report.Recorded = recorded
			}
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// CleanCache removes the cache files of the requested libraries together with
// their extraction records and returns the removed paths.
func (a *App) CleanCache(_ context.Context, opts CacheOptions) ([]string, error) {
	s, err := a.newSession(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	specs, err := s.specs(opts.Libraries)
	if err != nil {
		return nil, err
	}

	var (
		removed []string
		errs    error
	)
	for _, entry := range s.entries(a.probe.Platform(), specs) {
		ok, err := s.inspector.Remove(entry.Path)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		if err := a.store.Delete(s.root, entry.Path); err != nil {
			errs = errors.Join(errs, err)
		}
		if ok {
			a.logger.Info("removed " + entry.Path)
			removed = append(removed, entry.Path)
		}
	}
	return removed, errs
}

// setupTracing routes loader spans to the logger's debug output.
func (a *App) setupTracing() {
	a.otelOnce.Do(func() {
		setupOTel(telemetry.NewBridge(a.logger))
	})
}

// setupOTel registers a global TracerProvider forwarding every span to bridge.
func setupOTel(bridge *telemetry.Bridge) {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(bridge),
	)
	otel.SetTracerProvider(tp)
}
