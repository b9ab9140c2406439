// Package config provides the configuration loader for ktxload.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"path/filepath"

	"go.trai.ch/ktxload/internal/core/domain"
	"go.trai.ch/ktxload/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	fs     FileSystem
}

// NewLoader creates a new Loader reading from the OS filesystem.
func NewLoader(logger ports.Logger) *Loader {
	return NewLoaderWithFS(logger, NewOSFS())
}

// NewLoaderWithFS creates a new Loader reading through fsys.
func NewLoaderWithFS(logger ports.Logger, fsys FileSystem) *Loader {
	return &Loader{Logger: logger, fs: fsys}
}

// Load reads the configuration at path. An empty path looks for ktxload.yaml
// in the working directory and falls back to the built-in defaults when it is
// absent.
func (l *Loader) Load(path string) (*domain.Config, error) {
	if path == "" {
		candidate := domain.ConfigFileName
		if _, err := l.fs.Stat(candidate); errors.Is(err, fs.ErrNotExist) {
			l.Logger.Debug("no " + domain.ConfigFileName + " found, using built-in defaults")
			return domain.DefaultConfig(), nil
		}
		path = candidate
	}

	var file File
	if err := l.readAndUnmarshalYAML(path, &file); err != nil {
		return nil, err
	}

	cfg, err := buildConfig(filepath.Dir(path), &file)
	if err != nil {
		return nil, zerr.With(err, "config", path)
	}
	return cfg, nil
}

func (l *Loader) readAndUnmarshalYAML(path string, target *File) error {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		return zerr.With(errors.Join(domain.ErrConfigReadFailed, err), "config", path)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil && !errors.Is(err, io.EOF) {
		return zerr.With(errors.Join(domain.ErrConfigParseFailed, err), "config", path)
	}
	return nil
}

func buildConfig(configDir string, file *File) (*domain.Config, error) {
	if file.Version != "" && file.Version != SupportedVersion {
		err := zerr.Wrap(domain.ErrUnsupportedConfigVersion, "invalid config")
		return nil, zerr.With(err, "version", file.Version)
	}

	cfg := domain.DefaultConfig()
	cfg.CacheDir = resolveDir(configDir, file.CacheDir)
	cfg.ResourceDir = resolveDir(configDir, file.ResourceDir)

	if len(file.Libraries) > 0 {
		cfg.Libraries = make(map[string]domain.LibrarySpec, len(file.Libraries))
		for name, dto := range file.Libraries {
			var deps []string
			if dto != nil {
				deps = dto.Dependencies
			}
			spec := domain.NewLibrarySpec(name, deps...)
			if err := spec.Validate(); err != nil {
				return nil, err
			}
			cfg.Libraries[name] = spec
		}
	}

	if file.Default != "" {
		cfg.Default = file.Default
	}
	if _, err := cfg.Library(cfg.Default); err != nil {
		return nil, zerr.With(err, "default", cfg.Default)
	}

	return cfg, nil
}

func resolveDir(configDir, dir string) string {
	if dir == "" {
		return ""
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(configDir, dir)
	}
	// Libraries are loaded by absolute path.
	if abs, err := filepath.Abs(dir); err == nil {
		return abs
	}
	return filepath.Clean(dir)
}
