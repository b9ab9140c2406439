package domain

import (
	"slices"

	"go.trai.ch/zerr"
)

const (
	// DefaultLibrary is the JNI bridge module the codec binding loads.
	DefaultLibrary = "ktx-jni"
	// CodecLibrary is the codec module the bridge links against.
	CodecLibrary = "ktx"
)

// Config is the resolved loader configuration.
type Config struct {
	// CacheDir is the cache root. Empty means the ambient temp directory.
	CacheDir string
	// ResourceDir is a directory bundle. Empty means the embedded bundle.
	ResourceDir string
	// Default names the library loaded when none is requested.
	Default string
	// Libraries maps each declared library to its spec.
	Libraries map[string]LibrarySpec
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Default: DefaultLibrary,
		Libraries: map[string]LibrarySpec{
			DefaultLibrary: NewLibrarySpec(DefaultLibrary, CodecLibrary),
			CodecLibrary:   NewLibrarySpec(CodecLibrary),
		},
	}
}

// Library returns the declared spec for name.
func (c *Config) Library(name string) (LibrarySpec, error) {
	spec, ok := c.Libraries[name]
	if !ok {
		return LibrarySpec{}, zerr.With(zerr.Wrap(ErrUnknownLibrary, "failed to resolve library"), "library", name)
	}
	return spec, nil
}

// LibraryNames returns the declared library names in sorted order.
func (c *Config) LibraryNames() []string {
	names := make([]string, 0, len(c.Libraries))
	for name := range c.Libraries {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Resolve returns the specs for names, or the default library when names is empty.
func (c *Config) Resolve(names []string) ([]LibrarySpec, error) {
	if len(names) == 0 {
		names = []string{c.Default}
	}
	specs := make([]LibrarySpec, 0, len(names))
	for _, name := range names {
		spec, err := c.Library(name)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}
