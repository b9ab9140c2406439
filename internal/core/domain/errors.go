package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidLibraryName is returned when a library name is empty or contains a path separator.
	ErrInvalidLibraryName = zerr.New("invalid library name")

	// ErrSelfDependency is returned when a library lists itself as a dependency.
	ErrSelfDependency = zerr.New("library depends on itself")

	// ErrDuplicateDependency is returned when a dependency is listed more than once.
	ErrDuplicateDependency = zerr.New("duplicate dependency")

	// ErrResourceNotFound is returned when a native library is missing from the resource bundle.
	ErrResourceNotFound = zerr.New("native library resource not found")

	// ErrResourceOpenFailed is returned when a bundled resource exists but cannot be opened.
	ErrResourceOpenFailed = zerr.New("failed to open native library resource")

	// ErrCacheDirectory is returned when a cache directory cannot be created.
	ErrCacheDirectory = zerr.New("failed to create cache directory")

	// ErrCacheStatFailed is returned when the cache location cannot be inspected.
	ErrCacheStatFailed = zerr.New("failed to stat cache location")

	// ErrDestinationExists is returned when materialization targets an existing file.
	ErrDestinationExists = zerr.New("materialization destination already exists")

	// ErrMaterializeFailed is returned when a resource cannot be copied to the cache.
	ErrMaterializeFailed = zerr.New("failed to materialize native library")

	// ErrSystemLoadFailed is returned when the system library search cannot load a library.
	ErrSystemLoadFailed = zerr.New("failed to load library from system search path")

	// ErrPathLoadFailed is returned when a library cannot be loaded from an absolute path.
	ErrPathLoadFailed = zerr.New("failed to load library from path")

	// ErrSymbolNotFound is returned when a symbol cannot be resolved in a loaded library.
	ErrSymbolNotFound = zerr.New("symbol not found")

	// ErrLibraryNotLoaded is returned when a symbol is looked up in a library that is not resident.
	ErrLibraryNotLoaded = zerr.New("library not loaded")

	// ErrLinkerUnsupported is returned on platforms without a dynamic loader binding.
	ErrLinkerUnsupported = zerr.New("dynamic loading is not supported on this platform")

	// ErrLinkageFailure is the error every exhausted load attempt matches.
	ErrLinkageFailure = zerr.New("unable to load native library")

	// ErrReentrantLoad is returned when a load re-enters itself for the same library.
	ErrReentrantLoad = zerr.New("re-entrant load of library")

	// ErrLoadPanicked is returned to waiters when the attempt they waited on panicked.
	ErrLoadPanicked = zerr.New("library load panicked")

	// ErrCacheMismatch is returned when a cached file differs from its bundled resource.
	ErrCacheMismatch = zerr.New("cached library differs from bundled resource")

	// ErrCacheCleanFailed is returned when a cached file cannot be removed.
	ErrCacheCleanFailed = zerr.New("failed to remove cached library")

	// ErrManifestReadFailed is returned when an extraction record cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read extraction record")

	// ErrManifestUnmarshalFailed is returned when an extraction record cannot be decoded.
	ErrManifestUnmarshalFailed = zerr.New("failed to unmarshal extraction record")

	// ErrManifestMarshalFailed is returned when an extraction record cannot be encoded.
	ErrManifestMarshalFailed = zerr.New("failed to marshal extraction record")

	// ErrManifestWriteFailed is returned when an extraction record cannot be written.
	ErrManifestWriteFailed = zerr.New("failed to write extraction record")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrUnsupportedConfigVersion is returned for a config version this build does not know.
	ErrUnsupportedConfigVersion = zerr.New("unsupported config version")

	// ErrUnknownLibrary is returned when a library is not declared in the configuration.
	ErrUnknownLibrary = zerr.New("unknown library")
)
