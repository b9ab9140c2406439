package domain

import "path/filepath"

const (
	// ResourceRoot is the directory inside a resource bundle holding native libraries.
	ResourceRoot = "lib"

	// DependentsSuffix is appended to the owning library name to form the
	// cache subdirectory for its dependencies.
	DependentsSuffix = "_dependents"

	// MetaDirName is the hidden directory under the cache root holding loader metadata.
	MetaDirName = ".ktxload"

	// ManifestDirName is the name of the extraction manifest directory.
	ManifestDirName = "manifest"

	// ConfigFileName is the name of the loader configuration file.
	ConfigFileName = "ktxload.yaml"

	// CopyBufferSize is the chunk size used when streaming a resource to disk.
	CopyBufferSize = 32 * 1024

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// ResourcePath returns the bundle path of a top-level library file, e.g. "lib/libktx.so".
func ResourcePath(fileName string) string {
	return ResourceRoot + "/" + fileName
}

// DependencyResourcePath returns the bundle path of a dependency file,
// e.g. "lib/linux/x86_64/libktx.so".
func DependencyResourcePath(p Platform, fileName string) string {
	return ResourceRoot + "/" + p.OS.String() + "/" + p.Arch.String() + "/" + fileName
}

// DependentsDir returns the cache subdirectory holding the dependencies of owner.
func DependentsDir(root, owner string, p Platform) string {
	return filepath.Join(root, owner+DependentsSuffix, p.OS.String(), p.Arch.String())
}

// CacheLocation returns where the library file for name is materialized.
// An empty owner selects the cache root itself.
func CacheLocation(root, owner string, p Platform, name string) string {
	if owner == "" {
		return filepath.Join(root, p.FileName(name))
	}
	return filepath.Join(DependentsDir(root, owner, p), p.FileName(name))
}

// DefaultManifestPath returns the manifest directory below a cache root.
func DefaultManifestPath(root string) string {
	return filepath.Join(root, MetaDirName, ManifestDirName)
}
