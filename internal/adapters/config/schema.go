package config

// SupportedVersion is the only config schema version understood by the loader.
const SupportedVersion = "1"

// File represents the structure of the ktxload.yaml configuration file.
type File struct {
	Version     string                 `yaml:"version"`
	CacheDir    string                 `yaml:"cache_dir"`
	ResourceDir string                 `yaml:"resource_dir"`
	Default     string                 `yaml:"default"`
	Libraries   map[string]*LibraryDTO `yaml:"libraries"`
}

// LibraryDTO represents a library definition in the configuration.
type LibraryDTO struct {
	Dependencies []string `yaml:"dependencies"`
}
