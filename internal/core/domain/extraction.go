package domain

import "time"

// Extraction records one resource materialized into the cache.
type Extraction struct {
	Library   string    `json:"library"`
	Owner     string    `json:"owner,omitempty"`
	Resource  string    `json:"resource"`
	Path      string    `json:"path"`
	Digest    string    `json:"digest"`
	Size      int64     `json:"size"`
	Timestamp time.Time `json:"timestamp"`
}

// CacheEntry describes where one library of a spec lives in the bundle and in the cache.
type CacheEntry struct {
	Library  string
	Owner    string
	Resource string
	Path     string
}

// CacheEntries lists the cache entries a resource fallback for spec would touch,
// dependencies first.
func CacheEntries(root string, p Platform, spec LibrarySpec) []CacheEntry {
	entries := make([]CacheEntry, 0, len(spec.Dependencies)+1)
	for _, dep := range spec.Dependencies {
		entries = append(entries, CacheEntry{
			Library:  dep,
			Owner:    spec.Name,
			Resource: DependencyResourcePath(p, p.FileName(dep)),
			Path:     CacheLocation(root, spec.Name, p, dep),
		})
	}
	entries = append(entries, CacheEntry{
		Library:  spec.Name,
		Resource: ResourcePath(p.FileName(spec.Name)),
		Path:     CacheLocation(root, "", p, spec.Name),
	})
	return entries
}

// CacheState is the outcome of comparing a cache file with its bundled resource.
type CacheState uint8

const (
	// CacheMissing means no file exists at the cache location.
	CacheMissing CacheState = iota
	// CacheValid means the cached bytes equal the bundled resource.
	CacheValid
	// CacheStale means the cached bytes differ from the bundled resource.
	CacheStale
	// CacheOrphaned means a cached file exists but the bundle has no such resource.
	CacheOrphaned
)

func (s CacheState) String() string {
	switch s {
	case CacheValid:
		return "valid"
	case CacheStale:
		return "stale"
	case CacheOrphaned:
		return "orphaned"
	default:
		return "missing"
	}
}

// CacheReport describes one verified cache entry.
type CacheReport struct {
	Entry          CacheEntry
	State          CacheState
	CachedDigest   string
	ResourceDigest string
	// Recorded is the manifest record for the entry, if one was written.
	Recorded *Extraction
}
