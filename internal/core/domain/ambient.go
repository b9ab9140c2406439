package domain

// Ambient holds the process-wide host signals the loader classifies and reports.
type Ambient struct {
	// OSName is the operating-system name, e.g. "Linux" or "Mac OS X".
	OSName string
	// Arch is the CPU architecture name, e.g. "amd64" or "aarch64".
	Arch string
	// Vendor identifies the runtime vendor. "The Android Project" marks Android.
	Vendor string
	// DataModel is the pointer size in bits, e.g. "64".
	DataModel string
	// TempDir is the root under which native libraries are materialized.
	TempDir string
}
