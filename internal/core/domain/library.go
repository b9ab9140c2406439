package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// LibrarySpec names a native library and the libraries it needs resident first.
type LibrarySpec struct {
	Name         string
	Dependencies []string
}

// NewLibrarySpec creates a LibrarySpec.
func NewLibrarySpec(name string, deps ...string) LibrarySpec {
	return LibrarySpec{Name: name, Dependencies: deps}
}

// Validate checks the library and dependency names before any filesystem or linker work happens.
func (s LibrarySpec) Validate() error {
	if err := ValidateLibraryName(s.Name); err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(s.Dependencies))
	for _, dep := range s.Dependencies {
		if err := ValidateLibraryName(dep); err != nil {
			return zerr.With(err, "library", s.Name)
		}
		if dep == s.Name {
			return zerr.With(zerr.Wrap(ErrSelfDependency, "invalid library spec"), "library", s.Name)
		}
		if _, ok := seen[dep]; ok {
			err := zerr.With(zerr.Wrap(ErrDuplicateDependency, "invalid library spec"), "library", s.Name)
			return zerr.With(err, "dependency", dep)
		}
		seen[dep] = struct{}{}
	}
	return nil
}

// ValidateLibraryName rejects names that are empty or would escape the resource root.
func ValidateLibraryName(name string) error {
	if strings.TrimSpace(name) == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, "/\\\x00") {
		return zerr.With(zerr.Wrap(ErrInvalidLibraryName, "invalid library spec"), "name", name)
	}
	return nil
}
